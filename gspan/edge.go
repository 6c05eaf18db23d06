package gspan

import "sync/atomic"

// NilLabel marks an edge-extension tuple whose vertex/edge label is not yet
// known (used while a DFS-code tuple is still abstract).
const NilLabel = "<NIL>"

var edgeSeq int64

// nextEdgeID hands out process-wide unique edge identifiers, mirroring the
// source's atomic counter; every mined graph's edges get distinct ids so
// History's edge-id sets never collide across graphs.
func nextEdgeID() int {
	return int(atomic.AddInt64(&edgeSeq, 1))
}

// Edge is one directed, labeled edge of a gspan-internal Graph. Its identity
// for membership/history purposes is its ID; its equality for structural
// comparison is its three labels only (From/To are real-graph vertex names,
// not part of the label signature).
type Edge struct {
	ID        int
	From, To  string
	FromLabel string
	ToLabel   string
	ELabel    string
}

// NewEdge allocates an Edge with a fresh process-unique ID.
func NewEdge(from, to, fromLabel, toLabel, eLabel string) *Edge {
	return &Edge{
		ID:        nextEdgeID(),
		From:      from,
		To:        to,
		FromLabel: fromLabel,
		ToLabel:   toLabel,
		ELabel:    eLabel,
	}
}

// SameLabels reports whether two edges carry identical from/e/to labels,
// ignoring identity and endpoint names.
func (e *Edge) SameLabels(o *Edge) bool {
	return e.FromLabel == o.FromLabel && e.ToLabel == o.ToLabel && e.ELabel == o.ELabel
}
