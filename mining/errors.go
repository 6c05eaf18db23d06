package mining

import "errors"

var (
	// ErrNoGraphs indicates Subgraph was called with an empty graph set.
	ErrNoGraphs = errors.New("mining: no input graphs")
	// ErrInvalidVertexBounds indicates MinVertices > MaxVertices.
	ErrInvalidVertexBounds = errors.New("mining: min_vertices exceeds max_vertices")
	// ErrInvalidSupport indicates a support threshold below 1.
	ErrInvalidSupport = errors.New("mining: support threshold must be >= 1")
	// ErrStreamSinkRequired indicates Stream mode was selected without a
	// Sink, or Channel mode without a Results channel.
	ErrStreamSinkRequired = errors.New("mining: stream output mode requires a sink")
	// ErrMiningCancelled indicates the caller's context was cancelled (or
	// the receiving side otherwise withdrew) while in Channel mode; mining
	// stopped early and the patterns collected so far are still valid.
	ErrMiningCancelled = errors.New("mining: cancelled while streaming over channel")
)
