package gspan

import "strconv"

// PrevDFS is a cons-cell occurrence ("projection") of the DFS-code under
// construction in one input graph: edge plus a pointer to the occurrence
// it extends. The chain is walked with explicit loops, never recursion.
type PrevDFS struct {
	GID  int
	Edge *Edge
	Prev *PrevDFS
}

// VertexName pairs a graph id with a vertex name, the unit of membership
// used by inner-support deduplication.
type VertexName struct {
	GID  int
	Name string
}

// VertexNames walks the Prev chain from p and returns the deduplicated set
// of (gid, vertex name) pairs touched by every edge in the occurrence.
func (p *PrevDFS) VertexNames() []VertexName {
	seen := NewStringSet()
	var out []VertexName
	cur := p
	for cur != nil {
		for _, name := range [2]string{cur.Edge.From, cur.Edge.To} {
			key := vertexKey(cur.GID, name)
			if !seen.Has(key) {
				seen.Add(key)
				out = append(out, VertexName{GID: cur.GID, Name: name})
			}
		}
		cur = cur.Prev
	}
	return out
}

// Edges walks the Prev chain from p and returns its edges in reverse
// (chronological, earliest-first) order.
func (p *PrevDFS) Edges() []*Edge {
	var rev []*Edge
	cur := p
	for cur != nil {
		rev = append(rev, cur.Edge)
		cur = cur.Prev
	}
	out := make([]*Edge, len(rev))
	for i, e := range rev {
		out[len(rev)-1-i] = e
	}
	return out
}

func vertexKey(gid int, name string) string {
	return strconv.Itoa(gid) + "/" + name
}
