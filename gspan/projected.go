package gspan

// Projected is the set of all occurrences of the current DFS-code across
// every input graph at the current search-stack depth.
type Projected []*PrevDFS

// Push appends a new occurrence extending prev (nil for a root occurrence).
func (p *Projected) Push(gid int, e *Edge, prev *PrevDFS) {
	*p = append(*p, &PrevDFS{GID: gid, Edge: e, Prev: prev})
}

// VertexNamesList maps every occurrence to its reconstructed
// (gid, vertex name) set.
func (p Projected) VertexNamesList() [][]VertexName {
	out := make([][]VertexName, len(p))
	for i, occ := range p {
		out[i] = occ.VertexNames()
	}
	return out
}

// EdgesList maps every occurrence to its reconstructed chronological edge
// sequence.
func (p Projected) EdgesList() [][]*Edge {
	out := make([][]*Edge, len(p))
	for i, occ := range p {
		out[i] = occ.Edges()
	}
	return out
}
