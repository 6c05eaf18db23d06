package gspan

// History is the edge/vertex membership index for one occurrence, built
// once per PrevDFS tip so extension-enumeration lookups (HasEdge/HasVertex)
// run in O(1) instead of re-walking the Prev chain each time.
type History struct {
	Edges    []*Edge
	edgeIDs  *IntSet
	vertices *StringSet
}

// BuildHistory walks p's Prev chain, collecting edge ids and vertex names
// into membership sets, then returns Edges in forward (earliest-first)
// chronological order.
func BuildHistory(p *PrevDFS) *History {
	h := &History{edgeIDs: NewIntSet(), vertices: NewStringSet()}

	var rev []*Edge
	cur := p
	for cur != nil {
		rev = append(rev, cur.Edge)
		h.edgeIDs.Add(cur.Edge.ID)
		h.vertices.Add(cur.Edge.From)
		h.vertices.Add(cur.Edge.To)
		cur = cur.Prev
	}

	h.Edges = make([]*Edge, len(rev))
	for i, e := range rev {
		h.Edges[len(rev)-1-i] = e
	}
	return h
}

// HasEdge reports whether the occurrence already used the edge with id.
func (h *History) HasEdge(id int) bool {
	return h.edgeIDs.Has(id)
}

// HasVertex reports whether the occurrence already visited name.
func (h *History) HasVertex(name string) bool {
	return h.vertices.Has(name)
}
