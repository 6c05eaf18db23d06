package gspan

import "sort"

// SupportOf computes the cross-graph support of projected: the number of
// distinct graph ids its occurrences touch. Relies on
// projected being produced in gid-grouped order, matching how root/fwd/bck
// maps are populated one graph at a time.
func SupportOf(projected Projected) int {
	oid := -1
	size := 0
	for _, cur := range projected {
		if oid != cur.GID {
			size++
		}
		oid = cur.GID
	}
	return size
}

// InnerSupportOf computes (min, max) within-graph instance counts after
// deduplicating occurrences that cover the same vertex set.
func InnerSupportOf(projected Projected) (min, max int) {
	counts := map[int]int{}
	var seen []string

	for _, cur := range projected {
		key := vertexSetKey(cur.VertexNames())
		if containsString(seen, key) {
			continue
		}
		seen = append(seen, key)
		counts[cur.GID]++
	}

	min, max = int(^uint(0)>>1), 0
	for _, v := range counts {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if len(counts) == 0 {
		min = 0
	}
	return min, max
}

func vertexSetKey(names []VertexName) string {
	s := NewStringSet()
	var keys []string
	for _, n := range names {
		k := vertexKey(n.GID, n.Name)
		if !s.Has(k) {
			s.Add(k)
			keys = append(keys, k)
		}
	}
	// Sort so the key is independent of traversal order, matching the
	// source's use of an unordered hash set for vertex-set equality.
	sort.Strings(keys)
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ","
		}
		out += k
	}
	return out
}

func containsString(hay []string, needle string) bool {
	for _, h := range hay {
		if h == needle {
			return true
		}
	}
	return false
}

// ForwardEdges returns v's outgoing edges that are valid for seeding a
// DFS-code (from.label <= to.label).
func ForwardEdges(g *Graph, v *Vertex) []*Edge {
	var out []*Edge
	for _, e := range v.Edges {
		toLabel, ok := g.NameLabelMap[e.To]
		if ok && v.Label <= toLabel {
			out = append(out, e)
		}
	}
	return out
}

// Backward looks for the backward extension edge from the rightmost
// node's endpoint back toward e1's origin: an edge out of e2.To that is
// not already in history, whose target is e1.From, and whose label
// ordering keeps minimality (e1.ELabel < candidate, or equal with e1.To's
// label <= e2.To's label).
func Backward(g *Graph, e1, e2 *Edge, history *History) *Edge {
	if e1.SameLabels(e2) {
		return nil
	}
	v, ok := g.FindVertex(e2.To)
	if !ok {
		return nil
	}
	for _, edge := range v.Edges {
		if history.HasEdge(edge.ID) || edge.To != e1.From {
			continue
		}
		e1ToLabel := g.NameLabelMap[e1.To]
		e2ToLabel := g.NameLabelMap[e2.To]
		if e1.ELabel < edge.ELabel || (e1.ELabel == edge.ELabel && e1ToLabel <= e2ToLabel) {
			return edge
		}
	}
	return nil
}

// ForwardPure returns all forward edges out of e's endpoint to a vertex
// not already in history, with label >= minLabel (the "fresh vertex"
// extension).
func ForwardPure(g *Graph, e *Edge, minLabel string, history *History) []*Edge {
	var out []*Edge
	v, ok := g.FindVertex(e.To)
	if !ok {
		return out
	}
	for _, edge := range v.Edges {
		toLabel, ok := g.NameLabelMap[edge.To]
		if !ok || minLabel > toLabel || history.HasVertex(edge.To) {
			continue
		}
		out = append(out, edge)
	}
	return out
}

// ForwardRMPath returns forward edges out of e's origin (a rightmost-path
// node) to a fresh vertex, used for backtracked-forward extensions.
func ForwardRMPath(g *Graph, e *Edge, minLabel string, history *History) []*Edge {
	var out []*Edge
	v, ok := g.FindVertex(e.From)
	if !ok {
		return out
	}
	toLabel := g.NameLabelMap[e.To]
	for _, edge := range v.Edges {
		toLabel2, ok := g.NameLabelMap[edge.To]
		if !ok {
			continue
		}
		if e.To == edge.To || minLabel > toLabel2 || history.HasVertex(edge.To) {
			continue
		}
		if e.ELabel < edge.ELabel || (e.ELabel == edge.ELabel && toLabel <= toLabel2) {
			out = append(out, edge)
		}
	}
	return out
}
