package gspan

import "sort"

// isMin checks whether code is the lexicographically minimum DFS-code of
// the abstract graph it defines: rebuild a DFS-code from the
// graph alone, extending greedily by minimum label at each step, and
// compare prefix-by-prefix against code. Single-tuple codes are trivially
// minimal.
func (m *miner) isMin(code DFSCode) bool {
	if len(code) == 1 {
		return true
	}

	g := code.ToGraph(0, m.cfg.Directed)

	root := map[string]map[string]map[string]*Projected{}
	for _, v := range g.Vertices {
		for _, e := range ForwardEdges(g, v) {
			r1 := ensureMSMP(root, e.FromLabel)
			r2 := ensureSMP(r1, e.ELabel)
			proj := ensureProj(r2, e.ToLabel)
			proj.Push(g.ID, e, nil)
		}
	}

	fromLabel := firstKey(root)
	r1 := root[fromLabel]
	eLabel := firstKey(r1)
	r2 := r1[eLabel]
	toLabel := firstKey(r2)
	proj := r2[toLabel]

	var codeMin DFSCode
	codeMin.Push(0, 1, fromLabel, eLabel, toLabel)

	return m.isMinDFSCode(*proj, code, &codeMin, g)
}

func (m *miner) isMinDFSCode(projected Projected, code DFSCode, codeMin *DFSCode, g *Graph) bool {
	minRMPath := codeMin.BuildRightmostPath()
	maxToCode := codeMin.Get(minRMPath[0]).ToIdx

	if root, newTo := m.backwardExpand(projected, codeMin, g, minRMPath); root != nil {
		eLabel := firstKey(root)
		codeMin.Push(maxToCode, newTo, NilVertexLabel, eLabel, NilVertexLabel)
		n := len(*codeMin)
		if code.Get(n-1) != codeMin.Get(n-1) {
			return false
		}
		return m.isMinDFSCode(*root[eLabel], code, codeMin, g)
	}

	if root, newFrom := m.forwardExpand(projected, codeMin, g, minRMPath, maxToCode); root != nil {
		eLabel, toLabel, proj := firstEntryOfEToP(root)
		codeMin.Push(newFrom, maxToCode+1, NilVertexLabel, eLabel, toLabel)
		n := len(*codeMin)
		if code.Get(n-1) != codeMin.Get(n-1) {
			return false
		}
		return m.isMinDFSCode(*proj, code, codeMin, g)
	}

	return true
}

func (m *miner) backwardExpand(projected Projected, codeMin *DFSCode, g *Graph, minRMPath []int) (map[string]*Projected, int) {
	for i := len(minRMPath) - 1; i >= 1; i-- {
		root := m.generateEPMap(projected, g, minRMPath, i)
		if root != nil {
			return root, codeMin.Get(minRMPath[i]).FromIdx
		}
	}
	return nil, 0
}

func (m *miner) generateEPMap(projected Projected, g *Graph, minRMPath []int, i int) map[string]*Projected {
	root := map[string]*Projected{}
	for _, occ := range projected {
		history := BuildHistory(occ)
		backwardEdge := Backward(g, history.Edges[minRMPath[i]], history.Edges[minRMPath[0]], history)
		if backwardEdge != nil {
			proj := ensureProj(root, backwardEdge.ELabel)
			proj.Push(0, backwardEdge, occ)
		}
	}
	if len(root) == 0 {
		return nil
	}
	return root
}

func (m *miner) forwardExpand(projected Projected, codeMin *DFSCode, g *Graph, minRMPath []int, maxToCode int) (map[string]map[string]*Projected, int) {
	minLabel := codeMin.Get(0).FromLabel

	root := m.generateEToPMap(projected, g, func(h *History) []*Edge {
		last := h.Edges[minRMPath[0]]
		return ForwardPure(g, last, minLabel, h)
	})
	if root != nil {
		return root, maxToCode
	}

	for i := 0; i < len(minRMPath); i++ {
		ii := i
		root = m.generateEToPMap(projected, g, func(h *History) []*Edge {
			cur := h.Edges[minRMPath[ii]]
			return ForwardRMPath(g, cur, minLabel, h)
		})
		if root != nil {
			return root, codeMin.Get(minRMPath[ii]).FromIdx
		}
	}
	return nil, 0
}

func (m *miner) generateEToPMap(projected Projected, g *Graph, genEdges func(*History) []*Edge) map[string]map[string]*Projected {
	root := map[string]map[string]*Projected{}
	for _, occ := range projected {
		history := BuildHistory(occ)
		for _, e := range genEdges(history) {
			toLabel := g.NameLabelMap[e.To]
			r1 := ensureSMP(root, e.ELabel)
			proj := ensureProj(r1, toLabel)
			proj.Push(0, e, occ)
		}
	}
	if len(root) == 0 {
		return nil
	}
	return root
}

func firstEntryOfEToP(root map[string]map[string]*Projected) (eLabel, toLabel string, proj *Projected) {
	eLabel = firstKey(root)
	r1 := root[eLabel]
	toLabel = firstKey(r1)
	return eLabel, toLabel, r1[toLabel]
}

// firstKey returns the lexicographically smallest key of m, matching a
// sorted-map's first-entry semantics.
func firstKey[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0]
}
