package gspan

import "sort"

// Config holds the mining thresholds: cross-graph and within-graph support
// floors, and the pattern vertex-count bounds.
type Config struct {
	MinSup      int
	InnerMinSup int
	MaxPatMin   int
	MaxPatMax   int
	Directed    bool
}

// Instance is one occurrence of a reported pattern: the (gid, vertex name)
// set it covers and the edges realizing it in occurrence order.
type Instance struct {
	NodeIDs []VertexName
	Edges   []*Edge
}

// Pattern is one frequent subgraph accepted by the miner: its abstract
// graph, the support numbers that qualified it, and every occurrence.
type Pattern struct {
	ID        int
	Graph     *Graph
	Support   Support
	Instances []Instance
}

type miner struct {
	trans    []*Graph
	cfg      Config
	onResult func(Pattern) bool
	nextGID  int
	patterns []Pattern
	aborted  bool
}

// Mine runs the two-phase gSpan search over trans: phase 1 reports
// frequent single vertices (when cfg.MaxPatMin <= 1), phase 2 grows
// frequent forward-edge seeds via subMining's canonical-DFS-code
// recursion. onResult, if non-nil, is invoked synchronously for every
// accepted pattern as it is found — the hook stream/channel output modes
// use to emit before Mine returns. onResult returns false to request that
// mining stop; Mine then unwinds the recursion and returns the patterns
// collected so far with no error.
func Mine(trans []*Graph, cfg Config, onResult func(Pattern) bool) ([]Pattern, error) {
	m := &miner{trans: trans, cfg: cfg, onResult: onResult}

	if cfg.MaxPatMin <= 1 {
		m.findFrequentSingleVertex()
	}
	if m.aborted {
		return m.patterns, nil
	}

	type seed struct {
		fromLabel, eLabel, toLabel string
		projected                  *Projected
	}
	root := map[string]map[string]map[string]*Projected{}
	for gid, g := range trans {
		for _, v := range g.Vertices {
			for _, e := range ForwardEdges(g, v) {
				toVertex, ok := g.FindVertex(e.To)
				if !ok {
					continue
				}
				r1 := ensureMSMP(root, v.Label)
				r2 := ensureSMP(r1, e.ELabel)
				proj := ensureProj(r2, toVertex.Label)
				proj.Push(gid, e, nil)
			}
		}
	}

	var seeds []seed
	for fromLabel, r1 := range root {
		for eLabel, r2 := range r1 {
			for toLabel, proj := range r2 {
				seeds = append(seeds, seed{fromLabel, eLabel, toLabel, proj})
			}
		}
	}
	sort.Slice(seeds, func(i, j int) bool {
		if seeds[i].fromLabel != seeds[j].fromLabel {
			return seeds[i].fromLabel < seeds[j].fromLabel
		}
		if seeds[i].eLabel != seeds[j].eLabel {
			return seeds[i].eLabel < seeds[j].eLabel
		}
		return seeds[i].toLabel < seeds[j].toLabel
	})

	var code DFSCode
	for _, s := range seeds {
		if m.aborted {
			break
		}
		code.Push(0, 1, s.fromLabel, s.eLabel, s.toLabel)
		m.subMining(*s.projected, &code)
		code.Pop()
	}

	return m.patterns, nil
}

func (m *miner) findFrequentSingleVertex() {
	type labelStats struct {
		names *StringSet
		list  []string
		count int
	}

	graphMap := map[int]map[string]*labelStats{}
	freqMap := map[string]int{}

	for gid, g := range m.trans {
		d := map[string]*labelStats{}
		for _, v := range g.Vertices {
			if _, exists := d[v.Label]; !exists {
				freqMap[v.Label]++
			}
			st, ok := d[v.Label]
			if !ok {
				st = &labelStats{names: NewStringSet()}
				d[v.Label] = st
			}
			if !st.names.Has(v.Name) {
				st.names.Add(v.Name)
				st.list = append(st.list, v.Name)
			}
			st.count++
		}
		graphMap[gid] = d
	}

	var labels []string
	for l := range freqMap {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if m.aborted {
			return
		}
		sup := freqMap[label]
		if sup < m.cfg.MinSup {
			continue
		}

		min := int(^uint(0) >> 1)
		max, total := 0, 0
		var nodeIDs []VertexName
		for gid := 0; gid < len(m.trans); gid++ {
			count := 0
			if st, ok := graphMap[gid][label]; ok {
				count = st.count
				for _, n := range st.list {
					nodeIDs = append(nodeIDs, VertexName{GID: gid, Name: n})
				}
			}
			if count < min {
				min = count
			}
			if count > max {
				max = count
			}
			total += count
		}
		if max < m.cfg.InnerMinSup {
			continue
		}

		if m.cfg.MaxPatMax >= m.cfg.MaxPatMin && 1 > m.cfg.MaxPatMax {
			m.nextGID++
			continue
		}
		if m.cfg.MaxPatMin > 0 && 1 < m.cfg.MaxPatMin {
			m.nextGID++
			continue
		}

		g := NewGSpanGraph(m.nextGID, m.cfg.Directed)
		g.InsertVertex("result_0", label)

		p := Pattern{
			ID:        m.nextGID,
			Graph:     g,
			Support:   Support{Between: sup, InnerMin: min, InnerMax: max, Total: total},
			Instances: []Instance{{NodeIDs: nodeIDs}},
		}
		m.emit(p)
		m.nextGID++
	}
}

func (m *miner) emit(p Pattern) {
	m.patterns = append(m.patterns, p)
	if m.onResult != nil && !m.onResult(p) {
		m.aborted = true
	}
}

func (m *miner) subMining(projected Projected, code *DFSCode) {
	if m.aborted || m.shouldStopMining(projected, code) {
		return
	}

	minRMPath := code.BuildRightmostPath()
	minLabel := code.Get(0).FromLabel
	maxToCode := code.Get(minRMPath[0]).ToIdx

	fwdRoot, bckRoot := m.generateNextRoot(projected, *code, minRMPath, minLabel, maxToCode)

	var toKeys []int
	for k := range bckRoot {
		toKeys = append(toKeys, k)
	}
	sort.Ints(toKeys)
	for _, toKey := range toKeys {
		var eLabels []string
		for k := range bckRoot[toKey] {
			eLabels = append(eLabels, k)
		}
		sort.Strings(eLabels)
		for _, eLabel := range eLabels {
			code.Push(maxToCode, toKey, NilVertexLabel, eLabel, NilVertexLabel)
			m.subMining(*bckRoot[toKey][eLabel], code)
			code.Pop()
			if m.aborted {
				return
			}
		}
	}

	var fromKeys []int
	for k := range fwdRoot {
		fromKeys = append(fromKeys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(fromKeys)))
	for _, fromKey := range fromKeys {
		var eLabels []string
		for k := range fwdRoot[fromKey] {
			eLabels = append(eLabels, k)
		}
		sort.Strings(eLabels)
		for _, eLabel := range eLabels {
			var toLabels []string
			for k := range fwdRoot[fromKey][eLabel] {
				toLabels = append(toLabels, k)
			}
			sort.Strings(toLabels)
			for _, toLabel := range toLabels {
				code.Push(fromKey, maxToCode+1, NilVertexLabel, eLabel, toLabel)
				m.subMining(*fwdRoot[fromKey][eLabel][toLabel], code)
				code.Pop()
				if m.aborted {
					return
				}
			}
			if m.aborted {
				return
			}
		}
	}
}

func (m *miner) shouldStopMining(projected Projected, code *DFSCode) bool {
	sup := SupportOf(projected)
	if sup < m.cfg.MinSup {
		return true
	}
	innerMin, innerMax := InnerSupportOf(projected)
	if innerMax < m.cfg.InnerMinSup {
		return true
	}
	if !m.isMin(*code) {
		return true
	}
	if m.cfg.MaxPatMax >= m.cfg.MaxPatMin && code.CountNodes() > m.cfg.MaxPatMax {
		return true
	}

	m.report(sup, innerMin, innerMax, projected, *code)
	m.nextGID++
	return false
}

func (m *miner) report(sup, innerMin, innerMax int, projected Projected, code DFSCode) {
	if m.cfg.MaxPatMax >= m.cfg.MaxPatMin && code.CountNodes() > m.cfg.MaxPatMax {
		return
	}
	if m.cfg.MaxPatMin > 0 && code.CountNodes() < m.cfg.MaxPatMin {
		return
	}

	g := code.ToGraph(m.nextGID, m.cfg.Directed)

	var instances []Instance
	for i, occ := range projected {
		instances = append(instances, Instance{
			NodeIDs: occ.VertexNames(),
			Edges:   projected[i].Edges(),
		})
	}

	m.emit(Pattern{
		ID:        m.nextGID,
		Graph:     g,
		Support:   Support{Between: sup, InnerMin: innerMin, InnerMax: innerMax, Total: len(projected)},
		Instances: instances,
	})
}

func (m *miner) generateNextRoot(projected Projected, code DFSCode, minRMPath []int, minLabel string, maxToCode int) (
	fwdRoot map[int]map[string]map[string]*Projected,
	bckRoot map[int]map[string]*Projected,
) {
	fwdRoot = map[int]map[string]map[string]*Projected{}
	bckRoot = map[int]map[string]*Projected{}

	for _, occ := range projected {
		gid := occ.GID
		g := m.trans[gid]
		history := BuildHistory(occ)

		for i := len(minRMPath) - 1; i >= 0; i-- {
			e := Backward(g, history.Edges[minRMPath[i]], history.Edges[minRMPath[0]], history)
			if e != nil {
				key1 := code.Get(minRMPath[i]).FromIdx
				r1 := ensureIMP(bckRoot, key1)
				proj := ensureProj(r1, e.ELabel)
				proj.Push(gid, e, occ)
			}
		}

		for _, it := range ForwardPure(g, history.Edges[minRMPath[0]], minLabel, history) {
			toLabel := g.NameLabelMap[it.To]
			r1 := ensureIMSMP(fwdRoot, maxToCode)
			r2 := ensureSMP(r1, it.ELabel)
			proj := ensureProj(r2, toLabel)
			proj.Push(gid, it, occ)
		}

		for _, aRMPath := range minRMPath {
			edges := ForwardRMPath(g, history.Edges[aRMPath], minLabel, history)
			if len(edges) == 0 {
				continue
			}
			key1 := code.Get(aRMPath).FromIdx
			for _, it := range edges {
				toLabel := g.NameLabelMap[it.To]
				r1 := ensureIMSMP(fwdRoot, key1)
				r2 := ensureSMP(r1, it.ELabel)
				proj := ensureProj(r2, toLabel)
				proj.Push(gid, it, occ)
			}
		}
	}

	return fwdRoot, bckRoot
}

func ensureMSMP(m map[string]map[string]map[string]*Projected, k string) map[string]map[string]*Projected {
	r, ok := m[k]
	if !ok {
		r = map[string]map[string]*Projected{}
		m[k] = r
	}
	return r
}

func ensureSMP(m map[string]map[string]*Projected, k string) map[string]*Projected {
	r, ok := m[k]
	if !ok {
		r = map[string]*Projected{}
		m[k] = r
	}
	return r
}

func ensureProj(m map[string]*Projected, k string) *Projected {
	r, ok := m[k]
	if !ok {
		r = &Projected{}
		m[k] = r
	}
	return r
}

func ensureIMP(m map[int]map[string]*Projected, k int) map[string]*Projected {
	r, ok := m[k]
	if !ok {
		r = map[string]*Projected{}
		m[k] = r
	}
	return r
}

func ensureIMSMP(m map[int]map[string]map[string]*Projected, k int) map[string]map[string]*Projected {
	r, ok := m[k]
	if !ok {
		r = map[string]map[string]*Projected{}
		m[k] = r
	}
	return r
}
