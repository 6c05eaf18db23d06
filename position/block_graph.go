package position

import "github.com/katalvlaran/dagviz/core"

// blockGraph is a small DAG over block-root keys: one node per alignment
// block, edges weighted by the minimum horizontal separation required
// between adjacent blocks.
type blockGraph struct {
	nodes        map[core.Key]struct{}
	inEdges      map[core.Key][]pairKey
	predecessors map[core.Key]map[core.Key]int
	edges        map[pairKey]float64
}

func newBlockGraph() *blockGraph {
	return &blockGraph{
		nodes:        make(map[core.Key]struct{}),
		inEdges:      make(map[core.Key][]pairKey),
		predecessors: make(map[core.Key]map[core.Key]int),
		edges:        make(map[pairKey]float64),
	}
}

func (b *blockGraph) setNode(k core.Key) {
	if _, ok := b.nodes[k]; ok {
		return
	}
	b.nodes[k] = struct{}{}
	b.inEdges[k] = nil
	b.predecessors[k] = make(map[core.Key]int)
}

// setEdge records the max-so-far separation weight from source to target;
// unlike a plain graph edge, a repeated (source,target) keeps the larger
// of the two weights (callers pass the running max themselves).
func (b *blockGraph) setEdge(source, target core.Key, weight float64) {
	key := pairKey{source, target}
	if _, exists := b.edges[key]; exists {
		b.edges[key] = weight
		return
	}
	b.setNode(source)
	b.setNode(target)
	b.edges[key] = weight
	b.predecessors[target][source]++
	b.inEdges[target] = append(b.inEdges[target], key)
}

func (b *blockGraph) nodeList() []core.Key {
	out := make([]core.Key, 0, len(b.nodes))
	for k := range b.nodes {
		out = append(out, k)
	}
	return out
}

// sep computes the minimum center-to-center separation for two adjacent
// nodes in the same rank.
func sep(g *core.Graph, cfg core.GraphConfig, source, target core.Key) float64 {
	sn, tn := g.Node(source), g.Node(target)
	if sn == nil || tn == nil {
		return 0
	}

	sum := sn.Width / 2
	if sn.Dummy != core.NotDummy {
		sum += cfg.EdgeSep / 2
	} else {
		sum += cfg.NodeSep / 2
	}
	if tn.Dummy != core.NotDummy {
		sum += cfg.EdgeSep / 2
	} else {
		sum += cfg.NodeSep / 2
	}
	sum += tn.Width / 2

	return sum
}

// buildBlockGraph folds matrix's adjacent same-rank pairs into block-graph
// edges keyed by each node's alignment root.
func buildBlockGraph(g *core.Graph, cfg core.GraphConfig, matrix [][]core.Key, root map[core.Key]core.Key) *blockGraph {
	bg := newBlockGraph()

	for _, layer := range matrix {
		var prevKey core.Key
		hasPrev := false
		for _, key := range layer {
			source := root[key]
			bg.setNode(source)
			if hasPrev {
				target := root[prevKey]
				prevMax := 0.0
				if v, ok := bg.edges[pairKey{target, source}]; ok {
					prevMax = v
				}
				max := sep(g, cfg, key, prevKey)
				if prevMax > max {
					max = prevMax
				}
				bg.setEdge(target, source, max)
			}
			prevKey = key
			hasPrev = true
		}
	}

	return bg
}
