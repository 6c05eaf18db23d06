package selfedge

import "github.com/katalvlaran/dagviz/core"

// Dummies maps a DummySelfEdge dummy node key to the original self-edge it
// stands in for, threaded from InsertDummies through PositionAndRemove
//.
type Dummies map[core.Key]*core.GraphEdge

// Extract removes every self-loop (v,v) from the active edge set, bucketing
// it on g (via the normal AddEdge self-edge bucket) for later reinsertion.
// Ordering/ranking never sees a self-loop as a real edge.
func Extract(g *core.Graph) {
	for _, e := range g.Edges() {
		if e.Source == e.Target {
			g.RemoveEdge(e.Source, e.Target)
		}
	}
}

// InsertDummies walks the already-ordered rank/order matrix and, for every
// node with recorded self-edges, inserts one DummySelfEdge node per loop
// immediately after it in the order sequence, shifting every later node's
// Order to make room.
func InsertDummies(g *core.Graph, matrix [][]core.Key) Dummies {
	dummies := make(Dummies)

	for _, layer := range matrix {
		shift := 0
		for i, k := range layer {
			node := g.Node(k)
			if node == nil {
				continue
			}
			idx := i + shift
			node.Order = &idx

			for _, se := range g.SelfEdges(k) {
				shift++
				dk := g.NextDummyKey()
				rv := 0
				if node.Rank != nil {
					rv = *node.Rank
				}
				order := i + shift
				ek := core.EdgeKey(k, k)
				g.AddNode(dk, &core.GraphNode{Rank: &rv, Order: &order, Dummy: core.DummySelfEdge, Edge: &ek})
				dummies[dk] = se
			}
		}
	}

	return dummies
}
