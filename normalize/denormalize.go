package normalize

import "github.com/katalvlaran/dagviz/core"

// Denormalize walks each chain head recorded by Normalize, accumulates the
// chain's dummy node coordinates as the restored edge's polyline (in
// source-to-target order regardless of which rank direction the chain was
// built in), removes the dummy nodes, and re-inserts the original edge.
func Denormalize(g *core.Graph, chains Chains) {
	for head, attrs := range chains {
		points := walkChain(g, head)

		g.AddEdge(attrs.source, attrs.target, &core.GraphEdge{
			Reversed: attrs.reversed,
			MinLen:   attrs.minLen,
			Weight:   attrs.weight,
			Nesting:  attrs.nesting,
		})
		restored := g.Edge(attrs.source, attrs.target)
		restored.SetPoints(points)
	}

	g.DummyChains = nil
}

// walkChain follows the chain starting at head through successive
// DummyEdge/DummyEdgeProxy nodes (each has exactly one surviving
// neighbor in the chain's direction), collecting center points in order
// and removing each dummy as it's consumed.
func walkChain(g *core.Graph, head core.Key) []core.Point {
	var points []core.Point

	current := head
	for {
		node := g.Node(current)
		if node == nil || (node.Dummy != core.DummyEdge && node.Dummy != core.DummyEdgeProxy) {
			break
		}

		points = append(points, core.Point{X: node.X, Y: node.Y})

		next, ok := nextDummy(g, current)
		g.RemoveNode(current)
		if !ok {
			break
		}
		current = next
	}

	return points
}

// nextDummy returns current's successor in the chain, if it is itself a
// dummy edge node (chains always run source-to-target by rank, per the
// post-ranking invariant rank(target) > rank(source)).
func nextDummy(g *core.Graph, current core.Key) (core.Key, bool) {
	for _, k := range g.Successors(current) {
		if n := g.Node(k); n != nil && (n.Dummy == core.DummyEdge || n.Dummy == core.DummyEdgeProxy) {
			return k, true
		}
	}
	return core.Key(0), false
}
