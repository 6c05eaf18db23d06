package nesting

import "github.com/katalvlaran/dagviz/core"

// Build injects the nesting-graph structure used to keep compound-cluster
// borders acyclic and ordered during ranking. It is a no-op for
// non-compound graphs.
func Build(g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	if !g.IsCompound {
		return nil
	}

	depth := maxTreeDepth(g)
	nodeSep := 2*depth + 1

	for _, e := range g.Edges() {
		e.MinLen *= nodeSep
	}

	root := g.NextDummyKey()
	g.AddNode(root, &core.GraphNode{Dummy: core.DummyRoot})
	g.NestingRoot = &root

	for _, leaf := range leaves(g) {
		g.AddEdge(root, leaf, &core.GraphEdge{Weight: 0, MinLen: 1, Nesting: true})
	}

	for _, cluster := range internalClusters(g) {
		top := g.NextDummyKey()
		bottom := g.NextDummyKey()
		g.AddNode(top, &core.GraphNode{Dummy: core.DummyBorder})
		g.AddNode(bottom, &core.GraphNode{Dummy: core.DummyBorder})

		node := g.Node(cluster)
		node.BorderTop = &top
		node.BorderBottom = &bottom
		_ = g.SetParent(top, cluster)
		_ = g.SetParent(bottom, cluster)

		clusterDepth := depthOf(g, cluster)
		minlen := nodeSep - clusterDepth

		for _, child := range g.Children(cluster) {
			if child == top || child == bottom {
				continue
			}
			childTop, childBottom := borderPair(g, child)
			g.AddEdge(top, childTop, &core.GraphEdge{Weight: 0, MinLen: minlen, Nesting: true})
			g.AddEdge(childBottom, bottom, &core.GraphEdge{Weight: 0, MinLen: minlen, Nesting: true})
		}
	}

	return nil
}

// Cleanup removes Root and every Nesting-flagged edge added by Build.
func Cleanup(g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	if !g.IsCompound || g.NestingRoot == nil {
		return nil
	}

	for _, e := range g.Edges() {
		if e.Nesting {
			g.RemoveEdge(e.Source, e.Target)
		}
	}
	g.RemoveNode(*g.NestingRoot)
	g.NestingRoot = nil

	return nil
}

// borderPair returns child's own border-top/bottom if it is itself an
// internal cluster, or child itself (twice) if it is a leaf.
func borderPair(g *core.Graph, child core.Key) (top, bottom core.Key) {
	node := g.Node(child)
	if node != nil && node.BorderTop != nil && node.BorderBottom != nil {
		return *node.BorderTop, *node.BorderBottom
	}
	return child, child
}

func leaves(g *core.Graph) []core.Key {
	var out []core.Key
	for _, n := range g.Nodes() {
		if len(g.Children(n)) == 0 && g.Node(n).Dummy == core.NotDummy {
			out = append(out, n)
		}
	}
	return out
}

func internalClusters(g *core.Graph) []core.Key {
	var out []core.Key
	for _, n := range g.Nodes() {
		if len(g.Children(n)) > 0 {
			out = append(out, n)
		}
	}
	return out
}

func depthOf(g *core.Graph, n core.Key) int {
	depth := 0
	for p := g.Parent(n); p != core.EmptyRoot; p = g.Parent(p) {
		depth++
	}
	return depth
}

func maxTreeDepth(g *core.Graph) int {
	max := 0
	for _, n := range g.Nodes() {
		if len(g.Children(n)) == 0 {
			if d := depthOf(g, n); d > max {
				max = d
			}
		}
	}
	return max
}
