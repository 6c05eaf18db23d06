package rank

import "github.com/katalvlaran/dagviz/core"

// simplexTree holds the feasible spanning tree built by TightTree, indexed
// for low/lim labeling and cut-value computation.
type simplexTree struct {
	g       *core.Graph
	adj     map[core.Key][]*core.GraphEdge // tree-only adjacency, both directions
	low     map[core.Key]int
	lim     map[core.Key]int
	parent  map[core.Key]*core.GraphEdge // tree edge connecting k to its parent
	cut     map[*core.GraphEdge]float64
	visited map[core.Key]bool
}

// NetworkSimplex seeds via TightTree, labels the tree with low/lim DFS
// intervals, computes a cut value per tree edge, and repeatedly pivots out
// the tree edge with the most negative cut value for the minimum-slack
// replacement edge crossing the same cut, until every cut value is
// non-negative.
func NetworkSimplex(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := TightTree(g); err != nil {
		return err
	}

	nodes := g.Nodes()
	if len(nodes) <= 1 {
		return nil
	}

	tree := buildSimplexTree(g, nodes)
	if tree == nil {
		return nil // disconnected; longest-path/tight-tree result stands
	}

	const maxIterations = 10000
	for iter := 0; iter < maxIterations; iter++ {
		leave := findNegativeCutEdge(tree)
		if leave == nil {
			break
		}
		enter, ok := findEnterEdge(g, tree, leave)
		if !ok {
			break
		}
		exchange(g, tree, leave, enter)
		tree = buildSimplexTree(g, g.Nodes())
		if tree == nil {
			break
		}
	}

	NormalizeRanks(g)

	return nil
}

// buildSimplexTree walks the zero-slack spanning tree rooted at nodes[0],
// assigning low/lim post-order interval labels via an explicit-stack DFS.
func buildSimplexTree(g *core.Graph, nodes []core.Key) *simplexTree {
	if len(nodes) == 0 {
		return nil
	}

	adj := make(map[core.Key][]*core.GraphEdge)
	for _, k := range nodes {
		for _, e := range incidentEdges(g, k) {
			if slack(g, e) == 0 {
				adj[k] = append(adj[k], e)
			}
		}
	}

	t := &simplexTree{
		g:       g,
		adj:     adj,
		low:     make(map[core.Key]int),
		lim:     make(map[core.Key]int),
		parent:  make(map[core.Key]*core.GraphEdge),
		cut:     make(map[*core.GraphEdge]float64),
		visited: make(map[core.Key]bool),
	}

	type frame struct {
		node    core.Key
		edges   []*core.GraphEdge
		idx     int
		lowMark int
	}

	counter := 1
	root := nodes[0]
	stack := []*frame{{node: root, edges: adj[root], lowMark: 1}}
	t.visited[root] = true

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		advanced := false
		for top.idx < len(top.edges) {
			e := top.edges[top.idx]
			top.idx++
			o := other(e, top.node)
			if t.visited[o] {
				continue
			}
			t.visited[o] = true
			t.parent[o] = e
			stack = append(stack, &frame{node: o, edges: adj[o], lowMark: counter})
			advanced = true
			break
		}
		if advanced {
			continue
		}

		t.low[top.node] = top.lowMark
		t.lim[top.node] = counter
		counter++
		stack = stack[:len(stack)-1]
	}

	if len(t.visited) != len(nodes) {
		return nil // tree does not span the graph; bail out of simplex
	}

	computeCutValues(t, nodes)

	return t
}

// inTail reports whether k is in the subtree hanging below the child
// endpoint of the tree edge described by (low, lim).
func inTail(t *simplexTree, low, lim int, k core.Key) bool {
	l, lo := t.lim[k], t.low[k]
	return lo >= low && l <= lim
}

// computeCutValues assigns every tree edge a cut value: the sum of weights
// of graph edges leaving the tail component minus those entering it, for
// the bipartition induced by removing the tree edge.
func computeCutValues(t *simplexTree, nodes []core.Key) {
	for k, e := range t.parent {
		low, lim := t.low[k], t.lim[k]
		var sum float64
		for _, n := range nodes {
			tailN := inTail(t, low, lim, n)
			for _, oe := range t.g.OutEdges(n) {
				tailTarget := inTail(t, low, lim, oe.Target)
				switch {
				case tailN && !tailTarget:
					sum += oe.Weight
				case !tailN && tailTarget:
					sum -= oe.Weight
				}
			}
		}
		t.cut[e] = sum
	}
}

// findNegativeCutEdge returns a tree edge with negative cut value, or nil
// if the tree is already optimal.
func findNegativeCutEdge(t *simplexTree) *core.GraphEdge {
	for _, e := range t.parent {
		if t.cut[e] < 0 {
			return e
		}
	}
	return nil
}

// tailKeyFor returns the child endpoint of the tree edge e — the node
// whose low/lim subtree interval was assigned when e was discovered
// walking away from its parent.
func tailKeyFor(t *simplexTree, e *core.GraphEdge) core.Key {
	for k, pe := range t.parent {
		if pe == e {
			return k
		}
	}
	return core.EmptyRoot
}

// findEnterEdge finds the minimum-slack non-tree edge crossing the same
// cut as leave, oriented the opposite way. Because tree edges are
// discovered by an undirected walk over tight edges, leave's own graph
// direction relative to the tail/head split it induces is not fixed: flip
// records whether leave runs head-to-tail rather than tail-to-head, and
// the candidate filter is mirrored accordingly.
func findEnterEdge(g *core.Graph, t *simplexTree, leave *core.GraphEdge) (*core.GraphEdge, bool) {
	tailKey := tailKeyFor(t, leave)
	low, lim := t.low[tailKey], t.lim[tailKey]
	flip := tailKey != leave.Source

	var best *core.GraphEdge
	bestSlack := 0
	found := false

	for _, e := range g.Edges() {
		if e == leave {
			continue
		}
		tailSrc := inTail(t, low, lim, e.Source)
		tailTgt := inTail(t, low, lim, e.Target)
		if tailSrc != flip || tailTgt == flip {
			continue // must cross the cut in the direction opposite leave
		}
		s := slack(g, e)
		if !found || s < bestSlack {
			best, bestSlack, found = e, s, true
		}
	}

	return best, found
}

// exchange removes leave from the tree (conceptually; membership is
// re-derived on the next buildSimplexTree call via slack==0 edges) and
// shifts ranks along enter's tail so enter becomes tight. The shift sign
// mirrors findEnterEdge's flip: when leave runs head-to-tail the tail
// component must move the opposite way to zero out enter's slack.
func exchange(g *core.Graph, t *simplexTree, leave, enter *core.GraphEdge) {
	tailKey := tailKeyFor(t, leave)
	low, lim := t.low[tailKey], t.lim[tailKey]
	flip := tailKey != leave.Source

	delta := slack(g, enter)
	if delta == 0 {
		return
	}
	if flip {
		delta = -delta
	}

	for k := range t.visited {
		if inTail(t, low, lim, k) {
			setNodeRank(g, k, nodeRank(g, k)-delta)
		}
	}
}

// NormalizeRanks shifts every node's rank so the minimum rank is zero.
func NormalizeRanks(g *core.Graph) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}

	min := 0
	have := false
	for _, k := range nodes {
		r := nodeRank(g, k)
		if !have || r < min {
			min, have = r, true
		}
	}
	if min == 0 {
		return
	}
	for _, k := range nodes {
		setNodeRank(g, k, nodeRank(g, k)-min)
	}
}
