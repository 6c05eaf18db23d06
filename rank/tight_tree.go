package rank

import "github.com/katalvlaran/dagviz/core"

// slack returns rank(target) - rank(source) - minlen for edge e, using the
// ranks already recorded on g's nodes.
func slack(g *core.Graph, e *core.GraphEdge) int {
	rs := nodeRank(g, e.Source)
	rt := nodeRank(g, e.Target)
	return rt - rs - e.MinLen
}

func nodeRank(g *core.Graph, k core.Key) int {
	n := g.Node(k)
	if n == nil || n.Rank == nil {
		return 0
	}
	return *n.Rank
}

func setNodeRank(g *core.Graph, k core.Key, r int) {
	n := g.Node(k)
	if n == nil {
		return
	}
	rv := r
	n.Rank = &rv
}

// incidentEdges returns every edge touching k, in either direction.
func incidentEdges(g *core.Graph, k core.Key) []*core.GraphEdge {
	out := g.OutEdges(k)
	out = append(out, g.InEdges(k)...)
	return out
}

func other(e *core.GraphEdge, k core.Key) core.Key {
	if e.Source == k {
		return e.Target
	}
	return e.Source
}

// TightTree seeds via LongestPath, then grows a feasible spanning tree of
// zero-slack edges, shifting ranks to tighten the minimum-slack non-tree
// edge on each iteration until the tree spans every node.
func TightTree(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := LongestPath(g); err != nil {
		return err
	}

	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	inTree := make(map[core.Key]bool)
	inTree[nodes[0]] = true
	growTightTree(g, inTree)

	for len(inTree) < len(nodes) {
		edge, delta, ok := findMinSlackEdge(g, inTree)
		if !ok {
			break // disconnected graph; nothing more to tighten
		}
		shiftRanks(g, inTree, delta)
		inTree[edge.Source] = true
		inTree[edge.Target] = true
		growTightTree(g, inTree)
	}

	return nil
}

// growTightTree repeatedly adds nodes reachable from the current tree via
// zero-slack edges, returning the resulting tree size.
func growTightTree(g *core.Graph, inTree map[core.Key]bool) int {
	changed := true
	for changed {
		changed = false
		for k := range copyKeys(inTree) {
			for _, e := range incidentEdges(g, k) {
				o := other(e, k)
				if inTree[o] {
					continue
				}
				if slack(g, e) == 0 {
					inTree[o] = true
					changed = true
				}
			}
		}
	}
	return len(inTree)
}

func copyKeys(m map[core.Key]bool) map[core.Key]bool {
	out := make(map[core.Key]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}

// findMinSlackEdge returns the non-tree edge with minimum |slack| that
// connects the tree to the rest of the graph, plus the delta to apply to
// every tree node's rank to make it tight.
func findMinSlackEdge(g *core.Graph, inTree map[core.Key]bool) (*core.GraphEdge, int, bool) {
	var best *core.GraphEdge
	bestSlack := 0
	found := false

	for k := range inTree {
		for _, e := range incidentEdges(g, k) {
			o := other(e, k)
			if inTree[o] {
				continue
			}
			s := slack(g, e)
			if s < 0 {
				s = -s
			}
			if !found || s < bestSlack {
				best, bestSlack, found = e, s, true
			}
		}
	}
	if !found {
		return nil, 0, false
	}

	s := slack(g, best)
	delta := -s
	if inTree[best.Source] {
		delta = s
	}

	return best, delta, true
}

// shiftRanks applies delta to every node currently in the tree.
func shiftRanks(g *core.Graph, inTree map[core.Key]bool, delta int) {
	for k := range inTree {
		setNodeRank(g, k, nodeRank(g, k)+delta)
	}
}
