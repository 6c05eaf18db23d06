package rank

import "github.com/katalvlaran/dagviz/core"

// LongestPath assigns ranks via an iterative post-order traversal: a node's
// rank is the minimum over its out-edges of rank(target) - minlen; nodes
// without out-edges (sinks) get rank 0. The traversal uses an explicit
// stack rather than native recursion.
func LongestPath(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	ranks := make(map[core.Key]int)
	visited := make(map[core.Key]bool)

	type frame struct {
		node core.Key
		out  []*core.GraphEdge
		idx  int
	}

	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}

		stack := []*frame{{node: start, out: g.OutEdges(start)}}
		visited[start] = true

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.idx >= len(top.out) {
				best := 0
				have := false
				for _, e := range top.out {
					v, ok := ranks[e.Target]
					if !ok {
						continue // cycle guard; shouldn't happen post-acyclify
					}
					cand := v - e.MinLen
					if !have || cand < best {
						best, have = cand, true
					}
				}
				ranks[top.node] = best
				stack = stack[:len(stack)-1]
				continue
			}

			e := top.out[top.idx]
			top.idx++
			if !visited[e.Target] {
				visited[e.Target] = true
				stack = append(stack, &frame{node: e.Target, out: g.OutEdges(e.Target)})
			}
		}
	}

	for key, r := range ranks {
		node := g.Node(key)
		if node == nil {
			continue
		}
		rv := r
		node.Rank = &rv
	}

	return nil
}
