package acyclic

import "github.com/katalvlaran/dagviz/core"

// frame is one explicit-stack entry of the iterative DFS used by DFSFas.
// Iterator state is an explicit work stack rather than native recursion, to
// bound recursion depth on graphs with thousands of nodes.
type frame struct {
	node core.Key
	succ []core.Key
	idx  int
}

// DFSFas finds a feedback arc set via iterative DFS: maintain a global
// "ever visited" set and a per-traversal "currently on path" set; for each
// outgoing edge, descend if the target is unvisited-on-path, otherwise
// record the edge as a feedback arc. Time O(V+E), space O(V).
func DFSFas(g *core.Graph) *FAS {
	visited := make(map[core.Key]bool)
	onPath := make(map[core.Key]bool)
	fas := &FAS{}

	var stack []*frame
	for _, start := range sortedKeys(g.Nodes()) {
		if visited[start] {
			continue
		}
		stack = append(stack, &frame{node: start, succ: g.Successors(start)})
		visited[start] = true
		onPath[start] = true

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.idx >= len(top.succ) {
				onPath[top.node] = false
				stack = stack[:len(stack)-1]
				continue
			}
			nbr := top.succ[top.idx]
			top.idx++

			if onPath[nbr] {
				fas.Edges = append(fas.Edges, EdgeRef{Source: top.node, Target: nbr})
				continue
			}
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			onPath[nbr] = true
			stack = append(stack, &frame{node: nbr, succ: g.Successors(nbr)})
		}
	}

	return fas
}

func sortedKeys(ks []core.Key) []core.Key {
	out := append([]core.Key(nil), ks...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
