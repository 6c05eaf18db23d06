package dfs

import "github.com/katalvlaran/dagviz/core"

// cycleFrame is one explicit-stack entry of the iterative coloring walk
// DetectCycle runs.
type cycleFrame struct {
	node core.Key
	succ []core.Key
	idx  int
}

// DetectCycle reports whether g (treated as directed) contains any cycle.
// It is a lightweight boolean check that acyclic.Acyclify runs after every
// FAS strategy as an independent post-condition verifier, not a full cycle
// enumerator. A nil graph reports false. The
// walk is an explicit work stack rather than native recursion, so depth is
// bounded only by available memory.
func DetectCycle(g *core.Graph) bool {
	if g == nil {
		return false
	}

	state := make(map[core.Key]int, len(g.Nodes()))

	for _, start := range g.Nodes() {
		if state[start] != White {
			continue
		}

		state[start] = Gray
		stack := []*cycleFrame{{node: start, succ: g.Successors(start)}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			advanced := false
			for top.idx < len(top.succ) {
				nid := top.succ[top.idx]
				top.idx++

				switch state[nid] {
				case Gray:
					return true
				case White:
					state[nid] = Gray
					stack = append(stack, &cycleFrame{node: nid, succ: g.Successors(nid)})
					advanced = true
				}
				if advanced {
					break
				}
			}
			if advanced {
				continue
			}

			state[top.node] = Black
			stack = stack[:len(stack)-1]
		}
	}

	return false
}
