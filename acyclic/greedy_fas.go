package acyclic

import "github.com/katalvlaran/dagviz/core"

// GreedyFas repeatedly removes the node whose |out-degree - in-degree| is
// largest (stable tie-break on descending key). If out-degree exceeds
// in-degree, all its out-edges join the FAS and in-degree is decremented at
// their targets; otherwise symmetrically for in-edges. Both FAS strategies
// satisfy the same acyclicity contract.
func GreedyFas(g *core.Graph) *FAS {
	fas := &FAS{}

	outDeg := make(map[core.Key]int)
	inDeg := make(map[core.Key]int)
	outEdges := make(map[core.Key][]core.Key)
	inEdges := make(map[core.Key][]core.Key)
	remaining := make(map[core.Key]bool)

	for _, n := range g.Nodes() {
		remaining[n] = true
	}
	for _, n := range g.Nodes() {
		succ := g.Successors(n)
		outDeg[n] = len(succ)
		outEdges[n] = succ
		for _, t := range succ {
			inDeg[t]++
			inEdges[t] = append(inEdges[t], n)
		}
	}

	for len(remaining) > 0 {
		var pick core.Key
		best := -1
		first := true
		for n := range remaining {
			d := outDeg[n] - inDeg[n]
			if d < 0 {
				d = -d
			}
			if first || d > best || (d == best && n > pick) {
				pick, best, first = n, d, false
			}
		}

		if outDeg[pick] > inDeg[pick] {
			for _, t := range outEdges[pick] {
				if remaining[t] {
					fas.Edges = append(fas.Edges, EdgeRef{Source: pick, Target: t})
					inDeg[t]--
				}
			}
		} else {
			for _, s := range inEdges[pick] {
				if remaining[s] {
					fas.Edges = append(fas.Edges, EdgeRef{Source: s, Target: pick})
					outDeg[s]--
				}
			}
		}

		delete(remaining, pick)
	}

	return fas
}
