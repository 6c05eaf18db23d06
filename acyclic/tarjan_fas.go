package acyclic

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/dagviz/core"
)

// TarjanFas is an additive acyclifier (core.AcyclicTarjan, opt-in) built on
// gonum's SCC/topological-sort primitives: while topo.Sort reports a cycle,
// it finds a strongly connected component of size > 1 via topo.TarjanSCC
// and records one edge inside it for reversal. An edge already recorded is
// not picked again; if no SCC offers a new edge, the loop stops. For graphs whose edge count makes the hand-rolled DFSFas
// path's constant factors matter, gonum's production-grade SCC finder can
// be a better fit; it is additive to the spec's three Acyclicer states, not
// a replacement for the default.
func TarjanFas(g *core.Graph) *FAS {
	fas := &FAS{}
	chosen := func(s, t core.Key) bool {
		for _, ref := range fas.Edges {
			if ref.Source == s && ref.Target == t {
				return true
			}
		}
		return false
	}

	for {
		dg := toGonum(g, fas)
		_, err := topo.Sort(dg)
		if err == nil {
			break
		}

		sccs := topo.TarjanSCC(dg)
		broke := false
		for _, scc := range sccs {
			if len(scc) < 2 {
				continue
			}
			// Break the cycle by reversing one edge inside the SCC: the
			// edge from the node with the largest ID to the smallest
			// within the component (stable, deterministic choice).
			var maxNode, minNode core.Key
			first := true
			for _, n := range scc {
				k := core.Key(n.ID())
				if first || k > maxNode {
					maxNode = k
				}
				if first || k < minNode {
					minNode = k
				}
				first = false
			}
			if g.HasEdge(maxNode, minNode) && !chosen(maxNode, minNode) {
				fas.Edges = append(fas.Edges, EdgeRef{Source: maxNode, Target: minNode})
				broke = true
				break
			}
			// Fall back: break any outgoing edge from maxNode within scc.
			for _, e := range g.OutEdges(maxNode) {
				for _, n := range scc {
					if core.Key(n.ID()) == e.Target && !chosen(maxNode, e.Target) {
						fas.Edges = append(fas.Edges, EdgeRef{Source: maxNode, Target: e.Target})
						broke = true
						break
					}
				}
				if broke {
					break
				}
			}
			if broke {
				break
			}
		}
		if !broke {
			break
		}
	}

	return fas
}

// toGonum builds a gonum simple.DirectedGraph view of g with the FAS's
// edges so far treated as already reversed, so each call sees every
// reversal recorded so far.
func toGonum(g *core.Graph, fas *FAS) *simple.DirectedGraph {
	reversed := make(map[core.Key]map[core.Key]bool)
	for _, ref := range fas.Edges {
		if reversed[ref.Source] == nil {
			reversed[ref.Source] = make(map[core.Key]bool)
		}
		reversed[ref.Source][ref.Target] = true
	}

	dg := simple.NewDirectedGraph()
	for _, n := range g.Nodes() {
		dg.AddNode(simple.Node(n))
	}
	for _, e := range g.Edges() {
		s, t := e.Source, e.Target
		if reversed[s][t] {
			s, t = t, s
		}
		if s == t {
			continue
		}
		if !dg.HasEdgeFromTo(int64(s), int64(t)) {
			dg.SetEdge(simple.Edge{F: simple.Node(s), T: simple.Node(t)})
		}
	}

	return dg
}
