package normalize

import "github.com/katalvlaran/dagviz/core"

// originalAttrs preserves the bits of a long edge that survive the chain
// of dummies until Denormalize re-inserts the edge.
type originalAttrs struct {
	source, target core.Key
	reversed       bool
	minLen         int
	weight         float64
	nesting        bool
	labelRank      int
	hasLabelRank   bool
}

// Chains maps a chain-head dummy key (the first DummyEdge node in a
// chain, as also recorded in g.DummyChains) to the attrs of the long edge
// it replaces.
type Chains map[core.Key]originalAttrs

// Normalize replaces every edge (s,t) with rank(t)-rank(s) > 1 by a chain
// of DummyEdge nodes, one per intermediate rank, linked by unit-length
// edges. Exactly one dummy per chain — the one whose rank equals the
// edge's own Rank field, if that falls strictly between s and t's ranks —
// is tagged DummyEdgeProxy as a label anchor. Requires every node to
// already carry a Rank (post rank-assignment).
func Normalize(g *core.Graph) Chains {
	chains := make(Chains)

	for _, e := range g.Edges() {
		if e.Source == e.Target {
			continue // self-edges are handled by the selfedge package
		}

		sNode := g.Node(e.Source)
		tNode := g.Node(e.Target)
		if sNode == nil || tNode == nil || sNode.Rank == nil || tNode.Rank == nil {
			continue
		}

		sRank, tRank := *sNode.Rank, *tNode.Rank
		span := tRank - sRank
		if span <= 1 {
			// span <= 0 would violate the post-ranking invariant
			// rank(target)-rank(source) >= minlen > 0; treat defensively
			// as already-tight rather than panicking on bad input.
			continue
		}

		attrs := originalAttrs{
			source:   e.Source,
			target:   e.Target,
			reversed: e.Reversed,
			minLen:   e.MinLen,
			weight:   e.Weight,
			nesting:  e.Nesting,
		}
		if e.Rank > sRank && e.Rank < tRank {
			attrs.labelRank, attrs.hasLabelRank = e.Rank, true
		}

		chainHead := insertChain(g, e, sNode, tNode, span, attrs.labelRank, attrs.hasLabelRank)
		chains[chainHead] = attrs
		g.DummyChains = append(g.DummyChains, chainHead)
	}

	return chains
}

// insertChain removes e and links source to target through span-1 fresh
// DummyEdge nodes, one per intermediate rank, returning the head of the
// new chain. Relies on the post-ranking invariant rank(target) >
// rank(source) for every edge.
func insertChain(g *core.Graph, e *core.GraphEdge, sNode, _ *core.GraphNode, span, labelRank int, hasLabelRank bool) core.Key {
	g.RemoveEdge(e.Source, e.Target)

	prev := e.Source
	var head core.Key
	rankCursor := *sNode.Rank
	for i := 1; i < span; i++ {
		rankCursor++
		dk := g.NextDummyKey()
		rv := rankCursor
		kind := core.DummyEdge
		if hasLabelRank && rankCursor == labelRank {
			kind = core.DummyEdgeProxy
		}
		ek := core.EdgeKey(e.Source, e.Target)
		g.AddNode(dk, &core.GraphNode{Rank: &rv, Dummy: kind, Edge: &ek})
		g.AddEdge(prev, dk, &core.GraphEdge{Weight: e.Weight})

		if i == 1 {
			head = dk
		}
		prev = dk
	}

	g.AddEdge(prev, e.Target, &core.GraphEdge{Weight: e.Weight})

	return head
}
