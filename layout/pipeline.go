package layout

import (
	"github.com/katalvlaran/dagviz/acyclic"
	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/nesting"
	"github.com/katalvlaran/dagviz/normalize"
	"github.com/katalvlaran/dagviz/order"
	"github.com/katalvlaran/dagviz/position"
	"github.com/katalvlaran/dagviz/rank"
	"github.com/katalvlaran/dagviz/selfedge"
)

// Layout runs the fixed 23-step pipeline over g in place and returns the
// rendered Result. Step numbers are preserved in comments so the
// sequence can be checked against the driving specification directly.
func Layout(g *core.Graph, opts ...LayoutOption) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts)
	log := o.log.WithField("component", "layout")

	// 1. make_space_for_edge_labels
	g.Config.RankSep /= 2
	for _, e := range g.Edges() {
		e.MinLen *= 2
	}
	log.Debug("reserved edge-label space")

	// 2. remove self-edges
	selfedge.Extract(g)
	log.Debug("extracted self-edges")

	// 3. acyclify
	fas, err := acyclic.Acyclify(g)
	if err != nil {
		return nil, err
	}
	log.WithField("reversed", len(fas.Edges)).Debug("broke cycles")

	// 4. nesting run
	if err := nesting.Build(g); err != nil {
		return nil, err
	}
	log.Debug("built nesting graph")

	// 5. rank on a non-compound projection, transferred back by shared
	// node/edge pointers (Go's reference semantics stand in for the
	// source's explicit copy-back transfer step).
	if err := rankProjection(g); err != nil {
		return nil, err
	}
	log.Debug("assigned ranks")

	// 6. remove empty ranks
	removeEmptyRanks(g)

	// 7. nesting cleanup
	if err := nesting.Cleanup(g); err != nil {
		return nil, err
	}

	// 8. normalize ranks
	rank.NormalizeRanks(g)

	// 9. assign min/max rank from border nodes
	assignRankMinMax(g)

	// 10. remove edge proxies
	removeEdgeProxies(g)

	// 11. normalize long edges
	chains := normalize.Normalize(g)
	log.WithField("chains", len(chains)).Debug("normalized long edges")

	// 12. parent dummy chains
	parentDummyChains(g)

	// 13. order
	if err := order.Order(g); err != nil {
		return nil, err
	}
	log.Debug("ordered ranks")

	// 14. insert self-edge dummies
	matrix := keyMatrixFromOrder(g)
	dummies := selfedge.InsertDummies(g, matrix)

	// 15. coordinate adjust
	coordinateAdjust(g)

	// 16. position
	if err := position.Position(g); err != nil {
		return nil, err
	}
	log.Debug("positioned nodes")

	// 17. position self-edges
	selfedge.PositionAndRemove(g, dummies)

	// 18. denormalize
	normalize.Denormalize(g, chains)

	// 19. undo coordinate adjust
	undoCoordinateAdjust(g)

	// 20. translate graph
	selfedge.Translate(g)

	// 21. assign node intersects
	selfedge.AssignIntersects(g)

	// 22. reverse points for reversed edges
	selfedge.ReverseReversedPoints(g)

	// 23. restore cycles
	if err := acyclic.Restore(g); err != nil {
		return nil, err
	}
	log.Debug("layout complete")

	return buildResult(g), nil
}

// keyMatrixFromOrder rebuilds the rank/order matrix from each node's
// already-assigned Rank/Order fields, for steps that run after Order but
// need the matrix shape again (self-edge dummy insertion).
func keyMatrixFromOrder(g *core.Graph) [][]core.Key {
	maxRank := 0
	for _, k := range g.Nodes() {
		n := g.Node(k)
		if n.Rank != nil && *n.Rank > maxRank {
			maxRank = *n.Rank
		}
	}
	matrix := make([][]core.Key, maxRank+1)
	for _, k := range g.Nodes() {
		n := g.Node(k)
		if n.Rank == nil || n.Order == nil {
			continue
		}
		matrix[*n.Rank] = append(matrix[*n.Rank], k)
	}
	for _, layer := range matrix {
		sortByOrder(g, layer)
	}
	return matrix
}

func sortByOrder(g *core.Graph, layer []core.Key) {
	for i := 1; i < len(layer); i++ {
		for j := i; j > 0; j-- {
			a, b := g.Node(layer[j-1]), g.Node(layer[j])
			ao, bo := 0, 0
			if a.Order != nil {
				ao = *a.Order
			}
			if b.Order != nil {
				bo = *b.Order
			}
			if ao <= bo {
				break
			}
			layer[j-1], layer[j] = layer[j], layer[j-1]
		}
	}
}

// rankProjection runs ranking on a non-compound view of g: only nodes with
// no children participate (cluster containers are excluded and instead get
// their rank range from assignRankMinMax), but since AddNode stores the same
// *GraphNode pointer, ranking the projection mutates the shared node
// directly — no separate transfer-back step is needed.
func rankProjection(g *core.Graph) error {
	if !g.IsCompound {
		return rank.Rank(g)
	}

	proj := core.NewGraph(core.WithConfig(g.Config))
	for _, k := range g.Nodes() {
		if len(g.Children(k)) == 0 {
			proj.AddNode(k, g.Node(k))
		}
	}
	for _, e := range g.Edges() {
		proj.AddEdge(e.Source, e.Target, e)
	}

	return rank.Rank(proj)
}
