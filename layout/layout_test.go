package layout_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/builder"
	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutTriangleCycleRestoresAndProducesThreeRanks(t *testing.T) {
	g := builder.Triangle()

	res, err := layout.Layout(g)
	require.NoError(t, err)
	require.Len(t, res.Nodes, 3)

	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))
	assert.True(t, g.HasEdge(3, 1))
	for _, e := range g.Edges() {
		assert.False(t, e.Reversed)
	}

	ranks := map[int]bool{}
	xs := map[float64]bool{}
	for _, k := range []core.Key{1, 2, 3} {
		n := g.Node(k)
		require.NotNil(t, n.Rank)
		ranks[*n.Rank] = true
		xs[n.X] = true
	}
	assert.Len(t, ranks, 3, "triangle must produce three distinct ranks")
	assert.Len(t, xs, 3, "triangle must produce three distinct x coordinates")

	minX, minY := 0.0, 0.0
	for _, nb := range res.Nodes {
		if float64(nb.X) < minX {
			minX = float64(nb.X)
		}
		if float64(nb.Y) < minY {
			minY = float64(nb.Y)
		}
	}
	assert.Zero(t, minX)
	assert.Zero(t, minY)
}

func TestLayoutStraightChainFiveRanksSameX(t *testing.T) {
	g, err := builder.Chain(5)
	require.NoError(t, err)

	_, err = layout.Layout(g)
	require.NoError(t, err)

	ranks := map[int]bool{}
	var firstX float64
	for i, k := range []core.Key{1, 2, 3, 4, 5} {
		n := g.Node(k)
		require.NotNil(t, n.Rank)
		ranks[*n.Rank] = true
		if i == 0 {
			firstX = n.X
		} else {
			assert.InDelta(t, firstX, n.X, 1e-6)
		}
	}
	assert.Len(t, ranks, 5)
}

func TestChainRejectsTooFewVertices(t *testing.T) {
	_, err := builder.Chain(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestLayoutLongEdgeProducesMultiPointPolyline(t *testing.T) {
	g := builder.LongEdge()

	_, err := layout.Layout(g)
	require.NoError(t, err)

	require.True(t, g.HasEdge(1, 5))
	pts := g.Edge(1, 5).Points()
	require.GreaterOrEqual(t, len(pts), 3, "long edge must carry the recorded dummy bend points")

	for i := 1; i < len(pts); i++ {
		assert.GreaterOrEqual(t, pts[i].Y, pts[i-1].Y, "points along a->e must run top to bottom")
	}
}

func TestLayoutSelfLoopProducesBulgePolyline(t *testing.T) {
	g := builder.SelfLoop()

	_, err := layout.Layout(g)
	require.NoError(t, err)

	require.True(t, g.HasEdge(1, 1))
	pts := g.Edge(1, 1).Points()
	require.GreaterOrEqual(t, len(pts), 6)

	minX, maxX := pts[0].X, pts[0].X
	for _, p := range pts {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	assert.Greater(t, maxX-minX, 0.0, "self-loop bulge must spread horizontally")
}

func TestBasisSplineEmptyBelowThreePoints(t *testing.T) {
	assert.Empty(t, layout.BasisSpline(nil))
	assert.Empty(t, layout.BasisSpline([]core.Point{{X: 0, Y: 0}}))
	assert.Empty(t, layout.BasisSpline([]core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}))
}

func TestBasisSplineStartsAtFirstPoint(t *testing.T) {
	pts := []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 10}}
	path := layout.BasisSpline(pts)
	require.NotEmpty(t, path)
	assert.Equal(t, byte('M'), path[0])
	assert.Contains(t, path, "C")
}

func TestLayoutJSONMarshalsModelVerbatim(t *testing.T) {
	g, err := builder.Chain(5)
	require.NoError(t, err)
	model := []byte(`{"name":"demo"}`)

	out, err := layout.LayoutJSON(g, model)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"model":{"name":"demo"}`)
	assert.Contains(t, string(out), `"nodes":`)
	assert.Contains(t, string(out), `"edges":`)
}
