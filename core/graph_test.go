package core_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeAutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)

	assert.True(t, g.HasNode(1))
	assert.True(t, g.HasNode(2))
	assert.True(t, g.HasEdge(1, 2))

	e := g.Edge(1, 2)
	require.NotNil(t, e)
	assert.Equal(t, 1, e.MinLen)
	assert.Equal(t, 1.0, e.Weight)
}

func TestAddEdgeReinsertionIncrementsMultiplicity(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, &core.GraphEdge{Weight: 3})
	g.AddEdge(1, 2, &core.GraphEdge{Weight: 5})

	succ := g.Successors(1)
	require.Len(t, succ, 1)
	assert.Equal(t, core.Key(2), succ[0])

	e := g.Edge(1, 2)
	assert.Equal(t, 5.0, e.Weight, "attrs are replaced by the latest insert")
}

func TestRemoveNodeDecrementsAdjacency(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 3, nil)

	g.RemoveNode(2)

	assert.False(t, g.HasNode(2))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 3))
	assert.Empty(t, g.Successors(1))
}

func TestSourcesAndSinks(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 3, nil)

	assert.ElementsMatch(t, []core.Key{1}, g.Sources())
	assert.ElementsMatch(t, []core.Key{3}, g.Sinks())
}

func TestSetParentFlattensToTopLevelAncestor(t *testing.T) {
	g := core.NewGraph(core.WithCompound())
	g.AddNode(1, nil)
	g.AddNode(2, nil)
	g.AddNode(3, nil)

	require.NoError(t, g.SetParent(2, 1))
	// 3's proposed parent is 2, but 2 is not top-level: its parent 1 is.
	// SetParent walks up from 2 to that top-level ancestor, so 3 ends up
	// under 1.
	require.NoError(t, g.SetParent(3, 2))

	assert.Equal(t, core.Key(1), g.Parent(2))
	assert.Equal(t, core.Key(1), g.Parent(3))
}

func TestSetParentRequiresCompound(t *testing.T) {
	g := core.NewGraph()
	err := g.SetParent(1, 2)
	assert.ErrorIs(t, err, core.ErrNotCompound)
}

func TestGraphEdgePointsRoundTrip(t *testing.T) {
	e := &core.GraphEdge{}
	pts := []core.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	e.SetPoints(pts)
	assert.Equal(t, pts, e.Points())

	e.PrependPoint(core.Point{X: 0, Y: 0})
	assert.Equal(t, core.Point{X: 0, Y: 0}, e.Points()[0])

	e.ReversePoints()
	assert.Equal(t, core.Point{X: 3, Y: 3}, e.Points()[0])
}

func TestEdgeKeyRoundTrip(t *testing.T) {
	s, tg := core.Key(123), core.Key(456)
	k := core.EdgeKey(s, tg)
	gotS, gotT := core.SplitEdgeKey(k)
	assert.Equal(t, s, gotS)
	assert.Equal(t, tg, gotT)
}

func TestSelfEdgesBucketed(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 1, nil)
	assert.Len(t, g.SelfEdges(1), 1)
	g.ClearSelfEdges(1)
	assert.Empty(t, g.SelfEdges(1))
}
