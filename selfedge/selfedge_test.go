package selfedge_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/selfedge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRemovesSelfLoopFromActiveEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(1, &core.GraphNode{Width: 40, Height: 20})
	g.AddEdge(1, 1, nil)
	require.True(t, g.HasEdge(1, 1))

	selfedge.Extract(g)

	assert.False(t, g.HasEdge(1, 1))
	assert.Len(t, g.SelfEdges(1), 1)
}

func TestInsertAndPositionProducesSixPointBulge(t *testing.T) {
	g := core.NewGraph()
	rv := 0
	g.AddNode(1, &core.GraphNode{Width: 40, Height: 20, Rank: &rv})
	g.AddEdge(1, 1, nil)

	selfedge.Extract(g)

	matrix := [][]core.Key{{1}}
	dummies := selfedge.InsertDummies(g, matrix)
	require.Len(t, dummies, 1)

	var dummyKey core.Key
	for k := range dummies {
		dummyKey = k
	}
	g.Node(dummyKey).X = g.Node(1).X + 30
	g.Node(dummyKey).Y = g.Node(1).Y

	selfedge.PositionAndRemove(g, dummies)

	require.True(t, g.HasEdge(1, 1))
	pts := g.Edge(1, 1).Points()
	assert.Len(t, pts, 6)
	assert.False(t, g.HasNode(dummyKey))

	node := g.Node(1)
	assert.InDelta(t, node.Height/2, node.Y-pts[0].Y, 1e-9)
	assert.InDelta(t, node.Y, pts[3].Y, 1e-9)
}

func TestTranslateShiftsMinToZero(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(1, &core.GraphNode{X: 10, Y: 20, Width: 10, Height: 10})
	g.AddNode(2, &core.GraphNode{X: -5, Y: -5, Width: 10, Height: 10})

	selfedge.Translate(g)

	minX, minY := 0.0, 0.0
	for _, k := range g.Nodes() {
		n := g.Node(k)
		if n.X-n.Width/2 < minX {
			minX = n.X - n.Width/2
		}
		if n.Y-n.Height/2 < minY {
			minY = n.Y - n.Height/2
		}
	}
	assert.InDelta(t, 0, minX, 1e-9)
	assert.InDelta(t, 0, minY, 1e-9)
}
