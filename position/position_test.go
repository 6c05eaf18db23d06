package position_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/order"
	"github.com/katalvlaran/dagviz/position"
	"github.com/katalvlaran/dagviz/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wideGraph() *core.Graph {
	g := core.NewGraph()
	for _, k := range []core.Key{1, 2, 3} {
		g.AddNode(k, &core.GraphNode{Width: 40, Height: 20})
	}
	g.AddNode(4, &core.GraphNode{Width: 40, Height: 20})
	g.AddEdge(1, 4, nil)
	g.AddEdge(2, 4, nil)
	g.AddEdge(3, 4, nil)
	return g
}

func TestPositionMonotonicWithinRank(t *testing.T) {
	g := wideGraph()
	require.NoError(t, rank.Rank(g))
	require.NoError(t, order.Order(g))
	require.NoError(t, position.Position(g))

	ordered := []core.Key{1, 2, 3}
	// sort by assigned Order
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0; j-- {
			ni, nj := g.Node(ordered[j]), g.Node(ordered[j-1])
			if *ni.Order < *nj.Order {
				ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
			} else {
				break
			}
		}
	}

	for i := 1; i < len(ordered); i++ {
		u, v := g.Node(ordered[i-1]), g.Node(ordered[i])
		assert.LessOrEqual(t, u.X+u.Width/2+g.Config.NodeSep, v.X-v.Width/2)
	}
}

func TestPositionYStacksRanksWithGap(t *testing.T) {
	g := wideGraph()
	require.NoError(t, rank.Rank(g))
	require.NoError(t, order.Order(g))
	require.NoError(t, position.Position(g))

	n1 := g.Node(1)
	n4 := g.Node(4)
	assert.Greater(t, n4.Y, n1.Y)
}
