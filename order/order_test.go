package order_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/order"
	"github.com/katalvlaran/dagviz/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAssignsDistinctOrdersPerRank(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 3, nil)
	g.AddEdge(2, 3, nil)
	g.AddEdge(3, 4, nil)
	g.AddEdge(3, 5, nil)

	require.NoError(t, rank.Rank(g))
	require.NoError(t, order.Order(g))

	seen := map[int]map[int]bool{}
	for _, k := range g.Nodes() {
		n := g.Node(k)
		require.NotNil(t, n.Rank)
		require.NotNil(t, n.Order)
		if seen[*n.Rank] == nil {
			seen[*n.Rank] = map[int]bool{}
		}
		assert.False(t, seen[*n.Rank][*n.Order], "duplicate order %d within rank %d", *n.Order, *n.Rank)
		seen[*n.Rank][*n.Order] = true
	}
}

func TestCrossCountZeroForNonCrossingPair(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 3, nil)
	g.AddEdge(2, 4, nil)

	m := order.Matrix{{1, 2}, {3, 4}}
	assert.Equal(t, 0.0, order.CrossCount(g, m))
}

func TestCrossCountPositiveForCrossingPair(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 4, nil)
	g.AddEdge(2, 3, nil)

	m := order.Matrix{{1, 2}, {3, 4}}
	assert.Greater(t, order.CrossCount(g, m), 0.0)
}
