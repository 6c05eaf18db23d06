package normalize_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/normalize"
	"github.com/katalvlaran/dagviz/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longEdgeGraph builds a,b,c,d,e with a->b->c->d->e plus the long edge a->e.
func longEdgeGraph() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 3, nil)
	g.AddEdge(3, 4, nil)
	g.AddEdge(4, 5, nil)
	g.AddEdge(1, 5, nil)
	return g
}

func TestNormalizeSplitsLongEdgeIntoThreeDummies(t *testing.T) {
	g := longEdgeGraph()
	require.NoError(t, rank.Rank(g))

	chains := normalize.Normalize(g)
	require.Len(t, chains, 1)

	assert.False(t, g.HasEdge(1, 5))

	var head core.Key
	for h := range chains {
		head = h
	}

	count := 1
	cur := head
	for {
		node := g.Node(cur)
		require.NotNil(t, node)
		assert.True(t, node.Dummy == core.DummyEdge || node.Dummy == core.DummyEdgeProxy)

		next, ok := nextInChain(g, cur)
		if !ok {
			break
		}
		cur = next
		count++
	}
	assert.Equal(t, 3, count)
}

func TestDenormalizeRoundTrip(t *testing.T) {
	g := longEdgeGraph()
	require.NoError(t, rank.Rank(g))

	chains := normalize.Normalize(g)

	for _, dummyKey := range g.DummyChains {
		node := g.Node(dummyKey)
		node.X, node.Y = 10, float64(*node.Rank)*50
	}

	normalize.Denormalize(g, chains)

	require.True(t, g.HasEdge(1, 5))
	restored := g.Edge(1, 5)
	assert.Len(t, restored.Points(), 3)
	assert.Empty(t, g.DummyChains)
}

func nextInChain(g *core.Graph, k core.Key) (core.Key, bool) {
	for _, s := range g.Successors(k) {
		if n := g.Node(s); n != nil && (n.Dummy == core.DummyEdge || n.Dummy == core.DummyEdgeProxy) {
			return s, true
		}
	}
	return core.Key(0), false
}
