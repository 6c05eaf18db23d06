package dfs_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond builds A->B, A->C, B->D, C->D.
func diamond() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)
	g.AddEdge(1, 3, nil)
	g.AddEdge(2, 4, nil)
	g.AddEdge(3, 4, nil)
	return g
}

func TestDFSVisitsEveryReachableNode(t *testing.T) {
	g := diamond()
	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)

	for _, k := range []core.Key{1, 2, 3, 4} {
		assert.True(t, res.Visited[k])
	}
	assert.Equal(t, 0, res.Depth[1])
	assert.Equal(t, 1, res.Depth[2])
	assert.Equal(t, 1, res.Depth[3])
	assert.Equal(t, 2, res.Depth[4])

	// 4 is a post-order leaf: it must finish (appear in Order) before its
	// parents do, regardless of which parent reaches it first.
	pos := make(map[core.Key]int, len(res.Order))
	for i, k := range res.Order {
		pos[k] = i
	}
	assert.Less(t, pos[4], pos[1])
}

func TestDFSRespectsMaxDepth(t *testing.T) {
	g := chainGraph(6)
	res, err := dfs.DFS(g, 1, dfs.WithMaxDepth(2))
	require.NoError(t, err)

	assert.True(t, res.Visited[1])
	assert.True(t, res.Visited[2])
	assert.True(t, res.Visited[3])
	assert.False(t, res.Visited[4])
	assert.False(t, res.Visited[5])
}

func TestDFSFullTraversalCoversDisconnectedComponents(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)
	g.AddEdge(10, 20, nil)

	res, err := dfs.DFS(g, 1, dfs.WithFullTraversal())
	require.NoError(t, err)
	for _, k := range []core.Key{1, 2, 10, 20} {
		assert.True(t, res.Visited[k])
	}
}

func TestDFSDeepChainDoesNotOverflowCallStack(t *testing.T) {
	const n = 50000
	g := chainGraph(n)

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.True(t, res.Visited[core.Key(n)])
	assert.Equal(t, n-1, res.Depth[core.Key(n)])
	assert.Len(t, res.Order, n)
	// Post-order: the chain's tail finishes first.
	assert.Equal(t, core.Key(n), res.Order[0])
}

// chainGraph builds a straight chain of n nodes, 1->2->...->n.
func chainGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		g.AddEdge(core.Key(i), core.Key(i+1), nil)
	}
	return g
}

func TestDetectCycleFindsDirectedCycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 3, nil)
	g.AddEdge(3, 1, nil)
	assert.True(t, dfs.DetectCycle(g))
}

func TestDetectCycleFalseOnDAG(t *testing.T) {
	assert.False(t, dfs.DetectCycle(diamond()))
}

func TestDetectCycleDeepChainDoesNotOverflowCallStack(t *testing.T) {
	g := chainGraph(50000)
	assert.False(t, dfs.DetectCycle(g))
}

func TestTopologicalSortOrdersBeforeSuccessors(t *testing.T) {
	g := diamond()
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := make(map[core.Key]int, len(order))
	for i, k := range order {
		pos[k] = i
	}
	assert.Less(t, pos[1], pos[2])
	assert.Less(t, pos[1], pos[3])
	assert.Less(t, pos[2], pos[4])
	assert.Less(t, pos[3], pos[4])
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 1, nil)

	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSortDeepChainDoesNotOverflowCallStack(t *testing.T) {
	g := chainGraph(50000)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 50000)
	assert.Equal(t, core.Key(1), order[0])
	assert.Equal(t, core.Key(50000), order[len(order)-1])
}
