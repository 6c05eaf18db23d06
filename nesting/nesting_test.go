package nesting_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/nesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIsNoOpForNonCompound(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)
	require.NoError(t, nesting.Build(g))
	assert.Nil(t, g.NestingRoot)
}

func TestBuildAddsRootAndBorders(t *testing.T) {
	g := core.NewGraph(core.WithCompound())
	g.AddNode(1, nil)
	g.AddNode(2, nil)
	require.NoError(t, g.SetParent(2, 1)) // 2 is a child of cluster 1
	g.AddNode(3, nil)

	require.NoError(t, nesting.Build(g))
	require.NotNil(t, g.NestingRoot)

	node1 := g.Node(1)
	assert.NotNil(t, node1.BorderTop)
	assert.NotNil(t, node1.BorderBottom)

	require.NoError(t, nesting.Cleanup(g))
	assert.Nil(t, g.NestingRoot)
	for _, e := range g.Edges() {
		assert.False(t, e.Nesting)
	}
}
