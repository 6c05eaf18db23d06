package builder_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/builder"
	"github.com/katalvlaran/dagviz/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleHasThreeNodesAndCycle(t *testing.T) {
	g := builder.Triangle()
	assert.Len(t, g.Nodes(), 3)
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))
	assert.True(t, g.HasEdge(3, 1))
}

func TestChainRejectsTooFewVertices(t *testing.T) {
	_, err := builder.Chain(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestChainBuildsLinearPath(t *testing.T) {
	g, err := builder.Chain(4)
	require.NoError(t, err)
	assert.Len(t, g.Nodes(), 4)
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))
	assert.True(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(4, 1))
}

func TestLongEdgeHasDirectAndIndirectPath(t *testing.T) {
	g := builder.LongEdge()
	assert.Len(t, g.Nodes(), 5)
	assert.True(t, g.HasEdge(1, 5))
	assert.True(t, g.HasEdge(1, 2))
}

func TestSelfLoopHasOneNodeAndOneEdge(t *testing.T) {
	g := builder.SelfLoop()
	assert.Len(t, g.Nodes(), 1)
	assert.True(t, g.HasEdge(1, 1))
}

func TestCompoundClusterNestsLeavesUnderDistinctParents(t *testing.T) {
	g := builder.CompoundCluster()
	assert.True(t, g.IsCompound)
	assert.Equal(t, core.Key(2), g.Parent(4))
	assert.Equal(t, core.Key(3), g.Parent(5))
	assert.Equal(t, core.Key(1), g.Parent(2))
	assert.True(t, g.HasEdge(4, 5))
}
