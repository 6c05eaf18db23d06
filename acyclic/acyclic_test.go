package acyclic_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/acyclic"
	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle builds a 3-cycle: A->B, B->C, C->A.
func triangle() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 3, nil)
	g.AddEdge(3, 1, nil)
	return g
}

func TestAcyclifyBreaksTriangleCycle(t *testing.T) {
	g := triangle()

	fas, err := acyclic.Acyclify(g)
	require.NoError(t, err)
	assert.Len(t, fas.Edges, 1, "exactly one edge must be reversed")
	assert.False(t, dfs.DetectCycle(g))

	reversedCount := 0
	for _, e := range g.Edges() {
		if e.Reversed {
			reversedCount++
		}
	}
	assert.Equal(t, 1, reversedCount)
}

func TestRestoreRoundTrip(t *testing.T) {
	g := triangle()
	original := map[core.Key]core.Key{1: 2, 2: 3, 3: 1}

	_, err := acyclic.Acyclify(g)
	require.NoError(t, err)

	require.NoError(t, acyclic.Restore(g))

	for s, want := range original {
		assert.True(t, g.HasEdge(s, want))
		e := g.Edge(s, want)
		assert.False(t, e.Reversed)
	}
}

func TestGreedyFasProducesAcyclicGraph(t *testing.T) {
	g := triangle()
	g.Config.Acyclicer = core.AcyclicGreedy

	_, err := acyclic.Acyclify(g)
	require.NoError(t, err)
	assert.False(t, dfs.DetectCycle(g))
}
