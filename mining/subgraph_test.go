package mining_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/dagviz/builder"
	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/mining"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubgraphRejectsEmptyInput(t *testing.T) {
	_, err := mining.Subgraph(nil, mining.MinerConfig{MinSup: 1, InnerMinSup: 1, MaxVertices: 3})
	assert.ErrorIs(t, err, mining.ErrNoGraphs)
}

func TestSubgraphFindsFrequentTriangleAcrossTwoGraphs(t *testing.T) {
	g0 := builder.Triangle()
	g1 := builder.Triangle()

	recs, err := mining.Subgraph([]*core.Graph{g0, g1}, mining.MinerConfig{
		MinSup:      2,
		InnerMinSup: 1,
		MinVertices: 3,
		MaxVertices: 3,
		Directed:    true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	var found bool
	for _, r := range recs {
		if len(r.Structure.Vertices) == 3 {
			found = true
			assert.Equal(t, 2, r.BetweenSup)
		}
	}
	assert.True(t, found, "expected a 3-vertex pattern shared by both triangles")
}

// TestSubgraphChannelModeStopsOnCancelledContext guards against the
// recursive miner panicking or hanging when its channel-mode consumer
// walks away mid-run: an already-cancelled context must unwind Mine's
// recursion cleanly and leave Results closed.
func TestSubgraphChannelModeStopsOnCancelledContext(t *testing.T) {
	g0 := builder.Triangle()
	g1 := builder.Triangle()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := make(chan mining.Record)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range results {
		}
	}()

	_, err := mining.Subgraph([]*core.Graph{g0, g1}, mining.MinerConfig{
		MinSup:      2,
		InnerMinSup: 1,
		MinVertices: 3,
		MaxVertices: 3,
		Directed:    true,
		Mode:        mining.Channel,
		Results:     results,
		Context:     ctx,
	})
	require.NoError(t, err)
	<-done
}

func TestSubgraphJSONProducesArray(t *testing.T) {
	g0 := builder.Triangle()
	g1 := builder.Triangle()

	raw, err := mining.SubgraphJSON([]*core.Graph{g0, g1}, mining.MinerConfig{
		MinSup:      2,
		InnerMinSup: 1,
		MinVertices: 3,
		MaxVertices: 3,
		Directed:    true,
	})
	require.NoError(t, err)
	assert.True(t, raw[0] == '[')
}
