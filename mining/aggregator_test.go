package mining_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/dagviz/gspan"
	"github.com/katalvlaran/dagviz/mining"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trianglePattern() gspan.Pattern {
	g := gspan.NewGSpanGraph(0, true)
	g.InsertVertex("1", "A")
	g.InsertVertex("2", "B")
	g.InsertVertex("3", "C")
	g.AddBuiltEdge("1", "2", "e")
	g.AddBuiltEdge("2", "3", "e")

	return gspan.Pattern{
		ID:    1,
		Graph: g,
		Support: gspan.Support{
			Between:  2,
			InnerMin: 1,
			InnerMax: 1,
			Total:    2,
		},
		Instances: []gspan.Instance{
			{NodeIDs: []gspan.VertexName{{GID: 0, Name: "1"}, {GID: 0, Name: "2"}, {GID: 0, Name: "3"}}},
		},
	}
}

func TestMinerConfigValidate(t *testing.T) {
	assert.ErrorIs(t, mining.MinerConfig{MinSup: 0, InnerMinSup: 1, MaxVertices: 1}.Validate(), mining.ErrInvalidSupport)
	assert.ErrorIs(t, mining.MinerConfig{MinSup: 1, InnerMinSup: 1, MinVertices: 5, MaxVertices: 1}.Validate(), mining.ErrInvalidVertexBounds)
	assert.ErrorIs(t, mining.MinerConfig{MinSup: 1, InnerMinSup: 1, MaxVertices: 1, Mode: mining.Stream}.Validate(), mining.ErrStreamSinkRequired)
	assert.NoError(t, mining.MinerConfig{MinSup: 1, InnerMinSup: 1, MaxVertices: 5}.Validate())
}

func TestAggregatorRejectsBelowThresholds(t *testing.T) {
	agg := mining.NewAggregator(mining.MinerConfig{MinSup: 5, InnerMinSup: 1, MaxVertices: 10})
	accepted, err := agg.Accept(trianglePattern())
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Empty(t, agg.Records())
}

func TestAggregatorBatchAccumulatesRecords(t *testing.T) {
	agg := mining.NewAggregator(mining.MinerConfig{MinSup: 1, InnerMinSup: 1, MaxVertices: 10})
	accepted, err := agg.Accept(trianglePattern())
	require.NoError(t, err)
	require.True(t, accepted)

	recs := agg.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].BetweenSup)
	assert.Len(t, recs[0].Structure.Vertices, 3)
}

func TestAggregatorStreamWritesJSONWithTrailingComma(t *testing.T) {
	var buf bytes.Buffer
	agg := mining.NewAggregator(mining.MinerConfig{
		MinSup: 1, InnerMinSup: 1, MaxVertices: 10,
		Mode: mining.Stream, Encoding: mining.JSON, Sink: &buf,
	})
	_, err := agg.Accept(trianglePattern())
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte(",")))

	fixed := mining.FixupStream(buf.Bytes())
	var arr []mining.Record
	require.NoError(t, json.Unmarshal(fixed, &arr))
	require.Len(t, arr, 1)
	assert.Equal(t, 2, arr[0].BetweenSup)
}

func TestAggregatorChannelDelivers(t *testing.T) {
	results := make(chan mining.Record, 1)
	agg := mining.NewAggregator(mining.MinerConfig{
		MinSup: 1, InnerMinSup: 1, MaxVertices: 10,
		Mode: mining.Channel, Results: results,
	})
	_, err := agg.Accept(trianglePattern())
	require.NoError(t, err)

	rec := <-results
	assert.Equal(t, 2, rec.BetweenSup)
}

func TestAggregatorChannelStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Unbuffered so the send below can only complete via the Done case.
	results := make(chan mining.Record)
	agg := mining.NewAggregator(mining.MinerConfig{
		MinSup: 1, InnerMinSup: 1, MaxVertices: 10,
		Mode: mining.Channel, Results: results, Context: ctx,
	})

	_, err := agg.Accept(trianglePattern())
	assert.ErrorIs(t, err, mining.ErrMiningCancelled)
}

func TestFixupStreamWrapsAndTrimsTrailingComma(t *testing.T) {
	raw := []byte(`{"a":1},{"a":2},`)
	got := mining.FixupStream(raw)
	assert.Equal(t, `[{"a":1},{"a":2}]`, string(got))
}
