package mining

import (
	"bytes"
	"encoding/json"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/gspan"
)

// Subgraph is the façade the external `subgraph()` entry point calls: it
// converts each input graph to the miner's internal representation, runs
// gspan.Mine, and gates/renders every accepted pattern through an
// Aggregator per cfg.Mode/Encoding. Batch mode is the only mode that
// returns its records; Stream and Channel modes deliver through
// cfg.Sink/cfg.Results as mining proceeds and keep no records, so Subgraph
// returns nil records for them. In Channel mode, a cancelled cfg.Context
// unwinds the miner's recursion early and Subgraph returns with no error.
func Subgraph(gs []*core.Graph, cfg MinerConfig) ([]Record, error) {
	if len(gs) == 0 {
		return nil, ErrNoGraphs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	trans := make([]*gspan.Graph, len(gs))
	for i, g := range gs {
		trans[i] = toGSpanGraph(i, g, cfg.Directed)
	}

	agg := NewAggregator(cfg)

	minCfg := gspan.Config{
		MinSup:      cfg.MinSup,
		InnerMinSup: cfg.InnerMinSup,
		MaxPatMin:   cfg.MinVertices,
		MaxPatMax:   cfg.MaxVertices,
		Directed:    cfg.Directed,
	}

	var acceptErr error
	_, err := gspan.Mine(trans, minCfg, func(p gspan.Pattern) bool {
		_, acceptErr = agg.Accept(p)
		return acceptErr == nil
	})
	if err != nil {
		return nil, err
	}
	if acceptErr != nil && acceptErr != ErrMiningCancelled {
		return nil, acceptErr
	}

	if cfg.Mode == Channel && cfg.Results != nil {
		close(cfg.Results)
	}

	return agg.Records(), nil
}

// SubgraphJSON wraps Subgraph, marshaling the accepted patterns to a JSON
// array of per-pattern records.
func SubgraphJSON(gs []*core.Graph, cfg MinerConfig) ([]byte, error) {
	cfg.Encoding = JSON
	records, err := Subgraph(gs, cfg)
	if err != nil {
		return nil, err
	}
	return json.Marshal(records)
}

// FixupStream repairs the comma-separated object stream a Stream-mode
// JSON-encoded sink accumulates: trims the trailing comma left by the last
// write and wraps the whole thing in `[...]`, turning it into one valid
// JSON array.
func FixupStream(raw []byte) []byte {
	trimmed := bytes.TrimRight(raw, "\n")
	trimmed = bytes.TrimSuffix(trimmed, []byte(","))

	var out bytes.Buffer
	out.WriteByte('[')
	out.Write(trimmed)
	out.WriteByte(']')
	return out.Bytes()
}
