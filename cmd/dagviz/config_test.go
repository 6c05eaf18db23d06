package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/mining"
)

func TestCliConfigGraphOptionsAppliesRankDir(t *testing.T) {
	cfg := cliConfig{RankDir: "LR", Acyclicer: "greedy", Ranker: "tighttree"}
	opts, err := cfg.graphOptions()
	require.NoError(t, err)

	g := core.NewGraph(opts...)
	assert.Equal(t, core.RankDirLR, g.Config.RankDir)
	assert.Equal(t, core.AcyclicGreedy, g.Config.Acyclicer)
	assert.Equal(t, core.RankerTightTree, g.Config.Ranker)
}

func TestCliConfigGraphOptionsRejectsUnknownRankDir(t *testing.T) {
	cfg := cliConfig{RankDir: "sideways"}
	_, err := cfg.graphOptions()
	assert.Error(t, err)
}

func TestCliConfigMinerEncoding(t *testing.T) {
	cfg := cliConfig{Output: "json"}
	enc, err := cfg.minerEncoding()
	require.NoError(t, err)
	assert.Equal(t, mining.JSON, enc)

	cfg.Output = "bogus"
	_, err = cfg.minerEncoding()
	assert.Error(t, err)
}
