package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/mining"
)

// cliConfig mirrors the `GraphConfig`/`MinerConfig` options recognized by
// the layout engine and miner, bound from cobra flags via viper so either
// flags or environment variables (DAGVIZ_*) can set them.
type cliConfig struct {
	NodeSep   float64
	RankSep   float64
	RankDir   string
	Acyclicer string
	Ranker    string

	MinSup      int
	InnerMinSup int
	MinVertices int
	MaxVertices int

	Output string // "text" or "json"
	Sink   string // "stdout" or a file path
}

func loadConfig(v *viper.Viper) cliConfig {
	return cliConfig{
		NodeSep:     v.GetFloat64("nodesep"),
		RankSep:     v.GetFloat64("ranksep"),
		RankDir:     v.GetString("rankdir"),
		Acyclicer:   v.GetString("acyclicer"),
		Ranker:      v.GetString("ranker"),
		MinSup:      v.GetInt("min-sup"),
		InnerMinSup: v.GetInt("inner-min-sup"),
		MinVertices: v.GetInt("min-vertices"),
		MaxVertices: v.GetInt("max-vertices"),
		Output:      v.GetString("output"),
		Sink:        v.GetString("sink"),
	}
}

func (c cliConfig) graphOptions() ([]core.GraphOption, error) {
	var opts []core.GraphOption

	cfg := core.DefaultGraphConfig()
	if c.NodeSep > 0 {
		cfg.NodeSep = c.NodeSep
	}
	if c.RankSep > 0 {
		cfg.RankSep = c.RankSep
	}

	switch strings.ToLower(c.RankDir) {
	case "", "tb":
		cfg.RankDir = core.RankDirTB
	case "bt":
		cfg.RankDir = core.RankDirBT
	case "lr":
		cfg.RankDir = core.RankDirLR
	case "rl":
		cfg.RankDir = core.RankDirRL
	default:
		return nil, fmt.Errorf("dagviz: unknown rankdir %q (valid: TB, BT, LR, RL)", c.RankDir)
	}

	switch strings.ToLower(c.Acyclicer) {
	case "", "dfs":
		cfg.Acyclicer = core.AcyclicDfs
	case "greedy":
		cfg.Acyclicer = core.AcyclicGreedy
	case "none":
		cfg.Acyclicer = core.AcyclicNone
	case "tarjan":
		cfg.Acyclicer = core.AcyclicTarjan
	default:
		return nil, fmt.Errorf("dagviz: unknown acyclicer %q (valid: Dfs, Greedy, None, Tarjan)", c.Acyclicer)
	}

	switch strings.ToLower(c.Ranker) {
	case "", "networksimplex":
		cfg.Ranker = core.RankerNetworkSimplex
	case "tighttree":
		cfg.Ranker = core.RankerTightTree
	case "longestpath":
		cfg.Ranker = core.RankerLongestPath
	default:
		return nil, fmt.Errorf("dagviz: unknown ranker %q (valid: TightTree, LongestPath, NetworkSimplex)", c.Ranker)
	}

	opts = append(opts, core.WithConfig(cfg))
	return opts, nil
}

func (c cliConfig) minerEncoding() (mining.Encoding, error) {
	switch strings.ToLower(c.Output) {
	case "", "text":
		return mining.Text, nil
	case "json":
		return mining.JSON, nil
	default:
		return 0, fmt.Errorf("dagviz: unknown output encoding %q (valid: text, json)", c.Output)
	}
}
