// Package main implements dagviz, a cobra-driven CLI wrapping this
// module's two library entry points: the Sugiyama-style layout engine
// (layout.Layout) and the gSpan-style frequent subgraph miner
// (mining.Subgraph). The libraries are the reusable core; this binary is
// the ambient command-line tooling built around them.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	log = logrus.New()
	v   = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "dagviz",
	Short: "Layout and mine neural-network model graphs",
	Long: `dagviz lays out a model graph with a Sugiyama-style hierarchical DAG
layout engine and mines frequent subgraph patterns across a set of model
graphs with a gSpan-style canonical-DFS-code miner.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		v.AutomaticEnv()
		v.SetEnvPrefix("dagviz")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.PersistentFlags().Float64("nodesep", 0, "horizontal gap between non-dummy neighbors in a rank")
	rootCmd.PersistentFlags().Float64("ranksep", 0, "vertical gap between ranks")
	rootCmd.PersistentFlags().String("rankdir", "TB", "layout direction: TB, BT, LR, RL")
	rootCmd.PersistentFlags().String("acyclicer", "Dfs", "feedback-arc-set strategy: Dfs, Greedy, None, Tarjan")
	rootCmd.PersistentFlags().String("ranker", "NetworkSimplex", "rank-assignment algorithm: TightTree, LongestPath, NetworkSimplex")

	rootCmd.PersistentFlags().Int("min-sup", 1, "cross-graph support floor")
	rootCmd.PersistentFlags().Int("inner-min-sup", 1, "within-graph support floor")
	rootCmd.PersistentFlags().Int("min-vertices", 2, "minimum pattern vertex count")
	rootCmd.PersistentFlags().Int("max-vertices", 0, "maximum pattern vertex count (0 = unbounded)")

	rootCmd.PersistentFlags().String("output", "text", "output encoding: text, json")
	rootCmd.PersistentFlags().String("sink", "stdout", "output sink: stdout, or a file path")

	_ = v.BindPFlags(rootCmd.PersistentFlags())
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
