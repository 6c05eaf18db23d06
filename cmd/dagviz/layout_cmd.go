package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dagviz/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <path-to-graph-json>",
	Short: "Lay out a model graph and print its positioned JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(v)
	opts, err := cfg.graphOptions()
	if err != nil {
		return err
	}

	g, err := readGraphFile(args[0], opts...)
	if err != nil {
		return err
	}

	log.WithField("path", args[0]).Debug("dagviz: laying out graph")
	result, err := layout.Layout(g, layout.WithLogger(log))
	if err != nil {
		return fmt.Errorf("dagviz: layout failed: %w", err)
	}

	doc, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("dagviz: encoding result: %w", err)
	}

	return writeSink(cfg.Sink, doc)
}
