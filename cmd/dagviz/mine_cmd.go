package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dagviz/mining"
)

var mineCmd = &cobra.Command{
	Use:   "mine <path-to-graph-json>",
	Short: "Mine frequent subgraph patterns across a set of model graphs",
	Args:  cobra.ExactArgs(1),
	RunE:  runMine,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(v)
	encoding, err := cfg.minerEncoding()
	if err != nil {
		return err
	}

	gs, err := readGraphSetFile(args[0])
	if err != nil {
		return err
	}

	maxVertices := cfg.MaxVertices
	if maxVertices <= 0 {
		maxVertices = 1 << 30 // "0" on the CLI means unbounded
	}

	var buf bytes.Buffer
	minerCfg := mining.MinerConfig{
		MinSup:      cfg.MinSup,
		InnerMinSup: cfg.InnerMinSup,
		MinVertices: cfg.MinVertices,
		MaxVertices: maxVertices,
		Directed:    true,
		Mode:        mining.Stream,
		Encoding:    encoding,
		Sink:        &buf,
	}

	log.WithField("path", args[0]).Debug("dagviz: mining graphs")
	if _, err := mining.Subgraph(gs, minerCfg); err != nil {
		return fmt.Errorf("dagviz: mining failed: %w", err)
	}

	var out []byte
	if encoding == mining.JSON {
		out = mining.FixupStream(buf.Bytes())
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, out, "", "  "); err == nil {
			out = pretty.Bytes()
		}
	} else {
		out = buf.Bytes()
	}

	return writeSink(cfg.Sink, out)
}
