package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/dagviz/core"
)

// inputNode is one node of the plain graph-JSON format dagviz reads from
// disk: a minimal stand-in for model-file parsing (no .onnx/.mindir/.geir
// decoding here — just the already-normalized node/edge shape Layout and
// Subgraph need).
type inputNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type inputEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// inputGraph is one graph: directed flag, node list, edge list.
type inputGraph struct {
	Directed bool        `json:"directed"`
	Nodes    []inputNode `json:"nodes"`
	Edges    []inputEdge `json:"edges"`
}

// inputDocument is the file shape for both subcommands: `layout` reads
// Graph, `mine` reads Graphs (one transaction graph per entry).
type inputDocument struct {
	Graph  *inputGraph  `json:"graph,omitempty"`
	Graphs []inputGraph `json:"graphs,omitempty"`
}

func readGraphFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	if doc.Graph == nil {
		return nil, fmt.Errorf("dagviz: %s has no top-level \"graph\" object", path)
	}
	return buildGraph(*doc.Graph, opts...), nil
}

func readGraphSetFile(path string, opts ...core.GraphOption) ([]*core.Graph, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	if len(doc.Graphs) == 0 {
		return nil, fmt.Errorf("dagviz: %s has no top-level \"graphs\" array", path)
	}
	out := make([]*core.Graph, len(doc.Graphs))
	for i, ig := range doc.Graphs {
		out[i] = buildGraph(ig, opts...)
	}
	return out, nil
}

func readDocument(path string) (*inputDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dagviz: reading %s: %w", path, err)
	}
	var doc inputDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("dagviz: parsing %s: %w", path, err)
	}
	return &doc, nil
}

func buildGraph(ig inputGraph, opts ...core.GraphOption) *core.Graph {
	if !ig.Directed {
		opts = append(opts, core.WithUndirected())
	}
	g := core.NewGraph(opts...)

	ids := make(map[string]core.Key, len(ig.Nodes))
	for i, n := range ig.Nodes {
		key := core.Key(i + 1)
		ids[n.ID] = key
		g.AddNode(key, &core.GraphNode{Label: n.Label})
	}
	for _, e := range ig.Edges {
		src, ok := ids[e.Source]
		if !ok {
			continue
		}
		dst, ok := ids[e.Target]
		if !ok {
			continue
		}
		g.AddEdge(src, dst, nil)
	}
	return g
}
