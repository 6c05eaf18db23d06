package mining

import (
	"fmt"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/gspan"
)

// sentinelEdgeLabel is used for every converted edge: the layout model has
// no per-edge type concept (core.GraphEdge carries no label field), so
// every edge is treated as belonging to a single "operand flow" class for
// mining purposes.
const sentinelEdgeLabel = "flow"

// toGSpanGraph converts a layout-model graph into the string-named,
// fully-labeled graph representation the miner operates on: each node's
// packed core.Key becomes its vertex name, GraphNode.Label becomes its
// vertex label, and every edge is assigned sentinelEdgeLabel.
func toGSpanGraph(id int, g *core.Graph, directed bool) *gspan.Graph {
	out := gspan.NewGSpanGraph(id, directed)

	for _, key := range g.Nodes() {
		n := g.Node(key)
		label := NilLabel(n)
		out.InsertVertex(vertexName(key), label)
	}

	for _, e := range g.Edges() {
		out.AddBuiltEdge(vertexName(e.Source), vertexName(e.Target), sentinelEdgeLabel)
	}

	return out
}

// NilLabel returns n's display label, or gspan's nil-label sentinel when n
// is absent or its label is empty.
func NilLabel(n *core.GraphNode) string {
	if n == nil || n.Label == "" {
		return gspan.NilVertexLabel
	}
	return n.Label
}

func vertexName(k core.Key) string {
	return fmt.Sprintf("%d", uint64(k))
}
