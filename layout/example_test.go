package layout_test

import (
	"fmt"

	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/layout"
)

// ExampleLayout builds a small three-node chain (a straight-line feed-forward
// block of a neural-network graph) and lays it out top-to-bottom.
// Playground-style usage: construct the graph, run Layout, read ranks off
// the result.
func ExampleLayout() {
	g := core.NewGraph()
	conv, relu, pool := core.Key(1), core.Key(2), core.Key(3)
	g.AddNode(conv, &core.GraphNode{Label: "Conv2D", Width: 80, Height: 40})
	g.AddNode(relu, &core.GraphNode{Label: "ReLU", Width: 80, Height: 40})
	g.AddNode(pool, &core.GraphNode{Label: "MaxPool", Width: 80, Height: 40})
	g.AddEdge(conv, relu, nil)
	g.AddEdge(relu, pool, nil)

	res, err := layout.Layout(g)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(res.Nodes), len(res.Edges))
	// Output:
	// 3 2
}
