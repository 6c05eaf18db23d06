package gspan_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/gspan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleVertexGraph builds a single graph of four vertices with no edges,
// labels [X, X, Y, X].
func singleVertexGraph() *gspan.Graph {
	g := gspan.NewGSpanGraph(0, true)
	g.InsertVertex("1", "X")
	g.InsertVertex("2", "X")
	g.InsertVertex("3", "Y")
	g.InsertVertex("4", "X")
	return g
}

func TestMineSingleVertexFrequency(t *testing.T) {
	g := singleVertexGraph()

	patterns, err := gspan.Mine([]*gspan.Graph{g}, gspan.Config{
		MinSup:      1,
		InnerMinSup: 3,
		MaxPatMin:   1,
		MaxPatMax:   1,
		Directed:    true,
	}, nil)
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.Equal(t, 3, p.Support.Total)
	require.Len(t, p.Graph.Vertices, 1)
	assert.Equal(t, "X", p.Graph.Vertices[0].Label)
}

// triangleGraph builds one directed triangle A->B, B->C, A->C with a
// given graph id.
func triangleGraph(id int) *gspan.Graph {
	g := gspan.NewGSpanGraph(id, true)
	g.InsertVertex("1", "A")
	g.InsertVertex("2", "B")
	g.InsertVertex("3", "C")
	g.AddBuiltEdge("1", "2", "e")
	g.AddBuiltEdge("2", "3", "e")
	g.AddBuiltEdge("1", "3", "e")
	return g
}

func TestMineTriangleAcrossTwoGraphs(t *testing.T) {
	g0 := triangleGraph(0)
	g1 := triangleGraph(1)

	patterns, err := gspan.Mine([]*gspan.Graph{g0, g1}, gspan.Config{
		MinSup:      2,
		InnerMinSup: 1,
		MaxPatMin:   3,
		MaxPatMax:   3,
		Directed:    true,
	}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, patterns)

	var threeNode *gspan.Pattern
	for i := range patterns {
		if len(patterns[i].Graph.Vertices) == 3 {
			threeNode = &patterns[i]
			break
		}
	}
	require.NotNil(t, threeNode, "expected a pattern with two instances (one per input graph)")
	assert.Equal(t, 2, threeNode.Support.Between)
	assert.Len(t, threeNode.Graph.Vertices, 3)
}
