package mining_test

import (
	"fmt"

	"github.com/katalvlaran/dagviz/builder"
	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/mining"
)

// ExampleSubgraph mines the 3-vertex cycle shared by two identical triangle
// fixtures (standing in for two instances of the same repeated block across
// a set of model graphs) and reports its support across the input set.
func ExampleSubgraph() {
	g0 := builder.Triangle()
	g1 := builder.Triangle()

	recs, err := mining.Subgraph([]*core.Graph{g0, g1}, mining.MinerConfig{
		MinSup:      2,
		InnerMinSup: 1,
		MinVertices: 3,
		MaxVertices: 3,
		Directed:    true,
	})
	if err != nil {
		panic(err)
	}

	for _, r := range recs {
		if len(r.Structure.Vertices) == 3 {
			fmt.Println(r.BetweenSup)
			break
		}
	}
	// Output:
	// 2
}
