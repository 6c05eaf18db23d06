package position

import (
	"sort"

	"github.com/katalvlaran/dagviz/core"
)

// keyMatrix rebuilds the rank/order layer matrix from each node's already
// assigned Rank and Order fields (the order package's own Matrix has
// already been discarded by this point in the pipeline).
func keyMatrix(g *core.Graph) [][]core.Key {
	max := -1
	for _, k := range g.Nodes() {
		n := g.Node(k)
		if n != nil && n.Rank != nil && *n.Rank > max {
			max = *n.Rank
		}
	}
	if max < 0 {
		return nil
	}

	m := make([][]core.Key, max+1)
	for _, k := range g.Nodes() {
		n := g.Node(k)
		if n == nil || n.Rank == nil {
			continue
		}
		m[*n.Rank] = append(m[*n.Rank], k)
	}

	for _, layer := range m {
		sort.Slice(layer, func(i, j int) bool {
			oi, oj := orderOf(g, layer[i]), orderOf(g, layer[j])
			return oi < oj
		})
	}

	return m
}

func orderOf(g *core.Graph, k core.Key) int {
	n := g.Node(k)
	if n == nil || n.Order == nil {
		return 0
	}
	return *n.Order
}

func cloneMatrix(m [][]core.Key) [][]core.Key {
	out := make([][]core.Key, len(m))
	for i, layer := range m {
		out[i] = append([]core.Key(nil), layer...)
	}
	return out
}

func reverseMatrix(m [][]core.Key) [][]core.Key {
	out := make([][]core.Key, len(m))
	for i, layer := range m {
		out[len(m)-1-i] = append([]core.Key(nil), layer...)
	}
	return out
}

func reverseLayers(m [][]core.Key) {
	for _, layer := range m {
		for i, j := 0, len(layer)-1; i < j; i, j = i+1, j-1 {
			layer[i], layer[j] = layer[j], layer[i]
		}
	}
}
