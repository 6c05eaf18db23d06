package order

import "github.com/katalvlaran/dagviz/core"

// CrossCount scores a layer matrix by the weighted sum of edge crossings
// between every pair of adjacent ranks (the Barth/Mutzel/Jünger bilayer
// algorithm).
func CrossCount(g *core.Graph, m Matrix) float64 {
	var total float64
	for i := 1; i < len(m); i++ {
		total += twoLayerCrossCount(g, m[i-1], m[i])
	}
	return total
}

type southEntry struct {
	pos    int
	weight float64
}

// twoLayerCrossCount counts weighted crossings between north and south
// using an accumulator tree sized to the next power of two above
// len(south), avoiding the naive O(E^2) pairwise comparison.
func twoLayerCrossCount(g *core.Graph, north, south []core.Key) float64 {
	if len(south) == 0 || len(north) == 0 {
		return 0
	}

	southPos := make(map[core.Key]int, len(south))
	for i, k := range south {
		southPos[k] = i
	}

	var entries []southEntry
	for _, u := range north {
		var layerEntries []southEntry
		for _, e := range g.OutEdges(u) {
			pos, ok := southPos[e.Target]
			if !ok {
				continue
			}
			layerEntries = append(layerEntries, southEntry{pos: pos, weight: e.Weight})
		}
		sortBySouthPos(layerEntries)
		entries = append(entries, layerEntries...)
	}

	firstIndex := 1
	for firstIndex < len(south) {
		firstIndex <<= 1
	}
	treeSize := 2*firstIndex - 1
	firstIndex--
	tree := make([]float64, treeSize)

	var cc float64
	for _, entry := range entries {
		index := entry.pos + firstIndex
		tree[index] += entry.weight
		var weightSum float64
		for index > 0 {
			if index%2 == 1 {
				weightSum += tree[index+1]
			}
			index = (index - 1) >> 1
			tree[index] += entry.weight
		}
		cc += entry.weight * weightSum
	}

	return cc
}

func sortBySouthPos(entries []southEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j-1].pos > entries[j].pos; j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}
