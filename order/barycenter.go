package order

import (
	"sort"

	"github.com/katalvlaran/dagviz/core"
	"gonum.org/v1/gonum/floats"
)

// barycenterEntry pairs a node with its computed barycenter and an
// original-index fallback for nodes that have no neighbors on the swept
// side.
type barycenterEntry struct {
	key        core.Key
	barycenter float64
	hasBary    bool
	origIndex  int
}

// weightedBarycenters computes, for each node in layer, the weighted mean
// of its neighbors' positions in fixedPos (the adjacent layer's order
// map), using each connecting edge's Weight.
func weightedBarycenters(g *core.Graph, layer []core.Key, fixedPos map[core.Key]int, useOut bool) []barycenterEntry {
	out := make([]barycenterEntry, len(layer))

	for i, k := range layer {
		var positions, weights []float64

		edges := g.InEdges(k)
		if useOut {
			edges = g.OutEdges(k)
		}
		for _, e := range edges {
			neighbor := e.Source
			if useOut {
				neighbor = e.Target
			}
			pos, ok := fixedPos[neighbor]
			if !ok {
				continue
			}
			positions = append(positions, float64(pos))
			weights = append(weights, e.Weight)
		}

		entry := barycenterEntry{key: k, origIndex: i}
		if len(positions) > 0 {
			sum := floats.Sum(weights)
			if sum != 0 {
				entry.barycenter = floats.Dot(positions, weights) / sum
				entry.hasBary = true
			}
		}
		out[i] = entry
	}

	return out
}

// sortByBarycenter orders entries by barycenter ascending; entries lacking
// a barycenter keep their relative position by original index (a
// bias-controllable tie rule — ties fall back to stable original-index
// order).
func sortByBarycenter(entries []barycenterEntry) []core.Key {
	sorted := append([]barycenterEntry(nil), entries...)
	for i := range sorted {
		if !sorted[i].hasBary {
			sorted[i].barycenter = float64(sorted[i].origIndex)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].barycenter < sorted[j].barycenter
	})

	out := make([]core.Key, len(sorted))
	for i, e := range sorted {
		out[i] = e.key
	}
	return out
}
