package position

import (
	"sort"

	"github.com/katalvlaran/dagviz/core"
)

// verticalAlignment performs one Brandes-Köpf alignment pass: useTop
// selects predecessors as the neighbor side (a "Top" pass), false selects
// successors ("Bottom"). Returns the root and align union-find-style maps
//.
func verticalAlignment(g *core.Graph, matrix [][]core.Key, useTop bool, conflicts conflictSet) (root, align map[core.Key]core.Key) {
	root = make(map[core.Key]core.Key)
	align = make(map[core.Key]core.Key)
	pos := make(map[core.Key]int)

	for _, layer := range matrix {
		for order, key := range layer {
			root[key] = key
			align[key] = key
			pos[key] = order
		}
	}

	for _, layer := range matrix {
		prevIdx := -1
		for _, key := range layer {
			var neighbors []core.Key
			if useTop {
				neighbors = g.Predecessors(key)
			} else {
				neighbors = g.Successors(key)
			}
			if len(neighbors) == 0 {
				continue
			}

			sort.Slice(neighbors, func(i, j int) bool { return pos[neighbors[i]] < pos[neighbors[j]] })

			mid := (float64(len(neighbors)) - 1) / 2.0000001
			start := int(mid)
			end := int(mid + 0.9999999) // ceil without importing math for one call
			if end >= len(neighbors) {
				end = len(neighbors) - 1
			}

			for idx := start; idx <= end; idx++ {
				neighbor := neighbors[idx]
				if align[key] == key && prevIdx < pos[neighbor] && !conflicts.has(key, neighbor) {
					x := root[neighbor]
					align[neighbor] = key
					align[key] = x
					root[key] = x
					prevIdx = pos[neighbor]
				}
			}
		}
	}

	return root, align
}

// horizontalCompaction assigns every block root an x coordinate via
// longest-path in the block graph, then propagates each root's x to every
// node aligned to it.
func horizontalCompaction(g *core.Graph, cfg core.GraphConfig, matrix [][]core.Key, root, align map[core.Key]core.Key) map[core.Key]float64 {
	compact := make(map[core.Key]float64)
	bg := buildBlockGraph(g, cfg, matrix, root)

	stack := bg.nodeList()
	visited := make(map[core.Key]bool)
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[k] {
			var val float64
			for _, ek := range bg.inEdges[k] {
				ev := compact[ek.a] + bg.edges[ek]
				if ev > val {
					val = ev
				}
			}
			compact[k] = val
			continue
		}

		visited[k] = true
		stack = append(stack, k)
		for pred := range bg.predecessors[k] {
			stack = append(stack, pred)
		}
	}

	for _, member := range align {
		compact[member] = compact[root[member]]
	}

	return compact
}
