package order

import "github.com/katalvlaran/dagviz/core"

// maxNoImprovement bounds the number of consecutive sweeps without a
// crossing-count improvement before the iteration stops.
const maxNoImprovement = 4

// Order assigns a per-rank Order to every node by running an iterative
// top-to-bottom barycentric sweep, scoring each candidate matrix with
// CrossCount and keeping the best seen.
func Order(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	best := InitialOrder(g)
	if best == nil {
		return nil
	}
	bestScore := CrossCount(g, best)

	constraints := buildConstraints(g)

	current := best
	noImprovement := 0
	for noImprovement < maxNoImprovement {
		current = sweepDown(g, current, constraints)
		score := CrossCount(g, current)
		if score < bestScore {
			best, bestScore = current.clone(), score
			noImprovement = 0
		} else {
			noImprovement++
		}
	}

	applyOrder(g, best)

	return nil
}

// sweepDown recomputes each rank's order (skipping rank 0, which has no
// predecessor layer to barycenter against) from the barycenters of each
// node's in-edge neighbors in the already-updated rank above.
func sweepDown(g *core.Graph, m Matrix, constraints map[core.Key][]core.Key) Matrix {
	next := m.clone()
	for r := 1; r < len(next); r++ {
		fixedPos := positionIndex(next[r-1])
		entries := weightedBarycenters(g, next[r], fixedPos, false)
		next[r] = resolveConstraints(entries, constraints)
	}
	return next
}

func positionIndex(layer []core.Key) map[core.Key]int {
	out := make(map[core.Key]int, len(layer))
	for i, k := range layer {
		out[k] = i
	}
	return out
}

// buildConstraints derives, for every compound cluster, a strict
// left-to-right order among its direct children matching their discovery
// order, so that crossing-reduction sweeps never scramble a cluster's own
// children relative to each other.
func buildConstraints(g *core.Graph) map[core.Key][]core.Key {
	out := make(map[core.Key][]core.Key)
	if !g.IsCompound {
		return out
	}

	for _, parent := range sortedNodes(g) {
		children := g.Children(parent)
		if len(children) < 2 {
			continue
		}
		sortKeysAsc(children)
		for i := 0; i < len(children)-1; i++ {
			out[children[i]] = append(out[children[i]], children[i+1])
		}
	}

	return out
}

func applyOrder(g *core.Graph, m Matrix) {
	for _, layer := range m {
		for i, k := range layer {
			n := g.Node(k)
			if n == nil {
				continue
			}
			idx := i
			n.Order = &idx
		}
	}
}
