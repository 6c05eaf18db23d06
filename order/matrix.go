package order

import "github.com/katalvlaran/dagviz/core"

// Matrix is a rank-indexed layer matrix: Matrix[r] holds the node keys
// assigned to rank r, in left-to-right order.
type Matrix [][]core.Key

// clone returns a deep copy so callers can mutate one candidate order
// without perturbing another.
func (m Matrix) clone() Matrix {
	out := make(Matrix, len(m))
	for i, layer := range m {
		out[i] = append([]core.Key(nil), layer...)
	}
	return out
}

// maxRank returns the highest rank present among g's nodes, or -1 if none
// carry a rank.
func maxRank(g *core.Graph) int {
	max := -1
	for _, k := range g.Nodes() {
		n := g.Node(k)
		if n == nil || n.Rank == nil {
			continue
		}
		if *n.Rank > max {
			max = *n.Rank
		}
	}
	return max
}

// InitialOrder buckets every ranked node into its layer via an iterative
// DFS from rank-0 sources, using discovery order within each rank as the
// initial Order.
func InitialOrder(g *core.Graph) Matrix {
	top := maxRank(g)
	if top < 0 {
		return nil
	}
	m := make(Matrix, top+1)

	visited := make(map[core.Key]bool)
	var starts []core.Key
	for _, k := range sortedNodes(g) {
		n := g.Node(k)
		if n != nil && n.Rank != nil && *n.Rank == 0 {
			starts = append(starts, k)
		}
	}
	if len(starts) == 0 {
		starts = sortedNodes(g)
	}

	for _, s := range starts {
		if visited[s] {
			continue
		}
		dfsBucket(g, s, visited, m)
	}
	// catch any node not reached from rank-0 sources (disconnected component)
	for _, k := range sortedNodes(g) {
		if !visited[k] {
			dfsBucket(g, k, visited, m)
		}
	}

	return m
}

// dfsBucket runs an iterative DFS from start, appending each newly visited
// node to its rank's layer in visitation order.
func dfsBucket(g *core.Graph, start core.Key, visited map[core.Key]bool, m Matrix) {
	stack := []core.Key{start}
	visited[start] = true

	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := g.Node(k)
		if n != nil && n.Rank != nil {
			r := *n.Rank
			if r >= 0 && r < len(m) {
				m[r] = append(m[r], k)
			}
		}

		succ := g.Successors(k)
		sortKeysDesc(succ) // push in descending order so ascending pops first
		for _, s := range succ {
			if !visited[s] {
				visited[s] = true
				stack = append(stack, s)
			}
		}
	}
}

func sortedNodes(g *core.Graph) []core.Key {
	ks := g.Nodes()
	sortKeysAsc(ks)
	return ks
}

func sortKeysAsc(ks []core.Key) {
	for i := 1; i < len(ks); i++ {
		for j := i; j > 0 && ks[j-1] > ks[j]; j-- {
			ks[j-1], ks[j] = ks[j], ks[j-1]
		}
	}
}

func sortKeysDesc(ks []core.Key) {
	for i := 1; i < len(ks); i++ {
		for j := i; j > 0 && ks[j-1] < ks[j]; j-- {
			ks[j-1], ks[j] = ks[j], ks[j-1]
		}
	}
}
