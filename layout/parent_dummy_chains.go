package layout

import "github.com/katalvlaran/dagviz/core"

// parentDummyChains reparents each dummy node inserted by Normalize under
// the deepest compound cluster whose rank range contains it, by walking the
// lowest-common-ancestor path between the original edge's endpoints. No-op
// on non-compound graphs.
func parentDummyChains(g *core.Graph) {
	if !g.IsCompound || len(g.DummyChains) == 0 {
		return
	}

	lims := postorderLims(g)

	for _, dummyID := range append([]core.Key(nil), g.DummyChains...) {
		node := g.Node(dummyID)
		if node == nil || node.Edge == nil {
			continue
		}
		source, target := core.SplitEdgeKey(*node.Edge)
		path, lca := findLCA(g, lims, source, target)
		if len(path) == 0 {
			continue
		}
		traversePath(g, dummyID, target, path, lca)
	}
}

// postorderLims assigns each node under the compound root a distinct
// pre-order visit index, used by findLCA to locate the common ancestor
// lying on the lowest (innermost) shared rank interval.
func postorderLims(g *core.Graph) map[core.Key]int {
	lims := make(map[core.Key]int)
	lim := 0
	for _, child := range g.Children(core.EmptyRoot) {
		stack := []core.Key{child}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, seen := lims[n]; seen {
				continue
			}
			lims[n] = lim
			lim++
			stack = append(stack, g.Children(n)...)
		}
	}
	return lims
}

// findLCA returns the path of ancestors from source up to the lowest common
// ancestor of source and target, followed by the path back down to target,
// plus the LCA itself.
func findLCA(g *core.Graph, lims map[core.Key]int, source, target core.Key) ([]core.Key, core.Key) {
	lim := lims[source]
	if l := lims[target]; l < lim {
		lim = l
	}

	var sPath []core.Key
	lca := source
	for lca != core.EmptyRoot {
		parent := g.Parent(lca)
		lca = parent
		sPath = append(sPath, parent)
		if l, ok := lims[parent]; ok && l == lim {
			break
		}
	}

	var tPath []core.Key
	parent := g.Parent(target)
	for parent != lca {
		tPath = append(tPath, parent)
		next := g.Parent(parent)
		if parent == core.EmptyRoot {
			next = lca
		}
		parent = next
	}
	for i, j := 0, len(tPath)-1; i < j; i, j = i+1, j-1 {
		tPath[i], tPath[j] = tPath[j], tPath[i]
	}

	return append(sPath, tPath...), lca
}

// traversePath walks the dummy chain from dummyID to target, assigning each
// dummy the deepest cluster on path whose rank interval still encloses the
// dummy: first ascending from source toward the LCA (by max-rank), then,
// once the LCA is passed, descending toward target (by min-rank). This is a
// sequential-cursor rendition of the source's double-ended iterator
// consumption, which gives the same ascend-then-descend assignment for the
// straight-line paths this module's clusters produce.
func traversePath(g *core.Graph, dummyID, target core.Key, path []core.Key, lca core.Key) {
	ascending := true
	fwd := 0
	back := len(path)

	for dummyID != target {
		node := g.Node(dummyID)
		if node == nil {
			return
		}
		rank := 0
		if node.Rank != nil {
			rank = *node.Rank
		}

		current := lca
		found := false
		if ascending {
			for i := fwd; i < len(path); i++ {
				fwd = i + 1
				p := g.Node(path[i])
				if p != nil && p.MaxRank != nil && *p.MaxRank > rank {
					current = path[i]
					found = true
					break
				}
			}
		} else {
			for i := back - 1; i >= 0; i-- {
				back = i
				p := g.Node(path[i])
				if p != nil && p.MinRank != nil && *p.MinRank < rank {
					current = path[i]
					found = true
					break
				}
			}
		}
		_ = found

		if ascending && current == lca {
			ascending = false
			if len(path) == 0 {
				current = lca
			} else {
				back = len(path) - 1
				current = path[len(path)-1]
			}
		}

		_ = g.SetParent(dummyID, current)

		next := g.Successors(dummyID)
		if len(next) == 0 {
			return
		}
		dummyID = next[0]
	}
}
