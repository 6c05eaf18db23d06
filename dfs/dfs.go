package dfs

import (
	"fmt"

	"github.com/katalvlaran/dagviz/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise it
// starts only from startID.
func DFS(g *core.Graph, startID core.Key, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	nodes := g.Nodes()
	res := &Result{
		Order:   make([]core.Key, 0, len(nodes)),
		Depth:   make(map[core.Key]int, len(nodes)),
		Parent:  make(map[core.Key]core.Key, len(nodes)),
		Visited: make(map[core.Key]bool, len(nodes)),
	}

	w := &dfsWalker{graph: g, opts: o, res: res}

	if o.FullTraversal {
		for _, v := range nodes {
			if !res.Visited[v] {
				if err := w.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(startID, 0); err != nil {
		return res, err
	}

	return res, nil
}

// dfsFrame is one explicit-stack entry of the iterative walk traverse runs:
// the node, the depth it was entered at, and how far its neighbor list has
// been consumed.
type dfsFrame struct {
	node  core.Key
	depth int
	nbrs  []core.Key
	idx   int
}

// traverse visits start at startDepth and everything reachable from it, via
// an explicit work stack rather than native recursion, so depth is bounded
// only by available memory instead of the goroutine stack.
func (w *dfsWalker) traverse(start core.Key, startDepth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && startDepth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[start] = true
	w.res.Depth[start] = startDepth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(start); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", start, err)
		}
	}

	stack := []*dfsFrame{{node: start, depth: startDepth, nbrs: w.graph.Neighbors(start)}}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		advanced := false
		for top.idx < len(top.nbrs) {
			nid := top.nbrs[top.idx]
			top.idx++

			if nid == top.node && w.graph.IsDirected {
				// self-loops are handled separately by selfedge; skip here.
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				continue
			}
			if w.res.Visited[nid] {
				continue
			}

			childDepth := top.depth + 1
			if w.opts.MaxDepth >= 0 && childDepth > w.opts.MaxDepth {
				// left unvisited: a shallower path may still reach it later
				continue
			}

			w.res.Parent[nid] = top.node
			w.res.Visited[nid] = true
			w.res.Depth[nid] = childDepth
			if w.opts.OnVisit != nil {
				if err := w.opts.OnVisit(nid); err != nil {
					return fmt.Errorf("dfs: OnVisit hook for %v: %w", nid, err)
				}
			}

			stack = append(stack, &dfsFrame{node: nid, depth: childDepth, nbrs: w.graph.Neighbors(nid)})
			advanced = true
			break
		}
		if advanced {
			continue
		}

		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.node); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %v: %w", top.node, err)
			}
		}
		w.res.Order = append(w.res.Order, top.node)
		stack = stack[:len(stack)-1]
	}

	return nil
}
