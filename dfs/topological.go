package dfs

import (
	"context"

	"github.com/katalvlaran/dagviz/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context for TopologicalSort.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[core.Key]int
	order []core.Key
}

// TopologicalSort computes a topological ordering of every node in g. g
// must be directed. Returns ErrCycleDetected if a cycle exists.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]core.Key, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	nodes := g.Nodes()
	s := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[core.Key]int, len(nodes)),
		order: make([]core.Key, 0, len(nodes)),
	}
	for _, v := range nodes {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// topoFrame is one explicit-stack entry of the iterative walk visit runs.
type topoFrame struct {
	node core.Key
	succ []core.Key
	idx  int
}

// visit walks everything reachable from start via an explicit work stack
// rather than native recursion, coloring nodes gray on entry and black on
// exit; a successor already gray means a cycle back to an ancestor.
func (t *topoSorter) visit(start core.Key) error {
	if t.state[start] == Black {
		return nil
	}

	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	t.state[start] = Gray
	stack := []*topoFrame{{node: start, succ: t.graph.Successors(start)}}

	for len(stack) > 0 {
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		advanced := false
		for top.idx < len(top.succ) {
			nid := top.succ[top.idx]
			top.idx++

			switch t.state[nid] {
			case Gray:
				return ErrCycleDetected
			case Black:
				continue
			default: // White
				t.state[nid] = Gray
				stack = append(stack, &topoFrame{node: nid, succ: t.graph.Successors(nid)})
				advanced = true
			}
			if advanced {
				break
			}
		}
		if advanced {
			continue
		}

		t.state[top.node] = Black
		t.order = append(t.order, top.node)
		stack = stack[:len(stack)-1]
	}

	return nil
}
