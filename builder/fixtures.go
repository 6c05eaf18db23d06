package builder

import (
	"fmt"

	"github.com/katalvlaran/dagviz/core"
)

const (
	methodChain = "Chain"
	minChainLen = 2

	fixtureWidth  = 40
	fixtureHeight = 20
)

func box() *core.GraphNode {
	return &core.GraphNode{Width: fixtureWidth, Height: fixtureHeight}
}

// Triangle builds a 3-cycle A(1)->B(2), B->C(3), C->A: the cycle-restoration
// scenario (one edge reversed by acyclification, then restored).
func Triangle() *core.Graph {
	g := core.NewGraph()
	a, b, c := core.Key(1), core.Key(2), core.Key(3)
	g.AddNode(a, &core.GraphNode{Label: "A", Width: fixtureWidth, Height: fixtureHeight})
	g.AddNode(b, &core.GraphNode{Label: "B", Width: fixtureWidth, Height: fixtureHeight})
	g.AddNode(c, &core.GraphNode{Label: "C", Width: fixtureWidth, Height: fixtureHeight})
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, a, nil)
	return g
}

// Chain builds a straight chain of n vertices 1..n with edges i -> i+1,
// for the longest-path rank-alignment scenario. n must be at least 2
// (else ErrTooFewVertices).
func Chain(n int) (*core.Graph, error) {
	if n < minChainLen {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainLen, ErrTooFewVertices)
	}

	g := core.NewGraph()
	keys := make([]core.Key, n)
	for i := 0; i < n; i++ {
		keys[i] = core.Key(i + 1)
		g.AddNode(keys[i], box())
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(keys[i], keys[i+1], nil)
	}
	return g, nil
}

// LongEdge builds a,b,c,d,e with edges a->b->c->d->e plus a direct a->e
// spanning four ranks, for the long-edge dummy-chain scenario.
func LongEdge() *core.Graph {
	g := core.NewGraph()
	a, b, c, d, e := core.Key(1), core.Key(2), core.Key(3), core.Key(4), core.Key(5)
	for _, k := range []core.Key{a, b, c, d, e} {
		g.AddNode(k, box())
	}
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)
	g.AddEdge(c, d, nil)
	g.AddEdge(d, e, nil)
	g.AddEdge(a, e, nil)
	return g
}

// SelfLoop builds a single vertex v with a self-edge v->v, for the
// self-loop polyline scenario.
func SelfLoop() *core.Graph {
	g := core.NewGraph()
	v := core.Key(1)
	g.AddNode(v, box())
	g.AddEdge(v, v, nil)
	return g
}

// CompoundCluster builds a compound graph with a root cluster containing
// two children, each parenting one leaf, plus an edge between the leaves —
// a minimal fixture for nesting/constraint-graph tests.
func CompoundCluster() *core.Graph {
	g := core.NewGraph(core.WithCompound())
	cluster, left, right, leafA, leafB := core.Key(1), core.Key(2), core.Key(3), core.Key(4), core.Key(5)
	for _, k := range []core.Key{cluster, left, right, leafA, leafB} {
		g.AddNode(k, box())
	}
	_ = g.SetParent(leafA, left)
	_ = g.SetParent(leafB, right)
	_ = g.SetParent(left, cluster)
	_ = g.SetParent(right, cluster)
	g.AddEdge(leafA, leafB, nil)
	return g
}
