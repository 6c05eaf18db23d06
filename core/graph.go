package core

import (
	"sync"

	"github.com/im7mortal/kmutex"
)

// Graph is the core in-memory graph data structure shared by the layout and
// mining engines. It supports directed/undirected, optionally compound
// (clustered) graphs. muNode protects nodes; muEdge protects edges and
// adjacency/multiplicity maps. keyLocks serializes per-vertex SetParent
// calls without taking a graph-wide write lock, keeping the graph reentrant
// under concurrent callers touching disjoint subtrees.
type Graph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	keyLocks *kmutex.Kmutex

	IsDirected bool
	IsCompound bool

	Config GraphConfig

	Width, Height float64

	nodes map[Key]*GraphNode
	edges map[Key]*GraphEdge

	// inEdges[target][edgeKey], outEdges[source][edgeKey]
	inEdges  map[Key]map[Key]struct{}
	outEdges map[Key]map[Key]struct{}

	// predecessors[target][source] / successors[source][target] are
	// multiplicity counts (edges may be re-added, incrementing the count).
	predecessors map[Key]map[Key]int
	successors   map[Key]map[Key]int

	parent   map[Key]Key
	children map[Key]map[Key]struct{}

	selfEdges map[Key][]*GraphEdge

	NestingRoot *Key
	Root        *Key

	DummyChains []Key

	nextDummy uint64 // monotonic counter scoped to this Graph
}

// NewGraph creates an empty, directed Graph with DefaultGraphConfig.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		IsDirected:   true,
		Config:       DefaultGraphConfig(),
		keyLocks:     kmutex.New(),
		nodes:        make(map[Key]*GraphNode),
		edges:        make(map[Key]*GraphEdge),
		inEdges:      make(map[Key]map[Key]struct{}),
		outEdges:     make(map[Key]map[Key]struct{}),
		predecessors: make(map[Key]map[Key]int),
		successors:   make(map[Key]map[Key]int),
		parent:       make(map[Key]Key),
		children:     make(map[Key]map[Key]struct{}),
		selfEdges:    make(map[Key][]*GraphEdge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NextDummyKey mints a dummy node key unique to this Graph's computation,
// scoped per-instance rather than a process-wide counter.
func (g *Graph) NextDummyKey() Key {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.nextDummy++
	// Dummy keys count down from endpointMask-1, so EdgeKey packs them like
	// any other endpoint; a caller-supplied key in that top range would
	// collide with them.
	return endpointMask - Key(g.nextDummy)
}

// AddNode inserts or overwrites the node at key with attrs. If attrs is nil,
// a zero-value GraphNode is installed (only if key is new).
// Complexity: O(1).
func (g *Graph) AddNode(key Key, attrs *GraphNode) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.addNodeLocked(key, attrs)
}

func (g *Graph) addNodeLocked(key Key, attrs *GraphNode) {
	if attrs == nil {
		if _, ok := g.nodes[key]; ok {
			return
		}
		attrs = &GraphNode{}
	}
	g.nodes[key] = attrs
	if g.IsCompound {
		if _, ok := g.parent[key]; !ok {
			g.parent[key] = EmptyRoot
			if key != EmptyRoot {
				if g.children[EmptyRoot] == nil {
					g.children[EmptyRoot] = make(map[Key]struct{})
				}
				g.children[EmptyRoot][key] = struct{}{}
			}
		}
		if _, ok := g.children[key]; !ok {
			g.children[key] = make(map[Key]struct{})
		}
	}
}

// HasNode reports whether key names a node.
func (g *Graph) HasNode(key Key) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[key]
	return ok
}

// Node returns the node attrs for key, or nil if absent.
func (g *Graph) Node(key Key) *GraphNode {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return g.nodes[key]
}

// Nodes returns all node keys in unspecified order. Callers that need
// determinism should sort the result.
func (g *Graph) Nodes() []Key {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]Key, 0, len(g.nodes))
	for k := range g.nodes {
		out = append(out, k)
	}
	return out
}

// RemoveNode deletes key and every incident edge, decrementing all
// multiplicity counts. In compound mode, its children are detached to the
// empty root.
func (g *Graph) RemoveNode(key Key) {
	g.muEdge.Lock()
	for ek := range g.outEdges[key] {
		g.removeEdgeLocked(ek)
	}
	for ek := range g.inEdges[key] {
		g.removeEdgeLocked(ek)
	}
	delete(g.selfEdges, key)
	g.muEdge.Unlock()

	g.muNode.Lock()
	delete(g.nodes, key)
	if g.IsCompound {
		delete(g.children[g.parent[key]], key)
		for child := range g.children[key] {
			g.parent[child] = EmptyRoot
			if g.children[EmptyRoot] == nil {
				g.children[EmptyRoot] = make(map[Key]struct{})
			}
			g.children[EmptyRoot][child] = struct{}{}
		}
		delete(g.children, key)
		delete(g.parent, key)
	}
	g.muNode.Unlock()
}

// AddEdge inserts or replaces the edge (source,target). Missing endpoints
// are auto-created with default attrs. Re-adding an existing
// edge replaces its attrs but increments predecessor/successor multiplicity
// rather than resetting it.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, target Key, attrs *GraphEdge) {
	g.muNode.Lock()
	g.addNodeLocked(source, nil)
	g.addNodeLocked(target, nil)
	g.muNode.Unlock()

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	ek := EdgeKey(source, target)
	if attrs == nil {
		attrs = &GraphEdge{}
	}
	attrs.Source, attrs.Target = source, target
	if attrs.MinLen <= 0 {
		attrs.MinLen = 1
	}
	if attrs.Weight == 0 {
		attrs.Weight = 1
	}

	if _, exists := g.edges[ek]; !exists {
		if g.outEdges[source] == nil {
			g.outEdges[source] = make(map[Key]struct{})
		}
		if g.inEdges[target] == nil {
			g.inEdges[target] = make(map[Key]struct{})
		}
		g.outEdges[source][ek] = struct{}{}
		g.inEdges[target][ek] = struct{}{}

		if g.successors[source] == nil {
			g.successors[source] = make(map[Key]int)
		}
		if g.predecessors[target] == nil {
			g.predecessors[target] = make(map[Key]int)
		}
	}
	g.edges[ek] = attrs
	g.successors[source][target]++
	g.predecessors[target][source]++

	if source == target {
		g.selfEdges[source] = append(g.selfEdges[source], attrs)
	}
}

// HasEdge reports whether an edge (source,target) exists.
func (g *Graph) HasEdge(source, target Key) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edges[EdgeKey(source, target)]
	return ok
}

// Edge returns the edge attrs for (source,target), or nil if absent.
func (g *Graph) Edge(source, target Key) *GraphEdge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return g.edges[EdgeKey(source, target)]
}

// EdgeByKey returns the edge attrs stored under the packed key ek.
func (g *Graph) EdgeByKey(ek Key) *GraphEdge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return g.edges[ek]
}

// Edges returns all edge attrs in unspecified order.
func (g *Graph) Edges() []*GraphEdge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]*GraphEdge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	return out
}

// RemoveEdge deletes the edge (source,target) if present, decrementing
// multiplicity counts.
func (g *Graph) RemoveEdge(source, target Key) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.removeEdgeLocked(EdgeKey(source, target))
}

func (g *Graph) removeEdgeLocked(ek Key) {
	e, ok := g.edges[ek]
	if !ok {
		return
	}
	delete(g.edges, ek)
	delete(g.outEdges[e.Source], ek)
	delete(g.inEdges[e.Target], ek)
	if g.successors[e.Source] != nil {
		g.successors[e.Source][e.Target]--
		if g.successors[e.Source][e.Target] <= 0 {
			delete(g.successors[e.Source], e.Target)
		}
	}
	if g.predecessors[e.Target] != nil {
		g.predecessors[e.Target][e.Source]--
		if g.predecessors[e.Target][e.Source] <= 0 {
			delete(g.predecessors[e.Target], e.Source)
		}
	}
}

// OutEdges returns the edge attrs for every outgoing edge of key.
func (g *Graph) OutEdges(key Key) []*GraphEdge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]*GraphEdge, 0, len(g.outEdges[key]))
	for ek := range g.outEdges[key] {
		out = append(out, g.edges[ek])
	}
	return out
}

// InEdges returns the edge attrs for every incoming edge of key.
func (g *Graph) InEdges(key Key) []*GraphEdge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]*GraphEdge, 0, len(g.inEdges[key]))
	for ek := range g.inEdges[key] {
		out = append(out, g.edges[ek])
	}
	return out
}

// Successors returns the distinct target keys reachable by a direct edge
// from key.
func (g *Graph) Successors(key Key) []Key {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Key, 0, len(g.successors[key]))
	for t := range g.successors[key] {
		out = append(out, t)
	}
	return out
}

// Predecessors returns the distinct source keys with a direct edge into key.
func (g *Graph) Predecessors(key Key) []Key {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Key, 0, len(g.predecessors[key]))
	for s := range g.predecessors[key] {
		out = append(out, s)
	}
	return out
}

// Neighbors returns successors for directed graphs, or the union of
// successors and predecessors for undirected graphs.
func (g *Graph) Neighbors(key Key) []Key {
	if g.IsDirected {
		return g.Successors(key)
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	seen := make(map[Key]struct{}, len(g.successors[key])+len(g.predecessors[key]))
	for t := range g.successors[key] {
		seen[t] = struct{}{}
	}
	for s := range g.predecessors[key] {
		seen[s] = struct{}{}
	}
	out := make([]Key, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	return out
}

// Sources returns every node with no incoming edges.
func (g *Graph) Sources() []Key {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	var out []Key
	for k := range g.nodes {
		if len(g.predecessors[k]) == 0 {
			out = append(out, k)
		}
	}
	return out
}

// Sinks returns every node with no outgoing edges.
func (g *Graph) Sinks() []Key {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	var out []Key
	for k := range g.nodes {
		if len(g.successors[k]) == 0 {
			out = append(out, k)
		}
	}
	return out
}

// SelfEdges returns the self-loop edges AddEdge has recorded for source
// (removing the edge later, as selfedge.Extract does, keeps this record),
// or nil if none were recorded.
func (g *Graph) SelfEdges(source Key) []*GraphEdge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return g.selfEdges[source]
}

// ClearSelfEdges drops the recorded self-edge bucket for source (used once
// the self-edge has been reinserted as a real edge with a polyline).
func (g *Graph) ClearSelfEdges(source Key) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	delete(g.selfEdges, source)
}

// Parent returns key's parent, or EmptyRoot if key has none or the graph is
// not compound.
func (g *Graph) Parent(key Key) Key {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return g.parent[key]
}

// Children returns the direct children of key (EmptyRoot for top-level).
func (g *Graph) Children(key Key) []Key {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]Key, 0, len(g.children[key]))
	for c := range g.children[key] {
		out = append(out, c)
	}
	return out
}

// SetParent reparents key under parent. It walks ancestors of the proposed
// parent until reaching a top-level node (parent == EmptyRoot);
// that top-level node becomes the actual parent, flattening degenerate
// chains. Locking is scoped to key via keyLocks so concurrent SetParent
// calls on disjoint subtrees don't serialize behind a single graph-wide
// lock.
func (g *Graph) SetParent(key, parent Key) error {
	if !g.IsCompound {
		return ErrNotCompound
	}
	g.keyLocks.Lock(keyLockName(key))
	defer g.keyLocks.Unlock(keyLockName(key))

	g.muNode.Lock()
	defer g.muNode.Unlock()

	g.addNodeLocked(key, nil)
	g.addNodeLocked(parent, nil)

	actual := parent
	for actual != EmptyRoot {
		next, ok := g.parent[actual]
		if !ok || next == EmptyRoot {
			break
		}
		actual = next
	}

	if old, ok := g.parent[key]; ok {
		delete(g.children[old], key)
	}
	g.parent[key] = actual
	if g.children[actual] == nil {
		g.children[actual] = make(map[Key]struct{})
	}
	g.children[actual][key] = struct{}{}

	return nil
}

func keyLockName(k Key) string {
	// kmutex keys on comparable values via a string; encode deterministically.
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(k >> (8 * (7 - i)))
	}
	return string(buf)
}
