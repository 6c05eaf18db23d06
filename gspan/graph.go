package gspan

import (
	"fmt"
	"strings"
)

// Support carries the four reported support numbers for a pattern's text/
// header rendering ("btw/inn/ttl" header fields).
type Support struct {
	Between  int
	InnerMin int
	InnerMax int
	Total    int
}

// Graph is the gspan-internal labeled graph model: distinct from
// core.Graph, it keys vertices by name string (matching the abstract
// DFS-code vertex space) rather than a packed integer key, and every edge
// carries its own globally unique ID for history/membership tracking.
type Graph struct {
	ID       int
	Name     string
	Directed bool

	Vertices     []*Vertex
	byName       map[string]*Vertex
	NameLabelMap map[string]string
}

// NewGSpanGraph builds an empty gspan Graph with the given ID.
func NewGSpanGraph(id int, directed bool) *Graph {
	return &Graph{
		ID:           id,
		Directed:     directed,
		byName:       make(map[string]*Vertex),
		NameLabelMap: make(map[string]string),
	}
}

// InsertVertex adds a new named, labeled vertex, returning it. A vertex
// already present under name is left untouched and returned as-is.
func (g *Graph) InsertVertex(name, label string) *Vertex {
	if v, ok := g.byName[name]; ok {
		return v
	}
	v := NewVertex(name, label)
	g.Vertices = append(g.Vertices, v)
	g.byName[name] = v
	g.NameLabelMap[name] = label
	return v
}

// FindVertex looks up a vertex by name.
func (g *Graph) FindVertex(name string) (*Vertex, bool) {
	v, ok := g.byName[name]
	return v, ok
}

// AddBuiltEdge appends one edge between two already-inserted vertices
// (From must exist; To's label is read from NameLabelMap). Missing
// endpoints are silently skipped — callers that build edges from a
// DFS-code always pre-insert both endpoints first.
func (g *Graph) AddBuiltEdge(from, to, eLabel string) {
	fromV, ok := g.FindVertex(from)
	if !ok {
		return
	}
	toLabel, ok := g.NameLabelMap[to]
	if !ok {
		return
	}
	e := NewEdge(from, to, fromV.Label, toLabel, eLabel)
	fromV.Push(e)
}

// ToStrRepr renders the graph in the text pattern format: a header line
// `t # <id>[ * btw(..) inn(..,..) ttl(..)]`, then one `v` line per vertex,
// then one `e` line per edge.
func (g *Graph) ToStrRepr(sup *Support) string {
	lines := make([]string, 0, 1+2*len(g.Vertices))
	if sup != nil {
		lines = append(lines, fmt.Sprintf("t # %d * btw(%d) inn(%d,%d) ttl(%d)", g.ID, sup.Between, sup.InnerMin, sup.InnerMax, sup.Total))
	} else {
		lines = append(lines, fmt.Sprintf("t # %d", g.ID))
	}

	var edges []*Edge
	for _, v := range g.Vertices {
		lines = append(lines, fmt.Sprintf("v %s %s", v.Name, v.Label))
		edges = append(edges, v.Edges...)
	}
	for _, e := range edges {
		lines = append(lines, fmt.Sprintf("e %s %s %s %s %s", e.From, e.To, e.FromLabel, e.ToLabel, e.ELabel))
	}

	return strings.Join(lines, "\n")
}
