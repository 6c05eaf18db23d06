package gspan

// NilVertexLabel marks an abstract DFS-code tuple's endpoint whose vertex
// label is not yet materialized.
const NilVertexLabel = "<NIL>"

// Vertex is one named, labeled vertex of a gspan-internal Graph, carrying
// its outgoing edges.
type Vertex struct {
	Name  string
	Label string
	Edges []*Edge
}

// NewVertex builds a Vertex with no outgoing edges yet.
func NewVertex(name, label string) *Vertex {
	return &Vertex{Name: name, Label: label}
}

// Push appends e to v's outgoing-edge list.
func (v *Vertex) Push(e *Edge) {
	v.Edges = append(v.Edges, e)
}
