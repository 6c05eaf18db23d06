package mining

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dagviz/gspan"
)

// OutVertex is one vertex of a JSON-rendered pattern structure.
type OutVertex struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// OutEdge is one edge of a JSON-rendered pattern structure or instance.
type OutEdge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	FromLabel string `json:"from_label"`
	ToLabel   string `json:"to_label"`
	ELabel    string `json:"e_label"`
}

// NodeID identifies one (graph id, vertex name) pair within an instance.
type NodeID struct {
	GID int    `json:"gid"`
	NID string `json:"nid"`
}

// Structure is the abstract pattern graph rendered for JSON output.
type Structure struct {
	TID      int         `json:"tid"`
	Vertices []OutVertex `json:"vertices"`
	Edges    []OutEdge   `json:"edges"`
}

// JSONInstance is one occurrence of a pattern, rendered for JSON output.
type JSONInstance struct {
	NodeNum int       `json:"node_num"`
	NodeIDs []NodeID  `json:"node_ids"`
	Edges   []OutEdge `json:"edges"`
}

// Record is the JSON document shape for one accepted pattern.
type Record struct {
	BetweenSup  int            `json:"between_sup"`
	InnerMinSup int            `json:"inner_min_sup"`
	InnerMaxSup int            `json:"inner_max_sup"`
	Total       int            `json:"total"`
	Structure   Structure      `json:"structure"`
	Instances   []JSONInstance `json:"instances"`
}

func toRecord(p gspan.Pattern) Record {
	structure := Structure{TID: p.Graph.ID}
	for _, v := range p.Graph.Vertices {
		structure.Vertices = append(structure.Vertices, OutVertex{Name: v.Name, Label: v.Label})
		for _, e := range v.Edges {
			structure.Edges = append(structure.Edges, toOutEdge(e))
		}
	}

	rec := Record{
		BetweenSup:  p.Support.Between,
		InnerMinSup: p.Support.InnerMin,
		InnerMaxSup: p.Support.InnerMax,
		Total:       p.Support.Total,
		Structure:   structure,
	}
	for _, inst := range p.Instances {
		nodeIDs := make([]NodeID, len(inst.NodeIDs))
		for i, n := range inst.NodeIDs {
			nodeIDs[i] = NodeID{GID: n.GID, NID: n.Name}
		}
		edges := make([]OutEdge, len(inst.Edges))
		for i, e := range inst.Edges {
			edges[i] = toOutEdge(e)
		}
		rec.Instances = append(rec.Instances, JSONInstance{
			NodeNum: len(nodeIDs),
			NodeIDs: nodeIDs,
			Edges:   edges,
		})
	}
	return rec
}

func toOutEdge(e *gspan.Edge) OutEdge {
	return OutEdge{From: e.From, To: e.To, FromLabel: e.FromLabel, ToLabel: e.ToLabel, ELabel: e.ELabel}
}

// renderText renders one pattern in the readable text format: a
// header/body block from the pattern graph's ToStrRepr, followed by one
// `${count}| gid/node, ...` line and `e|` lines per instance.
func renderText(p gspan.Pattern) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", p.Graph.ToStrRepr(&p.Support))

	for _, inst := range p.Instances {
		vertexParts := make([]string, len(inst.NodeIDs))
		for i, n := range inst.NodeIDs {
			vertexParts[i] = fmt.Sprintf("%d/%s", n.GID, n.Name)
		}
		fmt.Fprintf(&b, "$%d| %s\n", len(inst.NodeIDs), strings.Join(vertexParts, ", "))

		edgeParts := make([]string, len(inst.Edges))
		for i, e := range inst.Edges {
			edgeParts[i] = fmt.Sprintf(" e| %s/%s-%s-%s/%s", e.From, e.FromLabel, e.ELabel, e.To, e.ToLabel)
		}
		fmt.Fprintf(&b, "%s\n", strings.Join(edgeParts, "\n"))
	}

	return b.String()
}
