package layout

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/katalvlaran/dagviz/core"
)

// Point32 is a polyline point in the rendered result (32-bit floats for
// edge points).
type Point32 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// NodeBox is one rendered node: an integer bounding box plus its op-type
// label.
type NodeBox struct {
	ID     string `json:"id"`
	X      int32  `json:"x"`
	Y      int32  `json:"y"`
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
	OpType string `json:"opType"`
}

// EdgeBox is one rendered edge: its integer bounding box, endpoints, the
// polyline in order, and the SVG path rendering that polyline.
type EdgeBox struct {
	X      int32     `json:"x"`
	Y      int32     `json:"y"`
	Width  int32     `json:"width"`
	Height int32     `json:"height"`
	Source string    `json:"source"`
	Target string    `json:"target"`
	Points []Point32 `json:"points"`
	Path   string    `json:"path"`
}

// Result is the JSON document shape Layout returns. Model carries
// the caller-supplied model metadata verbatim — parsing model files into
// that metadata is outside this module's scope.
type Result struct {
	Model json.RawMessage `json:"model,omitempty"`
	Nodes []NodeBox       `json:"nodes"`
	Edges []EdgeBox       `json:"edges"`
}

func buildResult(g *core.Graph) *Result {
	res := &Result{}

	for _, k := range g.Nodes() {
		n := g.Node(k)
		if n.Dummy != core.NotDummy {
			continue
		}
		res.Nodes = append(res.Nodes, NodeBox{
			ID:     keyID(k),
			X:      round32(n.X - n.Width/2),
			Y:      round32(n.Y - n.Height/2),
			Width:  round32(n.Width),
			Height: round32(n.Height),
			OpType: n.Label,
		})
	}

	for _, e := range g.Edges() {
		pts := e.Points()
		minX, minY, maxX, maxY := extent(pts)

		p32 := make([]Point32, len(pts))
		for i, p := range pts {
			p32[i] = Point32{X: float32(p.X), Y: float32(p.Y)}
		}

		res.Edges = append(res.Edges, EdgeBox{
			X:      round32(minX),
			Y:      round32(minY),
			Width:  round32(maxX - minX),
			Height: round32(maxY - minY),
			Source: keyID(e.Source),
			Target: keyID(e.Target),
			Points: p32,
			Path:   BasisSpline(pts),
		})
	}

	return res
}

func extent(pts []core.Point) (minX, minY, maxX, maxY float64) {
	if len(pts) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = pts[0].X, pts[0].X
	minY, maxY = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}

func round32(v float64) int32 {
	return int32(math.Round(v))
}

func keyID(k core.Key) string {
	return strconv.FormatUint(uint64(k), 10)
}

// LayoutJSON runs Layout and marshals the Result with model attached
// verbatim as the document's "model" field. Parsing model files into that
// metadata is out of scope; callers pass already-decoded JSON.
func LayoutJSON(g *core.Graph, model json.RawMessage, opts ...LayoutOption) ([]byte, error) {
	res, err := Layout(g, opts...)
	if err != nil {
		return nil, err
	}
	res.Model = model

	return json.Marshal(res)
}
