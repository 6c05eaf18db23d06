package selfedge

import "github.com/katalvlaran/dagviz/core"

// box is an axis-aligned rectangle centered at (X, Y).
type box struct {
	X, Y, Width, Height float64
}

// intersectPoint returns where the ray from b's center toward p exits b's
// boundary, using the centered-box formula: if |dy|*halfWidth >
// |dx|*halfHeight the ray exits through the top/bottom edge, otherwise
// through a side edge.
func intersectPoint(b box, p core.Point) core.Point {
	dx := p.X - b.X
	dy := p.Y - b.Y
	w := b.Width / 2
	h := b.Height / 2

	var sx, sy float64
	if abs(dy)*w > abs(dx)*h {
		if dy < 0 {
			sx, sy = -h*dx/dy, -h
		} else {
			sx, sy = h*dx/dy, h
		}
	} else {
		if dx < 0 {
			sx, sy = -w, -w*dy/dx
		} else {
			sx, sy = w, w*dy/dx
		}
	}

	return core.Point{X: b.X + sx, Y: b.Y + sy}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func nodeBox(n *core.GraphNode) box {
	return box{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}
