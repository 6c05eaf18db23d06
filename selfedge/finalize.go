package selfedge

import "github.com/katalvlaran/dagviz/core"

// Translate shifts every node and polyline point so the minimum x and y
// across all node bounding boxes become zero.
func Translate(g *core.Graph) {
	minX, minY := posInf, posInf
	for _, k := range g.Nodes() {
		n := g.Node(k)
		if n == nil {
			continue
		}
		if n.X-n.Width/2 < minX {
			minX = n.X - n.Width/2
		}
		if n.Y-n.Height/2 < minY {
			minY = n.Y - n.Height/2
		}
	}
	if minX == posInf {
		return
	}

	for _, k := range g.Nodes() {
		n := g.Node(k)
		n.X -= minX
		n.Y -= minY
	}

	for _, e := range g.Edges() {
		pts := e.Points()
		if len(pts) == 0 {
			continue
		}
		for i := range pts {
			pts[i].X -= minX
			pts[i].Y -= minY
		}
		e.SetPoints(pts)
	}
}

const posInf = 1e308

// AssignIntersects prepends the intersection of the source node's bbox
// with the edge's first polyline point (or the target's center if the
// edge has no points) and appends the symmetric intersection at the
// target end, so every edge's drawn path starts and ends exactly on its
// endpoints' borders rather than their centers.
func AssignIntersects(g *core.Graph) {
	for _, e := range g.Edges() {
		source := g.Node(e.Source)
		target := g.Node(e.Target)
		if source == nil || target == nil {
			continue
		}
		sourceBox, targetBox := nodeBox(source), nodeBox(target)
		sourceCenter := core.Point{X: source.X, Y: source.Y}
		targetCenter := core.Point{X: target.X, Y: target.Y}

		pts := e.Points()
		if len(pts) == 0 {
			p1 := intersectPoint(sourceBox, targetCenter)
			p2 := intersectPoint(targetBox, sourceCenter)
			e.SetPoints([]core.Point{p1, p2})
			continue
		}

		p1 := intersectPoint(sourceBox, pts[0])
		p2 := intersectPoint(targetBox, pts[len(pts)-1])
		out := make([]core.Point, 0, len(pts)+2)
		out = append(out, p1)
		out = append(out, pts...)
		out = append(out, p2)
		e.SetPoints(out)
	}
}

// ReverseReversedPoints reverses the polyline of every edge whose
// Reversed flag is set, so the drawn path still runs from its logical
// source to its logical target.
func ReverseReversedPoints(g *core.Graph) {
	for _, e := range g.Edges() {
		if e.Reversed {
			e.ReversePoints()
		}
	}
}
