package layout

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dagviz/core"
)

// BasisSpline renders points as an SVG path using a basis-curve emitter:
// for fewer than 3 points the path is empty; otherwise the path starts at
// p0 and each interior segment is a cubic Bézier
//
//	x1,y1 = midpoint(p_i, p_{i+1})
//	x2,y2 = midpoint(p_{i+1}, p_i)   (identical to x1,y1 by construction)
//	x3,y3 = (2*p_{i+1} + p_{i+2}) / 3
//
// with the final segment degenerating to the last endpoint.
func BasisSpline(points []core.Point) string {
	if len(points) < 3 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%s", fmtPoint(points[0]))

	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		mid := midpoint(p0, p1)

		var p3 core.Point
		if i+2 < len(points) {
			p2 := points[i+2]
			p3 = core.Point{
				X: (2*p1.X + p2.X) / 3,
				Y: (2*p1.Y + p2.Y) / 3,
			}
		} else {
			p3 = p1
		}

		fmt.Fprintf(&b, "C%s,%s,%s", fmtPoint(mid), fmtPoint(mid), fmtPoint(p3))
	}

	return b.String()
}

func midpoint(a, b core.Point) core.Point {
	return core.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func fmtPoint(p core.Point) string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}
