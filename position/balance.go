package position

import (
	"sort"

	"github.com/katalvlaran/dagviz/core"
	"gonum.org/v1/gonum/floats"
)

// direction indexes the four Brandes-Köpf alignment passes.
type direction int

const (
	dirTopLeft direction = iota
	dirTopRight
	dirBottomLeft
	dirBottomRight
)

func (d direction) isLeft() bool { return d == dirTopLeft || d == dirBottomLeft }

// extent returns the min and max value in m, using gonum/floats for the
// reduction over the values slice.
func extent(m map[core.Key]float64) (float64, float64) {
	if len(m) == 0 {
		return 0, 0
	}
	vals := make([]float64, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return floats.Min(vals), floats.Max(vals)
}

// minAlignment returns the direction whose x-extent (max+halfWidth -
// min-halfWidth over its member nodes) is smallest.
func minAlignment(g *core.Graph, maps [4]map[core.Key]float64) (direction, float64, float64) {
	best := dirTopLeft
	bestSpan := infExtent(g, maps[dirTopLeft])
	for d := direction(1); d < 4; d++ {
		span := infExtent(g, maps[d])
		if span < bestSpan {
			best, bestSpan = d, span
		}
	}
	min, max := extent(maps[best])
	return best, min, max
}

func infExtent(g *core.Graph, m map[core.Key]float64) float64 {
	max := negInf
	min := posInf
	for key, x := range m {
		n := g.Node(key)
		halfWidth := 0.0
		if n != nil {
			halfWidth = n.Width / 2
		}
		if x+halfWidth > max {
			max = x + halfWidth
		}
		if x-halfWidth < min {
			min = x - halfWidth
		}
	}
	return max - min
}

const (
	posInf = 1e308
	negInf = -1e308
)

// alignCoordinates shifts the three non-minimal direction maps so
// left-biased passes share the minimal pass's min-x and right-biased
// passes share its max-x.
func alignCoordinates(g *core.Graph, maps [4]map[core.Key]float64) {
	minDir, min, max := minAlignment(g, maps)

	for d := direction(0); d < 4; d++ {
		if d == minDir {
			continue
		}
		valsMin, valsMax := extent(maps[d])
		var delta float64
		if d.isLeft() {
			delta = min - valsMin
		} else {
			delta = max - valsMax
		}
		if delta != 0 {
			for k := range maps[d] {
				maps[d][k] += delta
			}
		}
	}
}

// balance sets each node's final x to the mean of the two middle values
// across the four aligned direction maps.
func balance(maps [4]map[core.Key]float64) map[core.Key]float64 {
	out := make(map[core.Key]float64, len(maps[dirTopLeft]))
	for key := range maps[dirTopLeft] {
		vals := []float64{maps[dirTopLeft][key], maps[dirTopRight][key], maps[dirBottomLeft][key], maps[dirBottomRight][key]}
		sort.Float64s(vals)
		out[key] = (vals[1] + vals[2]) / 2
	}
	return out
}
