package position

import "github.com/katalvlaran/dagviz/core"

// Position assigns x and y coordinates to every node. The
// caller is expected to have already applied any rank-direction coordinate
// swap (LR/RL) before calling and to undo it afterward — Position itself
// always operates in the TB frame.
func Position(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	positionY(g)
	positionX(g)

	return nil
}

// positionY stacks ranks vertically with gap RankSep, centering each node
// in its rank's max-height row.
func positionY(g *core.Graph) {
	matrix := keyMatrix(g)
	y := 0.0
	for _, layer := range matrix {
		maxHeight := 0.0
		for _, k := range layer {
			if n := g.Node(k); n != nil && n.Height > maxHeight {
				maxHeight = n.Height
			}
		}
		for _, k := range layer {
			if n := g.Node(k); n != nil {
				n.Y = y + maxHeight/2
			}
		}
		y += maxHeight + g.Config.RankSep
	}
}

// positionX runs the four-direction Brandes-Köpf alignment and writes the
// balanced result onto each node's X field.
func positionX(g *core.Graph) {
	matrix := keyMatrix(g)
	if len(matrix) == 0 {
		return
	}

	conflicts := findConflicts(g, matrix)

	var maps [4]map[core.Key]float64
	for _, vertical := range []bool{true, false} { // true=Top, false=Bottom
		m := matrix
		if !vertical {
			m = reverseMatrix(matrix)
		}
		for _, horizontal := range []bool{true, false} { // true=Left, false=Right
			pass := cloneMatrix(m)
			if !horizontal {
				reverseLayers(pass)
			}

			root, align := verticalAlignment(g, pass, vertical, conflicts)
			compact := horizontalCompaction(g, g.Config, pass, root, align)
			if !horizontal {
				for k := range compact {
					compact[k] = -compact[k]
				}
			}

			maps[dirOf(vertical, horizontal)] = compact
		}
	}

	alignCoordinates(g, maps)
	balanced := balance(maps)

	for k, x := range balanced {
		if n := g.Node(k); n != nil {
			n.X = x
		}
	}
}

func dirOf(top, left bool) direction {
	switch {
	case top && left:
		return dirTopLeft
	case top && !left:
		return dirTopRight
	case !top && left:
		return dirBottomLeft
	default:
		return dirBottomRight
	}
}
