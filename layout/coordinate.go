package layout

import "github.com/katalvlaran/dagviz/core"

// coordinateAdjust swaps width/height for LR/RL graphs after ordering and
// before positioning, since position is written for top-to-bottom flow;
// undoCoordinateAdjust below flips y for BT/RL and swaps x/y and
// width/height back for LR/RL.
func coordinateAdjust(g *core.Graph) {
	if g.Config.RankDir == core.RankDirLR || g.Config.RankDir == core.RankDirRL {
		swapWidthHeight(g)
	}
}

func undoCoordinateAdjust(g *core.Graph) {
	if g.Config.RankDir == core.RankDirBT || g.Config.RankDir == core.RankDirRL {
		reverseY(g)
	}
	if g.Config.RankDir == core.RankDirLR || g.Config.RankDir == core.RankDirRL {
		swapXY(g)
		swapWidthHeight(g)
	}
}

func swapWidthHeight(g *core.Graph) {
	for _, k := range g.Nodes() {
		n := g.Node(k)
		n.Width, n.Height = n.Height, n.Width
	}
}

func reverseY(g *core.Graph) {
	for _, k := range g.Nodes() {
		n := g.Node(k)
		n.Y = -n.Y
	}
	for _, e := range g.Edges() {
		pts := e.Points()
		for i := range pts {
			pts[i].Y = -pts[i].Y
		}
		e.SetPoints(pts)
	}
}

func swapXY(g *core.Graph) {
	for _, k := range g.Nodes() {
		n := g.Node(k)
		n.X, n.Y = n.Y, n.X
	}
	for _, e := range g.Edges() {
		pts := e.Points()
		for i := range pts {
			pts[i].X, pts[i].Y = pts[i].Y, pts[i].X
		}
		e.SetPoints(pts)
	}
}
