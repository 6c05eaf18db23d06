package selfedge

import "github.com/katalvlaran/dagviz/core"

// PositionAndRemove computes each self-edge's six-point elliptical bulge
// from its dummy node's final x position relative to the source node,
// writes the points onto the original edge, re-inserts the edge, and
// removes the dummy.
func PositionAndRemove(g *core.Graph, dummies Dummies) {
	for dk, original := range dummies {
		dummy := g.Node(dk)
		if dummy == nil {
			continue
		}
		source := g.Node(original.Source)
		if source == nil {
			g.RemoveNode(dk)
			continue
		}

		x := source.X + source.Width/2
		y := source.Y
		dx := dummy.X - x
		dy := source.Height / 2

		g.AddEdge(original.Source, original.Target, original)
		restored := g.Edge(original.Source, original.Target)
		restored.SetPoints([]core.Point{
			{X: x + 2*dx/3, Y: y - dy},
			{X: x + 2*dx/3, Y: y - dy},
			{X: x + 5*dx/6, Y: y - dy},
			{X: x + dx, Y: y},
			{X: x + 5*dx/6, Y: y + dy},
			{X: x + 2*dx/3, Y: y + dy},
		})

		g.RemoveNode(dk)
		g.ClearSelfEdges(original.Source)
	}
}
