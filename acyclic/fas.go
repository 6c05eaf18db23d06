package acyclic

import (
	"github.com/katalvlaran/dagviz/core"
	"github.com/katalvlaran/dagviz/dfs"
)

// FAS is a feedback arc set: the edges (in their original orientation)
// chosen to be reversed so the graph becomes acyclic.
type FAS struct {
	Edges []EdgeRef
}

// EdgeRef names an edge by its original (source,target) pair.
type EdgeRef struct {
	Source, Target core.Key
}

// Acyclify computes a feedback arc set for g per g.Config.Acyclicer and
// applies it in place, marking reversed edges. Returns the FAS so the
// caller can later Restore it.
func Acyclify(g *core.Graph) (*FAS, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	var fas *FAS
	switch g.Config.Acyclicer {
	case core.AcyclicGreedy:
		fas = GreedyFas(g)
	case core.AcyclicNone:
		fas = &FAS{}
	case core.AcyclicTarjan:
		fas = TarjanFas(g)
	default:
		fas = DFSFas(g)
	}

	fas.Apply(g)

	if dfs.DetectCycle(g) {
		return fas, ErrCycleRemains
	}

	return fas, nil
}

// Apply reverses every edge in the FAS: clone attrs, remove the original,
// re-insert in reversed orientation with Reversed=true.
func (f *FAS) Apply(g *core.Graph) {
	for _, ref := range f.Edges {
		e := g.Edge(ref.Source, ref.Target)
		if e == nil {
			continue
		}
		clone := &core.GraphEdge{
			Source:   ref.Target,
			Target:   ref.Source,
			Reversed: true,
			MinLen:   e.MinLen,
			Weight:   e.Weight,
			Rank:     e.Rank,
			Nesting:  e.Nesting,
		}
		g.RemoveEdge(ref.Source, ref.Target)
		g.AddEdge(ref.Target, ref.Source, clone)
	}
}

// Restore scans every edge in g and, for each with Reversed=true, re-inserts
// the flipped version with Reversed=false — restoring the original
// orientation regardless of which FAS produced it.
func Restore(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	for _, e := range g.Edges() {
		if !e.Reversed {
			continue
		}
		orig := &core.GraphEdge{
			Source:   e.Target,
			Target:   e.Source,
			Reversed: false,
			MinLen:   e.MinLen,
			Weight:   e.Weight,
			Rank:     e.Rank,
			Nesting:  e.Nesting,
		}
		orig.SetPoints(e.Points())
		g.RemoveEdge(e.Source, e.Target)
		g.AddEdge(e.Target, e.Source, orig)
	}

	return nil
}
