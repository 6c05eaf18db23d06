package core

// DummyKind classifies synthetic nodes inserted by the layout engine.
type DummyKind int

const (
	// NotDummy marks a real, caller-supplied node.
	NotDummy DummyKind = iota
	// DummyRoot is the nesting graph's synthetic root (A2).
	DummyRoot
	// DummyBorder marks a cluster top/bottom boundary node (A2).
	DummyBorder
	// DummyEdge marks one link in a normalized long-edge chain (A4).
	DummyEdge
	// DummyEdgeProxy marks the one chain link that remembers the original
	// edge's assigned rank, used as a label anchor (A4).
	DummyEdgeProxy
	// DummySelfEdge marks the placeholder inserted for a self-loop during
	// ordering/positioning (A7).
	DummySelfEdge
)

// RankDir is the global layout direction.
type RankDir int

const (
	RankDirTB RankDir = iota // top-to-bottom (default)
	RankDirBT                // bottom-to-top
	RankDirLR                // left-to-right
	RankDirRL                // right-to-left
)

// Acyclicer selects the feedback-arc-set strategy used to break cycles.
type Acyclicer int

const (
	AcyclicDfs    Acyclicer = iota // iterative DFS FAS (default)
	AcyclicGreedy                  // degree-difference greedy FAS
	AcyclicNone                    // assume the input is already a DAG
	AcyclicTarjan                  // gonum-backed SCC/topo-sort FAS (additive)
)

// Ranker selects the rank-assignment algorithm.
type Ranker int

const (
	RankerNetworkSimplex Ranker = iota // default: exact, minimal total edge length
	RankerTightTree
	RankerLongestPath
)

// Point is a single 2D coordinate on an edge's polyline.
type Point struct {
	X, Y float64
}

// GraphNode carries the mutable layout attributes of a node.
//
// Rank/MinRank/MaxRank/Order/BorderTop/BorderBottom/Edge are populated
// progressively by different pipeline stages; a nil pointer means "not yet
// assigned" and callers must check the pointer fields for nil rather than
// assuming a zero value is meaningful.
type GraphNode struct {
	// Label is an arbitrary caller-supplied display label (op type, name…).
	Label string

	X, Y          float64
	Width, Height float64

	Rank    *int
	MinRank *int
	MaxRank *int
	Order   *int

	Dummy DummyKind

	BorderTop    *Key
	BorderBottom *Key

	// Low/Lim/NSTree hold network-simplex tree-interval bookkeeping (A3).
	// rank.NetworkSimplex keeps its intervals in its own maps and does not
	// set them.
	Low    *int
	Lim    *int
	NSTree *Key // tree parent during network simplex (distinct from compound Parent)

	// Edge is a backpointer used by DummyEdge/DummyEdgeProxy nodes to
	// remember the original long edge they stand in for.
	Edge *Key
}

// edgePointCap is the number of polyline points stored inline before the
// overflow slice spills to the heap, mirroring the source's small-vector
// optimization for the typical case of a handful of bend points.
const edgePointCap = 6

// GraphEdge carries the mutable layout attributes of an edge.
type GraphEdge struct {
	Source, Target Key

	Reversed bool
	MinLen   int
	Weight   float64

	Rank int

	Nesting bool

	CutValue float64

	inlinePts [edgePointCap]Point
	inlineLen int
	overflow  []Point
}

// Points returns the polyline points in order. The returned slice shares no
// backing array with the edge's internal storage; mutate via
// SetPoints/AppendPoint.
func (e *GraphEdge) Points() []Point {
	out := make([]Point, 0, e.inlineLen+len(e.overflow))
	out = append(out, e.inlinePts[:e.inlineLen]...)
	out = append(out, e.overflow...)
	return out
}

// SetPoints replaces the edge's polyline.
func (e *GraphEdge) SetPoints(pts []Point) {
	e.inlineLen = 0
	e.overflow = nil
	for _, p := range pts {
		e.AppendPoint(p)
	}
}

// AppendPoint appends one point to the edge's polyline.
func (e *GraphEdge) AppendPoint(p Point) {
	if e.inlineLen < edgePointCap {
		e.inlinePts[e.inlineLen] = p
		e.inlineLen++
		return
	}
	e.overflow = append(e.overflow, p)
}

// PrependPoint inserts p at the front of the polyline.
func (e *GraphEdge) PrependPoint(p Point) {
	pts := e.Points()
	e.SetPoints(append([]Point{p}, pts...))
}

// ReversePoints reverses the polyline order in place.
func (e *GraphEdge) ReversePoints() {
	pts := e.Points()
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	e.SetPoints(pts)
}

// GraphConfig configures the layout and ranking algorithms applied to a
// Graph. Zero value is not meaningful; use NewGraph's GraphOption defaults.
type GraphConfig struct {
	NodeSep float64
	EdgeSep float64
	RankSep float64

	RankDir RankDir

	Acyclicer Acyclicer
	Ranker    Ranker

	// NodeRankFactor preserves cluster-boundary ranks during empty-rank
	// removal.
	NodeRankFactor int
}

// DefaultGraphConfig mirrors the shipping pipeline's defaults.
func DefaultGraphConfig() GraphConfig {
	return GraphConfig{
		NodeSep:        50,
		EdgeSep:        20,
		RankSep:        50,
		RankDir:        RankDirTB,
		Acyclicer:      AcyclicDfs,
		Ranker:         RankerNetworkSimplex,
		NodeRankFactor: 0,
	}
}

// GraphOption configures a Graph before or at construction.
type GraphOption func(g *Graph)

// WithCompound marks the graph as compound (supports parent/child clusters).
func WithCompound() GraphOption {
	return func(g *Graph) { g.IsCompound = true }
}

// WithUndirected marks the graph as undirected (default is directed, which
// is the only mode the layout pipeline operates on; undirected is exposed
// for completeness and mining inputs that are naturally undirected).
func WithUndirected() GraphOption {
	return func(g *Graph) { g.IsDirected = false }
}

// WithConfig overrides the default GraphConfig wholesale.
func WithConfig(cfg GraphConfig) GraphOption {
	return func(g *Graph) { g.Config = cfg }
}

// WithRankDir sets GraphConfig.RankDir.
func WithRankDir(dir RankDir) GraphOption {
	return func(g *Graph) { g.Config.RankDir = dir }
}

// WithAcyclicer sets GraphConfig.Acyclicer.
func WithAcyclicer(a Acyclicer) GraphOption {
	return func(g *Graph) { g.Config.Acyclicer = a }
}

// WithRanker sets GraphConfig.Ranker.
func WithRanker(r Ranker) GraphOption {
	return func(g *Graph) { g.Config.Ranker = r }
}
