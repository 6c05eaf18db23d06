// Package rank assigns an integer Rank to every node of a core.Graph
// satisfying every edge's MinLen constraint.
//
// Three algorithms are provided, selected by core.Graph.Config.Ranker:
// LongestPath (a single post-order pass, fast but not minimal), TightTree
// (longest-path seed plus a feasible-tree tightening loop), and
// NetworkSimplex (the default: tight-tree seed, then cut-value pivoting
// until no tree edge has negative cut value, which minimizes total
// weighted edge length).
package rank
