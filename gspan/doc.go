// Package gspan implements a gSpan-style canonical-DFS-code frequent
// subgraph miner: projection-based instance tracking, two-level support
// counting (cross-graph and within-graph), and minimality pruning.
package gspan
