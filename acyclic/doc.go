// Package acyclic breaks cycles in a core.Graph by reversing a feedback arc
// set (FAS), and restores the original orientation after layout.
//
// Two strategies are provided: DFSFas (default) does an iterative
// explicit-stack depth-first search, recording an edge as a feedback arc
// whenever its target is already on the current path. GreedyFas repeatedly
// removes the node with the largest |out-degree - in-degree|, adding its
// majority-side edges to the FAS. A third, additive strategy (TarjanFas)
// is built on gonum's topological-sort/SCC primitives for callers who opt
// into core.AcyclicTarjan.
//
// Complexity: O(V+E) time, O(V) space for DFSFas; O(V·(V+E)) worst case for
// GreedyFas (bounded by repeated degree scans).
package acyclic
