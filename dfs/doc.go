// Package dfs implements depth-first search traversal, cycle detection, and
// topological sort on a core.Graph, keyed by core.Key rather than string
// vertex IDs.
//
// DFS supports pre-/post-order hooks, cancellation via context.Context,
// depth limiting, and neighbor filtering. TopologicalSort computes a linear
// ordering of nodes in a directed acyclic graph, returning ErrCycleDetected
// if the graph has a cycle. DetectCycle reports whether any cycle exists,
// used by acyclic.Acyclify after every FAS strategy as an independent
// post-condition check.
//
// Complexity: O(V+E) time, O(V) memory for all three operations.
package dfs
