// Package builder provides deterministic fixture graphs for this module's
// layout and mining test suites: one constructor per literal end-to-end
// scenario (triangle cycle, straight chain, long multi-rank edge,
// self-loop, compound cluster), in place of random graph-family generators
// (Cycle, Path, Star, …) over a string-keyed graph.
package builder
