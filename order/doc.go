// Package order assigns a per-rank Order to every node via an iterative
// barycentric sweep with crossing-count scoring.
package order
