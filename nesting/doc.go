// Package nesting builds and tears down the auxiliary graph structure used
// to keep compound-cluster members between their top and bottom border
// nodes during ranking.
//
// Build multiplies every edge's MinLen by 2*maxDepth+1 to leave room to
// interleave border nodes, adds a synthetic Root with zero-weight edges to
// every hierarchy leaf, and wires top/bottom Border dummies for every
// internal cluster. Cleanup removes Root and every Nesting-flagged edge
// once ranking has finished with them.
package nesting
