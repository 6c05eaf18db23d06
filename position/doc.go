// Package position assigns (x, y) coordinates to every node via
// Brandes-Köpf four-direction alignment, horizontal compaction, and
// balancing for x, plus a straightforward per-rank stack for y
//.
package position
