// Package selfedge extracts self-loops before layout, reserves their
// ordering slot during ordering, and synthesizes a six-point elliptical
// bulge around the source node after positioning. finalize.go and
// intersect.go implement the remaining responsibilities: translating the
// graph to the non-negative quadrant, computing edge/bbox intersection
// points, and reversing polylines of edges flipped during acyclification.
package selfedge
