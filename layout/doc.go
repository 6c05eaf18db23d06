// Package layout drives the ranking/ordering/positioning sub-packages
// through their fixed 23-step sequence and renders the result as the
// bounding-box + polyline shape consumed by a renderer.
package layout
