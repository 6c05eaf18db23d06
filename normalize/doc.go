// Package normalize splits long edges into chains of unit-length dummy
// edges and reassembles them afterward.
//
// Normalize replaces every edge (s,t) with rank(t)-rank(s) > 1 by a chain
// of Edge-typed dummy nodes, one per intermediate rank, linked by
// unit-length edges. Denormalize walks each recorded chain head, collects
// the dummies' coordinates as the restored edge's polyline, and removes
// the dummy nodes.
package normalize
