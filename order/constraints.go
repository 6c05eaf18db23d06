package order

import "github.com/katalvlaran/dagviz/core"

// superEntry is a possibly-merged group of barycenterEntry values, formed
// when the compound hierarchy's constraint graph contradicts the plain
// barycentric order (Forster's constrained two-level heuristic).
type superEntry struct {
	members    []core.Key
	barycenter float64
	weight     float64
	origIndex  int
}

// resolveConstraints coalesces entries that violate parent-imposed
// left-to-right ordering constraints into merged super-entries whose
// barycenter is the weighted mean of their members' barycenters and whose
// weight is the sum of their weights, then
// re-expands the result back into a flat key order.
//
// constraints maps a node to the set of nodes that must appear after it
// within the same layer (derived from sibling order under a shared
// compound parent); absent a compound hierarchy, constraints is empty and
// this reduces to a plain barycenter sort.
func resolveConstraints(entries []barycenterEntry, constraints map[core.Key][]core.Key) []core.Key {
	supers := make([]*superEntry, len(entries))
	index := make(map[core.Key]*superEntry, len(entries))
	for i, e := range entries {
		w := 1.0
		s := &superEntry{members: []core.Key{e.key}, barycenter: e.barycenter, weight: w, origIndex: e.origIndex}
		if !e.hasBary {
			s.weight = 0
		}
		supers[i] = s
		index[e.key] = s
	}

	changed := true
	for changed {
		changed = false
		for i := 0; i < len(supers); i++ {
			for j := i + 1; j < len(supers); j++ {
				if violates(supers[i], supers[j], constraints, index) {
					merged := mergeSupers(supers[i], supers[j])
					supers[i] = merged
					for _, m := range merged.members {
						index[m] = merged
					}
					supers = append(supers[:j], supers[j+1:]...)
					changed = true
					break
				}
			}
			if changed {
				break
			}
		}
	}

	sortSupers(supers)

	var out []core.Key
	for _, s := range supers {
		out = append(out, s.members...)
	}
	return out
}

// violates reports whether a appears after b in barycenter order while a
// constraint requires a to precede b (or vice versa).
func violates(a, b *superEntry, constraints map[core.Key][]core.Key, index map[core.Key]*superEntry) bool {
	for _, am := range a.members {
		for _, after := range constraints[am] {
			if index[after] == b && a.barycenter >= b.barycenter {
				return true
			}
		}
	}
	for _, bm := range b.members {
		for _, after := range constraints[bm] {
			if index[after] == a && b.barycenter >= a.barycenter {
				return true
			}
		}
	}
	return false
}

func mergeSupers(a, b *superEntry) *superEntry {
	totalWeight := a.weight + b.weight
	bary := a.barycenter
	if totalWeight > 0 {
		bary = (a.barycenter*a.weight + b.barycenter*b.weight) / totalWeight
	}
	origIndex := a.origIndex
	if b.origIndex < origIndex {
		origIndex = b.origIndex
	}
	return &superEntry{
		members:    append(append([]core.Key(nil), a.members...), b.members...),
		barycenter: bary,
		weight:     totalWeight,
		origIndex:  origIndex,
	}
}

func sortSupers(supers []*superEntry) {
	for i := 1; i < len(supers); i++ {
		for j := i; j > 0 && less(supers[j], supers[j-1]); j-- {
			supers[j], supers[j-1] = supers[j-1], supers[j]
		}
	}
}

func less(a, b *superEntry) bool {
	if a.weight == 0 || b.weight == 0 {
		return a.origIndex < b.origIndex
	}
	return a.barycenter < b.barycenter
}
