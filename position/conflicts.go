package position

import "github.com/katalvlaran/dagviz/core"

// pairKey is an unordered (normalized) node pair used to record a
// type-1/type-2 alignment conflict.
type pairKey struct{ a, b core.Key }

func normalizePair(s, t core.Key) pairKey {
	if s <= t {
		return pairKey{s, t}
	}
	return pairKey{t, s}
}

// conflictSet records every forbidden alignment pair found by
// findConflicts.
type conflictSet map[pairKey]struct{}

func (c conflictSet) add(s, t core.Key) { c[normalizePair(s, t)] = struct{}{} }

func (c conflictSet) has(s, t core.Key) bool {
	_, ok := c[normalizePair(s, t)]
	return ok
}

// findConflicts locates every type-1 (non-inner segment crossing an inner
// segment) and type-2 (inner segment crossing inner segment) conflict in
// matrix.
func findConflicts(g *core.Graph, matrix [][]core.Key) conflictSet {
	conflicts := make(conflictSet)
	if len(matrix) == 0 {
		return conflicts
	}
	findType1(g, matrix, conflicts)
	findType2(g, matrix, conflicts)
	return conflicts
}

// otherInnerSegment returns the dummy predecessor of a dummy node key, if
// any — the "inner segment" partner used by type-1 conflict detection.
func otherInnerSegment(g *core.Graph, key core.Key) (core.Key, bool) {
	n := g.Node(key)
	if n == nil || n.Dummy == core.NotDummy {
		return 0, false
	}
	for _, p := range g.Predecessors(key) {
		if pn := g.Node(p); pn != nil && pn.Dummy != core.NotDummy {
			return p, true
		}
	}
	return 0, false
}

func findType1(g *core.Graph, matrix [][]core.Key, conflicts conflictSet) {
	prevLen := len(matrix[0])

	for li := 1; li < len(matrix); li++ {
		layer := matrix[li]
		if len(layer) == 0 {
			continue
		}
		k0 := 0
		scanPos := 0
		lastKey := layer[len(layer)-1]

		for i, key := range layer {
			w, hasInner := otherInnerSegment(g, key)
			var k1 int
			switch {
			case !hasInner && key != lastKey:
				continue
			case hasInner:
				wn := g.Node(w)
				if wn == nil || wn.Order == nil {
					continue
				}
				k1 = *wn.Order
			default: // !hasInner && key == lastKey
				k1 = prevLen
			}

			for _, scanKey := range layer[scanPos : i+1] {
				scanNode := g.Node(scanKey)
				for _, preKey := range g.Predecessors(scanKey) {
					preNode := g.Node(preKey)
					if preNode == nil || preNode.Order == nil {
						continue
					}
					pos := *preNode.Order
					bothDummy := preNode.Dummy != core.NotDummy && scanNode.Dummy != core.NotDummy
					if (pos < k0 || k1 < pos) && !bothDummy {
						conflicts.add(preKey, scanKey)
					}
				}
			}

			scanPos = i + 1
			k0 = k1
		}
		prevLen = len(layer)
	}
}

func findType2(g *core.Graph, matrix [][]core.Key, conflicts conflictSet) {
	northLen := len(matrix[0])

	for li := 1; li < len(matrix); li++ {
		south := matrix[li]
		prevNorthPos := -1
		nextNorthPos := 0
		southPos := 0
		southLen := len(south)

		for southAhead, key := range south {
			n := g.Node(key)
			if n != nil && n.Dummy == core.DummyBorder {
				preds := g.Predecessors(key)
				if len(preds) == 1 {
					pn := g.Node(preds[0])
					if pn != nil && pn.Order != nil {
						nextNorthPos = *pn.Order
						scanType2(g, south, southPos, southAhead, prevNorthPos, nextNorthPos, conflicts)
						southPos = southAhead
						prevNorthPos = nextNorthPos
					}
				}
			}
			scanType2(g, south, southPos, southLen, nextNorthPos, northLen, conflicts)
		}

		northLen = southLen
	}
}

func scanType2(g *core.Graph, south []core.Key, start, end, prevNorthBorder, nextNorthBorder int, conflicts conflictSet) {
	for _, sid := range south[start:end] {
		n := g.Node(sid)
		if n == nil || n.Dummy == core.NotDummy {
			continue
		}
		for _, id := range g.Predecessors(sid) {
			pn := g.Node(id)
			if pn == nil {
				continue
			}
			order := 0
			if pn.Order != nil {
				order = *pn.Order
			}
			hasConflict := order < prevNorthBorder || order > nextNorthBorder
			if pn.Dummy != core.NotDummy && hasConflict {
				conflicts.add(id, sid)
			}
		}
	}
}
