package gspan

import "github.com/cespare/xxhash/v2"

// IntSet is a fast membership set for edge IDs, keyed by their xxhash
// digest rather than the int itself — the Go analogue of the source's
// rustc_hash::FxHashSet<usize>, trading a vanishingly small collision
// probability for avoiding Go's generic map hashing overhead on a hot path.
type IntSet struct {
	m map[uint64]struct{}
}

// NewIntSet returns an empty IntSet.
func NewIntSet() *IntSet {
	return &IntSet{m: make(map[uint64]struct{})}
}

func hashInt(v int) uint64 {
	var buf [8]byte
	u := uint64(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}

// Add inserts v into the set.
func (s *IntSet) Add(v int) {
	s.m[hashInt(v)] = struct{}{}
}

// Has reports whether v is a member.
func (s *IntSet) Has(v int) bool {
	_, ok := s.m[hashInt(v)]
	return ok
}

// StringSet is a fast membership set for vertex names, keyed by their
// xxhash digest.
type StringSet struct {
	m map[uint64]struct{}
}

// NewStringSet returns an empty StringSet.
func NewStringSet() *StringSet {
	return &StringSet{m: make(map[uint64]struct{})}
}

// Add inserts v into the set.
func (s *StringSet) Add(v string) {
	s.m[xxhash.Sum64String(v)] = struct{}{}
}

// Has reports whether v is a member.
func (s *StringSet) Has(v string) bool {
	_, ok := s.m[xxhash.Sum64String(v)]
	return ok
}
