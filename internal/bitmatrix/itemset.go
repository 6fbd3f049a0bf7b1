// Package bitmatrix provides the dense items x transactions bit grid and the
// itemset/cover bitsets that the DCI-Closed enumerator (see the dci package)
// operates on.
//
// The underlying storage is github.com/bits-and-blooms/bitset, the same
// growable bitset the teacher package reaches for whenever it needs a plain,
// general-purpose bit vector (see node.go's prefixCBTree/childTree).
package bitmatrix

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// ItemSet is a set of internal (dense) item indices. Iteration is always in
// ascending order, which the DCI recursion's pre/post split relies on.
type ItemSet struct {
	bits *bitset.BitSet
}

// NewItemSet returns an empty ItemSet sized for a universe of the given
// number of items.
func NewItemSet(universe int) *ItemSet {
	return &ItemSet{bits: bitset.New(uint(universe))}
}

// Add inserts item index i. Adding the same index twice is a no-op.
func (s *ItemSet) Add(i int) {
	s.bits.Set(uint(i))
}

// Clone returns an independent copy of s.
func (s *ItemSet) Clone() *ItemSet {
	return &ItemSet{bits: s.bits.Clone()}
}

// Len returns the number of items in the set.
func (s *ItemSet) Len() int {
	return int(s.bits.Count())
}

// Slice returns the items in ascending order.
func (s *ItemSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// All iterates the items in ascending order.
func (s *ItemSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}
