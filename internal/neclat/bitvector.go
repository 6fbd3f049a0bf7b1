package neclat

import "github.com/dzvon-go/fim/internal/bitset"

// BitVector is the compact, cardinality-tracking subset-test key CPStorage
// uses to decide whether a candidate closed itemset is subsumed by one
// already recorded at the same support. It is built once per tree node
// visited and never mutated afterwards.
type BitVector struct {
	bits        bitset.BitSet
	cardinality int
}

// newBitVector builds a key over the first take internal indices of path.
// bitset.BitSet.Set grows its word slice on demand, so keys built from
// shorter paths simply carry fewer words; IntersectionCardinality compares
// only the overlapping word range, so mismatched lengths between keys are
// never a correctness issue.
func newBitVector(path []int, take int) *BitVector {
	var bits bitset.BitSet
	for i := 0; i < take; i++ {
		bits.Set(uint(path[i]))
	}
	return &BitVector{bits: bits, cardinality: take}
}

// Cardinality returns the number of items in the itemset this key
// represents.
func (v *BitVector) Cardinality() int {
	return v.cardinality
}

// IsSubset reports whether v is a strict-cardinality subset of other: fewer
// set bits, and every bit set in v also set in other.
func (v *BitVector) IsSubset(other *BitVector) bool {
	if v.cardinality >= other.cardinality {
		return false
	}
	return v.bits.IntersectionCardinality(other.bits) == v.cardinality
}
