package bitmatrix

import "github.com/bits-and-blooms/bitset"

// Cover is the set of transaction ids whose transactions contain every item
// of some itemset: the DCI tidset.
type Cover struct {
	bits *bitset.BitSet
}

// Count returns the support, i.e. the number of transactions in the cover.
func (c *Cover) Count() int {
	return int(c.bits.Count())
}
