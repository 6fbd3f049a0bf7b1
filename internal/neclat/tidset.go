// Package neclat implements the NEclatClosed closed-itemset enumerator: a
// vertical tidset representation, a first-child/next-sibling prefix tree
// built over frequency-sorted items, and a support-indexed closure store.
package neclat

import "github.com/RoaringBitmap/roaring/v2"

// TidSet is a compressed bitmap of transaction ids, backing each frequent
// item's vertical occurrence list.
type TidSet struct {
	bm *roaring.Bitmap
}

func newTidSet() *TidSet {
	return &TidSet{bm: roaring.New()}
}

// Add records tid as present in this tidset.
func (t *TidSet) Add(tid uint32) {
	t.bm.Add(tid)
}

// Cardinality returns the number of transactions in this tidset, i.e. the
// item (or itemset) support.
func (t *TidSet) Cardinality() int {
	return int(t.bm.GetCardinality())
}

// Difference returns a new tidset holding the transactions in t but not in
// other (t \ other), without mutating either operand.
func (t *TidSet) Difference(other *TidSet) *TidSet {
	out := &TidSet{bm: t.bm.Clone()}
	out.bm.AndNot(other.bm)
	return out
}

// Empty reports whether the tidset has no members.
func (t *TidSet) Empty() bool {
	return t.bm.IsEmpty()
}
