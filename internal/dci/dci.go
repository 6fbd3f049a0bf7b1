// Package dci implements the DCI-Closed closed-itemset enumerator: a
// bit-matrix recursion carrying (closed, pre, post) itemset triples per
// recursion frame, with a pre-set duplicate check that avoids re-enumerating
// a closure reached through more than one path.
//
// Both the sequential and the parallel variant share the initial-set
// construction and duplicate check in this file; sequential.go and
// parallel.go differ only in how the recursive step is scheduled.
package dci

import "github.com/dzvon-go/fim/internal/bitmatrix"

// Result is one closed itemset found by the enumerator, expressed in the
// dataset's internal (dense) item indices.
type Result struct {
	Items   *bitmatrix.ItemSet
	Support int
}

// initialSets builds the first recursion frame: items occurring in every
// transaction go straight into closed (they belong to every closure),
// frequent-but-not-universal items seed post, and pre starts empty.
func initialSets(m *bitmatrix.BitMatrix, minSupport int) (closed, pre, post *bitmatrix.ItemSet) {
	n := m.ItemsCount()
	closed = bitmatrix.NewItemSet(n)
	pre = bitmatrix.NewItemSet(n)
	post = bitmatrix.NewItemSet(n)

	transactionsCount := m.TransactionsCount()
	for i := 0; i < n; i++ {
		support := m.ItemSupport(i)
		switch {
		case support == transactionsCount:
			closed.Add(i)
		case support >= minSupport:
			post.Add(i)
		}
	}
	return closed, pre, post
}

// isDup reports whether newGenCover is already covered by some item in the
// pre-set, meaning this closure was already enumerated through another
// branch of the recursion and must be skipped.
func isDup(m *bitmatrix.BitMatrix, newGenCover *bitmatrix.Cover, pre *bitmatrix.ItemSet) bool {
	for _, item := range pre.Slice() {
		if m.Supports(item, newGenCover) {
			return true
		}
	}
	return false
}
