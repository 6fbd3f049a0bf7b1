// Package itemindex remaps arbitrary external item identifiers (which may be
// sparse, large, or non-contiguous) onto the dense 0..n-1 indices the
// bit-matrix and tidset representations require.
package itemindex

import "sort"

// Index is a two-way mapping between original item identifiers and the dense
// indices assigned to them, in ascending order of the original identifier.
type Index struct {
	toOriginal []int
	toDense    map[int]int
}

// Build scans transactions once, collects the distinct item identifiers that
// appear in at least one transaction, and assigns them dense indices in
// ascending order of the original identifier.
func Build(transactions [][]int) *Index {
	seen := make(map[int]struct{})
	for _, tx := range transactions {
		for _, item := range tx {
			seen[item] = struct{}{}
		}
	}

	originals := make([]int, 0, len(seen))
	for item := range seen {
		originals = append(originals, item)
	}
	sort.Ints(originals)

	toDense := make(map[int]int, len(originals))
	for dense, original := range originals {
		toDense[original] = dense
	}

	return &Index{toOriginal: originals, toDense: toDense}
}

// Len returns the number of distinct items in the universe.
func (ix *Index) Len() int {
	return len(ix.toOriginal)
}

// Dense returns the dense index assigned to original, or false if original
// never appeared in any transaction passed to Build.
func (ix *Index) Dense(original int) (int, bool) {
	dense, ok := ix.toDense[original]
	return dense, ok
}

// Original returns the original item identifier for a dense index. It panics
// if dense is out of range, since that indicates a caller bug rather than a
// recoverable input error.
func (ix *Index) Original(dense int) int {
	if dense < 0 || dense >= len(ix.toOriginal) {
		panic("logic error: dense index out of range")
	}
	return ix.toOriginal[dense]
}

// Translate maps a single transaction's original item identifiers to dense
// indices, dropping any identifier absent from the index (defensive against
// callers that built the index from a different transaction set).
func (ix *Index) Translate(tx []int) []int {
	out := make([]int, 0, len(tx))
	for _, item := range tx {
		if dense, ok := ix.toDense[item]; ok {
			out = append(out, dense)
		}
	}
	return out
}
