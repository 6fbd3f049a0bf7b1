package neclat

import "sort"

// cpStorage is the closed-pattern store: one bucket per support count,
// each bucket holding BitVector keys sorted by strictly ascending
// cardinality. It is owned by a single traversal and never shared across
// goroutines.
type cpStorage struct {
	buckets map[int][]*BitVector
}

func newCPStorage() *cpStorage {
	return &cpStorage{buckets: make(map[int][]*BitVector)}
}

// insertIfClosed reports whether key is a closed itemset at the given
// support: it is rejected if some already-recorded entry at the same
// support has strictly greater cardinality and is a superset of key.
// Accepted keys are inserted in ascending-cardinality order.
func (s *cpStorage) insertIfClosed(key *BitVector, support int) bool {
	bucket := s.buckets[support]

	idx := sort.Search(len(bucket), func(i int) bool {
		return bucket[i].Cardinality() >= key.Cardinality()
	})

	for _, q := range bucket[idx:] {
		if q.Cardinality() > key.Cardinality() && key.IsSubset(q) {
			return false
		}
	}

	bucket = append(bucket, nil)
	copy(bucket[idx+1:], bucket[idx:])
	bucket[idx] = key
	s.buckets[support] = bucket
	return true
}
