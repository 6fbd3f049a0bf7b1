package neclat

import "sort"

// Result is one closed itemset found by the enumerator, expressed as the
// dense item indices the caller's transactions were given in (the same
// dense space internal/bitmatrix works over, so DCI and NEclat results are
// directly comparable without an extra translation step).
type Result struct {
	Items   []int
	Support int
}

// Run mines every closed itemset with support >= minCount out of
// transactions, where each transaction is a slice of dense item indices
// (0..numItems-1) as produced by internal/itemindex. minCount is an
// absolute transaction count, already rounded by the caller.
func Run(transactions [][]int, numItems, minCount int) []Result {
	n := len(transactions)

	// An item listed more than once in the same transaction counts once.
	counts := make([]int, numItems)
	lastTid := make([]int, numItems)
	for i := range lastTid {
		lastTid[i] = -1
	}
	for tid, tx := range transactions {
		for _, item := range tx {
			if lastTid[item] != tid {
				lastTid[item] = tid
				counts[item]++
			}
		}
	}

	frequent := make([]int, 0, numItems)
	for item, c := range counts {
		if c >= minCount {
			frequent = append(frequent, item)
		}
	}
	// Decreasing count, ties broken by ascending original dense index so
	// the ranking is deterministic across runs.
	sort.Slice(frequent, func(i, j int) bool {
		if counts[frequent[i]] != counts[frequent[j]] {
			return counts[frequent[i]] > counts[frequent[j]]
		}
		return frequent[i] < frequent[j]
	})

	k := len(frequent)
	rankOf := make(map[int]int, k) // dense item index -> frequency rank
	origOf := make([]int, k)       // frequency rank -> dense item index
	for rank, item := range frequent {
		rankOf[item] = rank
		origOf[rank] = item
	}

	tidsets := make([]*TidSet, k)
	for rank := range tidsets {
		tidsets[rank] = newTidSet()
	}
	for tid, tx := range transactions {
		for _, item := range tx {
			if rank, ok := rankOf[item]; ok {
				tidsets[rank].Add(uint32(tid))
			}
		}
	}

	t := &traversal{origOf: origOf, store: newCPStorage(), minCount: minCount}

	if k > 0 {
		chain := buildInitialChain(tidsets)
		for curr := chain; curr != nil; curr = curr.next {
			t.path = t.path[:0]
			t.visit(curr, 1)
		}
	}

	// The closure of the empty itemset (items common to every transaction,
	// support == n) is the top of the closure lattice. The traversal above
	// only ever visits non-empty paths, each starting at one top-level chain
	// entry, so a dataset whose universal items never form such a path on
	// their own (e.g. no item at all is universal) never visits that
	// closure. Synthesize it if nothing else already reported support n,
	// mirroring how DCI-Closed always seeds it up front.
	hasTop := false
	for _, r := range t.results {
		if r.Support == n {
			hasTop = true
			break
		}
	}
	if !hasTop {
		universal := make([]int, 0)
		for item, c := range counts {
			if c == n {
				universal = append(universal, item)
			}
		}
		sort.Ints(universal)
		t.results = append(t.results, Result{Items: universal, Support: n})
	}

	return t.results
}

// traversal carries the per-run mutable state Phase 4 of the enumerator
// needs: the path buffer (frequency ranks from root to the current node),
// the closed-pattern store, and the accumulated results.
type traversal struct {
	path     []int
	origOf   []int
	store    *cpStorage
	results  []Result
	minCount int
}

// visit implements traverse(curr, level) from the algorithm description:
// extend the path with curr, build tentative children out of curr's
// siblings (pruning by min_count and absorbing same-support extensions),
// test the resulting path for closure, then recurse into the real
// children before unwinding.
func (t *traversal) visit(curr *node, level int) {
	t.path = append(t.path, curr.label)
	sameCount := 0

	var firstChild, lastChild *node
	for s := curr.next; s != nil; s = s.next {
		childTidset := siblingDifference(curr, s, level)
		childCount := curr.count - childTidset.Cardinality()
		if childCount < t.minCount {
			continue
		}

		if curr.count == childCount {
			t.path = append(t.path, s.label)
			sameCount++
			continue
		}

		child := &node{label: s.label, tidset: childTidset, count: childCount}
		if firstChild == nil {
			firstChild = child
		} else {
			lastChild.next = child
		}
		lastChild = child
	}
	curr.firstChild = firstChild

	key := newBitVector(t.path, len(t.path))
	if t.store.insertIfClosed(key, curr.count) {
		items := make([]int, len(t.path))
		for i, rank := range t.path {
			items[i] = t.origOf[rank]
		}
		sort.Ints(items)
		t.results = append(t.results, Result{Items: items, Support: curr.count})
	}

	for child := curr.firstChild; child != nil; {
		next := child.next
		child.next = nil // detach: the subtree no longer needs its sibling link
		t.visit(child, level+1)
		child = next
	}

	t.path = t.path[:len(t.path)-1-sameCount]
}

// siblingDifference derives a tentative child's tidset from curr and one
// of its siblings, per the level-1-vs-deeper direction flip the algorithm
// specifies.
func siblingDifference(curr, s *node, level int) *TidSet {
	switch {
	case level == 1 && !s.tidset.Empty():
		return curr.tidset.Difference(s.tidset)
	case !curr.tidset.Empty():
		return s.tidset.Difference(curr.tidset)
	default:
		return newTidSet()
	}
}
