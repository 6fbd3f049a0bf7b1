package dci

import "github.com/dzvon-go/fim/internal/bitmatrix"

// Sequential runs DCI-Closed single-threaded over m, returning every closed
// itemset with support >= minSupport. The bottom closure (items occurring in
// every transaction) is always the first result, even when the input has no
// items at all.
func Sequential(m *bitmatrix.BitMatrix, minSupport int) []Result {
	closed, pre, post := initialSets(m, minSupport)

	out := []Result{{Items: closed.Clone(), Support: m.TransactionsCount()}}
	step(m, minSupport, closed, pre, post, &out)
	return out
}

// step explores one recursion frame of the DCI-Closed search, following the
// (closed, pre, post) bookkeeping from the reference algorithm: for every
// candidate extension i in post (ascending), compute its closure, skip
// duplicates already reachable through pre, and recurse over the remaining
// post items split into closure members and new post candidates.
func step(m *bitmatrix.BitMatrix, minSupport int, closedSet, pre, postSet *bitmatrix.ItemSet, out *[]Result) {
	items := postSet.Slice()

	for idx, i := range items {
		newGen := closedSet.Clone()
		newGen.Add(i)

		newGenCover := m.Cover(newGen)
		if newGenCover.Count() < minSupport {
			continue
		}
		if isDup(m, newGenCover, pre) {
			continue
		}

		closedNew := newGen.Clone()
		postNew := bitmatrix.NewItemSet(m.ItemsCount())

		for _, j := range items[idx+1:] {
			if m.Supports(j, newGenCover) {
				closedNew.Add(j)
			} else {
				postNew.Add(j)
			}
		}

		// Every item just folded into closedNew keeps the cover unchanged by
		// construction, so its support is exactly newGenCover's.
		*out = append(*out, Result{Items: closedNew.Clone(), Support: newGenCover.Count()})

		step(m, minSupport, closedNew, pre.Clone(), postNew, out)

		pre.Add(i)
	}
}
