package dci

import (
	"github.com/dzvon-go/fim/internal/bitmatrix"
	"golang.org/x/sync/errgroup"
)

// channelBound caps the number of in-flight results the collector has not
// yet drained. It exists only to bound peak memory; it is not part of the
// algorithm's contract (see spec.md §4.2's parallel variant).
const channelBound = 8192

// Parallel runs DCI-Closed over m using a bounded pool of workers goroutines.
// Each spawned subtree recursion works off its own cloned pre-set and a
// shared, immutable BitMatrix; results are funneled through a single bounded
// channel to one collector goroutine, so arrival order (and therefore
// output order) is not guaranteed across runs. Ordering guarantees beyond
// that are not made: two parallel runs over the same input may emit results
// in different order, but always the same set (spec.md §5).
func Parallel(m *bitmatrix.BitMatrix, minSupport, workers int) ([]Result, error) {
	closed, pre, post := initialSets(m, minSupport)

	results := make(chan Result, channelBound)
	collected := make(chan []Result, 1)

	go func() {
		out := []Result{{Items: closed.Clone(), Support: m.TransactionsCount()}}
		for r := range results {
			out = append(out, r)
		}
		collected <- out
	}()

	var eg errgroup.Group
	if workers > 0 {
		eg.SetLimit(workers)
	}

	eg.Go(func() error {
		stepParallel(m, minSupport, closed, pre, post, results, &eg)
		return nil
	})

	err := eg.Wait()
	close(results)
	out := <-collected

	if err != nil {
		return nil, err
	}
	return out, nil
}

// stepParallel mirrors step, but dispatches each recursive call to the
// worker pool instead of recursing directly on the calling goroutine. The
// pre-set mutation (appending i) happens on the parent goroutine right after
// scheduling the child, using a snapshot of pre taken before the mutation,
// so the child sees the pre-set as it was at scheduling time. A dispatched
// child is not waited for; when the pool has no free slot, the child runs
// inline on the calling goroutine instead, so workers never block waiting
// for one another.
func stepParallel(m *bitmatrix.BitMatrix, minSupport int, closedSet, pre, postSet *bitmatrix.ItemSet, results chan<- Result, eg *errgroup.Group) {
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

		results <- Result{Items: closedNew.Clone(), Support: newGenCover.Count()}

		preSnapshot := pre.Clone()
		if !eg.TryGo(func() error {
			stepParallel(m, minSupport, closedNew, preSnapshot, postNew, results, eg)
			return nil
		}) {
			stepParallel(m, minSupport, closedNew, preSnapshot, postNew, results, eg)
		}

		pre.Add(i)
	}
}
