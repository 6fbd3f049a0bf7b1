package neclat

import (
	"fmt"
	"sort"
	"testing"
)

// toyTransactions mirrors the bit-matrix toy fixture shared with the dci
// package (original_source/src/dciclosed/tests/datasets.rs), expressed as
// per-transaction item lists instead of a matrix.
func toyTransactions() [][]int {
	return [][]int{
		{0, 2, 3},
		{1, 2},
		{2},
		{0, 3},
		{1, 2},
		{0, 2},
	}
}

func resultKey(r Result) string {
	items := append([]int(nil), r.Items...)
	sort.Ints(items)
	return fmt.Sprintf("%v@%d", items, r.Support)
}

func resultSet(results []Result) map[string]bool {
	set := make(map[string]bool, len(results))
	for _, r := range results {
		set[resultKey(r)] = true
	}
	return set
}

func TestRunToyMatchesDCI(t *testing.T) {
	results := Run(toyTransactions(), 5, 2)

	want := map[string]bool{
		"[0 2]@2": true,
		"[0 3]@2": true,
		"[1 2]@2": true,
		"[0]@3":   true,
		"[2]@5":   true,
		"[]@6":    true,
	}

	got := resultSet(results)
	if len(got) != len(want) {
		t.Fatalf("got %d distinct results %v, want %d: %v", len(got), keys(got), len(want), keys(want))
	}
	for k := range want {
		if !got[k] {
			t.Errorf("missing expected result %s", k)
		}
	}
}

func TestRunNoUniversalItemSynthesizesEmptyTop(t *testing.T) {
	// Three disjoint singleton transactions: no item is universal, so the
	// traversal itself never visits the empty closure.
	transactions := [][]int{{0}, {1}, {2}}
	results := Run(transactions, 3, 1)

	found := false
	for _, r := range results {
		if r.Support == 3 {
			if len(r.Items) != 0 {
				t.Fatalf("top closure should be empty, got %v", r.Items)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("expected a synthesized result with support == transaction count")
	}
}

func TestRunAllUniversal(t *testing.T) {
	transactions := [][]int{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}}
	results := Run(transactions, 3, 2)

	if len(results) != 1 {
		t.Fatalf("expected exactly one closed itemset, got %d: %v", len(results), keys(resultSet(results)))
	}
	if results[0].Support != 3 || len(results[0].Items) != 3 {
		t.Fatalf("expected ({0,1,2}, 3), got %s", resultKey(results[0]))
	}
}

func TestRunEmptyTransactions(t *testing.T) {
	results := Run(nil, 0, 0)
	if len(results) != 1 || len(results[0].Items) != 0 || results[0].Support != 0 {
		t.Fatalf("expected a single (empty, 0) result, got %v", results)
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
