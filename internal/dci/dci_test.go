package dci

import (
	"fmt"
	"sort"
	"testing"

	"github.com/dzvon-go/fim/internal/bitmatrix"
)

// toy is the 5-item x 6-transaction fixture from
// original_source/src/dciclosed/tests/datasets.rs (transcribed to Go).
func toy() *bitmatrix.BitMatrix {
	m := bitmatrix.New(5, 6)
	m.Set(0, 0)
	m.Set(0, 3)
	m.Set(0, 5)
	m.Set(1, 1)
	m.Set(1, 4)
	m.Set(2, 0)
	m.Set(2, 1)
	m.Set(2, 2)
	m.Set(2, 4)
	m.Set(2, 5)
	m.Set(3, 0)
	m.Set(3, 3)
	return m
}

func resultKey(r Result) string {
	return fmt.Sprintf("%v@%d", r.Items.Slice(), r.Support)
}

func resultSet(results []Result) map[string]bool {
	set := make(map[string]bool, len(results))
	for _, r := range results {
		set[resultKey(r)] = true
	}
	return set
}

func TestSequentialToy(t *testing.T) {
	results := Sequential(toy(), 2)

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
		t.Fatalf("got %d distinct results, want %d: %v", len(got), len(want), keys(got))
	}
	for k := range want {
		if !got[k] {
			t.Errorf("missing expected result %s", k)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := resultSet(Sequential(toy(), 2))

	for run := 0; run < 20; run++ {
		par, err := Parallel(toy(), 2, 4)
		if err != nil {
			t.Fatalf("Parallel returned error: %v", err)
		}
		got := resultSet(par)
		if len(got) != len(seq) {
			t.Fatalf("run %d: parallel produced %d results, sequential produced %d", run, len(got), len(seq))
		}
		for k := range seq {
			if !got[k] {
				t.Fatalf("run %d: parallel missing result %s", run, k)
			}
		}
	}
}

func TestEmptyInput(t *testing.T) {
	m := bitmatrix.New(0, 0)
	results := Sequential(m, 0)

	if len(results) != 1 {
		t.Fatalf("expected exactly one result for empty input, got %d", len(results))
	}
	if results[0].Support != 0 || results[0].Items.Len() != 0 {
		t.Fatalf("expected (empty, 0), got %s", resultKey(results[0]))
	}
}

func TestAllUniversal(t *testing.T) {
	m := bitmatrix.New(3, 3)
	for item := 0; item < 3; item++ {
		for tx := 0; tx < 3; tx++ {
			m.Set(item, tx)
		}
	}

	results := Sequential(m, 2)
	if len(results) != 1 {
		t.Fatalf("expected exactly one closed itemset, got %d: %v", len(results), keys(resultSet(results)))
	}
	if results[0].Support != 3 || results[0].Items.Len() != 3 {
		t.Fatalf("expected ({0,1,2}, 3), got %s", resultKey(results[0]))
	}
}

func TestSingletonsBelowThreshold(t *testing.T) {
	m := bitmatrix.New(3, 3)
	m.Set(0, 0)
	m.Set(1, 1)
	m.Set(2, 2)

	results := Sequential(m, 2)
	if len(results) != 1 {
		t.Fatalf("expected exactly one closed itemset, got %d", len(results))
	}
	if results[0].Support != 3 || results[0].Items.Len() != 0 {
		t.Fatalf("expected (empty, 3), got %s", resultKey(results[0]))
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
