package bitmatrix

import "testing"

// toy builds the 5-item x 6-transaction matrix from the DCI-Closed toy
// fixture in original_source/src/dciclosed/tests/datasets.rs.
func toy() *BitMatrix {
	m := New(5, 6)
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

func TestItemSupport(t *testing.T) {
	m := toy()

	want := []int{3, 2, 5, 2, 0}
	for item, w := range want {
		if got := m.ItemSupport(item); got != w {
			t.Errorf("ItemSupport(%d) = %d, want %d", item, got, w)
		}
	}
}

func TestCoverAndSupport(t *testing.T) {
	m := toy()

	empty := NewItemSet(5)
	if got := m.Support(empty); got != 6 {
		t.Errorf("support of empty itemset = %d, want 6 (all transactions)", got)
	}

	s := NewItemSet(5)
	s.Add(0)
	s.Add(2)
	if got := m.Support(s); got != 2 {
		t.Errorf("support of {0,2} = %d, want 2", got)
	}
}

func TestSupports(t *testing.T) {
	m := toy()

	s := NewItemSet(5)
	s.Add(0)
	cover := m.Cover(s)

	if !m.Supports(0, cover) {
		t.Error("item 0 must support its own cover")
	}
	if m.Supports(1, cover) {
		t.Error("item 1 does not occur in every transaction of item 0's cover")
	}
}

func TestItemSetAscendingIteration(t *testing.T) {
	s := NewItemSet(10)
	for _, i := range []int{7, 1, 4, 0} {
		s.Add(i)
	}

	want := []int{0, 1, 4, 7}
	got := s.Slice()
	if len(got) != len(want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("Slice() = %v, want %v", got, want)
		}
	}

	var viaAll []int
	for i := range s.All() {
		viaAll = append(viaAll, i)
	}
	if len(viaAll) != len(want) {
		t.Fatalf("All() = %v, want %v", viaAll, want)
	}
}

func TestItemSetClone(t *testing.T) {
	s := NewItemSet(4)
	s.Add(1)

	c := s.Clone()
	c.Add(2)

	if s.Len() != 1 {
		t.Fatalf("mutating the clone must not affect the original, Len() = %d", s.Len())
	}
	if c.Len() != 2 {
		t.Fatalf("clone Len() = %d, want 2", c.Len())
	}
}
