package bitmatrix

import "github.com/bits-and-blooms/bitset"

// BitMatrix is a dense items x transactions bit grid: row i is item i's
// characteristic vector over all transactions. Dimensions are fixed at
// construction.
type BitMatrix struct {
	rows  []*bitset.BitSet
	numTx int
}

// New allocates a BitMatrix for numItems items over numTx transactions. All
// bits start cleared.
func New(numItems, numTx int) *BitMatrix {
	rows := make([]*bitset.BitSet, numItems)
	for i := range rows {
		rows[i] = bitset.New(uint(numTx))
	}
	return &BitMatrix{rows: rows, numTx: numTx}
}

// Set marks item as present in transaction tx.
func (m *BitMatrix) Set(item, tx int) {
	m.rows[item].Set(uint(tx))
}

// ItemsCount returns the number of items (rows).
func (m *BitMatrix) ItemsCount() int {
	return len(m.rows)
}

// TransactionsCount returns the number of transactions (columns).
func (m *BitMatrix) TransactionsCount() int {
	return m.numTx
}

// ItemSupport returns the popcount of item's row.
func (m *BitMatrix) ItemSupport(item int) int {
	return int(m.rows[item].Count())
}

// Cover returns the intersection of the rows of every item in s. The cover
// of the empty itemset is the all-ones vector over all transactions.
func (m *BitMatrix) Cover(s *ItemSet) *Cover {
	items := s.Slice()

	if len(items) == 0 {
		bits := bitset.New(uint(m.numTx))
		for i := 0; i < m.numTx; i++ {
			bits.Set(uint(i))
		}
		return &Cover{bits: bits}
	}

	bits := m.rows[items[0]].Clone()
	for _, item := range items[1:] {
		bits.InPlaceIntersection(m.rows[item])
	}
	return &Cover{bits: bits}
}

// Support returns the popcount of the cover of s.
func (m *BitMatrix) Support(s *ItemSet) int {
	return m.Cover(s).Count()
}

// Supports reports whether every transaction in cover also contains item,
// i.e. cover is a subset of item's row.
func (m *BitMatrix) Supports(item int, cover *Cover) bool {
	row := m.rows[item]
	return row.IntersectionCardinality(cover.bits) == cover.Count()
}
