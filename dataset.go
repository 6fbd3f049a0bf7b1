package fim

import "github.com/dzvon-go/fim/internal/itemindex"

// dataset is the internal representation shared by both enumerators: the
// caller's transactions remapped onto dense 0..n-1 item indices, plus the
// index needed to translate results back to original ids.
type dataset struct {
	index *itemindex.Index
	dense [][]int
}

func buildDataset(transactions [][]int) *dataset {
	ix := itemindex.Build(transactions)
	dense := make([][]int, len(transactions))
	for i, tx := range transactions {
		dense[i] = ix.Translate(tx)
	}
	return &dataset{index: ix, dense: dense}
}

func (ds *dataset) translate(denseItems []int) []int {
	out := make([]int, len(denseItems))
	for i, d := range denseItems {
		out[i] = ds.index.Original(d)
	}
	return out
}
