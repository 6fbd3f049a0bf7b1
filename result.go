package fim

import (
	"github.com/dzvon-go/fim/internal/dci"
	"github.com/dzvon-go/fim/internal/neclat"
)

// Result is one closed itemset, expressed in the caller's own item ids.
type Result struct {
	Items   []int
	Support int
}

func translateDCI(raw []dci.Result, ds *dataset) []Result {
	out := make([]Result, len(raw))
	for i, r := range raw {
		out[i] = Result{Items: ds.translate(r.Items.Slice()), Support: r.Support}
	}
	return out
}

func translateNEclat(raw []neclat.Result, ds *dataset) []Result {
	out := make([]Result, len(raw))
	for i, r := range raw {
		out[i] = Result{Items: ds.translate(r.Items), Support: r.Support}
	}
	return out
}
