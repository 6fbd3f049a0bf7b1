// Package script exposes fim.Mine as a host function to an embedded
// ECMAScript runtime, for callers that want to drive a mining run from a
// script instead of a Go program.
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/dzvon-go/fim"
)

// itemSet mirrors fim.Result in the shape goja round-trips most cheaply:
// a plain slice of ints and a support count.
type itemSet struct {
	Items   []int `json:"items"`
	Support int   `json:"support"`
}

// Runtime wraps a goja.Runtime with the "mine" host function already
// registered as a global.
type Runtime struct {
	vm *goja.Runtime
}

// New creates a Runtime with mine(minSupport, algorithm, transactions)
// bound as a global function. algorithm is one of "dci-sequential",
// "dci-parallel", "neclat-closed"; transactions is an array of arrays of
// non-negative integers.
func New() *Runtime {
	vm := goja.New()
	vm.Set("mine", mineHostFunc(vm))
	return &Runtime{vm: vm}
}

// RunString evaluates src and returns its result.
func (r *Runtime) RunString(src string) (goja.Value, error) {
	return r.vm.RunString(src)
}

func mineHostFunc(vm *goja.Runtime) func(minSupport float64, algorithm string, transactions [][]int) []itemSet {
	return func(minSupport float64, algorithm string, transactions [][]int) []itemSet {
		alg, err := parseAlgorithm(algorithm)
		if err != nil {
			panic(vm.NewGoError(err))
		}

		results, err := fim.Mine(transactions, fim.Options{MinSupport: minSupport, Algorithm: alg})
		if err != nil {
			panic(vm.NewGoError(err))
		}

		out := make([]itemSet, len(results))
		for i, r := range results {
			out[i] = itemSet{Items: r.Items, Support: r.Support}
		}
		return out
	}
}

func parseAlgorithm(s string) (fim.Algorithm, error) {
	switch s {
	case "", "dci-sequential":
		return fim.DCISequential, nil
	case "dci-parallel":
		return fim.DCIParallel, nil
	case "neclat-closed":
		return fim.NEclatClosed, nil
	default:
		return 0, fmt.Errorf("script: unknown algorithm %q", s)
	}
}
