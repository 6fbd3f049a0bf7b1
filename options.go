package fim

import (
	"fmt"

	"go.uber.org/zap"
)

// Algorithm selects which enumerator Mine runs.
type Algorithm int

const (
	// DCISequential runs DCI-Closed single-threaded.
	DCISequential Algorithm = iota
	// DCIParallel runs DCI-Closed over a bounded worker pool.
	DCIParallel
	// NEclatClosed runs the vertical-tidset prefix-tree enumerator.
	NEclatClosed
)

func (a Algorithm) String() string {
	switch a {
	case DCISequential:
		return "dci-sequential"
	case DCIParallel:
		return "dci-parallel"
	case NEclatClosed:
		return "neclat-closed"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Options configures a Mine call.
type Options struct {
	// MinSupport is a fraction in [0, 1], converted to an absolute minimum
	// transaction count via ceiling in Mine; dci and neclat receive that
	// count already rounded.
	MinSupport float64
	// Algorithm selects the enumerator. Zero value is DCISequential.
	Algorithm Algorithm
	// Workers bounds concurrency for DCIParallel. Zero or negative means
	// unbounded (one goroutine per recursion frame).
	Workers int
	// Logger receives run parameters and timing. A nil Logger is treated
	// as zap.NewNop(): library calls never write to stderr unless the
	// caller opts in.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
