// Package fim mines closed frequent itemsets out of a multiset of
// transactions, using either of two interchangeable enumerators: DCI-Closed
// (sequential or work-stealing parallel, over a dense bit matrix) and
// NEclatClosed (a vertical-tidset prefix-tree traversal). Both report the
// same set of (itemset, support) pairs for the same input modulo ordering.
package fim

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/dzvon-go/fim/internal/bitmatrix"
	"github.com/dzvon-go/fim/internal/dci"
	"github.com/dzvon-go/fim/internal/neclat"
)

// Mine runs the configured algorithm over transactions and returns every
// closed itemset with support at least ⌈MinSupport · len(transactions)⌉.
func Mine(transactions [][]int, opts Options) ([]Result, error) {
	if opts.MinSupport < 0 || opts.MinSupport > 1 {
		return nil, fmt.Errorf("fim: min support %v out of range [0, 1]", opts.MinSupport)
	}

	log := opts.logger()
	start := time.Now()
	minCount := int(math.Ceil(opts.MinSupport * float64(len(transactions))))
	ds := buildDataset(transactions)

	log.Info("mining closed itemsets",
		zap.String("algorithm", opts.Algorithm.String()),
		zap.Int("transactions", len(transactions)),
		zap.Int("min_count", minCount),
	)

	var results []Result
	var err error
	switch opts.Algorithm {
	case NEclatClosed:
		results = translateNEclat(neclat.Run(ds.dense, ds.index.Len(), minCount), ds)
	case DCIParallel:
		workers := opts.Workers
		if workers < 0 {
			workers = 0
		}
		results, err = mineDCI(ds, minCount, workers, log)
	default:
		results, err = mineDCI(ds, minCount, -1, log)
	}
	if err != nil {
		return nil, err
	}

	log.Info("mining complete",
		zap.Int("closed_itemsets", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}

func mineDCI(ds *dataset, minCount, workers int, log *zap.Logger) ([]Result, error) {
	m := bitmatrix.New(ds.index.Len(), len(ds.dense))
	for tid, tx := range ds.dense {
		for _, item := range tx {
			m.Set(item, tid)
		}
	}

	if workers < 0 {
		return translateDCI(dci.Sequential(m, minCount), ds), nil
	}

	raw, err := dci.Parallel(m, minCount, workers)
	if err != nil {
		log.Error("parallel DCI run failed", zap.Error(err))
		return nil, fmt.Errorf("fim: parallel DCI run: %w", err)
	}
	return translateDCI(raw, ds), nil
}
