// Command fim mines closed frequent itemsets from a transaction dataset
// file and prints each (itemset, support) pair it finds.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dzvon-go/fim"
	"github.com/dzvon-go/fim/internal/datasetio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		minSupport float64
		algorithm  string
		workers    int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "fim <dataset>",
		Short: "Mine closed frequent itemsets from a transaction dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			alg, err := parseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			transactions, err := datasetio.LoadFile(args[0])
			if err != nil {
				return err
			}

			results, err := fim.Mine(transactions, fim.Options{
				MinSupport: minSupport,
				Algorithm:  alg,
				Workers:    workers,
				Logger:     log,
			})
			if err != nil {
				return err
			}

			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().Float64Var(&minSupport, "min-support", 0.1, "minimum support fraction in [0, 1]")
	cmd.Flags().StringVar(&algorithm, "algorithm", "dci-sequential", "dci-sequential, dci-parallel, or neclat-closed")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size for --algorithm=dci-parallel (0 = unbounded)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log run parameters and timing to stderr")

	return cmd
}

func parseAlgorithm(s string) (fim.Algorithm, error) {
	switch strings.ToLower(s) {
	case "dci-sequential", "":
		return fim.DCISequential, nil
	case "dci-parallel":
		return fim.DCIParallel, nil
	case "neclat-closed", "neclat":
		return fim.NEclatClosed, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", s)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func printResults(w io.Writer, results []fim.Result) {
	for _, r := range results {
		items := append([]int(nil), r.Items...)
		sort.Ints(items)
		strs := make([]string, len(items))
		for i, it := range items {
			strs[i] = fmt.Sprint(it)
		}
		fmt.Fprintf(w, "%d (%s)\n", r.Support, strings.Join(strs, " "))
	}
}
