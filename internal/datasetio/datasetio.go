// Package datasetio reads transaction datasets in the common whitespace-
// separated item-id-per-line format (e.g. the FIMI repository's chess.dat,
// connect.dat and similar benchmarks).
package datasetio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadFile opens path and parses it as a transaction dataset.
func LoadFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datasetio: open %s: %w", path, err)
	}
	defer f.Close()

	transactions, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("datasetio: parse %s: %w", path, err)
	}
	return transactions, nil
}

// LoadReader parses r as a transaction dataset: one transaction per line,
// item ids separated by arbitrary whitespace. Blank lines (including
// trailing whitespace-only lines) are skipped rather than producing an
// empty transaction.
func LoadReader(r io.Reader) ([][]int, error) {
	var transactions [][]int

	scanner := bufio.NewScanner(r)
	// FIMI-style benchmark lines can be long (thousands of items); grow past
	// bufio.Scanner's default 64KiB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		tx := make([]int, len(fields))
		for i, field := range fields {
			item, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid item id %q: %w", lineNo, field, err)
			}
			tx[i] = item
		}
		transactions = append(transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}
