package datasetio

import (
	"strings"
	"testing"
)

// FuzzLoadReader checks that the parser never panics on arbitrary input and
// that, when it succeeds, it never produces a nil transaction.
func FuzzLoadReader(f *testing.F) {
	f.Add("1 2 3\n4 5\n")
	f.Add("")
	f.Add("   \n\n\t\n")
	f.Add("1\n2\n3\n")
	f.Add("-1 0 9999999999999999999\n")

	f.Fuzz(func(t *testing.T, input string) {
		transactions, err := LoadReader(strings.NewReader(input))
		if err != nil {
			return
		}
		for _, tx := range transactions {
			if tx == nil {
				t.Fatalf("parsed a nil transaction for input %q", input)
			}
		}
	})
}
