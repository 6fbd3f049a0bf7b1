package neclat

import "testing"

func BenchmarkRunToy(b *testing.B) {
	transactions := toyTransactions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Run(transactions, 5, 2)
	}
}
