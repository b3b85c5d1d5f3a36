package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/secretsanta/matching"
)

// BenchmarkGenerate_NoExclusions measures a plain derangement of 50 people.
func BenchmarkGenerate_NoExclusions(b *testing.B) {
	ns := names(50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.Generate(ns, nil, matching.WithSeed(int64(i)))
	}
}

// BenchmarkGenerate_Sparse measures 50 people with ~10% of pairs excluded.
func BenchmarkGenerate_Sparse(b *testing.B) {
	ns, ex := randomInstance(rand.New(rand.NewSource(1)), 50, 0.1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.Generate(ns, ex, matching.WithSeed(int64(i)))
	}
}

// BenchmarkGenerate_InfeasiblePreCheck measures how fast the bipartite check
// rejects an instance the search alone would explore exponentially.
func BenchmarkGenerate_InfeasiblePreCheck(b *testing.B) {
	ns, ex := unreachableReceiver(40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.Generate(ns, ex, matching.WithSeed(int64(i)))
	}
}
