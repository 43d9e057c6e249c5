package maxcut_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qcut/matrix"
	"github.com/katalvlaran/qcut/maxcut"
	"github.com/katalvlaran/qcut/pointset"
)

// benchWeights builds a seeded random geometric instance once per benchmark.
func benchWeights(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	ps := make(pointset.PointSet, n)
	for i := range ps {
		ps[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
	}
	w, err := pointset.DistanceMatrix(ps)
	if err != nil {
		b.Fatalf("DistanceMatrix: %v", err)
	}

	return w
}

func BenchmarkSolve_Exact16(b *testing.B) {
	w := benchWeights(b, 16)
	opts := maxcut.DefaultOptions()
	opts.Algo = maxcut.Exact

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maxcut.Solve(w, opts); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkSolve_Anneal64(b *testing.B) {
	w := benchWeights(b, 64)
	opts := maxcut.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maxcut.Solve(w, opts); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}
