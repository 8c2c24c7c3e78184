package cone_test

import (
	"testing"

	"github.com/katalvlaran/entcone/cone"
)

// BenchmarkEliminate measures the pairwise combination on rows of a
// realistic width (16 columns, the 4-variable entropy space).
func BenchmarkEliminate(b *testing.B) {
	v := cone.NewVector(16)
	w := cone.NewVector(16)
	v.Set(15, 6)
	v.Set(7, -2)
	w.Set(15, -4)
	w.Set(3, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Eliminate(w, 15)
	}
}

func BenchmarkNormalize(b *testing.B) {
	base := cone.NewVector(64)
	for i := 0; i < 64; i += 4 {
		base.Set(i, cone.Value(6*i+6))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := base.Copy()
		v.Normalize()
	}
}
