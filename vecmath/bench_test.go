package vecmath_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/coneal/vecmath"
)

// randVec builds a deterministic pseudo-random buffer of length n.
func randVec(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	v := make([]float64, n)
	for i := range v {
		v[i] = r.Float64()*2 - 1
	}
	return v
}

// BenchmarkReductions measures the O(n) reduction kernels on buffers of
// increasing size, as sub-benchmarks.
func BenchmarkReductions(b *testing.B) {
	for _, n := range []int{1 << 8, 1 << 12, 1 << 16} {
		x := randVec(n, 42)
		y := randVec(n, 43)

		b.Run("Dot", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = vecmath.Dot(x, y)
			}
		})
		b.Run("NormInf", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = vecmath.NormInf(x)
			}
		})
	}
}

// BenchmarkAxpby measures the fused update fast paths against the general case.
func BenchmarkAxpby(b *testing.B) {
	x := randVec(1<<12, 42)
	y := randVec(1<<12, 43)

	for _, bc := range []struct {
		name string
		b    float64
	}{
		{"b=0", 0}, {"b=1", 1}, {"b=-1", -1}, {"general", 0.37},
	} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				vecmath.Axpby(y, 1.5, x, bc.b)
			}
		})
	}
}
