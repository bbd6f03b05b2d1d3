package sparse

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/tdenniston/sparla/dense"
)

func benchmarkMatrix(r, c int, density float32) *CSR {
	rand.Seed(1)
	return Random(r, c, density)
}

func BenchmarkCSRMulVec(b *testing.B) {
	a := benchmarkMatrix(500, 500, 0.01)
	x := make(dense.Vector, 500)
	for i := range x {
		x[i] = rand.Float64()
	}
	y := make(dense.Vector, 500)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		a.MulVecTo(y, x)
	}
}

func BenchmarkCSRMul(b *testing.B) {
	lhs := benchmarkMatrix(200, 200, 0.02)
	rhs := benchmarkMatrix(200, 200, 0.02)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		w := lhs.Clone()
		w.Mul(rhs)
	}
}

func BenchmarkCSRAdd(b *testing.B) {
	lhs := benchmarkMatrix(500, 500, 0.01)
	rhs := benchmarkMatrix(500, 500, 0.01)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		w := lhs.Clone()
		w.Add(rhs)
	}
}

func BenchmarkCSRInsert(b *testing.B) {
	rand.Seed(1)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := NewCSRWithShape(100, 100)
		m.Reserve(100, 500)
		for k := 0; k < 500; k++ {
			m.Set(rand.Intn(100), rand.Intn(100), rand.Float64())
		}
	}
}
