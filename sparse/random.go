package sparse

import (
	"golang.org/x/exp/rand"
)

// Random constructs a new CSR matrix of dimensions r * c with random values
// randomly placed through the matrix according to the specified density, a
// value between 0 and 1 where a density of 1 constructs a matrix composed
// entirely of non zero values.  Duplicate placements collapse on compression
// so the realised density may fall slightly short for dense requests.
func Random(r int, c int, density float32) *CSR {
	d := int(density * float32(r) * float32(c))

	m := make([]int, d)
	n := make([]int, d)
	data := make([]float64, d)

	for i := 0; i < d; i++ {
		data[i] = rand.Float64()
		m[i] = rand.Intn(r)
		n[i] = rand.Intn(c)
	}

	return NewCOO(r, c, m, n, data).ToCSR()
}
