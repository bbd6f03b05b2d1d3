package sparse

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/tdenniston/sparla/dense"
	"github.com/tdenniston/sparla/scalar"
	"github.com/tdenniston/sparla/sparse/blas"
)

// Add sets m = m + b.  Add will panic if the matrices are not the same shape.
// Stored zeros arising from cancellation are retained; use Prune to drop
// them.
func (m *CSR) Add(b *CSR) {
	m.addScaled(b, 1)
}

// Sub sets m = m - b.  Sub will panic if the matrices are not the same shape.
func (m *CSR) Sub(b *CSR) {
	m.addScaled(b, -1)
}

// addScaled computes m = m + beta*b as a row-by-row two-finger merge of the
// column patterns, producing the union pattern.
func (m *CSR) addScaled(b *CSR, beta float64) {
	if m.i != b.i || m.j != b.j {
		panic(mat.ErrShape)
	}

	larger := len(m.data)
	if len(b.data) > larger {
		larger = len(b.data)
	}
	indptr := make([]int, m.i+1)
	ind := make([]int, 0, larger)
	data := make([]float64, 0, larger)

	for row := 0; row < m.i; row++ {
		i, end1 := m.indptr[row], m.indptr[row+1]
		j, end2 := b.indptr[row], b.indptr[row+1]
		for i < end1 || j < end2 {
			switch {
			case j == end2 || (i < end1 && m.ind[i] < b.ind[j]):
				ind = append(ind, m.ind[i])
				data = append(data, m.data[i])
				i++
			case i == end1 || b.ind[j] < m.ind[i]:
				ind = append(ind, b.ind[j])
				data = append(data, beta*b.data[j])
				j++
			default:
				ind = append(ind, m.ind[i])
				data = append(data, m.data[i]+beta*b.data[j])
				i++
				j++
			}
		}
		indptr[row+1] = len(ind)
	}

	m.indptr = indptr
	m.ind = ind
	m.data = data
}

// Mul sets m = m * b.  Mul will panic if the column count of m does not equal
// the row count of b.  Each output row is accumulated in a dense scratch
// vector indexed by a touched-column list, so the work per row is bounded by
// the nnz of the participating rows rather than the full width of b.
func (m *CSR) Mul(b *CSR) {
	if m.j != b.i {
		panic(mat.ErrShape)
	}

	indptr := make([]int, m.i+1)
	ind := make([]int, 0, len(m.ind))
	data := make([]float64, 0, len(m.data))

	scratch := getFloats(b.j, true)
	gather := getFloats(b.j, false)
	touched := getInts(b.j, false)[:0]

	for i := 0; i < m.i; i++ {
		// Accumulate row i of the product into the scratch vector: note the
		// columns not yet touched, then axpy the scaled row of b in.
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			brow := m.ind[k]
			begin, end := b.indptr[brow], b.indptr[brow+1]
			for _, col := range b.ind[begin:end] {
				if scratch[col] == 0 {
					touched = append(touched, col)
				}
			}
			blas.Dusaxpy(m.data[k], b.data[begin:end], b.ind[begin:end], scratch, 1)
		}

		// Emit the touched entries in column order; the gather-and-zero
		// resets the scratch for the next row as a side effect.  A column
		// cancelled to zero mid-row can appear in touched twice, so the
		// gather is sized to the list, not to b's width.
		sort.Ints(touched)
		gather = useFloats(gather, len(touched), false)
		blas.Dusgz(scratch, 1, gather, touched)
		for ti, col := range touched {
			if v := gather[ti]; v != 0 {
				ind = append(ind, col)
				data = append(data, v)
			}
		}
		touched = touched[:0]
		indptr[i+1] = len(ind)
	}

	putFloats(scratch)
	putFloats(gather)
	putInts(touched)

	m.j = b.j
	m.indptr = indptr
	m.ind = ind
	m.data = data
}

// Scale sets m = alpha * m, scaling the stored values elementwise.
func (m *CSR) Scale(alpha float64) {
	for k := range m.data {
		m.data[k] *= alpha
	}
}

// DivScalar sets m = m / alpha.  Division by zero is not trapped.
func (m *CSR) DivScalar(alpha float64) {
	m.Scale(1 / alpha)
}

// MulVec returns the sparse matrix-dense vector product m * x.  MulVec will
// panic if x is not of length equal to the matrix column count.
func (m *CSR) MulVec(x dense.Vector) dense.Vector {
	if len(x) != m.j {
		panic(mat.ErrShape)
	}
	y := dense.NewVector(m.i)
	m.MulVecTo(y, x)
	return y
}

// MulVecTo computes y = m * x without allocating.  y and x must not overlap.
func (m *CSR) MulVecTo(y, x dense.Vector) {
	if len(x) != m.j || len(y) != m.i {
		panic(mat.ErrShape)
	}
	for i := 0; i < m.i; i++ {
		begin, end := m.indptr[i], m.indptr[i+1]
		y[i] = blas.Dusdot(m.data[begin:end], m.ind[begin:end], x, 1)
	}
}

// AddMatrix sets m = m + b for an arbitrary gonum matrix operand.  Sparsity
// savings only apply when b is a *CSR; any other operand is walked densely.
func (m *CSR) AddMatrix(b mat.Matrix) {
	if csr, ok := b.(*CSR); ok {
		m.Add(csr)
		return
	}
	br, bc := b.Dims()
	if m.i != br || m.j != bc {
		panic(mat.ErrShape)
	}
	for i := 0; i < br; i++ {
		for j := 0; j < bc; j++ {
			if v := b.At(i, j); v != 0 {
				m.InsertOrAssign(i, j, m.At(i, j)+v)
			}
		}
	}
}

// MulMatrix sets m = m * b for an arbitrary gonum matrix operand, falling
// back to gathering each operand row densely when b is not a *CSR.
func (m *CSR) MulMatrix(b mat.Matrix) {
	if csr, ok := b.(*CSR); ok {
		m.Mul(csr)
		return
	}
	br, bc := b.Dims()
	if m.j != br {
		panic(mat.ErrShape)
	}

	indptr := make([]int, m.i+1)
	var ind []int
	var data []float64

	for i := 0; i < m.i; i++ {
		begin, end := m.indptr[i], m.indptr[i+1]
		for j := 0; j < bc; j++ {
			var v float64
			for k := begin; k < end; k++ {
				v += m.data[k] * b.At(m.ind[k], j)
			}
			if v != 0 {
				ind = append(ind, j)
				data = append(data, v)
			}
		}
		indptr[i+1] = len(ind)
	}

	m.j = bc
	m.indptr = indptr
	m.ind = ind
	m.data = data
}

// Prune removes stored entries with absolute value at or below tol, so that
// cancellation zeros left behind by Add and Sub do not accumulate.
func (m *CSR) Prune(tol float64) {
	t := 0
	begin := m.indptr[0]
	for i := 0; i < m.i; i++ {
		end := m.indptr[i+1]
		for k := begin; k < end; k++ {
			if math.Abs(m.data[k]) <= tol {
				continue
			}
			m.ind[t] = m.ind[k]
			m.data[t] = m.data[k]
			t++
		}
		begin = end
		m.indptr[i+1] = t
	}
	m.ind = m.ind[:t]
	m.data = m.data[:t]
}

// IsSymmetric reports whether the matrix equals its transpose to within the
// given tolerance.  Every stored entry is checked against its transposed
// position, so entries below the diagonal with no mirror above it are
// detected.
func (m *CSR) IsSymmetric(tol float64) bool {
	if m.i != m.j {
		return false
	}
	for i := 0; i < m.i; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			j := m.ind[k]
			if i == j {
				continue
			}
			e, ok := m.Find(j, i)
			if !ok || !scalar.IsNearlyEqual(m.data[k], e.Value(), scalar.DefaultRelative, tol) {
				return false
			}
		}
	}
	return true
}
