package dense

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tdenniston/sparla/scalar"
)

// Matrix is a row-major dense matrix built from Vectors. The zero value is an
// empty matrix. Matrix implements mat.Matrix so it can be used directly with
// gonum functions in tests and interop code.
type Matrix struct {
	rows []Vector
	cols int
}

// NewMatrix creates a zeroed r x c matrix.
func NewMatrix(r, c int) *Matrix {
	m := &Matrix{rows: make([]Vector, r), cols: c}
	for i := range m.rows {
		m.rows[i] = NewVector(c)
	}
	return m
}

// NewMatrixFromRows creates a matrix from the supplied rows, which are used
// directly as backing storage. All rows must have equal length.
func NewMatrixFromRows(rows ...Vector) *Matrix {
	m := &Matrix{rows: rows}
	if len(rows) > 0 {
		m.cols = len(rows[0])
		for _, r := range rows {
			if len(r) != m.cols {
				panic(mat.ErrShape)
			}
		}
	}
	return m
}

// Dims returns the matrix dimensions.
func (m *Matrix) Dims() (r, c int) {
	return len(m.rows), m.cols
}

// At returns the element at row i, column j. At will panic if i or j fall
// outside the matrix dimensions.
func (m *Matrix) At(i, j int) scalar.Scalar {
	if uint(i) >= uint(len(m.rows)) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(m.cols) {
		panic(mat.ErrColAccess)
	}
	return m.rows[i][j]
}

// Set assigns v to the element at row i, column j.
func (m *Matrix) Set(i, j int, v scalar.Scalar) {
	if uint(i) >= uint(len(m.rows)) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(m.cols) {
		panic(mat.ErrColAccess)
	}
	m.rows[i][j] = v
}

// T returns the transpose of the matrix as a mat.Matrix.
func (m *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Row returns row i as a Vector sharing the backing storage.
func (m *Matrix) Row(i int) Vector {
	if uint(i) >= uint(len(m.rows)) {
		panic(mat.ErrRowAccess)
	}
	return m.rows[i]
}

// SwapRows exchanges rows i and k in place.
func (m *Matrix) SwapRows(i, k int) {
	if uint(i) >= uint(len(m.rows)) || uint(k) >= uint(len(m.rows)) {
		panic(mat.ErrRowAccess)
	}
	m.rows[i], m.rows[k] = m.rows[k], m.rows[i]
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: make([]Vector, len(m.rows)), cols: m.cols}
	for i, row := range m.rows {
		c.rows[i] = row.Clone()
	}
	return c
}

// Add sets m = m + b elementwise. Add will panic if the matrices are not the
// same shape.
func (m *Matrix) Add(b *Matrix) {
	if len(m.rows) != len(b.rows) || m.cols != b.cols {
		panic(mat.ErrShape)
	}
	for i, row := range m.rows {
		floats.Add(row, b.rows[i])
	}
}

// Sub sets m = m - b elementwise. Sub will panic if the matrices are not the
// same shape.
func (m *Matrix) Sub(b *Matrix) {
	if len(m.rows) != len(b.rows) || m.cols != b.cols {
		panic(mat.ErrShape)
	}
	for i, row := range m.rows {
		floats.Sub(row, b.rows[i])
	}
}

// Scale sets m = alpha * m.
func (m *Matrix) Scale(alpha scalar.Scalar) {
	for _, row := range m.rows {
		floats.Scale(alpha, row)
	}
}

// Div sets m = m / alpha. Division by zero is not trapped.
func (m *Matrix) Div(alpha scalar.Scalar) {
	m.Scale(1 / alpha)
}

// MulVec returns the matrix-vector product m * x as a new Vector. MulVec will
// panic if x is not of length equal to the column count.
func (m *Matrix) MulVec(x Vector) Vector {
	if len(x) != m.cols {
		panic(mat.ErrShape)
	}
	y := NewVector(len(m.rows))
	for i, row := range m.rows {
		y[i] = floats.Dot(row, x)
	}
	return y
}

// MulMat returns the matrix product m * b as a new Matrix. MulMat will panic
// if the column count of m does not equal the row count of b.
func (m *Matrix) MulMat(b *Matrix) *Matrix {
	if m.cols != len(b.rows) {
		panic(mat.ErrShape)
	}
	p := NewMatrix(len(m.rows), b.cols)
	for i, row := range m.rows {
		for k, v := range row {
			if v == 0 {
				continue
			}
			floats.AddScaled(p.rows[i], v, b.rows[k])
		}
	}
	return p
}

// Transpose returns a new Matrix holding the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.cols, len(m.rows))
	for i, row := range m.rows {
		for j, v := range row {
			t.rows[j][i] = v
		}
	}
	return t
}

// Trace returns the sum of the diagonal elements. Trace will panic if the
// matrix is not square.
func (m *Matrix) Trace() scalar.Scalar {
	if len(m.rows) != m.cols {
		panic(mat.ErrSquare)
	}
	var tr scalar.Scalar
	for i, row := range m.rows {
		tr += row[i]
	}
	return tr
}
