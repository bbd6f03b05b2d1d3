package sparse

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Errors returned when validating raw CSR construction data.
var (
	// ErrOffsets indicates a row offset sequence that is not monotone
	// non-decreasing starting at zero, or disagrees with the index length.
	ErrOffsets = errors.New("sparse: invalid row offsets")

	// ErrIndexRange indicates a column index outside [0, columns).
	ErrIndexRange = errors.New("sparse: column index out of range")

	// ErrDuplicate indicates a duplicate (row, column) coordinate.
	ErrDuplicate = errors.New("sparse: duplicate entry within row")

	// ErrTripletLength indicates raw slices of mismatched lengths.
	ErrTripletLength = errors.New("sparse: mismatched slice lengths")
)

// Sparser is the interface for Sparse matrices.  Sparser contains the
// mat.Matrix interface so automatically exposes all mat.Matrix methods.
type Sparser interface {
	mat.Matrix

	// NNZ returns the Number of Non Zero elements in the sparse matrix.
	NNZ() int
}

var (
	_ Sparser     = (*CSR)(nil)
	_ mat.Mutable = (*CSR)(nil)
)

// NewCSRFromRaw creates a CSR matrix from raw offset, index and value
// sequences, which are used directly as backing storage.  This is the sole
// construction path accepting unsorted column indices: each row's
// (column, value) pairs are sorted in place.  Every structural invariant is
// validated; duplicate coordinates within a row are rejected rather than
// summed (use COO for accumulating construction).
func NewCSRFromRaw(indptr []int, ind []int, data []float64, columns int) (*CSR, error) {
	if columns < 0 {
		panic(mat.ErrColAccess)
	}
	if len(indptr) == 0 {
		indptr = []int{0}
	}
	if len(ind) != len(data) {
		return nil, ErrTripletLength
	}
	if indptr[0] != 0 || indptr[len(indptr)-1] != len(ind) {
		return nil, ErrOffsets
	}
	for i := 1; i < len(indptr); i++ {
		if indptr[i] < indptr[i-1] {
			return nil, ErrOffsets
		}
	}
	for _, j := range ind {
		if j < 0 || j >= columns {
			return nil, ErrIndexRange
		}
	}

	m := &CSR{i: len(indptr) - 1, j: columns, indptr: indptr, ind: ind, data: data}
	m.sortRows()
	for i := 0; i < m.i; i++ {
		for k := m.indptr[i] + 1; k < m.indptr[i+1]; k++ {
			if m.ind[k] == m.ind[k-1] {
				return nil, ErrDuplicate
			}
		}
	}
	return m, nil
}

// Identity returns the n * n identity matrix in CSR form.
func Identity(n int) *CSR {
	m := &CSR{
		i:      n,
		j:      n,
		indptr: make([]int, n+1),
		ind:    make([]int, n),
		data:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		m.indptr[i+1] = i + 1
		m.ind[i] = i
		m.data[i] = 1
	}
	return m
}
