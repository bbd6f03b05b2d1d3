package sparse

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	_ Sparser     = (*COO)(nil)
	_ mat.Mutable = (*COO)(nil)
)

// COO is a COOrdinate format sparse matrix implementation (sometimes called
// `Triplet` format).  COO matrices are good for constructing sparse matrices
// incrementally and very good at converting to CSR format but poor for
// arithmetic operations: duplicate coordinates are permitted and are summed
// on compression.
type COO struct {
	r    int
	c    int
	rows []int
	cols []int
	data []float64
}

// NewCOO creates a new COOrdinate format sparse matrix.  The matrix is
// initialised to the size of the specified r * c dimensions with the
// specified slices containing either nil or row and column indexes of
// non-zero elements and the non-zero values themselves.  If not nil, the
// supplied slices are used directly as backing storage.
func NewCOO(r int, c int, rows []int, cols []int, data []float64) *COO {
	if r < 0 {
		panic(mat.ErrRowAccess)
	}
	if c < 0 {
		panic(mat.ErrColAccess)
	}
	if len(rows) != len(cols) || len(cols) != len(data) {
		panic(mat.ErrShape)
	}

	return &COO{r: r, c: c, rows: rows, cols: cols, data: data}
}

// NNZ returns the number of stored data elements, counting duplicate
// coordinates separately.
func (c *COO) NNZ() int {
	return len(c.data)
}

// Dims returns the size of the matrix as the number of rows and columns.
func (c *COO) Dims() (int, int) {
	return c.r, c.c
}

// At returns the element of the matrix located at row i and column j, with
// duplicate coordinates summed.  At will panic if i or j fall outside the
// matrix dimensions.
func (c *COO) At(i, j int) float64 {
	if uint(i) >= uint(c.r) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(c.c) {
		panic(mat.ErrColAccess)
	}

	result := 0.0
	for k := 0; k < len(c.data); k++ {
		if c.rows[k] == i && c.cols[k] == j {
			result += c.data[k]
		}
	}
	return result
}

// T transposes the matrix creating a new COO matrix sharing the same backing
// storage but switching the row and column sizes and index slices.
func (c *COO) T() mat.Matrix {
	return NewCOO(c.c, c.r, c.cols, c.rows, c.data)
}

// Set appends the triplet (i, j, v).  Duplicate coordinates are allowed and
// sum on compression.  Set will panic if i or j fall outside the matrix
// dimensions.
func (c *COO) Set(i, j int, v float64) {
	if uint(i) >= uint(c.r) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(c.c) {
		panic(mat.ErrColAccess)
	}
	c.rows = append(c.rows, i)
	c.cols = append(c.cols, j)
	c.data = append(c.data, v)
}

// DoNonZero calls the function fn for each of the stored data elements.  The
// order of visits is not guaranteed.
func (c *COO) DoNonZero(fn func(i, j int, v float64)) {
	for k := range c.data {
		fn(c.rows[k], c.cols[k], c.data[k])
	}
}

// ToCSR returns a CSR format version of the matrix.  Duplicate coordinates
// are summed into a single stored entry and each row's columns are sorted
// ascending.  The returned matrix does not share storage with the receiver.
func (c *COO) ToCSR() *CSR {
	indptr := make([]int, c.r+1)
	for _, i := range c.rows {
		indptr[i+1]++
	}
	for i := 0; i < c.r; i++ {
		indptr[i+1] += indptr[i]
	}

	ind := make([]int, len(c.cols))
	data := make([]float64, len(c.data))
	next := make([]int, c.r)
	copy(next, indptr[:c.r])
	for k, i := range c.rows {
		ind[next[i]] = c.cols[k]
		data[next[i]] = c.data[k]
		next[i]++
	}

	csr := &CSR{i: c.r, j: c.c, indptr: indptr, ind: ind, data: data}
	csr.sortRows()
	csr.sumDuplicates()
	return csr
}

// sortRows restores strict column ordering within every row slice.
func (m *CSR) sortRows() {
	for i := 0; i < m.i; i++ {
		begin, end := m.indptr[i], m.indptr[i+1]
		if sort.IntsAreSorted(m.ind[begin:end]) {
			continue
		}
		row := csrRowSort{ind: m.ind[begin:end], data: m.data[begin:end]}
		sort.Sort(row)
	}
}

// sumDuplicates merges runs of equal columns within each sorted row,
// compacting the storage in place.
func (m *CSR) sumDuplicates() {
	t := 0
	begin := m.indptr[0]
	for i := 0; i < m.i; i++ {
		end := m.indptr[i+1]
		rowStart := t
		for k := begin; k < end; k++ {
			if t > rowStart && m.ind[t-1] == m.ind[k] {
				m.data[t-1] += m.data[k]
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

// csrRowSort sorts one row's (column, value) pairs in lock-step.
type csrRowSort struct {
	ind  []int
	data []float64
}

func (r csrRowSort) Len() int           { return len(r.ind) }
func (r csrRowSort) Less(i, j int) bool { return r.ind[i] < r.ind[j] }
func (r csrRowSort) Swap(i, j int) {
	r.ind[i], r.ind[j] = r.ind[j], r.ind[i]
	r.data[i], r.data[j] = r.data[j], r.data[i]
}
