package sparse

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CSR is a Compressed Sparse Row format sparse matrix implementation (sometimes
// called Compressed Row Storage (CRS) format).  Only non-zero values are
// stored: indptr holds, for each row i, the cumulative count of stored values
// in rows before i, so that the stored entries of row i occupy the half-open
// slice [indptr[i], indptr[i+1]) of both ind and data.  Within each row the
// column indices in ind are strictly ascending and free of duplicates.
// In this way it is possible to address any element, i j, in the matrix with
// a binary search over the row slice.
//
// CSR implements the mat.Matrix and mat.Mutable interfaces from gonum so it
// may be used with gonum functions accepting Matrix types.
type CSR struct {
	i, j   int
	indptr []int
	ind    []int
	data   []float64
}

// NewCSR creates a new empty Compressed Sparse Row format sparse matrix.
func NewCSR() *CSR {
	return &CSR{indptr: []int{0}}
}

// NewCSRWithShape creates a structurally empty r * c matrix.
func NewCSRWithShape(r, c int) *CSR {
	if r < 0 {
		panic(mat.ErrRowAccess)
	}
	if c < 0 {
		panic(mat.ErrColAccess)
	}
	return &CSR{i: r, j: c, indptr: make([]int, r+1)}
}

// Dims returns the size of the matrix as the number of rows and columns.
func (m *CSR) Dims() (int, int) {
	return m.i, m.j
}

// NNZ returns the Number of Non Zero elements in the sparse matrix.
func (m *CSR) NNZ() int {
	return len(m.data)
}

// IsEmpty returns true for a matrix holding no rows.
func (m *CSR) IsEmpty() bool {
	return len(m.indptr) < 2
}

// Capacity returns the row and stored-entry capacities of the backing
// storage.
func (m *CSR) Capacity() (rows, nnz int) {
	if cap(m.indptr) > 0 {
		rows = cap(m.indptr) - 1
	}
	return rows, cap(m.data)
}

// Reserve grows the backing storage to accommodate at least the specified
// number of rows and stored entries without further allocation.
func (m *CSR) Reserve(rows, nnz int) {
	if rows+1 > cap(m.indptr) {
		indptr := make([]int, len(m.indptr), rows+1)
		copy(indptr, m.indptr)
		m.indptr = indptr
	}
	if nnz > cap(m.data) {
		ind := make([]int, len(m.ind), nnz)
		copy(ind, m.ind)
		m.ind = ind
		data := make([]float64, len(m.data), nnz)
		copy(data, m.data)
		m.data = data
	}
}

// ShrinkToFit reallocates the backing storage to the minimal size holding the
// current contents.
func (m *CSR) ShrinkToFit() {
	indptr := make([]int, len(m.indptr))
	copy(indptr, m.indptr)
	m.indptr = indptr
	ind := make([]int, len(m.ind))
	copy(ind, m.ind)
	m.ind = ind
	data := make([]float64, len(m.data))
	copy(data, m.data)
	m.data = data
}

// Clear removes all rows and stored entries, retaining the backing capacity.
// The column count is left unchanged.
func (m *CSR) Clear() {
	m.i = 0
	m.indptr = m.indptr[:1]
	m.indptr[0] = 0
	m.ind = m.ind[:0]
	m.data = m.data[:0]
}

// Resize changes the shape of the matrix to r * c.  Growing rows appends
// structurally empty rows; shrinking rows truncates the storage of the removed
// rows.  Shrinking columns removes every stored entry with column >= c.
func (m *CSR) Resize(r, c int) {
	if r < 0 {
		panic(mat.ErrRowAccess)
	}
	if c < 0 {
		panic(mat.ErrColAccess)
	}

	if r >= m.i {
		back := m.indptr[len(m.indptr)-1]
		for n := m.i; n < r; n++ {
			m.indptr = append(m.indptr, back)
		}
	} else {
		m.ind = m.ind[:m.indptr[r]]
		m.data = m.data[:m.indptr[r]]
		m.indptr = m.indptr[:r+1]
	}
	m.i = r

	if c < m.j {
		// Walk each row removing the tail of entries with column >= c,
		// carrying the accumulated offset decrement forward.  begin tracks
		// the original row start; indptr is rewritten behind the read
		// position.
		t := 0
		begin := m.indptr[0]
		for i := 0; i < m.i; i++ {
			end := m.indptr[i+1]
			cut := begin + sort.SearchInts(m.ind[begin:end], c)
			for k := begin; k < cut; k++ {
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
	m.j = c
}

// lowerBound returns the position of the first stored entry of row i with
// column >= j, which is indptr[i+1] when no such entry exists.  Row i must be
// in range.
func (m *CSR) lowerBound(i, j int) int {
	begin, end := m.indptr[i], m.indptr[i+1]
	return begin + sort.SearchInts(m.ind[begin:end], j)
}

// At returns the element of the matrix located at row i and column j, zero
// when the element is not stored.  At will panic if i or j fall outside the
// dimensions of the matrix.
func (m *CSR) At(i, j int) float64 {
	if uint(i) >= uint(m.i) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(m.j) {
		panic(mat.ErrColAccess)
	}

	k := m.lowerBound(i, j)
	if k < m.indptr[i+1] && m.ind[k] == j {
		return m.data[k]
	}
	return 0
}

// Set assigns v to the element at row i, column j, inserting it into the
// sparsity pattern if absent.  Unlike At, Set admits indices beyond the
// current dimensions: the matrix is resized just enough for (i, j) before the
// value is stored.
func (m *CSR) Set(i, j int, v float64) {
	if i < 0 {
		panic(mat.ErrRowAccess)
	}
	if j < 0 {
		panic(mat.ErrColAccess)
	}
	m.InsertOrAssign(i, j, v)
}

// Insert places v at (i, j) unless the position is already stored, in which
// case the existing element is returned with inserted == false.  The matrix
// grows to admit out-of-bounds positions.
func (m *CSR) Insert(i, j int, v float64) (ElementView, bool) {
	if i < 0 {
		panic(mat.ErrRowAccess)
	}
	if j < 0 {
		panic(mat.ErrColAccess)
	}
	if i >= m.i || j >= m.j {
		r, c := m.i, m.j
		if i >= r {
			r = i + 1
		}
		if j >= c {
			c = j + 1
		}
		m.Resize(r, c)
	}

	k := m.lowerBound(i, j)
	if k < m.indptr[i+1] && m.ind[k] == j {
		return ElementView{m: m, i: i, k: k}, false
	}
	m.insert(i, j, v, k)
	return ElementView{m: m, i: i, k: k}, true
}

// InsertOrAssign behaves as Insert except that an already stored element is
// overwritten.
func (m *CSR) InsertOrAssign(i, j int, v float64) ElementView {
	e, inserted := m.Insert(i, j, v)
	if !inserted {
		m.data[e.k] = v
	}
	return e
}

// insert inserts a new non-zero element into the sparse matrix at the given
// insertion point, updating the sparsity pattern.
func (m *CSR) insert(i int, j int, v float64, insertionPoint int) {
	m.ind = append(m.ind, 0)
	copy(m.ind[insertionPoint+1:], m.ind[insertionPoint:])
	m.ind[insertionPoint] = j

	m.data = append(m.data, 0)
	copy(m.data[insertionPoint+1:], m.data[insertionPoint:])
	m.data[insertionPoint] = v

	for n := i + 1; n <= m.i; n++ {
		m.indptr[n]++
	}
}

// Erase removes the stored element referenced by e.  Erase will panic if the
// view does not reference a present element of this matrix.
func (m *CSR) Erase(e ElementView) {
	if e.m != m || uint(e.i) >= uint(m.i) {
		panic(mat.ErrRowAccess)
	}
	if e.k < m.indptr[e.i] || e.k >= m.indptr[e.i+1] {
		panic(mat.ErrIndexOutOfRange)
	}

	m.ind = append(m.ind[:e.k], m.ind[e.k+1:]...)
	m.data = append(m.data[:e.k], m.data[e.k+1:]...)
	for n := e.i + 1; n <= m.i; n++ {
		m.indptr[n]--
	}
}

// Find returns a view of the stored element at (i, j) and whether it is
// present.  Out-of-range indices report absence rather than panicking.
func (m *CSR) Find(i, j int) (ElementView, bool) {
	if uint(i) >= uint(m.i) || uint(j) >= uint(m.j) {
		return ElementView{m: m, i: m.i, k: len(m.ind)}, false
	}
	k := m.lowerBound(i, j)
	if k < m.indptr[i+1] && m.ind[k] == j {
		return ElementView{m: m, i: i, k: k}, true
	}
	return ElementView{m: m, i: i, k: m.indptr[i+1]}, false
}

// Contains reports whether (i, j) is stored in the sparsity pattern.
func (m *CSR) Contains(i, j int) bool {
	_, ok := m.Find(i, j)
	return ok
}

// LowerBound returns a view positioned at the first stored element of row i
// with column >= j.  The view addresses the end of the row when no such
// element exists, and the end of the matrix when i >= the row count.
func (m *CSR) LowerBound(i, j int) ElementView {
	if uint(i) >= uint(m.i) {
		return ElementView{m: m, i: m.i, k: len(m.ind)}
	}
	return ElementView{m: m, i: i, k: m.lowerBound(i, j)}
}

// RowNNZ returns the Number of Non Zero values in the specified row i.
// RowNNZ will panic if i is out of range.
func (m *CSR) RowNNZ(i int) int {
	if uint(i) >= uint(m.i) {
		panic(mat.ErrRowAccess)
	}
	return m.indptr[i+1] - m.indptr[i]
}

// T returns the transpose of the matrix.  The returned matrix does not share
// storage with the receiver.
func (m *CSR) T() mat.Matrix {
	return m.Transpose()
}

// Transpose returns a new CSR holding the transpose of the receiver, built by
// a column-count prefix sum and scatter pass.
func (m *CSR) Transpose() *CSR {
	t := &CSR{
		i:      m.j,
		j:      m.i,
		indptr: make([]int, m.j+1),
		ind:    make([]int, len(m.ind)),
		data:   make([]float64, len(m.data)),
	}

	for _, j := range m.ind {
		t.indptr[j+1]++
	}
	for j := 0; j < t.i; j++ {
		t.indptr[j+1] += t.indptr[j]
	}

	// next[j] tracks the scatter position within transposed row j.
	next := make([]int, t.i)
	copy(next, t.indptr[:t.i])
	for i := 0; i < m.i; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			j := m.ind[k]
			t.ind[next[j]] = i
			t.data[next[j]] = m.data[k]
			next[j]++
		}
	}
	return t
}

// ToDense returns a mat.Dense dense format version of the matrix.  The
// returned matrix does not share underlying storage with the receiver nor is
// the receiver modified by this call.
func (m *CSR) ToDense() *mat.Dense {
	d := mat.NewDense(m.i, m.j, nil)
	for i := 0; i < len(m.indptr)-1; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			d.Set(i, m.ind[k], m.data[k])
		}
	}
	return d
}

// Clone returns a deep copy of the matrix.
func (m *CSR) Clone() *CSR {
	c := &CSR{
		i:      m.i,
		j:      m.j,
		indptr: make([]int, len(m.indptr)),
		ind:    make([]int, len(m.ind)),
		data:   make([]float64, len(m.data)),
	}
	copy(c.indptr, m.indptr)
	copy(c.ind, m.ind)
	copy(c.data, m.data)
	return c
}

// Swap exchanges the contents of the receiver and b.  Outstanding views of
// either matrix are invalidated.
func (m *CSR) Swap(b *CSR) {
	*m, *b = *b, *m
}

// DoNonZero calls the function fn for each of the stored data values in the
// receiver, in row-major order.
func (m *CSR) DoNonZero(fn func(i, j int, v float64)) {
	for i := 0; i < len(m.indptr)-1; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			fn(i, m.ind[k], m.data[k])
		}
	}
}
