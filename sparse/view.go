package sparse

import (
	"gonum.org/v1/gonum/mat"
)

// ElementView is a non-owning handle to one stored entry of a CSR matrix.
// Element views are invalidated by any structural mutation of the parent
// matrix (Insert, Erase, Resize, Clear, Swap and the structural arithmetic
// operations); using an invalidated view is undefined.
type ElementView struct {
	m    *CSR
	i, k int
}

// Valid reports whether the view addresses a stored element, as opposed to an
// end-of-row or end-of-matrix sentinel.
func (e ElementView) Valid() bool {
	return e.i < e.m.i && e.k < e.m.indptr[e.i+1]
}

// Row returns the row index of the referenced element.
func (e ElementView) Row() int {
	return e.i
}

// Column returns the column index of the referenced element.
func (e ElementView) Column() int {
	return e.m.ind[e.k]
}

// Value returns the referenced scalar.
func (e ElementView) Value() float64 {
	return e.m.data[e.k]
}

// SetValue assigns v to the referenced entry without altering the sparsity
// pattern.
func (e ElementView) SetValue(v float64) {
	e.m.data[e.k] = v
}

// RowView is a non-owning reference to one row of a CSR matrix.  It exposes
// column-ordered traversal of the row's stored elements and, through Insert,
// the parent's insertion hook.  Row views are invalidated by structural
// mutations affecting offsets at or before the viewed row.
type RowView struct {
	m *CSR
	i int
}

// Row produces a view of row i.  Row will panic if i is out of range.
func (m *CSR) Row(i int) RowView {
	if uint(i) >= uint(m.i) {
		panic(mat.ErrRowAccess)
	}
	return RowView{m: m, i: i}
}

// Index returns the viewed row's index.
func (r RowView) Index() int {
	return r.i
}

// NNZ returns the number of stored entries in the row.  A zero-nnz row is a
// valid empty range, not an error.
func (r RowView) NNZ() int {
	return r.m.indptr[r.i+1] - r.m.indptr[r.i]
}

// Columns returns the row's column indices, strictly ascending.  The returned
// slice shares backing storage with the parent and must not be mutated.
func (r RowView) Columns() []int {
	return r.m.ind[r.m.indptr[r.i]:r.m.indptr[r.i+1]]
}

// Values returns the row's stored values, positionally aligned with Columns.
// The returned slice shares backing storage with the parent.
func (r RowView) Values() []float64 {
	return r.m.data[r.m.indptr[r.i]:r.m.indptr[r.i+1]]
}

// At returns the stored value at column j.  Unlike the parent matrix's At, a
// structurally absent column is a precondition violation and panics.
func (r RowView) At(j int) float64 {
	e, ok := r.m.Find(r.i, j)
	if !ok {
		panic(mat.ErrColAccess)
	}
	return e.Value()
}

// Contains reports whether column j is stored in this row.
func (r RowView) Contains(j int) bool {
	return r.m.Contains(r.i, j)
}

// Insert places v at column j of this row, inserting a new entry when absent
// and growing the parent's column count when j is out of bounds.  It reports
// whether an insertion took place.  All previously obtained element views are
// invalidated when it does.
func (r RowView) Insert(j int, v float64) (ElementView, bool) {
	return r.m.Insert(r.i, j, v)
}

// Subscript returns a view of the entry at column j, auto-inserting a scalar
// zero when the column is absent.  This mirrors associative-container
// subscript semantics; the insertion is performed through the parent, so any
// outstanding element views must be considered invalid afterwards.
func (r RowView) Subscript(j int) ElementView {
	e, _ := r.m.Insert(r.i, j, 0)
	return e
}

// Elements returns an iterator over the row's stored elements in strict
// column order.
func (r RowView) Elements() ElementIterator {
	return ElementIterator{m: r.m, i: r.i, k: r.m.indptr[r.i] - 1, end: r.m.indptr[r.i+1]}
}

// Do calls fn for each stored element of the row in strict column order.
func (r RowView) Do(fn func(j int, v float64)) {
	for k := r.m.indptr[r.i]; k < r.m.indptr[r.i+1]; k++ {
		fn(r.m.ind[k], r.m.data[k])
	}
}

// ElementIterator steps through the stored elements of one row.  The column
// index and value pointers advance in lock-step.
//
//	for it := row.Elements(); it.Next(); {
//		e := it.Element()
//		...
//	}
type ElementIterator struct {
	m      *CSR
	i      int
	k, end int
}

// Next advances the iterator and reports whether an element is available.
func (it *ElementIterator) Next() bool {
	it.k++
	return it.k < it.end
}

// Element returns a view of the current element.
func (it *ElementIterator) Element() ElementView {
	return ElementView{m: it.m, i: it.i, k: it.k}
}

// Column returns the current element's column index.
func (it *ElementIterator) Column() int {
	return it.m.ind[it.k]
}

// Value returns the current element's value.
func (it *ElementIterator) Value() float64 {
	return it.m.data[it.k]
}

// RowIterator steps through the rows of a CSR matrix in order.
type RowIterator struct {
	m *CSR
	i int
}

// Rows returns an iterator over the matrix's row views.
func (m *CSR) Rows() RowIterator {
	return RowIterator{m: m, i: -1}
}

// Next advances the iterator and reports whether a row is available.
func (it *RowIterator) Next() bool {
	it.i++
	return it.i < it.m.i
}

// Row returns a view of the current row.
func (it *RowIterator) Row() RowView {
	return RowView{m: it.m, i: it.i}
}
