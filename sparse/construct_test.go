package sparse

import (
	"errors"
	"testing"
)

func TestNewCSRFromRawValidation(t *testing.T) {
	var tests = []struct {
		desc     string
		indptr   []int
		ind      []int
		data     []float64
		columns  int
		expected error
	}{
		{
			desc:   "valid sorted",
			indptr: []int{0, 2, 3}, ind: []int{0, 2, 1}, data: []float64{1, 2, 3}, columns: 3,
		},
		{
			desc:   "valid unsorted rows are sorted",
			indptr: []int{0, 3}, ind: []int{2, 0, 1}, data: []float64{3, 1, 2}, columns: 3,
		},
		{
			desc:   "offsets not starting at zero",
			indptr: []int{1, 3}, ind: []int{0, 1}, data: []float64{1, 2}, columns: 2,
			expected: ErrOffsets,
		},
		{
			desc:   "offsets decreasing",
			indptr: []int{0, 2, 1, 3}, ind: []int{0, 1, 0}, data: []float64{1, 2, 3}, columns: 2,
			expected: ErrOffsets,
		},
		{
			desc:   "offsets disagree with storage",
			indptr: []int{0, 4}, ind: []int{0, 1}, data: []float64{1, 2}, columns: 2,
			expected: ErrOffsets,
		},
		{
			desc:   "column out of range",
			indptr: []int{0, 1}, ind: []int{5}, data: []float64{1}, columns: 3,
			expected: ErrIndexRange,
		},
		{
			desc:   "negative column",
			indptr: []int{0, 1}, ind: []int{-1}, data: []float64{1}, columns: 3,
			expected: ErrIndexRange,
		},
		{
			desc:   "duplicate within row",
			indptr: []int{0, 2}, ind: []int{1, 1}, data: []float64{1, 2}, columns: 3,
			expected: ErrDuplicate,
		},
		{
			desc:   "mismatched lengths",
			indptr: []int{0, 1}, ind: []int{0}, data: []float64{1, 2}, columns: 2,
			expected: ErrTripletLength,
		},
	}

	for ti, test := range tests {
		m, err := NewCSRFromRaw(test.indptr, test.ind, test.data, test.columns)
		if !errors.Is(err, test.expected) {
			t.Errorf("test %d (%s): error = %v, expected %v", ti+1, test.desc, err, test.expected)
			continue
		}
		if err == nil {
			checkInvariants(t, m)
		}
	}
}

func TestNewCSRFromRawSortsRowPairs(t *testing.T) {
	m, err := NewCSRFromRaw(
		[]int{0, 3, 5},
		[]int{4, 0, 2, 3, 1},
		[]float64{40, 0.5, 20, 30, 10},
		5,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkInvariants(t, m)

	// Values must have travelled with their columns.
	var tests = []struct {
		i, j     int
		expected float64
	}{
		{0, 0, 0.5}, {0, 2, 20}, {0, 4, 40},
		{1, 1, 10}, {1, 3, 30},
	}
	for _, test := range tests {
		if actual := m.At(test.i, test.j); actual != test.expected {
			t.Errorf("At(%d, %d) = %f, expected %f", test.i, test.j, actual, test.expected)
		}
	}
}

func TestIdentity(t *testing.T) {
	eye := Identity(4)
	checkInvariants(t, eye)
	if eye.NNZ() != 4 {
		t.Errorf("NNZ() = %d, expected 4", eye.NNZ())
	}
	for i := 0; i < 4; i++ {
		if eye.At(i, i) != 1 {
			t.Errorf("At(%d, %d) = %f, expected 1", i, i, eye.At(i, i))
		}
	}
}

func TestCOOToCSRSumsDuplicates(t *testing.T) {
	coo := NewCOO(2, 3, nil, nil, nil)
	coo.Set(0, 2, 1)
	coo.Set(0, 2, 2)
	coo.Set(1, 0, 5)
	coo.Set(0, 1, 3)

	m := coo.ToCSR()
	checkInvariants(t, m)

	if m.NNZ() != 3 {
		t.Errorf("NNZ() = %d, expected 3", m.NNZ())
	}
	if m.At(0, 2) != 3 {
		t.Errorf("duplicate coordinates not summed: At(0, 2) = %f", m.At(0, 2))
	}
	if m.At(0, 1) != 3 || m.At(1, 0) != 5 {
		t.Errorf("unexpected entries after compression")
	}
}

func TestRandom(t *testing.T) {
	m := Random(20, 30, 0.1)
	checkInvariants(t, m)

	r, c := m.Dims()
	if r != 20 || c != 30 {
		t.Errorf("Dims() = %d, %d, expected 20, 30", r, c)
	}
	if m.NNZ() == 0 || m.NNZ() > 60 {
		t.Errorf("NNZ() = %d, expected in (0, 60]", m.NNZ())
	}
}
