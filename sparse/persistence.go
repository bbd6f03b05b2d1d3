package sparse

import (
	"encoding"
	"encoding/binary"
	"errors"
	"math"
)

var (
	sizeInt64   = binary.Size(int64(0))
	sizeFloat64 = binary.Size(float64(0))

	_ encoding.BinaryMarshaler   = (*CSR)(nil)
	_ encoding.BinaryUnmarshaler = (*CSR)(nil)
)

// ErrTooLarge indicates a serialised matrix too big for this platform.
var ErrTooLarge = errors.New("sparse: matrix too large")

// MarshalBinary binary serialises the receiver into a []byte and returns the
// result.
//
// CSR is little-endian encoded as follows:
//
//	 0 -  7  number of rows (int64)
//	 8 - 15  number of columns (int64)
//	16 - 23  number of non zero elements (int64)
//	24 - ..  row offsets (rows + 1 * int64)
//	 .. - ..  column indices (nnz * int64)
//	 .. - ..  data elements (nnz * float64)
func (m *CSR) MarshalBinary() ([]byte, error) {
	bufLen := int64(3+len(m.indptr)+len(m.ind))*int64(sizeInt64) + int64(len(m.data))*int64(sizeFloat64)
	if bufLen <= 0 {
		return nil, ErrTooLarge
	}

	p := 0
	buf := make([]byte, bufLen)
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(m.i))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(m.j))
	p += sizeInt64
	binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(m.NNZ()))
	p += sizeInt64

	for _, off := range m.indptr {
		binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(off))
		p += sizeInt64
	}
	for _, j := range m.ind {
		binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(j))
		p += sizeInt64
	}
	for _, v := range m.data {
		binary.LittleEndian.PutUint64(buf[p:p+sizeFloat64], math.Float64bits(v))
		p += sizeFloat64
	}

	return buf, nil
}

// UnmarshalBinary binary deserialises the []byte into the receiver.  The
// serialised data is validated with the same rules as NewCSRFromRaw; it must
// not be trusted blindly from untrusted sources.
func (m *CSR) UnmarshalBinary(data []byte) error {
	if len(data) < 3*sizeInt64 {
		return errors.New("sparse: data is too short")
	}

	p := 0
	r := int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	c := int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64
	nnz := int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
	p += sizeInt64

	if r < 0 || c < 0 || nnz < 0 {
		return errors.New("sparse: unmarshal header corrupted")
	}
	want := 3*int64(sizeInt64) + (r+1+nnz)*int64(sizeInt64) + nnz*int64(sizeFloat64)
	if int64(len(data)) != want {
		return errors.New("sparse: data length mismatch")
	}

	indptr := make([]int, r+1)
	for i := range indptr {
		indptr[i] = int(int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64])))
		p += sizeInt64
	}
	ind := make([]int, nnz)
	for i := range ind {
		ind[i] = int(int64(binary.LittleEndian.Uint64(data[p : p+sizeInt64])))
		p += sizeInt64
	}
	values := make([]float64, nnz)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[p : p+sizeFloat64]))
		p += sizeFloat64
	}

	restored, err := NewCSRFromRaw(indptr, ind, values, int(c))
	if err != nil {
		return err
	}
	*m = *restored
	return nil
}
