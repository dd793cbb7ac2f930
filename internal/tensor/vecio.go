package tensor

import (
	"encoding/binary"
	"io"
)

// WriteTo serialises v as its dimension followed by dim float32 values,
// all little-endian. There is no header and no version byte at this
// level — framing beyond the vector primitive belongs to the surrounding
// model file, not here.
func (v Vector) WriteTo(w io.Writer) (int64, error) {
	var n int64
	if err := binary.Write(w, binary.LittleEndian, int64(len(v))); err != nil {
		return n, err
	}
	n += 8
	if err := binary.Write(w, binary.LittleEndian, []float32(v)); err != nil {
		return n, err
	}
	n += int64(len(v)) * 4
	return n, nil
}

// ReadVector is the inverse of WriteTo.
func ReadVector(r io.Reader) (Vector, error) {
	var dim int64
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return nil, err
	}
	v := make(Vector, dim)
	if dim > 0 {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}
	return v, nil
}
