package tensor

import "math/rand"

// Mat represents a dense row-major matrix of float32 values.
//
// R and C represent the number of rows and columns respectively. Stride is
// the number of elements between the starts of two consecutive rows (for
// row-major matrices this is equal to C). Data holds the flattened matrix
// values.
//
// Mat's methods check row/column indices and vector lengths and panic on
// an out-of-range index or a dimension mismatch. These checks are cheap
// range comparisons rather than exhaustive validation: callers in the hot
// training path are expected to pass valid indices.
type Mat struct {
	R, C   int
	Stride int
	Data   []float32
}

// NewMat allocates a new matrix with the given number of rows and columns.
// The underlying slice is zero initialised. The stride is set to the
// number of columns.
func NewMat(r, c int) Mat {
	if r < 0 || c < 0 {
		panic("negative dimension for matrix")
	}
	return Mat{
		R:      r,
		C:      c,
		Stride: c,
		Data:   make([]float32, r*c),
	}
}

// NewMatFromData creates a matrix from existing data.
// It checks that the data length matches r*c.
func NewMatFromData(r, c int, data []float32) Mat {
	if r*c != len(data) {
		panic("data length mismatch")
	}
	return Mat{
		R:      r,
		C:      c,
		Stride: c,
		Data:   data,
	}
}

// Row returns a view of the i-th row of the matrix as a slice. The slice
// has length equal to the number of columns. Modifications to the returned
// slice update the underlying matrix values.
func (m *Mat) Row(i int) []float32 {
	if i < 0 || i >= m.R {
		panic("row index out of range")
	}
	start := i * m.Stride
	return m.Data[start : start+m.C]
}

// DotRow computes the dot product of row r with v.
func (m *Mat) DotRow(v Vector, r int) float32 {
	if r < 0 || r >= m.R {
		panic("row index out of range")
	}
	if len(v) != m.C {
		panic("dimension mismatch in DotRow")
	}
	row := m.Row(r)
	var sum float32
	for i, x := range row {
		sum += x * v[i]
	}
	return sum
}

// AddRow performs M[r] += alpha * v in place.
func (m *Mat) AddRow(v Vector, r int, alpha float32) {
	if r < 0 || r >= m.R {
		panic("row index out of range")
	}
	if len(v) != m.C {
		panic("dimension mismatch in AddRow")
	}
	row := m.Row(r)
	for i, x := range v {
		row[i] += alpha * x
	}
}

// At returns the scalar element at (r, c). Used where a matrix holds a
// lookup table rather than a bank of embedding rows — e.g. attention
// logits indexed by (feature, position) — and a whole-row view doesn't
// apply.
func (m *Mat) At(r, c int) float32 {
	if r < 0 || r >= m.R {
		panic("row index out of range")
	}
	if c < 0 || c >= m.C {
		panic("column index out of range")
	}
	return m.Data[r*m.Stride+c]
}

// AddAt performs M[r][c] += delta in place.
func (m *Mat) AddAt(r, c int, delta float32) {
	if r < 0 || r >= m.R {
		panic("row index out of range")
	}
	if c < 0 || c >= m.C {
		panic("column index out of range")
	}
	m.Data[r*m.Stride+c] += delta
}

// FillRand fills the matrix with reproducible pseudo-random values. A
// small range around zero is used to avoid overflow in accumulations. The
// seed controls the random sequence; multiple calls with the same seed
// produce identical matrices.
func FillRand(m *Mat, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range m.Data {
		m.Data[i] = (rng.Float32() - 0.5) / float32(m.C)
	}
}
