package tensor

import (
	"math"
	"testing"
)

func TestVectorMulScalar(t *testing.T) {
	t.Parallel()
	v := Vector{1, 2, 3}
	v.MulScalar(2)
	want := Vector{2, 4, 6}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, v[i], want[i])
		}
	}
}

func TestVectorAddRow(t *testing.T) {
	t.Parallel()
	m := NewMatFromData(2, 3, []float32{1, 2, 3, 4, 5, 6})
	v := NewVector(3)
	v.AddRow(&m, 1)
	want := Vector{4, 5, 6}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, v[i], want[i])
		}
	}
}

func TestVectorAddRowScaled(t *testing.T) {
	t.Parallel()
	m := NewMatFromData(1, 2, []float32{2, 4})
	v := NewVector(2)
	v.AddRowScaled(&m, 0, 0.5)
	if v[0] != 1 || v[1] != 2 {
		t.Fatalf("got %v, want [1 2]", v)
	}
}

func TestVectorMul(t *testing.T) {
	t.Parallel()
	m := NewMatFromData(2, 2, []float32{1, 0, 0, 1})
	u := Vector{3, 4}
	v := NewVector(2)
	v.Mul(&m, u)
	if v[0] != 3 || v[1] != 4 {
		t.Fatalf("identity matmul failed, got %v", v)
	}
}

func TestVectorDot(t *testing.T) {
	t.Parallel()
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}
	got := a.Dot(b)
	want := float32(1*4 + 2*5 + 3*6)
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestVectorL1Norm(t *testing.T) {
	t.Parallel()
	v := Vector{-1, 2, -3}
	if got := v.L1Norm(); got != 6 {
		t.Fatalf("got %v want 6", got)
	}
}

func TestVectorArgmaxTieBreaksLowestIndex(t *testing.T) {
	t.Parallel()
	v := Vector{1, 3, 3, 2}
	if got := v.Argmax(); got != 1 {
		t.Fatalf("got %v want 1", got)
	}
}

func TestVectorArgmaxEmptyPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on empty argmax")
		}
	}()
	Vector{}.Argmax()
}

func TestMatDotRowAndAddRow(t *testing.T) {
	t.Parallel()
	m := NewMat(2, 3)
	m.AddRow(Vector{1, 2, 3}, 0, 1.0)
	if got := m.DotRow(Vector{1, 1, 1}, 0); got != 6 {
		t.Fatalf("got %v want 6", got)
	}
	m.AddRow(Vector{1, 2, 3}, 0, -1.0)
	for i, x := range m.Row(0) {
		if math.Abs(float64(x)) > 1e-6 {
			t.Fatalf("row 0 element %d not zeroed after negated add: %v", i, x)
		}
	}
}
