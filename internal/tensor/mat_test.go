package tensor

import "testing"

func TestNewMatFromDataLengthMismatchPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	NewMatFromData(2, 2, []float32{1, 2, 3})
}

func TestFillRandDeterministic(t *testing.T) {
	t.Parallel()
	a := NewMat(3, 4)
	b := NewMat(3, 4)
	FillRand(&a, 42)
	FillRand(&b, 42)
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("FillRand with same seed diverged at %d: %v vs %v", i, a.Data[i], b.Data[i])
		}
	}
}

func TestRowViewAliasesUnderlyingData(t *testing.T) {
	t.Parallel()
	m := NewMat(2, 2)
	row := m.Row(0)
	row[0] = 7
	if m.Data[0] != 7 {
		t.Fatal("Row() should return a view, not a copy")
	}
}
