package mat

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/grid"
)

func TestNew(t *testing.T) {
	m, err := New(2, 3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rows, cols := m.Dims()
	if rows != 2 || cols != 3 {
		t.Errorf("Dims() = (%d, %d), want (2, 3)", rows, cols)
	}
	for _, v := range m.Data() {
		if v != 0 {
			t.Fatalf("new matrix not zeroed: %v", m.Data())
		}
	}

	if _, err := New(0, 3); !errors.Is(err, grid.ErrInvalidDimensions) {
		t.Errorf("New(0, 3) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestFromSlice_ZeroCopy(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m, err := FromSlice(data, 2, 2)
	if err != nil {
		t.Fatalf("FromSlice() error = %v", err)
	}

	m.Set(0, 1, 20)
	if data[1] != 20 {
		t.Errorf("Set not visible in backing slice: %v", data)
	}
	if got := m.At(1, 0); got != 3 {
		t.Errorf("At(1, 0) = %v, want 3", got)
	}

	if _, err := FromSlice(data, 3, 2); !errors.Is(err, grid.ErrDimensionMismatch) {
		t.Errorf("FromSlice(len 4, 3, 2) error = %v, want ErrDimensionMismatch", err)
	}
}

func TestAt_Panics(t *testing.T) {
	m, err := New(2, 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("At(2, 0) did not panic")
		}
	}()
	m.At(2, 0)
}

func TestIdentity(t *testing.T) {
	m, err := Identity(3)
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	for r := range 3 {
		for c := range 3 {
			want := 0.0
			if r == c {
				want = 1.0
			}
			if got := m.At(r, c); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	b, _ := FromSlice([]float64{10, 20, 30, 40}, 2, 2)

	if err := a.Add(b); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !slices.Equal(a.Data(), []float64{11, 22, 33, 44}) {
		t.Errorf("Add result = %v, want [11 22 33 44]", a.Data())
	}

	c, _ := New(2, 3)
	if err := a.Add(c); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Add mismatched shapes error = %v, want ErrShapeMismatch", err)
	}
	// Failed Add must leave a untouched.
	if !slices.Equal(a.Data(), []float64{11, 22, 33, 44}) {
		t.Errorf("failed Add modified matrix: %v", a.Data())
	}
}

func TestScale(t *testing.T) {
	m, _ := FromSlice([]float64{1, -2, 3, -4}, 2, 2)
	m.Scale(2.5)
	if !slices.Equal(m.Data(), []float64{2.5, -5, 7.5, -10}) {
		t.Errorf("Scale result = %v, want [2.5 -5 7.5 -10]", m.Data())
	}
}

func TestMul(t *testing.T) {
	// | 1 2 |   | 5 6 |   | 19 22 |
	// | 3 4 | x | 7 8 | = | 43 50 |
	a, _ := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	b, _ := FromSlice([]float64{5, 6, 7, 8}, 2, 2)

	got, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul() error = %v", err)
	}
	if !slices.Equal(got.Data(), []float64{19, 22, 43, 50}) {
		t.Errorf("Mul result = %v, want [19 22 43 50]", got.Data())
	}
}

func TestMul_Rectangular(t *testing.T) {
	// (2x3) x (3x1) = (2x1)
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b, _ := FromSlice([]float64{1, 0, -1}, 3, 1)

	got, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul() error = %v", err)
	}
	rows, cols := got.Dims()
	if rows != 2 || cols != 1 {
		t.Fatalf("Mul result dims = (%d, %d), want (2, 1)", rows, cols)
	}
	if !slices.Equal(got.Data(), []float64{-2, -2}) {
		t.Errorf("Mul result = %v, want [-2 -2]", got.Data())
	}

	if _, err := Mul(b, b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Mul(3x1, 3x1) error = %v, want ErrShapeMismatch", err)
	}
}

func TestMul_Identity(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 3)
	id, _ := Identity(3)

	got, err := Mul(a, id)
	if err != nil {
		t.Fatalf("Mul() error = %v", err)
	}
	if !EqualApprox(a, got, 0) {
		t.Errorf("a*I = %v, want %v", got.Data(), a.Data())
	}
}

func TestTranspose(t *testing.T) {
	m, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)

	tr := m.Transpose()
	rows, cols := tr.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("Transpose dims = (%d, %d), want (3, 2)", rows, cols)
	}
	if !slices.Equal(tr.Data(), []float64{1, 4, 2, 5, 3, 6}) {
		t.Errorf("Transpose data = %v, want [1 4 2 5 3 6]", tr.Data())
	}

	// Double transpose is the original.
	if !EqualApprox(m, tr.Transpose(), 0) {
		t.Error("double transpose differs from original")
	}
}

func TestEqualApprox(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	b, _ := FromSlice([]float64{1 + 1e-12, 2, 3, 4 - 1e-12}, 2, 2)
	c, _ := FromSlice([]float64{1, 2, 3, 4}, 4, 1)

	if !EqualApprox(a, b, 1e-9) {
		t.Error("EqualApprox within tolerance = false, want true")
	}
	if EqualApprox(a, b, 0) {
		t.Error("EqualApprox with zero tolerance = true, want false")
	}
	if EqualApprox(a, c, math.Inf(1)) {
		t.Error("EqualApprox across shapes = true, want false")
	}
}

func TestClone_Independent(t *testing.T) {
	m, _ := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	c := m.Clone()

	c.Set(0, 0, 99)
	if m.At(0, 0) != 1 {
		t.Errorf("clone write leaked into original: At(0, 0) = %v", m.At(0, 0))
	}
}
