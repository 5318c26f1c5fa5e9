// Package mat provides small dense float64 matrices on top of a grid view.
//
// The package targets small fixed-size matrices (transforms, covariance
// blocks, kernels) where a full linear algebra library would be overkill.
// Storage is a flat row-major float64 slice addressed through grid.Grid,
// so rows are contiguous and Row returns zero-copy slices.
package mat

import (
	"errors"
	"math"

	"github.com/gogpu/grid"
)

// ErrShapeMismatch is returned when an operation is given matrices whose
// dimensions are incompatible.
var ErrShapeMismatch = errors.New("mat: matrix dimensions do not match")

// Matrix is a dense row-major float64 matrix.
type Matrix struct {
	g *grid.Grid[float64]
}

// New creates a zero matrix with the given dimensions.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &grid.ShapeError{Rows: rows, Cols: cols}
	}
	g, err := grid.New(make([]float64, rows*cols), rows, cols)
	if err != nil {
		return nil, err
	}
	return &Matrix{g: g}, nil
}

// FromSlice creates a matrix viewing data without copying.
// Writes through the matrix are visible in data and vice versa.
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	g, err := grid.New(data, rows, cols)
	if err != nil {
		return nil, err
	}
	return &Matrix{g: g}, nil
}

// Identity creates the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := range n {
		m.Set(i, i, 1)
	}
	return m, nil
}

// Dims returns the matrix dimensions as (rows, cols).
func (m *Matrix) Dims() (rows, cols int) {
	return m.g.Dims()
}

// At returns the element at (r, c). It panics when the indices are out of
// bounds, matching the convention of numeric matrix interfaces.
func (m *Matrix) At(r, c int) float64 {
	return m.g.MustGet(r, c)
}

// Set stores v at (r, c). It panics when the indices are out of bounds.
func (m *Matrix) Set(r, c int, v float64) {
	p, err := m.g.At(r, c)
	if err != nil {
		panic(err)
	}
	*p = v
}

// Row returns row r as a zero-copy slice.
func (m *Matrix) Row(r int) []float64 {
	return m.g.MustRow(r)
}

// Data returns the underlying row-major slice.
func (m *Matrix) Data() []float64 {
	return m.g.Data()
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{g: m.g.Clone()}
}

// Add adds b into m element-wise.
// Returns ErrShapeMismatch when dimensions differ; m is untouched on error.
func (m *Matrix) Add(b *Matrix) error {
	mr, mc := m.Dims()
	br, bc := b.Dims()
	if mr != br || mc != bc {
		return ErrShapeMismatch
	}
	md, bd := m.g.Data(), b.g.Data()
	for i := range md {
		md[i] += bd[i]
	}
	return nil
}

// Scale multiplies every element of m by f.
func (m *Matrix) Scale(f float64) {
	data := m.g.Data()
	for i := range data {
		data[i] *= f
	}
}

// Mul returns the matrix product a*b.
// Returns ErrShapeMismatch when a's column count differs from b's row count.
func Mul(a, b *Matrix) (*Matrix, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, ErrShapeMismatch
	}

	out, err := New(ar, bc)
	if err != nil {
		return nil, err
	}
	for r := range ar {
		arow := a.Row(r)
		orow := out.Row(r)
		for k, av := range arow {
			if av == 0 {
				continue
			}
			brow := b.Row(k)
			for c := range bc {
				orow[c] += av * brow[c]
			}
		}
	}
	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// The result is a copy: transposition cannot be expressed as a zero-copy
// view of row-major storage.
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.Dims()
	out, err := New(cols, rows)
	if err != nil {
		// Unreachable: m's dimensions are already valid.
		panic(err)
	}
	for r := range rows {
		row := m.Row(r)
		for c, v := range row {
			out.Set(c, r, v)
		}
	}
	return out
}

// EqualApprox reports whether a and b have the same dimensions and every
// pair of elements differs by at most tol.
func EqualApprox(a, b *Matrix, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if math.Abs(ad[i]-bd[i]) > tol {
			return false
		}
	}
	return true
}
