package grid

import "slices"

// Grid is a two-dimensional, row-major view over a flat slice.
//
// The view borrows the caller's slice: construction makes no copy, and the
// grid never grows, shrinks, or frees the backing array. Element (r, c)
// maps to data[r*cols+c], so every row is a contiguous run of cols
// elements and any run of whole rows is contiguous as well. Column slices
// are never contiguous in this layout and are therefore not offered.
//
// Writes through the view are writes to the caller's slice and vice versa.
// Multiple grids may view the same slice; the package does not track
// aliasing.
//
// Thread safety: Grid holds no locks. Concurrent reads are safe as long as
// no goroutine mutates the buffer or calls Reshape. Concurrent writes
// require external synchronization or provably disjoint regions (see
// package parallel for disjoint row bands).
type Grid[T any] struct {
	data []T
	rows int
	cols int
}

// New creates a grid view of data with the given dimensions.
//
// data is borrowed, not copied. Returns a *ShapeError that unwraps to
// ErrInvalidDimensions when rows or cols is not positive, or to
// ErrDimensionMismatch when len(data) != rows*cols.
func New[T any](data []T, rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, &ShapeError{BufferLen: len(data), Rows: rows, Cols: cols}
	}
	return &Grid[T]{data: data, rows: rows, cols: cols}, nil
}

// Dims returns the grid's dimensions as (rows, cols).
func (g *Grid[T]) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the total number of elements (rows*cols).
func (g *Grid[T]) Len() int { return len(g.data) }

// IsEmpty reports whether the grid contains no elements.
func (g *Grid[T]) IsEmpty() bool { return len(g.data) == 0 }

// Get returns the element at (r, c).
// Returns ErrRowOutOfRange or ErrColOutOfRange for out-of-bounds indices.
func (g *Grid[T]) Get(r, c int) (T, error) {
	var zero T
	if r < 0 || r >= g.rows {
		return zero, ErrRowOutOfRange
	}
	if c < 0 || c >= g.cols {
		return zero, ErrColOutOfRange
	}
	return g.data[r*g.cols+c], nil
}

// At returns a pointer to the element at (r, c). The pointer aliases the
// backing slice, so writes through it are visible to the caller and to
// every other view of the same buffer.
// Returns ErrRowOutOfRange or ErrColOutOfRange for out-of-bounds indices.
func (g *Grid[T]) At(r, c int) (*T, error) {
	if r < 0 || r >= g.rows {
		return nil, ErrRowOutOfRange
	}
	if c < 0 || c >= g.cols {
		return nil, ErrColOutOfRange
	}
	return &g.data[r*g.cols+c], nil
}

// Set stores v at (r, c).
// Returns ErrRowOutOfRange or ErrColOutOfRange for out-of-bounds indices;
// the buffer is untouched on error.
func (g *Grid[T]) Set(r, c int, v T) error {
	if r < 0 || r >= g.rows {
		return ErrRowOutOfRange
	}
	if c < 0 || c >= g.cols {
		return ErrColOutOfRange
	}
	g.data[r*g.cols+c] = v
	return nil
}

// Row returns row r as a zero-copy sub-slice of exactly Cols elements.
// The slice's capacity is clamped so appends cannot spill into row r+1.
// Returns ErrRowOutOfRange when r is outside [0, Rows).
func (g *Grid[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= g.rows {
		return nil, ErrRowOutOfRange
	}
	lo, hi := r*g.cols, (r+1)*g.cols
	return g.data[lo:hi:hi], nil
}

// RowRange returns rows [r0, r1) as a single zero-copy sub-slice of
// (r1-r0)*Cols elements: the concatenation of rows r0 through r1-1.
// r0 == r1 yields an empty slice. The slice's capacity is clamped so
// appends cannot spill past row r1-1.
// Returns ErrInvalidRange when r0 > r1, ErrRowOutOfRange when r0 < 0 or
// r1 > Rows.
func (g *Grid[T]) RowRange(r0, r1 int) ([]T, error) {
	if r0 > r1 {
		return nil, ErrInvalidRange
	}
	if r0 < 0 || r1 > g.rows {
		return nil, ErrRowOutOfRange
	}
	lo, hi := r0*g.cols, r1*g.cols
	return g.data[lo:hi:hi], nil
}

// Reshape reassigns the view's dimensions over the same buffer.
// The buffer is untouched; only the row/column mapping changes.
// Returns a *ShapeError (see New) when the buffer cannot be viewed as
// rows x cols; the grid keeps its previous shape on error.
func (g *Grid[T]) Reshape(rows, cols int) error {
	if rows <= 0 || cols <= 0 || len(g.data) != rows*cols {
		return &ShapeError{BufferLen: len(g.data), Rows: rows, Cols: cols}
	}
	g.rows = rows
	g.cols = cols
	return nil
}

// Data returns the entire underlying slice in row-major order.
// Modifying the returned slice modifies the grid.
func (g *Grid[T]) Data() []T { return g.data }

// Clone returns a grid of the same shape backed by a freshly allocated
// copy of the buffer. The clone and the original do not alias.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{data: data, rows: g.rows, cols: g.cols}
}

// MustGet is like Get but panics on out-of-bounds indices.
func (g *Grid[T]) MustGet(r, c int) T {
	v, err := g.Get(r, c)
	if err != nil {
		panic(err)
	}
	return v
}

// MustRow is like Row but panics on an out-of-bounds index.
func (g *Grid[T]) MustRow(r int) []T {
	row, err := g.Row(r)
	if err != nil {
		panic(err)
	}
	return row
}

// MustRowRange is like RowRange but panics on an invalid range.
func (g *Grid[T]) MustRowRange(r0, r1 int) []T {
	s, err := g.RowRange(r0, r1)
	if err != nil {
		panic(err)
	}
	return s
}

// Equal reports whether a and b have the same dimensions and equal
// elements in every position.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	return slices.Equal(a.data, b.data)
}
