// Package grid provides a lightweight two-dimensional view over a flat slice.
//
// # Overview
//
// grid wraps a caller-owned slice of length rows*cols and lets callers
// address elements, rows, and runs of whole rows with (row, column)
// coordinates instead of manual index arithmetic. The view is zero-copy:
// it never allocates, resizes, or frees the backing slice, and every row
// or row-range accessor returns a sub-slice of it.
//
// # Quick Start
//
//	import "github.com/gogpu/grid"
//
//	buf := []int{1, 2, 3, 4, 5, 6}
//	g, err := grid.New(buf, 2, 3)
//	if err != nil {
//		// handle error
//	}
//
//	v, _ := g.Get(1, 2)   // 6
//	row, _ := g.Row(0)    // []int{1, 2, 3}, aliases buf
//	all, _ := g.RowRange(0, 2)
//
// # Layout
//
// Addressing is row-major: element (r, c) lives at linear offset r*cols+c,
// row r spans offsets [r*cols, (r+1)*cols), and the row range [r0, r1)
// spans [r0*cols, r1*cols). Whole-row ranges are the only multi-element
// views offered because they are the only ones that stay contiguous;
// column and strided slices would require copying and are out of scope.
//
// # Errors
//
// Every accessor bounds-checks its inputs and returns a sentinel error
// (ErrRowOutOfRange, ErrColOutOfRange, ErrInvalidRange) on violation;
// construction and Reshape return a *ShapeError carrying the offending
// shape. Nothing is mutated on error. Match errors with errors.Is.
//
// # Sub-packages
//
//   - pixel: an RGBA pixmap built on a byte grid, with PNG/BMP output
//     and scaling.
//   - parallel: disjoint row-band decomposition for concurrent processing.
//   - mat: small dense float64 matrices over a grid view.
package grid
