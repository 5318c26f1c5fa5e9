package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations. Detail-carrying errors returned by
// the package unwrap to one of these, so callers can match with errors.Is.
var (
	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")

	// ErrDimensionMismatch is returned when the buffer length does not
	// equal rows*cols.
	ErrDimensionMismatch = errors.New("grid: buffer length does not match rows*cols")

	// ErrRowOutOfRange is returned when a row index or row-range endpoint
	// is outside the grid.
	ErrRowOutOfRange = errors.New("grid: row index out of range")

	// ErrColOutOfRange is returned when a column index is outside the grid.
	ErrColOutOfRange = errors.New("grid: column index out of range")

	// ErrInvalidRange is returned when a row range's start exceeds its end.
	ErrInvalidRange = errors.New("grid: row range start exceeds end")
)

// ShapeError reports a shape that cannot be applied to a buffer.
// It is returned by New and Reshape and unwraps to ErrInvalidDimensions
// when rows or cols is not positive, otherwise to ErrDimensionMismatch.
type ShapeError struct {
	BufferLen int
	Rows      int
	Cols      int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("grid: cannot view buffer of %d elements as %dx%d",
		e.BufferLen, e.Rows, e.Cols)
}

func (e *ShapeError) Unwrap() error {
	if e.Rows <= 0 || e.Cols <= 0 {
		return ErrInvalidDimensions
	}
	return ErrDimensionMismatch
}
