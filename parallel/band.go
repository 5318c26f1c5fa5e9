// Package parallel decomposes a grid into disjoint bands of whole rows for
// concurrent processing.
//
// Because grid addressing is row-major, any run of whole rows is a
// contiguous region of the backing buffer. Bands therefore never overlap,
// and separate goroutines may mutate separate bands without locks: each
// band view reaches a distinct sub-slice of the buffer.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/grid"
)

// Band is a view of a contiguous run of whole rows within a parent grid.
// Band row r corresponds to parent row Start+r; both views alias the same
// buffer region.
type Band[T any] struct {
	// Start is the first parent row covered by this band.
	Start int

	// Grid is the zero-copy view of the band's rows.
	Grid *grid.Grid[T]
}

// Bands splits g into at most n disjoint bands of whole rows, in order,
// together covering every row exactly once. Row counts differ by at most
// one between bands. If n is not positive, GOMAXPROCS is used; if n
// exceeds the row count, one band per row is returned.
func Bands[T any](g *grid.Grid[T], n int) ([]Band[T], error) {
	rows, cols := g.Dims()
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > rows {
		n = rows
	}

	bands := make([]Band[T], 0, n)
	base := rows / n
	extra := rows % n

	r0 := 0
	for i := range n {
		r1 := r0 + base
		if i < extra {
			r1++
		}
		sub, err := g.RowRange(r0, r1)
		if err != nil {
			return nil, err
		}
		bg, err := grid.New(sub, r1-r0, cols)
		if err != nil {
			return nil, err
		}
		bands = append(bands, Band[T]{Start: r0, Grid: bg})
		r0 = r1
	}
	return bands, nil
}

// ForEachBand splits g into at most n bands and runs fn once per band,
// each call on its own goroutine. fn may mutate its band freely; bands are
// disjoint, so no synchronization is needed between calls.
//
// The first non-nil error from fn cancels the group context and is
// returned after all running calls finish. ctx cancellation is observed
// between band launches and is surfaced through the group context passed
// to fn.
func ForEachBand[T any](ctx context.Context, g *grid.Grid[T], n int, fn func(ctx context.Context, b Band[T]) error) error {
	bands, err := Bands(g, n)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, b := range bands {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, b)
		})
	}
	return eg.Wait()
}
