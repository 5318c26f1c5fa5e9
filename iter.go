package grid

import "iter"

// All returns an iterator over the grid's rows in order. Each yielded
// slice is a zero-copy view of one row (see Row), so element writes
// through it mutate the grid.
//
// Example:
//
//	for r, row := range g.All() {
//		fmt.Println(r, row)
//	}
func (g *Grid[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := range g.rows {
			lo, hi := r*g.cols, (r+1)*g.cols
			if !yield(r, g.data[lo:hi:hi]) {
				return
			}
		}
	}
}

// Values returns an iterator over every element in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}
