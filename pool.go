package grid

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Pool is a thread-safe pool for reusing grid buffers.
//
// Pool groups free buffers by their (rows, cols) shape, allowing efficient
// reuse of identically-shaped grids. This reduces GC pressure for
// applications that frequently create and discard grids of similar sizes,
// such as per-frame scratch grids. Shape buckets are held in an LRU cache
// so that shapes which fall out of use release their buffers.
//
// Thread safety: all methods are safe for concurrent use.
type Pool[T any] struct {
	mu     sync.Mutex
	shapes *lru.Cache[shapeKey, *bucket[T]]

	// maxPerShape limits how many free buffers of each shape are retained.
	// 0 means unlimited.
	maxPerShape int
}

// shapeKey identifies a bucket of identically-shaped buffers.
type shapeKey struct {
	rows int
	cols int
}

// bucket holds the free buffers for one shape.
type bucket[T any] struct {
	free [][]T
}

// PoolOption configures a Pool during creation.
type PoolOption func(*poolOptions)

type poolOptions struct {
	maxShapes   int
	maxPerShape int
}

func defaultPoolOptions() poolOptions {
	return poolOptions{
		maxShapes:   32,
		maxPerShape: 8,
	}
}

// WithMaxShapes sets how many distinct shapes the pool tracks before the
// least recently used shape's buffers are released. Must be positive.
func WithMaxShapes(n int) PoolOption {
	return func(o *poolOptions) {
		if n > 0 {
			o.maxShapes = n
		}
	}
}

// WithMaxPerShape sets how many free buffers of each shape are retained.
// 0 means unlimited (use with caution).
func WithMaxPerShape(n int) PoolOption {
	return func(o *poolOptions) {
		if n >= 0 {
			o.maxPerShape = n
		}
	}
}

// NewPool creates a grid buffer pool. With no options it tracks up to 32
// shapes and retains up to 8 free buffers per shape.
func NewPool[T any](opts ...PoolOption) *Pool[T] {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cache, err := lru.NewWithEvict(o.maxShapes, func(k shapeKey, b *bucket[T]) {
		Logger().Debug("grid: pool evicted shape bucket",
			"rows", k.rows, "cols", k.cols, "buffers", len(b.free))
	})
	if err != nil {
		// Only reachable with a non-positive size, which the options
		// above never produce.
		panic(err)
	}

	return &Pool[T]{
		shapes:      cache,
		maxPerShape: o.maxPerShape,
	}
}

// Get returns a grid of the requested shape backed by a pooled buffer,
// allocating a fresh buffer when none is free. Reused buffers are zeroed
// before being handed out.
// Returns a *ShapeError when rows or cols is not positive.
func (p *Pool[T]) Get(rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ShapeError{Rows: rows, Cols: cols}
	}

	key := shapeKey{rows: rows, cols: cols}

	p.mu.Lock()
	if b, ok := p.shapes.Get(key); ok && len(b.free) > 0 {
		data := b.free[len(b.free)-1]
		b.free = b.free[:len(b.free)-1]
		p.mu.Unlock()

		clear(data)
		Logger().Debug("grid: pool reused buffer", "rows", rows, "cols", cols)
		return &Grid[T]{data: data, rows: rows, cols: cols}, nil
	}
	p.mu.Unlock()

	return &Grid[T]{data: make([]T, rows*cols), rows: rows, cols: cols}, nil
}

// Put returns a grid's buffer to the pool for reuse. The grid and every
// view derived from it must no longer be used after Put. A nil grid is
// ignored; buffers beyond the per-shape retention limit are discarded.
func (p *Pool[T]) Put(g *Grid[T]) {
	if g == nil {
		return
	}

	key := shapeKey{rows: g.rows, cols: g.cols}

	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.shapes.Get(key)
	if !ok {
		b = &bucket[T]{}
		p.shapes.Add(key, b)
	}
	if p.maxPerShape > 0 && len(b.free) >= p.maxPerShape {
		return
	}
	b.free = append(b.free, g.data)
}

// Len returns the total number of free buffers currently retained.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, key := range p.shapes.Keys() {
		if b, ok := p.shapes.Peek(key); ok {
			n += len(b.free)
		}
	}
	return n
}

// Clear releases every retained buffer.
func (p *Pool[T]) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shapes.Purge()
}
