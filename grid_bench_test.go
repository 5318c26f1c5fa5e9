package grid

import "testing"

// BenchmarkGetVsDirectIndex compares checked element access against raw
// slice indexing.
func BenchmarkGetVsDirectIndex(b *testing.B) {
	buf := make([]float64, 1000*1000)
	g, err := New(buf, 1000, 1000)
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	b.Run("Get", func(b *testing.B) {
		var sum float64
		for i := 0; i < b.N; i++ {
			v, _ := g.Get(i%1000, (i*7)%1000)
			sum += v
		}
		_ = sum
	})

	b.Run("DirectIndex", func(b *testing.B) {
		var sum float64
		for i := 0; i < b.N; i++ {
			sum += buf[(i%1000)*1000+(i*7)%1000]
		}
		_ = sum
	})
}

func BenchmarkRow(b *testing.B) {
	g, err := New(make([]float64, 1000*1000), 1000, 1000)
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	for i := 0; i < b.N; i++ {
		row, _ := g.Row(i % 1000)
		_ = row
	}
}

func BenchmarkAll(b *testing.B) {
	g, err := New(make([]float64, 1000*1000), 1000, 1000)
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	for i := 0; i < b.N; i++ {
		var sum float64
		for _, row := range g.All() {
			sum += row[0]
		}
		_ = sum
	}
}

func BenchmarkPoolGetPut(b *testing.B) {
	p := NewPool[float64]()

	b.Run("Pooled", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			g, _ := p.Get(64, 64)
			p.Put(g)
		}
	})

	b.Run("Alloc", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			g, _ := New(make([]float64, 64*64), 64, 64)
			_ = g
		}
	})
}
