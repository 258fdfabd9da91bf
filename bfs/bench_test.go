package bfs_test

import (
	"fmt"
	"testing"

	"github.com/quivergraph/quiver/bfs"
	"github.com/quivergraph/quiver/core"
)

// chainGraph builds a linear chain v0-v1-...-vn.
func chainGraph(n int) *core.ListGraph[string] {
	g := core.NewListGraph[string]()
	_ = g.AddVertex("v0")
	for i := 1; i <= n; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i))
		_ = g.AddEdge(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i))
	}
	return g
}

// BenchmarkRun_Chain measures full traversal of a 10000-edge chain.
func BenchmarkRun_Chain(b *testing.B) {
	const n = 10000
	g := chainGraph(n)

	b.ReportAllocs()
	b.SetBytes(int64(2*n + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Run(g, "v0")
	}
}

// BenchmarkRun_Grid measures traversal of a 100x100 lattice.
func BenchmarkRun_Grid(b *testing.B) {
	const m = 100
	g := core.NewListGraph[string]()
	id := func(i, j int) string { return fmt.Sprintf("%d_%d", i, j) }
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			_ = g.AddVertex(id(i, j))
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i+1 < m {
				_ = g.AddEdge(id(i, j), id(i+1, j))
			}
			if j+1 < m {
				_ = g.AddEdge(id(i, j), id(i, j+1))
			}
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(m*m + 2*m*(m-1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Run(g, "0_0")
	}
}

// BenchmarkRun_HookOverhead compares traversal with and without an
// OnVisit hook on a 1000-edge chain.
func BenchmarkRun_HookOverhead(b *testing.B) {
	const n = 1000
	g := chainGraph(n)

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.Run(g, "v0")
		}
	})

	b.Run("VisitHook", func(b *testing.B) {
		count := 0
		hook := func(_ string, _ int) error {
			count++
			return nil
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.Run(g, "v0", bfs.WithOnVisit(hook))
		}
	})
}
