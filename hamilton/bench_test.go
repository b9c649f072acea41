package hamilton_test

import (
	"testing"

	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/hamilton"
)

// BenchmarkFind_Chain1000 measures search on a directed chain of 1000
// vertices: the search from start 0 succeeds on the first descent, so
// this exercises the recursion and visited bookkeeping without
// combinatorial blowup.
func BenchmarkFind_Chain1000(b *testing.B) {
	g := core.NewGraph(1000, core.WithDirected(true))
	for i := 0; i+1 < 1000; i++ {
		g.AddEdge(i, i+1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hamilton.Find(g)
	}
}

// BenchmarkFind_Complete9 measures search on K_9, where the
// low-degree-first heuristic degenerates (all degrees equal) and the
// cost is dominated by neighbor ordering at each level.
func BenchmarkFind_Complete9(b *testing.B) {
	g := core.NewGraph(9)
	for u := 0; u < 9; u++ {
		for v := u + 1; v < 9; v++ {
			g.AddEdge(u, v)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hamilton.Find(g)
	}
}

// BenchmarkIsHamiltonianPath_1000 measures validation of a long valid
// candidate.
func BenchmarkIsHamiltonianPath_1000(b *testing.B) {
	g := core.NewGraph(1000, core.WithDirected(true))
	path := make([]int, 1000)
	for i := 0; i < 1000; i++ {
		path[i] = i
		if i+1 < 1000 {
			g.AddEdge(i, i+1)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = hamilton.IsHamiltonianPath(g, path)
	}
}
