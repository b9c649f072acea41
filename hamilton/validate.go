package hamilton

import (
	"github.com/katalvlaran/hampath/core"
)

// IsHamiltonianPath reports whether path is a valid Hamiltonian path in
// g. It is independent of Find and accepts externally constructed
// candidates, including malformed ones; any violation reports false,
// never an error.
//
// All three rules must hold:
//   - len(path) equals the vertex count;
//   - path contains every vertex index exactly once (no repeats,
//     omissions, or out-of-range values);
//   - every consecutive pair is an edge, direction-sensitive for
//     directed graphs.
func IsHamiltonianPath(g *core.Graph, path []int) bool {
	if g == nil {
		return false
	}

	// 1. Exact length.
	n := g.VertexCount()
	if len(path) != n {
		return false
	}

	// 2. Exact vertex set {0..n-1}.
	seen := make([]bool, n)
	for _, v := range path {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	// 3. Consecutive edges exist; only u→v is checked, so direction
	//    matters in directed graphs.
	for i := 0; i+1 < len(path); i++ {
		if !g.HasEdge(path[i], path[i+1]) {
			return false
		}
	}

	return true
}
