package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hampath/core"
)

// Sentinel errors for generator parameter validation.
var (
	// ErrTooFewVertices indicates n is below the requested topology's minimum.
	ErrTooFewVertices = errors.New("gen: too few vertices")
	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("gen: probability not in [0,1]")
)

// Topology minima; mirrors the usual graph-theoretic definitions.
const (
	minCompleteNodes = 1
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minRandomNodes   = 1
)

// defaultSeed is the fixed seed substituted when callers pass seed == 0,
// keeping the zero value reproducible.
const defaultSeed int64 = 1

// Complete builds the complete graph K_n. In the directed case every
// ordered pair (i, j), i ≠ j, is an edge.
func Complete(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	g := core.NewGraph(n, opts...)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(u, v)
			if g.Directed() {
				g.AddEdge(v, u)
			}
		}
	}

	return g, nil
}

// PathGraph builds the simple path P_n with edges (i, i+1) in
// ascending order.
func PathGraph(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("PathGraph: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	g := core.NewGraph(n, opts...)
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1)
	}

	return g, nil
}

// Cycle builds the cycle C_n: P_n closed with the edge (n-1, 0).
func Cycle(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	g, err := PathGraph(n, opts...)
	if err != nil {
		return nil, err
	}
	g.AddEdge(n-1, 0)

	return g, nil
}

// Star builds a star with hub 0 and leaves 1..n-1. Directed stars point
// from the hub outward.
func Star(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}

	g := core.NewGraph(n, opts...)
	for leaf := 1; leaf < n; leaf++ {
		g.AddEdge(0, leaf)
	}

	return g, nil
}

// RandomSparse samples an Erdős–Rényi-like graph over n vertices with
// independent edge probability p. Trial order is stable (i ascending,
// then j), so a fixed seed reproduces the same graph. Self-loops are
// never sampled.
func RandomSparse(n int, p float64, seed int64, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
	}

	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	g := core.NewGraph(n, opts...)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// Undirected graphs sample each unordered pair once.
			if !g.Directed() && j < i {
				continue
			}
			if rng.Float64() < p {
				g.AddEdge(i, j)
			}
		}
	}

	return g, nil
}
