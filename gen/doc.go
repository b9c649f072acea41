// Package gen builds canonical graph topologies over the hampath core:
// complete graphs, paths, cycles, stars, and Erdős–Rényi random graphs.
//
// What:
//
//   - Complete(n): K_n — every pair connected (both directions when the
//     graph is directed).
//   - PathGraph(n): P_n — edges (i, i+1); a directed P_n has exactly one
//     Hamiltonian path, an undirected one has exactly two.
//   - Cycle(n): C_n — P_n closed with the edge (n-1, 0).
//   - Star(n): hub 0 connected to every leaf; has no Hamiltonian path
//     for n ≥ 4, which makes it a handy negative fixture.
//   - RandomSparse(n, p, seed): each eligible pair included independently
//     with probability p.
//
// Why:
//   - Tests, benchmarks, and the CLI demo command need deterministic
//     graphs with known Hamiltonian structure; hand-building them at
//     every call site invites drift.
//
// Determinism:
//   - Vertex and edge emission follow stable ascending index order.
//   - RandomSparse derives its RNG from the seed alone (seed 0 maps to
//     a fixed default), so the same inputs always yield the same graph.
//
// Errors:
//
//   - ErrTooFewVertices      n below the topology's minimum
//   - ErrInvalidProbability  p outside [0, 1]
package gen
