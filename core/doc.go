// Package core defines the central Graph type used by all hampath
// algorithms: a simple graph over a fixed set of integer vertices.
//
// What:
//
//   - Graph: holds a vertex count fixed at construction, a directedness
//     flag, and one adjacency set per vertex. Vertices are identified by
//     dense integer indices in [0, n).
//   - AddEdge(u, v): inserts an edge; self-loops and out-of-range
//     endpoints are silently ignored, and duplicate insertions are
//     absorbed by the underlying sets (idempotent).
//   - Neighbors(u): returns u's neighbors ordered ascending by each
//     neighbor's own degree, ties broken by ascending index. Trying
//     low-degree vertices first is a classic branch-reduction heuristic
//     for backtracking searches: a low-degree vertex has few remaining
//     chances to be reached, so it is committed early.
//
// Why:
//   - Provide a minimal, allocation-light substrate for exhaustive path
//     search (see the hamilton package), graph generators (gen), the
//     text file format (graphfile), and DOT plotting (dot).
//
// Concurrency:
//   - Construction (NewGraph + AddEdge calls) must happen on a single
//     goroutine. Once construction completes the Graph is never mutated
//     by any algorithm in this module, so concurrent readers need no
//     locking.
//
// Complexity:
//
//   - AddEdge:     O(1)
//   - HasEdge:     O(1)
//   - Degree:      O(1)
//   - Neighbors:   O(d log d) for degree d of u (sorted copy)
//
// Errors:
//   - None. Construction is infallible (n == 0 yields a valid empty
//     graph) and edge rejection is a silent no-op by design: the file
//     format layer is responsible for surfacing malformed input before a
//     Graph is ever built.
package core
