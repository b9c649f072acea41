// Package hamilton finds a Hamiltonian path — a simple path visiting
// every vertex exactly once — in a directed or undirected core.Graph,
// using exhaustive backtracking with a degree-based ordering heuristic.
//
// What:
//
//   - Find(g, opts...): tries every start vertex in ascending order and
//     extends the path recursively, backtracking on dead ends. The
//     first complete path wins; remaining candidates are not explored.
//     Supports cancellation via context.Context.
//   - IsHamiltonianPath(g, path): validates an externally constructed
//     candidate sequence, including adversarial/malformed ones, and
//     never fails — any violation simply reports false.
//
// Why:
//   - The Hamiltonian path problem is NP-complete; no polynomial
//     algorithm is known. Exhaustive backtracking is exact and, paired
//     with core.Neighbors' low-degree-first ordering, prunes fruitless
//     subtrees early in practice. The heuristic affects only expected
//     running time, never correctness.
//
// Key Types:
//
//   - Result: tagged outcome — Found reports whether Path holds a
//     Hamiltonian path. A path-free graph is a normal outcome, not an
//     error.
//   - Option / Options: functional options (WithContext).
//
// Complexity:
//
//   - Find:               Time O(n!) worst case, Memory O(n)
//     (recursion depth and visited markers are both bounded by n;
//     revisiting is structurally prevented, so no extra cycle guard
//     is needed)
//   - IsHamiltonianPath:  Time O(n), Memory O(n)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - context.Canceled / context.DeadlineExceeded
//     search canceled via WithContext
package hamilton
