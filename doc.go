// Package hampath finds Hamiltonian paths — simple paths visiting every
// vertex of a graph exactly once — using exhaustive backtracking with a
// degree-based branch-reduction heuristic.
//
// The module is organized under small, focused subpackages:
//
//	core/       — the Graph type: fixed vertex count, directedness, adjacency sets
//	hamilton/   — backtracking path search and candidate-path validation
//	gen/        — deterministic graph generators (complete, path, cycle, star, random)
//	graphfile/  — the "n m" + edge-lines text format
//	dot/        — Graphviz DOT emission and SVG/PNG rendering with path highlighting
//	cmd/hampath — the CLI: find, render, demo
//
// Quick example:
//
//	g := core.NewGraph(3, core.WithDirected(true))
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	res, _ := hamilton.Find(g)   // res.Path == [0 1 2], res.Found == true
//
// The problem is NP-complete: worst-case running time is factorial in
// the vertex count. The low-degree-first neighbor ordering only trims
// the expected search tree; it never affects correctness.
package hampath
