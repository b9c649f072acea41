// Package graphfile reads and writes the plain-text graph format
// consumed by the hampath CLI.
//
// Format:
//
//	n m        header: vertex count and edge count
//	u v        one line per edge, m lines
//
// Blank lines between edges are skipped, and lines beyond the declared
// edge count are ignored. Directedness is not part of the file; the
// caller supplies it (typically from a CLI flag) via core.GraphOption.
//
// Error handling: this layer surfaces malformed input as distinct error
// categories before any Graph is constructed — the core itself rejects
// nothing loudly. Edge lines whose endpoints are out of range or form a
// self-loop are not format errors; they parse fine and are silently
// dropped by core.AddEdge.
//
// Errors:
//
//   - ErrEmptyInput  input has no header line
//   - ErrBadHeader   header is not two non-negative integers
//   - ErrBadEdge     an edge line is not two integers
package graphfile
