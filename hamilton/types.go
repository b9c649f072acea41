// Package hamilton defines types and options for Hamiltonian path search.
package hamilton

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Find.
var ErrGraphNil = errors.New("hamilton: graph is nil")

// Result holds the outcome of a Hamiltonian path search.
//
// Found distinguishes "no path exists" (a normal, expected outcome for
// many graphs) from a successful search; when Found is false, Path is
// nil. When Found is true, Path holds every vertex index exactly once
// and is owned by the caller — the search keeps no reference to it.
type Result struct {
	// Path is the ordered vertex sequence, length VertexCount.
	Path []int

	// Found reports whether a Hamiltonian path exists.
	Found bool
}

// Option configures optional behavior of Find.
type Option func(*Options)

// Options holds configurable parameters for Find.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked inside the recursive step, so a deadline bounds search
	// time without altering backtrack semantics.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
