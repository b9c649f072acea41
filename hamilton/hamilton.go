package hamilton

import (
	"github.com/katalvlaran/hampath/core"
)

// walker encapsulates the mutable state of one search attempt: the
// in-progress path and the visited markers it stays consistent with.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited []bool
	path    []int
}

// Find searches g for a Hamiltonian path.
//
// Every start vertex 0..n-1 is tried in ascending order, because a path
// may exist starting only from certain vertices — especially in
// directed graphs. The first completed path is returned immediately;
// the search does not look for an optimal or canonical path, only a
// valid one. The input graph is never mutated.
//
// A path-free graph yields Result{Found: false} with a nil error; the
// only error conditions are a nil graph and context cancellation.
func Find(g *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return Result{}, ErrGraphNil
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Trivial orders: the empty path is vacuously Hamiltonian, and a
	//    singleton graph needs no edges.
	n := g.VertexCount()
	if n == 0 {
		return Result{Path: []int{}, Found: true}, nil
	}
	if n == 1 {
		return Result{Path: []int{0}, Found: true}, nil
	}

	// 4. Allocate search state once; it is reset per start vertex.
	w := &walker{
		graph:   g,
		opts:    dopts,
		visited: make([]bool, n),
		path:    make([]int, 0, n),
	}

	// 5. Try each start vertex in ascending order.
	for start := 0; start < n; start++ {
		for i := range w.visited {
			w.visited[i] = false
		}
		w.path = w.path[:0]

		w.visited[start] = true
		w.path = append(w.path, start)

		found, err := w.extend(start)
		if err != nil {
			return Result{}, err
		}
		if found {
			// Return by copy: the caller must not observe the working
			// path, and the walker must not alias the caller's result.
			out := make([]int, n)
			copy(out, w.path)

			return Result{Path: out, Found: true}, nil
		}
	}

	return Result{}, nil
}

// extend grows the path from current by one vertex at a time,
// backtracking in strict LIFO order when a branch is exhausted.
// It reports true as soon as the path covers every vertex.
func (w *walker) extend(current int) (bool, error) {
	// Cancellation check inside the recursive step bounds search time
	// for callers that set a deadline.
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	// Complete: every vertex occupies a position.
	if len(w.path) == w.graph.VertexCount() {
		return true, nil
	}

	// Explore unvisited neighbors, lowest degree first.
	for _, v := range w.graph.Neighbors(current) {
		if w.visited[v] {
			continue
		}

		// Tentative move.
		w.visited[v] = true
		w.path = append(w.path, v)

		found, err := w.extend(v)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}

		// Undo and try the next neighbor.
		w.path = w.path[:len(w.path)-1]
		w.visited[v] = false
	}

	// All branches from current tried and failed.
	return false, nil
}
