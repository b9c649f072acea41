// Package core declares the Graph type and its construction options.
package core

// Graph is a simple graph over integer vertices 0..n-1.
//
// The vertex count and directedness are fixed at construction. Adjacency
// is stored as one set per vertex, so duplicate edges collapse and
// membership checks are O(1). There is no edge removal: adjacency only
// grows, which keeps every vertex degree stable once construction ends.
type Graph struct {
	// n is the number of vertices, fixed at construction.
	n int

	// directed selects one-way edge insertion; undirected graphs mirror
	// every inserted edge.
	directed bool

	// adj[u] is the set of neighbors reachable from u.
	adj []map[int]struct{}
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets the graph's directedness (true = directed edges,
// false = undirected). The default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// NewGraph allocates a graph with n empty adjacency sets.
// A negative n is treated as zero; n == 0 is a valid empty graph.
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}

	g := &Graph{
		n:   n,
		adj: make([]map[int]struct{}, n),
	}
	for i := 0; i < n; i++ {
		g.adj[i] = make(map[int]struct{})
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// VertexCount reports the number of vertices fixed at construction.
func (g *Graph) VertexCount() int { return g.n }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
