package core

import "sort"

// AddEdge inserts the edge u→v, and v→u as well when the graph is
// undirected. Self-loops (u == v) and out-of-range endpoints are
// silently ignored. Adding the same edge twice has no additional
// effect because adjacency is a set.
func (g *Graph) AddEdge(u, v int) {
	// 1. Reject self-loops.
	if u == v {
		return
	}

	// 2. Reject out-of-range endpoints.
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return
	}

	// 3. Insert, mirroring for undirected graphs.
	g.adj[u][v] = struct{}{}
	if !g.directed {
		g.adj[v][u] = struct{}{}
	}
}

// HasEdge reports whether the edge u→v exists. For undirected graphs
// the mirrored entry makes this symmetric. Out-of-range endpoints
// report false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree reports the size of u's adjacency set (out-degree for
// directed graphs). Out-of-range u reports 0.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.n {
		return 0
	}

	return len(g.adj[u])
}

// Neighbors returns u's neighbors ordered ascending by each neighbor's
// own degree, ties broken by ascending vertex index. The ordering is
// deterministic, which matters because path search is greedy
// first-found-wins rather than exhaustive-ordered. Out-of-range u
// yields an empty slice.
//
// Degrees are read from the full adjacency sets, never from a
// decremented remaining-degree count; since adjacency only grows, the
// ordering is stable for the life of the graph.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.n {
		return nil
	}

	nbs := make([]int, 0, len(g.adj[u]))
	for v := range g.adj[u] {
		nbs = append(nbs, v)
	}
	sort.Slice(nbs, func(i, j int) bool {
		di, dj := len(g.adj[nbs[i]]), len(g.adj[nbs[j]])
		if di != dj {
			return di < dj
		}

		return nbs[i] < nbs[j]
	})

	return nbs
}

// AdjacencyList returns a copy of the adjacency relation with each
// neighbor slice sorted ascending by vertex index. Intended for
// serialization and rendering, where index order reads better than the
// search heuristic's degree order.
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.n)
	for u := 0; u < g.n; u++ {
		row := make([]int, 0, len(g.adj[u]))
		for v := range g.adj[u] {
			row = append(row, v)
		}
		sort.Ints(row)
		out[u] = row
	}

	return out
}

// EdgeCount reports the number of distinct edges. Undirected edges are
// counted once even though they occupy two adjacency entries.
func (g *Graph) EdgeCount() int {
	total := 0
	for u := 0; u < g.n; u++ {
		total += len(g.adj[u])
	}
	if !g.directed {
		total /= 2
	}

	return total
}
