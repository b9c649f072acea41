package graphfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hampath/core"
)

// Sentinel errors for graphfile operations.
var (
	// ErrEmptyInput indicates the input contained no header line.
	ErrEmptyInput = errors.New("graphfile: empty input")
	// ErrBadHeader indicates the first line is not "n m" with non-negative integers.
	ErrBadHeader = errors.New("graphfile: header must be two non-negative integers: n m")
	// ErrBadEdge indicates an edge line is not "u v" with two integers.
	ErrBadEdge = errors.New("graphfile: edge line must be two integers: u v")
)

// Read parses a graph from r. Graph options (most usefully
// core.WithDirected) are forwarded to core.NewGraph.
//
// The header declares n vertices and m edges; up to m following
// non-blank lines are parsed as edges. Fewer edge lines than declared
// is tolerated, and anything after the m-th edge is ignored.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	sc := bufio.NewScanner(r)

	// 1. Header line.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphfile: read header: %w", err)
		}

		return nil, ErrEmptyInput
	}
	n, m, err := parsePair(sc.Text())
	if err != nil || n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, strings.TrimSpace(sc.Text()))
	}

	g := core.NewGraph(n, opts...)

	// 2. Edge lines. Invalid endpoints are dropped silently by AddEdge;
	//    only unparseable lines are format errors.
	parsed := 0
	line := 1
	for parsed < m && sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		u, v, perr := parsePair(text)
		if perr != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadEdge, line, text)
		}
		g.AddEdge(u, v)
		parsed++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("graphfile: read edges: %w", err)
	}

	return g, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Write serializes g to w in the same format Read accepts. Edges are
// emitted in ascending (u, v) order; each undirected edge appears once
// with u < v, so Read(Write(g)) reproduces g.
func Write(w io.Writer, g *core.Graph) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("graphfile: write header: %w", err)
	}

	for u, row := range g.AdjacencyList() {
		for _, v := range row {
			if !g.Directed() && v < u {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d %d\n", u, v); err != nil {
				return fmt.Errorf("graphfile: write edge %d %d: %w", u, v, err)
			}
		}
	}

	return nil
}

// parsePair splits s into exactly two integers.
func parsePair(s string) (int, int, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}
