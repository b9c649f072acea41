package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/hampath/core"
)

// ToDOT converts g to Graphviz DOT format. When path is non-nil, the
// vertices and consecutive edges of the path are highlighted in red.
// The resulting string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *core.Graph, path []int) string {
	edgeOp := "--"
	var buf bytes.Buffer
	if g.Directed() {
		buf.WriteString("digraph G {\n")
		edgeOp = "->"
	} else {
		buf.WriteString("graph G {\n")
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white];\n\n")

	onPath := make(map[int]bool, len(path))
	for _, v := range path {
		onPath[v] = true
	}
	pathEdges := pathEdgeSet(g, path)

	for v := 0; v < g.VertexCount(); v++ {
		if onPath[v] {
			fmt.Fprintf(&buf, "  %d [fillcolor=lightcoral];\n", v)
		} else {
			fmt.Fprintf(&buf, "  %d;\n", v)
		}
	}

	buf.WriteString("\n")
	for u, row := range g.AdjacencyList() {
		for _, v := range row {
			// Each undirected edge appears twice in the adjacency; emit once.
			if !g.Directed() && v < u {
				continue
			}
			if pathEdges[[2]int{u, v}] {
				fmt.Fprintf(&buf, "  %d %s %d [color=red, penwidth=2.0];\n", u, edgeOp, v)
			} else {
				fmt.Fprintf(&buf, "  %d %s %d;\n", u, edgeOp, v)
			}
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

// pathEdgeSet collects the consecutive pairs of path keyed the way the
// emission loop will look them up: as stored (u, v) for directed
// graphs, normalized to u < v for undirected ones.
func pathEdgeSet(g *core.Graph, path []int) map[[2]int]bool {
	edges := make(map[[2]int]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if !g.Directed() && v < u {
			u, v = v, u
		}
		edges[[2]int{u, v}] = true
	}

	return edges
}

// RenderSVG renders DOT text to SVG bytes.
func RenderSVG(dotText string) ([]byte, error) {
	return render(dotText, graphviz.SVG)
}

// RenderPNG renders DOT text to PNG bytes.
func RenderPNG(dotText string) ([]byte, error) {
	return render(dotText, graphviz.PNG)
}

func render(dotText string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("dot: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dotText))
	if err != nil {
		return nil, fmt.Errorf("dot: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, format, &buf); err != nil {
		return nil, fmt.Errorf("dot: render: %w", err)
	}

	return buf.Bytes(), nil
}
