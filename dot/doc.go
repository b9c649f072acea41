// Package dot renders a core.Graph as a Graphviz diagram, optionally
// highlighting a Hamiltonian path.
//
// ToDOT emits Graphviz DOT text; RenderSVG and RenderPNG rasterize it
// via the embedded Graphviz engine (goccy/go-graphviz, no external
// binary required). Path edges and vertices are drawn in red so a
// found path stands out against the remaining edges; passing a nil
// path renders the bare graph.
//
// Errors: ToDOT is total; the render functions return wrapped engine
// errors (malformed DOT cannot occur for generated input, but engine
// initialization can fail).
package dot
