// Package graphlink renders a board's connectivity as a node-link diagram.
//
// # Overview
//
// This package extracts the implicit graph from a board (shapes as nodes,
// bound arrows as edges) and lays it out with Graphviz. It's an alternative
// to the freehand canvas rendering for cases where an auto-laid-out
// architecture diagram is preferred, or where only the topology matters.
//
// # Usage
//
// Convert a board to DOT format, then render to SVG:
//
//	dot := graphlink.ToDOT(board, graphlink.Options{Detailed: false})
//	svg, err := graphlink.RenderSVG(dot)
//
// For PNG output:
//
//	png, err := graphlink.RenderPNG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the shape id, kind and size.
//
// # Graph Extraction
//
// Box-like and text shapes become nodes; arrows whose start and end are
// both bound to a node become edges. Unbound or half-bound arrows and
// plain lines carry no topology and are skipped. Shape kinds map onto the
// closest Graphviz node shape (cylinder stays a cylinder, document becomes
// a note, and so on), so the diagram keeps the board's visual vocabulary.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses left-to-right layout (rankdir=LR), the usual
// reading direction for architecture sketches.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering. No external Graphviz installation is required.
package graphlink
