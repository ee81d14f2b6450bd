package graphlink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes shape ids, kinds and sizes in node labels.
	// When false, only the display label is shown.
	Detailed bool
}

// ToDOT converts a board's connectivity to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Dashed shapes and arrows keep their dashed outlines, and filled shapes
// keep their fill color, so the diagram stays recognizable next to the
// canvas rendering.
func ToDOT(board *canvas.Board, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph board {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	if board == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	nodes := make(map[string]bool)
	for i := range board.Shapes {
		s := &board.Shapes[i]
		if !isNode(s.Type) {
			continue
		}
		nodes[s.ID] = true
		label := nodeLabel(s, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", s.ID, strings.Join(nodeAttrs(s, label), ", "))
	}

	buf.WriteString("\n")
	for i := range board.Shapes {
		s := &board.Shapes[i]
		if s.Type != canvas.TypeArrow || s.Start == nil || s.End == nil {
			continue
		}
		if !nodes[s.Start.TargetID] || !nodes[s.End.TargetID] {
			continue
		}
		attrs := edgeAttrs(s)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", s.Start.TargetID, s.End.TargetID)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", s.Start.TargetID, s.End.TargetID, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// isNode reports whether a shape kind participates in the graph.
func isNode(t canvas.ShapeType) bool {
	return t.BoxLike() || t == canvas.TypeText
}

func nodeLabel(s *canvas.Shape, detailed bool) string {
	label := s.Label
	if label == "" {
		label = s.ID
	}
	if !detailed {
		return label
	}

	parts := []string{
		fmt.Sprintf("id: %s", s.ID),
		fmt.Sprintf("kind: %s", s.Type),
	}
	if s.Type.BoxLike() {
		parts = append(parts, fmt.Sprintf("size: %.0fx%.0f", s.Width, s.Height))
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func nodeAttrs(s *canvas.Shape, label string) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("shape=%s", dotShape(s.Type)),
	}

	style := []string{}
	if s.Type == canvas.TypeCallout {
		style = append(style, "rounded")
	}
	if s.Fill != "" {
		style = append(style, "filled")
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", s.Fill))
	}
	if s.Dashed {
		style = append(style, "dashed")
	}
	if len(style) > 0 {
		attrs = append(attrs, fmt.Sprintf("style=%q", strings.Join(style, ",")))
	}
	if s.Stroke != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", s.Stroke))
	}
	return attrs
}

func edgeAttrs(s *canvas.Shape) []string {
	var attrs []string
	if s.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", s.Label))
	}
	if s.Dashed {
		attrs = append(attrs, "style=dashed")
	}
	if s.Stroke != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", s.Stroke))
	}
	if head := dotArrowhead(s.Head()); head != "vee" {
		attrs = append(attrs, fmt.Sprintf("arrowhead=%s", head))
	}
	if tail := dotArrowhead(s.Tail()); tail != "none" {
		attrs = append(attrs, fmt.Sprintf("arrowtail=%s", tail), "dir=both")
	}
	return attrs
}

// dotShape maps a shape kind onto the closest Graphviz node shape.
func dotShape(t canvas.ShapeType) string {
	switch t {
	case canvas.TypeEllipse, canvas.TypeCloud:
		return "ellipse"
	case canvas.TypeDiamond:
		return "diamond"
	case canvas.TypeHexagon:
		return "hexagon"
	case canvas.TypeCylinder:
		return "cylinder"
	case canvas.TypeDocument:
		return "note"
	case canvas.TypePerson:
		return "oval"
	case canvas.TypeText:
		return "plaintext"
	default:
		return "box"
	}
}

// dotArrowhead maps an endpoint decoration onto a Graphviz arrow type.
// The open V is Graphviz's "vee"; the default head when unset.
func dotArrowhead(h canvas.HeadStyle) string {
	switch h {
	case canvas.HeadTriangle:
		return "normal"
	case canvas.HeadDiamond:
		return "diamond"
	case canvas.HeadCircle:
		return "dot"
	case canvas.HeadNone:
		return "none"
	default:
		return "vee"
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or saving.
func RenderSVG(dot string) ([]byte, error) {
	out, err := renderAs(graphviz.SVG, dot)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz's built-in
// rasterizer.
func RenderPNG(dot string) ([]byte, error) {
	return renderAs(graphviz.PNG, dot)
}

func renderAs(format graphviz.Format, dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "render graph")
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg tag so the document scales
// to its container instead of carrying fixed pt dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
