package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/sketchwall/sketchwall/pkg/canvas"
)

// Name identifies a rendering style.
type Name string

// The three rendering styles.
const (
	NameRough Name = "rough"
	NameClean Name = "clean"
	NamePro   Name = "pro"
)

// Names lists the style identifiers accepted in render options.
var Names = []Name{NameRough, NameClean, NamePro}

// Valid reports whether n is a known style.
func (n Name) Valid() bool {
	return n == NameRough || n == NameClean || n == NamePro
}

// Style defines one visual treatment. Implementations control the shared
// defs block, the background, per-shape markup, and any trailing overlay.
type Style interface {
	// RenderDefs writes SVG <defs> content shared by the shape set.
	RenderDefs(buf *bytes.Buffer, shapes []canvas.Shape)
	// RenderBackground writes the background fill covering bg.
	RenderBackground(buf *bytes.Buffer, bg canvas.Bounds, explicit string)
	// RenderShape writes the SVG for a single shape.
	RenderShape(buf *bytes.Buffer, s *canvas.Shape)
	// RenderOverlay writes decoration drawn after all shapes.
	RenderOverlay(buf *bytes.Buffer, viewport canvas.Bounds)
}

// For returns the style named by n. Rough carries the jitter stream, so
// equal seeds reproduce equal documents. Unknown names fall back to
// rough.
func For(n Name, roughness float64, seed int64, dark bool) Style {
	switch n {
	case NameClean:
		return NewClean(dark)
	case NamePro:
		return NewPro()
	default:
		return NewRough(roughness, seed, dark)
	}
}

// Ink colors and backgrounds for the rough and clean styles.
const (
	inkLight = "#1a1c1e"
	inkDark  = "#e8eaed"
	bgLight  = "#ffffff"
	bgDark   = "#121417"
)

func ink(dark bool) string {
	if dark {
		return inkDark
	}
	return inkLight
}

// shapeStroke resolves a shape's stroke color, defaulting to the ink for
// the active color scheme.
func shapeStroke(s *canvas.Shape, dark bool) string {
	if s.Stroke != "" {
		return s.Stroke
	}
	return ink(dark)
}

func defaultBackground(dark bool) string {
	if dark {
		return bgDark
	}
	return bgLight
}

// EscapeXML escapes text for use in attribute values and element content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func openGroup(buf *bytes.Buffer, s *canvas.Shape) {
	fmt.Fprintf(buf, `  <g id="shape-%s"`, EscapeXML(s.ID))
	if a := s.Alpha(); a < 1 {
		fmt.Fprintf(buf, ` opacity="%.2f"`, a)
	}
	buf.WriteString(">\n")
}

func closeGroup(buf *bytes.Buffer) {
	buf.WriteString("  </g>\n")
}

func dashArray(lw float64) string {
	return fmt.Sprintf("%.0f %.0f", lw*4, lw*3)
}

// pathPointAt resolves a label position fraction against a point
// sequence. Two points interpolate linearly. An odd-length sequence at
// exactly 0.5 snaps to the literal middle point. Everything else
// interpolates between the two points bracketing the fractional index.
func pathPointAt(points []canvas.Point, fraction float64) canvas.Point {
	n := len(points)
	if n == 1 {
		return points[0]
	}
	if n == 2 {
		return lerp(points[0], points[1], fraction)
	}
	if n%2 == 1 && fraction == 0.5 {
		return points[n/2]
	}
	idx := fraction * float64(n-1)
	lo := int(math.Floor(idx))
	if lo >= n-1 {
		lo = n - 2
	}
	return lerp(points[lo], points[lo+1], idx-float64(lo))
}

func lerp(a, b canvas.Point, t float64) canvas.Point {
	return canvas.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// headingAngle is the direction into the last point of a sequence.
func headingAngle(points []canvas.Point) float64 {
	a, b := points[len(points)-2], points[len(points)-1]
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// tailAngle is the direction into the first point of a sequence.
func tailAngle(points []canvas.Point) float64 {
	return math.Atan2(points[0].Y-points[1].Y, points[0].X-points[1].X)
}

func writeBackgroundRect(buf *bytes.Buffer, bg canvas.Bounds, color string) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		bg.MinX, bg.MinY, bg.Width(), bg.Height(), color)
}

func writeFillPath(buf *bytes.Buffer, d, fill string) {
	fmt.Fprintf(buf, `    <path d="%s" fill="%s" fill-opacity="0.30" stroke="none"/>`+"\n", d, fill)
}

func writeStrokePath(buf *bytes.Buffer, d, stroke string, lw float64, dashed bool) {
	fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round"`,
		d, stroke, lw)
	if dashed {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, dashArray(lw))
	}
	buf.WriteString("/>\n")
}

func writeFilledPath(buf *bytes.Buffer, d, fill string) {
	fmt.Fprintf(buf, `    <path d="%s" fill="%s" stroke="none"/>`+"\n", d, fill)
}

// writeLabel emits a centered multi-line text block at (cx, cy). Lines
// are spaced at the shared line height and the block is centered
// vertically on cy.
func writeLabel(buf *bytes.Buffer, label string, cx, cy, size float64, family, color string) {
	if label == "" {
		return
	}
	lines := strings.Split(label, "\n")
	lineH := size * fontLineHeight
	startY := cy - lineH*float64(len(lines)-1)/2
	fmt.Fprintf(buf, `    <text font-family="%s" font-size="%.2f" fill="%s" text-anchor="middle" dominant-baseline="middle">`,
		family, size, color)
	for i, ln := range lines {
		fmt.Fprintf(buf, `<tspan x="%.2f" y="%.2f">%s</tspan>`,
			cx, startY+lineH*float64(i), EscapeXML(ln))
	}
	buf.WriteString("</text>\n")
}

// writeBoxLabel fits and centers a box shape's label.
func writeBoxLabel(buf *bytes.Buffer, s *canvas.Shape, family, color string) {
	if s.Label == "" {
		return
	}
	size := FitFontSize(s.Label, s.Width, s.Height, fontSizeBase)
	writeLabel(buf, s.Label, s.X+s.Width/2, s.Y+s.Height/2, size, family, color)
}

const pathLabelSize = 14.0

// writePathLabel places a line or arrow label at its position fraction
// along the point sequence, then applies the pixel offset.
func writePathLabel(buf *bytes.Buffer, s *canvas.Shape, family, color string) {
	if s.Label == "" || len(s.Points) < 2 {
		return
	}
	p := pathPointAt(s.Points, s.LabelFraction())
	if s.LabelOffset != nil {
		p.X += s.LabelOffset.X
		p.Y += s.LabelOffset.Y
	}
	writeLabel(buf, s.Label, p.X, p.Y, pathLabelSize, family, color)
}

// writeTextShape emits a free-standing text shape anchored at its
// top-left corner, one line per tspan.
func writeTextShape(buf *bytes.Buffer, s *canvas.Shape, family, color string) {
	if s.Label == "" {
		return
	}
	size := s.FontSize
	if size <= 0 {
		size = textDefaultSize
	}
	lineH := size * fontLineHeight
	fmt.Fprintf(buf, `    <text font-family="%s" font-size="%.2f" fill="%s" dominant-baseline="hanging">`,
		family, size, color)
	for i, ln := range strings.Split(s.Label, "\n") {
		fmt.Fprintf(buf, `<tspan x="%.2f" y="%.2f">%s</tspan>`,
			s.X, s.Y+lineH*float64(i), EscapeXML(ln))
	}
	buf.WriteString("</text>\n")
}
