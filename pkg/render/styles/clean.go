package styles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/render/rough"
)

const cleanCornerRadius = 4.0

// Clean renders exact vector primitives. It never touches the jitter
// stream, so its output is independent of seed and roughness.
type Clean struct {
	dark bool
}

// NewClean returns the crisp style for the given color scheme.
func NewClean(dark bool) *Clean {
	return &Clean{dark: dark}
}

// RenderDefs writes nothing: the clean style needs no shared resources.
func (c *Clean) RenderDefs(buf *bytes.Buffer, shapes []canvas.Shape) {}

// RenderBackground fills the overscanned canvas with the board color or
// the plain default for the active color scheme.
func (c *Clean) RenderBackground(buf *bytes.Buffer, bg canvas.Bounds, explicit string) {
	color := explicit
	if color == "" {
		color = defaultBackground(c.dark)
	}
	writeBackgroundRect(buf, bg, color)
}

// RenderOverlay writes nothing.
func (c *Clean) RenderOverlay(buf *bytes.Buffer, viewport canvas.Bounds) {}

// RenderShape dispatches on the shape kind. Unknown kinds and path
// shapes with fewer than two points contribute no output.
func (c *Clean) RenderShape(buf *bytes.Buffer, s *canvas.Shape) {
	switch s.Type {
	case canvas.TypeRectangle:
		c.renderRectangle(buf, s)
	case canvas.TypeEllipse:
		c.renderEllipse(buf, s)
	case canvas.TypeDiamond:
		c.renderPolygonShape(buf, s, diamondPoints(s))
	case canvas.TypeHexagon:
		c.renderPolygonShape(buf, s, hexagonPoints(s))
	case canvas.TypeCylinder:
		c.renderCylinder(buf, s)
	case canvas.TypeCloud:
		c.renderPathShape(buf, s, cloudPath(s, cleanCloudSizes()))
	case canvas.TypeDocument:
		c.renderPathShape(buf, s, documentPath(documentParts(s)))
	case canvas.TypePerson:
		c.renderPerson(buf, s)
	case canvas.TypeCallout:
		c.renderCallout(buf, s)
	case canvas.TypeLine:
		c.renderLine(buf, s)
	case canvas.TypeArrow:
		c.renderArrow(buf, s)
	case canvas.TypeText:
		c.renderText(buf, s)
	}
}

// cleanCloudSizes returns uniform bump multipliers: exact geometry, no
// seed dependence.
func cleanCloudSizes() []float64 {
	sizes := make([]float64, cloudBumps)
	for i := range sizes {
		sizes[i] = 1
	}
	return sizes
}

// writePaint appends fill, stroke, and dash attributes to an open element
// tag and closes it.
func (c *Clean) writePaint(buf *bytes.Buffer, s *canvas.Shape) {
	if s.Fill != "" {
		fmt.Fprintf(buf, ` fill="%s" fill-opacity="0.30"`, s.Fill)
	} else {
		buf.WriteString(` fill="none"`)
	}
	fmt.Fprintf(buf, ` stroke="%s" stroke-width="%.2f"`, shapeStroke(s, c.dark), s.LineWidth())
	if s.Dashed {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, dashArray(s.LineWidth()))
	}
	buf.WriteString("/>\n")
}

func pointsAttr(points []canvas.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func (c *Clean) renderRectangle(buf *bytes.Buffer, s *canvas.Shape) {
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f"`,
		s.X, s.Y, s.Width, s.Height, cleanCornerRadius)
	c.writePaint(buf, s)
	writeBoxLabel(buf, s, familyClean, shapeStroke(s, c.dark))
	closeGroup(buf)
}

func (c *Clean) renderEllipse(buf *bytes.Buffer, s *canvas.Shape) {
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f"`,
		s.X+s.Width/2, s.Y+s.Height/2, s.Width/2, s.Height/2)
	c.writePaint(buf, s)
	writeBoxLabel(buf, s, familyClean, shapeStroke(s, c.dark))
	closeGroup(buf)
}

func (c *Clean) renderPolygonShape(buf *bytes.Buffer, s *canvas.Shape, points []canvas.Point) {
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <polygon points="%s"`, pointsAttr(points))
	c.writePaint(buf, s)
	writeBoxLabel(buf, s, familyClean, shapeStroke(s, c.dark))
	closeGroup(buf)
}

// renderPathShape emits one exact path with the standard paint.
func (c *Clean) renderPathShape(buf *bytes.Buffer, s *canvas.Shape, d string) {
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <path d="%s"`, d)
	c.writePaint(buf, s)
	writeBoxLabel(buf, s, familyClean, shapeStroke(s, c.dark))
	closeGroup(buf)
}

func (c *Clean) renderCylinder(buf *bytes.Buffer, s *canvas.Shape) {
	g := cylinderParts(s)
	stroke := shapeStroke(s, c.dark)
	openGroup(buf, s)
	if s.Fill != "" {
		silhouette := fmt.Sprintf("M %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f Z",
			g.leftTop.X, g.leftTop.Y, g.leftBottom.X, g.leftBottom.Y,
			g.arcCtrl.X, g.arcCtrl.Y, g.rightBottom.X, g.rightBottom.Y,
			g.rightTop.X, g.rightTop.Y,
			g.cx, g.cy-2*g.ry, g.leftTop.X, g.leftTop.Y)
		writeFillPath(buf, silhouette, s.Fill)
	}
	fmt.Fprintf(buf, `    <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		g.cx, g.cy, g.rx, g.ry, stroke, s.LineWidth())
	body := fmt.Sprintf("M %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f L %.2f %.2f",
		g.leftTop.X, g.leftTop.Y, g.leftBottom.X, g.leftBottom.Y,
		g.arcCtrl.X, g.arcCtrl.Y, g.rightBottom.X, g.rightBottom.Y,
		g.rightTop.X, g.rightTop.Y)
	writeStrokePath(buf, body, stroke, s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyClean, stroke)
	closeGroup(buf)
}

func (c *Clean) renderPerson(buf *bytes.Buffer, s *canvas.Shape) {
	g := personParts(s)
	stroke := shapeStroke(s, c.dark)
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		g.headCX, g.headCY, g.headRX, g.headRY, stroke, s.LineWidth())
	var sb strings.Builder
	for _, seg := range g.segments {
		fmt.Fprintf(&sb, "M %.2f %.2f L %.2f %.2f ", seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
	}
	writeStrokePath(buf, strings.TrimSpace(sb.String()), stroke, s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyClean, stroke)
	closeGroup(buf)
}

func (c *Clean) renderCallout(buf *bytes.Buffer, s *canvas.Shape) {
	b1, b2 := calloutPointerBase(s)
	tip := s.Pointer()
	d := roundedRectPath(s.X, s.Y, s.Width, s.Height, calloutRadius) +
		fmt.Sprintf(" M %.2f %.2f L %.2f %.2f L %.2f %.2f Z", b1.X, b1.Y, tip.X, tip.Y, b2.X, b2.Y)
	c.renderPathShape(buf, s, d)
}

func cleanPathData(s *canvas.Shape) string {
	if s.Curved {
		return rough.SmoothPath(s.Points)
	}
	return rough.StraightPath(s.Points)
}

func (c *Clean) renderLine(buf *bytes.Buffer, s *canvas.Shape) {
	if len(s.Points) < 2 {
		return
	}
	stroke := shapeStroke(s, c.dark)
	openGroup(buf, s)
	writeStrokePath(buf, cleanPathData(s), stroke, s.LineWidth(), s.Dashed)
	writePathLabel(buf, s, familyClean, stroke)
	closeGroup(buf)
}

func (c *Clean) renderArrow(buf *bytes.Buffer, s *canvas.Shape) {
	if len(s.Points) < 2 {
		return
	}
	stroke := shapeStroke(s, c.dark)
	head, tail := s.Head(), s.Tail()
	openGroup(buf, s)
	writeStrokePath(buf, cleanPathData(s), stroke, s.LineWidth(), s.Dashed)
	c.writeHead(buf, s.Points[len(s.Points)-1], headingAngle(s.Points), head, stroke, s.LineWidth())
	c.writeHead(buf, s.Points[0], tailAngle(s.Points), tail, stroke, s.LineWidth())
	writePathLabel(buf, s, familyClean, stroke)
	closeGroup(buf)
}

func (c *Clean) writeHead(buf *bytes.Buffer, tip canvas.Point, angle float64, style canvas.HeadStyle, stroke string, lw float64) {
	d, filled := rough.ArrowHead(tip, angle, style, rough.HeadSize)
	if d == "" {
		return
	}
	if filled {
		writeFilledPath(buf, d, stroke)
		return
	}
	writeStrokePath(buf, d, stroke, lw, false)
}

func (c *Clean) renderText(buf *bytes.Buffer, s *canvas.Shape) {
	if s.Label == "" {
		return
	}
	openGroup(buf, s)
	writeTextShape(buf, s, familyClean, shapeStroke(s, c.dark))
	closeGroup(buf)
}
