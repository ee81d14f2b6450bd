package styles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/render/rough"
)

// Rough is the hand-drawn style: outlines are jittered and bowed by a
// seeded generator, fills are flat at 30% opacity beneath the stroke.
type Rough struct {
	roughness float64
	dark      bool
	rng       *rough.RNG
}

// NewRough returns a rough style drawing jitter from seed. The generator
// is scoped to one document pass, so construct a fresh instance per
// render. Negative roughness is treated as zero.
func NewRough(roughness float64, seed int64, dark bool) *Rough {
	if roughness < 0 {
		roughness = 0
	}
	return &Rough{roughness: roughness, dark: dark, rng: rough.NewRNG(seed)}
}

// RenderDefs writes nothing: the rough style needs no shared resources.
func (r *Rough) RenderDefs(buf *bytes.Buffer, shapes []canvas.Shape) {}

// RenderBackground fills the overscanned canvas with the board color or
// the plain default for the active color scheme.
func (r *Rough) RenderBackground(buf *bytes.Buffer, bg canvas.Bounds, explicit string) {
	color := explicit
	if color == "" {
		color = defaultBackground(r.dark)
	}
	writeBackgroundRect(buf, bg, color)
}

// RenderOverlay writes nothing.
func (r *Rough) RenderOverlay(buf *bytes.Buffer, viewport canvas.Bounds) {}

// RenderShape dispatches on the shape kind. Unknown kinds and path
// shapes with fewer than two points contribute no output.
func (r *Rough) RenderShape(buf *bytes.Buffer, s *canvas.Shape) {
	switch s.Type {
	case canvas.TypeRectangle:
		r.renderRectangle(buf, s)
	case canvas.TypeEllipse:
		r.renderEllipse(buf, s)
	case canvas.TypeDiamond:
		r.renderPolygonShape(buf, s, diamondPoints(s))
	case canvas.TypeHexagon:
		r.renderPolygonShape(buf, s, hexagonPoints(s))
	case canvas.TypeCylinder:
		r.renderCylinder(buf, s)
	case canvas.TypeCloud:
		r.renderCloud(buf, s)
	case canvas.TypeDocument:
		r.renderDocument(buf, s)
	case canvas.TypePerson:
		r.renderPerson(buf, s)
	case canvas.TypeCallout:
		r.renderCallout(buf, s)
	case canvas.TypeLine:
		r.renderLine(buf, s)
	case canvas.TypeArrow:
		r.renderArrow(buf, s)
	case canvas.TypeText:
		r.renderText(buf, s)
	}
}

func (r *Rough) strokeColor(s *canvas.Shape) string {
	return shapeStroke(s, r.dark)
}

// polygon jitters every edge of a closed vertex loop.
func (r *Rough) polygon(points []canvas.Point) string {
	parts := make([]string, len(points))
	for i := range points {
		parts[i] = rough.Line(points[i], points[(i+1)%len(points)], r.roughness, r.rng)
	}
	return strings.Join(parts, " ")
}

// polyline jitters every segment of an open point sequence.
func (r *Rough) polyline(points []canvas.Point) string {
	parts := make([]string, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		parts = append(parts, rough.Line(points[i], points[i+1], r.roughness, r.rng))
	}
	return strings.Join(parts, " ")
}

func (r *Rough) renderRectangle(buf *bytes.Buffer, s *canvas.Shape) {
	corners := []canvas.Point{
		{X: s.X, Y: s.Y},
		{X: s.X + s.Width, Y: s.Y},
		{X: s.X + s.Width, Y: s.Y + s.Height},
		{X: s.X, Y: s.Y + s.Height},
	}
	openGroup(buf, s)
	if s.Fill != "" {
		writeFillPath(buf, polygonPath(corners), s.Fill)
	}
	writeStrokePath(buf, r.polygon(corners), r.strokeColor(s), s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}

func (r *Rough) renderEllipse(buf *bytes.Buffer, s *canvas.Shape) {
	cx := s.X + s.Width/2
	cy := s.Y + s.Height/2
	openGroup(buf, s)
	if s.Fill != "" {
		fmt.Fprintf(buf, `    <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="%s" fill-opacity="0.30" stroke="none"/>`+"\n",
			cx, cy, s.Width/2, s.Height/2, s.Fill)
	}
	d := rough.Ellipse(cx, cy, s.Width/2, s.Height/2, r.roughness, r.rng)
	writeStrokePath(buf, d, r.strokeColor(s), s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}

func (r *Rough) renderPolygonShape(buf *bytes.Buffer, s *canvas.Shape, points []canvas.Point) {
	openGroup(buf, s)
	if s.Fill != "" {
		writeFillPath(buf, polygonPath(points), s.Fill)
	}
	writeStrokePath(buf, r.polygon(points), r.strokeColor(s), s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}

func (r *Rough) renderCylinder(buf *bytes.Buffer, s *canvas.Shape) {
	g := cylinderParts(s)
	openGroup(buf, s)
	if s.Fill != "" {
		silhouette := fmt.Sprintf("M %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f Z",
			g.leftTop.X, g.leftTop.Y, g.leftBottom.X, g.leftBottom.Y,
			g.arcCtrl.X, g.arcCtrl.Y, g.rightBottom.X, g.rightBottom.Y,
			g.rightTop.X, g.rightTop.Y,
			g.cx, g.cy-2*g.ry, g.leftTop.X, g.leftTop.Y)
		writeFillPath(buf, silhouette, s.Fill)
	}
	parts := []string{
		rough.Ellipse(g.cx, g.cy, g.rx, g.ry, r.roughness, r.rng),
		rough.Line(g.leftTop, g.leftBottom, r.roughness, r.rng),
		rough.Line(g.rightTop, g.rightBottom, r.roughness, r.rng),
		// The lower arc stays smooth even at high roughness.
		fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f",
			g.arcFrom.X, g.arcFrom.Y, g.arcCtrl.X, g.arcCtrl.Y, g.arcTo.X, g.arcTo.Y),
	}
	writeStrokePath(buf, strings.Join(parts, " "), r.strokeColor(s), s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}

func (r *Rough) renderCloud(buf *bytes.Buffer, s *canvas.Shape) {
	sizes := make([]float64, cloudBumps)
	for i := range sizes {
		sizes[i] = 0.8 + 0.4*r.rng.Next()
	}
	d := cloudPath(s, sizes)
	openGroup(buf, s)
	if s.Fill != "" {
		writeFillPath(buf, d, s.Fill)
	}
	writeStrokePath(buf, d, r.strokeColor(s), s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}

func (r *Rough) renderDocument(buf *bytes.Buffer, s *canvas.Shape) {
	g := documentParts(s)
	openGroup(buf, s)
	if s.Fill != "" {
		writeFillPath(buf, documentPath(g), s.Fill)
	}
	wave := fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f Q %.2f %.2f %.2f %.2f",
		g.br.X, g.br.Y, g.wave1Ctrl.X, g.wave1Ctrl.Y, g.wave1End.X, g.wave1End.Y,
		g.wave2Ctrl.X, g.wave2Ctrl.Y, g.bl.X, g.bl.Y)
	parts := []string{
		rough.Line(g.tl, g.tr, r.roughness, r.rng),
		rough.Line(g.tr, g.br, r.roughness, r.rng),
		wave,
		rough.Line(g.bl, g.tl, r.roughness, r.rng),
	}
	writeStrokePath(buf, strings.Join(parts, " "), r.strokeColor(s), s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}

func (r *Rough) renderPerson(buf *bytes.Buffer, s *canvas.Shape) {
	g := personParts(s)
	parts := make([]string, 0, 6)
	parts = append(parts, rough.Ellipse(g.headCX, g.headCY, g.headRX, g.headRY, r.roughness, r.rng))
	for _, seg := range g.segments {
		parts = append(parts, rough.Line(seg[0], seg[1], r.roughness, r.rng))
	}
	openGroup(buf, s)
	writeStrokePath(buf, strings.Join(parts, " "), r.strokeColor(s), s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}

func (r *Rough) renderCallout(buf *bytes.Buffer, s *canvas.Shape) {
	b1, b2 := calloutPointerBase(s)
	tip := s.Pointer()
	openGroup(buf, s)
	if s.Fill != "" {
		d := roundedRectPath(s.X, s.Y, s.Width, s.Height, calloutRadius) +
			fmt.Sprintf(" M %.2f %.2f L %.2f %.2f L %.2f %.2f Z", b1.X, b1.Y, tip.X, tip.Y, b2.X, b2.Y)
		writeFillPath(buf, d, s.Fill)
	}
	corners := []canvas.Point{
		{X: s.X, Y: s.Y},
		{X: s.X + s.Width, Y: s.Y},
		{X: s.X + s.Width, Y: s.Y + s.Height},
		{X: s.X, Y: s.Y + s.Height},
	}
	parts := []string{
		r.polygon(corners),
		rough.Line(b1, tip, r.roughness, r.rng),
		rough.Line(tip, b2, r.roughness, r.rng),
	}
	writeStrokePath(buf, strings.Join(parts, " "), r.strokeColor(s), s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}

func (r *Rough) pathData(s *canvas.Shape) string {
	if s.Curved {
		return rough.CurvedPath(s.Points, r.roughness, r.rng)
	}
	return r.polyline(s.Points)
}

func (r *Rough) renderLine(buf *bytes.Buffer, s *canvas.Shape) {
	if len(s.Points) < 2 {
		return
	}
	openGroup(buf, s)
	writeStrokePath(buf, r.pathData(s), r.strokeColor(s), s.LineWidth(), s.Dashed)
	writePathLabel(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}

func (r *Rough) renderArrow(buf *bytes.Buffer, s *canvas.Shape) {
	if len(s.Points) < 2 {
		return
	}
	stroke := r.strokeColor(s)
	head, tail := s.Head(), s.Tail()
	openGroup(buf, s)
	writeStrokePath(buf, r.pathData(s), stroke, s.LineWidth(), s.Dashed)
	r.writeHead(buf, s.Points[len(s.Points)-1], headingAngle(s.Points), head, stroke, s.LineWidth())
	r.writeHead(buf, s.Points[0], tailAngle(s.Points), tail, stroke, s.LineWidth())
	writePathLabel(buf, s, familyRough, stroke)
	closeGroup(buf)
}

func (r *Rough) writeHead(buf *bytes.Buffer, tip canvas.Point, angle float64, style canvas.HeadStyle, stroke string, lw float64) {
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

func (r *Rough) renderText(buf *bytes.Buffer, s *canvas.Shape) {
	if s.Label == "" {
		return
	}
	openGroup(buf, s)
	writeTextShape(buf, s, familyRough, r.strokeColor(s))
	closeGroup(buf)
}
