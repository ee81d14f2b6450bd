package styles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/render/rough"
)

// Pro is the themed dark style: clean outlines stroked in their palette
// accent, filled with the family gradient, and wrapped in a glow filter.
// It ignores roughness, the seed, explicit shape colors, and the board
// background; labels always render in a fixed light color.
type Pro struct{}

// NewPro returns the themed style.
func NewPro() *Pro {
	return &Pro{}
}

// RenderDefs writes the deduplicated theme resources for the shape set.
func (p *Pro) RenderDefs(buf *bytes.Buffer, shapes []canvas.Shape) {
	writeThemeResources(buf, shapes)
}

// RenderBackground layers the theme gradient and the grid pattern. The
// board's explicit background is ignored.
func (p *Pro) RenderBackground(buf *bytes.Buffer, bg canvas.Bounds, explicit string) {
	writeBackgroundRect(buf, bg, "url(#bg-gradient)")
	writeBackgroundRect(buf, bg, "url(#grid)")
}

// Corner accent dimensions, relative to the viewport corners.
const (
	accentInset = 16.0
	accentArm   = 24.0
)

// RenderOverlay draws an L-shaped accent in each viewport corner.
func (p *Pro) RenderOverlay(buf *bytes.Buffer, viewport canvas.Bounds) {
	x1 := viewport.MinX + accentInset
	y1 := viewport.MinY + accentInset
	x2 := viewport.MaxX - accentInset
	y2 := viewport.MaxY - accentInset
	corners := []string{
		fmt.Sprintf("M %.2f %.2f L %.2f %.2f L %.2f %.2f", x1, y1+accentArm, x1, y1, x1+accentArm, y1),
		fmt.Sprintf("M %.2f %.2f L %.2f %.2f L %.2f %.2f", x2-accentArm, y1, x2, y1, x2, y1+accentArm),
		fmt.Sprintf("M %.2f %.2f L %.2f %.2f L %.2f %.2f", x2, y2-accentArm, x2, y2, x2-accentArm, y2),
		fmt.Sprintf("M %.2f %.2f L %.2f %.2f L %.2f %.2f", x1+accentArm, y2, x1, y2, x1, y2-accentArm),
	}
	for _, d := range corners {
		fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="2" opacity="0.60"/>`+"\n",
			d, themeDefault.Accent)
	}
}

// RenderShape dispatches on the shape kind. Unknown kinds and path
// shapes with fewer than two points contribute no output.
func (p *Pro) RenderShape(buf *bytes.Buffer, s *canvas.Shape) {
	switch s.Type {
	case canvas.TypeRectangle:
		p.renderRectangle(buf, s)
	case canvas.TypeEllipse:
		p.renderEllipse(buf, s)
	case canvas.TypeDiamond:
		p.renderPolygonShape(buf, s, diamondPoints(s))
	case canvas.TypeHexagon:
		p.renderPolygonShape(buf, s, hexagonPoints(s))
	case canvas.TypeCylinder:
		p.renderCylinder(buf, s)
	case canvas.TypeCloud:
		p.renderPathShape(buf, s, cloudPath(s, cleanCloudSizes()))
	case canvas.TypeDocument:
		p.renderPathShape(buf, s, documentPath(documentParts(s)))
	case canvas.TypePerson:
		p.renderPerson(buf, s)
	case canvas.TypeCallout:
		p.renderCallout(buf, s)
	case canvas.TypeLine:
		p.renderLine(buf, s)
	case canvas.TypeArrow:
		p.renderArrow(buf, s)
	case canvas.TypeText:
		p.renderText(buf, s)
	}
}

// writePaint appends the themed fill, accent stroke, glow filter, and
// dash attributes to an open element tag and closes it.
func (p *Pro) writePaint(buf *bytes.Buffer, s *canvas.Shape, tc ThemeColor, filled bool) {
	id := ColorID(tc.Accent)
	if filled {
		fmt.Fprintf(buf, ` fill="url(#grad-%s)"`, id)
	} else {
		buf.WriteString(` fill="none"`)
	}
	fmt.Fprintf(buf, ` stroke="%s" stroke-width="%.2f" filter="url(#glow-%s)"`,
		tc.Accent, s.LineWidth(), id)
	if s.Dashed {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, dashArray(s.LineWidth()))
	}
	buf.WriteString("/>\n")
}

func (p *Pro) renderRectangle(buf *bytes.Buffer, s *canvas.Shape) {
	tc := Theme(s.Fill)
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f"`,
		s.X, s.Y, s.Width, s.Height, cleanCornerRadius)
	p.writePaint(buf, s, tc, true)
	writeBoxLabel(buf, s, familyPro, proLabelColor)
	closeGroup(buf)
}

func (p *Pro) renderEllipse(buf *bytes.Buffer, s *canvas.Shape) {
	tc := Theme(s.Fill)
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f"`,
		s.X+s.Width/2, s.Y+s.Height/2, s.Width/2, s.Height/2)
	p.writePaint(buf, s, tc, true)
	writeBoxLabel(buf, s, familyPro, proLabelColor)
	closeGroup(buf)
}

func (p *Pro) renderPolygonShape(buf *bytes.Buffer, s *canvas.Shape, points []canvas.Point) {
	tc := Theme(s.Fill)
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <polygon points="%s"`, pointsAttr(points))
	p.writePaint(buf, s, tc, true)
	writeBoxLabel(buf, s, familyPro, proLabelColor)
	closeGroup(buf)
}

func (p *Pro) renderPathShape(buf *bytes.Buffer, s *canvas.Shape, d string) {
	tc := Theme(s.Fill)
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <path d="%s"`, d)
	p.writePaint(buf, s, tc, true)
	writeBoxLabel(buf, s, familyPro, proLabelColor)
	closeGroup(buf)
}

func (p *Pro) renderCylinder(buf *bytes.Buffer, s *canvas.Shape) {
	tc := Theme(s.Fill)
	id := ColorID(tc.Accent)
	g := cylinderParts(s)
	openGroup(buf, s)
	silhouette := fmt.Sprintf("M %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f Z",
		g.leftTop.X, g.leftTop.Y, g.leftBottom.X, g.leftBottom.Y,
		g.arcCtrl.X, g.arcCtrl.Y, g.rightBottom.X, g.rightBottom.Y,
		g.rightTop.X, g.rightTop.Y,
		g.cx, g.cy-2*g.ry, g.leftTop.X, g.leftTop.Y)
	fmt.Fprintf(buf, `    <path d="%s" fill="url(#grad-%s)" stroke="none" filter="url(#glow-%s)"/>`+"\n",
		silhouette, id, id)
	fmt.Fprintf(buf, `    <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		g.cx, g.cy, g.rx, g.ry, tc.Accent, s.LineWidth())
	body := fmt.Sprintf("M %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f L %.2f %.2f",
		g.leftTop.X, g.leftTop.Y, g.leftBottom.X, g.leftBottom.Y,
		g.arcCtrl.X, g.arcCtrl.Y, g.rightBottom.X, g.rightBottom.Y,
		g.rightTop.X, g.rightTop.Y)
	writeStrokePath(buf, body, tc.Accent, s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyPro, proLabelColor)
	closeGroup(buf)
}

func (p *Pro) renderPerson(buf *bytes.Buffer, s *canvas.Shape) {
	tc := Theme(s.Fill)
	id := ColorID(tc.Accent)
	g := personParts(s)
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="none" stroke="%s" stroke-width="%.2f" filter="url(#glow-%s)"/>`+"\n",
		g.headCX, g.headCY, g.headRX, g.headRY, tc.Accent, s.LineWidth(), id)
	var sb strings.Builder
	for _, seg := range g.segments {
		fmt.Fprintf(&sb, "M %.2f %.2f L %.2f %.2f ", seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
	}
	writeStrokePath(buf, strings.TrimSpace(sb.String()), tc.Accent, s.LineWidth(), s.Dashed)
	writeBoxLabel(buf, s, familyPro, proLabelColor)
	closeGroup(buf)
}

func (p *Pro) renderCallout(buf *bytes.Buffer, s *canvas.Shape) {
	b1, b2 := calloutPointerBase(s)
	tip := s.Pointer()
	d := roundedRectPath(s.X, s.Y, s.Width, s.Height, calloutRadius) +
		fmt.Sprintf(" M %.2f %.2f L %.2f %.2f L %.2f %.2f Z", b1.X, b1.Y, tip.X, tip.Y, b2.X, b2.Y)
	p.renderPathShape(buf, s, d)
}

func (p *Pro) renderLine(buf *bytes.Buffer, s *canvas.Shape) {
	if len(s.Points) < 2 {
		return
	}
	tc := Theme(s.Fill)
	id := ColorID(tc.Accent)
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round" filter="url(#glow-%s)"`,
		cleanPathData(s), tc.Accent, s.LineWidth(), id)
	if s.Dashed {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, dashArray(s.LineWidth()))
	}
	buf.WriteString("/>\n")
	writePathLabel(buf, s, familyPro, proLabelColor)
	closeGroup(buf)
}

func (p *Pro) renderArrow(buf *bytes.Buffer, s *canvas.Shape) {
	if len(s.Points) < 2 {
		return
	}
	tc := Theme(s.Fill)
	id := ColorID(tc.Accent)
	head, tail := s.Head(), s.Tail()
	openGroup(buf, s)
	fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round" filter="url(#glow-%s)"`,
		cleanPathData(s), tc.Accent, s.LineWidth(), id)
	if s.Dashed {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, dashArray(s.LineWidth()))
	}
	// Simple heads use the shared per-family marker; the exotic ones are
	// drawn as filled accent paths below.
	if head == canvas.HeadArrow || head == canvas.HeadTriangle {
		fmt.Fprintf(buf, ` marker-end="url(#arrow-%s)"`, id)
	}
	if tail == canvas.HeadArrow || tail == canvas.HeadTriangle {
		fmt.Fprintf(buf, ` marker-start="url(#arrow-%s)"`, id)
	}
	buf.WriteString("/>\n")
	if head == canvas.HeadDiamond || head == canvas.HeadCircle {
		if d, _ := rough.ArrowHead(s.Points[len(s.Points)-1], headingAngle(s.Points), head, rough.HeadSize); d != "" {
			writeFilledPath(buf, d, tc.Accent)
		}
	}
	if tail == canvas.HeadDiamond || tail == canvas.HeadCircle {
		if d, _ := rough.ArrowHead(s.Points[0], tailAngle(s.Points), tail, rough.HeadSize); d != "" {
			writeFilledPath(buf, d, tc.Accent)
		}
	}
	writePathLabel(buf, s, familyPro, proLabelColor)
	closeGroup(buf)
}

func (p *Pro) renderText(buf *bytes.Buffer, s *canvas.Shape) {
	if s.Label == "" {
		return
	}
	openGroup(buf, s)
	writeTextShape(buf, s, familyPro, proLabelColor)
	closeGroup(buf)
}
