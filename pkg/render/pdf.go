package render

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
	"github.com/sketchwall/sketchwall/pkg/render/styles"
)

// pdfMargin is the page margin in millimeters.
const pdfMargin = 10.0

// pdfFont is the core font used for labels. Core fonts need no
// embedding, which keeps exports dependency free.
const pdfFont = "Helvetica"

// ToPDF draws the board as a vector PDF on a single A4 page. Geometry
// is rendered exact (no jitter); roughness is a screen treatment, not
// a print one. The shape extent is scaled to fit the page, preserving
// aspect ratio.
func ToPDF(board *canvas.Board, opts Options) ([]byte, error) {
	if board == nil {
		return nil, errors.New(errors.ErrCodeInvalidBoard, "cannot export a nil board")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	bounds := canvas.CalculateBounds(board.Shapes, DefaultPadding)

	orientation := "L"
	if bounds.Height() > bounds.Width() {
		orientation = "P"
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont(pdfFont, "", 12)

	pageW, pageH := pdf.GetPageSize()
	scale := min((pageW-2*pdfMargin)/bounds.Width(), (pageH-2*pdfMargin)/bounds.Height())

	// Center the scaled extent on the page.
	offX := (pageW - bounds.Width()*scale) / 2
	offY := (pageH - bounds.Height()*scale) / 2

	p := pdfPage{
		pdf:   pdf,
		scale: scale,
		offX:  offX - bounds.MinX*scale,
		offY:  offY - bounds.MinY*scale,
	}

	for i := range board.Shapes {
		p.drawShape(&board.Shapes[i])
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "failed to assemble PDF")
	}
	return buf.Bytes(), nil
}

// pdfPage maps canvas coordinates onto a gofpdf page.
type pdfPage struct {
	pdf   *gofpdf.Fpdf
	scale float64
	offX  float64
	offY  float64
}

func (p *pdfPage) x(v float64) float64 { return v*p.scale + p.offX }
func (p *pdfPage) y(v float64) float64 { return v*p.scale + p.offY }
func (p *pdfPage) l(v float64) float64 { return v * p.scale }

func (p *pdfPage) drawShape(s *canvas.Shape) {
	r, g, b := strokeRGB(s.Stroke)
	p.pdf.SetDrawColor(r, g, b)
	p.pdf.SetTextColor(r, g, b)
	p.pdf.SetLineWidth(max(p.l(s.LineWidth()), 0.2))

	if s.Dashed {
		lw := s.LineWidth()
		p.pdf.SetDashPattern([]float64{p.l(lw * 4), p.l(lw * 3)}, 0)
		defer p.pdf.SetDashPattern([]float64{}, 0)
	}

	if a := s.Alpha(); a < 1 {
		p.pdf.SetAlpha(a, "Normal")
		defer p.pdf.SetAlpha(1, "Normal")
	}

	switch s.Type {
	case canvas.TypeRectangle:
		p.fillBox(s)
		p.pdf.Rect(p.x(s.X), p.y(s.Y), p.l(s.Width), p.l(s.Height), "D")
		p.boxLabel(s)
	case canvas.TypeEllipse:
		p.shadedEllipse(s, s.X+s.Width/2, s.Y+s.Height/2, s.Width/2, s.Height/2)
		p.boxLabel(s)
	case canvas.TypeDiamond:
		cx, cy := s.X+s.Width/2, s.Y+s.Height/2
		p.polygon(s, []canvas.Point{
			{X: cx, Y: s.Y}, {X: s.X + s.Width, Y: cy}, {X: cx, Y: s.Y + s.Height}, {X: s.X, Y: cy},
		})
		p.boxLabel(s)
	case canvas.TypeHexagon:
		inset := s.Width * 0.25
		cy := s.Y + s.Height/2
		p.polygon(s, []canvas.Point{
			{X: s.X + inset, Y: s.Y}, {X: s.X + s.Width - inset, Y: s.Y}, {X: s.X + s.Width, Y: cy},
			{X: s.X + s.Width - inset, Y: s.Y + s.Height}, {X: s.X + inset, Y: s.Y + s.Height}, {X: s.X, Y: cy},
		})
		p.boxLabel(s)
	case canvas.TypeCylinder:
		p.cylinder(s)
		p.boxLabel(s)
	case canvas.TypeCloud:
		p.shadedEllipse(s, s.X+s.Width/2, s.Y+s.Height/2, s.Width/2, s.Height/2)
		p.boxLabel(s)
	case canvas.TypeDocument:
		p.document(s)
		p.boxLabel(s)
	case canvas.TypePerson:
		p.person(s)
		p.boxLabel(s)
	case canvas.TypeCallout:
		p.callout(s)
		p.boxLabel(s)
	case canvas.TypeLine, canvas.TypeArrow:
		p.path(s)
	case canvas.TypeText:
		p.text(s)
	}
}

func (p *pdfPage) fillBox(s *canvas.Shape) {
	if s.Fill == "" {
		return
	}
	r, g, b := strokeRGB(s.Fill)
	p.pdf.SetFillColor(r, g, b)
	p.pdf.SetAlpha(0.3*s.Alpha(), "Normal")
	p.pdf.Rect(p.x(s.X), p.y(s.Y), p.l(s.Width), p.l(s.Height), "F")
	p.pdf.SetAlpha(s.Alpha(), "Normal")
}

func (p *pdfPage) shadedEllipse(s *canvas.Shape, cx, cy, rx, ry float64) {
	if s.Fill != "" {
		r, g, b := strokeRGB(s.Fill)
		p.pdf.SetFillColor(r, g, b)
		p.pdf.SetAlpha(0.3*s.Alpha(), "Normal")
		p.pdf.Ellipse(p.x(cx), p.y(cy), p.l(rx), p.l(ry), 0, "F")
		p.pdf.SetAlpha(s.Alpha(), "Normal")
	}
	p.pdf.Ellipse(p.x(cx), p.y(cy), p.l(rx), p.l(ry), 0, "D")
}

func (p *pdfPage) polygon(s *canvas.Shape, points []canvas.Point) {
	pts := make([]gofpdf.PointType, len(points))
	for i, pt := range points {
		pts[i] = gofpdf.PointType{X: p.x(pt.X), Y: p.y(pt.Y)}
	}
	if s.Fill != "" {
		r, g, b := strokeRGB(s.Fill)
		p.pdf.SetFillColor(r, g, b)
		p.pdf.SetAlpha(0.3*s.Alpha(), "Normal")
		p.pdf.Polygon(pts, "F")
		p.pdf.SetAlpha(s.Alpha(), "Normal")
	}
	p.pdf.Polygon(pts, "D")
}

func (p *pdfPage) cylinder(s *canvas.Shape) {
	ry := s.Height * 0.15
	cx := s.X + s.Width/2
	p.pdf.Ellipse(p.x(cx), p.y(s.Y+ry), p.l(s.Width/2), p.l(ry), 0, "D")
	p.pdf.Line(p.x(s.X), p.y(s.Y+ry), p.x(s.X), p.y(s.Y+s.Height-ry))
	p.pdf.Line(p.x(s.X+s.Width), p.y(s.Y+ry), p.x(s.X+s.Width), p.y(s.Y+s.Height-ry))
	p.pdf.Arc(p.x(cx), p.y(s.Y+s.Height-ry), p.l(s.Width/2), p.l(ry), 0, 180, 360, "D")
}

func (p *pdfPage) document(s *canvas.Shape) {
	amp := s.Height * 0.10
	baseY := s.Y + s.Height - amp
	p.pdf.MoveTo(p.x(s.X), p.y(s.Y))
	p.pdf.LineTo(p.x(s.X+s.Width), p.y(s.Y))
	p.pdf.LineTo(p.x(s.X+s.Width), p.y(baseY))
	p.pdf.CurveTo(p.x(s.X+s.Width*0.75), p.y(baseY-amp), p.x(s.X+s.Width/2), p.y(baseY))
	p.pdf.CurveTo(p.x(s.X+s.Width*0.25), p.y(s.Y+s.Height), p.x(s.X), p.y(baseY))
	p.pdf.ClosePath()
	p.pdf.DrawPath("D")
}

func (p *pdfPage) person(s *canvas.Shape) {
	cx := s.X + s.Width/2
	p.pdf.Ellipse(p.x(cx), p.y(s.Y+s.Height*0.15), p.l(s.Width*0.14), p.l(s.Height*0.15), 0, "D")
	p.pdf.Line(p.x(cx), p.y(s.Y+s.Height*0.30), p.x(cx), p.y(s.Y+s.Height*0.65))
	p.pdf.Line(p.x(cx), p.y(s.Y+s.Height*0.40), p.x(s.X+s.Width*0.15), p.y(s.Y+s.Height*0.52))
	p.pdf.Line(p.x(cx), p.y(s.Y+s.Height*0.40), p.x(s.X+s.Width*0.85), p.y(s.Y+s.Height*0.52))
	p.pdf.Line(p.x(cx), p.y(s.Y+s.Height*0.65), p.x(s.X+s.Width*0.25), p.y(s.Y+s.Height*0.98))
	p.pdf.Line(p.x(cx), p.y(s.Y+s.Height*0.65), p.x(s.X+s.Width*0.75), p.y(s.Y+s.Height*0.98))
}

func (p *pdfPage) callout(s *canvas.Shape) {
	p.fillBox(s)
	p.pdf.RoundedRect(p.x(s.X), p.y(s.Y), p.l(s.Width), p.l(s.Height), p.l(8), "1234", "D")
	tip := s.Pointer()
	p.pdf.Line(p.x(s.X+s.Width*0.25), p.y(s.Y+s.Height), p.x(tip.X), p.y(tip.Y))
	p.pdf.Line(p.x(tip.X), p.y(tip.Y), p.x(s.X+s.Width*0.45), p.y(s.Y+s.Height))
}

func (p *pdfPage) path(s *canvas.Shape) {
	if len(s.Points) < 2 {
		return
	}
	for i := 1; i < len(s.Points); i++ {
		p.pdf.Line(
			p.x(s.Points[i-1].X), p.y(s.Points[i-1].Y),
			p.x(s.Points[i].X), p.y(s.Points[i].Y),
		)
	}
	if s.Type == canvas.TypeArrow {
		n := len(s.Points)
		headAngle := math.Atan2(s.Points[n-1].Y-s.Points[n-2].Y, s.Points[n-1].X-s.Points[n-2].X)
		p.head(s.Head(), s.Points[n-1], headAngle)
		tailAngle := math.Atan2(s.Points[0].Y-s.Points[1].Y, s.Points[0].X-s.Points[1].X)
		p.head(s.Tail(), s.Points[0], tailAngle)
	}
	if s.Label != "" {
		at := s.Points[0]
		if len(s.Points) > 1 {
			mid := len(s.Points) / 2
			at = canvas.Point{
				X: (s.Points[mid-1].X + s.Points[mid].X) / 2,
				Y: (s.Points[mid-1].Y + s.Points[mid].Y) / 2,
			}
		}
		p.centeredText(s.Label, at.X, at.Y-6, 14)
	}
}

func (p *pdfPage) head(style canvas.HeadStyle, tip canvas.Point, angle float64) {
	const size = 12.0
	switch style {
	case canvas.HeadArrow:
		for _, wing := range []float64{angle + 0.8*math.Pi, angle - 0.8*math.Pi} {
			p.pdf.Line(p.x(tip.X), p.y(tip.Y),
				p.x(tip.X+size*math.Cos(wing)), p.y(tip.Y+size*math.Sin(wing)))
		}
	case canvas.HeadTriangle:
		a := canvas.Point{X: tip.X + size*math.Cos(angle+0.8*math.Pi), Y: tip.Y + size*math.Sin(angle+0.8*math.Pi)}
		b := canvas.Point{X: tip.X + size*math.Cos(angle-0.8*math.Pi), Y: tip.Y + size*math.Sin(angle-0.8*math.Pi)}
		p.filledPolygon([]canvas.Point{tip, a, b})
	case canvas.HeadDiamond:
		back := canvas.Point{X: tip.X - 1.6*size*math.Cos(angle), Y: tip.Y - 1.6*size*math.Sin(angle)}
		a := canvas.Point{X: tip.X + size*math.Cos(angle+0.8*math.Pi), Y: tip.Y + size*math.Sin(angle+0.8*math.Pi)}
		b := canvas.Point{X: tip.X + size*math.Cos(angle-0.8*math.Pi), Y: tip.Y + size*math.Sin(angle-0.8*math.Pi)}
		p.filledPolygon([]canvas.Point{tip, a, back, b})
	case canvas.HeadCircle:
		r, g, b := p.pdf.GetDrawColor()
		p.pdf.SetFillColor(r, g, b)
		p.pdf.Circle(p.x(tip.X), p.y(tip.Y), p.l(0.4*size), "FD")
	}
}

func (p *pdfPage) filledPolygon(points []canvas.Point) {
	pts := make([]gofpdf.PointType, len(points))
	for i, pt := range points {
		pts[i] = gofpdf.PointType{X: p.x(pt.X), Y: p.y(pt.Y)}
	}
	r, g, b := p.pdf.GetDrawColor()
	p.pdf.SetFillColor(r, g, b)
	p.pdf.Polygon(pts, "FD")
}

func (p *pdfPage) boxLabel(s *canvas.Shape) {
	if s.Label == "" {
		return
	}
	size := styles.FitFontSize(s.Label, s.Width, s.Height, 16)
	p.centeredText(s.Label, s.X+s.Width/2, s.Y+s.Height/2, size)
}

// centeredText draws a (possibly multi-line) label centered on (cx, cy)
// in canvas coordinates. size is the font size in canvas units.
func (p *pdfPage) centeredText(label string, cx, cy, size float64) {
	p.pdf.SetFontUnitSize(p.l(size))
	lines := strings.Split(label, "\n")
	lineH := size * 1.3
	startY := cy - lineH*float64(len(lines)-1)/2 + size*0.35
	for i, line := range lines {
		w := p.pdf.GetStringWidth(line)
		p.pdf.Text(p.x(cx)-w/2, p.y(startY+float64(i)*lineH), line)
	}
}

func (p *pdfPage) text(s *canvas.Shape) {
	if s.Label == "" {
		return
	}
	size := s.FontSize
	if size <= 0 {
		size = 20
	}
	p.pdf.SetFontUnitSize(p.l(size))
	for i, line := range strings.Split(s.Label, "\n") {
		p.pdf.Text(p.x(s.X), p.y(s.Y+size+float64(i)*size*1.3), line)
	}
}

// namedRGB maps the CSS color keywords the themed palette understands
// onto print colors. Unknown names fall back to near-black ink.
var namedRGB = map[string][3]int{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"red":     {220, 38, 38},
	"orange":  {234, 88, 12},
	"yellow":  {202, 138, 4},
	"green":   {22, 163, 74},
	"teal":    {13, 148, 136},
	"cyan":    {8, 145, 178},
	"blue":    {37, 99, 235},
	"purple":  {147, 51, 234},
	"violet":  {139, 92, 246},
	"magenta": {192, 38, 211},
	"pink":    {219, 39, 119},
}

// strokeRGB resolves a color string to RGB components for gofpdf.
// Handles #rgb, #rrggbb and #rrggbbaa hex forms plus the named palette.
func strokeRGB(color string) (int, int, int) {
	c := strings.ToLower(strings.TrimSpace(color))
	if rgb, ok := namedRGB[c]; ok {
		return rgb[0], rgb[1], rgb[2]
	}
	if strings.HasPrefix(c, "#") {
		hex := c[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) >= 6 {
			if v, err := strconv.ParseUint(hex[:6], 16, 32); err == nil {
				return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
			}
		}
	}
	// Default ink
	return 26, 28, 30
}
