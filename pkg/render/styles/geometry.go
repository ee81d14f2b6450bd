package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/sketchwall/sketchwall/pkg/canvas"
)

// Exact outline geometry shared by every style. The rough style jitters
// these vertices edge by edge; clean and pro render them unchanged.

const (
	cylinderCapRatio = 0.15 // cap half-height as a fraction of the box height
	documentWaveAmp  = 0.10 // wave amplitude as a fraction of the box height
	hexagonInset     = 0.25 // corner inset as a fraction of the box width
	cloudBumps       = 8
	cloudBulge       = 0.5
	calloutRadius    = 8.0
)

func diamondPoints(s *canvas.Shape) []canvas.Point {
	return []canvas.Point{
		{X: s.X + s.Width/2, Y: s.Y},
		{X: s.X + s.Width, Y: s.Y + s.Height/2},
		{X: s.X + s.Width/2, Y: s.Y + s.Height},
		{X: s.X, Y: s.Y + s.Height/2},
	}
}

func hexagonPoints(s *canvas.Shape) []canvas.Point {
	inset := s.Width * hexagonInset
	return []canvas.Point{
		{X: s.X + inset, Y: s.Y},
		{X: s.X + s.Width - inset, Y: s.Y},
		{X: s.X + s.Width, Y: s.Y + s.Height/2},
		{X: s.X + s.Width - inset, Y: s.Y + s.Height},
		{X: s.X + inset, Y: s.Y + s.Height},
		{X: s.X, Y: s.Y + s.Height/2},
	}
}

func polygonPath(points []canvas.Point) string {
	var sb strings.Builder
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&sb, "%s %.2f %.2f ", cmd, p.X, p.Y)
	}
	sb.WriteString("Z")
	return sb.String()
}

// cylinderGeom splits a cylinder into its cap ellipse, two sides, and
// the visible lower arc.
type cylinderGeom struct {
	cx, cy, rx, ry          float64 // cap ellipse
	leftTop, leftBottom     canvas.Point
	rightTop, rightBottom   canvas.Point
	arcFrom, arcCtrl, arcTo canvas.Point
}

func cylinderParts(s *canvas.Shape) cylinderGeom {
	ry := s.Height * cylinderCapRatio
	cx := s.X + s.Width/2
	return cylinderGeom{
		cx: cx, cy: s.Y + ry, rx: s.Width / 2, ry: ry,
		leftTop:     canvas.Point{X: s.X, Y: s.Y + ry},
		leftBottom:  canvas.Point{X: s.X, Y: s.Y + s.Height - ry},
		rightTop:    canvas.Point{X: s.X + s.Width, Y: s.Y + ry},
		rightBottom: canvas.Point{X: s.X + s.Width, Y: s.Y + s.Height - ry},
		arcFrom:     canvas.Point{X: s.X, Y: s.Y + s.Height - ry},
		arcCtrl:     canvas.Point{X: cx, Y: s.Y + s.Height + ry},
		arcTo:       canvas.Point{X: s.X + s.Width, Y: s.Y + s.Height - ry},
	}
}

// documentGeom describes a rectangle whose bottom edge is a two-arc
// wave: up on the right half, down on the left half.
type documentGeom struct {
	tl, tr, br, bl      canvas.Point
	wave1Ctrl, wave1End canvas.Point
	wave2Ctrl           canvas.Point
}

func documentParts(s *canvas.Shape) documentGeom {
	amp := s.Height * documentWaveAmp
	baseY := s.Y + s.Height - amp
	return documentGeom{
		tl:        canvas.Point{X: s.X, Y: s.Y},
		tr:        canvas.Point{X: s.X + s.Width, Y: s.Y},
		br:        canvas.Point{X: s.X + s.Width, Y: baseY},
		bl:        canvas.Point{X: s.X, Y: baseY},
		wave1Ctrl: canvas.Point{X: s.X + s.Width*0.75, Y: baseY - amp},
		wave1End:  canvas.Point{X: s.X + s.Width/2, Y: baseY},
		wave2Ctrl: canvas.Point{X: s.X + s.Width*0.25, Y: s.Y + s.Height},
	}
}

func documentPath(g documentGeom) string {
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f Q %.2f %.2f %.2f %.2f Z",
		g.tl.X, g.tl.Y, g.tr.X, g.tr.Y, g.br.X, g.br.Y,
		g.wave1Ctrl.X, g.wave1Ctrl.Y, g.wave1End.X, g.wave1End.Y,
		g.wave2Ctrl.X, g.wave2Ctrl.Y, g.bl.X, g.bl.Y)
}

// cloudBoundary returns the bump join points, equally spaced around the
// ellipse inscribed in the shape's box.
func cloudBoundary(s *canvas.Shape) []canvas.Point {
	cx := s.X + s.Width/2
	cy := s.Y + s.Height/2
	rx := s.Width / 2
	ry := s.Height / 2
	pts := make([]canvas.Point, cloudBumps)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / cloudBumps
		pts[i] = canvas.Point{X: cx + rx*math.Cos(angle), Y: cy + ry*math.Sin(angle)}
	}
	return pts
}

// cloudPath joins the boundary points with quadratic bumps. sizes holds
// one bulge multiplier per bump; the clean styles pass all ones.
func cloudPath(s *canvas.Shape, sizes []float64) string {
	pts := cloudBoundary(s)
	cx := s.X + s.Width/2
	cy := s.Y + s.Height/2

	var sb strings.Builder
	fmt.Fprintf(&sb, "M %.2f %.2f", pts[0].X, pts[0].Y)
	for i := 1; i <= len(pts); i++ {
		cur := pts[i%len(pts)]
		prev := pts[i-1]
		mx := (prev.X + cur.X) / 2
		my := (prev.Y + cur.Y) / 2
		bulge := 1 + cloudBulge*sizes[(i-1)%len(sizes)]
		ctrl := canvas.Point{X: cx + (mx-cx)*bulge, Y: cy + (my-cy)*bulge}
		fmt.Fprintf(&sb, " Q %.2f %.2f %.2f %.2f", ctrl.X, ctrl.Y, cur.X, cur.Y)
	}
	sb.WriteString(" Z")
	return sb.String()
}

// personGeom is a stick figure: a head ellipse plus five segments
// (torso, both arms, both legs) at fixed proportions of the box.
type personGeom struct {
	headCX, headCY, headRX, headRY float64
	segments                       [5][2]canvas.Point
}

func personParts(s *canvas.Shape) personGeom {
	cx := s.X + s.Width/2
	return personGeom{
		headCX: cx, headCY: s.Y + s.Height*0.15,
		headRX: s.Width * 0.14, headRY: s.Height * 0.15,
		segments: [5][2]canvas.Point{
			{{X: cx, Y: s.Y + s.Height*0.30}, {X: cx, Y: s.Y + s.Height*0.65}},
			{{X: cx, Y: s.Y + s.Height*0.40}, {X: s.X + s.Width*0.15, Y: s.Y + s.Height*0.52}},
			{{X: cx, Y: s.Y + s.Height*0.40}, {X: s.X + s.Width*0.85, Y: s.Y + s.Height*0.52}},
			{{X: cx, Y: s.Y + s.Height*0.65}, {X: s.X + s.Width*0.25, Y: s.Y + s.Height*0.98}},
			{{X: cx, Y: s.Y + s.Height*0.65}, {X: s.X + s.Width*0.75, Y: s.Y + s.Height*0.98}},
		},
	}
}

func roundedRectPath(x, y, w, h, r float64) string {
	r = min(r, w/2, h/2)
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f L %.2f %.2f Q %.2f %.2f %.2f %.2f Z",
		x+r, y,
		x+w-r, y, x+w, y, x+w, y+r,
		x+w, y+h-r, x+w, y+h, x+w-r, y+h,
		x+r, y+h, x, y+h, x, y+h-r,
		x, y+r, x, y, x+r, y)
}

// calloutPointerBase returns the two base points of the pointer triangle
// on the bubble's bottom edge.
func calloutPointerBase(s *canvas.Shape) (canvas.Point, canvas.Point) {
	return canvas.Point{X: s.X + s.Width*0.25, Y: s.Y + s.Height},
		canvas.Point{X: s.X + s.Width*0.45, Y: s.Y + s.Height}
}
