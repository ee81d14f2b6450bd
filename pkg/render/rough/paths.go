package rough

import (
	"fmt"
	"math"
	"strings"

	"github.com/sketchwall/sketchwall/pkg/canvas"
)

const (
	// HeadSize is the default arrow head wing length in pixels.
	HeadSize = 12

	// arrowWingAngle positions the wing points relative to the shaft
	// direction.
	arrowWingAngle = 0.8 * math.Pi

	// bowFactor bows two-point curves by a fraction of their length.
	bowFactor = 0.15

	ellipseSteps = 24
)

// Jitter displaces each axis by an independent uniform draw in
// (-0.5, 0.5) scaled by amount. Two draws are consumed even when amount
// is zero.
func Jitter(p canvas.Point, amount float64, rng *RNG) canvas.Point {
	return canvas.Point{
		X: p.X + (rng.Next()-0.5)*amount,
		Y: p.Y + (rng.Next()-0.5)*amount,
	}
}

func midpoint(a, b canvas.Point) canvas.Point {
	return canvas.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Line returns a bowed quadratic segment between jittered copies of p1
// and p2. Endpoints move with amount roughness*2, the control point with
// amount roughness*3 around the midpoint.
func Line(p1, p2 canvas.Point, roughness float64, rng *RNG) string {
	a := Jitter(p1, roughness*2, rng)
	b := Jitter(p2, roughness*2, rng)
	ctrl := Jitter(midpoint(a, b), roughness*3, rng)
	return fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f",
		a.X, a.Y, ctrl.X, ctrl.Y, b.X, b.Y)
}

// Ellipse returns a closed loop through 24 jittered samples of the
// ellipse around (cx, cy), linked by quadratic segments whose control
// points carry a further offset with amount roughness.
func Ellipse(cx, cy, rx, ry, roughness float64, rng *RNG) string {
	pts := make([]canvas.Point, ellipseSteps)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / ellipseSteps
		pts[i] = Jitter(canvas.Point{
			X: cx + rx*math.Cos(angle),
			Y: cy + ry*math.Sin(angle),
		}, roughness*2, rng)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "M %.2f %.2f", pts[0].X, pts[0].Y)
	for i := 1; i <= ellipseSteps; i++ {
		cur := pts[i%ellipseSteps]
		ctrl := Jitter(midpoint(pts[i-1], cur), roughness, rng)
		fmt.Fprintf(&sb, " Q %.2f %.2f %.2f %.2f", ctrl.X, ctrl.Y, cur.X, cur.Y)
	}
	sb.WriteString(" Z")
	return sb.String()
}

// bowControl is the control point of a two-point curve: the midpoint
// displaced along the perpendicular by bowFactor of the segment length.
func bowControl(p1, p2 canvas.Point) canvas.Point {
	return canvas.Point{
		X: (p1.X+p2.X)/2 - (p2.Y-p1.Y)*bowFactor,
		Y: (p1.Y+p2.Y)/2 + (p2.X-p1.X)*bowFactor,
	}
}

// StraightPath joins points with exact line segments. Fewer than two
// points produce no output.
func StraightPath(points []canvas.Point) string {
	if len(points) < 2 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "M %.2f %.2f", points[0].X, points[0].Y)
	for _, p := range points[1:] {
		fmt.Fprintf(&sb, " L %.2f %.2f", p.X, p.Y)
	}
	return sb.String()
}

// CurvedPath returns a hand-drawn curve through points. Two points bow
// through one jittered quadratic. Longer sequences chain quadratics whose
// controls are the jittered interior points, joining at segment
// midpoints, so the curve re-traces the original sequence. Fewer than two
// points produce no output.
func CurvedPath(points []canvas.Point, roughness float64, rng *RNG) string {
	if len(points) < 2 {
		return ""
	}
	if len(points) == 2 {
		ctrl := Jitter(bowControl(points[0], points[1]), roughness*2, rng)
		return fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f",
			points[0].X, points[0].Y, ctrl.X, ctrl.Y, points[1].X, points[1].Y)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "M %.2f %.2f", points[0].X, points[0].Y)
	n := len(points)
	for i := 1; i < n-1; i++ {
		ctrl := Jitter(points[i], roughness*2, rng)
		end := midpoint(points[i], points[i+1])
		if i == n-2 {
			end = points[n-1]
		}
		fmt.Fprintf(&sb, " Q %.2f %.2f %.2f %.2f", ctrl.X, ctrl.Y, end.X, end.Y)
	}
	return sb.String()
}

// SmoothPath interpolates points with cubic segments whose control points
// derive from a Catmull-Rom spline, clamping the neighbor lookups at the
// sequence ends. Two points produce a single exact bowed quadratic. Fewer
// than two points produce no output.
func SmoothPath(points []canvas.Point) string {
	if len(points) < 2 {
		return ""
	}
	if len(points) == 2 {
		ctrl := bowControl(points[0], points[1])
		return fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f",
			points[0].X, points[0].Y, ctrl.X, ctrl.Y, points[1].X, points[1].Y)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "M %.2f %.2f", points[0].X, points[0].Y)
	n := len(points)
	for i := 0; i < n-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, n-1)]
		cp1 := canvas.Point{X: p1.X + (p2.X-p0.X)/6, Y: p1.Y + (p2.Y-p0.Y)/6}
		cp2 := canvas.Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6}
		fmt.Fprintf(&sb, " C %.2f %.2f %.2f %.2f %.2f %.2f",
			cp1.X, cp1.Y, cp2.X, cp2.Y, p2.X, p2.Y)
	}
	return sb.String()
}

// ArrowHead returns path data decorating an endpoint at tip, approached
// along direction angle in radians. The boolean reports whether the path
// is filled. HeadNone and unknown styles return no output.
func ArrowHead(tip canvas.Point, angle float64, style canvas.HeadStyle, size float64) (string, bool) {
	if size <= 0 {
		size = HeadSize
	}
	w1 := canvas.Point{
		X: tip.X + size*math.Cos(angle+arrowWingAngle),
		Y: tip.Y + size*math.Sin(angle+arrowWingAngle),
	}
	w2 := canvas.Point{
		X: tip.X + size*math.Cos(angle-arrowWingAngle),
		Y: tip.Y + size*math.Sin(angle-arrowWingAngle),
	}

	switch style {
	case canvas.HeadArrow:
		return fmt.Sprintf("M %.2f %.2f L %.2f %.2f L %.2f %.2f",
			w1.X, w1.Y, tip.X, tip.Y, w2.X, w2.Y), false
	case canvas.HeadTriangle:
		return fmt.Sprintf("M %.2f %.2f L %.2f %.2f L %.2f %.2f Z",
			tip.X, tip.Y, w1.X, w1.Y, w2.X, w2.Y), true
	case canvas.HeadDiamond:
		// The rear vertex mirrors the tip across the wing midline.
		back := canvas.Point{
			X: tip.X - 1.6*size*math.Cos(angle),
			Y: tip.Y - 1.6*size*math.Sin(angle),
		}
		return fmt.Sprintf("M %.2f %.2f L %.2f %.2f L %.2f %.2f L %.2f %.2f Z",
			tip.X, tip.Y, w1.X, w1.Y, back.X, back.Y, w2.X, w2.Y), true
	case canvas.HeadCircle:
		r := size * 0.4
		return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 1 0 %.2f %.2f A %.2f %.2f 0 1 0 %.2f %.2f Z",
			tip.X-r, tip.Y, r, r, tip.X+r, tip.Y, r, r, tip.X-r, tip.Y), true
	default:
		return "", false
	}
}
