package rough

import (
	"strings"
	"testing"

	"github.com/sketchwall/sketchwall/pkg/canvas"
)

func TestRNG(t *testing.T) {
	rng := NewRNG(42)
	if rng == nil {
		t.Fatal("NewRNG() returned nil")
	}

	// Values stay in [0, 1).
	for i := 0; i < 1000; i++ {
		v := rng.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() = %f, should be in [0, 1)", v)
		}
	}

	// Same seed, same stream.
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 20; i++ {
		if va, vb := a.Next(), b.Next(); va != vb {
			t.Fatalf("stream diverged at draw %d: %f != %f", i, va, vb)
		}
	}

	// Different seeds diverge.
	c, d := NewRNG(1), NewRNG(2)
	same := true
	for i := 0; i < 10; i++ {
		if c.Next() != d.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}

	// Negative seeds are usable.
	neg := NewRNG(-7)
	if v := neg.Next(); v < 0 || v >= 1 {
		t.Errorf("Next() with negative seed = %f, should be in [0, 1)", v)
	}
}

func TestJitter(t *testing.T) {
	p := canvas.Point{X: 10, Y: 20}

	got := Jitter(p, 0, NewRNG(1))
	if got != p {
		t.Errorf("Jitter() with zero amount = %+v, want %+v", got, p)
	}

	rng := NewRNG(1)
	moved := Jitter(p, 4, rng)
	if dx := moved.X - p.X; dx < -2 || dx > 2 {
		t.Errorf("Jitter() x displacement %f outside [-2, 2]", dx)
	}
	if dy := moved.Y - p.Y; dy < -2 || dy > 2 {
		t.Errorf("Jitter() y displacement %f outside [-2, 2]", dy)
	}
}

func TestLine(t *testing.T) {
	p1 := canvas.Point{X: 0, Y: 0}
	p2 := canvas.Point{X: 100, Y: 0}

	d1 := Line(p1, p2, 1, NewRNG(42))
	d2 := Line(p1, p2, 1, NewRNG(42))
	if d1 != d2 {
		t.Error("Line() should be deterministic for a fixed seed")
	}
	if !strings.HasPrefix(d1, "M") || !strings.Contains(d1, "Q") {
		t.Errorf("Line() = %q, want M...Q... form", d1)
	}

	d3 := Line(p1, p2, 1, NewRNG(43))
	if d1 == d3 {
		t.Error("Line() should vary with the seed")
	}

	// Zero roughness degrades to the exact segment.
	exact := Line(p1, p2, 0, NewRNG(42))
	if exact != "M 0.00 0.00 Q 50.00 0.00 100.00 0.00" {
		t.Errorf("Line() with zero roughness = %q", exact)
	}
}

func TestEllipse(t *testing.T) {
	d := Ellipse(50, 50, 30, 20, 1, NewRNG(42))
	if !strings.HasPrefix(d, "M") {
		t.Errorf("Ellipse() should start with M, got %q", d)
	}
	if !strings.HasSuffix(d, "Z") {
		t.Errorf("Ellipse() should close with Z, got %q", d)
	}
	if got := strings.Count(d, "Q"); got != 24 {
		t.Errorf("Ellipse() has %d segments, want 24", got)
	}

	if d2 := Ellipse(50, 50, 30, 20, 1, NewRNG(42)); d2 != d {
		t.Error("Ellipse() should be deterministic for a fixed seed")
	}
}

func TestStraightPath(t *testing.T) {
	if got := StraightPath(nil); got != "" {
		t.Errorf("StraightPath(nil) = %q, want empty", got)
	}
	if got := StraightPath([]canvas.Point{{X: 1, Y: 1}}); got != "" {
		t.Errorf("StraightPath() with one point = %q, want empty", got)
	}
	got := StraightPath([]canvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}})
	want := "M 0.00 0.00 L 10.00 0.00 L 10.00 5.00"
	if got != want {
		t.Errorf("StraightPath() = %q, want %q", got, want)
	}
}

func TestCurvedPath(t *testing.T) {
	if got := CurvedPath([]canvas.Point{{X: 1, Y: 1}}, 1, NewRNG(1)); got != "" {
		t.Errorf("CurvedPath() with one point = %q, want empty", got)
	}

	two := []canvas.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
	d := CurvedPath(two, 0, NewRNG(1))
	// Exact bow: control sits bowFactor of the length off the midpoint.
	want := "M 0.00 0.00 Q 50.00 15.00 100.00 0.00"
	if d != want {
		t.Errorf("CurvedPath() two-point = %q, want %q", d, want)
	}

	many := []canvas.Point{{X: 0, Y: 0}, {X: 50, Y: 40}, {X: 100, Y: 0}, {X: 150, Y: 40}}
	dm := CurvedPath(many, 1, NewRNG(7))
	if got := strings.Count(dm, "Q"); got != 2 {
		t.Errorf("CurvedPath() has %d quadratics, want 2", got)
	}
	if !strings.HasSuffix(dm, "150.00 40.00") {
		t.Errorf("CurvedPath() should end on the last point, got %q", dm)
	}
	if dm != CurvedPath(many, 1, NewRNG(7)) {
		t.Error("CurvedPath() should be deterministic for a fixed seed")
	}
}

func TestSmoothPath(t *testing.T) {
	pts := []canvas.Point{{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 120, Y: 60}, {X: 180, Y: 60}}
	d := SmoothPath(pts)
	if !strings.HasPrefix(d, "M 0.00 0.00") {
		t.Errorf("SmoothPath() should start at the first point, got %q", d)
	}
	if got := strings.Count(d, "C"); got != 3 {
		t.Errorf("SmoothPath() has %d cubics, want 3", got)
	}
	if !strings.HasSuffix(d, "180.00 60.00") {
		t.Errorf("SmoothPath() should end on the last point, got %q", d)
	}

	// First control point of the first segment: p1 + (p2-p0)/6 with the
	// leading neighbor clamped to p0 itself.
	if !strings.Contains(d, "C 10.00 0.00") {
		t.Errorf("SmoothPath() first control point wrong, got %q", d)
	}

	// No jitter anywhere: repeated calls are identical without any seed.
	if d != SmoothPath(pts) {
		t.Error("SmoothPath() should be pure")
	}
}

func TestArrowHead(t *testing.T) {
	tip := canvas.Point{X: 100, Y: 100}

	d, filled := ArrowHead(tip, 0, canvas.HeadArrow, 12)
	if filled {
		t.Error("ArrowHead(arrow) should be an open stroke")
	}
	if !strings.HasPrefix(d, "M") || strings.HasSuffix(d, "Z") {
		t.Errorf("ArrowHead(arrow) = %q, want an open V", d)
	}

	d, filled = ArrowHead(tip, 0, canvas.HeadTriangle, 12)
	if !filled || !strings.HasSuffix(d, "Z") {
		t.Errorf("ArrowHead(triangle) = %q filled=%v, want closed filled path", d, filled)
	}

	d, filled = ArrowHead(tip, 0, canvas.HeadDiamond, 12)
	if !filled || strings.Count(d, "L") != 3 {
		t.Errorf("ArrowHead(diamond) = %q filled=%v, want 4-vertex kite", d, filled)
	}

	d, filled = ArrowHead(tip, 0, canvas.HeadCircle, 12)
	if !filled || !strings.Contains(d, "A") {
		t.Errorf("ArrowHead(circle) = %q filled=%v, want filled arcs", d, filled)
	}

	if d, _ = ArrowHead(tip, 0, canvas.HeadNone, 12); d != "" {
		t.Errorf("ArrowHead(none) = %q, want empty", d)
	}
	if d, _ = ArrowHead(tip, 0, canvas.HeadStyle("bolt"), 12); d != "" {
		t.Errorf("ArrowHead(unknown) = %q, want empty", d)
	}
}
