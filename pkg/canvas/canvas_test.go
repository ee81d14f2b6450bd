package canvas

import (
	"testing"
)

func box(id string, x, y, w, h float64) Shape {
	return Shape{ID: id, Type: TypeRectangle, X: x, Y: y, Width: w, Height: h}
}

func TestCalculateBounds_Empty(t *testing.T) {
	for _, pad := range []float64{0, 10, 500} {
		got := CalculateBounds(nil, pad)
		if got != DefaultBounds {
			t.Errorf("CalculateBounds(nil, %v) = %+v, want default %+v", pad, got, DefaultBounds)
		}
	}
}

func TestCalculateBounds_Union(t *testing.T) {
	shapes := []Shape{
		box("a", 0, 0, 100, 50),
		box("b", 200, 200, 50, 50),
	}
	got := CalculateBounds(shapes, 10)
	want := Bounds{MinX: -10, MinY: -10, MaxX: 260, MaxY: 260}
	if got != want {
		t.Errorf("CalculateBounds() = %+v, want %+v", got, want)
	}
}

func TestCalculateBounds_Points(t *testing.T) {
	shapes := []Shape{
		{ID: "l", Type: TypeLine, Points: []Point{{X: -5, Y: 30}, {X: 40, Y: -20}}},
	}
	got := CalculateBounds(shapes, 0)
	want := Bounds{MinX: -5, MinY: -20, MaxX: 40, MaxY: 30}
	if got != want {
		t.Errorf("CalculateBounds() = %+v, want %+v", got, want)
	}
}

func TestBBox_Text(t *testing.T) {
	s := Shape{ID: "t", Type: TypeText, X: 10, Y: 20, Label: "ab\nabcd", FontSize: 10}
	b := s.BBox()
	// Longest line has 4 runes at 0.55 width units per rune.
	wantW := 4 * 10 * textCharWidth
	wantH := 2 * 10 * textLineHeight
	if b.MinX != 10 || b.MinY != 20 {
		t.Errorf("BBox() origin = (%v, %v), want (10, 20)", b.MinX, b.MinY)
	}
	if b.Width() != wantW {
		t.Errorf("BBox() width = %v, want %v", b.Width(), wantW)
	}
	if b.Height() != wantH {
		t.Errorf("BBox() height = %v, want %v", b.Height(), wantH)
	}
}

func TestAnchorPoint(t *testing.T) {
	shape := box("a", 10, 10, 100, 50)
	tests := []struct {
		anchor Anchor
		want   Point
	}{
		{AnchorTop, Point{X: 60, Y: 10}},
		{AnchorBottom, Point{X: 60, Y: 60}},
		{AnchorLeft, Point{X: 10, Y: 35}},
		{AnchorRight, Point{X: 110, Y: 35}},
		{AnchorCenter, Point{X: 60, Y: 35}},
		{AnchorAuto, Point{X: 60, Y: 35}},
		{Anchor(""), Point{X: 60, Y: 35}},
	}
	for _, tt := range tests {
		if got := AnchorPoint(&shape, tt.anchor); got != tt.want {
			t.Errorf("AnchorPoint(%q) = %+v, want %+v", tt.anchor, got, tt.want)
		}
	}
}

func TestUpdateBoundArrows(t *testing.T) {
	shapes := []Shape{
		box("target", 10, 10, 100, 50),
		{
			ID:     "bound",
			Type:   TypeArrow,
			Points: []Point{{X: 0, Y: 0}, {X: 300, Y: 300}},
			Start:  &Binding{TargetID: "target", Anchor: AnchorRight},
			End:    &Binding{TargetID: "other", Anchor: AnchorLeft},
		},
		{
			ID:     "offset",
			Type:   TypeArrow,
			Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
			End:    &Binding{TargetID: "target", Anchor: AnchorBottom, Offset: &Point{X: 3, Y: -4}},
		},
		{
			ID:     "unbound",
			Type:   TypeArrow,
			Points: []Point{{X: 5, Y: 5}, {X: 6, Y: 6}},
		},
	}

	changed := UpdateBoundArrows(&shapes[0], shapes)
	if len(changed) != 2 {
		t.Fatalf("UpdateBoundArrows() returned %d arrows, want 2", len(changed))
	}

	if got, want := shapes[1].Points[0], (Point{X: 110, Y: 35}); got != want {
		t.Errorf("start endpoint = %+v, want %+v", got, want)
	}
	// The end binding targets a different id and must stay put.
	if got, want := shapes[1].Points[1], (Point{X: 300, Y: 300}); got != want {
		t.Errorf("unrelated endpoint moved to %+v", got)
	}
	// Bottom anchor (60, 60) plus offset (3, -4).
	if got, want := shapes[2].Points[2], (Point{X: 63, Y: 56}); got != want {
		t.Errorf("offset endpoint = %+v, want %+v", got, want)
	}
	// Middle points are never rewritten.
	if got, want := shapes[2].Points[1], (Point{X: 1, Y: 1}); got != want {
		t.Errorf("middle point moved to %+v", got)
	}
}

func TestUpdateBoundArrows_Dangling(t *testing.T) {
	shapes := []Shape{
		box("present", 0, 0, 10, 10),
		{
			ID:     "a1",
			Type:   TypeArrow,
			Points: []Point{{X: 0, Y: 0}, {X: 5, Y: 5}},
			Start:  &Binding{TargetID: "deleted", Anchor: AnchorCenter},
		},
	}
	moved := box("present", 100, 100, 10, 10)
	if changed := UpdateBoundArrows(&moved, shapes); len(changed) != 0 {
		t.Errorf("UpdateBoundArrows() with dangling binding returned %d arrows, want 0", len(changed))
	}
	if got, want := shapes[1].Points[0], (Point{X: 0, Y: 0}); got != want {
		t.Errorf("dangling endpoint moved to %+v", got)
	}
}

func TestUpdateBoundArrows_TooFewPoints(t *testing.T) {
	shapes := []Shape{
		{
			ID:     "stub",
			Type:   TypeArrow,
			Points: []Point{{X: 0, Y: 0}},
			Start:  &Binding{TargetID: "target"},
		},
	}
	moved := box("target", 0, 0, 10, 10)
	if changed := UpdateBoundArrows(&moved, shapes); len(changed) != 0 {
		t.Errorf("UpdateBoundArrows() on a 1-point arrow returned %d arrows, want 0", len(changed))
	}
}

func TestShapeDefaults(t *testing.T) {
	s := Shape{Type: TypeRectangle}
	if got := s.Alpha(); got != 1 {
		t.Errorf("Alpha() default = %v, want 1", got)
	}
	if got := s.LineWidth(); got != 2 {
		t.Errorf("LineWidth() default = %v, want 2", got)
	}
	if got := s.LabelFraction(); got != 0.5 {
		t.Errorf("LabelFraction() default = %v, want 0.5", got)
	}

	over := 1.5
	s.Opacity = &over
	if got := s.Alpha(); got != 1 {
		t.Errorf("Alpha() clamped = %v, want 1", got)
	}
	frac := -0.2
	s.LabelPosition = &frac
	if got := s.LabelFraction(); got != 0 {
		t.Errorf("LabelFraction() clamped = %v, want 0", got)
	}
}

func TestShapeTypeSets(t *testing.T) {
	for _, typ := range Types {
		if !typ.Valid() {
			t.Errorf("Valid(%q) = false", typ)
		}
	}
	if ShapeType("sticker").Valid() {
		t.Error("Valid() accepted an unknown kind")
	}
	if !TypeCallout.BoxLike() || TypeArrow.BoxLike() {
		t.Error("BoxLike() misclassified a kind")
	}
	if !TypeLine.PathLike() || TypeText.PathLike() {
		t.Error("PathLike() misclassified a kind")
	}
}

func TestShapeClone(t *testing.T) {
	op := 0.5
	orig := Shape{
		ID:     "a",
		Type:   TypeArrow,
		Points: []Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
		Start:  &Binding{TargetID: "t", Offset: &Point{X: 1, Y: 1}},
		Opacity: func() *float64 {
			return &op
		}(),
	}
	clone := orig.Clone()
	clone.Points[0].X = 99
	clone.Start.Offset.X = 99
	*clone.Opacity = 0.9

	if orig.Points[0].X != 1 {
		t.Error("Clone() shares the points slice")
	}
	if orig.Start.Offset.X != 1 {
		t.Error("Clone() shares the binding offset")
	}
	if *orig.Opacity != 0.5 {
		t.Error("Clone() shares the opacity pointer")
	}
}

func TestBoardLookup(t *testing.T) {
	b := &Board{
		ID:     "board",
		Shapes: []Shape{box("a", 0, 0, 1, 1), box("b", 1, 1, 2, 2)},
	}
	if got := b.Shape("b"); got == nil || got.ID != "b" {
		t.Fatalf("Shape(b) = %+v", got)
	}
	if got := b.Shape("missing"); got != nil {
		t.Errorf("Shape(missing) = %+v, want nil", got)
	}
	if got := b.Index("a"); got != 0 {
		t.Errorf("Index(a) = %d, want 0", got)
	}

	if !b.Remove("a") {
		t.Fatal("Remove(a) = false")
	}
	if b.Remove("a") {
		t.Error("Remove(a) twice = true")
	}
	if len(b.Shapes) != 1 || b.Shapes[0].ID != "b" {
		t.Errorf("Shapes after remove = %+v", b.Shapes)
	}

	clone := b.Clone()
	clone.Shapes[0].X = 42
	if b.Shapes[0].X == 42 {
		t.Error("Clone() shares the shape slice")
	}
}
