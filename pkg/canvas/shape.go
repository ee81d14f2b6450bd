package canvas

// ShapeType identifies one of the twelve shape kinds.
// Style builders switch exhaustively over this enum; values outside the
// enum render nothing.
type ShapeType string

// The closed set of shape kinds.
const (
	TypeRectangle ShapeType = "rectangle"
	TypeEllipse   ShapeType = "ellipse"
	TypeDiamond   ShapeType = "diamond"
	TypeCylinder  ShapeType = "cylinder"
	TypeCloud     ShapeType = "cloud"
	TypeHexagon   ShapeType = "hexagon"
	TypeDocument  ShapeType = "document"
	TypePerson    ShapeType = "person"
	TypeCallout   ShapeType = "callout"
	TypeLine      ShapeType = "line"
	TypeArrow     ShapeType = "arrow"
	TypeText      ShapeType = "text"
)

// Types lists all shape kinds in a stable order.
var Types = []ShapeType{
	TypeRectangle, TypeEllipse, TypeDiamond, TypeCylinder, TypeCloud,
	TypeHexagon, TypeDocument, TypePerson, TypeCallout,
	TypeLine, TypeArrow, TypeText,
}

// Valid reports whether t is one of the known shape kinds.
func (t ShapeType) Valid() bool {
	switch t {
	case TypeRectangle, TypeEllipse, TypeDiamond, TypeCylinder, TypeCloud,
		TypeHexagon, TypeDocument, TypePerson, TypeCallout,
		TypeLine, TypeArrow, TypeText:
		return true
	}
	return false
}

// BoxLike reports whether t is positioned by an (x, y, width, height) box.
func (t ShapeType) BoxLike() bool {
	switch t {
	case TypeRectangle, TypeEllipse, TypeDiamond, TypeCylinder, TypeCloud,
		TypeHexagon, TypeDocument, TypePerson, TypeCallout:
		return true
	}
	return false
}

// PathLike reports whether t carries a point sequence.
func (t ShapeType) PathLike() bool {
	return t == TypeLine || t == TypeArrow
}

// Point is a canvas-absolute coordinate.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Anchor names a fixed point on a shape's bounding box.
type Anchor string

// Anchor values. AnchorAuto resolves to the center; a nearest-side
// heuristic was considered and deliberately not implemented so that
// persisted geometry stays stable.
const (
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
	AnchorCenter Anchor = "center"
	AnchorAuto   Anchor = "auto"
)

// HeadStyle selects the decoration drawn at an arrow endpoint.
type HeadStyle string

// Arrow endpoint decorations.
const (
	HeadArrow    HeadStyle = "arrow"    // open V
	HeadTriangle HeadStyle = "triangle" // filled triangle
	HeadDiamond  HeadStyle = "diamond"  // filled kite
	HeadCircle   HeadStyle = "circle"   // filled dot
	HeadNone     HeadStyle = "none"
)

// Binding is a weak reference from an arrow endpoint to another shape.
// The target is resolved by id lookup at use time; a missing target is an
// ordinary optional result, never an error.
type Binding struct {
	TargetID string `json:"target_id" bson:"target_id"`
	Anchor   Anchor `json:"anchor,omitempty" bson:"anchor,omitempty"`
	Offset   *Point `json:"offset,omitempty" bson:"offset,omitempty"`
}

// Shape is the closed union over all twelve kinds. Which fields are
// meaningful depends on Type: box-like kinds use X/Y/Width/Height and
// Label, path-like kinds use Points plus the arrow fields, text uses
// X/Y/Label/FontSize. Unused fields stay at their zero value and are
// omitted from serialization.
type Shape struct {
	ID   string    `json:"id" bson:"id"`
	Type ShapeType `json:"type" bson:"type"`

	X float64 `json:"x,omitempty" bson:"x,omitempty"`
	Y float64 `json:"y,omitempty" bson:"y,omitempty"`

	Stroke      string   `json:"stroke,omitempty" bson:"stroke,omitempty"`
	Fill        string   `json:"fill,omitempty" bson:"fill,omitempty"`
	StrokeWidth float64  `json:"stroke_width,omitempty" bson:"stroke_width,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty" bson:"opacity,omitempty"` // nil = opaque

	// Box-like kinds.
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`
	Label  string  `json:"label,omitempty" bson:"label,omitempty"`

	// Callout pointer tip, as an offset from (X, Y). Nil selects the
	// default lower-left pointer.
	PointerX *float64 `json:"pointer_x,omitempty" bson:"pointer_x,omitempty"`
	PointerY *float64 `json:"pointer_y,omitempty" bson:"pointer_y,omitempty"`

	// Text kind.
	FontSize float64 `json:"font_size,omitempty" bson:"font_size,omitempty"`

	// Path-like kinds. Points are canvas-absolute; fewer than two points
	// renders nothing.
	Points []Point `json:"points,omitempty" bson:"points,omitempty"`
	Curved bool    `json:"curved,omitempty" bson:"curved,omitempty"`
	Dashed bool    `json:"dashed,omitempty" bson:"dashed,omitempty"`

	// Arrow kind.
	HeadStyle HeadStyle `json:"head_style,omitempty" bson:"head_style,omitempty"` // at the last point
	TailStyle HeadStyle `json:"tail_style,omitempty" bson:"tail_style,omitempty"` // at the first point
	Start     *Binding  `json:"start,omitempty" bson:"start,omitempty"`
	End       *Binding  `json:"end,omitempty" bson:"end,omitempty"`

	// Arrow label placement: fraction along the point sequence plus a
	// pixel offset applied last. Nil fraction means the midpoint.
	LabelPosition *float64 `json:"label_position,omitempty" bson:"label_position,omitempty"`
	LabelOffset   *Point   `json:"label_offset,omitempty" bson:"label_offset,omitempty"`
}

// Alpha returns the effective opacity, defaulting to 1 when unset.
func (s *Shape) Alpha() float64 {
	if s.Opacity == nil {
		return 1
	}
	if *s.Opacity < 0 {
		return 0
	}
	if *s.Opacity > 1 {
		return 1
	}
	return *s.Opacity
}

// LineWidth returns the effective stroke width, defaulting to 2.
func (s *Shape) LineWidth() float64 {
	if s.StrokeWidth <= 0 {
		return 2
	}
	return s.StrokeWidth
}

// LabelFraction returns the label position along a path-like shape,
// defaulting to the midpoint and clamped to [0, 1].
func (s *Shape) LabelFraction() float64 {
	if s.LabelPosition == nil {
		return 0.5
	}
	f := *s.LabelPosition
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Head returns the decoration at the last point of an arrow,
// defaulting to the open arrow head.
func (s *Shape) Head() HeadStyle {
	if s.HeadStyle == "" {
		return HeadArrow
	}
	return s.HeadStyle
}

// Tail returns the decoration at the first point of an arrow,
// defaulting to none.
func (s *Shape) Tail() HeadStyle {
	if s.TailStyle == "" {
		return HeadNone
	}
	return s.TailStyle
}

// Pointer returns the callout pointer tip in canvas coordinates. The
// default points down-left of the bubble.
func (s *Shape) Pointer() Point {
	px := s.Width * 0.2
	py := s.Height * 1.4
	if s.PointerX != nil {
		px = *s.PointerX
	}
	if s.PointerY != nil {
		py = *s.PointerY
	}
	return Point{X: s.X + px, Y: s.Y + py}
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := s
	if s.Opacity != nil {
		v := *s.Opacity
		out.Opacity = &v
	}
	if s.PointerX != nil {
		v := *s.PointerX
		out.PointerX = &v
	}
	if s.PointerY != nil {
		v := *s.PointerY
		out.PointerY = &v
	}
	if s.Points != nil {
		out.Points = make([]Point, len(s.Points))
		copy(out.Points, s.Points)
	}
	if s.Start != nil {
		b := *s.Start
		if s.Start.Offset != nil {
			o := *s.Start.Offset
			b.Offset = &o
		}
		out.Start = &b
	}
	if s.End != nil {
		b := *s.End
		if s.End.Offset != nil {
			o := *s.End.Offset
			b.Offset = &o
		}
		out.End = &b
	}
	if s.LabelPosition != nil {
		v := *s.LabelPosition
		out.LabelPosition = &v
	}
	if s.LabelOffset != nil {
		o := *s.LabelOffset
		out.LabelOffset = &o
	}
	return out
}
