package canvas

import "strings"

// Text metrics shared with the renderer's font fitting. Character width
// is an approximation of average glyph advance for a sans-serif face.
const (
	textCharWidth  = 0.55
	textLineHeight = 1.3
	textDefaultPt  = 20.0
)

// Bounds is an axis-aligned box in canvas coordinates.
type Bounds struct {
	MinX float64 `json:"min_x" bson:"min_x"`
	MinY float64 `json:"min_y" bson:"min_y"`
	MaxX float64 `json:"max_x" bson:"max_x"`
	MaxY float64 `json:"max_y" bson:"max_y"`
}

// DefaultBounds frames an empty canvas.
var DefaultBounds = Bounds{MinX: 0, MinY: 0, MaxX: 800, MaxY: 600}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Expand grows the box by pad on every side.
func (b Bounds) Expand(pad float64) Bounds {
	return Bounds{
		MinX: b.MinX - pad,
		MinY: b.MinY - pad,
		MaxX: b.MaxX + pad,
		MaxY: b.MaxY + pad,
	}
}

// Union returns the smallest box covering both.
func (b Bounds) Union(o Bounds) Bounds {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
	return b
}

// BBox returns the shape's bounding box. Box-like kinds use their
// position and size, path-like kinds the extent of their points, text an
// estimate from its font metrics. A path-like shape without points
// collapses to its position.
func (s *Shape) BBox() Bounds {
	switch {
	case s.Type.PathLike():
		if len(s.Points) == 0 {
			return Bounds{MinX: s.X, MinY: s.Y, MaxX: s.X, MaxY: s.Y}
		}
		b := Bounds{
			MinX: s.Points[0].X, MinY: s.Points[0].Y,
			MaxX: s.Points[0].X, MaxY: s.Points[0].Y,
		}
		for _, p := range s.Points[1:] {
			b = b.Union(Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
		}
		return b
	case s.Type == TypeText:
		size := s.FontSize
		if size <= 0 {
			size = textDefaultPt
		}
		lines := strings.Split(s.Label, "\n")
		longest := 0
		for _, ln := range lines {
			if n := len([]rune(ln)); n > longest {
				longest = n
			}
		}
		w := float64(longest) * size * textCharWidth
		h := float64(len(lines)) * size * textLineHeight
		return Bounds{MinX: s.X, MinY: s.Y, MaxX: s.X + w, MaxY: s.Y + h}
	default:
		return Bounds{MinX: s.X, MinY: s.Y, MaxX: s.X + s.Width, MaxY: s.Y + s.Height}
	}
}

// CalculateBounds unions the bounding boxes of all shapes and expands the
// result by padding on every side. An empty shape list returns
// DefaultBounds with no padding applied.
func CalculateBounds(shapes []Shape, padding float64) Bounds {
	if len(shapes) == 0 {
		return DefaultBounds
	}
	b := shapes[0].BBox()
	for i := range shapes[1:] {
		b = b.Union(shapes[i+1].BBox())
	}
	return b.Expand(padding)
}
