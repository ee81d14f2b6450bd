package canvas

// AnchorPoint resolves a named anchor to a point on the shape's bounding
// box. Auto and unknown anchors resolve to the center.
func AnchorPoint(s *Shape, anchor Anchor) Point {
	box := s.BBox()
	cx := (box.MinX + box.MaxX) / 2
	cy := (box.MinY + box.MaxY) / 2
	switch anchor {
	case AnchorTop:
		return Point{X: cx, Y: box.MinY}
	case AnchorBottom:
		return Point{X: cx, Y: box.MaxY}
	case AnchorLeft:
		return Point{X: box.MinX, Y: cy}
	case AnchorRight:
		return Point{X: box.MaxX, Y: cy}
	default:
		return Point{X: cx, Y: cy}
	}
}

func resolveBinding(moved *Shape, b *Binding) Point {
	p := AnchorPoint(moved, b.Anchor)
	if b.Offset != nil {
		p.X += b.Offset.X
		p.Y += b.Offset.Y
	}
	return p
}

// UpdateBoundArrows refreshes the endpoints of every arrow bound to the
// moved shape. Matching start bindings rewrite the arrow's first point,
// matching end bindings its last point. Arrows are mutated in place and
// the changed ones returned so the caller can persist the move and the
// affected arrows as one batch. Bindings to other ids, including ids no
// longer present, are left untouched.
func UpdateBoundArrows(moved *Shape, shapes []Shape) []*Shape {
	var changed []*Shape
	for i := range shapes {
		arrow := &shapes[i]
		if arrow.Type != TypeArrow || len(arrow.Points) < 2 {
			continue
		}
		touched := false
		if arrow.Start != nil && arrow.Start.TargetID == moved.ID {
			arrow.Points[0] = resolveBinding(moved, arrow.Start)
			touched = true
		}
		if arrow.End != nil && arrow.End.TargetID == moved.ID {
			arrow.Points[len(arrow.Points)-1] = resolveBinding(moved, arrow.End)
			touched = true
		}
		if touched {
			changed = append(changed, arrow)
		}
	}
	return changed
}
