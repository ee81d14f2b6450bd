package server

import (
	"github.com/google/uuid"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// Shape mutations shared by the REST handlers and the websocket. Each
// runs inside Manager.Update, so a helper sees a private board copy and
// its changes commit atomically or not at all.

// checkShape rejects shapes that cannot be rendered or stored safely.
// Colors are validated because they end up in SVG attributes as-is.
func checkShape(shape *canvas.Shape) error {
	if !shape.Type.Valid() {
		return errors.New(errors.ErrCodeInvalidShape, "unknown shape type %q", shape.Type)
	}
	if err := errors.ValidateColor(shape.Stroke); err != nil {
		return err
	}
	return errors.ValidateColor(shape.Fill)
}

func applyAddShape(b *canvas.Board, shape *canvas.Shape) error {
	if err := checkShape(shape); err != nil {
		return err
	}

	if shape.ID == "" {
		shape.ID = uuid.NewString()
	} else {
		if err := errors.ValidateShapeID(shape.ID); err != nil {
			return err
		}
		if b.Shape(shape.ID) != nil {
			return errors.New(errors.ErrCodeInvalidShape, "duplicate shape id %q", shape.ID)
		}
	}

	b.Shapes = append(b.Shapes, *shape)
	return nil
}

func applyUpdateShape(b *canvas.Board, shapeID string, shape *canvas.Shape) error {
	i := b.Index(shapeID)
	if i < 0 {
		return errors.New(errors.ErrCodeShapeNotFound, "shape %q not found", shapeID)
	}
	if err := checkShape(shape); err != nil {
		return err
	}

	shape.ID = shapeID
	b.Shapes[i] = *shape
	canvas.UpdateBoundArrows(&b.Shapes[i], b.Shapes)
	return nil
}

func applyDeleteShape(b *canvas.Board, shapeID string) error {
	if !b.Remove(shapeID) {
		return errors.New(errors.ErrCodeShapeNotFound, "shape %q not found", shapeID)
	}
	return nil
}

// applyMoveShape repositions a shape and refreshes every arrow bound to
// it, one committed change. Box-like and text shapes move their origin;
// path-like shapes translate all points so the first lands on (x, y).
func applyMoveShape(b *canvas.Board, shapeID string, x, y float64) error {
	s := b.Shape(shapeID)
	if s == nil {
		return errors.New(errors.ErrCodeShapeNotFound, "shape %q not found", shapeID)
	}

	if s.Type.PathLike() {
		if len(s.Points) == 0 {
			return errors.New(errors.ErrCodeInvalidShape, "shape %q has no points to move", shapeID)
		}
		dx, dy := x-s.Points[0].X, y-s.Points[0].Y
		for i := range s.Points {
			s.Points[i].X += dx
			s.Points[i].Y += dy
		}
	} else {
		s.X, s.Y = x, y
	}

	canvas.UpdateBoundArrows(s, b.Shapes)
	return nil
}
