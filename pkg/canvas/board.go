package canvas

import (
	"time"
)

// Board is a named collection of shapes in z-order: earlier shapes render
// first, later shapes on top.
type Board struct {
	ID         string    `json:"id" bson:"id"`
	Name       string    `json:"name,omitempty" bson:"name,omitempty"`
	Shapes     []Shape   `json:"shapes" bson:"shapes"`
	Background string    `json:"background,omitempty" bson:"background,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Shape returns the shape with the given id, or nil if absent.
func (b *Board) Shape(id string) *Shape {
	for i := range b.Shapes {
		if b.Shapes[i].ID == id {
			return &b.Shapes[i]
		}
	}
	return nil
}

// Index returns the z-order position of a shape id, or -1 if absent.
func (b *Board) Index(id string) int {
	for i := range b.Shapes {
		if b.Shapes[i].ID == id {
			return i
		}
	}
	return -1
}

// Remove deletes the shape with the given id, preserving the order of the
// rest. It reports whether a shape was removed. Bindings that referenced
// the shape are left in place; they resolve to nothing afterwards.
func (b *Board) Remove(id string) bool {
	i := b.Index(id)
	if i < 0 {
		return false
	}
	b.Shapes = append(b.Shapes[:i], b.Shapes[i+1:]...)
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := *b
	out.Shapes = make([]Shape, len(b.Shapes))
	for i := range b.Shapes {
		out.Shapes[i] = b.Shapes[i].Clone()
	}
	return &out
}
