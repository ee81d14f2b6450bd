package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// ReadJSON decodes a board from r.
//
// Shapes without an id are assigned fresh UUIDs. Duplicate shape ids
// are rejected, since bindings and the API address shapes by id.
// Unknown shape types pass through untouched; the renderers skip them.
//
// The returned board is independent of r and can be modified safely
// after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*canvas.Board, error) {
	var b canvas.Board
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "decode board")
	}
	if err := Normalize(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ImportJSON reads a board from a JSON file at path.
// This is a convenience wrapper around [ReadJSON] for file-based input.
func ImportJSON(path string) (*canvas.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
	}
	defer f.Close()

	b, err := ReadJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "import %s", path)
	}
	return b, nil
}

// Normalize validates board invariants and fills generated fields.
// It assigns UUIDs to shapes missing an id and rejects duplicate ids,
// unprintable board names and malformed colors. Colors are checked here
// because they are emitted verbatim into SVG attributes downstream.
// Safe to call on boards from any source, not just JSON input.
func Normalize(b *canvas.Board) error {
	if err := errors.ValidateBoardName(b.Name); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(b.Shapes))
	for i := range b.Shapes {
		s := &b.Shapes[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if _, dup := seen[s.ID]; dup {
			return errors.New(errors.ErrCodeInvalidBoard, "duplicate shape id %q", s.ID)
		}
		seen[s.ID] = struct{}{}

		if err := errors.ValidateColor(s.Stroke); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBoard, err, "shape %q stroke", s.ID)
		}
		if err := errors.ValidateColor(s.Fill); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBoard, err, "shape %q fill", s.ID)
		}
	}
	return nil
}
