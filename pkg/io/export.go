package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// WriteJSON encodes a board as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip
// processing.
func WriteJSON(b *canvas.Board, w io.Writer) error {
	if b == nil {
		return errors.New(errors.ErrCodeInvalidBoard, "cannot export a nil board")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode board")
	}
	return nil
}

// ExportJSON writes a board to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(b *canvas.Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(b, f)
}
