package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

const sampleBoard = `{
  "id": "sprint-42",
  "name": "Sprint 42",
  "shapes": [
    {"id": "api", "type": "rectangle", "x": 0, "y": 0, "width": 160, "height": 90, "label": "API"},
    {"id": "link", "type": "arrow", "points": [{"x": 160, "y": 45}, {"x": 260, "y": 45}],
     "start": {"target_id": "api", "anchor": "right"}}
  ]
}`

func TestReadJSON(t *testing.T) {
	b, err := ReadJSON(strings.NewReader(sampleBoard))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}

	if b.ID != "sprint-42" || len(b.Shapes) != 2 {
		t.Fatalf("board = %s with %d shapes", b.ID, len(b.Shapes))
	}
	if b.Shapes[0].Type != canvas.TypeRectangle || b.Shapes[0].Width != 160 {
		t.Errorf("first shape wrong: %+v", b.Shapes[0])
	}

	arrow := b.Shapes[1]
	if arrow.Start == nil || arrow.Start.TargetID != "api" || arrow.Start.Anchor != canvas.AnchorRight {
		t.Errorf("binding not decoded: %+v", arrow.Start)
	}
	if len(arrow.Points) != 2 || arrow.Points[1].X != 260 {
		t.Errorf("points not decoded: %+v", arrow.Points)
	}
}

func TestReadJSON_AssignsMissingIDs(t *testing.T) {
	b, err := ReadJSON(strings.NewReader(`{"id": "b", "shapes": [{"type": "rectangle"}, {"type": "ellipse"}]}`))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}

	if b.Shapes[0].ID == "" || b.Shapes[1].ID == "" {
		t.Error("missing shape ids were not generated")
	}
	if b.Shapes[0].ID == b.Shapes[1].ID {
		t.Error("generated ids collide")
	}
}

func TestReadJSON_DuplicateIDs(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"id": "b", "shapes": [{"id": "x", "type": "rectangle"}, {"id": "x", "type": "ellipse"}]}`))
	if !errors.Is(err, errors.ErrCodeInvalidBoard) {
		t.Errorf("duplicate ids error = %v, want INVALID_BOARD", err)
	}
}

func TestReadJSON_UnknownTypePreserved(t *testing.T) {
	b, err := ReadJSON(strings.NewReader(`{"id": "b", "shapes": [{"id": "x", "type": "starburst"}]}`))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if b.Shapes[0].Type != canvas.ShapeType("starburst") {
		t.Errorf("unknown type not preserved: %q", b.Shapes[0].Type)
	}
}

func TestReadJSON_Malformed(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"id": `))
	if !errors.Is(err, errors.ErrCodeInvalidBoard) {
		t.Errorf("malformed input error = %v, want INVALID_BOARD", err)
	}
}

func TestReadJSON_RejectsMalformedColors(t *testing.T) {
	// Colors are emitted into SVG attributes, so strings with quotes or
	// spaces must never survive import.
	inputs := []string{
		`{"id": "b", "shapes": [{"id": "x", "type": "rectangle", "stroke": "red\" onload=\"x"}]}`,
		`{"id": "b", "shapes": [{"id": "x", "type": "rectangle", "fill": "#12"}]}`,
	}
	for _, in := range inputs {
		if _, err := ReadJSON(strings.NewReader(in)); !errors.Is(err, errors.ErrCodeInvalidBoard) {
			t.Errorf("ReadJSON(%s) error = %v, want INVALID_BOARD", in, err)
		}
	}

	// Hex and named colors pass.
	b, err := ReadJSON(strings.NewReader(`{"id": "b", "shapes": [{"id": "x", "type": "rectangle", "stroke": "#1a2b3c", "fill": "orange"}]}`))
	if err != nil {
		t.Fatalf("ReadJSON with valid colors: %v", err)
	}
	if b.Shapes[0].Fill != "orange" {
		t.Errorf("fill = %q", b.Shapes[0].Fill)
	}
}

func TestRoundTrip(t *testing.T) {
	orig, err := ReadJSON(strings.NewReader(sampleBoard))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(orig, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	again, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("re-import error: %v", err)
	}

	if again.ID != orig.ID || len(again.Shapes) != len(orig.Shapes) {
		t.Error("round trip lost board structure")
	}
	if again.Shapes[1].Start == nil || again.Shapes[1].Start.TargetID != "api" {
		t.Error("round trip lost bindings")
	}
}

func TestImportExportFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")

	board := &canvas.Board{
		ID: "file-board",
		Shapes: []canvas.Shape{
			{ID: "t", Type: canvas.TypeText, X: 5, Y: 5, Label: "hello"},
		},
	}

	if err := ExportJSON(board, path); err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON error: %v", err)
	}
	if got.ID != "file-board" || got.Shapes[0].Label != "hello" {
		t.Errorf("imported board wrong: %+v", got)
	}

	// Missing files surface as NOT_FOUND
	_, err = ImportJSON(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file error = %v, want NOT_FOUND", err)
	}
}

func TestWriteJSON_NilBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(nil, &buf); !errors.Is(err, errors.ErrCodeInvalidBoard) {
		t.Errorf("WriteJSON(nil) error = %v, want INVALID_BOARD", err)
	}
}
