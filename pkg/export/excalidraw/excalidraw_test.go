package excalidraw

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

func decodeScene(t *testing.T, data []byte) Scene {
	t.Helper()
	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		t.Fatalf("decode exported scene: %v", err)
	}
	return scene
}

func TestExport_SceneEnvelope(t *testing.T) {
	board := &canvas.Board{
		ID: "b1",
		Shapes: []canvas.Shape{
			{ID: "r1", Type: canvas.TypeRectangle, X: 0, Y: 0, Width: 100, Height: 50},
		},
	}

	data, err := Export(board)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	scene := decodeScene(t, data)

	if scene.Type != "excalidraw" {
		t.Errorf("scene type = %q, want excalidraw", scene.Type)
	}
	if scene.Version != 2 {
		t.Errorf("scene version = %d, want 2", scene.Version)
	}
	if scene.Source != "sketchwall" {
		t.Errorf("scene source = %q", scene.Source)
	}
	if scene.AppState.ViewBackgroundColor != "#ffffff" {
		t.Errorf("default background = %q, want #ffffff", scene.AppState.ViewBackgroundColor)
	}
	if len(scene.Elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(scene.Elements))
	}
}

func TestExport_ExplicitBackground(t *testing.T) {
	board := &canvas.Board{ID: "b1", Background: "#fafafa"}
	data, err := Export(board)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got := decodeScene(t, data).AppState.ViewBackgroundColor; got != "#fafafa" {
		t.Errorf("background = %q, want #fafafa", got)
	}
}

func TestExport_TypeMapping(t *testing.T) {
	tests := []struct {
		shape canvas.ShapeType
		want  string
	}{
		{canvas.TypeRectangle, "rectangle"},
		{canvas.TypeEllipse, "ellipse"},
		{canvas.TypeDiamond, "diamond"},
		{canvas.TypeCylinder, "rectangle"},
		{canvas.TypeCloud, "ellipse"},
		{canvas.TypeHexagon, "rectangle"},
		{canvas.TypeDocument, "rectangle"},
		{canvas.TypePerson, "ellipse"},
		{canvas.TypeCallout, "rectangle"},
		{canvas.TypeLine, "line"},
		{canvas.TypeArrow, "arrow"},
		{canvas.TypeText, "text"},
	}

	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			if got := elementType(tt.shape); got != tt.want {
				t.Errorf("elementType(%s) = %q, want %q", tt.shape, got, tt.want)
			}
		})
	}
}

func TestExport_ArrowGeometry(t *testing.T) {
	board := &canvas.Board{
		ID: "b1",
		Shapes: []canvas.Shape{
			{
				ID:   "a1",
				Type: canvas.TypeArrow,
				Points: []canvas.Point{
					{X: 100, Y: 25},
					{X: 200, Y: 75},
				},
			},
		},
	}

	data, err := Export(board)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	el := decodeScene(t, data).Elements[0]

	if el.X != 100 || el.Y != 25 {
		t.Errorf("origin = (%v, %v), want (100, 25)", el.X, el.Y)
	}
	if len(el.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(el.Points))
	}
	if el.Points[0] != [2]float64{0, 0} {
		t.Errorf("first point = %v, want [0 0]", el.Points[0])
	}
	if el.Points[1] != [2]float64{100, 50} {
		t.Errorf("second point = %v, want [100 50]", el.Points[1])
	}
	if el.Width != 100 || el.Height != 50 {
		t.Errorf("extent = %vx%v, want 100x50", el.Width, el.Height)
	}
	if el.StartArrowhead != nil {
		t.Errorf("start arrowhead = %v, want nil", *el.StartArrowhead)
	}
	if el.EndArrowhead == nil || *el.EndArrowhead != "arrow" {
		t.Errorf("end arrowhead = %v, want arrow", el.EndArrowhead)
	}
}

func TestExport_ArrowBindings(t *testing.T) {
	board := &canvas.Board{
		ID: "b1",
		Shapes: []canvas.Shape{
			{ID: "r1", Type: canvas.TypeRectangle, Width: 100, Height: 50},
			{ID: "r2", Type: canvas.TypeRectangle, X: 200, Width: 100, Height: 50},
			{
				ID:     "a1",
				Type:   canvas.TypeArrow,
				Points: []canvas.Point{{X: 100, Y: 25}, {X: 200, Y: 25}},
				Start:  &canvas.Binding{TargetID: "r1"},
				End:    &canvas.Binding{TargetID: "r2"},
			},
		},
	}

	data, err := Export(board)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	arrow := decodeScene(t, data).Elements[2]

	if arrow.StartBinding == nil || arrow.StartBinding.ElementID != "r1" {
		t.Errorf("start binding = %+v, want r1", arrow.StartBinding)
	}
	if arrow.EndBinding == nil || arrow.EndBinding.ElementID != "r2" {
		t.Errorf("end binding = %+v, want r2", arrow.EndBinding)
	}
}

func TestExport_ArrowheadNames(t *testing.T) {
	tests := []struct {
		head canvas.HeadStyle
		want string // "" means nil
	}{
		{canvas.HeadArrow, "arrow"},
		{canvas.HeadTriangle, "triangle"},
		{canvas.HeadDiamond, "diamond"},
		{canvas.HeadCircle, "dot"},
		{canvas.HeadNone, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.head), func(t *testing.T) {
			got := arrowhead(tt.head)
			if tt.want == "" {
				if got != nil {
					t.Errorf("arrowhead(%s) = %q, want nil", tt.head, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("arrowhead(%s) = %v, want %q", tt.head, got, tt.want)
			}
		})
	}
}

func TestExport_StyleFields(t *testing.T) {
	opacity := 0.5
	board := &canvas.Board{
		ID: "b1",
		Shapes: []canvas.Shape{
			{
				ID:      "r1",
				Type:    canvas.TypeRectangle,
				Width:   80,
				Height:  40,
				Stroke:  "crimson",
				Fill:    "#e8f4fd",
				Opacity: &opacity,
				Dashed:  true,
			},
		},
	}

	data, err := Export(board)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	el := decodeScene(t, data).Elements[0]

	if el.StrokeColor != "crimson" {
		t.Errorf("strokeColor = %q", el.StrokeColor)
	}
	if el.BackgroundColor != "#e8f4fd" {
		t.Errorf("backgroundColor = %q", el.BackgroundColor)
	}
	if el.FillStyle != "hachure" {
		t.Errorf("fillStyle = %q, want hachure", el.FillStyle)
	}
	if el.StrokeStyle != "dashed" {
		t.Errorf("strokeStyle = %q, want dashed", el.StrokeStyle)
	}
	if el.Opacity != 50 {
		t.Errorf("opacity = %v, want 50", el.Opacity)
	}
	if el.Roughness != 1 {
		t.Errorf("roughness = %d, want 1", el.Roughness)
	}
}

func TestExport_TextElement(t *testing.T) {
	board := &canvas.Board{
		ID: "b1",
		Shapes: []canvas.Shape{
			{ID: "t1", Type: canvas.TypeText, X: 10, Y: 120, Label: "note", FontSize: 14},
		},
	}

	data, err := Export(board)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	el := decodeScene(t, data).Elements[0]

	if el.Text != "note" {
		t.Errorf("text = %q", el.Text)
	}
	if el.FontSize != 14 {
		t.Errorf("fontSize = %v, want 14", el.FontSize)
	}
	if el.Width <= 0 || el.Height <= 0 {
		t.Errorf("text extent = %vx%v, want positive", el.Width, el.Height)
	}
}

func TestExport_Deterministic(t *testing.T) {
	board := &canvas.Board{
		ID: "b1",
		Shapes: []canvas.Shape{
			{ID: "r1", Type: canvas.TypeRectangle, Width: 100, Height: 50},
			{ID: "a1", Type: canvas.TypeArrow, Points: []canvas.Point{{X: 0, Y: 0}, {X: 50, Y: 0}}},
		},
	}

	first, err := Export(board)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	second, err := Export(board)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two exports of the same board differ")
	}
}

func TestExport_SeedsDifferPerShape(t *testing.T) {
	if seedFor("r1") == seedFor("r2") {
		t.Error("distinct shape ids produced the same seed")
	}
}

func TestExport_NilBoard(t *testing.T) {
	_, err := Export(nil)
	if !errors.Is(err, errors.ErrCodeInvalidBoard) {
		t.Errorf("Export(nil) error = %v, want %s", err, errors.ErrCodeInvalidBoard)
	}
}
