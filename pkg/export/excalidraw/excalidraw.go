// Package excalidraw exports boards to the Excalidraw scene format.
//
// The mapping is intentionally lossy: Excalidraw's element set is
// smaller than sketchwall's, so hexagons, cylinders, documents and
// callouts flatten to rectangles, and clouds and persons flatten to
// ellipses. Geometry, color, labels, bindings and z-order survive, so
// a board can continue its life in the Excalidraw editor.
//
// One board shape becomes exactly one scene element. Element seeds are
// derived from shape ids, so exporting the same board twice yields the
// same file.
package excalidraw

import (
	"encoding/json"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// Scene is the top-level Excalidraw file document.
type Scene struct {
	Type     string         `json:"type"`
	Version  int            `json:"version"`
	Source   string         `json:"source"`
	Elements []Element      `json:"elements"`
	AppState AppState       `json:"appState"`
	Files    map[string]any `json:"files"`
}

// AppState carries the scene-level editor settings we fill in.
type AppState struct {
	ViewBackgroundColor string `json:"viewBackgroundColor"`
}

// Element is one Excalidraw scene element.
type Element struct {
	ID              string       `json:"id"`
	Type            string       `json:"type"`
	X               float64      `json:"x"`
	Y               float64      `json:"y"`
	Width           float64      `json:"width"`
	Height          float64      `json:"height"`
	Angle           float64      `json:"angle"`
	StrokeColor     string       `json:"strokeColor"`
	BackgroundColor string       `json:"backgroundColor"`
	FillStyle       string       `json:"fillStyle"`
	StrokeWidth     float64      `json:"strokeWidth"`
	StrokeStyle     string       `json:"strokeStyle"`
	Roughness       int          `json:"roughness"`
	Opacity         float64      `json:"opacity"`
	Seed            uint32       `json:"seed"`
	Version         int          `json:"version"`
	IsDeleted       bool         `json:"isDeleted"`
	GroupIDs        []string     `json:"groupIds"`
	Points          [][2]float64 `json:"points,omitempty"`
	StartBinding    *Binding     `json:"startBinding,omitempty"`
	EndBinding      *Binding     `json:"endBinding,omitempty"`
	StartArrowhead  *string      `json:"startArrowhead,omitempty"`
	EndArrowhead    *string      `json:"endArrowhead,omitempty"`
	Text            string       `json:"text,omitempty"`
	FontSize        float64      `json:"fontSize,omitempty"`
	FontFamily      int          `json:"fontFamily,omitempty"`
	TextAlign       string       `json:"textAlign,omitempty"`
	VerticalAlign   string       `json:"verticalAlign,omitempty"`
}

// Binding references another element from an arrow endpoint.
type Binding struct {
	ElementID string  `json:"elementId"`
	Focus     float64 `json:"focus"`
	Gap       float64 `json:"gap"`
}

// sceneVersion is the Excalidraw file format version we emit.
const sceneVersion = 2

// Export converts a board to an Excalidraw scene file.
func Export(board *canvas.Board) ([]byte, error) {
	if board == nil {
		return nil, errors.New(errors.ErrCodeInvalidBoard, "cannot export a nil board")
	}

	scene := Scene{
		Type:     "excalidraw",
		Version:  sceneVersion,
		Source:   "sketchwall",
		Elements: make([]Element, 0, len(board.Shapes)),
		AppState: AppState{ViewBackgroundColor: background(board)},
		Files:    map[string]any{},
	}

	for i := range board.Shapes {
		scene.Elements = append(scene.Elements, convert(&board.Shapes[i]))
	}

	data, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "encode scene")
	}
	return data, nil
}

func background(board *canvas.Board) string {
	if board.Background != "" {
		return board.Background
	}
	return "#ffffff"
}

func convert(s *canvas.Shape) Element {
	el := Element{
		ID:              s.ID,
		Type:            elementType(s.Type),
		X:               s.X,
		Y:               s.Y,
		Width:           s.Width,
		Height:          s.Height,
		StrokeColor:     strokeColor(s),
		BackgroundColor: backgroundColor(s),
		FillStyle:       "hachure",
		StrokeWidth:     s.LineWidth(),
		StrokeStyle:     strokeStyle(s),
		Roughness:       1,
		Opacity:         s.Alpha() * 100,
		Seed:            seedFor(s.ID),
		Version:         1,
		GroupIDs:        []string{},
	}

	switch {
	case s.Type.PathLike():
		convertPath(s, &el)
	case s.Type == canvas.TypeText:
		el.Text = s.Label
		el.FontSize = s.FontSize
		if el.FontSize <= 0 {
			el.FontSize = 20
		}
		el.FontFamily = 1
		el.TextAlign = "left"
		el.VerticalAlign = "top"
		el.Width, el.Height = textExtent(s.Label, el.FontSize)
	default:
		// Box-like kinds keep their frame; the label is dropped since a
		// faithful bound-text element would need a second element per
		// shape, and the export is one element per shape.
	}
	return el
}

// convertPath rebases the point sequence onto the first point, which
// Excalidraw treats as the element origin.
func convertPath(s *canvas.Shape, el *Element) {
	if len(s.Points) == 0 {
		return
	}

	origin := s.Points[0]
	el.X, el.Y = origin.X, origin.Y

	minX, minY, maxX, maxY := 0.0, 0.0, 0.0, 0.0
	el.Points = make([][2]float64, len(s.Points))
	for i, p := range s.Points {
		dx, dy := p.X-origin.X, p.Y-origin.Y
		el.Points[i] = [2]float64{dx, dy}
		minX, maxX = min(minX, dx), max(maxX, dx)
		minY, maxY = min(minY, dy), max(maxY, dy)
	}
	el.Width = maxX - minX
	el.Height = maxY - minY

	if s.Type == canvas.TypeArrow {
		el.StartBinding = bindingFor(s.Start)
		el.EndBinding = bindingFor(s.End)
		el.StartArrowhead = arrowhead(s.Tail())
		el.EndArrowhead = arrowhead(s.Head())
	}
}

func bindingFor(b *canvas.Binding) *Binding {
	if b == nil {
		return nil
	}
	return &Binding{ElementID: b.TargetID, Focus: 0, Gap: 4}
}

// arrowhead maps endpoint decorations onto Excalidraw names. Nil means
// no arrowhead.
func arrowhead(h canvas.HeadStyle) *string {
	var name string
	switch h {
	case canvas.HeadArrow:
		name = "arrow"
	case canvas.HeadTriangle:
		name = "triangle"
	case canvas.HeadDiamond:
		name = "diamond"
	case canvas.HeadCircle:
		name = "dot"
	default:
		return nil
	}
	return &name
}

func elementType(t canvas.ShapeType) string {
	switch t {
	case canvas.TypeEllipse, canvas.TypeCloud, canvas.TypePerson:
		return "ellipse"
	case canvas.TypeDiamond:
		return "diamond"
	case canvas.TypeLine:
		return "line"
	case canvas.TypeArrow:
		return "arrow"
	case canvas.TypeText:
		return "text"
	default:
		// rectangle, hexagon, cylinder, document, callout and anything
		// unknown flatten to a rectangle.
		return "rectangle"
	}
}

func strokeColor(s *canvas.Shape) string {
	if s.Stroke != "" {
		return s.Stroke
	}
	return "#1e1e1e"
}

func backgroundColor(s *canvas.Shape) string {
	if s.Fill != "" {
		return s.Fill
	}
	return "transparent"
}

func strokeStyle(s *canvas.Shape) string {
	if s.Dashed {
		return "dashed"
	}
	return "solid"
}

// seedFor derives a stable per-element seed from the shape id.
func seedFor(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32()
}

// textExtent estimates the box a text element occupies. The editor
// remeasures on load, but a zero-sized element would be unselectable
// until then.
func textExtent(label string, size float64) (w, h float64) {
	lines := strings.Split(label, "\n")
	longest := 0
	for _, ln := range lines {
		longest = max(longest, utf8.RuneCountInString(ln))
	}
	return float64(longest) * size * 0.55, float64(len(lines)) * size * 1.3
}
