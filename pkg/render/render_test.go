package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
	"github.com/sketchwall/sketchwall/pkg/render/styles"
)

func testBoard() *canvas.Board {
	return &canvas.Board{
		ID: "b1",
		Shapes: []canvas.Shape{
			{ID: "r1", Type: canvas.TypeRectangle, X: 0, Y: 0, Width: 100, Height: 50, Label: "Hi", Fill: "blue"},
			{ID: "a1", Type: canvas.TypeArrow, Points: []canvas.Point{{X: 100, Y: 25}, {X: 200, Y: 25}}},
			{ID: "t1", Type: canvas.TypeText, X: 10, Y: 120, Label: "note", FontSize: 14},
		},
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size defaults = %g x %g, want %g x %g", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if opts.Style != styles.NameRough {
		t.Errorf("style default = %q, want %q", opts.Style, styles.NameRough)
	}
	if opts.Roughness == nil || *opts.Roughness != DefaultRoughness {
		t.Errorf("roughness default = %v, want %g", opts.Roughness, DefaultRoughness)
	}
	if opts.Seed == nil {
		t.Fatal("seed was not defaulted")
	}

	// Idempotent: a second call must not re-roll the time-based seed.
	seed := *opts.Seed
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second ValidateAndSetDefaults() error = %v", err)
	}
	if *opts.Seed != seed {
		t.Errorf("seed changed on revalidation: %d != %d", *opts.Seed, seed)
	}
}

func TestValidateAndSetDefaults_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidOptions},
		{"negative height", Options{Height: -5}, errors.ErrCodeInvalidOptions},
		{"unknown style", Options{Style: "sketch"}, errors.ErrCodeInvalidStyle},
		{"negative roughness", Options{}.WithRoughness(-0.5), errors.ErrCodeInvalidOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatSVG, FormatPNG, FormatJPEG, FormatPDF} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) error = %v", f, err)
		}
	}

	err := ValidateFormat("bmp")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(bmp) = %v, want INVALID_FORMAT", err)
	}
}

func TestRender_Deterministic(t *testing.T) {
	board := testBoard()
	opts := Options{}.WithSeed(7)

	first, err := Render(board, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := Render(board, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("same board and options produced different documents")
	}
}

func TestRender_SeedChangesJitter(t *testing.T) {
	board := testBoard()

	a, err := Render(board, Options{}.WithSeed(1))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b, err := Render(board, Options{}.WithSeed(2))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if bytes.Equal(a, b) {
		t.Error("different seeds produced identical rough documents")
	}
}

func TestRender_CleanIgnoresSeed(t *testing.T) {
	board := testBoard()

	a, err := Render(board, Options{Style: styles.NameClean}.WithSeed(1))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b, err := Render(board, Options{Style: styles.NameClean}.WithSeed(99999))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("clean output depends on the seed")
	}
}

func TestRender_PrologAndFragment(t *testing.T) {
	board := testBoard()
	opts := Options{}.WithSeed(3)

	doc, err := Render(board, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("<?xml")) {
		t.Errorf("Render() missing XML prolog: %.40s", doc)
	}

	frag, err := Fragment(board, opts)
	if err != nil {
		t.Fatalf("Fragment() error = %v", err)
	}
	if !bytes.HasPrefix(frag, []byte("<svg")) {
		t.Errorf("Fragment() should start with <svg: %.40s", frag)
	}

	// Same markup after the prolog.
	if !bytes.HasSuffix(doc, frag) {
		t.Error("document and fragment markup differ beyond the prolog")
	}
}

func TestRender_EmptyBoardDefaultViewBox(t *testing.T) {
	svg, err := Render(&canvas.Board{ID: "empty"}, Options{}.WithSeed(1))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(string(svg), `viewBox="0.0 0.0 800.0 600.0"`) {
		t.Errorf("empty board viewBox wrong:\n%s", firstLines(svg, 3))
	}
}

func TestRender_ViewportAndSize(t *testing.T) {
	board := &canvas.Board{Shapes: []canvas.Shape{
		{ID: "r", Type: canvas.TypeRectangle, X: 0, Y: 0, Width: 100, Height: 50},
	}}

	svg, err := Render(board, Options{Style: styles.NameClean})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := string(svg)

	// Shape extent padded by 40 on every side.
	if !strings.Contains(out, `viewBox="-40.0 -40.0 180.0 130.0"`) {
		t.Errorf("viewBox wrong:\n%s", firstLines(svg, 3))
	}
	if !strings.Contains(out, `width="800" height="600"`) {
		t.Errorf("document size wrong:\n%s", firstLines(svg, 3))
	}
}

func TestRender_BackgroundOverscan(t *testing.T) {
	board := &canvas.Board{Shapes: []canvas.Shape{
		{ID: "r", Type: canvas.TypeRectangle, X: 0, Y: 0, Width: 100, Height: 50},
	}}

	svg, err := Render(board, Options{Style: styles.NameClean})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Viewport (-40,-40)-(140,90) expanded by 2000 per side.
	want := `<rect x="-2040.0" y="-2040.0" width="4180.0" height="4130.0"`
	if !strings.Contains(string(svg), want) {
		t.Errorf("background rect not expanded, want %s", want)
	}
}

func TestRender_ExplicitBackground(t *testing.T) {
	board := testBoard()
	board.Background = "#fafafa"

	svg, err := Render(board, Options{Style: styles.NameClean})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(svg), `fill="#fafafa"`) {
		t.Error("explicit board background was ignored")
	}
}

func TestRender_DarkMode(t *testing.T) {
	svg, err := Render(testBoard(), Options{Style: styles.NameClean, DarkMode: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(svg), `fill="#121417"`) {
		t.Error("dark mode background missing")
	}
}

func TestRender_ZOrder(t *testing.T) {
	board := &canvas.Board{Shapes: []canvas.Shape{
		{ID: "below", Type: canvas.TypeRectangle, X: 0, Y: 0, Width: 50, Height: 50},
		{ID: "above", Type: canvas.TypeRectangle, X: 25, Y: 25, Width: 50, Height: 50},
	}}

	svg, err := Render(board, Options{Style: styles.NameClean})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := string(svg)
	if strings.Index(out, `id="shape-below"`) > strings.Index(out, `id="shape-above"`) {
		t.Error("paint order does not follow slice order")
	}
}

func TestRender_NilBoard(t *testing.T) {
	_, err := Render(nil, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidBoard) {
		t.Errorf("Render(nil) error = %v, want INVALID_BOARD", err)
	}

	_, err = ToPNG(context.Background(), nil, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidBoard) {
		t.Errorf("ToPNG(nil) error = %v, want INVALID_BOARD", err)
	}
}

func TestWithSeed_CopiesOptions(t *testing.T) {
	base := Options{}
	pinned := base.WithSeed(42)

	if base.Seed != nil {
		t.Error("WithSeed mutated the receiver")
	}
	if pinned.Seed == nil || *pinned.Seed != 42 {
		t.Errorf("WithSeed() seed = %v, want 42", pinned.Seed)
	}
}

func TestToPDF(t *testing.T) {
	pdf, err := ToPDF(testBoard(), Options{})
	if err != nil {
		t.Fatalf("ToPDF() error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output is not a PDF: %.8s", pdf)
	}

	if _, err := ToPDF(nil, Options{}); !errors.Is(err, errors.ErrCodeInvalidBoard) {
		t.Errorf("ToPDF(nil) error = %v, want INVALID_BOARD", err)
	}
}

func TestStrokeRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#ff0000", 255, 0, 0},
		{"#0f0", 0, 255, 0},
		{"#3b82f6cc", 59, 130, 246},
		{"blue", 37, 99, 235},
		{"Blue", 37, 99, 235},
		{"", 26, 28, 30},
		{"not-a-color", 26, 28, 30},
	}

	for _, tt := range tests {
		r, g, b := strokeRGB(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("strokeRGB(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func firstLines(b []byte, n int) string {
	lines := strings.SplitN(string(b), "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
