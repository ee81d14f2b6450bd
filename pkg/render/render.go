// Package render turns a board into a finished SVG document.
//
// This package implements the document-level renderer shared by the CLI,
// the API server, and the exporters. By centralizing this logic, we
// ensure a board renders identically no matter which entry point asked
// for it.
//
// # Architecture
//
// Rendering is a pure function of (board, options):
//
//  1. Resolve options: style, size, roughness, seed.
//  2. Compute the viewBox from the padded union of shape extents.
//  3. Delegate to the style for defs, background, shapes, and overlay.
//
// Shapes are painted in slice order, so the board's z-order is the
// paint order. The rough style threads a single seeded jitter stream
// through that order, which makes equal (board, options) pairs produce
// byte-identical documents.
//
// # Usage
//
//	opts := render.Options{Style: styles.NameRough}
//	svg, err := render.Render(board, opts.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("board.svg", svg, 0o644)
//
// Raster and print outputs build on the same document:
//
//	png, err := render.ToPNG(ctx, board, opts)
//	pdf, err := render.ToPDF(board, opts)
package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// Render produces a standalone SVG document for the board, including
// the XML prolog. The same board and options always produce the same
// bytes.
func Render(board *canvas.Board, opts Options) ([]byte, error) {
	return document(board, opts, true)
}

// Fragment produces the SVG markup without the XML prolog, suitable
// for inlining into HTML.
func Fragment(board *canvas.Board, opts Options) ([]byte, error) {
	return document(board, opts, false)
}

func document(board *canvas.Board, opts Options, prolog bool) ([]byte, error) {
	if board == nil {
		return nil, errors.New(errors.ErrCodeInvalidBoard, "cannot render a nil board")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	style := opts.style()
	viewport := canvas.CalculateBounds(board.Shapes, DefaultPadding)

	var buf bytes.Buffer
	if prolog {
		buf.WriteString(xml.Header)
	}
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		viewport.MinX, viewport.MinY, viewport.Width(), viewport.Height(), opts.Width, opts.Height)

	style.RenderDefs(&buf, board.Shapes)
	style.RenderBackground(&buf, viewport.Expand(BackgroundOverscan), board.Background)
	for i := range board.Shapes {
		style.RenderShape(&buf, &board.Shapes[i])
	}
	style.RenderOverlay(&buf, viewport)

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
