// Package io provides JSON import and export for whiteboard boards.
//
// # Overview
//
// Board files are sketchwall's snapshot format. The same document shape
// is used by:
//
//   - The file-backed store, which persists one board per file
//   - The CLI, which renders boards straight from disk
//   - The HTTP API, whose request and response bodies embed boards
//   - Round-trip preservation: import, render, export, and re-import identically
//
// # JSON Format
//
// A board is a JSON object with an id, optional metadata, and a shapes
// array in paint order (first element is painted first, i.e. bottom):
//
//	{
//	  "id": "sprint-42",
//	  "name": "Sprint 42 planning",
//	  "background": "#fffdf5",
//	  "shapes": [
//	    {"id": "api", "type": "rectangle", "x": 0, "y": 0, "width": 160, "height": 90, "label": "API"},
//	    {"id": "db", "type": "cylinder", "x": 260, "y": 10, "width": 120, "height": 70, "label": "Postgres"},
//	    {
//	      "id": "link", "type": "arrow",
//	      "points": [{"x": 160, "y": 45}, {"x": 260, "y": 45}],
//	      "start": {"target_id": "api", "anchor": "right"},
//	      "end": {"target_id": "db", "anchor": "left"}
//	    }
//	  ]
//	}
//
// # Shape Fields
//
// Required:
//   - id: Unique string identifier within the board
//   - type: One of the twelve shape kinds (see [canvas.Types])
//
// Which optional fields apply depends on the kind: box-like kinds use
// x/y/width/height and label, path-like kinds use points and the arrow
// fields, text uses x/y/label/font_size. Unknown kinds are preserved on
// import; renderers simply skip them.
//
// # Import
//
// Use [ImportJSON] to read a board from a file path, or [ReadJSON] to
// read from any io.Reader:
//
//	board, err := io.ImportJSON("board.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate shape id uniqueness and assign fresh UUIDs to
// shapes that arrive without an id, so imported boards are always
// addressable shape by shape.
//
// # Export
//
// Use [ExportJSON] to write a board to a file, or [WriteJSON] to write
// to any io.Writer:
//
//	err := io.ExportJSON(board, "output.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Output is indented and field order is fixed by the struct layout, so
// exports diff cleanly under version control.
//
// [canvas.Types]: github.com/sketchwall/sketchwall/pkg/canvas.Types
package io
