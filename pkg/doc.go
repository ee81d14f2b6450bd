// Package pkg provides the core libraries for Sketchwall whiteboard rendering.
//
// # Overview
//
// Sketchwall turns typed whiteboard shapes into vector graphics in three
// visual treatments: a hand-drawn "rough" look built from seeded jitter, a
// crisp "clean" look using exact primitives, and a themed dark "pro" look
// with gradients and glow. The pkg directory is organized into five areas:
//
//  1. [canvas] - Data model (shapes, boards, bounds, connector anchors)
//  2. [render] - Document rendering (SVG assembly, PNG/JPEG raster, PDF)
//  3. [export] - Interchange formats (Excalidraw, Graphviz connectivity)
//  4. [cache] - Artifact caching (memory, file, null backends)
//  5. [io], [errors], [buildinfo], [observability] - Supporting utilities
//
// # Architecture
//
// The typical data flow through Sketchwall:
//
//	Board JSON (file, API, or store)
//	         ↓
//	    [canvas] package (shape model + bounds + anchors)
//	         ↓
//	    [render/styles] package (per-style path builders)
//	         ↓
//	    [render] package (document assembly)
//	         ↓
//	    SVG/PNG/JPEG/PDF output
//
// # Quick Start
//
// Load a board and render it as SVG:
//
//	import (
//	    "os"
//	    "github.com/sketchwall/sketchwall/pkg/io"
//	    "github.com/sketchwall/sketchwall/pkg/render"
//	)
//
//	// 1. Load the board
//	board, _ := io.ImportJSON("board.json")
//
//	// 2. Render with options
//	svg, _ := render.Render(board, render.Options{
//	    Width:  1200,
//	    Height: 800,
//	    Style:  "rough",
//	}.WithSeed(42))
//
//	// 3. Write the result
//	os.WriteFile("board.svg", svg, 0o644)
//
// # Main Packages
//
// ## Data Model
//
// [canvas] - The Shape union (12 kinds: rectangle, ellipse, diamond,
// cylinder, cloud, hexagon, document, person, callout, line, arrow, text),
// Board state, padded bounds computation, and the connector resolver
// (anchor points + bound-arrow refresh when a shape moves).
//
// ## Rendering
//
// [render] - Document renderer: resolves option defaults, computes the
// viewBox, assembles background, style resources, and shapes into one SVG.
// Also converts SVG to PNG/JPEG via headless Chrome and wraps PNG into a
// single-page PDF.
//
// [render/rough] - Seeded geometry primitives: a deterministic LCG random
// stream, jittered points, bowed line and ellipse paths, arrow heads, and
// curved multi-point paths. Same seed plus same draw order reproduces
// byte-identical output.
//
// [render/styles] - The three style builders behind one Style interface
// (rough, clean, pro), the adaptive text fitter, and the pro theme palette
// with deduplicated gradient/filter/marker resources.
//
// ## Interchange
//
// [export/excalidraw] - Lossy one-element-per-shape conversion of a board
// into the Excalidraw JSON schema.
//
// [export/graphlink] - Board connectivity (shapes as nodes, bound arrows as
// edges) rendered to DOT, SVG, or PNG via Graphviz.
//
// ## Infrastructure
//
// [cache] - Rendered-artifact cache with memory, file (sharded on hashed
// keys), and null backends, plus retry helpers shared by the Redis store.
//
// [io] - Board JSON import/export used by the CLI and tests.
//
// [errors] - Structured error codes mapped to HTTP statuses by the server
// and to exit messages by the CLI.
//
// [buildinfo] - Version, commit, and date injected at build time.
//
// [observability] - Optional render/cache/board hooks with no-op defaults.
//
// # Common Workflows
//
// Render deterministically for caching:
//
//	opts := render.Options{Style: "rough"}.WithSeed(7)
//	first, _ := render.Render(board, opts)
//	second, _ := render.Render(board, opts)
//	// bytes.Equal(first, second) == true
//
// Move a shape and rebind its arrows:
//
//	moved := board.Shape("r1")
//	moved.X += 40
//	changed := canvas.UpdateBoundArrows(moved, board.Shapes)
//	// persist moved + changed as one batch
//
// Export to Excalidraw:
//
//	data, _ := excalidraw.Export(board)
//	os.WriteFile("board.excalidraw", data, 0o644)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/render/...         # Specific package
//	go test -run Example             # Examples only
//
// [canvas]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/canvas
// [render]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/render
// [render/rough]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/render/rough
// [render/styles]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/render/styles
// [export]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/export
// [export/excalidraw]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/export/excalidraw
// [export/graphlink]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/export/graphlink
// [cache]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/cache
// [io]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/io
// [errors]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/buildinfo
// [observability]: https://pkg.go.dev/github.com/sketchwall/sketchwall/pkg/observability
package pkg
