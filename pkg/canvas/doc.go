// Package canvas defines the whiteboard data model shared by the renderer,
// the store, and the exporters.
//
// # Overview
//
// A [Board] is an ordered collection of [Shape] values (order = z-order)
// plus background and viewport metadata. Twelve shape kinds exist: nine
// box-like kinds positioned by an (x, y, width, height) box, two path-like
// kinds (line, arrow) carrying an absolute point sequence, and free-standing
// text. Arrows may bind either endpoint to another shape through a [Binding],
// a weak by-id reference that tolerates deleted targets.
//
// The package also hosts the two algorithms that operate on raw shape data
// without rendering anything:
//
//   - [CalculateBounds] computes the padded axis-aligned box enclosing all
//     shapes, used to frame render viewports.
//   - [AnchorPoint] and [UpdateBoundArrows] resolve binding anchors and
//     refresh bound arrow endpoints after a shape moves.
//
// # Coordinate space
//
// All coordinates are canvas-absolute, including the point sequences of
// lines and arrows. [UpdateBoundArrows] writes anchor points straight into
// arrow point slices, so keeping a single coordinate space avoids a
// translation step on every move. The X/Y fields of path-like shapes are
// conventionally zero.
//
// # Serialization
//
// All types carry JSON and BSON tags. JSON is the wire format for the HTTP
// API, the WebSocket protocol, and board files on disk; BSON backs the
// MongoDB store.
package canvas
