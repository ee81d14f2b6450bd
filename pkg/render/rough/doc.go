// Package rough generates deterministic hand-drawn path data.
//
// # Overview
//
// The hand-drawn look is built from three primitives that displace exact
// geometry by small seeded offsets:
//
//   - [Jitter]: displaces a single point
//   - [Line]: a bowed quadratic segment between two jittered endpoints
//   - [Ellipse]: a closed loop of quadratic segments through 24 jittered
//     samples
//
// Shape builders compose these over each edge or arc of a shape's exact
// outline. Roughness scales every displacement; zero roughness degrades
// to the exact geometry.
//
// # Determinism
//
// All randomness flows through [RNG], a linear congruential generator
// threaded through a whole render pass:
//
//	rng := rough.NewRNG(seed)
//	d := rough.Line(p1, p2, roughness, rng)
//
// The same seed and the same sequence of calls reproduce identical path
// data byte for byte. Draw order matters as much as the seed: rendering
// the same shapes in a different order consumes the stream differently.
//
// # Smooth paths
//
// [StraightPath], [SmoothPath], and [ArrowHead] carry no jitter and are
// shared with the crisp rendering styles. [SmoothPath] interpolates a
// point sequence with Catmull-Rom derived cubic segments.
package rough
