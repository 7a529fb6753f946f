// Package wheel computes chart-wheel layouts from ecliptic longitudes.
//
// # Overview
//
// The wheel engine is a pure data transformation: it takes a chart (bodies,
// aspects, house cusps, zodiac segments) and produces a [WheelLayout], a
// renderer-agnostic description of concentric ring circles, sign and house
// divider lines, planet glyph placements, and aspect chords. Rendering the
// layout (SVG, raster, terminal) is the job of a sink package; the engine
// performs no I/O and holds no state.
//
// # Pipeline
//
// A layout is assembled from four independent builders:
//
//   - [BuildRings]: ring circles, 12 sign dividers, 12 sign glyphs
//   - [BuildChords]: one chord per aspect at the inner ring
//   - [Resolve]: label collision resolution for planet glyphs
//   - [Build]: orchestrates the above into one immutable WheelLayout
//
// # Angular convention
//
// All geometry is emitted in display coordinates: 0° points east (+x),
// angles increase counter-clockwise, and the Y axis grows downward as on
// screens. Wheel rotation (Ascendant − 180°, anchoring the Ascendant on the
// left horizon point) is baked into every coordinate, so renderers apply no
// rotation transforms and glyphs are upright by construction.
//
// # Concurrency
//
// Every function takes an input snapshot and returns fresh output records;
// caller-owned data is never mutated. Building sidereal and tropical wheels
// for the same chart concurrently is safe.
package wheel
