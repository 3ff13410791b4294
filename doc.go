// Package grail provides 2D drawing primitives (points, line segments,
// rectangles, and quadratic and cubic Bézier curves) together with RGB/HSL
// color conversion, for use with a canvas-style drawing surface.
//
// # Geometry
//
// All geometric types are immutable values. Coordinates are normalized:
// a point at (0.5, 0.5) renders at the center of the target surface,
// whatever its pixel dimensions. [Rect] is the one exception; see its
// documentation.
//
// The provided primitives are:
//   - [Point]
//   - [Line]
//   - [Rect]
//   - [QuadBez]
//   - [CubicBez]
//
// [Line.Intersection] computes the exact crossing point of two segments.
// [QuadBez.IntersectLine] and [CubicBez.IntersectLine] approximate a
// curve/segment crossing by flattening the curve into secants and testing
// each against the segment; see their documentation for the scan order,
// which is part of the defined behavior.
//
// Note that the Bézier types use a reversed parametrization: evaluating at
// t=1 yields the first control point, not the last. The per-type
// documentation spells out the exact term-to-control-point mapping.
//
// # Rendering
//
// Every primitive has a Render method taking a [Surface], an abstraction
// over an HTML-canvas-shaped command set (MoveTo, LineTo, Arc,
// QuadraticCurveTo, BezierCurveTo). Two implementations ship with the
// package: [Raster], which rasterizes into an image, and [Recorder], which
// captures the command stream.
//
// # Color
//
// [RGBColor] and [HSLColor] are value types converting to and from each
// other. Channel ranges are documented but not validated; out-of-range
// inputs flow through the arithmetic unchecked.
package grail
