package grail

// Surface is the drawing backend the primitives render onto. It mirrors the
// path-building subset of an HTML canvas 2D context: a pen with a current
// position, moved and extended by the commands below. Coordinates are in
// pixels; angles are in radians.
//
// Surfaces only accumulate path geometry. Whether and how the path is
// stroked, filled, or replayed is up to the implementation; the caller owns
// the surface's lifecycle.
type Surface interface {
	// MoveTo lifts the pen and places it at (x, y), starting a new subpath.
	MoveTo(x, y float64)
	// LineTo extends the path with a straight segment to (x, y).
	LineTo(x, y float64)
	// Arc extends the path with a circular arc centered at (x, y), from
	// startAngle to endAngle, counterclockwise if requested.
	Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool)
	// QuadraticCurveTo extends the path with a quadratic Bézier to (x, y)
	// with control point (cpX, cpY).
	QuadraticCurveTo(cpX, cpY, x, y float64)
	// BezierCurveTo extends the path with a cubic Bézier to (x, y) with
	// control points (cp1X, cp1Y) and (cp2X, cp2Y).
	BezierCurveTo(cp1X, cp1Y, cp2X, cp2Y, x, y float64)
}
