package grail

// CubicBez is a cubic Bézier segment.
//
// Its control points map to the polynomial terms in a permuted order:
//
//	P(t) = P0·t³ + P3·3t²(1−t) + P2·3t(1−t)² + P1·(1−t)³
//
// P0 and P1 are the curve's endpoints, with Eval(1) = P0 and Eval(0) = P1;
// P3 is the control point shaping the P0 end and P2 the one shaping the P1
// end. This mapping is load-bearing: [CubicBez.Render] passes the control
// points to the surface in the same permuted order.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at t. The natural domain of t is [0, 1], but any
// real value is accepted and evaluated.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(t * t * t)
	b := Vec2(c.P3).Mul(3.0 * t * t * mt)
	cc := Vec2(c.P2).Mul(3.0 * t * mt * mt)
	d := Vec2(c.P1).Mul(mt * mt * mt)
	return Point(a.Add(b).Add(cc).Add(d))
}

// IsInf reports whether at least one control point coordinate is infinite.
func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

// IsNaN reports whether at least one control point coordinate is NaN.
func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// IntersectLine approximates the point where the curve crosses the segment
// l, flattening the curve with [DefaultFlattenStep]. It shares its scan
// order and tie-break with [QuadBez.IntersectLine]: the crossing found
// first scanning from t=1 downward wins.
func (c CubicBez) IntersectLine(l Line) (Point, bool) {
	return c.IntersectLineStep(l, DefaultFlattenStep)
}

// IntersectLineStep is [CubicBez.IntersectLine] with an explicit flattening
// step. See [QuadBez.IntersectLineStep] for the scan semantics.
func (c CubicBez) IntersectLineStep(l Line, step float64) (Point, bool) {
	return flattenIntersect(c.Eval, l, step)
}

// Render draws the curve onto s using the surface's native cubic primitive,
// scaling the control points by width and height. Matching the evaluation
// formula, the pen starts at P0 and P3, P2 are passed as the two Bézier
// control points with P1 as the end anchor.
func (c CubicBez) Render(s Surface, width, height float64) {
	s.MoveTo(c.P0.X*width, c.P0.Y*height)
	s.BezierCurveTo(
		c.P3.X*width, c.P3.Y*height,
		c.P2.X*width, c.P2.Y*height,
		c.P1.X*width, c.P1.Y*height,
	)
}
