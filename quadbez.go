package grail

// DefaultFlattenStep is the parameter step [QuadBez.IntersectLine] and
// [CubicBez.IntersectLine] flatten curves with. Smaller steps are more
// accurate and test more secants.
const DefaultFlattenStep = 0.01

// QuadBez is a quadratic Bézier segment.
//
// Its parametrization is reversed relative to the usual convention:
//
//	P(t) = P0·t² + P1·2t(1−t) + P2·(1−t)²
//
// so P0 and P2 are the curve's endpoints, with Eval(1) = P0 and
// Eval(0) = P2, and P1 is the control point.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at t. The natural domain of t is [0, 1], but any
// real value is accepted and evaluated.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(t * t)
	b := Vec2(q.P1).Mul(2.0 * t * mt)
	c := Vec2(q.P2).Mul(mt * mt)
	return Point(a.Add(b).Add(c))
}

// IsInf reports whether at least one control point coordinate is infinite.
func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

// IsNaN reports whether at least one control point coordinate is NaN.
func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// IntersectLine approximates the point where the curve crosses the segment
// l, flattening the curve with [DefaultFlattenStep]. It reports false when
// no secant crosses l.
//
// When the curve crosses l more than once, the crossing found first
// scanning from t=1 downward wins; this tie-break is part of the defined
// behavior, not an artifact. See [QuadBez.IntersectLineStep] for the scan.
func (q QuadBez) IntersectLine(l Line) (Point, bool) {
	return q.IntersectLineStep(l, DefaultFlattenStep)
}

// IntersectLineStep is [QuadBez.IntersectLine] with an explicit flattening
// step.
//
// The curve is sampled at t = 1, 1−step, 1−2·step, … down to −1 inclusive,
// deliberately overshooting the natural [0, 1] domain, and each secant
// between consecutive samples is tested against l with [Line.Intersection].
// The first crossing found is returned; it lies on the secant, not exactly
// on the curve, so its accuracy is governed by step. A step that is not
// positive finds nothing.
func (q QuadBez) IntersectLineStep(l Line, step float64) (Point, bool) {
	return flattenIntersect(q.Eval, l, step)
}

// Render draws the curve onto s using the surface's native quadratic
// primitive, scaling the control points by width and height.
func (q QuadBez) Render(s Surface, width, height float64) {
	s.MoveTo(q.P0.X*width, q.P0.Y*height)
	s.QuadraticCurveTo(q.P1.X*width, q.P1.Y*height, q.P2.X*width, q.P2.Y*height)
}

// flattenIntersect scans eval from t=1 down to t=−1 in the given step,
// testing the secant between consecutive samples against l and returning
// the first crossing.
func flattenIntersect(eval func(float64) Point, l Line, step float64) (Point, bool) {
	if step <= 0 {
		return Point{}, false
	}
	t := 1.0
	prev := eval(t)
	for t -= step; t >= -1.0; t -= step {
		cur := eval(t)
		if pt, ok := (Line{prev, cur}).Intersection(l); ok {
			return pt, true
		}
		prev = cur
	}
	return Point{}, false
}
