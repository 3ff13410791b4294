package grail

// Line represents a finite line segment between two points, not an infinite
// line. The zero value is the degenerate segment at the origin.
type Line struct {
	P0 Point
	P1 Point
}

// Midpoint returns the arithmetic mean of the segment's endpoints.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Eval evaluates the segment at t, linearly interpolating from P0 (t=0) to
// P1 (t=1).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Intersection computes the point where the two segments cross, using the
// determinant form of the segment-segment intersection test. It reports
// false when the segments do not cross within their extents.
//
// Parallel segments, including collinear and coincident ones, never
// intersect; parallelism is an exact zero test on the determinant, with no
// epsilon. A near-parallel pair with a tiny nonzero determinant has a
// crossing far outside both segments, which the parameter-range checks
// reject.
//
// The acceptance bounds are asymmetric: the crossing parameter on the
// receiver lies in [0, 1], the parameter on o in (0, 1]. A crossing exactly
// at o.P0 therefore does not register, while one at the receiver's P0 does.
// The returned point is evaluated on the receiver.
func (l Line) Intersection(o Line) (Point, bool) {
	d := (o.P1.Y-o.P0.Y)*(l.P1.X-l.P0.X) - (o.P1.X-o.P0.X)*(l.P1.Y-l.P0.Y)
	if d == 0 {
		return Point{}, false
	}
	na := (o.P1.X-o.P0.X)*(l.P0.Y-o.P0.Y) - (o.P1.Y-o.P0.Y)*(l.P0.X-o.P0.X)
	nb := (l.P1.X-l.P0.X)*(l.P0.Y-o.P0.Y) - (l.P1.Y-l.P0.Y)*(l.P0.X-o.P0.X)
	ua := na / d
	ub := nb / d
	if ua < 0 || ua > 1 || ub <= 0 || ub > 1 {
		return Point{}, false
	}
	return l.Eval(ua), true
}

// IsInf reports whether at least one endpoint coordinate is infinite.
func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

// IsNaN reports whether at least one endpoint coordinate is NaN.
func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// Render draws the segment onto s, scaling the normalized endpoints by
// width and height.
func (l Line) Render(s Surface, width, height float64) {
	s.MoveTo(l.P0.X*width, l.P0.Y*height)
	s.LineTo(l.P1.X*width, l.P1.Y*height)
}
