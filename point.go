package grail

import (
	"fmt"
	"math"
)

// DefaultPointRadius is the pixel radius [Point.Render] draws with.
const DefaultPointRadius = 3.0

// Point is a 2D coordinate. The zero value is the origin.
//
// For rendering purposes, coordinates are normalized fractions of the target
// surface: both x and y are conventionally in [0, 1].
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g,%g)", pt.X, pt.Y)
}

// Translate returns the point moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
//
// It is symmetric, non-negative, and zero exactly when the points are equal.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Render draws the point onto s as a circle of [DefaultPointRadius] pixels.
func (pt Point) Render(s Surface, width, height float64) {
	pt.RenderRadius(s, width, height, DefaultPointRadius)
}

// RenderRadius draws the point onto s as a circle of the given pixel radius,
// centered at (x·width, y·height).
func (pt Point) RenderRadius(s Surface, width, height, radius float64) {
	s.Arc(pt.X*width, pt.Y*height, radius, 0, 2*math.Pi, false)
}
