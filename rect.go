package grail

import "errors"

// ErrNotImplemented is returned by operations that are part of the API
// surface but have no implementation.
var ErrNotImplemented = errors.New("grail: not implemented")

// Rect is an axis-aligned rectangle defined by its top-left corner and its
// extent.
//
// Unlike the other primitives, only Origin uses normalized coordinates;
// Width and Height are absolute pixel deltas applied after scaling. See
// [Rect.Render].
type Rect struct {
	Origin Point
	Width  float64
	Height float64
}

// Contains reports whether pt lies within the rectangle.
//
// It is unimplemented and always returns [ErrNotImplemented]; the gap is
// surfaced explicitly rather than stubbed as a constant answer.
func (r Rect) Contains(pt Point) (bool, error) {
	return false, ErrNotImplemented
}

// Render draws the rectangle's outline onto s as a closed path, visiting
// the corners clockwise from the top-left. The origin is scaled by width
// and height; the rectangle's own Width and Height are added to the scaled
// origin as raw pixel offsets.
func (r Rect) Render(s Surface, width, height float64) {
	x := r.Origin.X * width
	y := r.Origin.Y * height
	s.MoveTo(x, y)
	s.LineTo(x+r.Width, y)
	s.LineTo(x+r.Width, y+r.Height)
	s.LineTo(x, y+r.Height)
	s.LineTo(x, y)
}
