package grail

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// arcTolerance is the maximum deviation, in pixels, of the cubic segments
// [Raster.Arc] flattens arcs into.
const arcTolerance = 0.1

// Raster is a [Surface] that accumulates path commands and rasterizes them
// into an RGBA image with x/image's scanline rasterizer. Subpaths are
// implicitly closed when filled, matching canvas fill semantics.
//
// A Raster is not safe for concurrent use.
type Raster struct {
	z       *vector.Rasterizer
	img     *image.RGBA
	started bool
}

var _ Surface = (*Raster)(nil)

// NewRaster returns a Raster drawing into a fresh width×height image.
func NewRaster(width, height int) *Raster {
	return &Raster{
		z:   vector.NewRasterizer(width, height),
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (r *Raster) MoveTo(x, y float64) {
	if r.started {
		r.z.ClosePath()
	}
	r.z.MoveTo(float32(x), float32(y))
	r.started = true
}

func (r *Raster) LineTo(x, y float64) {
	r.z.LineTo(float32(x), float32(y))
}

func (r *Raster) QuadraticCurveTo(cpX, cpY, x, y float64) {
	r.z.QuadTo(float32(cpX), float32(cpY), float32(x), float32(y))
}

func (r *Raster) BezierCurveTo(cp1X, cp1Y, cp2X, cp2Y, x, y float64) {
	r.z.CubeTo(
		float32(cp1X), float32(cp1Y),
		float32(cp2X), float32(cp2Y),
		float32(x), float32(y),
	)
}

// Arc extends the path with a circular arc, approximated by cubic Bézier
// segments within [arcTolerance] pixels. Like a canvas arc, it first
// connects the current point to the arc's start with a straight segment,
// or starts a new subpath if the path is empty.
func (r *Raster) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	sweep := normalizeSweep(startAngle, endAngle, counterclockwise)

	center := Pt(x, y)
	sample := func(angle float64) Vec2 {
		sin, cos := math.Sincos(angle)
		return Vec2{X: radius * cos, Y: radius * sin}
	}
	p0 := sample(startAngle)
	start := center.Translate(p0)
	if r.started {
		r.LineTo(start.X, start.Y)
	} else {
		r.MoveTo(start.X, start.Y)
	}
	if sweep == 0 {
		return
	}

	// Number of subdivisions per full circle based on the error tolerance.
	// Note: this may slightly underestimate the error for quadrants.
	scaledErr := radius / arcTolerance
	nErr := max(math.Pow(1.1163*scaledErr, 1.0/6.0), 3.999_999)
	n := math.Ceil(nErr * math.Abs(sweep) * (1.0 / (2.0 * math.Pi)))
	angleStep := sweep / n
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep)
	angle0 := startAngle
	for i := 0; i < int(n); i++ {
		angle1 := angle0 + angleStep
		c1 := center.Translate(p0.Add(sample(angle0 + math.Pi/2).Mul(armLen)))
		p3 := sample(angle1)
		end := center.Translate(p3)
		c2 := center.Translate(p3.Sub(sample(angle1 + math.Pi/2).Mul(armLen)))

		r.BezierCurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)

		angle0 = angle1
		p0 = p3
	}
}

// normalizeSweep converts a start/end angle pair and a direction into a
// signed sweep: negative for counterclockwise arcs, positive for clockwise
// ones, clamped to a full circle.
func normalizeSweep(startAngle, endAngle float64, counterclockwise bool) float64 {
	sweep := endAngle - startAngle
	if counterclockwise {
		if sweep <= -2*math.Pi {
			return -2 * math.Pi
		}
		if sweep > 0 {
			sweep = math.Mod(sweep, 2*math.Pi) - 2*math.Pi
		}
		return sweep
	}
	if sweep >= 2*math.Pi {
		return 2 * math.Pi
	}
	if sweep < 0 {
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}
	return sweep
}

// Fill rasterizes the accumulated path, filled with src, into the surface's
// image, then starts a fresh path. Filling an empty path is a no-op.
func (r *Raster) Fill(src color.Color) {
	if !r.started {
		return
	}
	r.z.ClosePath()
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(src), image.Point{})
	sz := r.z.Size()
	r.z.Reset(sz.X, sz.Y)
	r.started = false
}

// Image returns the image the surface draws into. The same image is
// returned on every call; successive fills accumulate into it.
func (r *Raster) Image() *image.RGBA {
	return r.img
}
