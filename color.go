package grail

import (
	"fmt"
	"math"
)

// RGBColor is a color with red, green, and blue channels in [0, 1].
//
// Channel ranges are not validated; out-of-range values propagate into
// conversions and the string form unchecked.
type RGBColor struct {
	R float64
	G float64
	B float64
}

// String formats the color as "rgb(R,G,B)" with channels scaled to [0, 255]
// and rounded half-up.
func (c RGBColor) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)",
		int(math.Round(c.R*255)),
		int(math.Round(c.G*255)),
		int(math.Round(c.B*255)))
}

// HSL converts the color to HSL using the standard min/max/delta
// derivation.
func (c RGBColor) HSL() HSLColor {
	return c.hsl(false)
}

// HSLCompat is [RGBColor.HSL] with one deliberate deviation: the branch
// computing the hue for blue-dominant colors tests the blue channel's
// distance from the maximum for being non-zero rather than zero, and so
// never fires. Any color whose blue channel is the strict maximum comes
// out with hue 0.
//
// This reproduces behavior some existing consumers depend on; new code
// should use [RGBColor.HSL].
func (c RGBColor) HSLCompat() HSLColor {
	return c.hsl(true)
}

func (c RGBColor) hsl(compat bool) HSLColor {
	rmax := max(c.R, c.G, c.B)
	rmin := min(c.R, c.G, c.B)
	delta := rmax - rmin
	l := (rmax + rmin) / 2

	var h, s float64
	if delta != 0 {
		if l < 0.5 {
			s = delta / (rmax + rmin)
		} else {
			s = delta / (2 - rmax - rmin)
		}
		switch {
		case c.R == rmax:
			h = (c.G - c.B) / delta
		case c.G == rmax:
			h = 2 + (c.B-c.R)/delta
		case c.B == rmax:
			if compat {
				// Here blue is the strict maximum, so a non-zero test on
				// c.B-rmax fails and the hue keeps its zero value.
				break
			}
			h = 4 + (c.R-c.G)/delta
		}
		h *= 60
		if h < 0 {
			h += 360
		}
	}
	return HSLColor{H: h, S: s, L: l}
}

// HSLColor is a color with hue in degrees and saturation and luminosity in
// [0, 1]. As with [RGBColor], ranges are not validated.
type HSLColor struct {
	H float64
	S float64
	L float64
}

// String formats the color as "hsl(H,S%,L%)" with the hue rounded to the
// nearest degree and saturation and luminosity as rounded percentages.
func (c HSLColor) String() string {
	return fmt.Sprintf("hsl(%d,%d%%,%d%%)",
		int(math.Round(c.H)),
		int(math.Round(c.S*100)),
		int(math.Round(c.L*100)))
}

// RGB converts the color to RGB.
//
// Zero saturation is the achromatic case: every output channel is the
// luminosity rounded to 0 or 1. The whole luminosity is rounded, not
// scaled, so gray inputs collapse to black or white. This is defined
// behavior, kept bit-for-bit from the conversion this one replaces.
func (c HSLColor) RGB() RGBColor {
	if c.S == 0 {
		v := math.Round(c.L)
		return RGBColor{R: v, G: v, B: v}
	}

	var t2 float64
	if c.L < 0.5 {
		t2 = c.L * (1 + c.S)
	} else {
		t2 = c.L + c.S - c.L*c.S
	}
	t1 := 2*c.L - t2
	th := c.H / 360
	tr := th - 1.0/3.0
	return RGBColor{
		R: colorCalc(th+1.0/3.0, t1, t2),
		G: colorCalc(th, t1, t2),
		B: colorCalc(tr, t1, t2),
	}
}

// colorCalc evaluates one RGB channel from the hue offset c and the
// intermediates t1, t2, interpolating piecewise with breakpoints at 1/6,
// 1/2, and 2/3.
func colorCalc(c, t1, t2 float64) float64 {
	if c < 0 {
		c++
	}
	if c > 1 {
		c--
	}
	switch {
	case 6*c < 1:
		return t1 + (t2-t1)*6*c
	case 2*c < 1:
		return t2
	case 3*c < 2:
		return t1 + (t2-t1)*(2.0/3.0-c)*6
	default:
		return t1
	}
}
