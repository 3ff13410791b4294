package grail

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRGBColorString(t *testing.T) {
	if got, want := (RGBColor{1, 0, 0}).String(), "rgb(255,0,0)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := (RGBColor{0.5, 0.25, 1}).String(), "rgb(128,64,255)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHSLColorString(t *testing.T) {
	if got, want := (HSLColor{120, 0.5, 0.25}).String(), "hsl(120,50%,25%)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRGBToHSL(t *testing.T) {
	f := func(c RGBColor, want HSLColor) {
		t.Helper()
		diff(t, want, c.HSL(), cmpopts.EquateApprox(0, 1e-12))
	}
	f(RGBColor{1, 0, 0}, HSLColor{0, 1, 0.5})
	f(RGBColor{0, 1, 0}, HSLColor{120, 1, 0.5})
	f(RGBColor{0, 0, 1}, HSLColor{240, 1, 0.5})
	f(RGBColor{0.5, 0.5, 0.5}, HSLColor{0, 0, 0.5})
	f(RGBColor{0.2, 0.4, 0.8}, HSLColor{220, 0.6, 0.5})
}

func TestRGBToHSLCompat(t *testing.T) {
	// The compat conversion never takes the blue branch: blue-dominant
	// colors come out with hue 0. Saturation and luminosity are unaffected.
	diff(t, HSLColor{0, 1, 0.5}, RGBColor{0, 0, 1}.HSLCompat(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, HSLColor{0, 0.6, 0.5}, RGBColor{0.2, 0.4, 0.8}.HSLCompat(), cmpopts.EquateApprox(0, 1e-12))

	// Colors whose maximum is red or green convert identically either way.
	diff(t, RGBColor{0.8, 0.4, 0.2}.HSL(), RGBColor{0.8, 0.4, 0.2}.HSLCompat())
}

func TestHSLToRGB(t *testing.T) {
	f := func(c HSLColor, want RGBColor) {
		t.Helper()
		diff(t, want, c.RGB(), cmpopts.EquateApprox(0, 1e-12))
	}
	f(HSLColor{0, 1, 0.5}, RGBColor{1, 0, 0})
	f(HSLColor{120, 1, 0.5}, RGBColor{0, 1, 0})
	f(HSLColor{240, 1, 0.5}, RGBColor{0, 0, 1})
	f(HSLColor{220, 0.6, 0.5}, RGBColor{0.2, 0.4, 0.8})
}

func TestHSLToRGBAchromatic(t *testing.T) {
	// Zero saturation rounds the whole luminosity to 0 or 1; gray does not
	// come out gray.
	f := func(c HSLColor, want RGBColor) {
		t.Helper()
		diff(t, want, c.RGB())
	}
	f(HSLColor{0, 0, 0.5}, RGBColor{1, 1, 1})
	f(HSLColor{0, 0, 0.49}, RGBColor{0, 0, 0})
	f(HSLColor{0, 0, 0}, RGBColor{0, 0, 0})
	f(HSLColor{180, 0, 1}, RGBColor{1, 1, 1})
}

func TestColorRoundTrip(t *testing.T) {
	colors := []RGBColor{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.2, 0.4, 0.8},
		{0.8, 0.4, 0.2},
		{0.1, 0.9, 0.3},
		{0.73, 0.21, 0.56},
	}
	for _, c := range colors {
		diff(t, c, c.HSL().RGB(), cmpopts.EquateApprox(0, 1e-9))
	}
}
