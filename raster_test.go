package grail

import (
	"image/color"
	"math"
	"testing"
)

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(64, 64)
	Rect{Origin: Pt(0.25, 0.25), Width: 32, Height: 32}.Render(r, 64, 64)
	r.Fill(color.White)

	img := r.Image()
	if _, _, _, a := img.At(32, 32).RGBA(); a == 0 {
		t.Error("expected coverage inside the filled rectangle")
	}
	if _, _, _, a := img.At(2, 2).RGBA(); a != 0 {
		t.Error("expected no coverage outside the filled rectangle")
	}
}

func TestRasterFillPoint(t *testing.T) {
	r := NewRaster(64, 64)
	Pt(0.5, 0.5).RenderRadius(r, 64, 64, 8)
	r.Fill(color.White)

	img := r.Image()
	if _, _, _, a := img.At(32, 32).RGBA(); a == 0 {
		t.Error("expected coverage at the circle's center")
	}
	if _, _, _, a := img.At(32, 45).RGBA(); a != 0 {
		t.Error("expected no coverage outside the circle")
	}
}

func TestRasterFillEmpty(t *testing.T) {
	r := NewRaster(8, 8)
	// Filling an empty path must not panic and must not touch the image.
	r.Fill(color.White)
	if _, _, _, a := r.Image().At(4, 4).RGBA(); a != 0 {
		t.Error("expected an untouched image")
	}
}

func TestRasterFillResetsPath(t *testing.T) {
	r := NewRaster(64, 64)
	Rect{Origin: Pt(0.0, 0.0), Width: 16, Height: 16}.Render(r, 64, 64)
	r.Fill(color.White)

	// The second fill must not re-rasterize the first rectangle.
	Rect{Origin: Pt(0.5, 0.5), Width: 16, Height: 16}.Render(r, 64, 64)
	r.Fill(color.RGBA{R: 255, A: 255})

	img := r.Image()
	if got := img.RGBAAt(8, 8); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("expected the first rectangle to stay white, got %v", got)
	}
	if got := img.RGBAAt(40, 40); got.R != 255 || got.G != 0 {
		t.Errorf("expected the second rectangle to be red, got %v", got)
	}
}

func TestNormalizeSweep(t *testing.T) {
	const pi = math.Pi
	f := func(start, end float64, ccw bool, want float64) {
		t.Helper()
		if got := normalizeSweep(start, end, ccw); got != want {
			t.Errorf("normalizeSweep(%v, %v, %v) = %v, want %v", start, end, ccw, got, want)
		}
	}
	f(0, 2*pi, false, 2*pi)
	f(0, 10*pi, false, 2*pi)
	f(0, pi/2, false, pi/2)
	f(0, -2*pi, true, -2*pi)
	f(0, -pi/2, true, -pi/2)
	f(pi, 0, true, -pi)
}
