// Command graildemo renders each of the package's primitives into a PNG.
package main

import (
	"flag"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/grailkit/grail"
)

func main() {
	log.SetFlags(0)
	out := flag.String("o", "grail.png", "output file")
	size := flag.Int("size", 512, "image width and height in pixels")
	flag.Parse()

	w := float64(*size)
	h := float64(*size)
	r := grail.NewRaster(*size, *size)

	// Background.
	grail.Rect{Origin: grail.Pt(0, 0), Width: w, Height: h}.Render(r, w, h)
	r.Fill(color.White)

	// A filled rectangle. Its extent is in raw pixels, only the origin is
	// normalized.
	grail.Rect{Origin: grail.Pt(0.1, 0.1), Width: w * 0.35, Height: h * 0.25}.Render(r, w, h)
	r.Fill(rgba(grail.HSLColor{H: 210, S: 0.6, L: 0.55}.RGB()))

	// A lens shape from a quadratic arch closed with its chord.
	q := grail.QuadBez{P0: grail.Pt(0.9, 0.5), P1: grail.Pt(0.7, 0.1), P2: grail.Pt(0.5, 0.5)}
	q.Render(r, w, h)
	r.LineTo(q.P0.X*w, q.P0.Y*h)
	r.Fill(rgba(grail.HSLColor{H: 10, S: 0.7, L: 0.5}.RGB()))

	// A wave from a cubic closed with its chord.
	c := grail.CubicBez{
		P0: grail.Pt(0.9, 0.8),
		P1: grail.Pt(0.1, 0.8),
		P2: grail.Pt(0.35, 0.6),
		P3: grail.Pt(0.65, 1.0),
	}
	c.Render(r, w, h)
	r.LineTo(c.P0.X*w, c.P0.Y*h)
	r.Fill(rgba(grail.HSLColor{H: 130, S: 0.5, L: 0.45}.RGB()))

	// The two segments' crossing, marked with a dot.
	l1 := grail.Line{P0: grail.Pt(0.55, 0.1), P1: grail.Pt(0.85, 0.4)}
	l2 := grail.Line{P0: grail.Pt(0.85, 0.1), P1: grail.Pt(0.55, 0.4)}
	if pt, ok := l1.Intersection(l2); ok {
		pt.RenderRadius(r, w, h, 5)
		r.Fill(color.Black)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, r.Image()); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

func rgba(c grail.RGBColor) color.Color {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}
