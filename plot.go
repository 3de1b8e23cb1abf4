package rast

import "image"

// Plotter is the contract between a computed pixel collection and a
// renderer: anything that can set a single pixel to a color.
// *Pixmap satisfies it; a terminal cell grid or a GUI framebuffer
// adapter would work just as well.
type Plotter interface {
	SetPixel(x, y int, c RGBA)
}

// DrawPoints plots every pixel of a collection onto p in one color.
// The collection is consumed read-only and no iteration order is
// assumed beyond what the producing operation documents.
func DrawPoints(p Plotter, pts []image.Point, c RGBA) {
	for _, pt := range pts {
		p.SetPixel(pt.X, pt.Y, c)
	}
}
