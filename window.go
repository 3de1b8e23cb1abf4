package rast

import "image"

// Window is an axis-aligned clip rectangle in float64 user space,
// described by its edge coordinates. A Window is well-formed when
// MinX <= MaxX and MinY <= MaxY; Canon restores that invariant for
// reversed inputs.
type Window struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewWindow creates a Window from edge coordinates. Reversed bounds
// are silently normalized by swapping, so NewWindow(50, -50, -50, 50)
// and NewWindow(-50, -50, 50, 50) describe the same rectangle.
func NewWindow(xmin, ymin, xmax, ymax float64) Window {
	return Window{MinX: xmin, MinY: ymin, MaxX: xmax, MaxY: ymax}.Canon()
}

// WindowFromRect converts an integer surface rectangle to a Window,
// which is convenient for clipping against a pixmap boundary.
func WindowFromRect(r image.Rectangle) Window {
	r = r.Canon()
	return Window{
		MinX: float64(r.Min.X),
		MinY: float64(r.Min.Y),
		MaxX: float64(r.Max.X),
		MaxY: float64(r.Max.Y),
	}
}

// Canon returns the canonical version of the window, with min and max
// coordinates swapped where necessary.
func (w Window) Canon() Window {
	if w.MinX > w.MaxX {
		w.MinX, w.MaxX = w.MaxX, w.MinX
	}
	if w.MinY > w.MaxY {
		w.MinY, w.MaxY = w.MaxY, w.MinY
	}
	return w
}

// Dx returns the width of the window.
func (w Window) Dx() float64 {
	return w.MaxX - w.MinX
}

// Dy returns the height of the window.
func (w Window) Dy() float64 {
	return w.MaxY - w.MinY
}

// Contains returns true if the point lies inside the window.
// Points exactly on an edge are inside.
func (w Window) Contains(p Point) bool {
	return p.X >= w.MinX && p.X <= w.MaxX && p.Y >= w.MinY && p.Y <= w.MaxY
}
