package rast

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Black background, default point size
//	cv := rast.NewCanvas(800, 600)
//
//	// White background, fat 2x2 points
//	cv := rast.NewCanvas(800, 600,
//	    rast.WithBackground(rast.White),
//	    rast.WithPointSize(2))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	background RGBA
	pointSize  int
}

// defaultCanvasOptions returns the default canvas options:
// black background, single-pixel points.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		background: Black,
		pointSize:  1,
	}
}

// WithBackground sets the color the canvas is cleared to on creation.
func WithBackground(c RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithPointSize sets the side length, in pixels, of the square block
// plotted for each point. Values below 1 are treated as 1. This is
// the raster analog of a renderer's point-size state: a size of 2
// plots each coordinate as a 2x2 block.
func WithPointSize(size int) CanvasOption {
	return func(o *canvasOptions) {
		o.pointSize = size
	}
}

// Canvas is the presentation layer over a Pixmap: it takes the pixel
// collections and segments the kernel produces and renders them as
// colored points. Drawing is overwrite-only (no blending); callers
// control layering by draw order, back to front.
type Canvas struct {
	pixmap    *Pixmap
	pointSize int
}

// NewCanvas creates a canvas of the given size, cleared to the
// configured background color.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.pointSize < 1 {
		o.pointSize = 1
	}

	pm := NewPixmap(width, height)
	pm.Clear(o.background)

	Logger().Debug("rast: canvas created",
		"width", width, "height", height, "pointSize", o.pointSize)

	return &Canvas{pixmap: pm, pointSize: o.pointSize}
}

// Bounds returns the integer pixel rectangle of the canvas surface,
// suitable for passing to the bounded rasterizers.
func (cv *Canvas) Bounds() image.Rectangle {
	return cv.pixmap.Bounds()
}

// Pixmap returns the underlying pixel buffer.
func (cv *Canvas) Pixmap() *Pixmap {
	return cv.pixmap
}

// DrawPoints plots a pixel collection in one color, each coordinate
// as a block of the configured point size. The collection is consumed
// read-only.
func (cv *Canvas) DrawPoints(pts []image.Point, c RGBA) {
	Logger().Debug("rast: draw points", "pixels", len(pts), "pointSize", cv.pointSize)
	if cv.pointSize == 1 {
		DrawPoints(cv.pixmap, pts, c)
		return
	}
	for _, pt := range pts {
		cv.plotBlock(pt, cv.pointSize, c)
	}
}

// plotBlock plots a size x size block centered on pt.
func (cv *Canvas) plotBlock(pt image.Point, size int, c RGBA) {
	x0 := pt.X - size/2
	y0 := pt.Y - size/2
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			cv.pixmap.SetPixel(x, y, c)
		}
	}
}

// DrawLine rasterizes and plots a single-pixel line.
func (cv *Canvas) DrawLine(p0, p1 image.Point, c RGBA) {
	cv.DrawPoints(Line(p0, p1), c)
}

// DrawDisk rasterizes and plots a filled disk, clipped to the canvas.
func (cv *Canvas) DrawDisk(center image.Point, r int, c RGBA) {
	cv.DrawPoints(FillDisk(center, r, cv.Bounds()), c)
}

// DrawCircle rasterizes and plots a single-pixel circle outline.
func (cv *Canvas) DrawCircle(center image.Point, r int, c RGBA) {
	cv.DrawPoints(Circle(center, r), c)
}

// DrawRing rasterizes and plots a circle outline of the given stroke
// width, clipped to the canvas.
func (cv *Canvas) DrawRing(center image.Point, r, width int, c RGBA) {
	cv.DrawPoints(ThickCircle(center, r, width, cv.Bounds()), c)
}

// DrawSegment plots a float64 segment as a stroked line of the given
// width, rounding the endpoints to the nearest pixel.
func (cv *Canvas) DrawSegment(seg Segment, width int, c RGBA) {
	cv.DrawPoints(ThickLine(seg.P0.Round(), seg.P1.Round(), width, cv.Bounds()), c)
}

// DrawWindow plots the outline of a clip window as four stroked
// edges.
func (cv *Canvas) DrawWindow(win Window, width int, c RGBA) {
	win = win.Canon()
	cv.DrawSegment(Seg(win.MinX, win.MinY, win.MaxX, win.MinY), width, c)
	cv.DrawSegment(Seg(win.MaxX, win.MinY, win.MaxX, win.MaxY), width, c)
	cv.DrawSegment(Seg(win.MaxX, win.MaxY, win.MinX, win.MaxY), width, c)
	cv.DrawSegment(Seg(win.MinX, win.MaxY, win.MinX, win.MinY), width, c)
}

// Label draws a line of text with its baseline starting at (x, y),
// for coordinate read-outs and legends on demo output.
func (cv *Canvas) Label(x, y int, text string, c RGBA) {
	d := font.Drawer{
		Dst:  cv.pixmap,
		Src:  image.NewUniform(c.Color()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// SavePNG saves the canvas surface to a PNG file.
func (cv *Canvas) SavePNG(path string) error {
	return cv.pixmap.SavePNG(path)
}
