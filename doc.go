// Package rast provides exact integer rasterization primitives for Go.
//
// # Overview
//
// rast is a small Pure Go computational-geometry kernel in the GoGPU
// ecosystem. It converts geometric primitives into explicit pixel
// coordinate sets: lines via Bresenham's algorithm, filled disks and
// circle outlines via the midpoint circle algorithm, thick strokes by
// stamping disks along a rasterized centerline, and line segments
// clipped to a rectangle via Liang-Barsky parametric clipping.
//
// Every operation is a pure function from plain numeric inputs to a
// freshly allocated result. There is no hidden state, so independent
// calls may run concurrently without coordination (see Batch).
//
// # Quick Start
//
//	import "github.com/gogpu/rast"
//
//	// Rasterize a 7 pixel wide line onto a 900x600 surface.
//	bounds := image.Rect(0, 0, 900, 600)
//	pts := rast.ThickLine(image.Pt(50, 50), image.Pt(700, 500), 7, bounds)
//
//	// Hand the pixels to a renderer.
//	cv := rast.NewCanvas(900, 600)
//	cv.DrawPoints(pts, rast.White)
//	cv.SavePNG("line.png")
//
// # Coordinate System
//
// Pixel coordinates are integer image.Point values on a half-open
// image.Rectangle surface, origin at the top-left, x increasing right
// and y increasing down. The clipper works in float64 user space with
// the same orientation.
//
// # Determinism
//
// Pixel sets returned by the thick stroke builders are canonical:
// sorted ascending by x then y with duplicates removed. Line and the
// circle primitives preserve their natural emission order; use Dedupe
// to canonicalize when comparing results as sets.
package rast

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
