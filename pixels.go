package rast

import (
	"cmp"
	"image"
	"slices"
)

// Dedupe returns the canonical form of a pixel collection: sorted
// ascending by x then by y, with duplicate coordinates removed. The
// input slice is not modified; the result is freshly allocated and
// owned by the caller. An empty input yields nil.
func Dedupe(pts []image.Point) []image.Point {
	if len(pts) == 0 {
		return nil
	}
	out := slices.Clone(pts)
	slices.SortFunc(out, comparePixels)
	return slices.Compact(out)
}

// comparePixels orders pixels ascending by x, breaking ties by y.
// This is the canonical pixel-set ordering used across the package.
func comparePixels(a, b image.Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// PixelBounds returns the tight bounding rectangle of a pixel
// collection, such that p.In(PixelBounds(pts)) holds for every point.
// An empty collection yields the zero rectangle.
func PixelBounds(pts []image.Point) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
