package rast

import (
	"image"
	"slices"
)

// ThickLine rasterizes a stroked line of the given width from p0 to
// p1 by stamping a filled disk of radius width/2 at every centerline
// pixel. The result is canonical: sorted ascending by x then y with
// duplicates removed, clipped to bounds. Widths below 1 are treated
// as 1, so ThickLine with width 1 equals Line(p0, p1) as a set
// (intersected with bounds).
func ThickLine(p0, p1 image.Point, width int, bounds image.Rectangle) []image.Point {
	return stampStroke(Line(p0, p1), width, bounds)
}

// ThickCircle rasterizes a circle outline of the given radius and
// stroke width around c, stamping disks along the midpoint-circle
// perimeter exactly as ThickLine stamps along its centerline. The
// result is canonical and clipped to bounds; widths below 1 are
// treated as 1.
func ThickCircle(c image.Point, r, width int, bounds image.Rectangle) []image.Point {
	return stampStroke(Circle(c, r), width, bounds)
}

// stampStroke thickens a rasterized centerline by stamping FillDisk
// at every center and deduplicating the union. Neighboring stamps
// overlap almost entirely, so the sort+compact pass is what keeps
// the result (and any draw loop consuming it) proportional to the
// stroke area instead of centerline length times disk area.
func stampStroke(centers []image.Point, width int, bounds image.Rectangle) []image.Point {
	if width < 1 {
		width = 1
	}
	r := width / 2

	var pts []image.Point
	for _, c := range centers {
		pts = append(pts, FillDisk(c, r, bounds)...)
	}
	if len(pts) == 0 {
		return nil
	}
	slices.SortFunc(pts, comparePixels)
	return slices.Compact(pts)
}
