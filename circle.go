package rast

import "image"

// FillDisk rasterizes the filled disk of the given radius around c
// using the midpoint circle algorithm, emitting one horizontal span
// per symmetric row and iteration. Pixels outside bounds are silently
// dropped; an empty rectangle therefore yields no pixels. A radius of
// zero (or less) yields the single center pixel, bounds permitting.
//
// Overlapping spans from successive iterations mean the result may
// contain duplicate coordinates. The set of distinct pixels equals
// the standard midpoint-circle disk; callers that need a canonical
// unique set should pass the result through Dedupe, as the thick
// stroke builders do.
func FillDisk(c image.Point, r int, bounds image.Rectangle) []image.Point {
	if r <= 0 {
		if c.In(bounds) {
			return []image.Point{c}
		}
		return nil
	}

	pts := make([]image.Point, 0, 4*r*r)

	x := r
	y := 0
	d := 1 - r

	// Walk one octant; every (x, y) pair contributes spans for the
	// rows it mirrors onto. The y != 0 and x != y guards skip rows
	// that would repeat within a single iteration.
	for x >= y {
		pts = hspan(pts, c.Y+y, c.X-x, c.X+x, bounds)
		if y != 0 {
			pts = hspan(pts, c.Y-y, c.X-x, c.X+x, bounds)
		}
		if x != y {
			pts = hspan(pts, c.Y+x, c.X-y, c.X+y, bounds)
			pts = hspan(pts, c.Y-x, c.X-y, c.X+y, bounds)
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return pts
}

// Circle rasterizes the outline of the circle of the given radius
// around c using the same midpoint octant walk as FillDisk, mirrored
// eight ways. A radius of zero (or less) yields the single center
// point. Pixels repeat where octants meet (on the axes and the
// diagonal); Dedupe canonicalizes the result when set semantics are
// needed.
func Circle(c image.Point, r int) []image.Point {
	if r <= 0 {
		return []image.Point{c}
	}

	pts := make([]image.Point, 0, 8*r)

	x := r
	y := 0
	d := 1 - r

	for x >= y {
		pts = append(pts,
			image.Pt(c.X+x, c.Y+y),
			image.Pt(c.X-x, c.Y+y),
			image.Pt(c.X+x, c.Y-y),
			image.Pt(c.X-x, c.Y-y),
			image.Pt(c.X+y, c.Y+x),
			image.Pt(c.X-y, c.Y+x),
			image.Pt(c.X+y, c.Y-x),
			image.Pt(c.X-y, c.Y-x),
		)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return pts
}

// hspan appends the pixels of the horizontal run [x0, x1] at row y,
// intersected with bounds. Runs that fall entirely outside append
// nothing; there is no clamping of outside runs onto the border.
func hspan(dst []image.Point, y, x0, x1 int, bounds image.Rectangle) []image.Point {
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return dst
	}
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if x1 >= bounds.Max.X {
		x1 = bounds.Max.X - 1
	}
	for x := x0; x <= x1; x++ {
		dst = append(dst, image.Pt(x, y))
	}
	return dst
}
