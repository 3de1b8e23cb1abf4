package rast

import "image"

// Line rasterizes the segment from p0 to p1 with Bresenham's line
// algorithm. The result always holds exactly max(|dx|, |dy|)+1 points
// and covers every column (or row, for steep lines) between the
// endpoints with no gaps. Pixels are emitted in the left-to-right
// sweep order of the dominant axis, which need not start at p0;
// callers comparing results across swapped endpoints should compare
// as sets (see Dedupe). The point set itself is endpoint-order
// independent.
func Line(p0, p1 image.Point) []image.Point {
	if p0 == p1 {
		return []image.Point{p0}
	}

	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	// Work in the octant where x is the dominant axis: transpose
	// steep lines, then sweep left to right.
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := 1
	if y0 >= y1 {
		ystep = -1
	}

	pts := make([]image.Point, 0, dx+1)
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			pts = append(pts, image.Pt(y, x))
		} else {
			pts = append(pts, image.Pt(x, y))
		}
		err -= dy
		if err < 0 {
			y += ystep
			err += dx
		}
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
