package rast

// Segment represents a directed line segment in float64 user space.
// Segments are the input and output of the Liang-Barsky clipper; the
// integer rasterizers take their endpoints as image.Point pairs.
type Segment struct {
	P0, P1 Point
}

// Seg is a convenience function to create a Segment from coordinates.
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{P0: Pt(x0, y0), P1: Pt(x1, y1)}
}

// Delta returns the segment vector P1 - P0.
func (s Segment) Delta() Point {
	return s.P1.Sub(s.P0)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.P0.Distance(s.P1)
}

// At evaluates the segment parametrically: At(0) is P0, At(1) is P1.
func (s Segment) At(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}
