package rast

// Clip computes the maximal sub-segment of seg that lies inside win,
// using Liang-Barsky parametric clipping. It returns the clipped
// segment and true when any part is visible, or the zero Segment and
// false when the segment lies entirely outside. A segment already
// inside the window comes back unchanged, so clipping is idempotent.
// Zero-length segments are valid and clip to themselves when inside.
//
// The window is canonicalized first, so reversed bounds behave like
// their normalized form. Boundary-parallel segments are detected by
// exact comparison with zero; near-parallel segments take the general
// path, where their far-off intersection parameters fall outside
// [0, 1] and impose no constraint.
func Clip(seg Segment, win Window) (Segment, bool) {
	win = win.Canon()

	d := seg.Delta()

	// Four half-plane constraints in the order left, right, bottom,
	// top. Each bounds the parameter u along the segment by
	// p[i]*u <= q[i].
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{
		seg.P0.X - win.MinX,
		win.MaxX - seg.P0.X,
		seg.P0.Y - win.MinY,
		win.MaxY - seg.P0.Y,
	}

	umin, umax := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			// Parallel to this boundary and outside its half-plane:
			// nothing to keep.
			if q[i] < 0 {
				return Segment{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			// Potential entering intersection.
			if t > umin {
				umin = t
			}
		} else if t < umax {
			// Potential leaving intersection.
			umax = t
		}
	}

	if umin > umax {
		return Segment{}, false
	}
	return Segment{P0: seg.At(umin), P1: seg.At(umax)}, true
}

// ClipAll clips every segment against win and returns the visible
// parts in input order. Segments entirely outside the window are
// dropped. The input slice is not modified.
func ClipAll(segs []Segment, win Window) []Segment {
	win = win.Canon()
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if c, ok := Clip(s, win); ok {
			out = append(out, c)
		}
	}
	return out
}
