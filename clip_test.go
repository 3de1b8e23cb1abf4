package rast

import (
	"math"
	"testing"
)

var testWindow = NewWindow(-50, -50, 50, 50)

func assertSegmentNear(t *testing.T, got, want Segment) {
	t.Helper()
	const eps = 1e-9
	if math.Abs(got.P0.X-want.P0.X) > eps || math.Abs(got.P0.Y-want.P0.Y) > eps ||
		math.Abs(got.P1.X-want.P1.X) > eps || math.Abs(got.P1.Y-want.P1.Y) > eps {
		t.Errorf("segment = %+v, want %+v", got, want)
	}
}

func TestClip_FullyInside(t *testing.T) {
	seg := Seg(0, 0, 10, 10)
	got, ok := Clip(seg, testWindow)
	if !ok {
		t.Fatal("visible = false, want true")
	}
	if got != seg {
		t.Errorf("inside segment changed: %+v, want %+v", got, seg)
	}
}

func TestClip_FullyOutside(t *testing.T) {
	if _, ok := Clip(Seg(100, 100, 200, 100), testWindow); ok {
		t.Error("visible = true for a segment fully outside")
	}
}

func TestClip_CrossesTwoEdges(t *testing.T) {
	got, ok := Clip(Seg(-100, 0, 100, 0), testWindow)
	if !ok {
		t.Fatal("visible = false, want true")
	}
	assertSegmentNear(t, got, Seg(-50, 0, 50, 0))
}

func TestClip_CrossesOneEdge(t *testing.T) {
	got, ok := Clip(Seg(0, 0, 200, 0), testWindow)
	if !ok {
		t.Fatal("visible = false, want true")
	}
	assertSegmentNear(t, got, Seg(0, 0, 50, 0))
}

func TestClip_ExactCornerIsDegenerate(t *testing.T) {
	// The segment touches the window only at the corner (50, 50).
	got, ok := Clip(Seg(0, 100, 100, 0), testWindow)
	if !ok {
		t.Fatal("visible = false, want true")
	}
	assertSegmentNear(t, got, Seg(50, 50, 50, 50))
}

func TestClip_Idempotent(t *testing.T) {
	once, ok := Clip(Seg(-200, -30, 300, 80), testWindow)
	if !ok {
		t.Fatal("visible = false, want true")
	}
	twice, ok := Clip(once, testWindow)
	if !ok {
		t.Fatal("second clip not visible")
	}
	assertSegmentNear(t, twice, once)
}

func TestClip_ReversedWindow(t *testing.T) {
	reversed := Window{MinX: 50, MinY: 50, MaxX: -50, MaxY: -50}
	a, okA := Clip(Seg(-100, 0, 100, 0), testWindow)
	b, okB := Clip(Seg(-100, 0, 100, 0), reversed)
	if okA != okB {
		t.Fatalf("visibility differs: %v vs %v", okA, okB)
	}
	assertSegmentNear(t, b, a)
}

func TestClip_ParallelSegments(t *testing.T) {
	// Parallel to the top/bottom edges, inside the y range: clipped
	// in x only.
	got, ok := Clip(Seg(-80, 20, 80, 20), testWindow)
	if !ok {
		t.Fatal("visible = false, want true")
	}
	assertSegmentNear(t, got, Seg(-50, 20, 50, 20))

	// Parallel but beyond the top edge: rejected by the q < 0 test.
	if _, ok := Clip(Seg(-80, 60, 80, 60), testWindow); ok {
		t.Error("visible = true for a parallel segment outside")
	}
}

func TestClip_DegenerateSegment(t *testing.T) {
	inside := Seg(5, 5, 5, 5)
	got, ok := Clip(inside, testWindow)
	if !ok || got != inside {
		t.Errorf("Clip(point inside) = %+v, %v; want unchanged, true", got, ok)
	}

	if _, ok := Clip(Seg(70, 70, 70, 70), testWindow); ok {
		t.Error("visible = true for a point outside")
	}
}

func TestClipAll(t *testing.T) {
	segs := []Segment{
		Seg(0, 0, 10, 10),       // inside
		Seg(100, 100, 200, 100), // outside, dropped
		Seg(-100, 0, 100, 0),    // clipped
	}
	got := ClipAll(segs, testWindow)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Input order preserved.
	assertSegmentNear(t, got[0], Seg(0, 0, 10, 10))
	assertSegmentNear(t, got[1], Seg(-50, 0, 50, 0))
}
