package rast

import (
	"image"
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, -2)); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub = %v, want (2,3)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_Lerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, -20)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != Pt(5, -10) {
		t.Errorf("Lerp(0.5) = %v, want (5,-10)", got)
	}
}

func TestPoint_Round(t *testing.T) {
	tests := []struct {
		in   Point
		want image.Point
	}{
		{Pt(1.4, 1.6), image.Pt(1, 2)},
		{Pt(1.5, -1.5), image.Pt(2, -2)},
		{Pt(0, 0), image.Pt(0, 0)},
	}
	for _, tt := range tests {
		if got := tt.in.Round(); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSegment(t *testing.T) {
	s := Seg(1, 2, 4, 6)
	if got := s.Delta(); got != Pt(3, 4) {
		t.Errorf("Delta = %v, want (3,4)", got)
	}
	if got := s.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := s.At(0); got != Pt(1, 2) {
		t.Errorf("At(0) = %v, want P0", got)
	}
	if got := s.At(1); got != Pt(4, 6) {
		t.Errorf("At(1) = %v, want P1", got)
	}
	if got := s.At(0.5); got != Pt(2.5, 4) {
		t.Errorf("At(0.5) = %v, want (2.5,4)", got)
	}
}

func TestWindow_Canon(t *testing.T) {
	w := Window{MinX: 50, MinY: -50, MaxX: -50, MaxY: 50}.Canon()
	want := Window{MinX: -50, MinY: -50, MaxX: 50, MaxY: 50}
	if w != want {
		t.Errorf("Canon = %+v, want %+v", w, want)
	}

	// Already canonical windows pass through unchanged.
	if got := want.Canon(); got != want {
		t.Errorf("Canon(canonical) = %+v, want %+v", got, want)
	}
}

func TestNewWindow_NormalizesReversedBounds(t *testing.T) {
	if got := NewWindow(10, 20, -10, -20); got != NewWindow(-10, -20, 10, 20) {
		t.Errorf("NewWindow reversed = %+v", got)
	}
}

func TestWindow_Contains(t *testing.T) {
	w := NewWindow(-50, -50, 50, 50)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(50, 50), true}, // edges are inside
		{Pt(-50, 50), true},
		{Pt(50.001, 0), false},
		{Pt(0, -51), false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestWindow_Dimensions(t *testing.T) {
	w := NewWindow(-10, 0, 30, 25)
	if w.Dx() != 40 || w.Dy() != 25 {
		t.Errorf("Dx, Dy = %v, %v, want 40, 25", w.Dx(), w.Dy())
	}
}

func TestWindowFromRect(t *testing.T) {
	w := WindowFromRect(image.Rect(0, 0, 800, 600))
	if w != NewWindow(0, 0, 800, 600) {
		t.Errorf("WindowFromRect = %+v", w)
	}
	if math.Abs(w.Dx()-800) > 0 {
		t.Errorf("Dx = %v, want 800", w.Dx())
	}
}
