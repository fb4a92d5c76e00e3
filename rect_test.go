package ifs

import (
	"math"
	"testing"
)

func TestRectUnionPoint(t *testing.T) {
	r := NewRectFromPoints(Pt(0, 0), Pt(0, 0))
	for _, pt := range []Point{Pt(1, -1), Pt(-2, 3), Pt(0.5, 0.5)} {
		r = r.UnionPoint(pt)
	}
	diff(t, Rect{-2, -1, 1, 3}, r)
	diff(t, 3.0, r.Width())
	diff(t, 4.0, r.Height())
	diff(t, Pt(-0.5, 1), r.Center())
}

func TestRectAbs(t *testing.T) {
	diff(t, Rect{0, 1, 2, 3}, NewRectFromPoints(Pt(2, 3), Pt(0, 1)))
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	if !r.Contains(Pt(0, 0)) {
		t.Error("should contain its origin")
	}
	if r.Contains(Pt(1, 0.5)) {
		t.Error("shouldn't contain its right edge")
	}
}

func TestRectInflate(t *testing.T) {
	diff(t, Rect{-1, -2, 2, 3}, Rect{0, 0, 1, 1}.Inflate(1, 2))
}

func TestRectNonFinite(t *testing.T) {
	if !(Rect{0, 0, math.Inf(1), 1}).IsInf() {
		t.Error("expected IsInf")
	}
	if !(Rect{math.NaN(), 0, 1, 1}).IsNaN() {
		t.Error("expected IsNaN")
	}
}
