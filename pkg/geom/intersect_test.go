package geom

import "testing"

func TestLineIntersection(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Point
		want           Point
		wantOK         bool
	}{
		{"Perpendicular", Pt(0, 0), Pt(10, 0), Pt(5, -5), Pt(5, 5), Pt(5, 0), true},
		{"Diagonal", Pt(0, 0), Pt(4, 4), Pt(0, 4), Pt(4, 0), Pt(2, 2), true},
		{"OutsideSegments", Pt(0, 0), Pt(1, 0), Pt(10, -1), Pt(10, 1), Pt(10, 0), true},
		{"Parallel", Pt(0, 0), Pt(10, 0), Pt(0, 1), Pt(10, 1), Point{}, false},
		{"Colinear", Pt(0, 0), Pt(5, 5), Pt(1, 1), Pt(9, 9), Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LineIntersection(tt.p1, tt.p2, tt.p3, tt.p4)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !pointApprox(got, tt.want) {
				t.Errorf("point = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentParam(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"Start", Pt(0, 0), 0},
		{"End", Pt(10, 0), 1},
		{"Middle", Pt(5, 0), 0.5},
		{"Before", Pt(-5, 0), -0.5},
		{"After", Pt(20, 0), 2},
		{"OffAxisProjects", Pt(5, 7), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentParam(tt.p, a, b); !approx(got, tt.want) {
				t.Errorf("SegmentParam = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithinSegment(t *testing.T) {
	for _, tt := range []struct {
		t    float64
		want bool
	}{
		{0, true}, {1, true}, {0.5, true},
		{-0.01, true}, {1.01, true},
		{-0.02, false}, {1.02, false},
	} {
		if got := WithinSegment(tt.t); got != tt.want {
			t.Errorf("WithinSegment(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSegmentIntersection(t *testing.T) {
	// Crossing inside both segments.
	if p, ok := SegmentIntersection(Pt(0, 0), Pt(10, 0), Pt(5, -5), Pt(5, 5)); !ok || !pointApprox(p, Pt(5, 0)) {
		t.Errorf("crossing = %v ok=%v", p, ok)
	}
	// Lines cross but outside one segment.
	if _, ok := SegmentIntersection(Pt(0, 0), Pt(1, 0), Pt(5, -1), Pt(5, 1)); ok {
		t.Error("expected no segment intersection past the first segment")
	}
}
