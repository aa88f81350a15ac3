package geom

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func pointApprox(a, b Point) bool { return approx(a.X, b.X) && approx(a.Y, b.Y) }

func TestTranslate(t *testing.T) {
	tr := Translate(3, -2)
	got := tr(Pt(1, 1))
	if !pointApprox(got, Pt(4, -1)) {
		t.Errorf("Translate(3,-2)(1,1) = %v, want (4,-1)", got)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		angle  float64
		in     Point
		want   Point
	}{
		{"QuarterTurnOrigin", Pt(0, 0), math.Pi / 2, Pt(1, 0), Pt(0, 1)},
		{"HalfTurnOrigin", Pt(0, 0), math.Pi, Pt(1, 0), Pt(-1, 0)},
		{"AroundCenter", Pt(2, 2), math.Pi / 2, Pt(3, 2), Pt(2, 3)},
		{"ZeroAngle", Pt(5, 5), 0, Pt(7, 9), Pt(7, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.center, tt.angle)(tt.in)
			if !pointApprox(got, tt.want) {
				t.Errorf("Rotate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	got := Scale(Pt(1, 1), 2)(Pt(2, 3))
	if !pointApprox(got, Pt(3, 5)) {
		t.Errorf("Scale = %v, want (3,5)", got)
	}
}

func TestMirror(t *testing.T) {
	tests := []struct {
		name         string
		axisA, axisB Point
		in           Point
		want         Point
	}{
		{"AcrossXAxis", Pt(0, 0), Pt(1, 0), Pt(2, 3), Pt(2, -3)},
		{"AcrossYAxis", Pt(0, 0), Pt(0, 1), Pt(2, 3), Pt(-2, 3)},
		{"AcrossDiagonal", Pt(0, 0), Pt(1, 1), Pt(1, 0), Pt(0, 1)},
		{"PointOnAxis", Pt(0, 0), Pt(1, 0), Pt(5, 0), Pt(5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mirror(tt.axisA, tt.axisB)(tt.in)
			if !pointApprox(got, tt.want) {
				t.Errorf("Mirror = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMirrorZeroAxisIsIdentity(t *testing.T) {
	m := Mirror(Pt(3, 3), Pt(3, 3))
	in := Pt(-7, 11)
	if got := m(in); !pointApprox(got, in) {
		t.Errorf("zero-length axis mirror moved point: %v", got)
	}
}

func TestMirrorIdempotence(t *testing.T) {
	m := Mirror(Pt(1, -2), Pt(4, 7))
	in := Pt(13, 5)
	if got := m(m(in)); !pointApprox(got, in) {
		t.Errorf("double mirror = %v, want %v", got, in)
	}
}

func TestTransformRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		forward Transform
		inverse Transform
	}{
		{"Translate", Translate(5, -3), Translate(-5, 3)},
		{"Rotate", Rotate(Pt(1, 2), 0.7), Rotate(Pt(1, 2), -0.7)},
		{"Scale", Scale(Pt(-1, 4), 2.5), Scale(Pt(-1, 4), 1/2.5)},
	}
	points := []Point{Pt(0, 0), Pt(1, 0), Pt(-3.5, 12.25), Pt(100, -100)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range points {
				if got := tt.inverse(tt.forward(p)); !pointApprox(got, p) {
					t.Errorf("roundtrip(%v) = %v", p, got)
				}
			}
		})
	}
}

func TestCompose(t *testing.T) {
	tr := Compose(Translate(1, 0), Rotate(Pt(0, 0), math.Pi/2))
	got := tr(Pt(0, 0))
	if !pointApprox(got, Pt(0, 1)) {
		t.Errorf("Compose = %v, want (0,1)", got)
	}
}
