package cli

import (
	"math"
	"testing"

	"github.com/draftwise/draftcore/pkg/geom"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input   string
		want    geom.Point
		wantErr bool
	}{
		{"100,200", geom.Point{X: 100, Y: 200}, false},
		{"-50.5, 75.25", geom.Point{X: -50.5, Y: 75.25}, false},
		{"0,0", geom.Point{}, false},
		{"100", geom.Point{}, true},
		{"a,b", geom.Point{}, true},
		{"1,2,3", geom.Point{}, true},
		{"", geom.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsePoint(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAxis(t *testing.T) {
	a, b, err := parseAxis("0,0,100,0")
	if err != nil {
		t.Fatalf("parseAxis failed: %v", err)
	}
	if a != (geom.Point{}) || b != (geom.Point{X: 100}) {
		t.Errorf("axis = %v → %v", a, b)
	}

	if _, _, err := parseAxis("0,0,0,0"); err == nil {
		t.Error("coincident axis points should be rejected")
	}
	if _, _, err := parseAxis("0,0,100"); err == nil {
		t.Error("short axis should be rejected")
	}
}

func TestParseIDs(t *testing.T) {
	ids := parseIDs("a, b,,c")
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("parseIDs = %v", ids)
	}
	if parseIDs("") != nil {
		t.Error("empty input should yield nil")
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("default formats = %v", got)
	}
	if got := parseFormats("png,pdf"); len(got) != 2 || got[0] != "png" || got[1] != "pdf" {
		t.Errorf("formats = %v", got)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "plan.json", "plan"},
		{"strip format ext", "out.svg", "plan.json", "out"},
		{"keep other ext", "out.backup", "plan.json", "out.backup"},
		{"plain base", "renders/plan", "plan.json", "renders/plan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildTransform(t *testing.T) {
	opts := &transformOpts{translate: "10,-5"}
	tr, err := buildTransform(opts)
	if err != nil {
		t.Fatalf("buildTransform failed: %v", err)
	}
	got := tr(geom.Point{X: 1, Y: 2})
	if got != (geom.Point{X: 11, Y: -3}) {
		t.Errorf("translate = %v", got)
	}
}

func TestBuildTransformRotateDegrees(t *testing.T) {
	opts := &transformOpts{rotate: 90, about: "0,0"}
	tr, err := buildTransform(opts)
	if err != nil {
		t.Fatalf("buildTransform failed: %v", err)
	}
	got := tr(geom.Point{X: 100, Y: 0})
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-100) > 1e-9 {
		t.Errorf("rotate 90° of (100,0) = %v, want (0,100)", got)
	}
}

func TestBuildTransformRequiresExactlyOne(t *testing.T) {
	if _, err := buildTransform(&transformOpts{}); err == nil {
		t.Error("empty flag set should be rejected")
	}
	if _, err := buildTransform(&transformOpts{translate: "1,1", scale: 2, origin: "0,0"}); err == nil {
		t.Error("two transforms should be rejected")
	}
	if _, err := buildTransform(&transformOpts{scale: -1, origin: "0,0"}); err == nil {
		t.Error("negative scale should be rejected")
	}
}
