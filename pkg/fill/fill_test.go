package fill

import (
	"testing"

	"github.com/OhmEye/Slic3r/pkg/geom"
)

func testSquare() geom.Expolygon {
	return geom.Expolygon{Contour: geom.Polygon{
		geom.NewPoint(0, 0),
		geom.NewPoint(10, 0),
		geom.NewPoint(10, 10),
		geom.NewPoint(0, 10),
	}}
}

func TestRectilinearFillSurface(t *testing.T) {
	f := NewRectilinear()
	_, lines := f.FillSurface(testSquare(), 0.5, 0.4*geom.Scale)
	if len(lines) == 0 {
		t.Fatal("expected non-empty fill for a 10x10mm square at 50% density")
	}
	for _, l := range lines {
		if len(l) != 2 {
			t.Errorf("rectilinear fill line has %d points, want 2", len(l))
		}
	}
}

func TestRectilinearZeroDensity(t *testing.T) {
	f := NewRectilinear()
	_, lines := f.FillSurface(testSquare(), 0, 0.4*geom.Scale)
	if len(lines) != 0 {
		t.Errorf("0%% density should produce no fill lines, got %d", len(lines))
	}
}

func TestGridTwoDirections(t *testing.T) {
	f := NewGrid()
	params, lines := f.FillSurface(testSquare(), 0.3, 0.4*geom.Scale)
	if len(lines) == 0 {
		t.Fatal("expected non-empty grid fill")
	}
	if params.Density != 0.3 {
		t.Errorf("params.Density = %v, want 0.3", params.Density)
	}
}

func TestHoneycombThreeDirections(t *testing.T) {
	f := NewHoneycomb()
	_, lines := f.FillSurface(testSquare(), 0.2, 0.4*geom.Scale)
	if len(lines) == 0 {
		t.Fatal("expected non-empty honeycomb fill")
	}
}

func TestScriptDefaultBehavesLikeRectilinear(t *testing.T) {
	s := NewScript(DefaultScript)
	s.LayerIndex = 3
	s.LayerZ = 0.6
	_, lines := s.FillSurface(testSquare(), 0.5, 0.4*geom.Scale)
	if len(lines) == 0 {
		t.Fatal("expected non-empty fill from the default script")
	}
}

func TestScriptCustomAngle(t *testing.T) {
	s := NewScript(`(list (/ 3.14159265 2) 1.0)`)
	_, lines := s.FillSurface(testSquare(), 0.5, 0.4*geom.Scale)
	if len(lines) == 0 {
		t.Fatal("expected non-empty fill from a custom script")
	}
}

func TestScriptInvalidFallsBackGracefully(t *testing.T) {
	s := NewScript(`(this-is not valid lisp`)
	_, lines := s.FillSurface(testSquare(), 0.5, 0.4*geom.Scale)
	// Even on a script error, FillSurface must not panic; a fallback
	// rectilinear pass still produces lines.
	if len(lines) == 0 {
		t.Fatal("expected fallback fill lines despite the invalid script")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	for _, name := range []string{"rectilinear", "rectilinear-grid", "honeycomb", "script"} {
		f := r.New(name)
		if f == nil {
			t.Errorf("registry produced nil filler for %q", name)
		}
	}
	if f := r.New("nonexistent"); f == nil {
		t.Error("registry should fall back to rectilinear for unknown patterns")
	}
}
