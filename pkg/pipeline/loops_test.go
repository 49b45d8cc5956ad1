package pipeline

import (
	"testing"

	"github.com/OhmEye/Slic3r/pkg/mesh"
)

func seg(x0, y0, x1, y1 float64) mesh.Segment {
	return mesh.Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func TestBuildLoopsSingleSquare(t *testing.T) {
	segs := []mesh.Segment{
		seg(0, 0, 10, 0),
		seg(10, 0, 10, 10),
		seg(10, 10, 0, 10),
		seg(0, 10, 0, 0),
	}
	loops, clean := buildLoops(segs)
	if !clean {
		t.Fatal("expected a clean reconstruction")
	}
	if len(loops) != 1 || len(loops[0]) != 4 {
		t.Fatalf("loops = %v, want one 4-point loop", loops)
	}
}

func TestBuildLoopsTopologicalFailure(t *testing.T) {
	// A dangling segment with no matching neighbor at one end.
	segs := []mesh.Segment{
		seg(0, 0, 10, 0),
		seg(10, 0, 10, 10),
	}
	_, clean := buildLoops(segs)
	if clean {
		t.Fatal("expected buildLoops to report a topological failure")
	}
}

func TestSurfacesFromLoopsOuterAndHole(t *testing.T) {
	outer := []mesh.Segment{
		seg(0, 0, 20, 0),
		seg(20, 0, 20, 20),
		seg(20, 20, 0, 20),
		seg(0, 20, 0, 0),
	}
	hole := []mesh.Segment{
		seg(5, 5, 15, 5),
		seg(15, 5, 15, 15),
		seg(15, 15, 5, 15),
		seg(5, 15, 5, 5),
	}
	all := append(append([]mesh.Segment{}, outer...), hole...)

	loops, clean := buildLoops(all)
	if !clean || len(loops) != 2 {
		t.Fatalf("expected 2 clean loops, got %d (clean=%v)", len(loops), clean)
	}

	surfaces := surfacesFromLoops(loops)
	if len(surfaces) != 1 {
		t.Fatalf("expected the hole to nest inside the outer contour as one surface, got %d", len(surfaces))
	}
	if len(surfaces[0].Expolygon.Holes) != 1 {
		t.Fatalf("expected exactly one hole, got %d", len(surfaces[0].Expolygon.Holes))
	}
}
