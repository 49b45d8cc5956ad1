package geom

import "testing"

func square(x0, y0, x1, y1 float64) Polygon {
	return Polygon{
		NewPoint(x0, y0),
		NewPoint(x1, y0),
		NewPoint(x1, y1),
		NewPoint(x0, y1),
	}
}

func TestClipperEngineUnionExDisjoint(t *testing.T) {
	e := NewClipperEngine()
	a := Expolygon{Contour: square(0, 0, 10, 10)}
	b := Expolygon{Contour: square(20, 0, 30, 10)}

	got := e.UnionEx([]Expolygon{a, b})
	if len(got) != 2 {
		t.Fatalf("UnionEx disjoint squares: got %d expolygons, want 2", len(got))
	}
}

func TestClipperEngineUnionExOverlapping(t *testing.T) {
	e := NewClipperEngine()
	a := Expolygon{Contour: square(0, 0, 10, 10)}
	b := Expolygon{Contour: square(5, 0, 15, 10)}

	got := e.UnionEx([]Expolygon{a, b})
	if len(got) != 1 {
		t.Fatalf("UnionEx overlapping squares: got %d expolygons, want 1", len(got))
	}
	if area := got[0].AreaMM2(); area < 149 || area > 151 {
		t.Errorf("UnionEx area = %.3f, want ~150", area)
	}
}

func TestClipperEngineDiffEx(t *testing.T) {
	e := NewClipperEngine()
	a := Expolygon{Contour: square(0, 0, 10, 10)}
	b := Expolygon{Contour: square(5, 0, 15, 10)}

	got := e.DiffEx([]Expolygon{a}, []Expolygon{b})
	if len(got) != 1 {
		t.Fatalf("DiffEx: got %d expolygons, want 1", len(got))
	}
	if area := got[0].AreaMM2(); area < 49 || area > 51 {
		t.Errorf("DiffEx area = %.3f, want ~50", area)
	}
}

func TestClipperEngineDiffExEmptyClip(t *testing.T) {
	e := NewClipperEngine()
	a := Expolygon{Contour: square(0, 0, 10, 10)}

	got := e.DiffEx([]Expolygon{a}, nil)
	if len(got) != 1 {
		t.Fatalf("DiffEx with empty clip: got %d expolygons, want 1", len(got))
	}
}

func TestClipperEngineIntersectionEx(t *testing.T) {
	e := NewClipperEngine()
	a := Expolygon{Contour: square(0, 0, 10, 10)}
	b := Expolygon{Contour: square(5, 5, 15, 15)}

	got := e.IntersectionEx([]Expolygon{a}, []Expolygon{b})
	if len(got) != 1 {
		t.Fatalf("IntersectionEx: got %d expolygons, want 1", len(got))
	}
	if area := got[0].AreaMM2(); area < 24 || area > 26 {
		t.Errorf("IntersectionEx area = %.3f, want ~25", area)
	}
}

func TestClipperEngineIntersectionExDisjoint(t *testing.T) {
	e := NewClipperEngine()
	a := Expolygon{Contour: square(0, 0, 10, 10)}
	b := Expolygon{Contour: square(20, 20, 30, 30)}

	got := e.IntersectionEx([]Expolygon{a}, []Expolygon{b})
	if len(got) != 0 {
		t.Fatalf("IntersectionEx disjoint: got %d expolygons, want 0", len(got))
	}
}

func TestClipperEngineOffsetExGrow(t *testing.T) {
	e := NewClipperEngine()
	a := Expolygon{Contour: square(0, 0, 10, 10)}

	got := e.OffsetEx([]Expolygon{a}, 1*Scale)
	if len(got) != 1 {
		t.Fatalf("OffsetEx grow: got %d expolygons, want 1", len(got))
	}
	if area := got[0].AreaMM2(); area < 143 || area > 145 {
		t.Errorf("OffsetEx grow area = %.3f, want ~144", area)
	}
}

func TestClipperEngineOffsetExShrinkToEmpty(t *testing.T) {
	e := NewClipperEngine()
	a := Expolygon{Contour: square(0, 0, 10, 10)}

	got := e.OffsetEx([]Expolygon{a}, -6*Scale)
	if len(got) != 0 {
		t.Fatalf("OffsetEx shrink past center: got %d expolygons, want 0", len(got))
	}
}

func TestClipperEngineWithHole(t *testing.T) {
	e := NewClipperEngine()
	outer := square(0, 0, 10, 10)
	hole := square(3, 3, 7, 7).Reversed()

	a := Expolygon{Contour: outer, Holes: []Polygon{hole}}
	if area := a.AreaMM2(); area < 83 || area > 85 {
		t.Fatalf("expolygon with hole area = %.3f, want ~84", area)
	}

	got := e.UnionEx([]Expolygon{a})
	if len(got) != 1 {
		t.Fatalf("UnionEx passthrough: got %d expolygons, want 1", len(got))
	}
	if len(got[0].Holes) != 1 {
		t.Fatalf("UnionEx passthrough: got %d holes, want 1", len(got[0].Holes))
	}
}

func TestClipperEngineIsPrintable(t *testing.T) {
	e := NewClipperEngine()
	big := Expolygon{Contour: square(0, 0, 10, 10)}
	if !e.IsPrintable(big, 0.4) {
		t.Error("10x10mm square should be printable at 0.4mm extrusion width")
	}

	tiny := Expolygon{Contour: square(0, 0, 0.1, 0.1)}
	if e.IsPrintable(tiny, 0.4) {
		t.Error("0.1x0.1mm square should not be printable at 0.4mm extrusion width")
	}
}

func TestSurfaceIDStable(t *testing.T) {
	s1 := Surface{Expolygon: Expolygon{Contour: square(0, 0, 10, 10)}, Type: STop}
	s2 := Surface{Expolygon: Expolygon{Contour: square(0, 0, 10, 10)}, Type: STop}
	s3 := Surface{Expolygon: Expolygon{Contour: square(0, 0, 10, 10)}, Type: SBottom}

	if s1.ID() != s2.ID() {
		t.Error("identical surfaces should hash identically")
	}
	if s1.ID() == s3.ID() {
		t.Error("surfaces differing only by type should hash differently")
	}
}
