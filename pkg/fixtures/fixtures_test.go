package fixtures

import "testing"

func TestCubeBoundingBox(t *testing.T) {
	m := Cube(10)
	if m.FacetCount() == 0 {
		t.Fatal("expected a tessellated cube to have facets")
	}
	min, max := m.BoundingBox()
	const tol = 0.5 // marching-cubes tessellation isn't exact
	if max.X-min.X < 10-tol || max.X-min.X > 10+tol {
		t.Errorf("expected cube X extent near 10, got %v", max.X-min.X)
	}
	if max.Z-min.Z < 10-tol || max.Z-min.Z > 10+tol {
		t.Errorf("expected cube Z extent near 10, got %v", max.Z-min.Z)
	}
}

func TestHemisphereSitsOnPlane(t *testing.T) {
	m := Hemisphere(5)
	if m.FacetCount() == 0 {
		t.Fatal("expected a tessellated hemisphere to have facets")
	}
	min, max := m.BoundingBox()
	if min.Z < -0.5 {
		t.Errorf("expected hemisphere base near z=0, got min.Z=%v", min.Z)
	}
	if max.Z < 3 {
		t.Errorf("expected hemisphere to rise close to its radius, got max.Z=%v", max.Z)
	}
}

func TestThinDiskIsShallow(t *testing.T) {
	m := ThinDisk(5, 0.05)
	min, max := m.BoundingBox()
	if max.Z-min.Z > 0.5 {
		t.Errorf("expected a sub-layer-height disk, got height %v", max.Z-min.Z)
	}
}

func TestHollowSlabHasAirGap(t *testing.T) {
	m := HollowSlabWithAirGap(10, 1, 2)
	if m.FacetCount() == 0 {
		t.Fatal("expected facets for both slabs")
	}
	_, max := m.BoundingBox()
	// lower slab [0,1], gap [1,3], upper slab [3,4]
	if max.Z < 3.5 {
		t.Errorf("expected total height spanning the air gap, got max.Z=%v", max.Z)
	}
}

func TestTShapeOverhangsStem(t *testing.T) {
	m := TShape(5, 5, 15, 2)
	if m.FacetCount() == 0 {
		t.Fatal("expected facets for the T shape")
	}
	min, max := m.BoundingBox()
	if max.X-min.X < 14 {
		t.Errorf("expected the cap to dominate the X extent, got %v", max.X-min.X)
	}
}
