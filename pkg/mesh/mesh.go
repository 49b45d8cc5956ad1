// Package mesh defines the triangle-mesh input primitive spec.md §6 treats
// as an external collaborator (meshes[region_id] -> TriangleMesh with
// slice_facet). Mesh loading/STL parsing stays out of scope (spec.md §1);
// this package only defines the interface production callers implement
// and the facet-plane intersection math stage 4.2 needs. pkg/fixtures
// supplies a concrete TriangleMesh for tests, built from the geometry
// kernel kept from the teacher repo.
package mesh

// Vec3 is a 3D point or vector in millimeters.
type Vec3 struct {
	X, Y, Z float64
}

// Facet is one triangle of a TriangleMesh, in mesh-local millimeter space.
type Facet struct {
	V0, V1, V2 Vec3
}

// ZRange returns the facet's minimum and maximum Z coordinate.
func (f Facet) ZRange() (min, max float64) {
	min, max = f.V0.Z, f.V0.Z
	for _, v := range []float64{f.V1.Z, f.V2.Z} {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// TriangleMesh is the external mesh collaborator's interface: an indexed
// triangle soup plus the bounding box the layer-construction stage needs.
type TriangleMesh interface {
	FacetCount() int
	Facet(i int) Facet
	BoundingBox() (min, max Vec3)
}

// Segment is a 2D line segment produced by intersecting one facet with one
// horizontal layer plane, in mesh-local millimeter space (X, Y only — Z is
// implied by the layer). Per spec.md §4.2, a facet that only touches the
// plane along an edge shared with a non-horizontal neighbor still yields a
// single segment; the pipeline tolerates, rather than filters, that case.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// FacetMesh is a plain in-memory TriangleMesh, the concrete type
// pkg/fixtures builds from synthetic kernel.Mesh output.
type FacetMesh struct {
	facets []Facet
}

// NewFacetMesh wraps a flat facet slice as a TriangleMesh.
func NewFacetMesh(facets []Facet) *FacetMesh {
	return &FacetMesh{facets: facets}
}

func (m *FacetMesh) FacetCount() int { return len(m.facets) }
func (m *FacetMesh) Facet(i int) Facet { return m.facets[i] }

// BoundingBox implements TriangleMesh.
func (m *FacetMesh) BoundingBox() (min, max Vec3) {
	if len(m.facets) == 0 {
		return Vec3{}, Vec3{}
	}
	min = m.facets[0].V0
	max = m.facets[0].V0
	grow := func(v Vec3) {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	for _, f := range m.facets {
		grow(f.V0)
		grow(f.V1)
		grow(f.V2)
	}
	return min, max
}
