// Package fixtures builds synthetic triangle meshes for exercising the
// layer-analysis pipeline (pkg/pipeline, pkg/surfacetype, pkg/shell,
// pkg/bridge, pkg/support) without needing a real STL loader, which is out
// of this module's scope (spec.md §1). Every fixture is produced from
// pkg/kernel's solid-modeling primitives, tessellated once, and adapted
// into a mesh.TriangleMesh. The backend is the CGo Manifold binding when
// built with -tags=manifold, and the sdfx SDF backend otherwise — the
// same selection the teacher repo's own manifold_stub.go documents.
package fixtures

import (
	"github.com/OhmEye/Slic3r/pkg/kernel"
	"github.com/OhmEye/Slic3r/pkg/kernel/manifold"
	"github.com/OhmEye/Slic3r/pkg/kernel/sdfx"
	"github.com/OhmEye/Slic3r/pkg/mesh"
)

// kernelBackend picks the Manifold kernel when this binary was built with
// -tags=manifold, falling back to the pure-Go sdfx kernel otherwise —
// manifold.New returns an error in the untagged stub build, so this is
// always safe to call.
func kernelBackend() kernel.Kernel {
	if k, err := manifold.New(); err == nil {
		return k
	}
	return sdfx.New()
}

// kernelMesh adapts a *kernel.Mesh (flat vertex/index arrays meant for
// rendering) into mesh.TriangleMesh (the facet-soup shape pkg/mesh's
// slicing stage consumes).
type kernelMesh struct {
	facets []mesh.Facet
	min    mesh.Vec3
	max    mesh.Vec3
}

func (m *kernelMesh) FacetCount() int          { return len(m.facets) }
func (m *kernelMesh) Facet(i int) mesh.Facet   { return m.facets[i] }
func (m *kernelMesh) BoundingBox() (mesh.Vec3, mesh.Vec3) { return m.min, m.max }

func adapt(km *kernel.Mesh) *kernelMesh {
	out := &kernelMesh{facets: make([]mesh.Facet, 0, km.TriangleCount())}
	vertex := func(i uint32) mesh.Vec3 {
		return mesh.Vec3{
			X: float64(km.Vertices[3*i]),
			Y: float64(km.Vertices[3*i+1]),
			Z: float64(km.Vertices[3*i+2]),
		}
	}
	for t := 0; t < km.TriangleCount(); t++ {
		v0 := vertex(km.Indices[3*t])
		v1 := vertex(km.Indices[3*t+1])
		v2 := vertex(km.Indices[3*t+2])
		out.facets = append(out.facets, mesh.Facet{V0: v0, V1: v1, V2: v2})
	}
	if len(out.facets) > 0 {
		out.min, out.max = out.facets[0].V0, out.facets[0].V0
		grow := func(v mesh.Vec3) {
			if v.X < out.min.X {
				out.min.X = v.X
			}
			if v.Y < out.min.Y {
				out.min.Y = v.Y
			}
			if v.Z < out.min.Z {
				out.min.Z = v.Z
			}
			if v.X > out.max.X {
				out.max.X = v.X
			}
			if v.Y > out.max.Y {
				out.max.Y = v.Y
			}
			if v.Z > out.max.Z {
				out.max.Z = v.Z
			}
		}
		for _, f := range out.facets {
			grow(f.V0)
			grow(f.V1)
			grow(f.V2)
		}
	}
	return out
}

func toMesh(k kernel.Kernel, s kernel.Solid) mesh.TriangleMesh {
	km, err := k.ToMesh(s)
	if err != nil {
		panic("fixtures: kernel tessellation failed: " + err.Error())
	}
	return adapt(km)
}

// Cube returns a size×size×size cube mesh with its minimum corner at the
// origin, the baseline fixture every pipeline stage's round-trip test
// checks against (cross-section area ≈ size² at every layer).
func Cube(size float64) mesh.TriangleMesh {
	k := kernelBackend()
	return toMesh(k, k.Box(size, size, size))
}

// Hemisphere returns the upper half of a sphere of the given radius,
// sitting on the XY plane — a fixture whose cross-section area shrinks
// with height, exercising facet slicing against a curved, non-prismatic
// surface and stage 9's overhang-threshold behavior. Sphere isn't part of
// kernel.Kernel (no other backend offers it), so this fixture builds on
// sdfx.New() directly rather than going through kernelBackend, per
// sdfx.SdfxKernel's own doc comment.
func Hemisphere(radius float64) mesh.TriangleMesh {
	k := sdfx.New()
	sphere := k.Sphere(radius)
	cutter := k.Translate(k.Box(radius*4, radius*4, radius*2), -radius*2, -radius*2, 0)
	upper := k.Intersection(sphere, cutter)
	return toMesh(k, upper)
}

// ThinDisk returns a disk thinner than a typical layer height, the
// fixture spec.md §8's empty-bottom-trim scenario needs: a mesh whose
// first few candidate layer planes produce no facet crossings at all.
func ThinDisk(radius, height float64) mesh.TriangleMesh {
	k := kernelBackend()
	return toMesh(k, k.Cylinder(height, radius, 0))
}

// HollowSlabWithAirGap returns two square slabs of the given size and
// height separated by an air gap, the fixture spec.md §8's bridge-over-
// infill and support-material scenarios both need: the upper slab's
// underside is unsupported until support material bridges the gap.
func HollowSlabWithAirGap(size, slabHeight, gap float64) mesh.TriangleMesh {
	k := kernelBackend()
	lower := k.Box(size, size, slabHeight)
	upper := k.Translate(k.Box(size, size, slabHeight), 0, 0, slabHeight+gap)
	return toMesh(k, k.Union(lower, upper))
}

// TShape returns a wide cap sitting on a narrower stem — the classic
// unsupported-overhang fixture, exercising stage 9's overhang-width
// threshold and the sweep's contact/interface/bulk classification.
func TShape(stemSize, stemHeight, capSize, capHeight float64) mesh.TriangleMesh {
	k := kernelBackend()
	stem := k.Box(stemSize, stemSize, stemHeight)
	capOffset := (stemSize - capSize) / 2
	cap := k.Translate(k.Box(capSize, capSize, capHeight), capOffset, capOffset, stemHeight)
	return toMesh(k, k.Union(stem, cap))
}
