// Package kernel defines the abstract geometry kernel interface pkg/fixtures
// builds its synthetic test solids against. Implementations (sdfx, manifold)
// provide solid modeling and boolean operations behind this interface, so
// fixtures.kernelBackend can select between a CGo-backed tessellator and a
// pure-Go one without pkg/fixtures itself caring which produced a given
// mesh.TriangleMesh.
package kernel

// Solid is an opaque handle to a geometry kernel solid. Implementations
// wrap their internal representation; nothing outside a Kernel's own
// package should need to look inside one.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. Implementations
// (sdfx, manifold) provide solid modeling behind this interface; every
// fixture in pkg/fixtures is built from nothing but these primitives and
// booleans, then tessellated once via ToMesh.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
