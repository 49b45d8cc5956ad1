package geom

// Engine is the abstract polygon-primitive interface spec.md §6 treats as
// an external collaborator: set algebra and offsetting on expolygons, plus
// the small predicates the pipeline needs (area, printability). Every
// pipeline stage takes an Engine rather than reaching for a global one, so
// concurrent stages can each own a private instance — see spec.md §5 and
// §9's note that the underlying clipper state is not safe to share across
// goroutines.
type Engine interface {
	// UnionEx returns the union of all given expolygon sets as a single
	// non-overlapping expolygon set.
	UnionEx(sets ...[]Expolygon) []Expolygon

	// DiffEx returns subject minus clip.
	DiffEx(subject, clip []Expolygon) []Expolygon

	// IntersectionEx returns the intersection of subject and clip.
	IntersectionEx(subject, clip []Expolygon) []Expolygon

	// OffsetEx grows (delta > 0) or shrinks (delta < 0) every expolygon in
	// polys by delta scaled units, returning a new non-overlapping set.
	OffsetEx(polys []Expolygon, delta float64) []Expolygon

	// Simplify removes vertices that deviate from their neighbors by less
	// than tolerance scaled units, and drops polygons smaller than
	// tolerance² in area (tiny-polygon cleanup, spec.md §1).
	Simplify(polys []Expolygon, tolerance float64) []Expolygon

	// Area returns the net area of an expolygon in scaled units².
	Area(e Expolygon) float64

	// IsPrintable reports whether e's contour admits at least one
	// perimeter pass at the given extrusion width (spec.md §4.7).
	IsPrintable(e Expolygon, extrusionWidth float64) bool
}
