// Package surfacetype implements stage 6 of the layer-analysis core
// (spec.md §4.7): classifying each region's slices as top/bottom/internal
// by comparing against the whole-layer unions above and below, membrane
// correction, and the first population of fill_surfaces.
package surfacetype

import (
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// Epsilon is a small positive tolerance for the printability predicate
// against integer-scaled coordinates, kept as a named constant rather than
// a magic number inline. Classify's printability filter (printableOnly)
// does not apply it: the predicate is engine.IsPrintable's half-width
// inward offset alone.
const Epsilon = 1000 // scaled units, 0.001mm at geom.Scale

// Classify runs stage 6 over every region of every layer, then populates
// each region's fill_surfaces with a copy of its typed slices: every typed
// surface serves as its own fill boundary (see fillSurfacesFor), since no
// separate perimeter-derived boundary exists yet.
func Classify(layers []*object.Layer, engine geom.Engine) {
	for i, l := range layers {
		var upper, lower []geom.Expolygon
		if i+1 < len(layers) {
			upper = layers[i+1].Slices
		}
		if i > 0 {
			lower = layers[i-1].Slices
		}

		for _, r := range l.Regions {
			if r == nil || len(r.Slices) == 0 {
				continue
			}
			r.Slices = classifyRegion(r, upper, lower, engine)
			r.FillSurfaces = fillSurfacesFor(r.Slices)
		}
	}
}

func expolygons(surfaces []geom.Surface) []geom.Expolygon {
	out := make([]geom.Expolygon, len(surfaces))
	for i, s := range surfaces {
		out[i] = s.Expolygon
	}
	return out
}

func asTyped(polys []geom.Expolygon, t geom.SurfaceType) []geom.Surface {
	out := make([]geom.Surface, 0, len(polys))
	for _, p := range polys {
		if p.Empty() {
			continue
		}
		out = append(out, geom.Surface{Expolygon: p, Type: t})
	}
	return out
}

// classifyRegion partitions one region's current slices into
// BOTTOM, TOP, INTERNAL, applying membrane correction and a printability
// filter, per spec.md §4.7.
func classifyRegion(r *object.LayerRegion, upper, lower []geom.Expolygon, engine geom.Engine) []geom.Surface {
	s := expolygons(r.Slices)

	var top, bottom []geom.Expolygon
	if len(upper) == 0 {
		top = s
	} else {
		top = engine.DiffEx(s, upper)
	}
	if len(lower) == 0 {
		bottom = s
	} else {
		bottom = engine.DiffEx(s, lower)
	}

	if len(top) > 0 && len(bottom) > 0 {
		overlap := engine.IntersectionEx(top, bottom)
		if len(overlap) > 0 {
			// Membrane correction: assign the overlap to BOTTOM, keep it
			// out of TOP so bridges may still be detected from below.
			bottom = engine.UnionEx(bottom, overlap)
			top = engine.DiffEx(top, overlap)
		}
	}

	nonInternal := engine.UnionEx(top, bottom)
	internal := engine.DiffEx(s, nonInternal)

	top = printableOnly(top, engine, r.PerimeterFlow.Width)
	bottom = printableOnly(bottom, engine, r.PerimeterFlow.Width)
	internal = printableOnly(internal, engine, r.PerimeterFlow.Width)

	out := make([]geom.Surface, 0, len(top)+len(bottom)+len(internal))
	out = append(out, asTyped(bottom, geom.SBottom)...)
	out = append(out, asTyped(top, geom.STop)...)
	out = append(out, asTyped(internal, geom.SInternal)...)
	return out
}

func printableOnly(polys []geom.Expolygon, engine geom.Engine, extrusionWidth float64) []geom.Expolygon {
	out := make([]geom.Expolygon, 0, len(polys))
	for _, p := range polys {
		if engine.IsPrintable(p, extrusionWidth) {
			out = append(out, p)
		}
	}
	return out
}

// fillSurfacesFor builds the region's initial fill_surfaces by using each
// typed slice as its own fill boundary (spec.md §4.7's closing step,
// "intersecting each typed surface with the region's pre-existing fill
// boundaries" — with none yet defined beyond the slice itself, the
// boundary is the identity).
func fillSurfacesFor(slices []geom.Surface) []geom.Surface {
	out := make([]geom.Surface, len(slices))
	copy(out, slices)
	return out
}
