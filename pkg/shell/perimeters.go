// Package shell implements stage 4.8 (extra perimeter hints) and stage 7
// (horizontal shell discovery, spec.md §4.9) of the layer-analysis core.
package shell

import (
	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// Epsilon nudges the outer edge of each annular perimeter band inward by
// a hair, per spec.md §4.8 ("offset −(N−1)·sp − ε"), so the band never
// includes the slice's own boundary when area-testing against the
// neighbor layer's projection. It is the named offset tolerance DESIGN.md's
// open-question notes list for the offset-asymmetry question (alongside
// pkg/surfacetype.Epsilon and pkg/bridge's marginEpsilon); here it stays a
// small, named constant rather than a magic literal.
const Epsilon = 1000 // scaled units

// AdditionalPerimeters is the side table spec.md §9 calls for: the one
// mutable field a Surface would otherwise need (additional_inner_perimeters)
// tracked externally, keyed by the surface's content-addressed identity,
// so Surface itself stays an immutable value (SPEC_FULL.md §3.1).
type AdditionalPerimeters map[geom.SurfaceID]int

// Get returns the recorded extra-perimeter count for s, 0 if unset.
func (a AdditionalPerimeters) Get(s geom.Surface) int {
	return a[s.ID()]
}

func (a AdditionalPerimeters) increment(s geom.Surface) {
	a[s.ID()]++
}

// ExtraPerimeterHints runs stage 4.8 over every region and layer
// (excluding each region's topmost layer), returning the side table of
// additional-inner-perimeter counts. It is a no-op — returning an empty
// table — unless extraPerimeters, perimeters > 0 and fillDensity > 0
// (spec.md §4.8's three gating conditions).
func ExtraPerimeterHints(layers []*object.Layer, cfg config.Config, engine geom.Engine) AdditionalPerimeters {
	hints := make(AdditionalPerimeters)
	if !cfg.ExtraPerimeters || cfg.Perimeters <= 0 || cfg.FillDensity <= 0 {
		return hints
	}

	for i := 0; i < len(layers)-1; i++ {
		l := layers[i]
		upperLayer := layers[i+1]

		for r, region := range l.Regions {
			if region == nil || len(region.Slices) == 0 {
				continue
			}
			if r >= len(upperLayer.Regions) || upperLayer.Regions[r] == nil {
				continue
			}
			upperRegion := upperLayer.Regions[r]
			if len(upperRegion.Slices) == 0 {
				continue
			}

			sp := region.PerimeterFlow.Spacing * geom.Scale
			uSet := expolygonsOf(upperRegion.Slices)

			grown := engine.OffsetEx(uSet, sp)
			shrunk := engine.OffsetEx(uSet, -sp)
			upper := engine.DiffEx(grown, shrunk)
			if len(upper) == 0 {
				continue
			}

			for _, s := range region.Slices {
				countExtraPerimeters(s, upper, sp, cfg.Perimeters, engine, hints)
			}
		}
	}

	return hints
}

func countExtraPerimeters(s geom.Surface, upper []geom.Expolygon, sp float64, perimeters int, engine geom.Engine, hints AdditionalPerimeters) {
	slice := []geom.Expolygon{s.Expolygon}
	n := perimeters + 1

	for {
		outer := engine.OffsetEx(slice, -(float64(n-1)*sp + Epsilon))
		inner := engine.OffsetEx(slice, -float64(n)*sp)
		if len(outer) == 0 || len(inner) == 0 {
			return
		}

		band := engine.DiffEx(outer, inner)
		if len(band) == 0 {
			return
		}

		bandArea := sumArea(band, engine)
		if bandArea <= 0 {
			return
		}

		overlap := engine.IntersectionEx(band, upper)
		overlapArea := sumArea(overlap, engine)

		if overlapArea < 0.2*bandArea {
			return
		}

		hints.increment(s)
		n++
	}
}

func expolygonsOf(surfaces []geom.Surface) []geom.Expolygon {
	out := make([]geom.Expolygon, len(surfaces))
	for i, s := range surfaces {
		out[i] = s.Expolygon
	}
	return out
}

func sumArea(polys []geom.Expolygon, engine geom.Engine) float64 {
	var total float64
	for _, p := range polys {
		total += engine.Area(p)
	}
	return total
}
