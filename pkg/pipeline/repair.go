package pipeline

import (
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// RepairSlices runs stage 4 (spec.md §4.5) over every layer flagged with
// SlicingErrors: it rebuilds each region's slices from the nearest
// upper and lower layers that reconstructed cleanly, then recomputes the
// layer's whole-layer union. It returns whether any layer was repaired,
// so the caller can surface spec.md §7's one-time repair warning.
func RepairSlices(layers []*object.Layer, engine geom.Engine) bool {
	repaired := false

	for i, l := range layers {
		if !l.SlicingErrors {
			continue
		}
		upper := nearestClean(layers, i, +1)
		lower := nearestClean(layers, i, -1)
		if upper < 0 && lower < 0 {
			continue
		}
		repaired = true

		for r := range l.Regions {
			if l.Regions[r] == nil {
				continue
			}
			var contours, holePolys []geom.Expolygon
			collect := func(idx int) {
				if idx < 0 || layers[idx].Regions[r] == nil {
					return
				}
				for _, s := range layers[idx].Regions[r].Slices {
					contours = append(contours, geom.Expolygon{Contour: s.Expolygon.Contour})
					for _, h := range s.Expolygon.Holes {
						holePolys = append(holePolys, geom.Expolygon{Contour: h})
					}
				}
			}
			collect(upper)
			collect(lower)

			u := engine.UnionEx(contours)
			hset := engine.UnionEx(holePolys)
			rebuilt := engine.DiffEx(u, hset)

			slices := make([]geom.Surface, len(rebuilt))
			for j, e := range rebuilt {
				slices[j] = geom.Surface{Expolygon: e, Type: geom.SInternal}
			}
			l.Regions[r].Slices = slices
		}

		MakeSlices(l, engine)
	}

	return repaired
}

// nearestClean searches outward from i in direction dir (+1 upward, -1
// downward) for the nearest layer without SlicingErrors, returning -1 if
// none exists.
func nearestClean(layers []*object.Layer, i, dir int) int {
	for j := i + dir; j >= 0 && j < len(layers); j += dir {
		if !layers[j].SlicingErrors {
			return j
		}
	}
	return -1
}
