package shell

import (
	"github.com/samber/lo"

	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// DiscoverShells runs stage 7 (spec.md §4.9) over every region: periodic
// full-solid layers, then a TOP-seeded downward sweep and a
// BOTTOM-seeded upward sweep converting INTERNAL fill surfaces within
// solid_layers-1 neighbors to INTERNAL-SOLID, then an area-threshold
// cleanup pass.
func DiscoverShells(layers []*object.Layer, cfg config.Config, engine geom.Engine) {
	if len(layers) == 0 {
		return
	}
	regionCount := len(layers[0].Regions)

	for r := 0; r < regionCount; r++ {
		if cfg.SolidInfillEveryLayers > 0 {
			for i, l := range layers {
				region := l.Regions[r]
				if region == nil || i%cfg.SolidInfillEveryLayers != 0 {
					continue
				}
				region.FillSurfaces = retypeAll(region.FillSurfaces, geom.SInternal, geom.SInternalSolid)
			}
		}

		for i, l := range layers {
			if l.Regions[r] == nil {
				continue
			}
			seedSweep(layers, r, i, geom.STop, cfg.TopSolidLayers, -1, engine)
			seedSweep(layers, r, i, geom.SBottom, cfg.BottomSolidLayers, +1, engine)
		}

		for _, l := range layers {
			region := l.Regions[r]
			if region == nil {
				continue
			}
			threshold := infillAreaThreshold(region)
			region.FillSurfaces = filterByArea(region.FillSurfaces, engine, threshold)
			if cfg.FillDensity == 0 {
				region.FillSurfaces = dropType(region.FillSurfaces, geom.SInternal)
			}
		}
	}
}

// seedSweep propagates surfaces of seedType seen in layer i's slices into
// up to solidLayers-1 neighboring layers in direction dir (+1 upward,
// -1 downward), converting INTERNAL to INTERNAL-SOLID where the seed
// projects onto them, per spec.md §4.9.
func seedSweep(layers []*object.Layer, r, i int, seedType geom.SurfaceType, solidLayers, dir int, engine geom.Engine) {
	if solidLayers <= 1 {
		return
	}
	seed := surfacesOfType(layers[i].Regions[r].Slices, seedType)
	if len(seed) == 0 {
		return
	}
	sp := expolygonsOf(seed)

	for n := 0; n < solidLayers-1; n++ {
		j := i + dir*(n+1)
		if j < 0 || j >= len(layers) {
			return
		}
		neighbor := layers[j].Regions[r]
		if neighbor == nil {
			return
		}
		N := neighbor.FillSurfaces

		internalN := expolygonsOf(surfacesOfType(N, geom.SInternal))
		internalSolidN := expolygonsOf(surfacesOfType(N, geom.SInternalSolid))

		candidate := engine.UnionEx(internalN, internalSolidN)
		newSolid := engine.IntersectionEx(sp, candidate)
		if len(newSolid) == 0 {
			return
		}

		combinedSolid := engine.UnionEx(internalSolidN, newSolid)
		newInternal := engine.DiffEx(internalN, combinedSolid)
		subtract := engine.UnionEx(combinedSolid, newInternal)

		topN := engine.DiffEx(expolygonsOf(surfacesOfType(N, geom.STop)), subtract)
		bottomN := engine.DiffEx(expolygonsOf(surfacesOfType(N, geom.SBottom)), subtract)
		bridgeN := surfacesOfType(N, geom.SInternalBridge)

		rebuilt := make([]geom.Surface, 0, len(N))
		rebuilt = append(rebuilt, asType(bottomN, geom.SBottom)...)
		rebuilt = append(rebuilt, asType(topN, geom.STop)...)
		rebuilt = append(rebuilt, asType(newInternal, geom.SInternal)...)
		rebuilt = append(rebuilt, asType(combinedSolid, geom.SInternalSolid)...)
		rebuilt = append(rebuilt, bridgeN...)
		neighbor.FillSurfaces = rebuilt
	}
}

func retypeAll(surfaces []geom.Surface, from, to geom.SurfaceType) []geom.Surface {
	out := make([]geom.Surface, len(surfaces))
	for i, s := range surfaces {
		if s.Type == from {
			s.Type = to
		}
		out[i] = s
	}
	return out
}

func surfacesOfType(surfaces []geom.Surface, t geom.SurfaceType) []geom.Surface {
	return lo.Filter(surfaces, func(s geom.Surface, _ int) bool { return s.Type == t })
}

func asType(polys []geom.Expolygon, t geom.SurfaceType) []geom.Surface {
	out := make([]geom.Surface, 0, len(polys))
	for _, p := range polys {
		if p.Empty() {
			continue
		}
		out = append(out, geom.Surface{Expolygon: p, Type: t})
	}
	return out
}

func dropType(surfaces []geom.Surface, t geom.SurfaceType) []geom.Surface {
	return lo.Filter(surfaces, func(s geom.Surface, _ int) bool { return s.Type != t })
}

func filterByArea(surfaces []geom.Surface, engine geom.Engine, threshold float64) []geom.Surface {
	return lo.Filter(surfaces, func(s geom.Surface, _ int) bool { return engine.Area(s.Expolygon) >= threshold })
}

// infillAreaThreshold drops fill surfaces smaller than one infill line's
// footprint — too small for the chosen pattern to usefully fill.
func infillAreaThreshold(region *object.LayerRegion) float64 {
	spacing := region.InfillFlow.Spacing * geom.Scale
	return spacing * spacing
}
