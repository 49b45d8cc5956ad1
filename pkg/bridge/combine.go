package bridge

import (
	"math"

	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// patternOverlapFraction is the extra clearance (as a fraction of
// spacing) combine-infill's grown intersection gets for patterns whose
// adjacent passes already slightly overlap (rectilinear, honeycomb) or
// for INTERNAL-SOLID regions, per spec.md §4.12.
const patternOverlapFraction = 0.1

// CombineInfill runs stage 4.12 over every region: groups of
// cfg.InfillEveryLayers consecutive layers have their INTERNAL and
// INTERNAL-SOLID fill surfaces intersected, the intersection (grown by a
// clearance margin) is subtracted from every layer in the group, and
// re-added once on the group's uppermost layer with DepthLayers set to
// the group size. A no-op unless infill_every_layers > 1 and
// fill_density > 0.
func CombineInfill(layers []*object.Layer, cfg config.Config, engine geom.Engine) {
	if cfg.InfillEveryLayers <= 1 || cfg.FillDensity <= 0 || len(layers) == 0 {
		return
	}

	every := cfg.InfillEveryLayers
	if cfg.LayerHeight > 0 && cfg.NozzleDiameter > 0 {
		if maxFit := int(math.Floor(cfg.NozzleDiameter / cfg.LayerHeight)); maxFit < every {
			every = maxFit
		}
	}
	if every < 1 {
		every = 1
	}

	regionCount := len(layers[0].Regions)
	for r := 0; r < regionCount; r++ {
		for top := every - 1; top < len(layers); top += every {
			group := layers[top-every+1 : top+1]
			if !groupHasRegion(group, r) {
				continue
			}
			combineGroup(group, r, every, cfg, engine)
		}
	}
}

func groupHasRegion(group []*object.Layer, r int) bool {
	for _, l := range group {
		if l.Regions[r] == nil {
			return false
		}
	}
	return true
}

func combineGroup(group []*object.Layer, r, every int, cfg config.Config, engine geom.Engine) {
	for _, t := range []geom.SurfaceType{geom.SInternal, geom.SInternalSolid} {
		sets := make([][]geom.Expolygon, len(group))
		for i, l := range group {
			sets[i] = expolygonsOf(surfacesOfType(l.Regions[r].FillSurfaces, t))
		}

		intersection := sets[0]
		for i := 1; i < len(sets); i++ {
			if len(intersection) == 0 {
				break
			}
			intersection = engine.IntersectionEx(intersection, sets[i])
		}
		if len(intersection) == 0 {
			continue
		}

		region := group[0].Regions[r]
		threshold := infillAreaThresholdLocal(region)
		intersection = filterSmall(intersection, engine, threshold)
		if len(intersection) == 0 {
			continue
		}

		margin := 0.5*region.InfillFlow.Width*geom.Scale + 0.5*region.PerimeterFlow.Width*geom.Scale
		overlappingPattern := cfg.FillPattern == config.PatternRectilinear || cfg.FillPattern == config.PatternHoneycomb
		if t == geom.SInternalSolid || overlappingPattern {
			margin += patternOverlapFraction * region.InfillFlow.Spacing * geom.Scale
		}
		grown := engine.OffsetEx(intersection, margin)

		for _, l := range group {
			reg := l.Regions[r]
			typed := surfacesOfType(reg.FillSurfaces, t)
			remaining := engine.DiffEx(expolygonsOf(typed), grown)
			reg.FillSurfaces = append(otherTypes(reg.FillSurfaces, t), asType(remaining, t)...)
		}

		topRegion := group[len(group)-1].Regions[r]
		added := asType(intersection, t)
		for i := range added {
			added[i].DepthLayers = every
		}
		topRegion.FillSurfaces = append(topRegion.FillSurfaces, added...)
	}
}

func filterSmall(polys []geom.Expolygon, engine geom.Engine, threshold float64) []geom.Expolygon {
	out := make([]geom.Expolygon, 0, len(polys))
	for _, p := range polys {
		if engine.Area(p) >= threshold {
			out = append(out, p)
		}
	}
	return out
}

func infillAreaThresholdLocal(region *object.LayerRegion) float64 {
	spacing := region.InfillFlow.Spacing * geom.Scale
	return spacing * spacing
}
