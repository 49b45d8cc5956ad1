// Package bridge implements stage 8 of the layer-analysis core (spec.md
// §4.10–§4.12): bridge-over-infill detection, clipping fill surfaces to
// where they're structurally needed, and combining infill across
// multiple layers.
package bridge

import (
	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// DetectBridges runs stage 4.10: for every layer i ≥ 1 and every region,
// any INTERNAL-SOLID surface sitting directly over INTERNAL (sparse)
// infill on layer i-1 of any region becomes INTERNAL-BRIDGE instead.
// Infill directly beneath the bridge is then cleared for as many layers
// as the bridge's excess flow height demands.
func DetectBridges(layers []*object.Layer, engine geom.Engine) {
	for i := 1; i < len(layers); i++ {
		layer := layers[i]
		lowerLayer := layers[i-1]

		lowerInternal := unionInternalAcrossRegions(lowerLayer, engine)
		if len(lowerInternal) == 0 {
			continue
		}

		for _, region := range layer.Regions {
			if region == nil {
				continue
			}
			solid := surfacesOfType(region.FillSurfaces, geom.SInternalSolid)
			if len(solid) == 0 {
				continue
			}
			solidPolys := expolygonsOf(solid)
			toBridge := engine.IntersectionEx(solidPolys, lowerInternal)
			if len(toBridge) == 0 {
				continue
			}

			remaining := engine.DiffEx(solidPolys, toBridge)
			rebuilt := otherTypes(region.FillSurfaces, geom.SInternalSolid)
			rebuilt = append(rebuilt, asType(remaining, geom.SInternalSolid)...)
			rebuilt = append(rebuilt, asType(toBridge, geom.SInternalBridge)...)
			region.FillSurfaces = rebuilt

			clearBeneathBridge(layers, i, toBridge, region, engine)
		}
	}
}

// clearBeneathBridge implements spec.md §4.10's second paragraph: subtract
// the newly bridged area from every surface of every region on as many
// layers below i as the bridge flow's excess height covers.
func clearBeneathBridge(layers []*object.Layer, i int, toBridge []geom.Expolygon, region *object.LayerRegion, engine geom.Engine) {
	// spec.md's "bridge_flow_width − layer_height": this package carries
	// no dedicated bridge-mode flow (pkg/flow's Flow has no Bridge
	// variant; spec.md never defines how bridge_flow_width is derived
	// from a region's ordinary flows), so the region's infill width
	// stands in for it, against the perimeter flow's nominal height.
	excess := region.InfillFlow.Width - region.PerimeterFlow.Height

	for k := i - 1; k >= 0; k-- {
		below := layers[k]
		h := below.Height
		if h <= 0 || excess < h {
			break
		}
		for _, br := range below.Regions {
			if br == nil {
				continue
			}
			br.FillSurfaces = subtractFromAll(br.FillSurfaces, toBridge, engine)
		}
		excess -= h
	}
}

func subtractFromAll(surfaces []geom.Surface, clip []geom.Expolygon, engine geom.Engine) []geom.Surface {
	out := make([]geom.Surface, 0, len(surfaces))
	for _, t := range []geom.SurfaceType{geom.STop, geom.SBottom, geom.SInternal, geom.SInternalSolid, geom.SInternalBridge} {
		group := surfacesOfType(surfaces, t)
		if len(group) == 0 {
			continue
		}
		remaining := engine.DiffEx(expolygonsOf(group), clip)
		out = append(out, asType(remaining, t)...)
	}
	return out
}

func unionInternalAcrossRegions(l *object.Layer, engine geom.Engine) []geom.Expolygon {
	var sets [][]geom.Expolygon
	for _, r := range l.Regions {
		if r == nil {
			continue
		}
		internal := surfacesOfType(r.FillSurfaces, geom.SInternal)
		if len(internal) > 0 {
			sets = append(sets, expolygonsOf(internal))
		}
	}
	if len(sets) == 0 {
		return nil
	}
	return engine.UnionEx(sets...)
}

func surfacesOfType(surfaces []geom.Surface, t geom.SurfaceType) []geom.Surface {
	var out []geom.Surface
	for _, s := range surfaces {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

func otherTypes(surfaces []geom.Surface, exclude geom.SurfaceType) []geom.Surface {
	out := make([]geom.Surface, 0, len(surfaces))
	for _, s := range surfaces {
		if s.Type != exclude {
			out = append(out, s)
		}
	}
	return out
}

func expolygonsOf(surfaces []geom.Surface) []geom.Expolygon {
	out := make([]geom.Expolygon, len(surfaces))
	for i, s := range surfaces {
		out[i] = s.Expolygon
	}
	return out
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

// marginEpsilon is the small additional growth spec.md §4.11 applies to
// the overhang accumulator each layer, keeping the reach from being
// clipped to exactly the offset boundary by the polygon engine's own
// tolerance — the same named-epsilon approach as pkg/shell.Epsilon.
const marginEpsilon = 1000 // scaled units

// ClipFillWhereNeeded runs stage 4.11: sweeping top-down, clips each
// region's INTERNAL fill surfaces to the accumulated overhang reach,
// only when cfg.InfillOnlyWhereNeeded is set.
func ClipFillWhereNeeded(layers []*object.Layer, cfg config.Config, engine geom.Engine) {
	if !cfg.InfillOnlyWhereNeeded {
		return
	}

	var overhangs []geom.Expolygon
	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]

		for _, region := range layer.Regions {
			if region == nil {
				continue
			}
			internal := surfacesOfType(region.FillSurfaces, geom.SInternal)
			if len(internal) == 0 {
				continue
			}
			clipped := engine.IntersectionEx(expolygonsOf(internal), overhangs)
			rebuilt := otherTypes(region.FillSurfaces, geom.SInternal)
			rebuilt = append(rebuilt, asType(clipped, geom.SInternal)...)
			region.FillSurfaces = rebuilt
		}

		if i == 0 {
			break
		}
		lower := layers[i-1]
		var extendSets [][]geom.Expolygon
		for _, region := range layer.Regions {
			if region == nil {
				continue
			}
			nonInternal := make([]geom.Surface, 0, len(region.FillSurfaces))
			for _, s := range region.FillSurfaces {
				if s.Type != geom.SInternal {
					nonInternal = append(nonInternal, s)
				}
			}
			if len(nonInternal) == 0 {
				continue
			}
			shrunkLower := engine.OffsetEx(lower.Slices, -region.OverhangWidth)
			extension := engine.IntersectionEx(expolygonsOf(nonInternal), shrunkLower)
			if len(extension) > 0 {
				extendSets = append(extendSets, extension)
			}
		}
		if len(extendSets) > 0 {
			grown := engine.OffsetEx(engine.UnionEx(extendSets...), marginEpsilon)
			overhangs = engine.UnionEx(overhangs, grown)
		}
	}
}
