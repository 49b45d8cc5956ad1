// Package support implements stage 9 of the layer-analysis core (spec.md
// §4.13): the top-down support-material sweep producing per-layer
// contact, interface, and bulk regions, followed by pattern generation
// and per-layer path emission.
package support

import (
	"math"

	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/flow"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// OverhangWidth returns the scaled lateral reach an overhang must extend
// before it needs support, per spec.md §4.13: derived from the print's
// layer height and the configured threshold angle (plus one degree of
// margin), or a region's own default when no threshold is configured.
func OverhangWidth(cfg config.Config, regionDefault float64) float64 {
	if cfg.SupportMaterialThreshold <= 0 {
		return regionDefault
	}
	theta := (cfg.SupportMaterialThreshold + 1) * math.Pi / 180
	return cfg.LayerHeight * math.Cos(theta) / math.Sin(theta) * geom.Scale
}

// Sweep runs the top-down pass of stage 9. supportFlow is the flow the
// support structure itself is extruded at (spec.md §4.13's
// distance_from_object = 1.5·flow_width); regionDefaultOverhangWidth
// feeds OverhangWidth when no explicit threshold is set. It writes
// SupportRegions, Interfaces, and ContactAreas directly onto each Layer
// and reports whether any support was found at all.
func Sweep(layers []*object.Layer, cfg config.Config, supportFlow flow.Flow, regionDefaultOverhangWidth float64, engine geom.Engine) bool {
	if len(layers) == 0 {
		return false
	}

	overhangWidth := OverhangWidth(cfg, regionDefaultOverhangWidth)
	distanceFromObject := 1.5 * supportFlow.Width * geom.Scale
	flowSpacing := supportFlow.Spacing * geom.Scale

	windowLen := cfg.SupportMaterialInterfaceLayers + 1
	if windowLen < 1 {
		windowLen = 1
	}
	window := make([][]geom.Expolygon, windowLen)

	var currentSupport []geom.Expolygon
	anyContent := false

	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]
		withinBand := i < cfg.RaftLayers || i < cfg.SupportMaterialEnforceLayers
		if !cfg.SupportMaterial && !withinBand {
			continue
		}

		off := engine.OffsetEx(layer.Slices, distanceFromObject)

		last := window[len(window)-1]
		contact := engine.DiffEx(last, off)
		contact = engine.Simplify(contact, flowSpacing)

		unionPrefix := engine.UnionEx(window[:len(window)-1]...)
		interfaceSet := engine.DiffEx(unionPrefix, engine.UnionEx(off, contact))

		currentSupport = engine.DiffEx(engine.UnionEx(currentSupport, last), layer.Slices)
		supportRegions := engine.DiffEx(currentSupport, engine.UnionEx(off, interfaceSet))

		layer.ContactAreas = contact
		layer.Interfaces = interfaceSet
		layer.SupportRegions = supportRegions

		if len(contact) > 0 || len(interfaceSet) > 0 || len(supportRegions) > 0 {
			anyContent = true
		}

		var lowerSlices []geom.Expolygon
		if i > 0 {
			lowerSlices = layers[i-1].Slices
		}
		d := overhangWidth
		if i < cfg.SupportMaterialEnforceLayers {
			d = 0
		}
		overhang := engine.DiffEx(engine.OffsetEx(layer.Slices, -d), lowerSlices)
		overhang = engine.OffsetEx(overhang, 2*d)

		window = append(window[1:], overhang)
	}

	return anyContent
}
