package support

import (
	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/flow"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// Build runs all of stage 9 over obj: the top-down region sweep followed
// by pattern generation, using supportFlow for the bulk/interface
// extrusions and firstLayerFlow for layer 0's solid base. regionDefaultOverhangWidth
// is the fallback OverhangWidth.Sweep uses when no support threshold angle
// is configured. Reports whether any support material was produced.
func Build(obj *object.PrintObject, cfg config.Config, supportFlow, firstLayerFlow flow.Flow, regionDefaultOverhangWidth float64, engine geom.Engine) bool {
	if !cfg.SupportMaterial && cfg.SupportMaterialEnforceLayers == 0 && cfg.RaftLayers == 0 {
		return false
	}
	if !Sweep(obj.Layers, cfg, supportFlow, regionDefaultOverhangWidth, engine) {
		return false
	}
	registry := cfg.NewFillerRegistry()
	GeneratePaths(obj.Layers, cfg, supportFlow, firstLayerFlow, registry, engine)
	return true
}
