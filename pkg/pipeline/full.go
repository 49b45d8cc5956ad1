package pipeline

import (
	"log"

	"github.com/OhmEye/Slic3r/pkg/bridge"
	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/flow"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
	"github.com/OhmEye/Slic3r/pkg/shell"
	"github.com/OhmEye/Slic3r/pkg/support"
	"github.com/OhmEye/Slic3r/pkg/surfacetype"
)

// Run chains every stage of the layer-analysis core end to end: BuildLayers
// (stages 1–5) followed by surface typing (stage 6), shell discovery and
// extra-perimeter hinting (stages 4.8–4.9), bridge detection and infill
// clipping/combination (stages 4.10–4.12), and the support-material sweep
// (stage 9). It's the entry point an external caller (slicing front end,
// test harness) reaches for instead of calling each stage package directly.
func Run(cfg config.Config, regions []RegionInput, objectHeight float64, supportFlow, firstLayerFlow flow.Flow, regionDefaultOverhangWidth float64, engine geom.Engine) (*object.PrintObject, shell.AdditionalPerimeters, error) {
	obj, err := BuildLayers(cfg, regions, objectHeight, engine)
	if err != nil {
		return nil, nil, err
	}
	if len(obj.Layers) == 0 {
		return obj, nil, nil
	}

	surfacetype.Classify(obj.Layers, engine)
	if cfg.Verbose {
		log.Printf("slice: stage surface-typing: done")
	}

	hints := shell.ExtraPerimeterHints(obj.Layers, cfg, engine)
	shell.DiscoverShells(obj.Layers, cfg, engine)
	if cfg.Verbose {
		log.Printf("slice: stage shell-discovery: done")
	}

	bridge.DetectBridges(obj.Layers, engine)
	bridge.ClipFillWhereNeeded(obj.Layers, cfg, engine)
	bridge.CombineInfill(obj.Layers, cfg, engine)
	if cfg.Verbose {
		log.Printf("slice: stage bridge/infill: done")
	}

	if support.Build(obj, cfg, supportFlow, firstLayerFlow, regionDefaultOverhangWidth, engine) {
		obj.Warn(cfg.Verbose, "support material generated")
	}

	return obj, hints, nil
}
