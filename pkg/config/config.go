// Package config defines the immutable configuration value threaded
// through every pipeline stage. Per spec.md §9 Design Notes, configuration
// is never package-level mutable state; every stage function takes a
// Config argument (or a pointer to one it only reads), resolved once at
// the top of the pipeline call, matching spec.md §7's
// "ConfigOutOfRange: ... the core may assume valid inputs" — validation of
// raw user input is an external collaborator's job, not this package's.
package config

import "github.com/OhmEye/Slic3r/pkg/fill"

// FillPattern names one of the supported infill/support fill patterns.
type FillPattern string

const (
	PatternRectilinear     FillPattern = "rectilinear"
	PatternRectilinearGrid FillPattern = "rectilinear-grid"
	PatternHoneycomb       FillPattern = "honeycomb"
	PatternScript          FillPattern = "script"
)

// Config enumerates every field spec.md §6 lists, with the effect each one
// has on the pipeline.
type Config struct {
	// Layering
	LayerHeight     float64 // mm, stage 4.1
	FirstLayerHeight float64 // mm; 0 means use LayerHeight
	RaftLayers      int     // stage 4.6 empty-prefix trim start index

	// Perimeters
	Perimeters      int  // stage 4.7 printability + stage 4.8 extra perimeters
	ExtraPerimeters bool // gates stage 4.8

	// Infill
	FillDensity          float64     // 0..1; gates stages 4.8, 4.9, 4.12
	FillPattern          FillPattern // infill pattern; stage 4.12 reads it for its clearance margin (support uses SupportMaterialPattern)
	SolidInfillEveryLayers int       // stage 4.9 periodic full-solid layers
	InfillEveryLayers    int         // stage 4.12 combine-infill window
	InfillOnlyWhereNeeded bool       // gates stage 4.11

	// Solid shells
	TopSolidLayers    int // stage 4.9 sweep depth for TOP seeds
	BottomSolidLayers int // stage 4.9 sweep depth for BOTTOM seeds

	// Support material
	SupportMaterial                bool
	SupportMaterialThreshold       float64 // degrees; 0 = auto (per-region default overhang width)
	SupportMaterialPattern         FillPattern
	SupportMaterialAngle           float64 // degrees
	SupportMaterialSpacing         float64 // mm, bulk pattern pitch
	SupportMaterialInterfaceLayers int
	SupportMaterialInterfaceSpacing float64 // mm; 0 means density 1 (solid)
	SupportMaterialEnforceLayers   int      // bottom N layers always get support regardless of threshold
	SupportMaterialContactHeight   float64  // mm, contact-layer extrusion height

	// Nozzle, used by stage 4.12's `every = min(infill_every_layers, floor(nozzle_diameter/layer_height))`
	NozzleDiameter float64

	// Diagnostics
	Verbose bool
}

// NewFillerRegistry builds the fill.Registry this Config's patterns need.
// Kept here (rather than in pkg/fill) because the script pattern's
// parameters are config-level choices (expression source), not geometry.
func (c Config) NewFillerRegistry() fill.Registry {
	return fill.DefaultRegistry()
}
