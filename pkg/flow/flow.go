// Package flow holds the extrusion-geometry value type the layer-analysis
// pipeline consumes as a pure input (spec.md §3: "Holds references to flow
// parameters ... used as pure-value inputs by the pipeline"). Flow
// calibration math itself is out of scope (spec.md §1); this package only
// carries the width/spacing/height numbers stages need to make geometric
// decisions (printability checks, offset distances, clearance margins).
package flow

// Flow describes one extrusion's geometry in millimeters.
type Flow struct {
	Width   float64 // nominal extrusion width
	Spacing float64 // center-to-center distance between adjacent lines
	Height  float64 // layer height this flow is calibrated for
}

// New returns a Flow with spacing derived from width (the common case: a
// line's spacing equals its width for a roughly rectangular bead cross
// section).
func New(width, height float64) Flow {
	return Flow{Width: width, Spacing: width, Height: height}
}

// ScaledSpacing returns Spacing converted to geom.Scale integer units.
// Kept as a plain float64 (not importing geom) to avoid a dependency
// cycle; callers multiply by geom.Scale themselves.
func (f Flow) ScaledSpacing(scale float64) float64 {
	return f.Spacing * scale
}
