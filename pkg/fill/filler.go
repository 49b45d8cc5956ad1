// Package fill implements the fill-pattern library spec.md §6 treats as an
// external collaborator: filler(pattern) with angle(float) and
// fill_surface(surface, density, flow_spacing) -> (params, polylines).
// Patterns here are consumed by pkg/support (bulk/interface fill) and are
// available to callers wiring general infill on top of this pipeline's
// fill_surfaces output.
package fill

import "github.com/OhmEye/Slic3r/pkg/geom"

// Polyline is an open or closed sequence of scaled points, one fill path.
type Polyline []geom.Point

// Params records the effective parameters a Filler used, so callers can
// report them (e.g. actual line spacing after density adjustment).
type Params struct {
	Angle   float64 // radians
	Spacing float64 // scaled units, center-to-center
	Density float64 // 0..1
}

// Filler is the abstract fill-pattern interface.
type Filler interface {
	// Angle returns the filler's current fill angle in radians.
	Angle() float64
	// SetAngle sets the fill angle in radians.
	SetAngle(radians float64)
	// FillSurface computes fill paths covering e at the given density,
	// with lines spaced flowSpacing (scaled units) apart at density 1.
	FillSurface(e geom.Expolygon, density float64, flowSpacing float64) (Params, []Polyline)
}

// Registry maps a pattern name to a constructor, letting pkg/config and
// pkg/support pick a Filler by the config.FillPattern string without
// importing every concrete implementation.
type Registry map[string]func() Filler

// DefaultRegistry returns the patterns this module implements.
func DefaultRegistry() Registry {
	return Registry{
		"rectilinear":      func() Filler { return NewRectilinear() },
		"rectilinear-grid": func() Filler { return NewGrid() },
		"honeycomb":        func() Filler { return NewHoneycomb() },
		"script":           func() Filler { return NewScript(DefaultScript) },
	}
}

// New builds a Filler for the named pattern, falling back to rectilinear
// for an unrecognized name (the external config loader is responsible for
// validating pattern names, per spec.md §7 ConfigOutOfRange).
func (r Registry) New(pattern string) Filler {
	if ctor, ok := r[pattern]; ok {
		return ctor()
	}
	return NewRectilinear()
}
