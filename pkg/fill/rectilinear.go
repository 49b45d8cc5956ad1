package fill

import "github.com/OhmEye/Slic3r/pkg/geom"

// Rectilinear fills with a single family of parallel lines.
type Rectilinear struct {
	angle float64
}

// NewRectilinear returns a Rectilinear filler with a 0-radian default angle.
func NewRectilinear() *Rectilinear { return &Rectilinear{} }

func (f *Rectilinear) Angle() float64        { return f.angle }
func (f *Rectilinear) SetAngle(a float64)    { f.angle = a }

// FillSurface implements Filler.
func (f *Rectilinear) FillSurface(e geom.Expolygon, density, flowSpacing float64) (Params, []Polyline) {
	spacing := spacingForDensity(flowSpacing, density)
	lines := scanlineFill(e, f.angle, spacing)
	return Params{Angle: f.angle, Spacing: spacing, Density: density}, lines
}

// spacingForDensity converts a 0..1 density into the line pitch that
// achieves it: density 1 means lines touching (spacing == flowSpacing),
// density 0.5 means twice the spacing, etc. Mirrors spec.md §4.13's
// "density = flow_spacing / pattern_spacing" relationship, inverted.
func spacingForDensity(flowSpacing, density float64) float64 {
	if density <= 0 {
		return 0
	}
	if density > 1 {
		density = 1
	}
	return flowSpacing / density
}
