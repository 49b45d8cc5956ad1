package fill

import (
	"math"

	"github.com/OhmEye/Slic3r/pkg/geom"
)

// Honeycomb approximates a hexagonal cell pattern with three rectilinear
// passes 60 degrees apart, each at a third of the requested density. A
// true honeycomb generator produces connected hex walls rather than three
// independent line families; this approximation keeps the same visual
// density and isotropy without a dedicated hex-tiling algorithm, which
// belongs in the polygon/fill engine this package stands in for.
type Honeycomb struct {
	angle float64
}

// NewHoneycomb returns a Honeycomb filler with a 0-radian default angle.
func NewHoneycomb() *Honeycomb { return &Honeycomb{} }

func (f *Honeycomb) Angle() float64     { return f.angle }
func (f *Honeycomb) SetAngle(a float64) { f.angle = a }

// FillSurface implements Filler.
func (f *Honeycomb) FillSurface(e geom.Expolygon, density, flowSpacing float64) (Params, []Polyline) {
	perPassDensity := density / 3
	spacing := spacingForDensity(flowSpacing, perPassDensity)

	var lines []Polyline
	for i := 0; i < 3; i++ {
		a := f.angle + float64(i)*(math.Pi/3)
		lines = append(lines, scanlineFill(e, a, spacing)...)
	}

	return Params{Angle: f.angle, Spacing: spacing, Density: density}, lines
}
