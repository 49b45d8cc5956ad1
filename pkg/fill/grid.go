package fill

import (
	"math"

	"github.com/OhmEye/Slic3r/pkg/geom"
)

// Grid fills with two rectilinear passes 90 degrees apart, matching
// spec.md §4.13's "90°-rotated pass if rectilinear-grid".
type Grid struct {
	angle float64
}

// NewGrid returns a Grid filler with a 0-radian default angle.
func NewGrid() *Grid { return &Grid{} }

func (f *Grid) Angle() float64     { return f.angle }
func (f *Grid) SetAngle(a float64) { f.angle = a }

// FillSurface implements Filler. Each pass runs at half the density of an
// equivalent single rectilinear pass, since the two together should match
// the requested overall density.
func (f *Grid) FillSurface(e geom.Expolygon, density, flowSpacing float64) (Params, []Polyline) {
	perPassDensity := density / 2
	spacing := spacingForDensity(flowSpacing, perPassDensity)

	lines := scanlineFill(e, f.angle, spacing)
	lines = append(lines, scanlineFill(e, f.angle+math.Pi/2, spacing)...)

	return Params{Angle: f.angle, Spacing: spacing, Density: density}, lines
}
