// Package geom implements the 2D polygon data model and the polygon
// primitive engine the layer-analysis pipeline treats as an external
// collaborator: union, difference, intersection, offset, simplify, area
// and printability. Coordinates are integer-scaled, matching the engine's
// fixed-point input (see Scale).
package geom

import "fmt"

// Scale converts millimeter float coordinates into the fixed-point integer
// space the polygon engine operates in. A value of 1e6 gives nanometer
// resolution on a millimeter-scale input, which is plenty for FDM geometry
// and keeps offset/union results reproducible across platforms (unlike
// float64 polygon arithmetic).
const Scale = 1_000_000.0

// Point is an integer-scaled 2D coordinate.
type Point struct {
	X, Y int64
}

// NewPoint scales a millimeter-space coordinate into a Point.
func NewPoint(x, y float64) Point {
	return Point{X: int64(x * Scale), Y: int64(y * Scale)}
}

// Unscale returns the millimeter-space coordinates of p.
func (p Point) Unscale() (x, y float64) {
	return float64(p.X) / Scale, float64(p.Y) / Scale
}

// Polygon is an ordered, closed sequence of points (no repeated last point).
type Polygon []Point

// BoundingBox returns the axis-aligned bounding box of the polygon.
// Returns false if the polygon is empty.
func (p Polygon) BoundingBox() (min, max Point, ok bool) {
	if len(p) == 0 {
		return Point{}, Point{}, false
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max, true
}

// SignedArea returns the shoelace-formula signed area in scaled units²;
// positive for counter-clockwise orientation, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += float64(p[i].X)*float64(p[j].Y) - float64(p[j].X)*float64(p[i].Y)
	}
	return sum / 2
}

// IsCounterClockwise reports whether the polygon winds counter-clockwise.
func (p Polygon) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}

// Reversed returns a copy of p with point order reversed (flips winding).
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// Expolygon is a single outer contour plus zero or more holes. Per
// spec.md §3, every Expolygon produced by the pipeline is simple and
// non-self-intersecting modulo the polygon engine's tolerance.
type Expolygon struct {
	Contour Polygon
	Holes   []Polygon
}

// Area returns the net area (contour minus holes) in scaled units²,
// using each polygon's absolute signed area regardless of stored winding.
func (e Expolygon) Area() float64 {
	area := abs(e.Contour.SignedArea())
	for _, h := range e.Holes {
		area -= abs(h.SignedArea())
	}
	return area
}

// AreaMM2 returns the net area converted to square millimeters.
func (e Expolygon) AreaMM2() float64 {
	return e.Area() / (Scale * Scale)
}

// Empty reports whether the expolygon's contour has fewer than 3 points.
func (e Expolygon) Empty() bool {
	return len(e.Contour) < 3
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// String renders a compact description, useful in test failure messages.
func (e Expolygon) String() string {
	return fmt.Sprintf("Expolygon{contour=%d pts, holes=%d, area=%.3fmm²}",
		len(e.Contour), len(e.Holes), e.AreaMM2())
}
