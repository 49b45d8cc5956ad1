package fill

import (
	"math"
	"sort"

	"github.com/OhmEye/Slic3r/pkg/geom"
)

// scanlineFill covers e with parallel lines at the given angle (radians)
// and spacing (scaled units), returning one polyline per contiguous
// in-polygon run per scanline. It works by rotating the expolygon into a
// frame where the fill direction is the X axis, sweeping horizontal lines
// across it, intersecting each with every edge of the contour and holes,
// and pairing up crossings left-to-right (standard even-odd scanline
// polygon fill, the same technique the contour-to-path step of most
// slicer infill engines and rasterizers use).
func scanlineFill(e geom.Expolygon, angleRad, spacing float64) []Polyline {
	if spacing <= 0 || e.Empty() {
		return nil
	}

	cos, sin := math.Cos(-angleRad), math.Sin(-angleRad)
	rotate := func(p geom.Point) (x, y float64) {
		fx, fy := float64(p.X), float64(p.Y)
		return fx*cos - fy*sin, fx*sin + fy*cos
	}
	unrotate := func(x, y float64) geom.Point {
		cos2, sin2 := math.Cos(angleRad), math.Sin(angleRad)
		return geom.Point{
			X: int64(x*cos2 - y*sin2),
			Y: int64(x*sin2 + y*cos2),
		}
	}

	rings := make([][]rotatedPoint, 0, 1+len(e.Holes))
	rings = append(rings, rotateRing(e.Contour, rotate))
	for _, h := range e.Holes {
		rings = append(rings, rotateRing(h, rotate))
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, ring := range rings {
		for _, p := range ring {
			if p.y < minY {
				minY = p.y
			}
			if p.y > maxY {
				maxY = p.y
			}
		}
	}
	if math.IsInf(minY, 1) {
		return nil
	}

	var out []Polyline
	first := math.Ceil(minY/spacing) * spacing
	for y := first; y <= maxY; y += spacing {
		xs := scanlineCrossings(rings, y)
		for i := 0; i+1 < len(xs); i += 2 {
			out = append(out, Polyline{
				unrotate(xs[i], y),
				unrotate(xs[i+1], y),
			})
		}
	}
	return out
}

type rotatedPoint struct{ x, y float64 }

func rotateRing(p geom.Polygon, rotate func(geom.Point) (float64, float64)) []rotatedPoint {
	out := make([]rotatedPoint, len(p))
	for i, pt := range p {
		x, y := rotate(pt)
		out[i] = rotatedPoint{x, y}
	}
	return out
}

// scanlineCrossings returns the sorted X crossings of horizontal line Y=y
// against every edge of every ring (even-odd rule across all rings
// combined handles holes automatically: a point is inside the expolygon
// iff it has an odd number of ring crossings to its left).
func scanlineCrossings(rings [][]rotatedPoint, y float64) []float64 {
	var xs []float64
	for _, ring := range rings {
		n := len(ring)
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			if (a.y <= y && b.y > y) || (b.y <= y && a.y > y) {
				t := (y - a.y) / (b.y - a.y)
				xs = append(xs, a.x+t*(b.x-a.x))
			}
		}
	}
	sort.Float64s(xs)
	return xs
}
