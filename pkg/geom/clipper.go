package geom

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// ClipperEngine implements Engine on top of
// github.com/ctessum/go.clipper, a Go port of Angus Johnson's Clipper
// library. It is the polygon primitive spec.md §6 calls out as an
// external collaborator (union_ex/diff_ex/intersection_ex/offset_ex).
//
// A ClipperEngine holds no mutable state: each call constructs a fresh
// clipper.Clipper, and the OffsetPolygons helper and the instance's own
// settings (miter limit) are configuration, not state, so a single
// ClipperEngine value can be shared read-only — per spec.md §5 and §9,
// each parallel worker is still expected to own its own instance to avoid
// any doubt about clipper's internal reentrancy.
type ClipperEngine struct {
	// MiterLimit bounds how far a mitered offset join may extend past the
	// join vertex before Clipper substitutes a square join instead.
	MiterLimit float64
}

// NewClipperEngine returns a ready-to-use ClipperEngine with Clipper's
// usual default miter limit.
func NewClipperEngine() *ClipperEngine {
	return &ClipperEngine{MiterLimit: 2.0}
}

var _ Engine = (*ClipperEngine)(nil)

func toClipperPoly(p Polygon) []*clipper.Point {
	out := make([]*clipper.Point, len(p))
	for i, pt := range p {
		out[i] = &clipper.Point{X: int(pt.X), Y: int(pt.Y)}
	}
	return out
}

func fromClipperPoly(p []*clipper.Point) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point{X: int64(pt.X), Y: int64(pt.Y)}
	}
	return out
}

// addExpolygonSet adds every contour/hole of the given expolygon sets to c
// as one PolyType (Subject or Clip).
func addExpolygonSet(c *clipper.Clipper, sets [][]Expolygon, pt clipper.PolyType) {
	for _, set := range sets {
		for _, e := range set {
			if e.Empty() {
				continue
			}
			c.AddPolygon(toClipperPoly(e.Contour), pt)
			for _, h := range e.Holes {
				c.AddPolygon(toClipperPoly(h), pt)
			}
		}
	}
}

// polyTreeToExpolygons walks a clipper.PolyTree, pairing each non-hole
// node with its direct hole children into an Expolygon, recursing into
// holes' own children (islands nested inside holes) so nothing is lost.
func polyTreeToExpolygons(tree *clipper.PolyTree) []Expolygon {
	var out []Expolygon
	var walk func(node *clipper.PolyNode)
	walk = func(node *clipper.PolyNode) {
		for i := 0; i < node.ChildCount; i++ {
			child := node.Childs[i]
			if child.IsHole() {
				// Holes are collected by their parent contour below;
				// still walk their children for nested islands.
				walk(child)
				continue
			}
			e := Expolygon{Contour: fromClipperPoly(child.Contour)}
			for j := 0; j < child.ChildCount; j++ {
				maybeHole := child.Childs[j]
				if maybeHole.IsHole() {
					e.Holes = append(e.Holes, fromClipperPoly(maybeHole.Contour))
				}
			}
			if !e.Empty() {
				out = append(out, e)
			}
			walk(child)
		}
	}
	walk(&tree.PolyNode)
	return out
}

func (ce *ClipperEngine) execute(clipType clipper.ClipType, subject, clip []Expolygon) []Expolygon {
	c := clipper.NewClipper()
	addExpolygonSet(c, [][]Expolygon{subject}, clipper.Subject)
	if clip != nil {
		addExpolygonSet(c, [][]Expolygon{clip}, clipper.Clip)
	}

	tree := new(clipper.PolyTree)
	c.Execute2(clipType, tree, clipper.NonZero, clipper.NonZero)
	return polyTreeToExpolygons(tree)
}

// UnionEx implements Engine.
func (ce *ClipperEngine) UnionEx(sets ...[]Expolygon) []Expolygon {
	c := clipper.NewClipper()
	addExpolygonSet(c, sets, clipper.Subject)

	tree := new(clipper.PolyTree)
	c.Execute2(clipper.Union, tree, clipper.NonZero, clipper.NonZero)
	return polyTreeToExpolygons(tree)
}

// DiffEx implements Engine.
func (ce *ClipperEngine) DiffEx(subject, clip []Expolygon) []Expolygon {
	if len(subject) == 0 {
		return nil
	}
	if len(clip) == 0 {
		return ce.UnionEx(subject)
	}
	return ce.execute(clipper.Difference, subject, clip)
}

// IntersectionEx implements Engine.
func (ce *ClipperEngine) IntersectionEx(subject, clip []Expolygon) []Expolygon {
	if len(subject) == 0 || len(clip) == 0 {
		return nil
	}
	return ce.execute(clipper.Intersection, subject, clip)
}

// OffsetEx implements Engine.
func (ce *ClipperEngine) OffsetEx(polys []Expolygon, delta float64) []Expolygon {
	if len(polys) == 0 {
		return nil
	}

	var input [][]*clipper.Point
	for _, e := range polys {
		if e.Empty() {
			continue
		}
		input = append(input, toClipperPoly(e.Contour))
		for _, h := range e.Holes {
			input = append(input, toClipperPoly(h))
		}
	}
	if len(input) == 0 {
		return nil
	}

	result := clipper.OffsetPolygons(input, delta, clipper.RoundJoin, ce.MiterLimit, true)

	// OffsetPolygons returns a flat list of polygons with no explicit
	// hole/outer relationship; recover that structure with a union pass
	// through a fresh Clipper so downstream code sees proper Expolygons.
	c := clipper.NewClipper()
	for _, poly := range result {
		if len(poly) >= 3 {
			c.AddPolygon(poly, clipper.Subject)
		}
	}
	tree := new(clipper.PolyTree)
	c.Execute2(clipper.Union, tree, clipper.NonZero, clipper.NonZero)
	return polyTreeToExpolygons(tree)
}

// Simplify implements Engine. It removes near-collinear vertices within
// tolerance and drops contours whose area is below tolerance² — the
// "tiny-polygon cleanup" spec.md §1 calls out as a numerical-robustness
// concern of this pipeline.
func (ce *ClipperEngine) Simplify(polys []Expolygon, tolerance float64) []Expolygon {
	minArea := tolerance * tolerance
	out := make([]Expolygon, 0, len(polys))
	for _, e := range polys {
		if e.Empty() || e.Area() < minArea {
			continue
		}
		simplified := Expolygon{
			Contour: simplifyPolygon(e.Contour, tolerance),
		}
		for _, h := range e.Holes {
			if abs(h.SignedArea()) < minArea {
				continue
			}
			simplified.Holes = append(simplified.Holes, simplifyPolygon(h, tolerance))
		}
		if len(simplified.Contour) >= 3 {
			out = append(out, simplified)
		}
	}
	return out
}

// simplifyPolygon drops vertices closer than tolerance to the segment
// formed by their neighbors (a minimal Douglas-Peucker-style decimation).
func simplifyPolygon(p Polygon, tolerance float64) Polygon {
	if len(p) < 4 {
		return p
	}
	out := make(Polygon, 0, len(p))
	n := len(p)
	for i := 0; i < n; i++ {
		prev := p[(i-1+n)%n]
		cur := p[i]
		next := p[(i+1)%n]
		if perpendicularDistance(cur, prev, next) >= tolerance {
			out = append(out, cur)
		}
	}
	if len(out) < 3 {
		return p
	}
	return out
}

func perpendicularDistance(pt, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := dx*dx + dy*dy
	if length == 0 {
		ex := float64(pt.X - a.X)
		ey := float64(pt.Y - a.Y)
		return math.Sqrt(ex*ex + ey*ey)
	}
	cross := dx*float64(pt.Y-a.Y) - dy*float64(pt.X-a.X)
	return abs(cross) / math.Sqrt(length)
}

// Area implements Engine.
func (ce *ClipperEngine) Area(e Expolygon) float64 {
	return e.Area()
}

// IsPrintable implements Engine. A contour is printable if offsetting it
// inward by half the extrusion width (in scaled units) still leaves a
// non-empty region — i.e. at least one perimeter loop fits inside it.
func (ce *ClipperEngine) IsPrintable(e Expolygon, extrusionWidth float64) bool {
	if e.Empty() {
		return false
	}
	halfWidth := extrusionWidth * Scale / 2
	inset := ce.OffsetEx([]Expolygon{e}, -halfWidth)
	return len(inset) > 0
}
