package pipeline

import (
	"math"
	"sort"

	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/mesh"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// AssembleLoops runs stage 3 (spec.md §4.3) over every layer: for each
// region, chain that region's unordered facet-slicing segments into
// closed polylines, flag the layer if any chain failed to close, and
// build the region's initial Slices (typed provisionally as SInternal —
// stage 6 replaces the type before anything downstream reads it) from
// whichever loops did close.
//
// Each region's Lines are dropped immediately afterward, per spec.md §3
// Lifecycle.
func AssembleLoops(layers []*object.Layer) {
	for _, l := range layers {
		for _, r := range l.Regions {
			if r == nil || len(r.Lines) == 0 {
				continue
			}
			loops, clean := buildLoops(r.Lines)
			if !clean {
				l.SlicingErrors = true
			}
			r.Slices = surfacesFromLoops(loops)
		}
		l.DropLines()
	}
}

func toPoint(x, y float64) geom.Point {
	return geom.Point{X: int64(math.Round(x * geom.Scale)), Y: int64(math.Round(y * geom.Scale))}
}

// buildLoops chains segs into closed polygons by matching coincident
// endpoints. clean is false if one or more chains ran out of matching
// segments before returning to their start point (spec.md §4.3's
// "topologically inconsistent" case) — the loops that did close are
// still returned.
func buildLoops(segs []mesh.Segment) (loops []geom.Polygon, clean bool) {
	adjacency := make(map[geom.Point][]loopEdge)
	addEdge := func(a, b geom.Point, idx int) {
		adjacency[a] = append(adjacency[a], loopEdge{point: a, other: b, idx: idx})
	}
	for i, s := range segs {
		a, b := toPoint(s.X0, s.Y0), toPoint(s.X1, s.Y1)
		addEdge(a, b, i)
		addEdge(b, a, i)
	}

	used := make([]bool, len(segs))
	clean = true

	for start := 0; start < len(segs); start++ {
		if used[start] {
			continue
		}
		used[start] = true
		s := segs[start]
		first := toPoint(s.X0, s.Y0)
		current := toPoint(s.X1, s.Y1)
		loop := geom.Polygon{first}

		closed := current == first
		for !closed {
			loop = append(loop, current)

			next, ok := nextUnusedEdge(adjacency, current, used)
			if !ok {
				clean = false
				break
			}
			used[next.idx] = true
			current = next.other
			if current == first {
				closed = true
			}
		}

		if closed && len(loop) >= 3 {
			loops = append(loops, loop)
		} else if closed {
			// Degenerate loop (fewer than 3 distinct points) contributes no
			// area; tolerated per spec.md §4.2's note on unfiltered
			// single-segment crossings.
			continue
		}
	}

	return loops, clean
}

func nextUnusedEdge(adjacency map[geom.Point][]loopEdge, at geom.Point, used []bool) (loopEdge, bool) {
	for _, e := range adjacency[at] {
		if !used[e.idx] {
			return e, true
		}
	}
	return loopEdge{}, false
}

type loopEdge struct {
	point geom.Point
	other geom.Point
	idx   int
}

// surfacesFromLoops classifies closed loops into exteriors and holes.
// Segment chaining (buildLoops) does not preserve a loop's winding
// relative to the originating facet normals, so orientation alone can't
// tell an exterior from a hole; instead loops are sorted largest-area
// first and each smaller loop becomes a hole of the smallest
// already-placed loop whose contour contains it, otherwise a new
// top-level exterior (spec.md §4.3).
func surfacesFromLoops(loops []geom.Polygon) []geom.Surface {
	if len(loops) == 0 {
		return nil
	}

	order := make([]int, len(loops))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return math.Abs(loops[order[a]].SignedArea()) > math.Abs(loops[order[b]].SignedArea())
	})

	var exteriors []*geom.Expolygon
	for _, i := range order {
		p := loops[i]
		parent := smallestContaining(exteriors, p[0])
		if parent != nil {
			parent.Holes = append(parent.Holes, p)
			continue
		}
		exteriors = append(exteriors, &geom.Expolygon{Contour: p})
	}

	surfaces := make([]geom.Surface, len(exteriors))
	for i, e := range exteriors {
		surfaces[i] = geom.Surface{Expolygon: *e, Type: geom.SInternal}
	}
	return surfaces
}

// smallestContaining returns the smallest-area exterior (by contour,
// ignoring its own holes) whose contour contains p, or nil.
func smallestContaining(exteriors []*geom.Expolygon, p geom.Point) *geom.Expolygon {
	var best *geom.Expolygon
	bestArea := math.Inf(1)
	for _, e := range exteriors {
		area := math.Abs(e.Contour.SignedArea())
		if area < bestArea && pointInPolygon(p, e.Contour) {
			best = e
			bestArea = area
		}
	}
	return best
}

// pointInPolygon is a standard even-odd ray-casting test.
func pointInPolygon(p geom.Point, poly geom.Polygon) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xIntersect := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}
