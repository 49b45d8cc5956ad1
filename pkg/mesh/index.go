package mesh

import "github.com/dhconnelly/rtreego"

// facetBounds is the rtreego.Spatial a facet's Z-extent is indexed as.
// rtreego requires at least two dimensions, so the unused second axis is
// pinned to a near-zero-length (1e-9) interval at the facet's index — it
// never participates in a query, it just satisfies the library's Rect shape.
type facetBounds struct {
	index    int
	min, max float64
}

func (b *facetBounds) Bounds() rtreego.Rect {
	p := rtreego.Point{b.min, float64(b.index)}
	lengths := []float64{b.max - b.min, 1e-9}
	if lengths[0] <= 0 {
		lengths[0] = 1e-9
	}
	r, err := rtreego.NewRect(p, lengths)
	if err != nil {
		// A degenerate facet (min > max never happens by construction;
		// NewRect only errors on non-positive lengths, guarded above).
		panic("mesh: invalid facet bounds: " + err.Error())
	}
	return r
}

// ZIndex accelerates "which facets touch layer Z" queries during parallel
// facet slicing (spec.md §4.2, §4.14 in SPEC_FULL.md) using an R-tree over
// facet Z-ranges instead of a linear scan per layer.
type ZIndex struct {
	tree   *rtreego.Rtree
	facets []int
}

// NewZIndex builds a ZIndex over every facet of m.
func NewZIndex(m TriangleMesh) *ZIndex {
	tree := rtreego.NewTree(2, 25, 50)
	idx := &ZIndex{tree: tree}
	for i := 0; i < m.FacetCount(); i++ {
		min, max := m.Facet(i).ZRange()
		tree.Insert(&facetBounds{index: i, min: min, max: max})
	}
	return idx
}

// FacetsTouching returns the indices of every facet whose Z-range
// contains z.
func (zi *ZIndex) FacetsTouching(z float64) []int {
	p := rtreego.Point{z, 0}
	r, err := rtreego.NewRect(p, []float64{1e-9, 1e12})
	if err != nil {
		return nil
	}
	results := zi.tree.SearchIntersect(r)

	out := make([]int, 0, len(results))
	for _, res := range results {
		fb := res.(*facetBounds)
		if z >= fb.min && z <= fb.max {
			out = append(out, fb.index)
		}
	}
	return out
}
