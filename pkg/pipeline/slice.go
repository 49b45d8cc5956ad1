package pipeline

import (
	"github.com/OhmEye/Slic3r/pkg/flow"
	"github.com/OhmEye/Slic3r/pkg/mesh"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// RegionInput is one material region's mesh and the flow parameters its
// LayerRegions are constructed with (spec.md §3: "Holds references to
// flow parameters ... used as pure-value inputs").
type RegionInput struct {
	Mesh          mesh.TriangleMesh
	PerimeterFlow flow.Flow
	InfillFlow    flow.Flow
	OverhangWidth float64
}

// SliceFacets intersects every region's mesh with every layer plane it
// crosses (spec.md §4.2). Per-layer facet candidates come from a
// pkg/mesh.ZIndex built once per mesh (SPEC_FULL.md §4.14), turning what
// would otherwise be a full facet scan per layer into a range query.
//
// Layers (not facets) are the unit of parallel work here: each worker
// queries the shared, read-only ZIndex for one layer's candidate facets
// and returns that layer's segments; RunPool's collect callback, on the
// calling goroutine, appends them to that layer's own LayerRegion — the
// same "disjoint keys" shape spec.md §5 describes for the facet-parallel
// version of this stage.
func SliceFacets(layers []*object.Layer, regions []RegionInput) error {
	for r, in := range regions {
		if in.Mesh == nil {
			continue
		}
		idx := mesh.NewZIndex(in.Mesh)
		facetCount := in.Mesh.FacetCount()

		fn := func(i int) any {
			l := layers[i]
			var segs []mesh.Segment
			for _, fi := range idx.FacetsTouching(l.SliceZ) {
				f := in.Mesh.Facet(fi)
				if seg, ok := mesh.SliceFacet(f, l.SliceZ); ok {
					segs = append(segs, seg)
				}
			}
			return segs
		}

		collect := func(i int, value any) {
			l := layers[i]
			if l.Regions[r] == nil {
				l.Regions[r] = object.NewLayerRegion(in.PerimeterFlow, in.InfillFlow, in.OverhangWidth)
			}
			segs := value.([]mesh.Segment)
			if len(segs) > 0 {
				l.Regions[r].Lines = append(l.Regions[r].Lines, segs...)
			}
		}

		RunPool(len(layers), 4, facetThreshold(facetCount), fn, collect)
	}

	if allLayersEmpty(layers) {
		return object.ErrInvalidMesh
	}
	return nil
}

// facetThreshold returns 0 (so RunPool takes its parallel path) when a mesh
// has at least DefaultThreshold facets, or a number larger than any layer
// count (forcing RunPool's sequential path) when it doesn't.
func facetThreshold(facetCount int) int {
	if facetCount >= DefaultThreshold {
		return 0
	}
	return 1 << 30
}

func allLayersEmpty(layers []*object.Layer) bool {
	for _, l := range layers {
		for _, r := range l.Regions {
			if r != nil && len(r.Lines) > 0 {
				return false
			}
		}
	}
	return true
}
