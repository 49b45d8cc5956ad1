// Package object defines the print object data model spec.md §3 describes:
// PrintObject, Layer, and LayerRegion, plus the lifecycle and invariants
// that govern how the pipeline packages (pkg/pipeline, pkg/surfacetype,
// pkg/shell, pkg/bridge, pkg/support) are allowed to mutate them between
// stages. Layer and PrintObject hold no behavior of their own beyond small
// derived accessors; the stage packages own the algorithms.
package object

import (
	"github.com/OhmEye/Slic3r/pkg/flow"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/mesh"
)

// ExtrusionPath is one fill or perimeter path ready for toolpath
// generation: an ordered point sequence plus the flow it was computed at.
// spec.md §6 lists perimeters/thin_fills/thin_walls/support_fills as
// "extrusion path collections" without prescribing a wire shape; this is
// the in-memory shape every stage package downstream of fill emits.
type ExtrusionPath struct {
	Points geom.Polygon
	Flow   flow.Flow
	Closed bool
}

// LayerRegion is the portion of a Layer belonging to one material region
// (spec.md §3). Region index r in a Layer corresponds to mesh index r in
// the owning PrintObject's Meshes.
type LayerRegion struct {
	// PerimeterFlow and InfillFlow are the pure-value flow inputs spec.md
	// §3 says the region "holds references to" — printability checks,
	// offset distances, and clearance margins all read these rather than
	// any global configuration.
	PerimeterFlow flow.Flow
	InfillFlow    flow.Flow
	OverhangWidth float64 // scaled units; region default used when support threshold is 0 (auto)

	// Lines are the transient facet/plane intersection segments stage 2
	// produces. Dropped immediately after stage 3's loop assembly
	// (spec.md §3 Lifecycle) — callers must not read this after that point.
	Lines []mesh.Segment

	// Slices is the ordered, typed partition of this region's share of the
	// layer outline. Written in stage 3, rewritten in stage 4 if repaired,
	// retyped (and reordered BOTTOM, TOP, INTERNAL) in stage 6, never
	// resized after stage 6 (spec.md §3 Lifecycle).
	Slices []geom.Surface

	// FillSurfaces is first populated in stage 6 by clipping Slices to the
	// region's fill boundary, then rewritten by stages 7 and 8.
	FillSurfaces []geom.Surface

	Perimeters []ExtrusionPath
	ThinFills  []ExtrusionPath
	ThinWalls  []ExtrusionPath
}

// NewLayerRegion returns a zero-value LayerRegion carrying the given flows.
func NewLayerRegion(perimeterFlow, infillFlow flow.Flow, overhangWidth float64) *LayerRegion {
	return &LayerRegion{
		PerimeterFlow: perimeterFlow,
		InfillFlow:    infillFlow,
		OverhangWidth: overhangWidth,
	}
}

// Layer is one horizontal cross-section of a PrintObject (spec.md §3). Id
// equals the layer's index in the owning PrintObject's Layers slice and is
// reassigned whenever a layer is removed (empty-prefix trim, stage 5).
type Layer struct {
	ID            int
	SliceZ        float64 // mm, the Z height facets were cut at
	PrintZ        float64 // mm, the Z height this layer's top surface prints at
	Height        float64 // mm, nominal layer height
	SlicingErrors bool    // set by stage 3 when loop assembly failed topologically

	Regions []*LayerRegion

	// Slices is the union of Regions' slices: the layer's whole-layer
	// islands, used wherever a cross-region outline is needed (stage 4,
	// "Layer Slice Union"; consumed again by stages 6 and 9).
	Slices []geom.Expolygon

	// Support-material fields (stage 9), keyed implicitly by this layer.
	SupportRegions      []geom.Expolygon // bulk support area
	Interfaces          []geom.Expolygon
	ContactAreas        []geom.Expolygon
	SupportFills        []ExtrusionPath
	SupportContactFills []ExtrusionPath
	SupportIslands      []geom.Expolygon // union of support + contact areas, for slicing/display
}

// NewLayer allocates a Layer with regionCount region slots, all nil; callers
// construct each LayerRegion (with its own flows) and assign it to its slot.
func NewLayer(id int, sliceZ, printZ, height float64, regionCount int) *Layer {
	l := &Layer{
		ID:     id,
		SliceZ: sliceZ,
		PrintZ: printZ,
		Height: height,
	}
	l.Regions = make([]*LayerRegion, regionCount)
	return l
}

// HasContent reports whether the layer has any slices or thin walls in any
// region — the predicate stage 5's empty-prefix trim checks.
func (l *Layer) HasContent() bool {
	if len(l.Slices) > 0 {
		return true
	}
	for _, r := range l.Regions {
		if r == nil {
			continue
		}
		if len(r.Slices) > 0 || len(r.ThinWalls) > 0 {
			return true
		}
	}
	return false
}

// DropLines releases the transient facet-slicing segments of every region,
// per spec.md §3 Lifecycle ("lines live only during slicing; dropped
// immediately after loops are formed").
func (l *Layer) DropLines() {
	for _, r := range l.Regions {
		if r != nil {
			r.Lines = nil
		}
	}
}
