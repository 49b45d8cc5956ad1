package object

import (
	"log"

	"github.com/OhmEye/Slic3r/pkg/mesh"
)

// PrintObject owns one mesh set (one TriangleMesh per material region) and
// the layer stack derived from it (spec.md §3). The parent print (the
// collection of PrintObjects placed on a bed) is referenced, never owned;
// this package has no Print type of its own since nothing in spec.md's
// scope needs bed-level placement logic.
type PrintObject struct {
	// Meshes holds one TriangleMesh per material region, indexed the same
	// way LayerRegion.Lines/Slices are indexed within a Layer. Released
	// (set to nil) after stage 2 unless RetainMeshes was requested.
	Meshes []mesh.TriangleMesh

	Size  mesh.Vec3 // bounding box size at the object's placement
	Copies int       // number of instances this object is printed as

	Layers []*Layer

	RetainMeshes bool

	// Warnings accumulates the one-time, user-visible warnings spec.md §7
	// calls for (repair occurred, empty result) — pkg/object.Warnings in
	// SPEC_FULL.md §6.1. The orchestrator appends; callers read after the
	// pipeline returns.
	Warnings []string
}

// NewPrintObject constructs a PrintObject from its per-region meshes.
func NewPrintObject(meshes []mesh.TriangleMesh, size mesh.Vec3, copies int) *PrintObject {
	return &PrintObject{Meshes: meshes, Size: size, Copies: copies}
}

// Warn appends msg to Warnings and, if verbose is true, logs it immediately
// — spec.md §7's "one-time warnings ... otherwise silent success", and
// SPEC_FULL.md §6.1's plain log.Printf debug traces.
func (o *PrintObject) Warn(verbose bool, msg string) {
	o.Warnings = append(o.Warnings, msg)
	if verbose {
		log.Printf("slice: warning: %s", msg)
	}
}

// ReleaseMeshes drops Meshes unless RetainMeshes was set, per spec.md §3
// Lifecycle ("meshes are released after stage 2 unless caller opts in").
func (o *PrintObject) ReleaseMeshes() {
	if !o.RetainMeshes {
		o.Meshes = nil
	}
}

// RegionCount returns the number of material regions this object was built
// from, derived from Meshes while they're still retained, or from the
// first layer's region count afterward.
func (o *PrintObject) RegionCount() int {
	if len(o.Meshes) > 0 {
		return len(o.Meshes)
	}
	if len(o.Layers) > 0 {
		return len(o.Layers[0].Regions)
	}
	return 0
}

// Renumber reassigns every layer's ID to its index, restoring the
// invariant spec.md §3 requires after any layer removal (empty-prefix
// trim, stage 5).
func (o *PrintObject) Renumber() {
	for i, l := range o.Layers {
		l.ID = i
	}
}
