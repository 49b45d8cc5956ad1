package pipeline

import (
	"log"

	"github.com/pkg/errors"

	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/mesh"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// BuildLayers runs stages 1 through 5 of the layer-analysis core
// (spec.md §4.1–§4.6) over a freshly constructed PrintObject: layer
// construction, facet slicing, loop assembly, slice repair, and
// empty-prefix trim. The returned PrintObject's Layers are ready for
// stage 6 (pkg/surfacetype).
//
// Fatal aborts (spec.md §7 InvalidMesh) are wrapped with
// github.com/pkg/errors at this boundary to keep a stack trace at the
// point of failure, distinct from the %w-wrapped non-fatal errors
// individual stages may return.
func BuildLayers(cfg config.Config, regions []RegionInput, objectHeight float64, engine geom.Engine) (*object.PrintObject, error) {
	meshes := make([]mesh.TriangleMesh, len(regions))
	for i, r := range regions {
		meshes[i] = r.Mesh
	}
	obj := object.NewPrintObject(meshes, mesh.Vec3{}, 1)

	obj.Layers = ConstructLayers(cfg, objectHeight, len(regions))
	if cfg.Verbose {
		log.Printf("slice: stage construct: %d layers allocated", len(obj.Layers))
	}

	if err := SliceFacets(obj.Layers, regions); err != nil {
		return nil, errors.Wrap(err, "pipeline: facet slicing")
	}
	if cfg.Verbose {
		log.Printf("slice: stage facet-slice: done")
	}

	AssembleLoops(obj.Layers)
	obj.Layers = TrimTrailingEmpty(obj.Layers)
	if cfg.Verbose {
		log.Printf("slice: stage loop-assembly: %d layers after trailing trim", len(obj.Layers))
	}

	MakeAllSlices(obj.Layers, engine)

	if RepairSlices(obj.Layers, engine) {
		obj.Warn(cfg.Verbose, "one or more layers required slice repair")
	}

	obj.Layers = TrimEmptyPrefix(obj.Layers, cfg.RaftLayers)
	if len(obj.Layers) == 0 {
		obj.Warn(cfg.Verbose, "empty result: no layers remain after empty-prefix trim")
		return obj, nil
	}

	obj.ReleaseMeshes()
	return obj, nil
}
