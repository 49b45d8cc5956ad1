package pipeline

import (
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// MakeSlices unions every region's slices into the layer's whole-layer
// islands (spec.md §4.4, "Layer Slice Union"), used wherever a
// cross-region outline of the layer is needed (stages 6 and 9).
func MakeSlices(l *object.Layer, engine geom.Engine) {
	var sets [][]geom.Expolygon
	for _, r := range l.Regions {
		if r == nil || len(r.Slices) == 0 {
			continue
		}
		set := make([]geom.Expolygon, len(r.Slices))
		for i, s := range r.Slices {
			set[i] = s.Expolygon
		}
		sets = append(sets, set)
	}
	l.Slices = engine.UnionEx(sets...)
}

// MakeAllSlices calls MakeSlices for every layer.
func MakeAllSlices(layers []*object.Layer, engine geom.Engine) {
	for _, l := range layers {
		MakeSlices(l, engine)
	}
}
