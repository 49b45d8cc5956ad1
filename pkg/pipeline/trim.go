package pipeline

import "github.com/OhmEye/Slic3r/pkg/object"

// TrimEmptyPrefix removes empty leading layers starting at the configured
// raft-layer count (spec.md §4.6): while the layer at that index has no
// whole-layer slices and no thin walls in any region, it is removed and
// every later layer's id is renumbered so layer.id == index again.
func TrimEmptyPrefix(layers []*object.Layer, raftLayers int) []*object.Layer {
	start := raftLayers
	if start < 0 {
		start = 0
	}
	for start < len(layers) && isEmptyForTrim(layers[start]) {
		layers = append(layers[:start], layers[start+1:]...)
	}
	for i, l := range layers {
		l.ID = i
	}
	return layers
}

func isEmptyForTrim(l *object.Layer) bool {
	return !l.HasContent()
}
