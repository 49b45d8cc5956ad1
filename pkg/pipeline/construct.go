package pipeline

import (
	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// ConstructLayers allocates layers at evenly spaced Z heights covering
// objectHeight, per spec.md §4.1. The first layer's height is cfg's
// FirstLayerHeight (falling back to LayerHeight when zero); every
// following layer uses LayerHeight. At least one layer beyond the
// object's top is always produced; TrimTrailingEmpty removes it once
// stage 3 has confirmed it carries no geometry.
func ConstructLayers(cfg config.Config, objectHeight float64, regionCount int) []*object.Layer {
	firstHeight := cfg.FirstLayerHeight
	if firstHeight <= 0 {
		firstHeight = cfg.LayerHeight
	}

	var layers []*object.Layer
	sliceZ := firstHeight / 2
	printZ := firstHeight
	height := firstHeight
	id := 0

	for {
		layers = append(layers, object.NewLayer(id, sliceZ, printZ, height, regionCount))
		id++
		if sliceZ >= objectHeight {
			break
		}
		sliceZ += cfg.LayerHeight
		printZ += cfg.LayerHeight
		height = cfg.LayerHeight
	}

	return layers
}

// TrimTrailingEmpty removes the single trailing layer ConstructLayers
// always produces beyond the object's top, provided stage 3 left it with
// no content. Called once, right after loop assembly.
func TrimTrailingEmpty(layers []*object.Layer) []*object.Layer {
	if len(layers) == 0 {
		return layers
	}
	last := layers[len(layers)-1]
	if last.HasContent() {
		return layers
	}
	return layers[:len(layers)-1]
}
