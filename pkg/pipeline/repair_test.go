package pipeline

import (
	"testing"

	"github.com/OhmEye/Slic3r/pkg/flow"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

func squareExpolygon(x0, y0, x1, y1 float64) geom.Expolygon {
	return geom.Expolygon{Contour: geom.Polygon{
		geom.NewPoint(x0, y0),
		geom.NewPoint(x1, y0),
		geom.NewPoint(x1, y1),
		geom.NewPoint(x0, y1),
	}}
}

func TestRepairSlicesRebuildsFromNeighbors(t *testing.T) {
	engine := geom.NewClipperEngine()

	layers := []*object.Layer{
		object.NewLayer(0, 0.1, 0.2, 0.2, 1),
		object.NewLayer(1, 0.3, 0.4, 0.2, 1),
		object.NewLayer(2, 0.5, 0.6, 0.2, 1),
	}
	flowFixt := flow.New(0.4, 0.2)
	for _, l := range layers {
		l.Regions[0] = object.NewLayerRegion(flowFixt, flowFixt, 0)
	}
	layers[0].Regions[0].Slices = []geom.Surface{{Expolygon: squareExpolygon(0, 0, 10, 10), Type: geom.SInternal}}
	layers[2].Regions[0].Slices = []geom.Surface{{Expolygon: squareExpolygon(0, 0, 10, 10), Type: geom.SInternal}}
	layers[1].SlicingErrors = true

	repaired := RepairSlices(layers, engine)
	if !repaired {
		t.Fatal("expected RepairSlices to report a repair happened")
	}
	mid := layers[1]
	if len(mid.Regions[0].Slices) == 0 {
		t.Fatal("expected the flagged layer's region to be rebuilt from its neighbors")
	}
	if len(mid.Slices) == 0 {
		t.Fatal("expected the flagged layer's whole-layer slices to be recomputed")
	}
}

func TestRepairSlicesNoNeighborsNoOp(t *testing.T) {
	engine := geom.NewClipperEngine()
	l := object.NewLayer(0, 0.1, 0.2, 0.2, 1)
	l.SlicingErrors = true
	layers := []*object.Layer{l}

	if RepairSlices(layers, engine) {
		t.Fatal("a lone flagged layer with no clean neighbors should not be reported as repaired")
	}
}
