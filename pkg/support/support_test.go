package support

import (
	"testing"

	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/flow"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/mesh"
	"github.com/OhmEye/Slic3r/pkg/object"
)

func square(x0, y0, x1, y1 float64) geom.Expolygon {
	return geom.Expolygon{Contour: geom.Polygon{
		geom.NewPoint(x0, y0),
		geom.NewPoint(x1, y0),
		geom.NewPoint(x1, y1),
		geom.NewPoint(x0, y1),
	}}
}

// overhangLayers builds a two-layer object: a small base layer and a much
// larger layer printed directly on top of it, so the upper layer's edges
// overhang thin air and need support beneath them.
func overhangLayers() []*object.Layer {
	f := flow.New(0.4, 0.2)
	base := object.NewLayer(0, 0.1, 0.2, 0.2, 1)
	base.Slices = []geom.Expolygon{square(4, 4, 6, 6)}
	base.Regions[0] = object.NewLayerRegion(f, f, 0.4)

	top := object.NewLayer(1, 0.3, 0.4, 0.2, 1)
	top.Slices = []geom.Expolygon{square(0, 0, 10, 10)}
	top.Regions[0] = object.NewLayerRegion(f, f, 0.4)

	return []*object.Layer{base, top}
}

func TestSweepProducesSupportUnderOverhang(t *testing.T) {
	engine := geom.NewClipperEngine()
	layers := overhangLayers()
	cfg := config.Config{SupportMaterial: true}
	supportFlow := flow.New(0.4, 0.2)

	found := Sweep(layers, cfg, supportFlow, 0.4*geom.Scale, engine)
	if !found {
		t.Fatal("expected Sweep to find support-worthy overhang area")
	}
	if len(layers[0].ContactAreas) == 0 && len(layers[0].SupportRegions) == 0 {
		t.Error("expected layer 0 to receive contact or bulk support area beneath the overhang")
	}
}

func TestSweepDisabledNoBandReturnsFalse(t *testing.T) {
	engine := geom.NewClipperEngine()
	layers := overhangLayers()
	cfg := config.Config{} // SupportMaterial false, RaftLayers 0, EnforceLayers 0
	supportFlow := flow.New(0.4, 0.2)

	found := Sweep(layers, cfg, supportFlow, 0.4*geom.Scale, engine)
	if found {
		t.Error("expected no support when support material is disabled and no raft/enforce band applies")
	}
	if len(layers[0].ContactAreas) != 0 || len(layers[1].SupportRegions) != 0 {
		t.Error("layers should be untouched when every index is skipped")
	}
}

func TestOverhangWidthUsesThresholdWhenSet(t *testing.T) {
	cfg := config.Config{LayerHeight: 0.2, SupportMaterialThreshold: 45}
	w := OverhangWidth(cfg, 999)
	if w == 999 {
		t.Error("expected threshold-derived width, not the region default fallback")
	}
	if w <= 0 {
		t.Errorf("expected a positive overhang width, got %v", w)
	}
}

func TestOverhangWidthFallsBackToRegionDefault(t *testing.T) {
	cfg := config.Config{LayerHeight: 0.2}
	w := OverhangWidth(cfg, 12345)
	if w != 12345 {
		t.Errorf("expected region default 12345 with no threshold configured, got %v", w)
	}
}

func TestBuildSkipsWhenSupportDisabled(t *testing.T) {
	engine := geom.NewClipperEngine()
	obj := object.NewPrintObject(nil, mesh.Vec3{}, 1)
	obj.Layers = overhangLayers()
	sf := flow.New(0.4, 0.2)

	built := Build(obj, config.Config{}, sf, sf, 0.4*geom.Scale, engine)
	if built {
		t.Error("Build should report false when support material is fully disabled")
	}
	for _, l := range obj.Layers {
		if len(l.SupportFills) != 0 {
			t.Error("disabled Build must not emit any support paths")
		}
	}
}

func TestBuildEmitsFirstLayerBase(t *testing.T) {
	engine := geom.NewClipperEngine()
	obj := object.NewPrintObject(nil, mesh.Vec3{}, 1)
	obj.Layers = overhangLayers()
	sf := flow.New(0.4, 0.2)

	cfg := config.Config{
		SupportMaterial:        true,
		SupportMaterialPattern: config.PatternRectilinear,
		SupportMaterialSpacing: 2.0,
		SupportMaterialContactHeight: 0.2,
	}

	built := Build(obj, cfg, sf, sf, 0.4*geom.Scale, engine)
	if !built {
		t.Fatal("expected Build to report that support material was produced")
	}
	if len(obj.Layers[0].SupportFills) == 0 {
		t.Error("expected layer 0 to carry a solid base fill once support areas exist")
	}
}
