package pipeline

import (
	"testing"

	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/flow"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/mesh"
)

// cubeMesh builds an axis-aligned solid cube of the given size, origin at
// (0,0,0), as 8 side-wall triangles (2 per vertical face) plus 4 cap
// triangles. Only the side walls matter for slicing: cap facets are
// perfectly horizontal and cross no intermediate layer plane, matching
// spec.md §8's mesh round-trip scenario.
func cubeMesh(size float64) *mesh.FacetMesh {
	v := func(x, y, z float64) mesh.Vec3 { return mesh.Vec3{X: x, Y: y, Z: z} }

	facets := []mesh.Facet{
		// x = 0
		{V0: v(0, 0, 0), V1: v(0, size, 0), V2: v(0, size, size)},
		{V0: v(0, 0, 0), V1: v(0, size, size), V2: v(0, 0, size)},
		// x = size
		{V0: v(size, 0, 0), V1: v(size, size, size), V2: v(size, size, 0)},
		{V0: v(size, 0, 0), V1: v(size, 0, size), V2: v(size, size, size)},
		// y = 0
		{V0: v(0, 0, 0), V1: v(size, 0, size), V2: v(size, 0, 0)},
		{V0: v(0, 0, 0), V1: v(0, 0, size), V2: v(size, 0, size)},
		// y = size
		{V0: v(0, size, 0), V1: v(size, size, 0), V2: v(size, size, size)},
		{V0: v(0, size, 0), V1: v(size, size, size), V2: v(0, size, size)},
		// caps (horizontal, contribute no crossings)
		{V0: v(0, 0, 0), V1: v(size, size, 0), V2: v(size, 0, 0)},
		{V0: v(0, 0, 0), V1: v(0, size, 0), V2: v(size, size, 0)},
		{V0: v(0, 0, size), V1: v(size, 0, size), V2: v(size, size, size)},
		{V0: v(0, 0, size), V1: v(size, size, size), V2: v(0, size, size)},
	}
	return mesh.NewFacetMesh(facets)
}

func baseConfig() config.Config {
	return config.Config{
		LayerHeight:      0.2,
		FirstLayerHeight: 0.2,
	}
}

func cubeRegion(size float64) RegionInput {
	f := flow.New(0.4, 0.2)
	return RegionInput{Mesh: cubeMesh(size), PerimeterFlow: f, InfillFlow: f, OverhangWidth: 0.4 * geom.Scale}
}

func TestConstructLayersCoversHeight(t *testing.T) {
	cfg := baseConfig()
	layers := ConstructLayers(cfg, 2.0, 1)
	if len(layers) == 0 {
		t.Fatal("expected at least one layer")
	}
	last := layers[len(layers)-1]
	if last.SliceZ < 2.0 {
		t.Errorf("last layer sliceZ=%v should reach beyond object height 2.0", last.SliceZ)
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].SliceZ <= layers[i-1].SliceZ {
			t.Fatalf("sliceZ must strictly increase: layer %d (%v) <= layer %d (%v)",
				i, layers[i].SliceZ, i-1, layers[i-1].SliceZ)
		}
	}
}

func TestBuildLayersCubeRoundTrip(t *testing.T) {
	cfg := baseConfig()
	engine := geom.NewClipperEngine()
	size := 2.0

	obj, err := BuildLayers(cfg, []RegionInput{cubeRegion(size)}, size, engine)
	if err != nil {
		t.Fatalf("BuildLayers: %v", err)
	}
	if len(obj.Layers) == 0 {
		t.Fatal("expected at least one layer for a solid cube")
	}

	for i, l := range obj.Layers {
		if i > 0 && l.SliceZ <= obj.Layers[i-1].SliceZ {
			t.Fatalf("layer %d sliceZ did not strictly increase", i)
		}
		if l.ID != i {
			t.Fatalf("layer %d has ID %d, want it to equal its index", i, l.ID)
		}
	}

	wantAreaMM2 := size * size
	for _, l := range obj.Layers {
		var total float64
		for _, e := range l.Slices {
			total += e.AreaMM2()
		}
		if total < wantAreaMM2*0.9 || total > wantAreaMM2*1.1 {
			t.Errorf("layer %d (z=%v) slice area = %.4f mm^2, want ~%.4f", l.ID, l.SliceZ, total, wantAreaMM2)
		}
	}
}

func TestSliceFacetsAbortsOnInvalidMesh(t *testing.T) {
	cfg := baseConfig()
	layers := ConstructLayers(cfg, 2.0, 1)
	empty := RegionInput{Mesh: mesh.NewFacetMesh(nil)}
	if err := SliceFacets(layers, []RegionInput{empty}); err == nil {
		t.Fatal("expected ErrInvalidMesh for a mesh with no facets")
	}
}

func TestTrimEmptyPrefixRenumbers(t *testing.T) {
	cfg := baseConfig()
	layers := ConstructLayers(cfg, 1.0, 1)
	// Simulate raft layers 0..1 having no content by construction (regions
	// are nil/empty by default).
	trimmed := TrimEmptyPrefix(layers, 2)
	for i, l := range trimmed {
		if l.ID != i {
			t.Errorf("layer %d has ID %d after trim, want %d", i, l.ID, i)
		}
	}
}

func TestRunPoolSequentialAndParallelAgree(t *testing.T) {
	n := 2000
	seq := make([]int, n)
	par := make([]int, n)

	RunPool(n, 4, 1<<30, func(i int) any { return i * 2 }, func(i int, v any) { seq[i] = v.(int) })
	RunPool(n, 4, 0, func(i int) any { return i * 2 }, func(i int, v any) { par[i] = v.(int) })

	for i := range seq {
		if seq[i] != par[i] || seq[i] != i*2 {
			t.Fatalf("index %d: sequential=%d parallel=%d want %d", i, seq[i], par[i], i*2)
		}
	}
}
