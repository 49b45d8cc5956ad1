package mesh

// SliceFacet intersects one facet with the horizontal plane z, per
// spec.md §4.2. Returns false if the facet does not cross z (entirely
// above, entirely below, or lies flat in it).
func SliceFacet(f Facet, z float64) (Segment, bool) {
	v := [3]Vec3{f.V0, f.V1, f.V2}

	type crossing struct{ x, y float64 }
	var pts []crossing

	for i := 0; i < 3; i++ {
		a, b := v[i], v[(i+1)%3]
		if (a.Z <= z && b.Z > z) || (b.Z <= z && a.Z > z) {
			t := (z - a.Z) / (b.Z - a.Z)
			pts = append(pts, crossing{
				x: a.X + t*(b.X-a.X),
				y: a.Y + t*(b.Y-a.Y),
			})
		}
	}

	if len(pts) != 2 {
		// 0: facet doesn't cross z. 1 or 3: a vertex lies exactly on the
		// plane; spec.md §4.2 tolerates the resulting degenerate/duplicate
		// segments rather than filtering them here, but a single crossing
		// carries no segment to emit.
		if len(pts) < 2 {
			return Segment{}, false
		}
		pts = pts[:2]
	}

	return Segment{X0: pts[0].x, Y0: pts[0].y, X1: pts[1].x, Y1: pts[1].y}, true
}

// SliceFacetAtLayers intersects f with every slice_z in layerZs whose
// range it actually crosses, returning a map of layer index to segment.
// candidateLayers lists the layer indices to test (out-of-range indices
// are skipped), so callers don't re-test every layer against a facet
// outside its Z range.
func SliceFacetAtLayers(f Facet, layerZs []float64, candidateLayers []int) map[int]Segment {
	out := make(map[int]Segment, len(candidateLayers))
	for _, li := range candidateLayers {
		if li < 0 || li >= len(layerZs) {
			continue
		}
		if seg, ok := SliceFacet(f, layerZs[li]); ok {
			out[li] = seg
		}
	}
	return out
}
