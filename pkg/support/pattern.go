package support

import (
	"math"

	"github.com/OhmEye/Slic3r/pkg/config"
	"github.com/OhmEye/Slic3r/pkg/fill"
	"github.com/OhmEye/Slic3r/pkg/flow"
	"github.com/OhmEye/Slic3r/pkg/geom"
	"github.com/OhmEye/Slic3r/pkg/object"
)

// GeneratePaths runs the pattern-generation half of stage 9. Sweep must
// have already populated every Layer's SupportRegions/Interfaces/
// ContactAreas. The bulk and interface patterns are computed once, over
// the union of every layer's support areas inset by half the support
// flow's width to keep fill lines from poking past the outline, then
// clipped to each layer's own regions. Layer 0, when it carries any
// support at all, gets a solid rectilinear base instead of the usual
// pattern (spec.md §4.13's raft-like first layer).
func GeneratePaths(layers []*object.Layer, cfg config.Config, supportFlow, firstLayerFlow flow.Flow, registry fill.Registry, engine geom.Engine) {
	allAreas := unionAllSupportAreas(layers, engine)
	if len(allAreas) == 0 {
		return
	}
	insetAreas := engine.OffsetEx(allAreas, -0.5*supportFlow.Width*geom.Scale)
	if len(insetAreas) == 0 {
		return
	}

	angles := supportAngles(cfg)
	patternSpacing := cfg.SupportMaterialSpacing * geom.Scale
	interfaceSpacing := cfg.SupportMaterialInterfaceSpacing * geom.Scale
	flowSpacing := supportFlow.Spacing * geom.Scale

	bulkDensity := 1.0
	if patternSpacing > 0 {
		bulkDensity = flowSpacing / patternSpacing
	}
	interfaceDensity := 1.0
	if interfaceSpacing > 0 {
		interfaceDensity = flowSpacing / interfaceSpacing
	}

	bulkPatterns := make([][]fill.Polyline, len(angles))
	interfacePatterns := make([][]fill.Polyline, len(angles))

	for ai, a := range angles {
		bulkFiller := registry.New(string(cfg.SupportMaterialPattern))
		bulkFiller.SetAngle(a)
		interfaceFiller := registry.New(string(cfg.SupportMaterialPattern))
		interfaceFiller.SetAngle(a)

		var bulkLines, ifaceLines []fill.Polyline
		for _, e := range insetAreas {
			_, lines := bulkFiller.FillSurface(e, bulkDensity, flowSpacing)
			bulkLines = append(bulkLines, lines...)
			_, ilines := interfaceFiller.FillSurface(e, interfaceDensity, flowSpacing)
			ifaceLines = append(ifaceLines, ilines...)
		}
		bulkPatterns[ai] = bulkLines
		interfacePatterns[ai] = ifaceLines
	}

	for i, layer := range layers {
		if i == 0 {
			emitFirstLayerBase(layer, registry, cfg, firstLayerFlow, engine)
			continue
		}
		if len(layer.SupportRegions) == 0 && len(layer.Interfaces) == 0 && len(layer.ContactAreas) == 0 {
			continue
		}

		idx := i % len(angles)
		bulkPaths := clipLinesToAreas(bulkPatterns[idx], layer.SupportRegions)
		interfacePaths := clipLinesToAreas(interfacePatterns[idx], layer.Interfaces)
		contactPaths := clipLinesToAreas(interfacePatterns[idx], layer.ContactAreas)

		layer.SupportFills = append(
			asExtrusionPaths(bulkPaths, supportFlow),
			asExtrusionPaths(interfacePaths, supportFlow)...,
		)
		layer.SupportContactFills = asExtrusionPaths(contactPaths, flow.New(supportFlow.Width, cfg.SupportMaterialContactHeight))
		layer.SupportIslands = engine.UnionEx(layer.SupportRegions, layer.Interfaces, layer.ContactAreas)
	}
}

func supportAngles(cfg config.Config) []float64 {
	base := cfg.SupportMaterialAngle * math.Pi / 180
	if cfg.SupportMaterialPattern == config.PatternRectilinearGrid {
		return []float64{base, base + math.Pi/2}
	}
	return []float64{base}
}

func emitFirstLayerBase(layer *object.Layer, registry fill.Registry, cfg config.Config, firstLayerFlow flow.Flow, engine geom.Engine) {
	base := engine.UnionEx(layer.SupportRegions, layer.Interfaces, layer.ContactAreas)
	if len(base) == 0 {
		return
	}
	filler := registry.New(string(config.PatternRectilinear))
	flowSpacing := firstLayerFlow.Spacing * geom.Scale

	var lines []fill.Polyline
	for _, e := range base {
		_, l := filler.FillSurface(e, 0.5, flowSpacing)
		lines = append(lines, l...)
	}
	layer.SupportFills = asExtrusionPaths(lines, firstLayerFlow)
	layer.SupportIslands = base
}

func unionAllSupportAreas(layers []*object.Layer, engine geom.Engine) []geom.Expolygon {
	var sets [][]geom.Expolygon
	for _, l := range layers {
		if len(l.SupportRegions) > 0 {
			sets = append(sets, l.SupportRegions)
		}
		if len(l.Interfaces) > 0 {
			sets = append(sets, l.Interfaces)
		}
		if len(l.ContactAreas) > 0 {
			sets = append(sets, l.ContactAreas)
		}
	}
	if len(sets) == 0 {
		return nil
	}
	return engine.UnionEx(sets...)
}

// clipLinesToAreas keeps the lines of pattern whose midpoint falls inside
// areas (contour minus holes), approximating a per-layer clip of the
// once-computed pattern without extending the polygon engine to handle
// open polylines directly.
func clipLinesToAreas(pattern []fill.Polyline, areas []geom.Expolygon) []fill.Polyline {
	if len(areas) == 0 {
		return nil
	}
	out := make([]fill.Polyline, 0, len(pattern))
	for _, line := range pattern {
		if len(line) < 2 {
			continue
		}
		mid := midpoint(line)
		if pointInAreas(mid, areas) {
			out = append(out, line)
		}
	}
	return out
}

func midpoint(line fill.Polyline) geom.Point {
	n := len(line)
	a, b := line[n/2-1], line[n/2]
	return geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func pointInAreas(p geom.Point, areas []geom.Expolygon) bool {
	for _, e := range areas {
		if !pointInPoly(p, e.Contour) {
			continue
		}
		inHole := false
		for _, h := range e.Holes {
			if pointInPoly(p, h) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

func pointInPoly(p geom.Point, poly geom.Polygon) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xint := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < xint {
				inside = !inside
			}
		}
	}
	return inside
}

func asExtrusionPaths(lines []fill.Polyline, f flow.Flow) []object.ExtrusionPath {
	out := make([]object.ExtrusionPath, 0, len(lines))
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		out = append(out, object.ExtrusionPath{
			Points: geom.Polygon(line),
			Flow:   f,
			Closed: false,
		})
	}
	return out
}
