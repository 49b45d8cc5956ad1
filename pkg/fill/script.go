package fill

import (
	"fmt"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/OhmEye/Slic3r/pkg/geom"
)

// DefaultScript is the fallback expression a Script filler evaluates when
// none is supplied: it ignores the inputs and asks for an un-rotated
// pattern at the caller's requested density, i.e. behaves like
// Rectilinear. Real configurations override this with something that
// reads layer-index/layer-z/density to vary the fill procedurally (denser
// near the bed, alternating angle every N layers, etc).
const DefaultScript = `(list 0.0 1.0)`

// ScriptTimeout bounds a single expression evaluation, mirroring
// pkg/engine's original EvalTimeout for the same Lisp sandbox.
const ScriptTimeout = 200 * time.Millisecond

// Script is a Filler whose per-layer angle/spacing-multiplier is computed
// by evaluating a short zygomys (the teacher's embedded Lisp) expression.
// It is the DSL pattern spec.md §6's "fill_pattern ∈ {rectilinear,
// honeycomb, …}" leaves room for: see SPEC_FULL.md §4.15.
//
// The expression receives three bound symbols — layer-index (int),
// layer-z (float), density (float) — and must evaluate to a two-element
// list (angle-radians spacing-multiplier). Evaluation runs in a fresh
// sandbox per call, exactly like pkg/engine.Engine.Evaluate: this keeps
// evaluation deterministic and side-effect free regardless of what
// prior layers' scripts did.
type Script struct {
	mu         sync.Mutex
	generation uint64
	source     string
	angle      float64

	// LayerIndex and LayerZ are set by the caller (pkg/support, or a
	// general infill driver) before each FillSurface call, since the
	// Filler interface's FillSurface signature has no layer context.
	LayerIndex int
	LayerZ     float64
}

// NewScript returns a Script filler that evaluates the given zygomys
// source on every FillSurface call.
func NewScript(source string) *Script {
	if strings.TrimSpace(source) == "" {
		source = DefaultScript
	}
	return &Script{source: source}
}

func (f *Script) Angle() float64     { return f.angle }
func (f *Script) SetAngle(a float64) { f.angle = a }

// FillSurface implements Filler.
func (f *Script) FillSurface(e geom.Expolygon, density, flowSpacing float64) (Params, []Polyline) {
	angle, spacingMult, err := f.eval(density)
	if err != nil {
		// Fall back to a plain rectilinear pass rather than aborting the
		// whole layer over a bad user expression.
		angle, spacingMult = f.angle, 1.0
	}

	spacing := spacingForDensity(flowSpacing, density) * spacingMult
	lines := scanlineFill(e, angle, spacing)
	return Params{Angle: angle, Spacing: spacing, Density: density}, lines
}

type scriptResult struct {
	angle, spacingMult float64
	err                error
}

// eval runs f.source in a fresh sandbox, bounded by ScriptTimeout, and
// extracts (angle spacing-multiplier) from its result.
func (f *Script) eval(density float64) (angle, spacingMult float64, err error) {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	f.mu.Unlock()

	ch := make(chan scriptResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- scriptResult{err: fmt.Errorf("script filler panic: %v", r)}
			}
		}()
		a, s, err := f.evalOnce(density)
		ch <- scriptResult{angle: a, spacingMult: s, err: err}
	}()

	timer := time.NewTimer(ScriptTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		f.mu.Lock()
		current := f.generation
		f.mu.Unlock()
		if gen != current {
			return 0, 1, fmt.Errorf("script filler: evaluation superseded")
		}
		return res.angle, res.spacingMult, res.err
	case <-timer.C:
		return 0, 1, fmt.Errorf("script filler: evaluation timed out after %s", ScriptTimeout)
	}
}

func (f *Script) evalOnce(density float64) (float64, float64, error) {
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	prelude := fmt.Sprintf("(def layer-index %d) (def layer-z %g) (def density %g)\n",
		f.LayerIndex, f.LayerZ, density)

	if err := env.LoadString(prelude + f.source); err != nil {
		return 0, 1, fmt.Errorf("script filler: parse: %w", err)
	}

	result, err := env.Run()
	if err != nil {
		return 0, 1, fmt.Errorf("script filler: eval: %w", err)
	}

	return parseAngleSpacing(result)
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go
// slice, the same conversion pkg/engine's original builtins used for list
// arguments.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// parseAngleSpacing extracts (angle spacing-multiplier) from a zygomys
// list result, accepting either ints or floats for each element.
func parseAngleSpacing(s zygo.Sexp) (float64, float64, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return 0, 1, fmt.Errorf("script filler: result is not a list: %w", err)
	}
	if len(items) != 2 {
		return 0, 1, fmt.Errorf("script filler: expected 2 elements, got %d", len(items))
	}
	a, err := sexpToFloat(items[0])
	if err != nil {
		return 0, 1, fmt.Errorf("script filler: angle: %w", err)
	}
	sp, err := sexpToFloat(items[1])
	if err != nil {
		return 0, 1, fmt.Errorf("script filler: spacing multiplier: %w", err)
	}
	return a, sp, nil
}

func sexpToFloat(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpFloat:
		return float64(v.Val), nil
	case *zygo.SexpInt:
		return float64(v.Val), nil
	default:
		return 0, fmt.Errorf("not a number: %T", s)
	}
}
