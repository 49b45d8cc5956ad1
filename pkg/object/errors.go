package object

import "errors"

// ErrInvalidMesh is returned when facet slicing produces no layers at all
// (spec.md §7 InvalidMesh) — fatal for the enclosing PrintObject.
var ErrInvalidMesh = errors.New("object: invalid mesh: slicing produced no layers")

// ErrEmptyResult names the condition where the empty-prefix trim leaves no
// layers at all (spec.md §7 EmptyResult). pkg/pipeline does not return it:
// BuildLayers records a warning on the PrintObject and returns a nil error.
var ErrEmptyResult = errors.New("object: empty result: no layers remain after trim")
