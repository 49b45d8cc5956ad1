package geom

import (
	"encoding/binary"
	"fmt"

	"github.com/glycerine/blake2b"
)

// SurfaceType classifies the role a Surface plays within a layer region,
// per spec.md §3.
type SurfaceType int

const (
	// STop surfaces are exposed upward (no material above).
	STop SurfaceType = iota
	// SBottom surfaces are exposed downward (no material below).
	SBottom
	// SInternal surfaces are sandwiched between layers, filled sparsely.
	SInternal
	// SInternalSolid surfaces are internal but converted to solid fill,
	// part of a horizontal shell.
	SInternalSolid
	// SInternalBridge surfaces are internal-solid surfaces spanning sparse
	// infill, requiring bridge-mode extrusion.
	SInternalBridge
)

func (t SurfaceType) String() string {
	switch t {
	case STop:
		return "top"
	case SBottom:
		return "bottom"
	case SInternal:
		return "internal"
	case SInternalSolid:
		return "internal-solid"
	case SInternalBridge:
		return "internal-bridge"
	default:
		return fmt.Sprintf("surface-type(%d)", int(t))
	}
}

// Surface is an immutable value: an expolygon tagged with a type and a
// handful of optional derived fields. Per spec.md §9 Design Notes,
// surfaces are replaced wholesale between stages rather than mutated;
// the one field the original algorithm does mutate in place
// (additional_inner_perimeters) is kept out of this struct and tracked in
// a side table keyed by SurfaceID instead — see AdditionalPerimeters.
type Surface struct {
	Expolygon    Expolygon
	Type         SurfaceType
	BridgeAngle  float64 // radians; meaningful only for SInternalBridge
	HasBridge    bool
	DepthLayers  int // number of physical layers this surface spans; 0 means 1 (unset)
}

// ID computes a stable content-addressed identity for the surface, derived
// from its type and its contour's and holes' quantized coordinates. Two
// Surfaces with the same type, contour and holes (even across pipeline
// stages that rebuild the
// slice) hash identically, which is what lets pkg/shell's
// additional-perimeter side table survive being recomputed from scratch
// every time spec.md §4.8 reruns stage by stage.
//
// The approach mirrors the teacher's graph.NodeID doc comment describing a
// "content-addressed identifier" for design-graph nodes; here it is BLAKE2b-256
// over the surface's own geometry instead of a Lisp expression.
func (s Surface) ID() SurfaceID {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for bad keyed-hash parameters; we pass
		// none, so this is unreachable in practice.
		panic(fmt.Sprintf("geom: blake2b.New256: %v", err))
	}

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(s.Type))
	h.Write(buf[:4])

	writePolygon(h, s.Expolygon.Contour)
	binary.LittleEndian.PutUint32(buf[:4], uint32(len(s.Expolygon.Holes)))
	h.Write(buf[:4])
	for _, hole := range s.Expolygon.Holes {
		writePolygon(h, hole)
	}

	var out SurfaceID
	copy(out[:], h.Sum(nil))
	return out
}

func writePolygon(h interface{ Write([]byte) (int, error) }, p Polygon) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(len(p)))
	h.Write(buf[:8])
	for _, pt := range p {
		binary.LittleEndian.PutUint64(buf[:8], uint64(pt.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(pt.Y))
		h.Write(buf[:])
	}
}

// SurfaceID is a 32-byte BLAKE2b-256 content hash, used as the key of
// side tables that need to track a mutable property of a Surface without
// making Surface itself mutable.
type SurfaceID [32]byte

func (id SurfaceID) String() string {
	return fmt.Sprintf("%x", id[:8])
}
