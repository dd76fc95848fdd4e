package bsgrid

import (
	"fmt"
	"strings"
)

// Range is one inclusive per-dimension bound pair of an extent.
type Range struct {
	Lo, Hi int
}

// Len returns the number of index values the range covers.
func (r Range) Len() int {
	return r.Hi - r.Lo + 1
}

// degenerate reports whether the range spans exactly one index value.
func (r Range) degenerate() bool {
	return r.Lo == r.Hi
}

// Extent is an axis-aligned box in discrete index space.
//
// For every dimension d it holds an inclusive bound pair and two derived
// quantities:
//
//	size_d   = hi_d − lo_d + 1
//	stride_d = size_0 · … · size_{d−1}    (stride_0 = 1)
//
// The stride is the node-numbering weight of dimension d under row-major
// dictionary ordering with the first dimension varying fastest. Derived
// fields are recomputed on every construction and bounds change; no
// operation can observe them out of sync with the bounds.
//
// The zero value is the empty extent of dimension 0. It covers no nodes.
type Extent struct {
	bounds []Range
	size   []int
	stride []int
}

// FromBounds creates an extent from one bound pair per dimension.
//
// Returns ErrInvalidDimension if no bounds are given or any pair has
// Lo > Hi. The input slice is copied.
func FromBounds(bounds []Range) (Extent, error) {
	if len(bounds) == 0 {
		return Extent{}, fmt.Errorf("%w: no bound pairs", ErrInvalidDimension)
	}
	e := Extent{bounds: make([]Range, len(bounds))}
	copy(e.bounds, bounds)
	if err := e.resync(); err != nil {
		return Extent{}, err
	}
	return e, nil
}

// FromFlat creates an extent from a flat bound sequence
// [lo_0, hi_0, lo_1, hi_1, …] of length 2·D.
//
// Returns ErrInvalidDimension for an empty or odd-length sequence or any
// pair with lo > hi. FromFlat is the inverse of Flatten.
func FromFlat(flat []int) (Extent, error) {
	if len(flat) == 0 || len(flat)%2 != 0 {
		return Extent{}, fmt.Errorf("%w: flat bound sequence of length %d", ErrInvalidDimension, len(flat))
	}
	bounds := make([]Range, len(flat)/2)
	for d := range bounds {
		bounds[d] = Range{Lo: flat[2*d], Hi: flat[2*d+1]}
	}
	return FromBounds(bounds)
}

// FromBuffer creates an extent of dimension nd from the first 2·nd values
// of a raw bound buffer, ordered like the flat form. This is the interop
// constructor for callers that carry bounds in undifferentiated storage.
//
// Returns ErrInvalidDimension if nd < 1 or the buffer is too short.
func FromBuffer(buf []int, nd int) (Extent, error) {
	if nd < 1 {
		return Extent{}, fmt.Errorf("%w: dimension count %d", ErrInvalidDimension, nd)
	}
	if len(buf) < 2*nd {
		return Extent{}, fmt.Errorf("%w: buffer holds %d values, need %d", ErrInvalidDimension, len(buf), 2*nd)
	}
	return FromFlat(buf[:2*nd])
}

// resync recomputes the derived size and stride vectors from the bounds.
// Every path that establishes or changes bounds runs through here before
// the extent becomes visible to a caller.
func (e *Extent) resync() error {
	nd := len(e.bounds)
	e.size = make([]int, nd)
	e.stride = make([]int, nd)
	for d, r := range e.bounds {
		if r.Lo > r.Hi {
			return fmt.Errorf("%w: bounds [%d,%d] in dimension %d", ErrInvalidDimension, r.Lo, r.Hi, d)
		}
		e.size[d] = r.Len()
	}
	for d := 0; d < nd; d++ {
		if d == 0 {
			e.stride[d] = 1
			continue
		}
		e.stride[d] = e.size[d-1] * e.stride[d-1]
	}
	return nil
}

// SetBounds returns a copy of the extent with the bound pair of dimension d
// replaced, derived fields already recomputed. The receiver is unchanged.
//
// Returns ErrIndexOutOfBounds for an invalid dimension index and
// ErrInvalidDimension for r.Lo > r.Hi.
func (e Extent) SetBounds(d int, r Range) (Extent, error) {
	if d < 0 || d >= len(e.bounds) {
		return Extent{}, fmt.Errorf("%w: dimension %d of %d", ErrIndexOutOfBounds, d, len(e.bounds))
	}
	bounds := make([]Range, len(e.bounds))
	copy(bounds, e.bounds)
	bounds[d] = r
	return FromBounds(bounds)
}

// Dim returns the number of dimensions.
func (e Extent) Dim() int {
	return len(e.bounds)
}

// Bound returns the inclusive bound pair of dimension d.
func (e Extent) Bound(d int) Range {
	return e.bounds[d]
}

// Bounds returns a copy of all bound pairs in dimension order.
func (e Extent) Bounds() []Range {
	bounds := make([]Range, len(e.bounds))
	copy(bounds, e.bounds)
	return bounds
}

// Size returns the node count of dimension d.
func (e Extent) Size(d int) int {
	return e.size[d]
}

// Stride returns the node-numbering weight of dimension d.
func (e Extent) Stride(d int) int {
	return e.stride[d]
}

// NodeCount returns the total number of nodes the extent covers, the
// product of all per-dimension sizes. The empty extent covers no nodes.
func (e Extent) NodeCount() int {
	if len(e.bounds) == 0 {
		return 0
	}
	n := 1
	for _, s := range e.size {
		n *= s
	}
	return n
}

// ActiveDimensionCount returns the number of non-degenerate dimensions,
// i.e. dimensions spanning more than one index value. A 3-dimensional
// extent describing a planar block has an active dimension count of 2.
func (e Extent) ActiveDimensionCount() int {
	active := 0
	for _, r := range e.bounds {
		if !r.degenerate() {
			active++
		}
	}
	return active
}

// Flatten returns the bounds as a flat sequence
// [lo_0, hi_0, lo_1, hi_1, …] of length 2·D, the inverse of FromFlat.
func (e Extent) Flatten() []int {
	flat := make([]int, 0, 2*len(e.bounds))
	for _, r := range e.bounds {
		flat = append(flat, r.Lo, r.Hi)
	}
	return flat
}

// Contains reports whether the coordinate tuple lies inside the extent.
//
// Returns ErrDimensionMismatch if the tuple length differs from Dim.
func (e Extent) Contains(coord []int) (bool, error) {
	if len(coord) != len(e.bounds) {
		return false, fmt.Errorf("%w: coordinate of dimension %d in extent of dimension %d",
			ErrDimensionMismatch, len(coord), len(e.bounds))
	}
	for d, r := range e.bounds {
		if coord[d] < r.Lo || coord[d] > r.Hi {
			return false, nil
		}
	}
	return true, nil
}

// NodeNumber returns the 1-based flat node number of a single coordinate
// tuple within the extent's coordinate space:
//
//	1 + Σ_d (coord_d − lo_d) · stride_d
//
// Coordinates outside the bounds produce node numbers outside
// [1, NodeCount]; callers that need containment check it with Contains.
//
// Returns ErrDimensionMismatch if the tuple length differs from Dim and
// ErrInvalidDimension for the empty extent.
func (e Extent) NodeNumber(coord []int) (int, error) {
	if len(e.bounds) == 0 {
		return 0, fmt.Errorf("%w: empty extent has no nodes", ErrInvalidDimension)
	}
	if len(coord) != len(e.bounds) {
		return 0, fmt.Errorf("%w: coordinate of dimension %d in extent of dimension %d",
			ErrDimensionMismatch, len(coord), len(e.bounds))
	}
	n := 1
	for d := len(e.bounds) - 1; d >= 0; d-- {
		n += (coord[d] - e.bounds[d].Lo) * e.stride[d]
	}
	return n, nil
}

// String renders the extent as "[lo,hi]×[lo,hi]×…", mostly for tracing.
func (e Extent) String() string {
	if len(e.bounds) == 0 {
		return "[]"
	}
	var sb strings.Builder
	for d, r := range e.bounds {
		if d > 0 {
			sb.WriteRune('×')
		}
		fmt.Fprintf(&sb, "[%d,%d]", r.Lo, r.Hi)
	}
	return sb.String()
}
