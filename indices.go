package bsgrid

import "fmt"

// FlatIndices enumerates the 1-based global flat node numbers that query
// occupies within the receiver's coordinate and stride space, in
// dictionary order with the first dimension varying fastest (lower-left
// node first).
//
// The query is usually a sub-block of the receiver, e.g. an overlap
// region from neighbor discovery; it only has to share the receiver's
// dimensionality, not lie inside its bounds. Traversal is an iterative
// odometer over one counter per dimension, so dimensionality is not
// limited by call-stack depth and concurrent enumerations share no
// state.
//
// An empty receiver and query yield an empty sequence. Returns
// ErrDimensionMismatch if the dimensionalities differ.
func (e Extent) FlatIndices(query Extent) ([]int, error) {
	nd := len(e.bounds)
	if nd != len(query.bounds) {
		return nil, fmt.Errorf("%w: query of dimension %d in extent of dimension %d",
			ErrDimensionMismatch, len(query.bounds), nd)
	}
	if nd == 0 {
		return []int{}, nil
	}
	T().Debugf("enumerating %s within %s", query, e)
	indices := make([]int, 0, query.NodeCount())
	coord := make([]int, nd)
	offset := 0 // running Σ_d (coord_d − lo_d) · stride_d
	for d := 0; d < nd; d++ {
		coord[d] = query.bounds[d].Lo
		offset += (coord[d] - e.bounds[d].Lo) * e.stride[d]
	}
	for {
		indices = append(indices, offset+1)
		d := 0
		for d < nd { // odometer step, first dimension fastest
			coord[d]++
			offset += e.stride[d]
			if coord[d] <= query.bounds[d].Hi {
				break
			}
			offset -= (coord[d] - query.bounds[d].Lo) * e.stride[d]
			coord[d] = query.bounds[d].Lo
			d++
		}
		if d == nd {
			return indices, nil
		}
	}
}
