package unstruct

import (
	"fmt"

	"github.com/solverkit/bsgrid"
)

// Convert derives the unstructured element connectivity of a structured
// block and emits it to conn, one element per grid cell, followed by
// exactly one conn.Sync.
//
// The extent must carry 3 bound pairs; planar blocks are expressed with
// one degenerate dimension and yield quadrilaterals, volumetric blocks
// yield hexahedra. Elements are ordered by their lower-left node in
// dictionary order, first dimension fastest. Node numbers are the
// 1-based flat numbers of the block itself, so the result plugs into a
// node table enumerated with Extent.FlatIndices. Every element is
// emitted in its own slice, which the sink may retain.
//
// Returns ErrNoConnectivity for a nil sink, bsgrid.ErrInvalidDimension
// for a dimensionality other than 3, and ErrDegenerateGeometry for
// fewer than two active dimensions (a line or point of nodes).
func Convert(e bsgrid.Extent, conn Connectivity) error {
	if conn == nil {
		return ErrNoConnectivity
	}
	if e.Dim() != 3 {
		return fmt.Errorf("%w: conversion expects 3 bound pairs, got %d",
			bsgrid.ErrInvalidDimension, e.Dim())
	}
	meshDim := e.ActiveDimensionCount()
	if meshDim < 2 {
		return fmt.Errorf("%w: %d active dimensions", ErrDegenerateGeometry, meshDim)
	}
	// The lower-left cell region: one node layer less in every active
	// dimension. Its nodes are exactly the lower-left corners of the
	// block's cells.
	bounds := e.Bounds()
	for d := range bounds {
		if e.Size(d) > 1 {
			bounds[d].Hi--
		}
	}
	lowerleft, err := bsgrid.FromBounds(bounds)
	if err != nil {
		return err
	}
	corners, err := e.FlatIndices(lowerleft)
	if err != nil {
		return err
	}
	// Corner offsets are stride-derived. The in-row neighbor is +1, the
	// cross-row neighbor advances the first active dimension with more
	// than one node, and for volumetric blocks the plane offset advances
	// one node layer.
	row := e.Size(0)
	if row == 1 {
		row = e.Size(1)
	}
	plane := 0
	if meshDim == 3 {
		plane = row * e.Size(1)
	}
	for _, i := range corners {
		element := make([]int, 0, 8)
		element = append(element, i, i+1, i+1+row, i+row)
		if plane > 0 {
			element = append(element, i+plane, i+1+plane, i+plane+row+1, i+plane+row)
		}
		conn.AddElement(element)
	}
	conn.Sync()
	return nil
}
