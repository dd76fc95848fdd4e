/*
Package bsgrid implements an algebra for block-structured grid extents.

Extents

An extent is an axis-aligned box in discrete index space: one inclusive
(lo, hi) bound pair per dimension. Extents are the currency of structured
domain decomposition: a decomposed grid is a pool of extents, and the
questions a solver layer asks about it are geometric:

  - how many nodes does a sub-block hold, and what are their global
    flat node numbers inside an enclosing block?
  - which other sub-blocks does a given sub-block touch, and on which
    index region (adjacency for halo exchange)?
  - which unstructured element connectivity does a structured block
    induce (see the unstruct subpackage)?

All of these reduce to pure index arithmetic over per-dimension sizes
and row-major strides, which this package keeps exact for any number of
dimensions. Nodes are numbered 1-based in dictionary order with the
first dimension varying fastest, the usual lower-left-node-first
convention of block-structured meshes.

Extents are value objects. The derived size and stride vectors are
computed at construction and after every bounds change, so an extent
can never be observed with stale bookkeeping.

This package does not partition grids, exchange halo data, or talk to
any communication layer; it supplies the geometric primitives such a
layer consumes.
*/
package bsgrid

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
