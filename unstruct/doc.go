/*
Package unstruct converts block-structured extents into unstructured
element connectivity.

Solvers that consume only unstructured topology still want to run on
block-structured grids. The conversion is pure index arithmetic: every
cell of a structured block is identified by its lower-left node, and the
remaining element corners are fixed stride offsets from it. Because the
offsets are derived from sizes and strides, never from coordinates, the
emitted connectivity is invariant under translation of the block in
index space.

A planar block (one degenerate dimension) yields 4-node quadrilaterals,
a volumetric block 8-node hexahedra. Elements are handed to an external
Connectivity collaborator; this package never retains them.
*/
package unstruct
