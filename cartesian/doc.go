// Package cartesian generates nodal coordinates for uniform Cartesian
// grids described by a bsgrid extent. Node ordering matches the flat
// node numbering of the extent, so generated coordinates, flat-index
// enumeration and unstructured conversion all agree on node identity.
package cartesian
