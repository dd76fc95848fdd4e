package bsgrid

import "fmt"

// Overlap returns the intersection of two extents of equal dimensionality.
//
// The intersection exists iff the bound ranges intersect in every
// dimension under closed-interval rules, i.e. blocks touching in a
// single point, line or plane do overlap. That shared boundary is
// exactly the node set two sub-blocks of a decomposed grid have in
// common. Absence of an overlap is a normal outcome, reported by
// ok == false, not an error.
//
// The result is a newly constructed extent, independent of both inputs.
// Returns ErrDimensionMismatch if the dimensionalities differ.
func (e Extent) Overlap(other Extent) (region Extent, ok bool, err error) {
	nd := len(e.bounds)
	if nd != len(other.bounds) {
		return Extent{}, false, fmt.Errorf("%w: extents of dimension %d and %d",
			ErrDimensionMismatch, nd, len(other.bounds))
	}
	if nd == 0 {
		return Extent{}, false, nil
	}
	bounds := make([]Range, nd)
	for d := 0; d < nd; d++ {
		a, b := e.bounds[d], other.bounds[d]
		if a.Hi < b.Lo || b.Hi < a.Lo {
			return Extent{}, false, nil
		}
		bounds[d] = Range{Lo: max(a.Lo, b.Lo), Hi: min(a.Hi, b.Hi)}
	}
	region, err = FromBounds(bounds)
	if err != nil {
		return Extent{}, false, err
	}
	return region, true, nil
}

// Neighbor is one adjacency record of a pool query: the pool position of
// a neighboring extent and the overlap region shared with it.
type Neighbor struct {
	Index   int
	Overlap Extent
}

// Pool is an ordered sequence of extents, typically the sub-blocks of a
// decomposed structured grid. The order is significant: it identifies
// sub-blocks positionally and fixes the order of neighbor reports.
type Pool []Extent

// Neighbors reports all pool entries overlapping the entry at position i,
// in pool order, each with its overlap region.
//
// Self-exclusion is positional: slot i is skipped, never compared.
// Two distinct sub-blocks may carry identical bounds (e.g. duplicated
// blocks in a periodic decomposition) and still count as neighbors of
// one another.
//
// Returns ErrIndexOutOfBounds for an invalid position and
// ErrDimensionMismatch if the pool mixes dimensionalities.
func (p Pool) Neighbors(i int) ([]Neighbor, error) {
	if i < 0 || i >= len(p) {
		return nil, fmt.Errorf("%w: pool position %d of %d", ErrIndexOutOfBounds, i, len(p))
	}
	self := p[i]
	neighbors := make([]Neighbor, 0, len(p)-1)
	for j, candidate := range p {
		if j == i {
			continue
		}
		region, ok, err := self.Overlap(candidate)
		if err != nil {
			return nil, fmt.Errorf("pool position %d: %w", j, err)
		}
		if ok {
			neighbors = append(neighbors, Neighbor{Index: j, Overlap: region})
		}
	}
	T().Debugf("extent %d of pool has %d neighbors", i, len(neighbors))
	return neighbors, nil
}
