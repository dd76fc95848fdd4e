package cartesian

import (
	"fmt"

	"github.com/solverkit/bsgrid"
	"gonum.org/v1/gonum/floats"
)

// Box is an axis-aligned physical bounding box in 3-space.
type Box struct {
	Min, Max [3]float64
}

// Grid generates a uniform Cartesian node grid with sizes[d] nodes per
// axis spanning box.
//
// It returns the index-space extent of the grid (bounds [1, sizes[d]]
// per dimension; planar grids use size 1 on the degenerate axis) and
// the nodal coordinates as interleaved x, y, z triples. Nodes appear in
// dictionary order with the first axis varying fastest, so the triple
// of a node with flat number n (per Extent.FlatIndices) starts at
// coords[3·(n−1)].
//
// Returns ErrInvalidGrid if some axis has fewer than one node and
// ErrInvalidBox if box.Max < box.Min on an axis with more than one
// node. A single-node axis collapses to box.Min of that axis.
func Grid(sizes [3]int, box Box) (bsgrid.Extent, []float64, error) {
	var axes [3][]float64
	for d, n := range sizes {
		switch {
		case n < 1:
			return bsgrid.Extent{}, nil, fmt.Errorf("%w: %d nodes on axis %d", ErrInvalidGrid, n, d)
		case n == 1:
			axes[d] = []float64{box.Min[d]}
		case box.Max[d] < box.Min[d]:
			return bsgrid.Extent{}, nil, fmt.Errorf("%w: [%g,%g] on axis %d",
				ErrInvalidBox, box.Min[d], box.Max[d], d)
		default:
			axes[d] = floats.Span(make([]float64, n), box.Min[d], box.Max[d])
		}
	}
	extent, err := bsgrid.FromFlat([]int{1, sizes[0], 1, sizes[1], 1, sizes[2]})
	if err != nil {
		return bsgrid.Extent{}, nil, err
	}
	coords := make([]float64, 0, 3*extent.NodeCount())
	for _, z := range axes[2] {
		for _, y := range axes[1] {
			for _, x := range axes[0] {
				coords = append(coords, x, y, z)
			}
		}
	}
	return extent, coords, nil
}
