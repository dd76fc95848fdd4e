package bsgrid

import (
	"sync"

	"github.com/guiguan/caster"
)

// AdjacencyRow is the complete neighbor list of one pool position, as
// broadcast by BuildAdjacency while the full adjacency is being built.
type AdjacencyRow struct {
	Index     int
	Neighbors []Neighbor
}

// BuildAdjacency computes the neighbor lists of every pool position.
//
// Row i of the result equals Neighbors(i). Rows are computed by one
// goroutine per pool position: the pool is read-only during the build
// and every row owns its result slice, so the queries are independent.
// The returned adjacency is indexed by pool position and therefore
// deterministic regardless of completion order.
//
// If cast is non-nil, every finished row is published to it as an
// AdjacencyRow, so a decomposition or communication layer can start
// consuming neighbor lists before the whole adjacency exists. The
// caster's lifecycle (and its Close) stays with the caller; rows arrive
// in completion order, identified by their Index.
//
// The first query error aborts the result; published rows before the
// error are still delivered.
func (p Pool) BuildAdjacency(cast *caster.Caster) ([][]Neighbor, error) {
	adjacency := make([][]Neighbor, len(p))
	errs := make([]error, len(p))
	var wg sync.WaitGroup
	for i := range p {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			row, err := p.Neighbors(i)
			if err != nil {
				errs[i] = err
				return
			}
			adjacency[i] = row
			if cast != nil {
				cast.Pub(AdjacencyRow{Index: i, Neighbors: row})
			}
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	T().Debugf("built adjacency for pool of %d extents", len(p))
	return adjacency, nil
}
