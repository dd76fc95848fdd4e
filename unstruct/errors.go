package unstruct

import "errors"

var (
	// ErrDegenerateGeometry signals a block with fewer than two active
	// dimensions, which induces no surface or volume elements.
	ErrDegenerateGeometry = errors.New("unstruct: degenerate geometry")
	// ErrNoConnectivity signals a conversion without a connectivity sink.
	ErrNoConnectivity = errors.New("unstruct: no connectivity sink")
)
