package cartesian

import "errors"

var (
	// ErrInvalidGrid signals a grid size below one node on some axis.
	ErrInvalidGrid = errors.New("cartesian: invalid grid size")
	// ErrInvalidBox signals a physical box with inverted limits.
	ErrInvalidBox = errors.New("cartesian: invalid bounding box")
)
