package bsgrid

import "errors"

var (
	// ErrInvalidDimension signals malformed bound data: an odd-length flat
	// bound sequence, a dimension count that does not match the data, or a
	// bound pair with lo > hi.
	ErrInvalidDimension = errors.New("bsgrid: invalid dimension")
	// ErrDimensionMismatch signals two operands of different dimensionality.
	ErrDimensionMismatch = errors.New("bsgrid: dimension mismatch")
	// ErrIndexOutOfBounds signals an invalid positional index into a pool.
	ErrIndexOutOfBounds = errors.New("bsgrid: index out of bounds")
)
