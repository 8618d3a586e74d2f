package core

import "errors"

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrDimensions is returned when a grid or snapshot has the wrong shape.
	ErrDimensions = errors.New("invalid dimensions")
)
