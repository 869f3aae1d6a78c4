package minefield

import "errors"

var (
	// ErrInvalidConfiguration is returned by New for out-of-range dimensions,
	// mine counts, fixed layouts or time limits.
	ErrInvalidConfiguration = errors.New("minefield: invalid configuration")

	// ErrCoordinateOutOfBounds is returned when a caller addresses a cell
	// outside the grid. It signals a caller bug, not a game event.
	ErrCoordinateOutOfBounds = errors.New("minefield: coordinate out of bounds")
)
