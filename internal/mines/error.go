package mines

import "errors"

var (
	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the given rows, cols and mine count.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned for an index or position outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrMinesPlaced is returned when mines are placed a second time.
	ErrMinesPlaced = errors.New("mines already placed")
)
