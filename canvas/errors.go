package canvas

import "errors"

// Sentinel errors for the canvas package.
var (
	// ErrInvalidSize is returned when a view size is not positive or not a
	// multiple of the grid side.
	ErrInvalidSize = errors.New("canvas: invalid size")

	// ErrLabelCount is returned when the number of labels does not match
	// the number of cells.
	ErrLabelCount = errors.New("canvas: label count mismatch")
)
