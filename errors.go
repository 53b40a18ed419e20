package digitize

import (
	"errors"
	"fmt"
)

// Sentinel errors for the digitize package.
var (
	// ErrInvalidResolution is returned when a grid side is not a power of
	// two in [MinResolution, MaxResolution].
	ErrInvalidResolution = errors.New("digitize: invalid resolution")

	// ErrInvalidLevels is returned when a gradation count is not a power
	// of two in [MinLevels, MaxLevels].
	ErrInvalidLevels = errors.New("digitize: invalid gradation levels")

	// ErrSourceSize is returned when a source image is not square or its
	// side is not divisible by the requested resolution.
	ErrSourceSize = errors.New("digitize: source size incompatible with resolution")

	// ErrNotInPalette is returned when a value is not one of the palette levels.
	ErrNotInPalette = errors.New("digitize: value not in palette")

	// ErrOutOfRange is returned for cell coordinates or palette indices
	// outside the grid or palette.
	ErrOutOfRange = errors.New("digitize: out of range")

	// ErrMalformedCode is returned when a binary string cannot be decoded.
	ErrMalformedCode = errors.New("digitize: malformed code")

	// ErrShapeMismatch is returned when grids of different sizes are combined.
	ErrShapeMismatch = errors.New("digitize: grid shape mismatch")
)

// RangeError reports a parameter outside its allowed set.
// It unwraps to the matching sentinel (ErrInvalidResolution or ErrInvalidLevels).
type RangeError struct {
	Param string
	Value int
	Min   int
	Max   int
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s=%d, want a power of two in [%d, %d]", e.Err, e.Param, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
