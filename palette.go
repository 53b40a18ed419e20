package digitize

import (
	"math/bits"
	"slices"
)

// Gradation limits. Level counts are powers of two so that every palette
// index fits exactly in Bits() binary digits.
const (
	MinLevels = 2
	MaxLevels = 16
)

// Palette is an ordered set of evenly spaced gray intensities.
// Palettes are immutable once created.
type Palette []uint8

// NewPalette creates a palette of levels intensities spread linearly over
// [0, 255]. Level i is floor(i/(levels-1) * 255).
//
// Example:
//
//	p, _ := digitize.NewPalette(4) // [0 85 170 255]
func NewPalette(levels int) (Palette, error) {
	if err := ValidateLevels(levels); err != nil {
		return nil, err
	}
	p := make(Palette, levels)
	for i := range p {
		// Integer form of floor(i/(levels-1)*255); exact for all i.
		p[i] = uint8(i * 255 / (levels - 1))
	}
	return p, nil
}

// ValidateLevels checks that levels is a power of two in [MinLevels, MaxLevels].
func ValidateLevels(levels int) error {
	if levels < MinLevels || levels > MaxLevels || !isPowerOfTwo(levels) {
		return &RangeError{Param: "levels", Value: levels, Min: MinLevels, Max: MaxLevels, Err: ErrInvalidLevels}
	}
	return nil
}

// Len returns the number of levels.
func (p Palette) Len() int {
	return len(p)
}

// Bits returns the width of one encoded field, log2(Len()).
func (p Palette) Bits() int {
	if len(p) < 2 {
		return 0
	}
	return bits.Len(uint(len(p) - 1))
}

// Index returns the position of v in the palette, or -1 if v is not a level.
// The search is linear; palettes have at most MaxLevels entries.
func (p Palette) Index(v uint8) int {
	for i, level := range p {
		if level == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is one of the palette levels.
func (p Palette) Contains(v uint8) bool {
	return p.Index(v) >= 0
}

// Nearest returns the level closest to intensity v.
// Ties resolve to the lower level.
func (p Palette) Nearest(v float64) uint8 {
	if len(p) == 0 {
		return 0
	}
	best := p[0]
	bestDist := abs(v - float64(best))
	for _, level := range p[1:] {
		if d := abs(v - float64(level)); d < bestDist {
			best, bestDist = level, d
		}
	}
	return best
}

// Equal reports whether two palettes hold the same levels.
func (p Palette) Equal(other Palette) bool {
	return slices.Equal(p, other)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
