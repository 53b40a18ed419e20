package digitize

import (
	"image"
	"image/color"
	"math"
)

// Resolution limits for the sampling grid side.
const (
	MinResolution = 2
	MaxResolution = 256
)

// IntensityGrid is a square grid of averaged gray intensities in [0, 255].
// Values keep their fractional part; At rounds them for display.
type IntensityGrid struct {
	size   int
	values []float64 // row-major
}

// NewIntensityGrid creates a zeroed size×size grid.
func NewIntensityGrid(size int) *IntensityGrid {
	return &IntensityGrid{
		size:   size,
		values: make([]float64, size*size),
	}
}

// Size returns the side length of the grid.
func (g *IntensityGrid) Size() int {
	return g.size
}

// Value returns the intensity of cell (x, y), or 0 outside the grid.
func (g *IntensityGrid) Value(x, y int) float64 {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return 0
	}
	return g.values[y*g.size+x]
}

// Set stores the intensity of cell (x, y). Coordinates outside the grid
// are ignored.
func (g *IntensityGrid) Set(x, y int, v float64) {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return
	}
	g.values[y*g.size+x] = v
}

// Rows returns a copy of the grid as a slice of rows.
func (g *IntensityGrid) Rows() [][]float64 {
	rows := make([][]float64, g.size)
	for y := range rows {
		rows[y] = append([]float64(nil), g.values[y*g.size:(y+1)*g.size]...)
	}
	return rows
}

// Clone returns an independent copy of g.
func (g *IntensityGrid) Clone() *IntensityGrid {
	return &IntensityGrid{
		size:   g.size,
		values: append([]float64(nil), g.values...),
	}
}

// Gray returns the rounded 8-bit intensity of cell (x, y).
func (g *IntensityGrid) Gray(x, y int) uint8 {
	return uint8(math.Round(clamp255(g.Value(x, y))))
}

// At implements the image.Image interface.
func (g *IntensityGrid) At(x, y int) color.Color {
	return color.Gray{Y: g.Gray(x, y)}
}

// Bounds implements the image.Image interface.
func (g *IntensityGrid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.size, g.size)
}

// ColorModel implements the image.Image interface.
func (g *IntensityGrid) ColorModel() color.Model {
	return color.GrayModel
}

func clamp255(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	default:
		return x
	}
}
