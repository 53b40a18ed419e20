package digitize

import (
	"fmt"
	"image"
)

// ValidateResolution checks that r is a power of two in [MinResolution, MaxResolution].
func ValidateResolution(r int) error {
	if r < MinResolution || r > MaxResolution || !isPowerOfTwo(r) {
		return &RangeError{Param: "resolution", Value: r, Min: MinResolution, Max: MaxResolution, Err: ErrInvalidResolution}
	}
	return nil
}

// Downsample reduces a square source image to an r×r grid. Each cell is
// the arithmetic mean of the first (red) channel over its block of
// (side/r)×(side/r) source pixels. Grayscale sources have equal channels,
// so the red channel is the intensity.
func Downsample(img image.Image, r int) (*IntensityGrid, error) {
	if err := ValidateResolution(r); err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() || b.Dx() == 0 || b.Dx()%r != 0 {
		return nil, fmt.Errorf("%w: %dx%d source, resolution %d", ErrSourceSize, b.Dx(), b.Dy(), r)
	}

	block := b.Dx() / r
	channel := firstChannel(img)
	grid := NewIntensityGrid(r)
	area := float64(block * block)

	for cy := 0; cy < r; cy++ {
		for cx := 0; cx < r; cx++ {
			var sum int
			x0 := b.Min.X + cx*block
			y0 := b.Min.Y + cy*block
			for y := y0; y < y0+block; y++ {
				for x := x0; x < x0+block; x++ {
					sum += int(channel(x, y))
				}
			}
			grid.Set(cx, cy, float64(sum)/area)
		}
	}

	Logger().Debug("digitize: downsampled", "source", b.Dx(), "resolution", r, "block", block)
	return grid, nil
}

// firstChannel returns an accessor for the 8-bit first channel of img,
// reading pixel buffers directly for the common concrete types.
func firstChannel(img image.Image) func(x, y int) uint8 {
	switch m := img.(type) {
	case *image.Gray:
		return func(x, y int) uint8 { return m.Pix[m.PixOffset(x, y)] }
	case *image.RGBA:
		return func(x, y int) uint8 { return m.Pix[m.PixOffset(x, y)] }
	case *image.NRGBA:
		return func(x, y int) uint8 { return m.Pix[m.PixOffset(x, y)] }
	default:
		return func(x, y int) uint8 {
			r, _, _, _ := img.At(x, y).RGBA()
			return uint8(r >> 8)
		}
	}
}
