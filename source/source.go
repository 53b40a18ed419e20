// Package source turns arbitrary pictures into square grayscale sources
// for digitize.Downsample.
//
// PNG, JPEG and GIF are decoded by the standard library; BMP and WebP are
// registered from golang.org/x/image.
package source

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/digitize"
)

// ErrInvalidSize is returned when the requested side is not positive.
var ErrInvalidSize = errors.New("source: invalid size")

// Filter is the resampling filter used to fit pictures to the source side.
var Filter = imaging.Lanczos

// Load opens the picture at path and prepares it with Prepare.
// EXIF orientation is honored.
func Load(path string, size int) (*image.Gray, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	digitize.Logger().Debug("source: loaded", "path", path,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return Prepare(img, size)
}

// Decode reads a picture from r and prepares it with Prepare.
func Decode(r io.Reader, size int) (*image.Gray, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("source: decode: %w", err)
	}
	return Prepare(img, size)
}

// Prepare center-crops img to a square, scales it to size×size and
// converts it to 8-bit gray.
func Prepare(img image.Image, size int) (*image.Gray, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	filled := imaging.Fill(img, size, size, imaging.Center, Filter)
	gray := imaging.Grayscale(filled)

	out := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Grayscale leaves R=G=B; keep the first channel.
			out.Pix[out.PixOffset(x, y)] = gray.Pix[gray.PixOffset(x, y)]
		}
	}
	return out, nil
}
