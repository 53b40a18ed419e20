package canvas

import (
	"image"
	"strconv"

	"github.com/gogpu/gg"

	"github.com/gogpu/digitize"
)

// SwatchSize is the side of one palette swatch.
const SwatchSize = 64

const swatchGap = 2

// PaletteStrip renders one swatch per palette level, left to right, each
// with a black border and its index written in blue.
func PaletteStrip(p digitize.Palette, swatch int) (image.Image, error) {
	n := p.Len()
	w := n*swatch + (n-1)*swatchGap
	dc := gg.NewContext(max(w, 1), swatch)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)

	face, err := labelFace(LabelSize)
	if err != nil {
		return nil, err
	}
	dc.SetFont(face)
	s := float64(swatch)
	for i, level := range p {
		x := float64(i * (swatch + swatchGap))
		v := float64(level) / 255

		dc.SetRGB(v, v, v)
		dc.DrawRectangle(x, 0, s, s)
		if err := dc.Fill(); err != nil {
			return nil, err
		}
		dc.SetRGB(0, 0, 0)
		dc.SetStroke(gg.DefaultStroke().WithWidth(2))
		dc.DrawRectangle(x, 0, s, s)
		if err := dc.Stroke(); err != nil {
			return nil, err
		}
		dc.SetFillBrush(gg.Solid(labelColor))
		dc.DrawString(strconv.Itoa(i), x+labelInset, labelInset+face.Metrics().Ascent)
	}
	return dc.Image(), nil
}

// IntensityBar renders a width×height bar of the gray intensity v with a
// red border: the reference shown while quantizing the highlighted cell.
func IntensityBar(v float64, width, height int) (image.Image, error) {
	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	g := v / 255
	dc.SetRGB(g, g, g)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	dc.SetFillBrush(gg.Solid(highlightColor))
	dc.SetStroke(gg.DefaultStroke().WithWidth(2))
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Stroke(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}
