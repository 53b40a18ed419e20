package canvas

import (
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/digitize"
)

// DefaultGlyph is the character drawn over the gradient of the test figure.
const DefaultGlyph = "の"

// Gradient stops of the test figure: dark at the edges, white in the middle.
var (
	figureEdge   = gg.Hex("#444")
	figureCenter = gg.White
)

// FigureOption configures Figure.
type FigureOption func(*figureOptions)

type figureOptions struct {
	font  *text.FontSource
	glyph string
}

// WithFont draws the glyph with a face of the given font source instead
// of the built-in outline. Fonts lacking the glyph fall back to the
// outline when the glyph is DefaultGlyph, otherwise the glyph is skipped.
func WithFont(src *text.FontSource) FigureOption {
	return func(o *figureOptions) {
		o.font = src
	}
}

// WithGlyph replaces the drawn character. Custom glyphs require WithFont.
func WithGlyph(glyph string) FigureOption {
	return func(o *figureOptions) {
		o.glyph = glyph
	}
}

// Figure renders the size×size test image: a vertical #444 → #fff → #444
// gradient with a black glyph filling the canvas.
func Figure(size int, opts ...FigureOption) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: figure size %d", ErrInvalidSize, size)
	}
	o := figureOptions{glyph: DefaultGlyph}
	for _, opt := range opts {
		opt(&o)
	}

	s := float64(size)
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	grad := gg.NewLinearGradientBrush(0, 0, 0, s).
		AddColorStop(0, figureEdge).
		AddColorStop(0.5, figureCenter).
		AddColorStop(1, figureEdge)
	paintBrush(dc, grad, size)

	dc.SetRGB(0, 0, 0)
	switch {
	case o.font != nil && hasGlyphs(o.font.Face(s), o.glyph):
		drawTextGlyph(dc, o.font.Face(s), o.glyph, s)
	case o.glyph == DefaultGlyph:
		if o.font != nil {
			digitize.Logger().Warn("canvas: font lacks glyph, using outline",
				"font", o.font.Name(), "glyph", o.glyph)
		}
		if err := drawOutlineNo(dc, s); err != nil {
			return nil, err
		}
	default:
		digitize.Logger().Warn("canvas: glyph not drawable", "glyph", o.glyph)
	}

	return dc.Image(), nil
}

// paintBrush samples b at every pixel center.
func paintBrush(dc *gg.Context, b gg.Brush, size int) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dc.SetPixel(x, y, b.ColorAt(float64(x)+0.5, float64(y)+0.5))
		}
	}
}

func hasGlyphs(face text.Face, s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == utf8.RuneError || !face.HasGlyph(r) {
			return false
		}
	}
	return true
}

// drawTextGlyph draws s at x=0 with its em box vertically centered, the
// way a canvas fillText with a middle baseline does.
func drawTextGlyph(dc *gg.Context, face text.Face, s string, size float64) {
	m := face.Metrics()
	dc.SetFont(face)
	dc.DrawString(s, 0, size/2+(m.Ascent-m.Descent)/2)
}

// drawOutlineNo strokes a brush-like "の" in unit coordinates scaled to
// the canvas: the falling center stroke, the hook on the left and the
// loop closing over the top and right.
func drawOutlineNo(dc *gg.Context, size float64) error {
	p := func(v float64) float64 { return v * size }

	dc.SetStroke(gg.RoundStroke().WithWidth(size * 0.085))
	dc.MoveTo(p(0.50), p(0.26))
	dc.CubicTo(p(0.49), p(0.50), p(0.43), p(0.72), p(0.30), p(0.81))
	dc.CubicTo(p(0.19), p(0.88), p(0.09), p(0.76), p(0.12), p(0.57))
	dc.CubicTo(p(0.15), p(0.35), p(0.35), p(0.19), p(0.56), p(0.19))
	dc.CubicTo(p(0.79), p(0.19), p(0.93), p(0.38), p(0.90), p(0.57))
	dc.CubicTo(p(0.87), p(0.75), p(0.73), p(0.85), p(0.57), p(0.89))
	return dc.Stroke()
}
