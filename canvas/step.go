package canvas

import (
	"image"
	"strconv"

	"github.com/gogpu/digitize"
)

// RenderStep draws the view of the session's current step. Grid panels
// are size×size; size must be a multiple of the session resolution.
//
//   - Sampling: source figure → averaged grid
//   - Quantization: palette swatches, the intensity under the cursor, and
//     averaged grid (cursor outlined) → selection with palette indices
//   - Coding: selection with indices → selection with binary fields
//   - Result: the grid decoded back from the binary code
func RenderStep(s *digitize.Session, size int) (image.Image, error) {
	switch s.Step() {
	case digitize.StepSampling:
		return renderSampling(s, size)
	case digitize.StepQuantization:
		return renderQuantization(s, size)
	case digitize.StepCoding:
		return renderCoding(s, size)
	default:
		return renderResult(s, size)
	}
}

func renderSampling(s *digitize.Session, size int) (image.Image, error) {
	after, err := GridView(s.Intensities(), size)
	if err != nil {
		return nil, err
	}
	return SideBySide(Scale(s.Source(), size), after, DefaultGap), nil
}

func renderQuantization(s *digitize.Session, size int) (image.Image, error) {
	x, y := s.Cursor()
	before, err := GridView(s.Intensities(), size, WithHighlight(x, y))
	if err != nil {
		return nil, err
	}
	after, err := GridView(s.Selection(), size, WithLabels(indexLabels(s)))
	if err != nil {
		return nil, err
	}
	strip, err := PaletteStrip(s.Palette(), SwatchSize)
	if err != nil {
		return nil, err
	}
	panels := SideBySide(before, after, DefaultGap)
	bar, err := IntensityBar(s.CursorIntensity(), panels.Bounds().Dx(), SwatchSize)
	if err != nil {
		return nil, err
	}
	return Stack(labelInset, strip, bar, panels), nil
}

func renderCoding(s *digitize.Session, size int) (image.Image, error) {
	fields, err := s.Fields()
	if err != nil {
		return nil, err
	}
	before, err := GridView(s.Selection(), size, WithLabels(indexLabels(s)))
	if err != nil {
		return nil, err
	}
	after, err := GridView(s.Selection(), size, WithLabels(fields))
	if err != nil {
		return nil, err
	}
	return SideBySide(before, after, DefaultGap), nil
}

func renderResult(s *digitize.Session, size int) (image.Image, error) {
	code, err := s.Code()
	if err != nil {
		return nil, err
	}
	decoded, err := digitize.Decode(code, s.Resolution(), s.Palette())
	if err != nil {
		return nil, err
	}
	return GridView(decoded, size, WithoutGridLines())
}

func indexLabels(s *digitize.Session) []string {
	sel := s.Selection()
	p := s.Palette()
	r := sel.Size()
	labels := make([]string, 0, r*r)
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			labels = append(labels, strconv.Itoa(p.Index(sel.Value(x, y))))
		}
	}
	return labels
}
