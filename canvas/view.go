package canvas

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Cells is a square grid of gray levels. Both digitize.IntensityGrid and
// digitize.SelectionGrid satisfy it.
type Cells interface {
	Size() int
	Gray(x, y int) uint8
}

// Colors of the grid decorations.
var (
	gridLineColor  = gg.White
	highlightColor = gg.Red
	labelColor     = gg.Blue
)

// labelInset is the offset of a cell label from the cell's top-left corner.
const labelInset = 4

// ViewOption configures GridView.
type ViewOption func(*viewOptions)

type viewOptions struct {
	highlight   bool
	hx, hy      int
	labels      []string
	gridLines   bool
	labelSize   float64
	minLabelGap int
}

func defaultViewOptions() viewOptions {
	return viewOptions{
		gridLines:   true,
		labelSize:   LabelSize,
		minLabelGap: LabelSize + labelInset,
	}
}

// WithHighlight outlines cell (x, y) in red.
func WithHighlight(x, y int) ViewOption {
	return func(o *viewOptions) {
		o.highlight = true
		o.hx, o.hy = x, y
	}
}

// WithLabels writes one label per cell in row-major order, in blue at the
// cell's top-left corner. Labels are skipped when cells are too small to
// hold them.
func WithLabels(labels []string) ViewOption {
	return func(o *viewOptions) {
		o.labels = labels
	}
}

// WithoutGridLines disables the white cell separators.
func WithoutGridLines() ViewOption {
	return func(o *viewOptions) {
		o.gridLines = false
	}
}

// GridView renders cells on a size×size canvas. Every cell becomes a
// (size/R)×(size/R) square of its gray level.
func GridView(cells Cells, size int, opts ...ViewOption) (image.Image, error) {
	dc, err := gridContext(cells, size, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dc.Close() }()
	return dc.Image(), nil
}

func gridContext(cells Cells, size int, opts ...ViewOption) (*gg.Context, error) {
	r := cells.Size()
	if r <= 0 || size <= 0 || size%r != 0 {
		return nil, fmt.Errorf("%w: %d px view of %dx%d grid", ErrInvalidSize, size, r, r)
	}
	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.labels != nil && len(o.labels) != r*r {
		return nil, fmt.Errorf("%w: %d labels for %d cells", ErrLabelCount, len(o.labels), r*r)
	}

	cell := size / r
	dc := gg.NewContext(size, size)
	fillCells(dc, cells, cell)

	if o.gridLines {
		drawGridLines(dc, size, cell)
	}
	if o.highlight {
		if err := drawHighlight(dc, o.hx, o.hy, cell); err != nil {
			_ = dc.Close()
			return nil, err
		}
	}
	if o.labels != nil && cell >= o.minLabelGap {
		face, err := labelFace(o.labelSize)
		if err != nil {
			_ = dc.Close()
			return nil, err
		}
		drawLabels(dc, face, o.labels, r, cell)
	}
	return dc, nil
}

// fillCells writes cell colors pixel by pixel so cell edges stay exact.
func fillCells(dc *gg.Context, cells Cells, cell int) {
	r := cells.Size()
	for cy := 0; cy < r; cy++ {
		for cx := 0; cx < r; cx++ {
			v := float64(cells.Gray(cx, cy)) / 255
			c := gg.RGB(v, v, v)
			for y := cy * cell; y < (cy+1)*cell; y++ {
				for x := cx * cell; x < (cx+1)*cell; x++ {
					dc.SetPixel(x, y, c)
				}
			}
		}
	}
}

// drawGridLines draws a 1px white row and column at every cell boundary.
func drawGridLines(dc *gg.Context, size, cell int) {
	s := float64(size)
	dc.SetFillBrush(gg.Solid(gridLineColor))
	for i := 0; i < size; i += cell {
		f := float64(i)
		dc.DrawRectangle(f, 0, 1, s)
		dc.DrawRectangle(0, f, s, 1)
	}
	_ = dc.Fill()
}

func drawHighlight(dc *gg.Context, x, y, cell int) error {
	c := float64(cell)
	dc.SetFillBrush(gg.Solid(highlightColor))
	dc.SetStroke(gg.DefaultStroke().WithWidth(2))
	dc.DrawRectangle(float64(x)*c, float64(y)*c, c, c)
	return dc.Stroke()
}

func drawLabels(dc *gg.Context, face text.Face, labels []string, r, cell int) {
	ascent := face.Metrics().Ascent
	dc.SetFont(face)
	dc.SetFillBrush(gg.Solid(labelColor))
	for i, label := range labels {
		x := float64((i%r)*cell + labelInset)
		y := float64((i/r)*cell+labelInset) + ascent
		dc.DrawString(label, x, y)
	}
}
