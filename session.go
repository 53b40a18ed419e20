package digitize

import (
	"fmt"
	"image"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Session holds the inputs of one digitization walk-through and the grids
// derived from them. Derived grids are recomputed explicitly whenever an
// input changes, never lazily.
//
// A Session is not safe for concurrent use.
type Session struct {
	source image.Image
	step   Step

	resolution int
	levels     int

	intensity *IntensityGrid
	palette   Palette
	// board is MaxResolution on a side; the selection is its top-left
	// R×R corner, so cells hidden by a smaller R come back when R grows.
	board  *SelectionGrid
	cursor int // row-major index of the cell the next Pick fills
}

// NewSession creates a session over a square source image.
//
// Example:
//
//	fig, _ := canvas.Figure(256)
//	s, err := digitize.NewSession(fig, digitize.WithResolution(8), digitize.WithLevels(4))
func NewSession(source image.Image, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	palette, err := NewPalette(o.levels)
	if err != nil {
		return nil, err
	}
	s := &Session{
		source:  source,
		levels:  o.levels,
		palette: palette,
	}
	if err := s.resample(o.resolution); err != nil {
		return nil, err
	}
	s.board = NewSelectionGrid(MaxResolution, s.palette)
	return s, nil
}

// Step returns the current wizard step.
func (s *Session) Step() Step {
	return s.step
}

// Next advances to the following step and reports whether it moved.
func (s *Session) Next() bool {
	if s.step >= StepResult {
		return false
	}
	s.enter(s.step + 1)
	return true
}

// Back returns to the previous step and reports whether it moved.
func (s *Session) Back() bool {
	if s.step <= StepSampling {
		return false
	}
	s.enter(s.step - 1)
	return true
}

func (s *Session) enter(step Step) {
	s.step = step
	if step == StepQuantization {
		s.cursor = 0
	}
	Logger().Debug("digitize: step", "step", step.String())
}

// Source returns the source image.
func (s *Session) Source() image.Image {
	return s.source
}

// SetSource replaces the source image and recomputes the intensity grid.
func (s *Session) SetSource(img image.Image) error {
	prev := s.source
	s.source = img
	if err := s.resample(s.resolution); err != nil {
		s.source = prev
		return err
	}
	return nil
}

// Resolution returns the grid side R.
func (s *Session) Resolution() int {
	return s.resolution
}

// SetResolution changes the grid side and recomputes the intensity grid.
// The selection shows the top-left r×r cells of the session's board:
// shrinking hides cells without discarding them.
func (s *Session) SetResolution(r int) error {
	if r == s.resolution {
		return nil
	}
	if err := s.resample(r); err != nil {
		return err
	}
	s.cursor = 0
	return nil
}

func (s *Session) resample(r int) error {
	grid, err := Downsample(s.source, r)
	if err != nil {
		return err
	}
	s.resolution = r
	s.intensity = grid
	Logger().Debug("digitize: intensity grid recomputed", "resolution", r)
	return nil
}

// Levels returns the gradation count G.
func (s *Session) Levels() int {
	return s.levels
}

// SetLevels changes the gradation count, regenerates the palette and
// snaps every selection that is no longer a level to the lowest level.
func (s *Session) SetLevels(g int) error {
	if g == s.levels {
		return nil
	}
	palette, err := NewPalette(g)
	if err != nil {
		return err
	}
	s.levels = g
	s.palette = palette
	changed := s.board.Resnap(palette)
	Logger().Debug("digitize: palette regenerated", "levels", g, "resnapped", changed)
	return nil
}

// Intensities returns a copy of the averaged grid of the current resolution.
func (s *Session) Intensities() *IntensityGrid {
	return s.intensity.Clone()
}

// Palette returns the current palette.
func (s *Session) Palette() Palette {
	return s.palette
}

// Selection returns a copy of the R×R selection grid.
func (s *Session) Selection() *SelectionGrid {
	return s.board.Resize(s.resolution, s.palette)
}

// Cursor returns the cell the next Pick fills.
func (s *Session) Cursor() (x, y int) {
	return s.cursor % s.resolution, s.cursor / s.resolution
}

// CursorIntensity returns the averaged intensity under the cursor.
func (s *Session) CursorIntensity() float64 {
	x, y := s.Cursor()
	return s.intensity.Value(x, y)
}

// Pick stores v in the cursor cell and advances the cursor in row-major
// order, wrapping after the last cell.
func (s *Session) Pick(v uint8) error {
	x, y := s.Cursor()
	if err := s.Select(x, y, v); err != nil {
		return err
	}
	s.cursor = (s.cursor + 1) % (s.resolution * s.resolution)
	return nil
}

// PickIndex is Pick with a palette index instead of a value.
func (s *Session) PickIndex(i int) error {
	if i < 0 || i >= s.palette.Len() {
		return fmt.Errorf("%w: palette index %d of %d", ErrOutOfRange, i, s.palette.Len())
	}
	return s.Pick(s.palette[i])
}

// Select stores v in cell (x, y) without moving the cursor.
func (s *Session) Select(x, y int, v uint8) error {
	if x < 0 || x >= s.resolution || y < 0 || y >= s.resolution {
		return fmt.Errorf("%w: cell (%d, %d) in %dx%d grid", ErrOutOfRange, x, y, s.resolution, s.resolution)
	}
	return s.board.Set(x, y, v, s.palette)
}

// AutoQuantize sets every cell to the palette level nearest its average.
func (s *Session) AutoQuantize() {
	s.board.paste(Quantize(s.intensity, s.palette))
}

// Fields returns the binary field of every cell in row-major order.
func (s *Session) Fields() ([]string, error) {
	return EncodeFields(s.Selection(), s.palette)
}

// Code returns the binary encoding of the selection grid.
func (s *Session) Code() (string, error) {
	return Encode(s.Selection(), s.palette)
}

// Summary returns the lines of the Result step in the given language:
// resolution, gradation and the data heading.
func (s *Session) Summary(tag language.Tag) []string {
	p := message.NewPrinter(tag)
	return []string{
		p.Sprintf(msgResolution, s.resolution, s.resolution),
		p.Sprintf(msgGradation, s.levels),
		p.Sprintf(msgData),
	}
}
