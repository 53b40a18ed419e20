package digitize

import "fmt"

// SelectionGrid holds the palette value chosen for every cell of a
// sampling grid. All values belong to the palette the grid was last
// snapped to.
type SelectionGrid struct {
	size   int
	values []uint8 // row-major
}

// NewSelectionGrid creates a size×size grid with every cell set to the
// lowest palette level.
func NewSelectionGrid(size int, p Palette) *SelectionGrid {
	s := &SelectionGrid{
		size:   size,
		values: make([]uint8, size*size),
	}
	if len(p) > 0 {
		for i := range s.values {
			s.values[i] = p[0]
		}
	}
	return s
}

// Size returns the side length of the grid.
func (s *SelectionGrid) Size() int {
	return s.size
}

// Value returns the value of cell (x, y), or 0 outside the grid.
func (s *SelectionGrid) Value(x, y int) uint8 {
	if !s.inside(x, y) {
		return 0
	}
	return s.values[y*s.size+x]
}

// Gray returns the value of cell (x, y). It lets selection grids be drawn
// like intensity grids.
func (s *SelectionGrid) Gray(x, y int) uint8 {
	return s.Value(x, y)
}

// Set stores v in cell (x, y). v must be a level of p.
func (s *SelectionGrid) Set(x, y int, v uint8, p Palette) error {
	if !s.inside(x, y) {
		return fmt.Errorf("%w: cell (%d, %d) in %dx%d grid", ErrOutOfRange, x, y, s.size, s.size)
	}
	if !p.Contains(v) {
		return fmt.Errorf("%w: %d", ErrNotInPalette, v)
	}
	s.values[y*s.size+x] = v
	return nil
}

// Resnap replaces every value that is not a level of p with p[0].
// Values still present in p are kept. It returns the number of cells
// that changed.
func (s *SelectionGrid) Resnap(p Palette) int {
	if len(p) == 0 {
		return 0
	}
	changed := 0
	for i, v := range s.values {
		if !p.Contains(v) {
			s.values[i] = p[0]
			changed++
		}
	}
	return changed
}

// Resize returns a size×size grid that keeps the overlapping top-left
// cells of s. New cells hold p[0]; kept cells are resnapped to p.
func (s *SelectionGrid) Resize(size int, p Palette) *SelectionGrid {
	out := NewSelectionGrid(size, p)
	n := min(size, s.size)
	for y := 0; y < n; y++ {
		copy(out.values[y*size:y*size+n], s.values[y*s.size:y*s.size+n])
	}
	out.Resnap(p)
	return out
}

// paste copies src over the top-left cells of s.
func (s *SelectionGrid) paste(src *SelectionGrid) {
	n := min(s.size, src.size)
	for y := 0; y < n; y++ {
		copy(s.values[y*s.size:y*s.size+n], src.values[y*src.size:y*src.size+n])
	}
}

// Rows returns a copy of the grid as a slice of rows.
func (s *SelectionGrid) Rows() [][]uint8 {
	rows := make([][]uint8, s.size)
	for y := range rows {
		rows[y] = append([]uint8(nil), s.values[y*s.size:(y+1)*s.size]...)
	}
	return rows
}

// Clone returns an independent copy of s.
func (s *SelectionGrid) Clone() *SelectionGrid {
	return &SelectionGrid{
		size:   s.size,
		values: append([]uint8(nil), s.values...),
	}
}

func (s *SelectionGrid) inside(x, y int) bool {
	return x >= 0 && x < s.size && y >= 0 && y < s.size
}

// SelectionFromRows builds a grid from square rows of values. Every value
// must be a level of p.
func SelectionFromRows(rows [][]uint8, p Palette) (*SelectionGrid, error) {
	n := len(rows)
	s := &SelectionGrid{size: n, values: make([]uint8, 0, n*n)}
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, y, len(row), n)
		}
		for x, v := range row {
			if !p.Contains(v) {
				return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrNotInPalette, v, x, y)
			}
		}
		s.values = append(s.values, row...)
	}
	return s, nil
}

// Quantize maps every cell of g to its nearest palette level.
func Quantize(g *IntensityGrid, p Palette) *SelectionGrid {
	s := NewSelectionGrid(g.Size(), p)
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			s.values[y*s.size+x] = p.Nearest(g.Value(x, y))
		}
	}
	return s
}
