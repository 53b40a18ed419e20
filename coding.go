package digitize

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeFields returns the binary field of every cell in row-major order.
// Each field is the cell's palette index left-padded with zeros to
// p.Bits() digits.
func EncodeFields(s *SelectionGrid, p Palette) ([]string, error) {
	width := p.Bits()
	fields := make([]string, 0, s.size*s.size)
	for i, v := range s.values {
		idx := p.Index(v)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrNotInPalette, v, i%s.size, i/s.size)
		}
		fields = append(fields, FormatField(idx, width))
	}
	return fields, nil
}

// Encode concatenates the binary fields of all cells in row-major order.
//
// Example:
//
//	p, _ := digitize.NewPalette(2)
//	s, _ := digitize.SelectionFromRows([][]uint8{{0, 255}, {255, 0}}, p)
//	code, _ := digitize.Encode(s, p) // "0110"
func Encode(s *SelectionGrid, p Palette) (string, error) {
	fields, err := EncodeFields(s, p)
	if err != nil {
		return "", err
	}
	return strings.Join(fields, ""), nil
}

// FormatField renders index in base 2, left-padded to width digits.
func FormatField(index, width int) string {
	b := strconv.FormatInt(int64(index), 2)
	if len(b) >= width {
		return b
	}
	return strings.Repeat("0", width-len(b)) + b
}

// Decode parses a code produced by Encode back into an r×r selection grid.
func Decode(code string, r int, p Palette) (*SelectionGrid, error) {
	if err := ValidateResolution(r); err != nil {
		return nil, err
	}
	width := p.Bits()
	if width == 0 {
		return nil, fmt.Errorf("%w: palette has %d levels", ErrInvalidLevels, p.Len())
	}
	if want := r * r * width; len(code) != want {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrMalformedCode, len(code), want)
	}

	s := NewSelectionGrid(r, p)
	for i := range s.values {
		field := code[i*width : (i+1)*width]
		idx, err := strconv.ParseUint(field, 2, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d %q", ErrMalformedCode, i, field)
		}
		if int(idx) >= p.Len() {
			return nil, fmt.Errorf("%w: index %d", ErrOutOfRange, idx)
		}
		s.values[i] = p[idx]
	}
	return s, nil
}
