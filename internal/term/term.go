// Package term prints digitization results to a terminal, coloring
// alternate code fields when the output is a TTY.
package term

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ANSI sequences used to tell neighbouring fields apart.
const (
	fieldEven = "\033[36m"
	fieldOdd  = "\033[33m"
	bold      = "\033[1m"
	reset     = "\033[0m"
)

// Writer is a buffered output with an optional color capability.
// Call Flush when done.
type Writer struct {
	w     *bufio.Writer
	color bool
}

// NewWriter wraps f. mode is "auto", "always" or "never"; with "auto",
// color is used when f is a terminal.
func NewWriter(f *os.File, mode string) *Writer {
	fd := f.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	color := mode == "always" || (mode == "auto" && tty)
	if color {
		return &Writer{w: bufio.NewWriter(colorable.NewColorable(f)), color: true}
	}
	return &Writer{w: bufio.NewWriter(f)}
}

// NewPlainWriter wraps an arbitrary writer. color forces escape sequences on or off.
func NewPlainWriter(w io.Writer, color bool) *Writer {
	return &Writer{w: bufio.NewWriter(w), color: color}
}

// Color reports whether escape sequences are written.
func (w *Writer) Color() bool {
	return w.color
}

// Heading writes a line, bold when color is enabled.
func (w *Writer) Heading(s string) {
	if w.color {
		_, _ = w.w.WriteString(bold + s + reset + "\n")
		return
	}
	_, _ = w.w.WriteString(s + "\n")
}

// Line writes s followed by a newline.
func (w *Writer) Line(s string) {
	_, _ = w.w.WriteString(s + "\n")
}

// Fields writes code fields perRow per line, alternating colors.
func (w *Writer) Fields(fields []string, perRow int) {
	if perRow <= 0 {
		perRow = len(fields)
	}
	for i, f := range fields {
		if w.color {
			c := fieldEven
			if i%2 == 1 {
				c = fieldOdd
			}
			_, _ = w.w.WriteString(c + f + reset)
		} else {
			_, _ = w.w.WriteString(f)
		}
		if (i+1)%perRow == 0 || i == len(fields)-1 {
			_ = w.w.WriteByte('\n')
		}
	}
}

// Flush writes any buffered data.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
