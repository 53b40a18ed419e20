package canvas

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
)

// LabelSize is the pixel size of cell labels.
const LabelSize = 16

var (
	labelOnce   sync.Once
	labelSource *text.FontSource
	labelErr    error
)

// labelFace returns the Go Mono face used for cell and swatch labels.
// The font source is parsed once and shared.
func labelFace(size float64) (text.Face, error) {
	labelOnce.Do(func() {
		labelSource, labelErr = text.NewFontSource(gomono.TTF)
	})
	if labelErr != nil {
		return nil, labelErr
	}
	return labelSource.Face(size), nil
}
