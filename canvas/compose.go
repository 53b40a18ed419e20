package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// DefaultGap is the horizontal space between the two panels of SideBySide
// and the vertical space between rows of Stack.
const DefaultGap = 96

var arrowColor = gg.Hex("#333")

// SideBySide places left and right next to each other on a white
// background with an arrow in the gap between them, vertically centered.
func SideBySide(left, right image.Image, gap int) image.Image {
	lb, rb := left.Bounds(), right.Bounds()
	w := lb.Dx() + gap + rb.Dx()
	h := max(lb.Dy(), rb.Dy())

	base := whiteRGBA(w, h)
	xdraw.Copy(base, image.Pt(0, (h-lb.Dy())/2), left, lb, xdraw.Src, nil)
	xdraw.Copy(base, image.Pt(lb.Dx()+gap, (h-rb.Dy())/2), right, rb, xdraw.Src, nil)
	if gap <= 0 {
		return base
	}

	dc := gg.NewContextForImage(base)
	defer func() { _ = dc.Close() }()
	drawArrow(dc, float64(lb.Dx()), float64(gap), float64(h)/2)
	return dc.Image()
}

// drawArrow fills a right-pointing arrow inside the horizontal span
// [x0, x0+span] centered on y.
func drawArrow(dc *gg.Context, x0, span, y float64) {
	pad := span * 0.2
	left, right := x0+pad, x0+span-pad
	head := (right - left) * 0.45
	shaft := span * 0.06
	wing := span * 0.18

	dc.SetFillBrush(gg.Solid(arrowColor))
	dc.MoveTo(left, y-shaft)
	dc.LineTo(right-head, y-shaft)
	dc.LineTo(right-head, y-wing)
	dc.LineTo(right, y)
	dc.LineTo(right-head, y+wing)
	dc.LineTo(right-head, y+shaft)
	dc.LineTo(left, y+shaft)
	dc.ClosePath()
	_ = dc.Fill()
}

// Stack places images top to bottom, horizontally centered, separated by gap.
func Stack(gap int, imgs ...image.Image) image.Image {
	var w, h int
	for i, img := range imgs {
		b := img.Bounds()
		w = max(w, b.Dx())
		h += b.Dy()
		if i > 0 {
			h += gap
		}
	}

	base := whiteRGBA(w, h)
	y := 0
	for _, img := range imgs {
		b := img.Bounds()
		xdraw.Copy(base, image.Pt((w-b.Dx())/2, y), img, b, xdraw.Src, nil)
		y += b.Dy() + gap
	}
	return base
}

// Scale resizes img to size×size with Catmull-Rom resampling.
// Images already at that size are returned unchanged.
func Scale(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	return gg.FromImage(img).SavePNG(path)
}

func whiteRGBA(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	return img
}
