package text

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// bitmapFace adapts a fixed-size golang.org/x/image/font.Face.
type bitmapFace struct {
	face font.Face
}

// defaultFace is the built-in 7x13 bitmap face.
var defaultFace Face = &bitmapFace{face: basicfont.Face7x13}

// DefaultFace returns the built-in bitmap face. It is compiled into the
// binary, needs no font files, and ignores size requests: Size always
// reports its fixed 13 pixel line height.
func DefaultFace() Face {
	return defaultFace
}

// IsDefault reports whether f is the built-in bitmap face.
func IsDefault(f Face) bool {
	return f == defaultFace
}

// Metrics implements Face.Metrics.
func (f *bitmapFace) Metrics() Metrics {
	m := f.face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{Ascent: ascent, Descent: descent, LineGap: gap}
}

// Advance implements Face.Advance.
func (f *bitmapFace) Advance(text string) float64 {
	return fixedToFloat(font.MeasureString(f.face, text))
}

// Size implements Face.Size.
func (f *bitmapFace) Size() float64 {
	return fixedToFloat(f.face.Metrics().Height)
}

// draw implements Face. Bitmap glyphs land on whole pixels.
func (f *bitmapFace) draw(dst draw.Image, text string, x, y float64, src image.Image) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: f.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(text)
}
