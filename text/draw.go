package text

import (
	"image"
	"image/color"
	"image/draw"
)

// Draw renders text to a destination image.
// Position (x, y) is the baseline origin.
func Draw(dst draw.Image, text string, face Face, x, y float64, col color.Color) {
	if text == "" || face == nil {
		return
	}
	face.draw(dst, text, x, y, image.NewUniform(col))
}

// DrawAnchored renders text so that the anchor point (ax, ay) of its box
// lands on (x, y). The box spans the advance width horizontally and the
// face's ascent plus descent vertically; (0.5, 0.5) centres the text on
// both axes.
func DrawAnchored(dst draw.Image, text string, face Face, x, y, ax, ay float64, col color.Color) {
	if text == "" || face == nil {
		return
	}
	bx, by := AnchoredOrigin(text, face, x, y, ax, ay)
	Draw(dst, text, face, bx, by, col)
}

// AnchoredOrigin returns the baseline origin DrawAnchored uses.
func AnchoredOrigin(text string, face Face, x, y, ax, ay float64) (bx, by float64) {
	m := face.Metrics()
	w := face.Advance(text)
	return x - w*ax, y - m.Height()*ay + m.Ascent
}

// Measure returns the dimensions of text.
// Width is the horizontal advance, height is the face's ascent plus descent.
func Measure(text string, face Face) (width, height float64) {
	if text == "" || face == nil {
		return 0, 0
	}
	return face.Advance(text), face.Metrics().Height()
}
