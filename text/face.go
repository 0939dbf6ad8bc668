package text

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face represents a font face at a specific size.
// This is a lightweight object created from a FontSource, or the built-in
// face returned by DefaultFace.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels.
	Advance(text string) float64

	// Size returns the size of this face in pixels per em.
	Size() float64

	// draw renders text with its baseline origin at (x, y).
	draw(dst draw.Image, text string, x, y float64, src image.Image)
}

// outlineFace is a FontSource at a given size.
type outlineFace struct {
	source *FontSource
	size   float64
}

// ppem returns the size as 26.6 fixed point.
func (f *outlineFace) ppem() fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f.size * 64))
}

// Metrics implements Face.Metrics.
func (f *outlineFace) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.outline.Metrics(&buf, f.ppem(), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := math.Abs(fixedToFloat(m.Descent))
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}

	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: gap,
	}
}

// Advance implements Face.Advance.
func (f *outlineFace) Advance(text string) float64 {
	total := 0.0
	for _, g := range f.source.shape(text, f.size) {
		total += g.Advance
	}
	return total
}

// Size implements Face.Size.
func (f *outlineFace) Size() float64 {
	return f.size
}

// draw implements Face.
func (f *outlineFace) draw(dst draw.Image, text string, x, y float64, src image.Image) {
	var buf sfnt.Buffer
	for _, g := range f.source.shape(text, f.size) {
		f.source.drawGlyph(dst, &buf, g.ID, f.ppem(), x+g.X, y+g.Y, src)
	}
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
