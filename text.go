package backdrop

import (
	"github.com/stonkrisk/backdrop/text"
)

// SetFont sets the current font face for text drawing.
//
// Example:
//
//	source, _ := text.NewFontSourceFromFile("font.ttf")
//	dc.SetFont(source.Face(20))
//
//	// Built-in bitmap face, always available
//	dc.SetFont(text.DefaultFace())
func (c *Context) SetFont(face text.Face) {
	c.face = face
}

// Font returns the current font face.
// Returns nil if no font has been set.
func (c *Context) Font() text.Face {
	return c.face
}

// DrawString draws text at position (x, y) where y is the baseline.
// If no font has been set with SetFont, this function does nothing.
func (c *Context) DrawString(s string, x, y float64) {
	if c.face == nil || c.closed {
		return
	}
	text.Draw(c.pixmap.Canvas(), s, c.face, x, y, c.paint.Color.Color())
}

// DrawStringAnchored draws text with an anchor point.
// The anchor point is specified by ax and ay, which are in the range [0, 1]
// and index the box spanned by the advance width and the face's
// ascent plus descent:
//
//	(0, 0) = top-left
//	(0.5, 0.5) = middle of the text (both axes)
//	(1, 1) = bottom-right
//
// The text is positioned so that the anchor point is at (x, y).
func (c *Context) DrawStringAnchored(s string, x, y, ax, ay float64) {
	if c.face == nil || c.closed {
		return
	}
	text.DrawAnchored(c.pixmap.Canvas(), s, c.face, x, y, ax, ay, c.paint.Color.Color())
}

// MeasureString returns the dimensions of text in pixels.
// Returns (width, height) where:
//   - width is the horizontal advance of the text
//   - height is the face's ascent plus descent
//
// If no font has been set, returns (0, 0).
func (c *Context) MeasureString(s string) (w, h float64) {
	if c.face == nil {
		return 0, 0
	}
	return text.Measure(s, c.face)
}

// LoadFontFace loads a font from a file and sets it as the current font.
// The size is specified in pixels per em.
func (c *Context) LoadFontFace(path string, size float64) error {
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return err
	}
	c.face = source.Face(size)
	return nil
}
