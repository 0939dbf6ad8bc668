package backdrop

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/stonkrisk/backdrop/text"
)

// Context is the main drawing context.
// It maintains a pixmap, current path, paint state, and font face.
// Context implements io.Closer for proper resource cleanup.
type Context struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer

	// Current state
	path  *Path
	paint *Paint
	face  text.Face // Current font face for text drawing

	// Paint stack for Push/Pop
	stack []*Paint

	// Lifecycle
	closed bool // Indicates whether Close has been called
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a new drawing context with the given dimensions.
// Optional ContextOption arguments configure the surface:
//
//	// Transparent surface
//	dc := backdrop.NewContext(800, 400)
//
//	// Opaque light gray surface
//	dc := backdrop.NewContext(800, 400, backdrop.WithBackground(backdrop.RGB(240, 240, 240)))
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer(width, height)
	}

	if options.background != nil {
		pixmap.Clear(*options.background)
	}

	return &Context{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: renderer,
		path:     NewPath(),
		paint:    NewPaint(),
		stack:    make([]*Paint, 0, 8),
	}
}

// NewContextForImage creates a context for drawing on a copy of an existing image.
func NewContextForImage(img image.Image, opts ...ContextOption) *Context {
	bounds := img.Bounds()
	opts = append([]ContextOption{WithPixmap(FromImage(img))}, opts...)
	return NewContext(bounds.Dx(), bounds.Dy(), opts...)
}

// Close releases resources associated with the Context.
// After Close, Fill and Stroke return ErrClosed.
// Close is idempotent - multiple calls are safe.
// Implements io.Closer.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.ClearPath()
	c.stack = nil
	c.face = nil

	return nil
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// Pixmap returns the pixel buffer the context draws into.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns a copy of the context's image.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// SavePNG saves the context to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// EncodePNG writes the image as PNG to the given writer.
// This is useful for streaming, hashing, or custom storage.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// Clear fills the entire context with transparent black.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the entire context with a specific color.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// VerticalGradient fills every row y with fn(y, height).
func (c *Context) VerticalGradient(fn RowColorFunc) {
	for y := 0; y < c.height; y++ {
		c.pixmap.FillRow(y, fn(y, c.height))
	}
}

// SetColor sets the current drawing color.
func (c *Context) SetColor(col color.Color) {
	c.paint.Color = FromColor(col)
}

// SetRGB sets the current color using 8-bit RGB values.
func (c *Context) SetRGB(r, g, b uint8) {
	c.paint.Color = RGB(r, g, b)
}

// SetHexColor sets the current color using a hex string.
func (c *Context) SetHexColor(hex string) {
	c.paint.Color = Hex(hex)
}

// SetLineWidth sets the line width for stroking.
func (c *Context) SetLineWidth(width float64) {
	c.paint.LineWidth = width
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lineCap LineCap) {
	c.paint.LineCap = lineCap
}

// SetFillRule sets the fill rule.
func (c *Context) SetFillRule(rule FillRule) {
	c.paint.FillRule = rule
}

// Paint returns a copy of the current paint.
func (c *Context) Paint() Paint {
	return *c.paint
}

// Push saves the current paint state.
func (c *Context) Push() {
	c.stack = append(c.stack, c.paint.Clone())
}

// Pop restores the last saved paint state.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.paint = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// GetCurrentPoint returns the current point of the path.
// Returns (0, 0, false) if there is no current point.
func (c *Context) GetCurrentPoint() (x, y float64, ok bool) {
	if c.path == nil || !c.path.HasCurrentPoint() {
		return 0, 0, false
	}
	pt := c.path.CurrentPoint()
	return pt.X, pt.Y, true
}

// DrawLine draws a line between two points.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// DrawRectangle draws a rectangle.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// DrawPolygon adds a closed polygon through the given points.
// Fewer than two points add nothing.
func (c *Context) DrawPolygon(points ...Point) {
	if len(points) < 2 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Fill fills the current path and clears it.
// Returns an error if the rendering operation fails.
func (c *Context) Fill() error {
	err := c.FillPreserve()
	c.path.Clear()
	return err
}

// Stroke strokes the current path and clears it.
// Returns an error if the rendering operation fails.
func (c *Context) Stroke() error {
	err := c.StrokePreserve()
	c.path.Clear()
	return err
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() error {
	if c.closed {
		return ErrClosed
	}
	return c.renderer.Fill(c.pixmap, c.path, c.paint)
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() error {
	if c.closed {
		return ErrClosed
	}
	return c.renderer.Stroke(c.pixmap, c.path, c.paint)
}

// SetPixel sets a single pixel.
func (c *Context) SetPixel(x, y int, col RGBA) {
	c.pixmap.SetPixel(x, y, col)
}

// Resize changes the context dimensions.
// If the dimensions haven't changed, this is a no-op.
// Returns an error if width or height is <= 0.
//
// After Resize the pixmap is reallocated (fully transparent) and the
// current path is cleared. Paint and font are preserved.
func (c *Context) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}

	if c.width == width && c.height == height {
		return nil
	}

	c.width = width
	c.height = height
	c.pixmap = NewPixmap(width, height)

	if sr, ok := c.renderer.(*SoftwareRenderer); ok {
		sr.Resize(width, height)
	}

	c.ClearPath()
	return nil
}
