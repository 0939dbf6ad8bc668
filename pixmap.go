package backdrop

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/stonkrisk/backdrop/internal/raster"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored premultiplied in image.RGBA layout, 4 bytes per pixel,
// so the buffer can be handed to image/draw and font drawers without copying.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new pixmap with the given dimensions.
// Every pixel starts fully transparent.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// premultiplied converts c to the stored representation.
func premultiplied(c RGBA) color.RGBA {
	if c.A == 255 {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	return color.RGBAModel.Convert(c.Color()).(color.RGBA)
}

// SetPixel sets the color of a single pixel, replacing what was there.
// Out-of-range writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return
	}
	p.img.SetRGBA(x, y, premultiplied(c))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// FillSpan fills pixels x1 (inclusive) to x2 (exclusive) of row y,
// replacing what was there.
func (p *Pixmap) FillSpan(x1, x2, y int, c RGBA) {
	if y < 0 || y >= p.Height() {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.Width() {
		x2 = p.Width()
	}
	if x1 >= x2 {
		return
	}

	pc := premultiplied(c)
	row := p.img.Pix[p.img.PixOffset(x1, y):p.img.PixOffset(x2, y)]
	for i := 0; i < len(row); i += 4 {
		row[i+0] = pc.R
		row[i+1] = pc.G
		row[i+2] = pc.B
		row[i+3] = pc.A
	}
}

// BlendSpan composites c over pixels x1 (inclusive) to x2 (exclusive) of
// row y. Opaque colors replace the pixels as FillSpan does.
func (p *Pixmap) BlendSpan(x1, x2, y int, c RGBA) {
	if c.A == 255 {
		p.FillSpan(x1, x2, y, c)
		return
	}
	if c.A == 0 {
		return
	}
	r := image.Rect(x1, y, x2, y+1).Intersect(p.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(p.img, r, image.NewUniform(c.Color()), image.Point{}, draw.Over)
}

// FillRow fills a whole row with a color.
func (p *Pixmap) FillRow(y int, c RGBA) {
	p.FillSpan(0, p.Width(), y, c)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	for y := 0; y < p.Height(); y++ {
		p.FillRow(y, c)
	}
}

// Canvas returns the pixmap as a draw.Image sharing its pixels.
// Writes through the returned image are visible in the pixmap.
func (p *Pixmap) Canvas() draw.Image {
	return p.img
}

// ToImage converts the pixmap to an image.RGBA.
// The returned image is a copy.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	draw.Draw(pm.img, pm.img.Rect, img, bounds.Min, draw.Src)
	return pm
}

// EncodePNG writes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file.
// The image is encoded in memory first so an encoding failure never
// truncates an existing file. The parent directory must exist.
func (p *Pixmap) SavePNG(path string) error {
	var buf bytes.Buffer
	if err := p.EncodePNG(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644) //nolint:gosec // build assets are world-readable
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// rasterTarget adapts Pixmap to the raster.Pixmap and raster.SpanFiller
// interfaces. Rasterized paint is composited over the existing pixels.
type rasterTarget struct {
	pixmap *Pixmap
}

func (t rasterTarget) Width() int  { return t.pixmap.Width() }
func (t rasterTarget) Height() int { return t.pixmap.Height() }

func (t rasterTarget) SetPixel(x, y int, c raster.RGBA) {
	t.pixmap.BlendSpan(x, x+1, y, RGBA(c))
}

func (t rasterTarget) FillSpan(x1, x2, y int, c raster.RGBA) {
	t.pixmap.BlendSpan(x1, x2, y, RGBA(c))
}
