package dmg

import (
	"fmt"
	"math"

	"github.com/stonkrisk/backdrop"
	"github.com/stonkrisk/backdrop/text"
)

// pixelCentre maps integer layout coordinates onto the rasterizer's
// pixel-centre sampling grid. It is also half a pixel.
const pixelCentre = 0.5

// Render draws the layout and returns the finished context along with the
// font resolution that served the text. The caller owns the context.
func Render(l Layout) (*backdrop.Context, text.Resolution, error) {
	dc := backdrop.NewContext(l.Width, l.Height, backdrop.WithBackground(l.Base))
	dc.VerticalGradient(backdrop.RowRamp(l.Base, 0, 0, l.BlueRamp))

	fonts := text.Resolve(l.Fonts, l.TitleSize, l.BodySize)
	titleFace, bodyFace := fonts.Face(0), fonts.Face(1)

	cx := l.CenterX()

	dc.SetFont(titleFace)
	dc.SetColor(l.TitleColor)
	dc.DrawStringAnchored(l.Title, cx, l.TitleY, 0.5, 0.5)

	dc.SetFont(bodyFace)
	dc.SetColor(l.BodyColor)
	for i, line := range l.Instructions {
		dc.DrawStringAnchored(line, cx, l.InstructionY(i), 0.5, 0.5)
	}

	if err := drawArrow(dc, l); err != nil {
		_ = dc.Close()
		return nil, fonts, err
	}

	return dc, fonts, nil
}

// drawArrow paints the shaft and head with their end points and vertices
// included, so the shaft covers columns ArrowFrom.X through ArrowTo.X and
// the head covers its three corner pixels.
func drawArrow(dc *backdrop.Context, l Layout) error {
	off := backdrop.Pt(pixelCentre, pixelCentre)
	from, to := inclusive(l.ArrowFrom.Add(off), l.ArrowTo.Add(off))

	dc.SetColor(l.ArrowColor)
	dc.SetLineWidth(l.ArrowWidth)
	dc.SetLineCap(backdrop.LineCapButt)
	dc.DrawLine(from.X, from.Y, to.X, to.Y)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("dmg: arrow line: %w", err)
	}

	head := l.ArrowHead()
	dc.DrawPolygon(head[0].Add(off), head[1].Add(off), head[2].Add(off))
	if err := dc.FillPreserve(); err != nil {
		return fmt.Errorf("dmg: arrow head: %w", err)
	}
	// A one pixel outline with square caps adds the edge and corner pixels.
	dc.SetLineWidth(1)
	dc.SetLineCap(backdrop.LineCapSquare)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("dmg: arrow head outline: %w", err)
	}
	return nil
}

// inclusive extends the segment a-b by half a pixel at both ends.
func inclusive(a, b backdrop.Point) (backdrop.Point, backdrop.Point) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return a, b
	}
	ex, ey := dx/length*pixelCentre, dy/length*pixelCentre
	return backdrop.Pt(a.X-ex, a.Y-ey), backdrop.Pt(b.X+ex, b.Y+ey)
}
