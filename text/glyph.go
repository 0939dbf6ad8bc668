package text

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// drawGlyph rasterizes one glyph outline with its origin at (x, y) and
// composites src through the coverage mask onto dst.
func (s *FontSource) drawGlyph(dst draw.Image, buf *sfnt.Buffer, id sfnt.GlyphIndex, ppem fixed.Int26_6, x, y float64, src image.Image) {
	segs, err := s.outline.LoadGlyph(buf, id, ppem, nil)
	if err != nil || len(segs) == 0 {
		return
	}

	minX, minY, maxX, maxY := segmentBounds(segs)
	rect := image.Rect(
		int(math.Floor(x+minX)), int(math.Floor(y+minY)),
		int(math.Ceil(x+maxX)), int(math.Ceil(y+maxY)),
	)
	if rect.Empty() || !rect.Overlaps(dst.Bounds()) {
		return
	}

	// Outline coordinates relative to the mask's top-left corner.
	dx := float32(x - float64(rect.Min.X))
	dy := float32(y - float64(rect.Min.Y))
	pt := func(p fixed.Point26_6) (float32, float32) {
		return dx + float32(p.X)/64, dy + float32(p.Y)/64
	}

	r := vector.NewRasterizer(rect.Dx(), rect.Dy())
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if open {
		r.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	draw.DrawMask(dst, rect, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// segmentBounds returns the control-point bounding box of an outline, in pixels.
func segmentBounds(segs sfnt.Segments) (minX, minY, maxX, maxY float64) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64

	for _, seg := range segs {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for _, p := range seg.Args[:n] {
			px, py := fixedToFloat(p.X), fixedToFloat(p.Y)
			minX = math.Min(minX, px)
			minY = math.Min(minY, py)
			maxX = math.Max(maxX, px)
			maxY = math.Max(maxY, py)
		}
	}
	return minX, minY, maxX, maxY
}
