// Package raster provides aliased scanline rasterization for polygons.
//
// Pixels are sampled at their centres: pixel (x, y) is inside a shape when
// the point (x+0.5, y+0.5) is. No coverage blending takes place, so every
// written pixel carries exactly the requested colour.
package raster

import "math"

// RGBA represents an 8-bit color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A uint8
}

// Pixmap is an interface for writing pixels (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// SpanFiller is an optional interface that pixmaps can implement for optimized span filling.
// The span covers x1 inclusive to x2 exclusive.
type SpanFiller interface {
	FillSpan(x1, x2, y int, c RGBA)
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// LineCap specifies the shape of segment ends.
type LineCap int

const (
	// LineCapButt ends a segment exactly at its end points.
	LineCapButt LineCap = iota
	// LineCapSquare extends a segment by half the line width at both ends.
	LineCapSquare
)

// Rasterizer performs scanline rasterization.
type Rasterizer struct {
	width  int
	height int
	aet    *ActiveEdgeTable
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		aet:    NewActiveEdgeTable(),
	}
}

// Fill rasterizes a set of polygons onto a pixmap. Each polygon is closed
// implicitly; polygons with fewer than three points cover no area.
func (r *Rasterizer) Fill(pixmap Pixmap, polygons [][]Point, fillRule FillRule, color RGBA) {
	edges := buildEdges(polygons)
	if len(edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	// Rows whose centre lies in [yMin, yMax).
	first := int(math.Ceil(yMin - 0.5))
	last := int(math.Ceil(yMax - 0.5))
	if first < 0 {
		first = 0
	}
	if last > pixmap.Height() {
		last = pixmap.Height()
	}

	for y := first; y < last; y++ {
		r.scanline(pixmap, edges, y, fillRule, color)
	}
}

// buildEdges converts polygons to non-horizontal edges.
func buildEdges(polygons [][]Point) []Edge {
	var edges []Edge
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		for i := range poly {
			p0 := poly[i]
			p1 := poly[(i+1)%len(poly)]
			if p0.Y == p1.Y {
				continue
			}
			edges = append(edges, NewEdge(p0, p1))
		}
	}
	return edges
}

// scanline processes a single row.
func (r *Rasterizer) scanline(pixmap Pixmap, edges []Edge, y int, fillRule FillRule, color RGBA) {
	r.aet.Clear()

	scanY := float64(y) + 0.5
	for i := range edges {
		if edges[i].Covers(scanY) {
			r.aet.AddAtY(edges[i], scanY)
		}
	}

	if r.aet.Len() == 0 {
		return
	}

	r.aet.Sort()

	if fillRule == FillRuleNonZero {
		r.fillNonZero(pixmap, r.aet.Edges(), y, color)
	} else {
		r.fillEvenOdd(pixmap, r.aet.Edges(), y, color)
	}
}

// fillNonZero fills using the non-zero winding rule.
func (r *Rasterizer) fillNonZero(pixmap Pixmap, edges []ActiveEdge, y int, color RGBA) {
	winding := 0
	var x1 float64

	for _, edge := range edges {
		if winding == 0 {
			x1 = edge.x
		}

		winding += edge.dir

		if winding == 0 {
			r.fillSpan(pixmap, x1, edge.x, y, color)
		}
	}
}

// fillEvenOdd fills using the even-odd rule.
func (r *Rasterizer) fillEvenOdd(pixmap Pixmap, edges []ActiveEdge, y int, color RGBA) {
	for i := 0; i+1 < len(edges); i += 2 {
		r.fillSpan(pixmap, edges[i].x, edges[i+1].x, y, color)
	}
}

// fillSpan fills the pixels whose centres lie in [x1, x2).
func (r *Rasterizer) fillSpan(pixmap Pixmap, x1, x2 float64, y int, color RGBA) {
	if y < 0 || y >= pixmap.Height() {
		return
	}

	start := int(math.Ceil(x1 - 0.5))
	end := int(math.Ceil(x2 - 0.5))

	if start < 0 {
		start = 0
	}
	if end > pixmap.Width() {
		end = pixmap.Width()
	}
	if start >= end {
		return
	}

	if spanFiller, ok := pixmap.(SpanFiller); ok {
		spanFiller.FillSpan(start, end, y, color)
		return
	}

	for x := start; x < end; x++ {
		pixmap.SetPixel(x, y, color)
	}
}

// Stroke rasterizes a polyline as a chain of thick segments.
// Widths below one pixel are widened to one pixel. With LineCapSquare
// every segment is extended at both ends, which also closes the joints.
func (r *Rasterizer) Stroke(pixmap Pixmap, points []Point, lineWidth float64, lineCap LineCap, color RGBA) {
	if len(points) < 2 {
		return
	}

	if lineWidth < 1 {
		lineWidth = 1
	}

	quads := make([][]Point, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		if q, ok := segmentQuad(points[i], points[i+1], lineWidth, lineCap); ok {
			quads = append(quads, q)
		}
	}
	// Segments are filled together so joints are not painted twice.
	r.Fill(pixmap, quads, FillRuleNonZero, color)
}

// segmentQuad returns the rectangle swept by a segment of the given width.
func segmentQuad(p0, p1 Point, width float64, lineCap LineCap) ([]Point, bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)

	if length < 0.001 {
		return nil, false
	}

	if lineCap == LineCapSquare {
		ex := dx / length * width / 2
		ey := dy / length * width / 2
		p0 = Point{X: p0.X - ex, Y: p0.Y - ey}
		p1 = Point{X: p1.X + ex, Y: p1.Y + ey}
	}

	// Perpendicular offset of half the width.
	offset := width / 2
	nx := -dy / length * offset
	ny := dx / length * offset

	return []Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p0.X - nx, Y: p0.Y - ny},
	}, true
}
