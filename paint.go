package backdrop

import "github.com/stonkrisk/backdrop/internal/raster"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// raster maps the fill rule to the rasterizer's enum.
func (r FillRule) raster() raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap at the end point.
	LineCapButt LineCap = iota
	// LineCapSquare specifies a square line cap extending half the line
	// width past the end point.
	LineCapSquare
)

func (c LineCap) raster() raster.LineCap {
	if c == LineCapSquare {
		return raster.LineCapSquare
	}
	return raster.LineCapButt
}

// Paint represents the styling information for drawing.
type Paint struct {
	// Color is used for fills, strokes and text. Translucent colors are
	// composited over the existing pixels.
	Color RGBA

	// LineWidth is the width of strokes.
	LineWidth float64

	// LineCap is the shape of line endpoints
	LineCap LineCap

	// FillRule is the fill rule for paths
	FillRule FillRule
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Color:     Black,
		LineWidth: 1.0,
		LineCap:   LineCapButt,
		FillRule:  FillRuleNonZero,
	}
}

// Clone creates a copy of the paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}
