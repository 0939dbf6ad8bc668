package backdrop

import (
	"github.com/stonkrisk/backdrop/internal/raster"
)

// SoftwareRenderer is a CPU-based aliased scanline rasterizer.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
	}
}

// Resize updates the renderer for new dimensions.
func (r *SoftwareRenderer) Resize(width, height int) {
	r.rasterizer = raster.NewRasterizer(width, height)
}

// convertPoints converts Point to raster.Point.
func convertPoints(points []Point) []raster.Point {
	result := make([]raster.Point, len(points))
	for i, p := range points {
		result[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return result
}

// Fill implements Renderer.Fill. Every subpath is closed implicitly.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	subpaths := p.Subpaths()
	polygons := make([][]raster.Point, 0, len(subpaths))
	for _, sp := range subpaths {
		polygons = append(polygons, convertPoints(sp.Points))
	}

	r.rasterizer.Fill(rasterTarget{pixmap: pixmap}, polygons, paint.FillRule.raster(), raster.RGBA(paint.Color))
	return nil
}

// Stroke implements Renderer.Stroke.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	target := rasterTarget{pixmap: pixmap}
	for _, sp := range p.Subpaths() {
		points := sp.Points
		if sp.Closed && len(points) > 1 {
			points = append(points, points[0])
		}
		r.rasterizer.Stroke(target, convertPoints(points), paint.LineWidth, paint.LineCap.raster(), raster.RGBA(paint.Color))
	}
	return nil
}
