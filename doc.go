// Package backdrop provides a small raster drawing surface for build-time
// image assets such as installer window backgrounds.
//
// # Overview
//
// backdrop offers an immediate-mode drawing API in the style of fogleman/gg:
// a Context owns an 8-bit RGBA pixel buffer, a current path and paint, and
// a current font face. A new buffer is fully transparent unless
// WithBackground is given. Drawing is deterministic, so rendering the same
// sequence twice produces byte-identical PNG output.
//
// # Quick Start
//
//	import "github.com/stonkrisk/backdrop"
//
//	// Create a drawing context (dc = drawing context convention)
//	dc := backdrop.NewContext(800, 400, backdrop.WithBackground(backdrop.RGB(240, 240, 240)))
//
//	// Draw an arrow shaft
//	dc.SetColor(backdrop.RGB(0, 150, 0))
//	dc.SetLineWidth(3)
//	dc.DrawLine(240.5, 180.5, 360.5, 180.5)
//	_ = dc.Stroke()
//
//	// Save to PNG
//	_ = dc.SavePNG("background.png")
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left corner of the top-left pixel
//   - X increases right, Y increases down
//   - Pixel (x, y) covers [x, x+1) × [y, y+1); its centre is (x+0.5, y+0.5)
//
// Fills and strokes are aliased: a pixel is painted when its centre lies
// inside the shape. Text is drawn by the text sub-package with coverage
// anti-aliasing.
package backdrop

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
