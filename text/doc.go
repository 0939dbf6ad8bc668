// Package text provides font loading, shaping and text drawing for backdrop.
//
// The text rendering pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight font resource (parses TTF, OTF and TTC files)
//   - Face: Lightweight font instance at a specific size
//   - Resolve: Ordered fallback over candidate font files
//
// Outline faces shape text with go-text/typesetting (kerning, ligatures) and
// rasterize glyph outlines from golang.org/x/image/font/sfnt with
// golang.org/x/image/vector. The built-in default face is the 7x13 bitmap
// font from golang.org/x/image/font/basicfont; it has a single size and is
// always available.
//
// # Example usage
//
//	res := text.Resolve([]string{
//	    "/System/Library/Fonts/Helvetica.ttc",
//	}, 32, 20)
//	title, body := res.Faces[0], res.Faces[1]
//
//	dc := backdrop.NewContext(800, 400)
//	dc.SetFont(title)
//	dc.DrawStringAnchored("Hello", 400, 60, 0.5, 0.5)
//	dc.SetFont(body)
//	dc.DrawStringAnchored("world", 400, 220, 0.5, 0.5)
package text
