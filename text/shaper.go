package text

import (
	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// shapedGlyph is a glyph positioned relative to the pen origin of a run.
type shapedGlyph struct {
	ID      sfnt.GlyphIndex
	X, Y    float64 // Offset from the run origin, y down
	Advance float64
}

// shape converts text into positioned glyphs with HarfBuzz shaping via
// go-text/typesetting. Text is NFC-normalised first so precomposed glyphs
// are preferred over combining sequences.
func (s *FontSource) shape(text string, size float64) []shapedGlyph {
	if text == "" {
		return nil
	}
	runes := []rune(norm.NFC.String(text))

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// font.Face is not safe for concurrent use; it wraps the shared
		// read-only Font and is cheap to create per call.
		Face:     gotext.NewFace(s.shaping),
		Size:     floatToFixed(size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	s.mu.Lock()
	output := s.shaper.Shape(input)
	s.mu.Unlock()

	glyphs := make([]shapedGlyph, len(output.Glyphs))
	pen := 0.0
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = shapedGlyph{
			ID: sfnt.GlyphIndex(uint16(g.GlyphID)), //nolint:gosec // glyph ids of sfnt fonts fit in 16 bits
			X:  pen + fixedToFloat(g.XOffset),
			// Shaping offsets are y-up.
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		pen += adv
	}
	return glyphs
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text is shaped as a single run.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
