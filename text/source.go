package text

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// Collections (TTC/OTC) are supported; the first face of a collection is used.
// The file is parsed twice: by golang.org/x/image/font/sfnt for metrics and
// glyph outlines, and by go-text/typesetting for shaping. Both parsers must
// accept the data.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data    []byte
	outline *sfnt.Font
	shaping *gotext.Font

	name string

	// mu guards shaper, which is not safe for concurrent use.
	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
}

// NewFontSource creates a FontSource from font data (TTF, OTF or TTC).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	// ParseCollection also accepts a single font, returning one face.
	coll, err := opentype.ParseCollection(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	if coll.NumFonts() == 0 {
		return nil, ErrNoFaces
	}
	outline, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load face 0: %w", err)
	}

	faces, err := gotext.ParseTTC(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}

	s := &FontSource{
		data:    dataCopy,
		outline: outline,
		shaping: faces[0].Font,
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(outline)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

// Face creates a Face at the specified size in pixels per em.
// Multiple faces can be created from the same FontSource.
// Panics if s is nil (e.g. when the NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64) Face {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSourceFromFile")
	}
	s.copyCheck()
	return &outlineFace{source: s, size: size}
}

// NewFace is like Face but validates the size.
func (s *FontSource) NewFace(size float64) (Face, error) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return s.Face(size), nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()
	return s.outline.NumGlyphs()
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
