package dmg

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/stonkrisk/backdrop"
	"github.com/stonkrisk/backdrop/text"
)

// ErrMissingCapability is returned when the imaging stack cannot render
// or encode. Nothing has been drawn or written when it is returned.
var ErrMissingCapability = errors.New("dmg: imaging capability unavailable")

// InstallHint tells the user how to get a working build.
const InstallHint = "Imaging support is required. Please install it with: go install github.com/stonkrisk/backdrop/cmd/dmg-background@latest"

// CheckCapability verifies that the built-in face rasterizes a glyph and
// that the PNG encoder accepts a surface.
func CheckCapability() error {
	face := text.DefaultFace()
	if face == nil || face.Advance("A") <= 0 {
		return fmt.Errorf("%w: built-in font face has no glyphs", ErrMissingCapability)
	}

	dc := backdrop.NewContext(16, 16)
	defer dc.Close()
	dc.SetFont(face)
	dc.DrawString("A", 2, 13)
	if !hasInk(dc.Pixmap()) {
		return fmt.Errorf("%w: text rendering produced no pixels", ErrMissingCapability)
	}

	probe := backdrop.NewPixmap(1, 1)
	probe.SetPixel(0, 0, backdrop.White)
	var buf bytes.Buffer
	if err := probe.EncodePNG(&buf); err != nil {
		return fmt.Errorf("%w: png encoder: %w", ErrMissingCapability, err)
	}
	return nil
}

func hasInk(pm *backdrop.Pixmap) bool {
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}
