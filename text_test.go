package backdrop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stonkrisk/backdrop/text"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDrawStringWithoutFont(t *testing.T) {
	dc := NewContext(50, 20)
	dc.DrawString("Hello", 5, 15)
	dc.DrawStringAnchored("Hello", 25, 10, 0.5, 0.5)

	if n := countColor(dc.Pixmap(), Transparent); n != 50*20 {
		t.Errorf("pixels drawn without a font: %d", 50*20-n)
	}
	if w, h := dc.MeasureString("Hello"); w != 0 || h != 0 {
		t.Errorf("MeasureString without font = (%v, %v), want (0, 0)", w, h)
	}
}

func TestDrawStringAnchored(t *testing.T) {
	dc := NewContext(200, 40, WithBackground(White))
	dc.SetFont(text.DefaultFace())
	dc.SetRGB(50, 50, 50)
	dc.DrawStringAnchored("To install:", 100, 20, 0.5, 0.5)

	pm := dc.Pixmap()
	minX, maxX := pm.Width(), -1
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y) == RGB(50, 50, 50) {
				minX = min(minX, x)
				maxX = max(maxX, x)
			}
		}
	}
	if maxX < 0 {
		t.Fatal("no text pixels drawn")
	}
	if mid := (minX + maxX) / 2; mid < 95 || mid > 105 {
		t.Errorf("text centre x = %d, want about 100", mid)
	}

	if w, h := dc.MeasureString("To install:"); w != 77 || h != 13 {
		t.Errorf("MeasureString = (%v, %v), want (77, 13)", w, h)
	}
}

func TestDrawStringAfterClose(t *testing.T) {
	dc := NewContext(50, 20)
	dc.SetFont(text.DefaultFace())
	_ = dc.Close()
	dc.SetFont(text.DefaultFace())
	dc.DrawString("Hello", 5, 15)

	if n := countColor(dc.Pixmap(), Transparent); n != 50*20 {
		t.Error("text drawn after Close")
	}
}

func TestLoadFontFace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	dc := NewContext(100, 40)
	if err := dc.LoadFontFace(path, 20); err != nil {
		t.Fatalf("LoadFontFace failed: %v", err)
	}
	if dc.Font() == nil || dc.Font().Size() != 20 {
		t.Fatalf("Font() = %v, want a 20px face", dc.Font())
	}

	dc.SetColor(Black)
	dc.DrawString("Go", 5, 30)
	if n := countColor(dc.Pixmap(), Transparent); n == 100*40 {
		t.Error("no pixels drawn with the loaded face")
	}

	if err := dc.LoadFontFace(filepath.Join(t.TempDir(), "missing.ttf"), 20); err == nil {
		t.Error("LoadFontFace with a missing file should fail")
	}
}
