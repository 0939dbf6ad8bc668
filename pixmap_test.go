package backdrop

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.SetPixel(3, 4, RGB(0, 150, 0))
	if got := pm.GetPixel(3, 4); got != RGB(0, 150, 0) {
		t.Errorf("GetPixel = %v, want (0,150,0)", got)
	}

	half := RGBA{R: 200, G: 100, B: 0, A: 128}
	pm.SetPixel(5, 5, half)
	got := pm.GetPixel(5, 5)
	// Premultiplied storage loses at most one level per channel.
	if got.A != 128 || absDiff(got.R, half.R) > 1 || absDiff(got.G, half.G) > 1 {
		t.Errorf("GetPixel = %v, want about %v", got, half)
	}

	// Out of range is ignored and reads transparent.
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(10, 0, White)
	if got := pm.GetPixel(10, 0); got != Transparent {
		t.Errorf("GetPixel out of range = %v, want transparent", got)
	}
}

func TestPixmapFillSpan(t *testing.T) {
	pm := NewPixmap(10, 3)

	pm.FillSpan(-5, 4, 1, White)
	pm.FillSpan(8, 20, 1, White)
	// Empty span and a row out of range.
	pm.FillSpan(6, 6, 1, White)
	pm.FillSpan(0, 10, 7, White)

	for x := 0; x < 10; x++ {
		want := Transparent
		if x < 4 || x >= 8 {
			want = White
		}
		if got := pm.GetPixel(x, 1); got != want {
			t.Errorf("pixel (%d, 1) = %v, want %v", x, got, want)
		}
	}
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("row 0 touched: %v", got)
	}
}

func TestPixmapBlendSpan(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want RGBA
	}{
		{"opaque replaces", RGB(0, 150, 0), RGB(0, 150, 0)},
		{"transparent keeps", RGBA{R: 9}, White},
		{"half black over white", RGBA{A: 128}, RGB(127, 127, 127)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(6, 2)
			pm.Clear(White)
			pm.BlendSpan(-2, 3, 0, tt.c)

			got := pm.GetPixel(1, 0)
			if got.A != tt.want.A || absDiff(got.R, tt.want.R) > 1 ||
				absDiff(got.G, tt.want.G) > 1 || absDiff(got.B, tt.want.B) > 1 {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
			if got := pm.GetPixel(3, 0); got != White {
				t.Errorf("pixel past the span = %v, want white", got)
			}
			if got := pm.GetPixel(1, 1); got != White {
				t.Errorf("pixel on the next row = %v, want white", got)
			}
		})
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(RGB(240, 240, 240))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pm.GetPixel(x, y); got != RGB(240, 240, 240) {
				t.Fatalf("pixel (%d, %d) = %v", x, y, got)
			}
		}
	}
}

func TestPixmapCanvasSharesPixels(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Canvas().Set(1, 2, color.RGBA{R: 9, A: 255})
	if got := pm.GetPixel(1, 2); got != RGB(9, 0, 0) {
		t.Errorf("pixel = %v, want write through Canvas", got)
	}

	img := pm.ToImage()
	img.Set(0, 0, color.White)
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("ToImage is not a copy: %v", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	src.Set(10, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	pm := FromImage(src)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(0, 0); got != RGB(1, 2, 3) {
		t.Errorf("pixel = %v, want (1,2,3)", got)
	}
}

func TestPixmapPNG(t *testing.T) {
	pm := NewPixmap(8, 6)
	pm.Clear(RGB(240, 240, 240))
	pm.SetPixel(2, 3, RGB(0, 150, 0))

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := FromColor(img.At(2, 3)); got != RGB(0, 150, 0) {
		t.Errorf("decoded pixel = %v, want (0,150,0)", got)
	}
	if got := FromColor(img.At(7, 5)); got != RGB(240, 240, 240) {
		t.Errorf("decoded pixel = %v, want (240,240,240)", got)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(White)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "out.png")
	if err := pm.SavePNG(missing); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
