package backdrop

import (
	"bytes"
	"errors"
	"testing"
)

func countColor(pm *Pixmap, c RGBA) int {
	n := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestContextFillRectangle(t *testing.T) {
	dc := NewContext(20, 20, WithBackground(White))
	dc.SetRGB(0, 150, 0)
	dc.DrawRectangle(2, 3, 5, 4)
	if err := dc.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	if n := countColor(dc.Pixmap(), RGB(0, 150, 0)); n != 20 {
		t.Errorf("filled pixels = %d, want 20", n)
	}
	if got := dc.Pixmap().GetPixel(2, 3); got != RGB(0, 150, 0) {
		t.Errorf("corner pixel = %v", got)
	}
	if got := dc.Pixmap().GetPixel(7, 3); got != White {
		t.Errorf("pixel right of rectangle = %v", got)
	}

	// Fill clears the path.
	if _, _, ok := dc.GetCurrentPoint(); ok {
		t.Error("path not cleared after Fill")
	}
}

func TestContextFillTranslucent(t *testing.T) {
	dc := NewContext(10, 10, WithBackground(White))
	dc.SetColor(RGBA{A: 128})
	dc.DrawRectangle(0, 0, 10, 5)
	if err := dc.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	got := dc.Pixmap().GetPixel(4, 2)
	if got.A != 255 || absDiff(got.R, 127) > 1 {
		t.Errorf("blended pixel = %v, want about (127,127,127)", got)
	}
	if got := dc.Pixmap().GetPixel(4, 7); got != White {
		t.Errorf("pixel outside the fill = %v, want white", got)
	}
}

func TestContextSquareCap(t *testing.T) {
	tests := []struct {
		cap       LineCap
		wantCount int
	}{
		{LineCapButt, 10},
		{LineCapSquare, 11},
	}

	for _, tt := range tests {
		dc := NewContext(20, 10)
		dc.SetColor(Black)
		dc.SetLineCap(tt.cap)
		dc.DrawLine(2.5, 4.5, 12.5, 4.5)
		if err := dc.Stroke(); err != nil {
			t.Fatalf("Stroke() = %v", err)
		}
		if n := countColor(dc.Pixmap(), Black); n != tt.wantCount {
			t.Errorf("cap %v: stroked %d pixels, want %d", tt.cap, n, tt.wantCount)
		}
	}
}

func TestContextFillPreserve(t *testing.T) {
	dc := NewContext(10, 10)
	dc.DrawRectangle(1, 1, 2, 2)
	if err := dc.FillPreserve(); err != nil {
		t.Fatalf("FillPreserve() = %v", err)
	}
	if _, _, ok := dc.GetCurrentPoint(); !ok {
		t.Error("FillPreserve cleared the path")
	}
	if err := dc.StrokePreserve(); err != nil {
		t.Fatalf("StrokePreserve() = %v", err)
	}
	if _, _, ok := dc.GetCurrentPoint(); !ok {
		t.Error("StrokePreserve cleared the path")
	}
}

func TestContextStrokeLine(t *testing.T) {
	dc := NewContext(400, 400, WithBackground(White))
	dc.SetHexColor("#009600")
	dc.SetLineWidth(3)
	dc.DrawLine(240.5, 180.5, 360.5, 180.5)
	if err := dc.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}

	green := RGB(0, 150, 0)
	pm := dc.Pixmap()
	for _, y := range []int{179, 180, 181} {
		for _, x := range []int{240, 300, 359} {
			if got := pm.GetPixel(x, y); got != green {
				t.Errorf("pixel (%d, %d) = %v, want green", x, y, got)
			}
		}
	}
	for _, pt := range [][2]int{{239, 180}, {360, 180}, {300, 178}, {300, 182}} {
		if got := pm.GetPixel(pt[0], pt[1]); got != White {
			t.Errorf("pixel %v = %v, want white", pt, got)
		}
	}
	if n := countColor(pm, green); n != 360 {
		t.Errorf("stroked pixels = %d, want 360", n)
	}
}

func TestContextDrawPolygon(t *testing.T) {
	dc := NewContext(20, 20)
	dc.SetColor(Black)
	dc.DrawPolygon(Pt(10.5, 10.5), Pt(0.5, 5.5), Pt(0.5, 15.5))
	if err := dc.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	pm := dc.Pixmap()
	if got := pm.GetPixel(5, 10); got != Black {
		t.Errorf("inside pixel = %v, want black", got)
	}
	if got := pm.GetPixel(5, 5); got != Transparent {
		t.Errorf("outside pixel = %v, want transparent", got)
	}

	// Fewer than two points add nothing.
	dc.DrawPolygon(Pt(1, 1))
	if _, _, ok := dc.GetCurrentPoint(); ok {
		t.Error("single point polygon added to the path")
	}
}

func TestContextPushPop(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetRGB(1, 2, 3)
	dc.SetLineWidth(4)
	dc.SetLineCap(LineCapSquare)
	dc.Push()

	dc.SetRGB(9, 9, 9)
	dc.SetLineWidth(1)
	dc.SetLineCap(LineCapButt)
	dc.SetFillRule(FillRuleEvenOdd)
	dc.Pop()

	p := dc.Paint()
	if p.Color != RGB(1, 2, 3) || p.LineWidth != 4 || p.LineCap != LineCapSquare || p.FillRule != FillRuleNonZero {
		t.Errorf("paint after Pop = %+v", p)
	}

	// Unbalanced Pop is a no-op.
	dc.Pop()
	if dc.Paint().Color != RGB(1, 2, 3) {
		t.Error("unbalanced Pop changed the paint")
	}
}

func TestContextClose(t *testing.T) {
	dc := NewContext(10, 10)
	if err := dc.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := dc.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}

	dc.DrawRectangle(0, 0, 5, 5)
	if err := dc.Fill(); !errors.Is(err, ErrClosed) {
		t.Errorf("Fill() after Close = %v, want ErrClosed", err)
	}
	dc.DrawLine(0, 0, 5, 5)
	if err := dc.Stroke(); !errors.Is(err, ErrClosed) {
		t.Errorf("Stroke() after Close = %v, want ErrClosed", err)
	}
}

func TestContextResize(t *testing.T) {
	dc := NewContext(10, 10, WithBackground(White))
	dc.SetRGB(5, 5, 5)

	if err := dc.Resize(0, 5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 5) = %v, want ErrInvalidSize", err)
	}

	pm := dc.Pixmap()
	if err := dc.Resize(10, 10); err != nil || dc.Pixmap() != pm {
		t.Error("same-size Resize should be a no-op")
	}

	if err := dc.Resize(30, 20); err != nil {
		t.Fatalf("Resize(30, 20) = %v", err)
	}
	if dc.Width() != 30 || dc.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", dc.Width(), dc.Height())
	}
	if dc.Paint().Color != RGB(5, 5, 5) {
		t.Error("Resize lost the paint")
	}

	// The renderer follows the new size.
	dc.DrawRectangle(20, 10, 5, 5)
	if err := dc.Fill(); err != nil {
		t.Fatal(err)
	}
	if got := dc.Pixmap().GetPixel(22, 12); got != RGB(5, 5, 5) {
		t.Errorf("pixel after resize = %v", got)
	}
}

func TestContextEncodePNGDeterministic(t *testing.T) {
	render := func() []byte {
		dc := NewContext(64, 32, WithBackground(RGB(240, 240, 240)))
		dc.VerticalGradient(RowRamp(RGB(240, 240, 240), 0, 0, 15))
		dc.SetRGB(0, 150, 0)
		dc.SetLineWidth(3)
		dc.DrawLine(4.5, 16.5, 50.5, 16.5)
		_ = dc.Stroke()

		var buf bytes.Buffer
		if err := dc.EncodePNG(&buf); err != nil {
			t.Fatalf("EncodePNG failed: %v", err)
		}
		return buf.Bytes()
	}

	if !bytes.Equal(render(), render()) {
		t.Error("identical drawing produced different PNG bytes")
	}
}

func TestContextImageIsCopy(t *testing.T) {
	dc := NewContext(4, 4, WithBackground(White))
	img := dc.Image()
	dc.SetPixel(0, 0, Black)
	if got := FromColor(img.At(0, 0)); got != White {
		t.Errorf("Image() shares pixels with the context: %v", got)
	}
}
