package backdrop

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want RGBA
	}{
		{"#009600", RGB(0, 150, 0)},
		{"323232", RGB(50, 50, 50)},
		{"#fff", White},
		{"F0F0F0", RGB(240, 240, 240)},
		{"#00000080", RGBA{A: 0x80}},
		{"0f08", RGBA{R: 0, G: 0xff, B: 0, A: 0x88}},
		{"", Black},
		{"#12345", Black},
		{"zzzzzz", Black},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGBA
	}{
		{"nrgba", color.NRGBA{R: 240, G: 240, B: 254, A: 255}, RGB(240, 240, 254)},
		{"rgba opaque", color.RGBA{R: 0, G: 150, B: 0, A: 255}, RGB(0, 150, 0)},
		{"gray", color.Gray{Y: 50}, RGB(50, 50, 50)},
		{"backdrop", RGB(1, 2, 3), RGB(1, 2, 3)},
		{"transparent", color.Transparent, Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBAImplementsColor(t *testing.T) {
	var c color.Color = RGB(0, 150, 0)
	r, g, b, a := c.RGBA()
	if r != 0 || g != 150*0x101 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %d, %d, %d, %d", r, g, b, a)
	}
}
