package dmg

import (
	"slices"

	"github.com/stonkrisk/backdrop"
)

// DefaultOutput is where the background is written, relative to the
// working directory. Its parent directory must already exist.
const DefaultOutput = "build/resources/dmg-background.png"

// DefaultFontCandidates are tried in order; the first one that loads at
// both the title and body sizes is used.
var DefaultFontCandidates = []string{
	"/System/Library/Fonts/SFNSDisplay.ttf",
	"/System/Library/Fonts/SF-Pro-Display-Regular.otf",
	"/System/Library/Fonts/Helvetica.ttc",
}

// Layout describes everything drawn on the background.
// Coordinates are in pixels with integer values naming pixel centres,
// so a line of width 3 at y=180 covers rows 179 to 181. Arrow end points
// and head vertices are painted.
type Layout struct {
	Width  int
	Height int

	// Base is the background colour of row 0.
	Base backdrop.RGBA
	// BlueRamp is added to the blue channel across the full height:
	// row y gets Base.B + floor(y*BlueRamp/Height).
	BlueRamp int

	Title      string
	TitleY     float64
	TitleSize  float64
	TitleColor backdrop.RGBA

	Instructions  []string
	InstructionsY float64
	LineSpacing   float64
	BodySize      float64
	BodyColor     backdrop.RGBA

	ArrowFrom  backdrop.Point
	ArrowTo    backdrop.Point
	ArrowWidth float64
	// HeadSize is the length of the arrow head; its base is HeadSize/2
	// above and below the tip.
	HeadSize   float64
	ArrowColor backdrop.RGBA

	Fonts []string
}

// DefaultLayout returns the installer background layout.
func DefaultLayout() Layout {
	green := backdrop.RGB(0, 150, 0)
	return Layout{
		Width:    800,
		Height:   400,
		Base:     backdrop.RGB(240, 240, 240),
		BlueRamp: 15,

		Title:      "Options Trading Dashboard",
		TitleY:     60,
		TitleSize:  32,
		TitleColor: green,

		Instructions: []string{
			"To install:",
			"1. Drag the app to the Applications folder",
			"2. Eject the disk image",
			"3. Launch from Applications",
		},
		InstructionsY: 220,
		LineSpacing:   30,
		BodySize:      20,
		BodyColor:     backdrop.RGB(50, 50, 50),

		ArrowFrom:  backdrop.Pt(240, 180),
		ArrowTo:    backdrop.Pt(360, 180),
		ArrowWidth: 3,
		HeadSize:   10,
		ArrowColor: green,

		Fonts: slices.Clone(DefaultFontCandidates),
	}
}

// CenterX returns the horizontal centre all text is anchored on.
func (l Layout) CenterX() float64 {
	return float64(l.Width / 2)
}

// InstructionY returns the anchor y of the i-th instruction line.
func (l Layout) InstructionY(i int) float64 {
	return l.InstructionsY + float64(i)*l.LineSpacing
}

// ArrowHead returns the triangle of the arrow head: the tip followed by
// the upper and lower corners of its base.
func (l Layout) ArrowHead() [3]backdrop.Point {
	tip := l.ArrowTo
	half := float64(int(l.HeadSize) / 2)
	return [3]backdrop.Point{
		tip,
		backdrop.Pt(tip.X-l.HeadSize, tip.Y-half),
		backdrop.Pt(tip.X-l.HeadSize, tip.Y+half),
	}
}
