package backdrop

// RowColorFunc returns the color of row y on a surface of the given height.
// It is used by Context.VerticalGradient to paint row-by-row fills.
type RowColorFunc func(y, height int) RGBA

// RowRamp returns a RowColorFunc that adds floor(y × delta / height) to each
// channel of base. Channels are clamped to [0, 255]; alpha is kept from base.
//
// Example:
//
//	// Light gray with the blue channel rising by up to 15 levels.
//	dc.VerticalGradient(backdrop.RowRamp(backdrop.RGB(240, 240, 240), 0, 0, 15))
func RowRamp(base RGBA, dr, dg, db int) RowColorFunc {
	return func(y, height int) RGBA {
		if height <= 0 {
			return base
		}
		return RGBA{
			R: rampChannel(base.R, dr, y, height),
			G: rampChannel(base.G, dg, y, height),
			B: rampChannel(base.B, db, y, height),
			A: base.A,
		}
	}
}

// rampChannel computes clamp(base + floor(y*delta/height)).
func rampChannel(base uint8, delta, y, height int) uint8 {
	return clampByte(int(base) + floorDiv(y*delta, height))
}

// floorDiv divides rounding towards negative infinity; b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// clampByte restricts a value to [0, 255].
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
