// Package gridpaint provides the drawing primitives for labeled grid
// patterns: deterministic cell colors, axis-aligned rectangle painting, and
// text labels.
package gridpaint

import "image/color"

// CellColor derives the paint color for the grid cell at (x, y). Each
// channel is reduced mod 255, so values stay in [0, 254] and never reach
// full intensity.
func CellColor(x, y, greenDivisor int) color.RGBA {
	return color.RGBA{
		R: uint8(x % 255),
		G: uint8((y / greenDivisor) % 255),
		B: uint8((x + y) % 255),
		A: 255,
	}
}
