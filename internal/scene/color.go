package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Saturation and value used for every cell.
const (
	cellSaturation = 0.5
	cellValue      = 0.5
)

// Hue maps a noise value in [-1, 1] onto [0, 360] degrees.
func Hue(v float64) float64 {
	return v*180 + 180
}

// CellColor returns the opaque color for a noise value. Channels are
// truncated, not rounded, to 8 bits.
func CellColor(v float64) Color {
	h := math.Mod(Hue(v), 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, cellSaturation, cellValue)
	return Color{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}
