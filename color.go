package ifs

import (
	"fmt"
)

// Color is an opaque 24-bit RGB color packed as 0xRRGGBB.
//
// Color implements [image/color.Color].
type Color uint32

// maxColor is the largest value representable in 24 bits.
const maxColor = 0xFFFFFF

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB returns the red, green and blue components of c. Bits above the low 24
// are ignored.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements image/color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xFFFF
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c&maxColor))
}

// randomColor draws a color uniformly from [0, 0xFFFFFF).
func randomColor(r Rand) Color {
	return Color(r.Float64() * maxColor)
}
