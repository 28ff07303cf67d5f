// Package color provides the animation pipeline's color model: an
// RGB+alpha value type, palettes, CSS-style linear gradients, and the
// parsers that build them from user input. Resolution is a pure
// position→color function so frame generation never fails mid-render.
package color

import "fmt"

// Color stores explicit 8-bit sRGB channels plus straight alpha.
// Alpha is always meaningful: opaque colors carry A=1, never A=0.
type Color struct {
	R, G, B uint8
	A       float64
}

// Predefined colors
var (
	Black = Color{0, 0, 0, 1}
	White = Color{255, 255, 255, 1}
)

// New returns an opaque color.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Lerp linearly interpolates each channel and alpha independently.
// t=0 returns c, t=1 returns other.
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{
		R: uint8(float64(c.R) + t*float64(int(other.R)-int(c.R))),
		G: uint8(float64(c.G) + t*float64(int(other.G)-int(c.G))),
		B: uint8(float64(c.B) + t*float64(int(other.B)-int(c.B))),
		A: c.A + t*(other.A-c.A),
	}
}

// Scale multiplies the RGB channels by factor, leaving alpha untouched.
func (c Color) Scale(factor float64) Color {
	if factor <= 0 {
		return Color{A: c.A}
	}
	if factor >= 1 {
		return c
	}
	return Color{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// WithAlpha returns the color with alpha clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = a
	return c
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
