package prim

import "image/color"

// Color is an 8-bit-per-channel color with straight (non-premultiplied)
// alpha. Its packed form is 0xAARRGGBB.
//
// Color implements color.Color.
type Color struct {
	A, R, G, B uint8
}

// Common colors. Names and values follow the CSS/SVG keyword table, so
// Green is #008000.
var (
	Transparent = Color{A: 0, R: 255, G: 255, B: 255}
	Black       = FromRgb(0, 0, 0)
	White       = FromRgb(255, 255, 255)
	Red         = FromRgb(255, 0, 0)
	Green       = FromRgb(0, 128, 0)
	Blue        = FromRgb(0, 0, 255)
	Yellow      = FromRgb(255, 255, 0)
	Cyan        = FromRgb(0, 255, 255)
	Magenta     = FromRgb(255, 0, 255)
)

// FromArgb creates a color from alpha, red, green and blue bytes.
func FromArgb(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// FromRgb creates an opaque color.
func FromRgb(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// FromUInt32 unpacks a 0xAARRGGBB value.
func FromUInt32(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// FromHsl creates an opaque color from hue in degrees and saturation and
// lightness in [0, 1]. Out-of-range components are clamped.
func FromHsl(h, s, l float64) Color {
	return NewHslColor(1, h, s, l).ToRgb()
}

// FromAhsl is FromHsl with an alpha in [0, 1].
func FromAhsl(a, h, s, l float64) Color {
	return NewHslColor(a, h, s, l).ToRgb()
}

// FromHsv creates an opaque color from hue in degrees and saturation and
// value in [0, 1]. Out-of-range components are clamped.
func FromHsv(h, s, v float64) Color {
	return NewHsvColor(1, h, s, v).ToRgb()
}

// FromAhsv is FromHsv with an alpha in [0, 1].
func FromAhsv(a, h, s, v float64) Color {
	return NewHsvColor(a, h, s, v).ToRgb()
}

// ToUInt32 packs the color as (A<<24)|(R<<16)|(G<<8)|B.
func (c Color) ToUInt32() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ToHsl converts the color to the HSL model.
func (c Color) ToHsl() HslColor {
	return RgbToHsl(
		float64(c.R)/255,
		float64(c.G)/255,
		float64(c.B)/255,
		float64(c.A)/255,
	)
}

// ToHsv converts the color to the HSV model.
func (c Color) ToHsv() HsvColor {
	return RgbToHsv(
		float64(c.R)/255,
		float64(c.G)/255,
		float64(c.B)/255,
		float64(c.A)/255,
	)
}

// WithAlpha returns a copy of the color with a new alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA implements color.Color. The result is alpha-premultiplied 16-bit,
// as for color.NRGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String returns the lower-case known color name if the color matches one
// exactly, and "#aarrggbb" otherwise. The result always parses back to c.
func (c Color) String() string {
	if name, ok := knownColorName(c); ok {
		return name
	}
	return c.HexString()
}

const hexDigits = "0123456789abcdef"

// HexString returns "#aarrggbb" in lower case.
func (c Color) HexString() string {
	var buf [9]byte
	buf[0] = '#'
	v := c.ToUInt32()
	for i := len(buf) - 1; i >= 1; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}
