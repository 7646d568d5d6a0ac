package prim

import (
	"math"

	"github.com/gogpu/prim/internal/scalar"
)

// HsvColor is a color in the hue/saturation/value model.
// H is in degrees [0, 360); S, V and A are in [0, 1].
type HsvColor struct {
	A, H, S, V float64
}

// NewHsvColor creates an HsvColor, clamping every component to its range.
// A hue of exactly 360 becomes 0.
func NewHsvColor(a, h, s, v float64) HsvColor {
	h = scalar.Clamp(h, 0, 360)
	if h == 360 {
		h = 0
	}
	return HsvColor{
		A: scalar.Clamp(a, 0, 1),
		H: h,
		S: scalar.Clamp(s, 0, 1),
		V: scalar.Clamp(v, 0, 1),
	}
}

// NewHsvColorUnchecked creates an HsvColor without clamping. The caller
// guarantees every component is already in range.
func NewHsvColorUnchecked(a, h, s, v float64) HsvColor {
	return HsvColor{A: a, H: h, S: s, V: v}
}

// RgbToHsv converts normalized RGBA channels in [0, 1] to HSV.
func RgbToHsv(r, g, b, a float64) HsvColor {
	value := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	chroma := value - minC

	if chroma == 0 {
		return NewHsvColor(a, 0, 0, value)
	}

	var h float64
	switch value {
	case r:
		h = 60 * (g - b) / chroma
		if h < 0 {
			h += 360
		}
	case g:
		h = 120 + 60*(b-r)/chroma
	default:
		h = 240 + 60*(r-g)/chroma
	}
	return NewHsvColor(a, h, chroma/value, value)
}

// HsvToRgb converts HSV components to an 8-bit color. The hue is wrapped
// into [0, 360) and saturation and value are clamped to [0, 1] first.
func HsvToRgb(h, s, v, a float64) Color {
	h = scalar.NormalizeDegrees(h)
	s = scalar.Clamp(s, 0, 1)
	v = scalar.Clamp(v, 0, 1)

	chroma := s * v
	minC := v - chroma

	var r, g, b float64
	if chroma == 0 {
		r, g, b = minC, minC, minC
	} else {
		sextant := math.Floor(h / 60)
		frac := h/60 - sextant
		maxC := chroma + minC

		switch int(sextant) {
		case 0:
			r, g, b = maxC, minC+chroma*frac, minC
		case 1:
			r, g, b = minC+chroma*(1-frac), maxC, minC
		case 2:
			r, g, b = minC, maxC, minC+chroma*frac
		case 3:
			r, g, b = minC, minC+chroma*(1-frac), maxC
		case 4:
			r, g, b = minC+chroma*frac, minC, maxC
		default:
			r, g, b = maxC, minC, minC+chroma*(1-frac)
		}
	}

	return Color{
		A: scalar.RoundToByte(255 * a),
		R: scalar.RoundToByte(255 * r),
		G: scalar.RoundToByte(255 * g),
		B: scalar.RoundToByte(255 * b),
	}
}

// ToRgb converts the color to 8-bit RGB.
func (c HsvColor) ToRgb() Color {
	return HsvToRgb(c.H, c.S, c.V, c.A)
}

// ToHsl converts the color to the HSL model directly.
func (c HsvColor) ToHsl() HslColor {
	l := c.V * (1 - c.S/2)
	var s float64
	if l > 0 && l < 1 {
		s = (c.V - l) / math.Min(l, 1-l)
	}
	return NewHslColor(c.A, c.H, s, l)
}

// NearlyEquals reports whether all components are close.
func (c HsvColor) NearlyEquals(o HsvColor) bool {
	return scalar.AreClose(c.A, o.A) && scalar.AreClose(c.H, o.H) &&
		scalar.AreClose(c.S, o.S) && scalar.AreClose(c.V, o.V)
}

// String returns "hsva(H, S, V, A)" with the raw component values.
func (c HsvColor) String() string {
	return "hsva(" + joinNumbers(c.H, c.S, c.V, c.A) + ")"
}

// ParseHsvColor parses "hsv(h, s, v)" or "hsva(h, s, v, a)" with the same
// component rules as ParseHslColor.
func ParseHsvColor(s string) (HsvColor, error) {
	c, ok := parseHsv(s)
	if !ok {
		return HsvColor{}, formatError("hsv color", s)
	}
	return c, nil
}

// TryParseHsvColor is ParseHsvColor reporting failure as false.
func TryParseHsvColor(s string) (HsvColor, bool) {
	c, ok := parseHsv(s)
	if !ok {
		logParseFailure("hsv color", s)
	}
	return c, ok
}

func parseHsv(s string) (HsvColor, bool) {
	h, sat, v, a, ok := parseCylindrical(s, "hsva", "hsv")
	if !ok {
		return HsvColor{}, false
	}
	return NewHsvColor(a, h, sat, v), true
}
