package prim

import (
	"math"
	"strings"

	"github.com/gogpu/prim/internal/cssfunc"
	"github.com/gogpu/prim/internal/scalar"
)

// HslColor is a color in the hue/saturation/lightness model.
// H is in degrees [0, 360); S, L and A are in [0, 1].
type HslColor struct {
	A, H, S, L float64
}

// NewHslColor creates an HslColor, clamping every component to its range.
// A hue of exactly 360 becomes 0.
func NewHslColor(a, h, s, l float64) HslColor {
	h = scalar.Clamp(h, 0, 360)
	if h == 360 {
		h = 0
	}
	return HslColor{
		A: scalar.Clamp(a, 0, 1),
		H: h,
		S: scalar.Clamp(s, 0, 1),
		L: scalar.Clamp(l, 0, 1),
	}
}

// NewHslColorUnchecked creates an HslColor without clamping. The caller
// guarantees every component is already in range; out-of-range values
// break the invariants the conversions rely on.
func NewHslColorUnchecked(a, h, s, l float64) HslColor {
	return HslColor{A: a, H: h, S: s, L: l}
}

// RgbToHsl converts normalized RGBA channels in [0, 1] to HSL.
func RgbToHsl(r, g, b, a float64) HslColor {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	chroma := maxC - minC

	var h1 float64
	switch {
	case chroma == 0:
		h1 = 0
	case maxC == r:
		h1 = math.Mod((g-b)/chroma+6, 6)
	case maxC == g:
		h1 = 2 + (b-r)/chroma
	default:
		h1 = 4 + (r-g)/chroma
	}

	l := (maxC + minC) / 2
	var s float64
	if chroma != 0 {
		s = chroma / (1 - math.Abs(2*l-1))
	}
	return NewHslColor(a, 60*h1, s, l)
}

// HslToRgb converts HSL components to an 8-bit color. Channels are rounded
// half-to-even after scaling by 255.
func HslToRgb(h, s, l, a float64) Color {
	chroma := (1 - math.Abs(2*l-1)) * s
	h1 := h / 60
	x := chroma * (1 - math.Abs(math.Mod(h1, 2)-1))
	m := l - chroma/2

	// A hue outside [0, 360) can only come from NewHslColorUnchecked and
	// leaves the chromatic part at zero.
	var r1, g1, b1 float64
	switch {
	case 0 <= h1 && h1 < 1:
		r1, g1, b1 = chroma, x, 0
	case 1 <= h1 && h1 < 2:
		r1, g1, b1 = x, chroma, 0
	case 2 <= h1 && h1 < 3:
		r1, g1, b1 = 0, chroma, x
	case 3 <= h1 && h1 < 4:
		r1, g1, b1 = 0, x, chroma
	case 4 <= h1 && h1 < 5:
		r1, g1, b1 = x, 0, chroma
	case 5 <= h1 && h1 < 6:
		r1, g1, b1 = chroma, 0, x
	}

	return Color{
		A: scalar.RoundToByte(255 * a),
		R: scalar.RoundToByte(255 * (r1 + m)),
		G: scalar.RoundToByte(255 * (g1 + m)),
		B: scalar.RoundToByte(255 * (b1 + m)),
	}
}

// ToRgb converts the color to 8-bit RGB.
func (c HslColor) ToRgb() Color {
	return HslToRgb(c.H, c.S, c.L, c.A)
}

// ToHsv converts the color to the HSV model directly, without a round
// trip through 8-bit RGB.
func (c HslColor) ToHsv() HsvColor {
	v := c.L + c.S*math.Min(c.L, 1-c.L)
	var s float64
	if v > 0 {
		s = 2 * (1 - c.L/v)
	}
	return NewHsvColor(c.A, c.H, s, v)
}

// NearlyEquals reports whether all components are close.
func (c HslColor) NearlyEquals(o HslColor) bool {
	return scalar.AreClose(c.A, o.A) && scalar.AreClose(c.H, o.H) &&
		scalar.AreClose(c.S, o.S) && scalar.AreClose(c.L, o.L)
}

// String returns "hsva(H, S, L, A)" with the raw component values.
// The label is "hsva" for compatibility with existing serialized output;
// ParseHslColor reads it back.
func (c HslColor) String() string {
	return "hsva(" + joinNumbers(c.H, c.S, c.L, c.A) + ")"
}

// ParseHslColor parses "hsl(h, s, l)" or "hsla(h, s, l, a)". The hue is a
// bare number of degrees, normalized mod 360; the other components are a
// 0-1 fraction or a percentage, and are clamped to [0, 1]. The
// four-component "hsva(...)" form produced by String is also accepted.
func ParseHslColor(s string) (HslColor, error) {
	c, ok := parseHsl(s, true)
	if !ok {
		return HslColor{}, formatError("hsl color", s)
	}
	return c, nil
}

// TryParseHslColor is ParseHslColor reporting failure as false.
func TryParseHslColor(s string) (HslColor, bool) {
	c, ok := parseHsl(s, true)
	if !ok {
		logParseFailure("hsl color", s)
	}
	return c, ok
}

// parseHsl parses the hsl()/hsla() family. withHsvaLabel additionally
// accepts the label emitted by HslColor.String; the Color dispatcher turns
// it off so that "hsva(" keeps meaning HSV there.
func parseHsl(s string, withHsvaLabel bool) (HslColor, bool) {
	names := []string{"hsla", "hsl"}
	if withHsvaLabel {
		names = append(names, "hsva")
	}
	h, c1, c2, a, ok := parseCylindrical(s, names...)
	if !ok {
		return HslColor{}, false
	}
	return NewHslColor(a, h, c1, c2), true
}

// parseCylindrical parses a hue-based functional notation. Names ending in
// 'a' take four arguments, the others three. The hue is normalized to
// [0, 360); alpha defaults to 1.
func parseCylindrical(s string, names ...string) (h, c1, c2, a float64, ok bool) {
	call, ok := cssfunc.Split(strings.TrimSpace(s), names...)
	if !ok {
		return 0, 0, 0, 0, false
	}
	want := 3
	if call.Name[len(call.Name)-1] == 'a' {
		want = 4
	}
	if len(call.Args) != want {
		return 0, 0, 0, 0, false
	}

	h, ok = cssfunc.ParseNumber(call.Args[0])
	if !ok {
		return 0, 0, 0, 0, false
	}
	if c1, ok = cssfunc.ParseFraction(call.Args[1]); !ok {
		return 0, 0, 0, 0, false
	}
	if c2, ok = cssfunc.ParseFraction(call.Args[2]); !ok {
		return 0, 0, 0, 0, false
	}
	a = 1
	if want == 4 {
		if a, ok = cssfunc.ParseFraction(call.Args[3]); !ok {
			return 0, 0, 0, 0, false
		}
	}
	return scalar.NormalizeDegrees(h), c1, c2, a, true
}
