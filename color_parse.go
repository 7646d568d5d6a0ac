package prim

import (
	"strings"

	"github.com/gogpu/prim/internal/cssfunc"
)

// ParseColor parses a color from text. The input is trimmed and then
// tried, in this order, as:
//
//   - hex: "#RGB", "#ARGB", "#RRGGBB" or "#AARRGGBB"; the short forms
//     double each digit and six digits imply an opaque alpha
//   - "rgb(r, g, b)" or "rgba(r, g, b, a)": r, g, b are integers 0-255
//     or percentages; a is a 0-1 fraction or a percentage
//   - "hsl(...)" or "hsla(...)", see ParseHslColor
//   - "hsv(...)" or "hsva(...)", see ParseHsvColor
//   - a known color name such as "red" or "cornflowerblue"
//
// Function names and color names are matched case-insensitively.
// On failure the error is a *FormatError and the color is the zero Color.
func ParseColor(s string) (Color, error) {
	c, ok := parseColor(s)
	if !ok {
		return Color{}, formatError("color", s)
	}
	return c, nil
}

// TryParseColor is ParseColor reporting failure as false.
func TryParseColor(s string) (Color, bool) {
	c, ok := parseColor(s)
	if !ok {
		logParseFailure("color", s)
	}
	return c, ok
}

// MustParseColor is like ParseColor but panics on failure. It is intended
// for package-level variables initialized from constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, false
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if c, ok := parseRgbFunc(s); ok {
		return c, true
	}
	if hsl, ok := parseHsl(s, false); ok {
		return hsl.ToRgb(), true
	}
	if hsv, ok := parseHsv(s); ok {
		return hsv.ToRgb(), true
	}
	return LookupColorName(s)
}

// parseHexColor parses the digits after '#'. Three and four digit forms
// are expanded by doubling each digit into a fixed buffer.
func parseHexColor(digits string) (Color, bool) {
	var buf [8]byte
	var n int
	switch len(digits) {
	case 3, 4:
		for i := 0; i < len(digits); i++ {
			buf[2*i] = digits[i]
			buf[2*i+1] = digits[i]
		}
		n = 2 * len(digits)
	case 6, 8:
		n = copy(buf[:], digits)
	default:
		return Color{}, false
	}

	var v uint32
	for _, c := range buf[:n] {
		d, ok := hexValue(c)
		if !ok {
			return Color{}, false
		}
		v = v<<4 | uint32(d)
	}
	if n == 6 {
		v |= 0xFF000000
	}
	return FromUInt32(v), true
}

// hexValue returns the value of a single hex digit.
func hexValue(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// parseRgbFunc parses the rgb()/rgba() family.
func parseRgbFunc(s string) (Color, bool) {
	call, ok := cssfunc.Split(s, "rgba", "rgb")
	if !ok {
		return Color{}, false
	}
	want := 3
	if call.Name == "rgba" {
		want = 4
	}
	if len(call.Args) != want {
		return Color{}, false
	}

	var rgb [3]uint8
	for i := range rgb {
		if rgb[i], ok = cssfunc.ParseByte(call.Args[i]); !ok {
			return Color{}, false
		}
	}
	a := uint8(255)
	if want == 4 {
		if a, ok = cssfunc.ParseAlphaByte(call.Args[3]); !ok {
			return Color{}, false
		}
	}
	return Color{A: a, R: rgb[0], G: rgb[1], B: rgb[2]}, true
}
