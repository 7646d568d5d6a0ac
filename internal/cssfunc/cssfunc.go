// Package cssfunc parses the CSS-like functional color notation shared by
// the rgb(), hsl() and hsv() families: a case-insensitive function name,
// comma-separated arguments and a closing parenthesis.
package cssfunc

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/prim/internal/scalar"
)

// Fold returns the case-folded form of s for caseless comparison.
// A new Caser is created per call since Casers are not safe for
// concurrent use.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// HasPrefixFold reports whether s starts with prefix, ignoring ASCII case.
// prefix must be lower-case ASCII. Non-ASCII bytes in s never match, so
// look-alikes such as 'ſ' or the Kelvin sign are rejected.
func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}

// Call is a parsed functional expression such as "rgba(1, 2, 3, 0.5)".
type Call struct {
	Name string   // folded function name, e.g. "rgba"
	Args []string // trimmed, non-empty arguments
}

// Split matches s against the given function names (folded, without the
// opening parenthesis) and returns the call on success. The first matching
// name wins. s is expected to be trimmed; the closing ')' must be the last
// byte and every argument must be non-empty.
func Split(s string, names ...string) (Call, bool) {
	for _, name := range names {
		open := name + "("
		if !HasPrefixFold(s, open) {
			continue
		}
		if len(s) <= len(open) || s[len(s)-1] != ')' {
			return Call{}, false
		}
		body := s[len(open) : len(s)-1]
		parts := strings.Split(body, ",")
		for i, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return Call{}, false
			}
			parts[i] = p
		}
		return Call{Name: name, Args: parts}, true
	}
	return Call{}, false
}

// ParseNumber parses a finite invariant-culture number.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !scalar.IsFinite(v) {
		return 0, false
	}
	return v, true
}

// cutPercent splits a trailing '%' off s.
func cutPercent(s string) (string, bool) {
	if strings.HasSuffix(s, "%") {
		return s[:len(s)-1], true
	}
	return s, false
}

// ParseFraction parses either a bare number or a percentage "N%" which is
// scaled by 1/100. The result is not range checked.
func ParseFraction(s string) (float64, bool) {
	num, pct := cutPercent(s)
	v, ok := ParseNumber(num)
	if !ok {
		return 0, false
	}
	if pct {
		v /= 100
	}
	return v, true
}

// ParseByte parses either an integer in [0, 255] or a percentage "N%" with
// N in [0, 100], scaled to [0, 255] and rounded half-to-even.
func ParseByte(s string) (uint8, bool) {
	num, pct := cutPercent(s)
	if pct {
		v, ok := ParseNumber(num)
		if !ok || v < 0 || v > 100 {
			return 0, false
		}
		return scalar.RoundToByte(v / 100 * 255), true
	}
	u, err := strconv.ParseUint(strings.TrimSpace(num), 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(u), true
}

// ParseAlphaByte parses an alpha given as a fraction in [0, 1] or as a
// percentage in [0%, 100%] and converts it to a byte as round(alpha*255).
func ParseAlphaByte(s string) (uint8, bool) {
	v, ok := ParseFraction(s)
	if !ok || v < 0 || v > 1 {
		return 0, false
	}
	return scalar.RoundToByte(v * 255), true
}
