// Package scalar provides tolerance-based float64 comparisons and clamping
// shared by the geometry and color types.
package scalar

import "math"

// Epsilon is the float64 machine epsilon (the gap between 1 and the next
// representable value).
const Epsilon = 2.2204460492503131e-16

// AreClose reports whether a and b are equal within a tolerance scaled to
// their magnitude. The tolerance is (|a| + |b| + 10) * Epsilon, so it acts
// as an absolute bound near zero and a relative bound for large values.
// NaN is never close to anything, including NaN.
func AreClose(a, b float64) bool {
	if a == b {
		return true
	}
	eps := (math.Abs(a) + math.Abs(b) + 10.0) * Epsilon
	delta := a - b
	return -eps < delta && eps > delta
}

// IsZero reports whether v is within 10 * Epsilon of zero.
func IsZero(v float64) bool {
	return math.Abs(v) < 10.0*Epsilon
}

// Clamp restricts v to [lo, hi]. NaN passes through unchanged.
// It panics if lo > hi.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		panic("scalar: Clamp called with lo > hi")
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NormalizeDegrees folds an angle in degrees into [0, 360).
// Non-finite input is returned unchanged.
func NormalizeDegrees(h float64) float64 {
	if !IsFinite(h) {
		return h
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds up to exactly 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// RoundToByte rounds v half-to-even and clamps the result to [0, 255].
// NaN maps to 0.
func RoundToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	r := math.RoundToEven(v)
	if r <= 0 {
		return 0
	}
	if r >= 255 {
		return 255
	}
	return uint8(r)
}
