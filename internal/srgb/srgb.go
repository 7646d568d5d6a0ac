// Package srgb converts between sRGB-encoded bytes and linear-light
// intensities.
//
// Decoding uses a 256-entry table built once at init. Encoding computes
// the transfer function directly so that Encode(Decode(b)) == b for every
// byte.
package srgb

import (
	"math"

	"github.com/gogpu/prim/internal/scalar"
)

var decodeLUT [256]float64

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = ToLinear(float64(i) / 255)
	}
}

// ToLinear applies the sRGB EOTF to s in [0, 1].
func ToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// FromLinear applies the sRGB OETF to l in [0, 1].
func FromLinear(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// Decode returns the linear intensity of an sRGB byte.
func Decode(b uint8) float64 {
	return decodeLUT[b]
}

// Encode returns the sRGB byte nearest to the linear intensity l.
// l is clamped to [0, 1]; NaN encodes as 0.
func Encode(l float64) uint8 {
	if math.IsNaN(l) {
		return 0
	}
	return scalar.RoundToByte(FromLinear(scalar.Clamp(l, 0, 1)) * 255)
}
