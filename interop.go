package prim

import (
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/prim/internal/scalar"
	"github.com/gogpu/prim/internal/srgb"
)

// ColorFromStd converts any color.Color to a Color, un-premultiplying
// through color.NRGBAModel.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// GPU returns the color as normalized float channels, the form GPU render
// passes take for clear values and blend constants.
func (c Color) GPU() gputypes.Color {
	return gputypes.NewColor(
		float64(c.R)/255,
		float64(c.G)/255,
		float64(c.B)/255,
		float64(c.A)/255,
	)
}

// ColorFromGPU converts normalized float channels back to 8 bits. Values
// outside [0, 1], as HDR colors may carry, are clamped.
func ColorFromGPU(g gputypes.Color) Color {
	return Color{
		A: scalar.RoundToByte(g.A * 255),
		R: scalar.RoundToByte(g.R * 255),
		G: scalar.RoundToByte(g.G * 255),
		B: scalar.RoundToByte(g.B * 255),
	}
}

// GPULinear returns the color decoded from sRGB to linear light, the form
// expected by render targets with an sRGB view format. Alpha is already
// linear and is only normalized.
func (c Color) GPULinear() gputypes.Color {
	return gputypes.NewColor(
		srgb.Decode(c.R),
		srgb.Decode(c.G),
		srgb.Decode(c.B),
		float64(c.A)/255,
	)
}

// ColorFromGPULinear encodes linear-light channels back to sRGB bytes.
func ColorFromGPULinear(g gputypes.Color) Color {
	return Color{
		A: scalar.RoundToByte(g.A * 255),
		R: srgb.Encode(g.R),
		G: srgb.Encode(g.G),
		B: srgb.Encode(g.B),
	}
}

// Colorful returns the RGB channels as a go-colorful color for perceptual
// operations (Lab, Luv, blending). Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// ColorFromColorful converts a go-colorful color with the given alpha.
// Out-of-gamut channels are clamped.
func ColorFromColorful(cc colorful.Color, alpha uint8) Color {
	cc = cc.Clamped()
	return Color{
		A: alpha,
		R: scalar.RoundToByte(cc.R * 255),
		G: scalar.RoundToByte(cc.G * 255),
		B: scalar.RoundToByte(cc.B * 255),
	}
}

// DistanceCIEDE2000 returns the perceptual distance between the RGB parts
// of two colors. Alpha is ignored.
func (c Color) DistanceCIEDE2000(o Color) float64 {
	return c.Colorful().DistanceCIEDE2000(o.Colorful())
}

// Aff3 returns the matrix in golang.org/x/image/math/f64 form. Both use
// the same row-major layout.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// MatrixFromAff3 converts an f64.Aff3 to a Matrix.
func MatrixFromAff3(a f64.Aff3) Matrix {
	return Matrix{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
}

// toFixed converts a float to 26.6 fixed point, rounding to the nearest
// 1/64.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// Fixed returns the point in 26.6 fixed point.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// Fixed returns the normalized rectangle in 26.6 fixed point, with Min at
// the top-left and Max at the bottom-right corner.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	n := r.Normalize()
	return fixed.Rectangle26_6{
		Min: n.TopLeft().Fixed(),
		Max: n.BottomRight().Fixed(),
	}
}
