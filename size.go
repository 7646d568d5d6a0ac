package prim

import (
	"math"

	"github.com/gogpu/prim/internal/scalar"
	"github.com/gogpu/prim/internal/tokenizer"
)

// Size is a width and height pair. Negative dimensions only appear as
// intermediate results of arithmetic; layout code never produces them.
type Size struct {
	Width, Height float64
}

// InfiniteSize is a size with both dimensions set to +Inf, used as an
// unconstrained measure bound.
var InfiniteSize = Size{Width: math.Inf(1), Height: math.Inf(1)}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// AspectRatio returns Width / Height.
func (s Size) AspectRatio() float64 {
	return s.Width / s.Height
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Sub returns the component-wise difference of two sizes.
func (s Size) Sub(o Size) Size {
	return Size{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Mul returns the size scaled by a scalar.
func (s Size) Mul(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// MulVector returns the size scaled component-wise by a vector.
func (s Size) MulVector(v Vector) Size {
	return Size{Width: s.Width * v.X, Height: s.Height * v.Y}
}

// Div returns the size divided by a scalar.
func (s Size) Div(f float64) Size {
	return Size{Width: s.Width / f, Height: s.Height / f}
}

// DivVector returns the size divided component-wise by a vector.
func (s Size) DivVector(v Vector) Size {
	return Size{Width: s.Width / v.X, Height: s.Height / v.Y}
}

// Constrain returns the component-wise minimum of s and limit.
func (s Size) Constrain(limit Size) Size {
	return Size{
		Width:  math.Min(s.Width, limit.Width),
		Height: math.Min(s.Height, limit.Height),
	}
}

// Deflate shrinks the size by a thickness. Each dimension is floored at
// zero.
func (s Size) Deflate(t Thickness) Size {
	return Size{
		Width:  math.Max(0, s.Width-t.Left-t.Right),
		Height: math.Max(0, s.Height-t.Top-t.Bottom),
	}
}

// Inflate grows the size by a thickness.
func (s Size) Inflate(t Thickness) Size {
	return Size{
		Width:  s.Width + t.Left + t.Right,
		Height: s.Height + t.Top + t.Bottom,
	}
}

// WithWidth returns a copy of the size with Width replaced.
func (s Size) WithWidth(w float64) Size {
	return Size{Width: w, Height: s.Height}
}

// WithHeight returns a copy of the size with Height replaced.
func (s Size) WithHeight(h float64) Size {
	return Size{Width: s.Width, Height: h}
}

// IsZero returns true if both dimensions are exactly zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// ToVector converts the size to a Vector with X=Width and Y=Height.
func (s Size) ToVector() Vector {
	return Vector{X: s.Width, Y: s.Height}
}

// NearlyEquals reports whether both dimensions are close.
func (s Size) NearlyEquals(o Size) bool {
	return scalar.AreClose(s.Width, o.Width) && scalar.AreClose(s.Height, o.Height)
}

// String returns "width, height".
func (s Size) String() string {
	return joinNumbers(s.Width, s.Height)
}

// ParseSize parses "width,height" or "width height".
func ParseSize(s string) (Size, error) {
	vs, err := tokenizer.Floats(s, 2)
	if err != nil {
		return Size{}, formatError("size", s)
	}
	return Size{Width: vs[0], Height: vs[1]}, nil
}
