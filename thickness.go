package prim

import (
	"github.com/gogpu/prim/internal/scalar"
	"github.com/gogpu/prim/internal/tokenizer"
)

// Thickness describes independent insets for the four edges of a
// rectangle, as used for margins, paddings and borders.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// UniformThickness returns a thickness with all four edges set to v.
func UniformThickness(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// SymmetricThickness returns a thickness with horizontal on the left and
// right edges and vertical on the top and bottom edges.
func SymmetricThickness(horizontal, vertical float64) Thickness {
	return Thickness{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// NewThickness returns a thickness with the given edges.
func NewThickness(left, top, right, bottom float64) Thickness {
	return Thickness{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsUniform reports whether all four edges are equal.
func (t Thickness) IsUniform() bool {
	return t.Left == t.Right && t.Top == t.Bottom && t.Right == t.Top
}

// IsZero reports whether all four edges are exactly zero.
func (t Thickness) IsZero() bool {
	return t.Left == 0 && t.Top == 0 && t.Right == 0 && t.Bottom == 0
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Add returns the edge-wise sum of two thicknesses.
func (t Thickness) Add(o Thickness) Thickness {
	return Thickness{
		Left:   t.Left + o.Left,
		Top:    t.Top + o.Top,
		Right:  t.Right + o.Right,
		Bottom: t.Bottom + o.Bottom,
	}
}

// Sub returns the edge-wise difference of two thicknesses.
func (t Thickness) Sub(o Thickness) Thickness {
	return Thickness{
		Left:   t.Left - o.Left,
		Top:    t.Top - o.Top,
		Right:  t.Right - o.Right,
		Bottom: t.Bottom - o.Bottom,
	}
}

// Mul returns the thickness with every edge scaled by s.
func (t Thickness) Mul(s float64) Thickness {
	return Thickness{Left: t.Left * s, Top: t.Top * s, Right: t.Right * s, Bottom: t.Bottom * s}
}

// NearlyEquals reports whether all four edges are close.
func (t Thickness) NearlyEquals(o Thickness) bool {
	return scalar.AreClose(t.Left, o.Left) &&
		scalar.AreClose(t.Top, o.Top) &&
		scalar.AreClose(t.Right, o.Right) &&
		scalar.AreClose(t.Bottom, o.Bottom)
}

// String returns "left, top, right, bottom".
func (t Thickness) String() string {
	return joinNumbers(t.Left, t.Top, t.Right, t.Bottom)
}

// ParseThickness parses one number (uniform), two numbers (horizontal,
// vertical) or four numbers (left, top, right, bottom).
func ParseThickness(s string) (Thickness, error) {
	vs, err := tokenizer.Floats(s, 1, 2, 4)
	if err != nil {
		return Thickness{}, formatError("thickness", s)
	}
	switch len(vs) {
	case 1:
		return UniformThickness(vs[0]), nil
	case 2:
		return SymmetricThickness(vs[0], vs[1]), nil
	default:
		return NewThickness(vs[0], vs[1], vs[2], vs[3]), nil
	}
}
