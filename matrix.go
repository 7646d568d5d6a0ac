package prim

import (
	"math"

	"github.com/gogpu/prim/internal/tokenizer"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The zero Matrix maps every point to the origin; use Identity for a
// no-op transform.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other). The result applies other
// first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(v Vector) Vector {
	return Vector{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// Determinant returns the determinant of the 2x2 part of the matrix.
// A determinant of zero means the matrix is not invertible.
// A negative determinant means the transformation flips orientation.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// HasInverse reports whether the matrix can be inverted.
func (m Matrix) HasInverse() bool {
	return math.Abs(m.Determinant()) >= 1e-10
}

// TryInvert returns the inverse matrix and true, or the zero matrix and
// false if the matrix is singular.
func (m Matrix) TryInvert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Matrix{}, false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	inv, ok := m.TryInvert()
	if !ok {
		return Identity()
	}
	return inv
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsScaleOnly returns true if the matrix has no rotation or shear, so
// axis-aligned rectangles stay axis-aligned under it.
func (m Matrix) IsScaleOnly() bool {
	return m.B == 0 && m.D == 0
}

// MaxScaleFactor returns the largest singular value of the 2x2 part, i.e.
// the maximum factor by which the transform stretches any direction.
func (m Matrix) MaxScaleFactor() float64 {
	p := m.A*m.A + m.D*m.D
	r := m.B*m.B + m.E*m.E
	q := m.A*m.B + m.D*m.E
	sum := p + r
	diff := p - r
	disc := math.Sqrt(diff*diff + 4*q*q)
	return math.Sqrt((sum + disc) / 2)
}

// Translation returns the translation components of the matrix.
func (m Matrix) Translation() (x, y float64) {
	return m.C, m.F
}

// String returns "a, b, c, d, e, f".
func (m Matrix) String() string {
	return joinNumbers(m.A, m.B, m.C, m.D, m.E, m.F)
}

// ParseMatrix parses six numbers "a, b, c, d, e, f" in row-major order.
func ParseMatrix(s string) (Matrix, error) {
	vs, err := tokenizer.Floats(s, 6)
	if err != nil {
		return Matrix{}, formatError("matrix", s)
	}
	return Matrix{A: vs[0], B: vs[1], C: vs[2], D: vs[3], E: vs[4], F: vs[5]}, nil
}
