package prim

import (
	"math"

	"github.com/gogpu/prim/internal/scalar"
	"github.com/gogpu/prim/internal/tokenizer"
)

// Vector represents a 2D displacement vector.
// Unlike Point which represents a position, Vector represents a direction
// and magnitude.
type Vector struct {
	X, Y float64
}

// Common vectors.
var (
	VectorZero  = Vector{}
	VectorOne   = Vector{X: 1, Y: 1}
	VectorUnitX = Vector{X: 1}
	VectorUnitY = Vector{Y: 1}
)

// Vec is a convenience function to create a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// MulVector returns the component-wise product of two vectors.
func (v Vector) MulVector(w Vector) Vector {
	return Vector{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the vector divided by a scalar.
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

// DivVector returns the component-wise quotient of two vectors.
func (v Vector) DivVector(w Vector) Vector {
	return Vector{X: v.X / w.X, Y: v.Y / w.Y}
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Abs returns the vector with both components made non-negative.
func (v Vector) Abs() Vector {
	return Vector{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SquaredLength returns the squared length of the vector.
func (v Vector) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the length is zero within tolerance.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if scalar.IsZero(length) {
		return Vector{}
	}
	return Vector{X: v.X / length, Y: v.Y / length}
}

// WithX returns a copy of the vector with X replaced.
func (v Vector) WithX(x float64) Vector {
	return Vector{X: x, Y: v.Y}
}

// WithY returns a copy of the vector with Y replaced.
func (v Vector) WithY(y float64) Vector {
	return Vector{X: v.X, Y: y}
}

// IsZero returns true if the vector is exactly the zero vector.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// NearlyEquals reports whether both components are close within the
// relative+absolute tolerance of the scalar package.
func (v Vector) NearlyEquals(w Vector) bool {
	return scalar.AreClose(v.X, w.X) && scalar.AreClose(v.Y, w.Y)
}

// ToPoint converts the vector to a Point.
func (v Vector) ToPoint() Point {
	return Point(v)
}

// ToSize converts the vector to a Size with Width=X and Height=Y.
func (v Vector) ToSize() Size {
	return Size{Width: v.X, Height: v.Y}
}

// String returns "x, y".
func (v Vector) String() string {
	return joinNumbers(v.X, v.Y)
}

// ParseVector parses "x,y" or "x y".
func ParseVector(s string) (Vector, error) {
	vs, err := tokenizer.Floats(s, 2)
	if err != nil {
		return Vector{}, formatError("vector", s)
	}
	return Vector{X: vs[0], Y: vs[1]}, nil
}
