package prim

import (
	"math"

	"github.com/gogpu/prim/internal/scalar"
	"github.com/gogpu/prim/internal/tokenizer"
)

// Point represents a 2D position.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point offset by a vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the point offset by the negated vector.
func (p Point) Sub(v Vector) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// AddPoint returns the component-wise sum of two points.
func (p Point) AddPoint(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// SubPoint returns the component-wise difference of two points.
func (p Point) SubPoint(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// VectorTo returns the displacement from p to q.
func (p Point) VectorTo(q Point) Vector {
	return Vector{X: q.X - p.X, Y: q.Y - p.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// MulVector returns the point scaled component-wise by a vector.
func (p Point) MulVector(v Vector) Point {
	return Point{X: p.X * v.X, Y: p.Y * v.Y}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Transform applies an affine matrix to the point.
func (p Point) Transform(m Matrix) Point {
	return m.TransformPoint(p)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// WithX returns a copy of the point with X replaced.
func (p Point) WithX(x float64) Point {
	return Point{X: x, Y: p.Y}
}

// WithY returns a copy of the point with Y replaced.
func (p Point) WithY(y float64) Point {
	return Point{X: p.X, Y: y}
}

// ToVector converts the point to the vector from the origin.
func (p Point) ToVector() Vector {
	return Vector(p)
}

// NearlyEquals reports whether both coordinates are close.
func (p Point) NearlyEquals(q Point) bool {
	return scalar.AreClose(p.X, q.X) && scalar.AreClose(p.Y, q.Y)
}

// String returns "x, y".
func (p Point) String() string {
	return joinNumbers(p.X, p.Y)
}

// ParsePoint parses "x,y" or "x y".
func ParsePoint(s string) (Point, error) {
	vs, err := tokenizer.Floats(s, 2)
	if err != nil {
		return Point{}, formatError("point", s)
	}
	return Point{X: vs[0], Y: vs[1]}, nil
}
