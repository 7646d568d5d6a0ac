package prim

import (
	"math"

	"github.com/gogpu/prim/internal/scalar"
	"github.com/gogpu/prim/internal/tokenizer"
)

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// Width and Height may be negative; Normalize returns the equivalent
// rectangle with non-negative dimensions.
//
// The zero Rect doubles as the "empty" value: Intersect returns it for
// disjoint inputs and Union treats any rect with zero width and zero height
// as absent.
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromPoints returns the normalized rectangle spanning two corners.
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{
		X:      math.Min(p1.X, p2.X),
		Y:      math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// RectFromPointSize creates a Rect from its top-left corner and size.
func RectFromPointSize(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// RectFromSize creates a Rect of the given size at the origin.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the width and height.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Left returns the left edge x-coordinate.
func (r Rect) Left() float64 { return r.X }

// Top returns the top edge y-coordinate.
func (r Rect) Top() float64 { return r.Y }

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point { return Point{X: r.Right(), Y: r.Y} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point { return Point{X: r.X, Y: r.Bottom()} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the point is inside the rectangle or on any
// of its edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ContainsExclusive returns true if the point is inside the rectangle,
// counting the left and top edges but not the right and bottom ones.
// Adjacent rectangles therefore never both contain a point.
func (r Rect) ContainsExclusive(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect returns true if both the top-left and bottom-right corners
// of other are inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.TopLeft()) && r.Contains(other.BottomRight())
}

// Intersects returns true if the two rectangles overlap. Rectangles that
// only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return other.X < r.Right() && r.X < other.Right() &&
		other.Y < r.Bottom() && r.Y < other.Bottom()
}

// Intersect returns the intersection of two rectangles.
// Returns the zero rectangle if the overlap is empty or degenerate, or if
// any edge is NaN.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())

	if !(x1 > x0 && y1 > y0) {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle covering both r and other.
// A rectangle with zero width and zero height, wherever it is located, is
// treated as empty: the other operand is returned unchanged.
func (r Rect) Union(other Rect) Rect {
	if r.Width == 0 && r.Height == 0 {
		return other
	}
	if other.Width == 0 && other.Height == 0 {
		return r
	}
	return RectFromPoints(
		Point{X: math.Min(r.X, other.X), Y: math.Min(r.Y, other.Y)},
		Point{X: math.Max(r.Right(), other.Right()), Y: math.Max(r.Bottom(), other.Bottom())},
	)
}

// UnionOptional unions two optional rectangles. A nil operand is absent:
// the result is the other operand, or nil if both are absent.
func UnionOptional(a, b *Rect) *Rect {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		u := *b
		return &u
	case b == nil:
		u := *a
		return &u
	}
	u := a.Union(*b)
	return &u
}

// Normalize returns the rectangle covering the same area with
// non-negative width and height. If any of X, Y, Width, Height, Right or
// Bottom is NaN the zero rectangle is returned.
func (r Rect) Normalize() Rect {
	if math.IsNaN(r.X) || math.IsNaN(r.Y) ||
		math.IsNaN(r.Width) || math.IsNaN(r.Height) ||
		math.IsNaN(r.Right()) || math.IsNaN(r.Bottom()) {
		return Rect{}
	}
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Inflate grows each edge outward by the matching thickness component.
func (r Rect) Inflate(t Thickness) Rect {
	return Rect{
		X:      r.X - t.Left,
		Y:      r.Y - t.Top,
		Width:  r.Width + t.Left + t.Right,
		Height: r.Height + t.Top + t.Bottom,
	}
}

// InflateBy grows every edge outward by d.
func (r Rect) InflateBy(d float64) Rect {
	return r.Inflate(UniformThickness(d))
}

// Deflate moves each edge inward by the matching thickness component.
// Unlike Size.Deflate the resulting dimensions are not floored at zero.
func (r Rect) Deflate(t Thickness) Rect {
	return Rect{
		X:      r.X + t.Left,
		Y:      r.Y + t.Top,
		Width:  r.Width - t.Left - t.Right,
		Height: r.Height - t.Top - t.Bottom,
	}
}

// DeflateBy moves every edge inward by d.
func (r Rect) DeflateBy(d float64) Rect {
	return r.Deflate(UniformThickness(d))
}

// Translate returns the rectangle moved by v.
func (r Rect) Translate(v Vector) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// Mul scales position and size by s.
func (r Rect) Mul(s float64) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, Width: r.Width * s, Height: r.Height * s}
}

// MulVector scales position and size component-wise by v.
func (r Rect) MulVector(v Vector) Rect {
	return Rect{X: r.X * v.X, Y: r.Y * v.Y, Width: r.Width * v.X, Height: r.Height * v.Y}
}

// Div divides position and size by s.
func (r Rect) Div(s float64) Rect {
	return Rect{X: r.X / s, Y: r.Y / s, Width: r.Width / s, Height: r.Height / s}
}

// CenterRect returns a rectangle with the size of other, centered in r.
func (r Rect) CenterRect(other Rect) Rect {
	return Rect{
		X:      r.X + (r.Width-other.Width)/2,
		Y:      r.Y + (r.Height-other.Height)/2,
		Width:  other.Width,
		Height: other.Height,
	}
}

// TransformToAABB transforms the four corners by m and returns the
// axis-aligned bounding box of the results. The box is exact for affine
// maps.
func (r Rect) TransformToAABB(m Matrix) Rect {
	corners := [4]Point{
		m.TransformPoint(r.TopLeft()),
		m.TransformPoint(r.TopRight()),
		m.TransformPoint(r.BottomRight()),
		m.TransformPoint(r.BottomLeft()),
	}

	left, top := math.Inf(1), math.Inf(1)
	right, bottom := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		left = math.Min(left, p.X)
		top = math.Min(top, p.Y)
		right = math.Max(right, p.X)
		bottom = math.Max(bottom, p.Y)
	}
	return RectFromPoints(Point{X: left, Y: top}, Point{X: right, Y: bottom})
}

// WithX returns a copy of the rectangle with X replaced.
func (r Rect) WithX(x float64) Rect { r.X = x; return r }

// WithY returns a copy of the rectangle with Y replaced.
func (r Rect) WithY(y float64) Rect { r.Y = y; return r }

// WithWidth returns a copy of the rectangle with Width replaced.
func (r Rect) WithWidth(w float64) Rect { r.Width = w; return r }

// WithHeight returns a copy of the rectangle with Height replaced.
func (r Rect) WithHeight(h float64) Rect { r.Height = h; return r }

// IsZero returns true if all four components are exactly zero.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// NearlyEquals reports whether all four components are close.
func (r Rect) NearlyEquals(o Rect) bool {
	return scalar.AreClose(r.X, o.X) && scalar.AreClose(r.Y, o.Y) &&
		scalar.AreClose(r.Width, o.Width) && scalar.AreClose(r.Height, o.Height)
}

// String returns "x, y, width, height".
func (r Rect) String() string {
	return joinNumbers(r.X, r.Y, r.Width, r.Height)
}

// ParseRect parses four numbers "x, y, width, height".
func ParseRect(s string) (Rect, error) {
	vs, err := tokenizer.Floats(s, 4)
	if err != nil {
		return Rect{}, formatError("rect", s)
	}
	return Rect{X: vs[0], Y: vs[1], Width: vs[2], Height: vs[3]}, nil
}
