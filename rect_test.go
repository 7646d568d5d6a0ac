package prim

import (
	"errors"
	"math"
	"testing"
)

func TestRect_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"already normal", NewRect(1, 2, 3, 4), NewRect(1, 2, 3, 4)},
		{"negative both", NewRect(0, 0, -10, -10), NewRect(-10, -10, 10, 10)},
		{"negative width", NewRect(5, 5, -2, 3), NewRect(3, 5, 2, 3)},
		{"nan x", NewRect(math.NaN(), 0, 1, 1), Rect{}},
		{"nan height", NewRect(0, 0, 1, math.NaN()), Rect{}},
		{"inf minus inf right", NewRect(math.Inf(1), 0, math.Inf(-1), 1), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("%v.Normalize() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 5), NewRect(2, 3, 4, 5)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), Rect{}},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{}},
		{"nan x", NewRect(math.NaN(), 0, 10, 10), NewRect(0, 0, 5, 5), Rect{}},
		{"nan height", NewRect(0, 0, 10, math.NaN()), NewRect(0, 0, 5, 5), Rect{}},
		{"infinite minus infinite", NewRect(math.Inf(1), 0, math.Inf(-1), 10), NewRect(0, 0, 5, 5), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("Intersect() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if !a.Intersects(NewRect(5, 5, 10, 10)) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(NewRect(10, 0, 5, 5)) {
		t.Error("edge-sharing rects should not intersect")
	}
	if a.Intersects(NewRect(-5, -5, 2, 2)) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestRect_Union(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), NewRect(0, 0, 25, 25)},
		{"zero left", Rect{}, NewRect(3, 4, 5, 6), NewRect(3, 4, 5, 6)},
		{"zero right", NewRect(3, 4, 5, 6), Rect{}, NewRect(3, 4, 5, 6)},
		{"empty away from origin", NewRect(100, 100, 0, 0), NewRect(1, 1, 1, 1), NewRect(1, 1, 1, 1)},
		{"line is not empty", NewRect(0, 0, 0, 10), NewRect(5, 0, 1, 1), NewRect(0, 0, 6, 10)},
		{"both empty", Rect{}, Rect{}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnionOptional(t *testing.T) {
	a := NewRect(0, 0, 1, 1)
	b := NewRect(2, 2, 1, 1)

	if got := UnionOptional(nil, nil); got != nil {
		t.Errorf("UnionOptional(nil, nil) = %v, want nil", *got)
	}
	if got := UnionOptional(&a, nil); got == nil || *got != a {
		t.Errorf("UnionOptional(a, nil) = %v, want %v", got, a)
	}
	if got := UnionOptional(nil, &b); got == nil || *got != b {
		t.Errorf("UnionOptional(nil, b) = %v, want %v", got, b)
	}
	if got := UnionOptional(&a, &b); got == nil || *got != NewRect(0, 0, 3, 3) {
		t.Errorf("UnionOptional(a, b) = %v, want 0, 0, 3, 3", got)
	}

	got := UnionOptional(&a, nil)
	got.X = 99
	if a.X != 0 {
		t.Error("UnionOptional result aliases its input")
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		p                    Point
		inclusive, exclusive bool
	}{
		{Pt(5, 5), true, true},
		{Pt(0, 0), true, true},
		{Pt(10, 10), true, false},
		{Pt(10, 5), true, false},
		{Pt(5, 10), true, false},
		{Pt(-1, 5), false, false},
		{Pt(11, 5), false, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.inclusive {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.inclusive)
		}
		if got := r.ContainsExclusive(tt.p); got != tt.exclusive {
			t.Errorf("ContainsExclusive(%v) = %v, want %v", tt.p, got, tt.exclusive)
		}
	}
	if !r.ContainsRect(NewRect(1, 1, 9, 9)) || r.ContainsRect(NewRect(1, 1, 10, 10)) {
		t.Error("ContainsRect gave wrong result")
	}
}

func TestRect_InflateDeflate(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	th := NewThickness(1, 2, 3, 4)

	inflated := r.Inflate(th)
	if want := NewRect(9, 8, 24, 26); inflated != want {
		t.Errorf("Inflate() = %v, want %v", inflated, want)
	}
	if got := inflated.Deflate(th); got != r {
		t.Errorf("Deflate(Inflate()) = %v, want %v", got, r)
	}
	if got := NewRect(0, 0, 4, 4).DeflateBy(3); got != NewRect(3, 3, -2, -2) {
		t.Errorf("DeflateBy past zero = %v, want 3, 3, -2, -2", got)
	}
	if got := r.InflateBy(5); got != NewRect(5, 5, 30, 30) {
		t.Errorf("InflateBy(5) = %v, want 5, 5, 30, 30", got)
	}
}

func TestRect_TransformToAABB(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if got := r.TransformToAABB(Identity()); got != r {
		t.Errorf("identity AABB = %v, want %v", got, r)
	}
	if got := r.TransformToAABB(Translate(5, -5).Multiply(Scale(2, 3))); got != NewRect(5, -5, 20, 30) {
		t.Errorf("scale+translate AABB = %v, want 5, -5, 20, 30", got)
	}
	if got := r.TransformToAABB(Scale(-1, 1)); got != NewRect(-10, 0, 10, 10) {
		t.Errorf("mirrored AABB = %v, want -10, 0, 10, 10", got)
	}
	got := r.TransformToAABB(Rotate(math.Pi / 2))
	if !got.NearlyEquals(NewRect(-10, 0, 10, 10)) {
		t.Errorf("rotated AABB = %v, want -10, 0, 10, 10", got)
	}
	got = r.TransformToAABB(Rotate(math.Pi / 4))
	half := 10 / math.Sqrt2
	if !got.NearlyEquals(NewRect(-half, 0, 2*half, 2*half)) {
		t.Errorf("45deg AABB = %v, want %v, 0, %v, %v", got, -half, 2*half, 2*half)
	}
}

func TestRect_Accessors(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if r.Right() != 4 || r.Bottom() != 6 {
		t.Errorf("Right/Bottom = %v/%v, want 4/6", r.Right(), r.Bottom())
	}
	if r.Center() != Pt(2.5, 4) {
		t.Errorf("Center() = %v, want (2.5, 4)", r.Center())
	}
	if r.TopRight() != Pt(4, 2) || r.BottomLeft() != Pt(1, 6) {
		t.Error("corner accessors gave wrong result")
	}
	if RectFromPoints(Pt(4, 6), Pt(1, 2)) != r {
		t.Errorf("RectFromPoints reversed = %v, want %v", RectFromPoints(Pt(4, 6), Pt(1, 2)), r)
	}
	if RectFromPointSize(r.Position(), r.Size()) != r {
		t.Error("RectFromPointSize(Position, Size) did not round trip")
	}
	if got := r.WithX(0).WithY(0).WithWidth(1).WithHeight(1); got != NewRect(0, 0, 1, 1) {
		t.Errorf("With* = %v, want 0, 0, 1, 1", got)
	}
	if got := NewRect(0, 0, 10, 10).CenterRect(NewRect(0, 0, 4, 2)); got != NewRect(3, 4, 4, 2) {
		t.Errorf("CenterRect() = %v, want 3, 4, 4, 2", got)
	}
}

func TestParseRect(t *testing.T) {
	r := NewRect(-1.5, 2, 30, 0.25)
	if r.String() != "-1.5, 2, 30, 0.25" {
		t.Errorf("String() = %q", r.String())
	}
	got, err := ParseRect(r.String())
	if err != nil || got != r {
		t.Errorf("ParseRect(%q) = %v, %v", r.String(), got, err)
	}
	if got, err := ParseRect("1 2 3 4"); err != nil || got != NewRect(1, 2, 3, 4) {
		t.Errorf("ParseRect(space separated) = %v, %v", got, err)
	}

	_, err = ParseRect("1, 2, 3")
	var fe *FormatError
	if !errors.As(err, &fe) || fe.Type != "rect" {
		t.Errorf("ParseRect(3 numbers) error = %v, want *FormatError for rect", err)
	}
}
