package prim

import "testing"

func TestThickness_Constructors(t *testing.T) {
	tests := []struct {
		name string
		got  Thickness
		want Thickness
	}{
		{"uniform", UniformThickness(2), Thickness{2, 2, 2, 2}},
		{"symmetric", SymmetricThickness(1, 2), Thickness{1, 2, 1, 2}},
		{"explicit", NewThickness(1, 2, 3, 4), Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestThickness_IsUniform(t *testing.T) {
	tests := []struct {
		th   Thickness
		want bool
	}{
		{UniformThickness(3), true},
		{Thickness{}, true},
		{SymmetricThickness(1, 2), false},
		{NewThickness(1, 1, 1, 2), false},
		{NewThickness(2, 1, 1, 1), false},
		{NewThickness(1, 1, 2, 1), false},
	}
	for _, tt := range tests {
		if got := tt.th.IsUniform(); got != tt.want {
			t.Errorf("%v.IsUniform() = %v, want %v", tt.th, got, tt.want)
		}
	}
}

func TestThickness_Arithmetic(t *testing.T) {
	a := NewThickness(1, 2, 3, 4)
	b := UniformThickness(1)
	if got := a.Add(b); got != NewThickness(2, 3, 4, 5) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != NewThickness(0, 1, 2, 3) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Mul(2); got != NewThickness(2, 4, 6, 8) {
		t.Errorf("Mul() = %v", got)
	}
	if a.Horizontal() != 4 || a.Vertical() != 6 {
		t.Errorf("Horizontal/Vertical = %v/%v, want 4/6", a.Horizontal(), a.Vertical())
	}
	if !(Thickness{}).IsZero() || a.IsZero() {
		t.Error("IsZero gave wrong result")
	}
}

func TestParseThickness(t *testing.T) {
	tests := []struct {
		in      string
		want    Thickness
		wantErr bool
	}{
		{"4", UniformThickness(4), false},
		{"1,2", SymmetricThickness(1, 2), false},
		{"1 2 3 4", NewThickness(1, 2, 3, 4), false},
		{"1,2,3", Thickness{}, true},
		{"", Thickness{}, true},
	}
	for _, tt := range tests {
		got, err := ParseThickness(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseThickness(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseThickness(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	th := NewThickness(0.5, 1, 1.5, 2)
	back, err := ParseThickness(th.String())
	if err != nil || back != th {
		t.Errorf("round trip of %q = %v, %v", th.String(), back, err)
	}
}
