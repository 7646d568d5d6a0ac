package srgb

import (
	"math"
	"testing"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := uint8(i)
		if got := Encode(Decode(b)); got != b {
			t.Errorf("Encode(Decode(%d)) = %d", b, got)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   uint8
		want float64
	}{
		{0, 0},
		{255, 1},
		{10, 10.0 / 255 / 12.92},
		{128, math.Pow((128.0/255+0.055)/1.055, 2.4)},
	}
	for _, tt := range tests {
		if got := Decode(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Decode(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if d := Decode(128); d > 0.22 || d < 0.21 {
		t.Errorf("Decode(128) = %v, want about 0.216", d)
	}
}

func TestEncodeClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{2, 255},
		{math.Inf(1), 255},
		{math.NaN(), 0},
		{0.5, 188},
	}
	for _, tt := range tests {
		if got := Encode(tt.in); got != tt.want {
			t.Errorf("Encode(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTransferFunctionsInverse(t *testing.T) {
	for s := 0.0; s <= 1; s += 0.01 {
		if got := FromLinear(ToLinear(s)); math.Abs(got-s) > 1e-9 {
			t.Errorf("FromLinear(ToLinear(%v)) = %v", s, got)
		}
	}
}
