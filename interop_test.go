package prim

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func TestColor_GPU(t *testing.T) {
	c := FromArgb(0, 255, 51, 0)
	g := c.GPU()
	if g != (gputypes.Color{R: 1, G: 0.2, B: 0, A: 0}) {
		t.Errorf("GPU() = %+v", g)
	}
	if back := ColorFromGPU(g); back != c {
		t.Errorf("ColorFromGPU(GPU()) = %+v, want %+v", back, c)
	}
	hdr := gputypes.Color{R: 4, G: -1, B: 0.5, A: 1}
	if got := ColorFromGPU(hdr); got != FromRgb(255, 0, 128) {
		t.Errorf("ColorFromGPU(hdr) = %+v, want clamped", got)
	}
}

func TestColor_Colorful(t *testing.T) {
	for _, c := range []Color{Red, Blue, FromRgb(12, 200, 99), White} {
		back := ColorFromColorful(c.Colorful(), 77)
		if back != c.WithAlpha(77) {
			t.Errorf("ColorFromColorful(%+v.Colorful()) = %+v", c, back)
		}
	}
	out := colorful.Color{R: 1.5, G: -0.2, B: 0.5}
	if got := ColorFromColorful(out, 255); got != FromRgb(255, 0, 128) {
		t.Errorf("ColorFromColorful(out of gamut) = %+v", got)
	}
}

func TestColor_DistanceCIEDE2000(t *testing.T) {
	if d := Red.DistanceCIEDE2000(Red.WithAlpha(0)); d > 1e-9 {
		t.Errorf("distance ignoring alpha = %v, want 0", d)
	}
	near := Red.DistanceCIEDE2000(FromRgb(250, 0, 0))
	far := Red.DistanceCIEDE2000(Blue)
	if !(near > 0 && near < far) {
		t.Errorf("distances near=%v far=%v, want 0 < near < far", near, far)
	}
}

func TestMatrix_Aff3(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.5))
	if got := MatrixFromAff3(m.Aff3()); got != m {
		t.Errorf("MatrixFromAff3(Aff3()) = %+v, want %+v", got, m)
	}
	a := f64.Aff3{1, 2, 3, 4, 5, 6}
	if got := MatrixFromAff3(a); got != (Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}) {
		t.Errorf("MatrixFromAff3() = %+v", got)
	}
}

func TestFixed(t *testing.T) {
	if got := Pt(1.5, -2).Fixed(); got != (fixed.Point26_6{X: 96, Y: -128}) {
		t.Errorf("Point.Fixed() = %v", got)
	}
	r := NewRect(10, 10, -10, 5).Fixed()
	want := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 0, Y: 640},
		Max: fixed.Point26_6{X: 640, Y: 960},
	}
	if r != want {
		t.Errorf("Rect.Fixed() = %v, want %v", r, want)
	}
	if got := toFixed(1.0 / 128); got != 1 {
		t.Errorf("toFixed(1/128) = %v", got)
	}
}

func TestColor_GPULinear(t *testing.T) {
	c := FromArgb(128, 128, 0, 255)
	g := c.GPULinear()
	if g.R < 0.21 || g.R > 0.22 || g.G != 0 || g.B != 1 {
		t.Errorf("GPULinear() = %+v, want R about 0.216", g)
	}
	if g.A != 128.0/255 {
		t.Errorf("GPULinear().A = %v, want alpha left linear", g.A)
	}
	for c := range gridColors {
		if back := ColorFromGPULinear(c.GPULinear()); back != c {
			t.Fatalf("ColorFromGPULinear(GPULinear(%+v)) = %+v", c, back)
		}
	}
}
