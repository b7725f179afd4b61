package simd

import (
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestHorizonSumMask(t *testing.T) {
	a := Set(1, 2, 3, 4)
	b := Set(5, 6, 7, 8)

	tests := []struct {
		mask uint8
		want Floats
	}{
		{0x71, Set(38, 0, 0, 0)},
		{0xFF, Set1(70)},
		{0xF1, Set(70, 0, 0, 0)},
		{0x7F, Set1(38)},
		{0x18, Set(0, 0, 0, 5)},
		{0x00, Set(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		if got := HorizonSum(a, b, tt.mask); got != tt.want {
			t.Fatalf("HorizonSum mask=%#x: got %v want %v", tt.mask, got, tt.want)
		}
	}
}

func TestLaneMoves(t *testing.T) {
	a := Set(0, 1, 2, 3)
	b := Set(10, 11, 12, 13)

	tests := []struct {
		name string
		got  Floats
		want Floats
	}{
		{"shuffle", Shuffle(a, b, 3, 0, 1, 2), Set(3, 0, 11, 12)},
		{"swizzle", Swizzle(a, 1, 2, 0, 3), Set(1, 2, 0, 3)},
		{"unpacklo", UnpackLow(a, b), Set(0, 10, 1, 11)},
		{"unpackhi", UnpackHigh(a, b), Set(2, 12, 3, 13)},
		{"packlo", PackLow(a, b), Set(0, 1, 10, 11)},
		{"packhi", PackHigh(a, b), Set(2, 3, 12, 13)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s: got %v want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Set(1, -2, 3, 8)
	b := Set(2, 4, -6, 0.5)
	if got := Add(a, b); got != Set(3, 2, -3, 8.5) {
		t.Fatalf("Add: %v", got)
	}
	if got := Sub(a, b); got != Set(-1, -6, 9, 7.5) {
		t.Fatalf("Sub: %v", got)
	}
	if got := Mul(a, b); got != Set(2, -8, -18, 4) {
		t.Fatalf("Mul: %v", got)
	}
	if got := Div(a, b); got != Set(0.5, -0.5, -0.5, 16) {
		t.Fatalf("Div: %v", got)
	}
	if got := GetFirst(a); got != 1 {
		t.Fatalf("GetFirst: %v", got)
	}
	if Reset() != (Floats{}) {
		t.Fatalf("Reset not zero")
	}
}

func TestDivByZeroIsNotFinite(t *testing.T) {
	got := Div(Set1(1), Reset())
	if !math.IsInf(float64(got[0]), 1) {
		t.Fatalf("1/0 = %v", got[0])
	}
}

func TestReciprocalAndSqrtPrecision(t *testing.T) {
	inputs := []float32{1e-3, 0.25, 0.5, 1, 2, 3, 7.5, 100, 12345.678}
	for _, x := range inputs {
		r := Reciprocal(Set1(x))[0]
		if rel := relErr(r, float32(1/float64(x))); rel > Epsilon {
			t.Fatalf("%s Reciprocal(%v)=%v rel err %g", Backend, x, r, rel)
		}
		s := Sqrt(Set1(x))[0]
		if rel := relErr(s, float32(math.Sqrt(float64(x)))); rel > Epsilon {
			t.Fatalf("%s Sqrt(%v)=%v rel err %g", Backend, x, s, rel)
		}
	}
	if got := Sqrt(Reset()); got != Reset() {
		t.Fatalf("Sqrt(0)=%v", got)
	}
	if got := Reciprocal(Set1(-4))[0]; relErr(got, -0.25) > Epsilon {
		t.Fatalf("Reciprocal(-4)=%v", got)
	}
}

func TestAllClose(t *testing.T) {
	a := Set(1, 2, 3, 4)
	if !AllClose(a, Set(1+5e-6, 2, 3, 4-5e-6)) {
		t.Fatalf("expected close within epsilon")
	}
	if AllClose(a, Set(1, 2, 3.001, 4)) {
		t.Fatalf("expected not close")
	}
	nan := float32(math.NaN())
	if AllClose(Set(nan, 0, 0, 0), Set(nan, 0, 0, 0)) {
		t.Fatalf("NaN lanes compared close")
	}
	if !AllCloseEps(a, Set(1.5, 2, 3, 4), 0.5) {
		t.Fatalf("AllCloseEps ignored eps")
	}
}

func TestDescribeHost(t *testing.T) {
	got := describe(cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"})
	if want := Backend + " (amd64: sse2 avx2)"; got != want {
		t.Fatalf("describe: got %q want %q", got, want)
	}
	got = describe(cpu.Features{HasNEON: true, ForceGeneric: true, Architecture: "arm64"})
	if want := Backend + " (arm64: none)"; got != want {
		t.Fatalf("describe forced generic: got %q want %q", got, want)
	}
	if h := Host(); !strings.HasPrefix(h, Backend+" (") {
		t.Fatalf("Host: %q", h)
	}
}

func relErr(got, want float32) float64 {
	d := math.Abs(float64(got) - float64(want))
	if want == 0 {
		return d
	}
	return d / math.Abs(float64(want))
}
