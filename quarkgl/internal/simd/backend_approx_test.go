//go:build quarkgl_approx

package simd

import (
	"math"
	"testing"
)

func TestApproxSpecialValues(t *testing.T) {
	inf := float32(math.Inf(1))
	got := Reciprocal(Set(0, float32(math.Copysign(0, -1)), inf, 1))
	if !math.IsInf(float64(got[0]), 1) || !math.IsInf(float64(got[1]), -1) || got[2] != 0 {
		t.Fatalf("Reciprocal specials: %v", got)
	}
	s := Sqrt(Set(-1, 0, inf, 4))
	if s[0] == s[0] || s[1] != 0 || !math.IsInf(float64(s[2]), 1) {
		t.Fatalf("Sqrt specials: %v", s)
	}
	if relErr(s[3], 2) > Epsilon {
		t.Fatalf("Sqrt(4)=%v", s[3])
	}
}

func TestApproxBackendName(t *testing.T) {
	if Backend != "approx" {
		t.Fatalf("Backend=%q", Backend)
	}
}
