// Package simd is the 4-lane float32 kernel underneath the quarkgl math types.
//
// Every operation works on whole lanes and never branches on lane values. Exactly
// one backend is compiled into a build; it decides how Reciprocal and Sqrt are
// evaluated (see Backend).
//
// Lane order is X, Y, Z, W at indices 0..3. Shuffle and Swizzle take plain lane
// indices in that order.
package simd

import "golang.org/x/image/math/f32"

// Floats is one 4-lane value.
type Floats = f32.Vec4

// Epsilon is the per-lane tolerance used by AllClose.
const Epsilon = 1e-5

func Set(x, y, z, w float32) Floats { return Floats{x, y, z, w} }

// Set1 broadcasts v into all lanes.
func Set1(v float32) Floats { return Floats{v, v, v, v} }

func Reset() Floats { return Floats{} }

func GetFirst(a Floats) float32 { return a[0] }

func Add(a, b Floats) Floats {
	return Floats{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func Sub(a, b Floats) Floats {
	return Floats{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func Mul(a, b Floats) Floats {
	return Floats{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div divides lane-wise. Zero lanes in b produce Inf or NaN.
func Div(a, b Floats) Floats {
	return Floats{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// HorizonSum is a masked dot product.
//
// Bits 4..7 of mask pick the lanes of a*b that are summed. Bits 0..3 pick the
// output lanes that receive the sum; the others are zero. 0x71 sums X, Y and Z
// into lane X; 0xFF sums everything into every lane.
func HorizonSum(a, b Floats, mask uint8) Floats {
	var sum float32
	for i := 0; i < 4; i++ {
		if mask&(0x10<<i) != 0 {
			sum += a[i] * b[i]
		}
	}
	var out Floats
	for i := 0; i < 4; i++ {
		if mask&(1<<i) != 0 {
			out[i] = sum
		}
	}
	return out
}

// Shuffle returns (a[i], a[j], b[k], b[l]).
func Shuffle(a, b Floats, i, j, k, l int) Floats {
	return Floats{a[i], a[j], b[k], b[l]}
}

// Swizzle returns (a[i], a[j], a[k], a[l]).
func Swizzle(a Floats, i, j, k, l int) Floats {
	return Floats{a[i], a[j], a[k], a[l]}
}

// UnpackLow interleaves the low halves: (a0, b0, a1, b1).
func UnpackLow(a, b Floats) Floats { return Floats{a[0], b[0], a[1], b[1]} }

// UnpackHigh interleaves the high halves: (a2, b2, a3, b3).
func UnpackHigh(a, b Floats) Floats { return Floats{a[2], b[2], a[3], b[3]} }

// PackLow joins the low halves: (a0, a1, b0, b1).
func PackLow(a, b Floats) Floats { return Floats{a[0], a[1], b[0], b[1]} }

// PackHigh joins the high halves: (a2, a3, b2, b3).
func PackHigh(a, b Floats) Floats { return Floats{a[2], a[3], b[2], b[3]} }

// AllClose reports whether every lane of a and b differs by at most Epsilon.
func AllClose(a, b Floats) bool { return AllCloseEps(a, b, Epsilon) }

func AllCloseEps(a, b Floats, eps float32) bool {
	for i := 0; i < 4; i++ {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		// NaN lanes fail here too.
		if !(d <= eps) {
			return false
		}
	}
	return true
}
