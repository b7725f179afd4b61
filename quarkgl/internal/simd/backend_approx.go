//go:build quarkgl_approx

package simd

import "math"

// Backend names the kernel compiled into this build.
//
// The approx kernel mimics hardware estimate instructions: a bit-level seed
// refined with Newton-Raphson steps. Results stay within Epsilon relative error
// of the exact kernel for normal inputs.
const Backend = "approx"

const refineSteps = 3

func Reciprocal(a Floats) Floats {
	return Floats{rcp(a[0]), rcp(a[1]), rcp(a[2]), rcp(a[3])}
}

func Sqrt(a Floats) Floats {
	return Floats{sqrt(a[0]), sqrt(a[1]), sqrt(a[2]), sqrt(a[3])}
}

func rcp(x float32) float32 {
	switch {
	case x == 0:
		if math.Signbit(float64(x)) {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	case math.IsInf(float64(x), 0):
		return 0
	case x != x:
		return x
	}
	ax := x
	if ax < 0 {
		ax = -ax
	}
	y := math.Float32frombits(0x7EF311C7 - math.Float32bits(ax))
	for i := 0; i < refineSteps; i++ {
		y = y * (2 - ax*y)
	}
	if x < 0 {
		return -y
	}
	return y
}

func sqrt(x float32) float32 {
	switch {
	case x == 0:
		return x
	case x < 0 || x != x:
		return float32(math.NaN())
	case math.IsInf(float64(x), 1):
		return x
	}
	y := math.Float32frombits(0x5F3759DF - math.Float32bits(x)>>1)
	half := 0.5 * x
	for i := 0; i < refineSteps; i++ {
		y = y * (1.5 - half*y*y)
	}
	return x * y
}
