//go:build !quarkgl_approx

package simd

import "math"

// Backend names the kernel compiled into this build.
const Backend = "exact"

func Reciprocal(a Floats) Floats {
	return Floats{1 / a[0], 1 / a[1], 1 / a[2], 1 / a[3]}
}

func Sqrt(a Floats) Floats {
	return Floats{
		float32(math.Sqrt(float64(a[0]))),
		float32(math.Sqrt(float64(a[1]))),
		float32(math.Sqrt(float64(a[2]))),
		float32(math.Sqrt(float64(a[3]))),
	}
}
