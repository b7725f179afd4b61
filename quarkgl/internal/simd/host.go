package simd

import (
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"
)

var hostLevels = []cpu.SIMDLevel{cpu.SIMDSSE2, cpu.SIMDAVX, cpu.SIMDAVX2, cpu.SIMDNEON}

// Host describes the vector extensions of the running machine next to the
// compiled backend, e.g. "exact (amd64: sse2 avx avx2)". It is diagnostic only.
func Host() string {
	return describe(cpu.DetectFeatures())
}

func describe(f cpu.Features) string {
	var ext []string
	for _, lvl := range hostLevels {
		if cpu.Supports(f, lvl) {
			ext = append(ext, strings.ToLower(lvl.String()))
		}
	}
	if len(ext) == 0 {
		ext = append(ext, strings.ToLower(cpu.SIMDNone.String()))
	}
	arch := f.Architecture
	if arch == "" {
		arch = "unknown"
	}
	return Backend + " (" + arch + ": " + strings.Join(ext, " ") + ")"
}
