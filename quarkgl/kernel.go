package quarkgl

import "quark/quarkgl/internal/simd"

// KernelBackend names the vector kernel compiled into this build: "exact" by
// default or "approx" with the quarkgl_approx tag.
const KernelBackend = simd.Backend

// KernelInfo reports the kernel backend alongside the host CPU's vector
// extensions.
func KernelInfo() string { return simd.Host() }
