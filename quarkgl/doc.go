// Package quarkgl is a small software 3D rasterizer.
//
// Pipeline (fixed):
//
//	Vertices → Shader.Vertex (model to screen) → assembly (points/lines/triangles)
//	→ back-face cull → bounding box → barycentric coverage → depth test
//	→ Shader.Color → FrameBuffer.
//
// The math types (Vector, Matrix, Quaternion) are built only on the 4-lane kernel
// in internal/simd. Matrices are column-major; Cols[3] holds the translation.
// Screen space has its origin at the top-left with +Y down, and depth in [0,1]
// with smaller values nearer.
//
// Rendering is single-threaded. A FrameBuffer or Renderer must not be shared
// between goroutines without external locking. The package keeps no global
// state: buffers, renderers and scenes are owned by the caller.
//
// Numeric backend:
//
// The default kernel evaluates reciprocals and square roots exactly. The build tag
// `quarkgl_approx` selects estimate-and-refine versions instead. The build tag
// `quarkgl_debug` turns precondition violations (division by zero) into panics.
package quarkgl
