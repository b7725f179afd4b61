package quarkgl

import "quark/quarkgl/internal/simd"

// Vector is a 4-component value.
//
// W is 0 for directions and colors, 1 for affine points, and arbitrary for
// clip-space positions. Colors use X, Y, Z, W as R, G, B, A in 0..1.
type Vector struct {
	X, Y, Z, W float32
}

func Vec(x, y, z, w float32) Vector { return Vector{X: x, Y: y, Z: z, W: w} }

// Point returns an affine point (W=1).
func Point(x, y, z float32) Vector { return Vector{X: x, Y: y, Z: z, W: 1} }

// VectorFrom converts kernel lanes into a Vector.
func VectorFrom(f simd.Floats) Vector { return Vector{X: f[0], Y: f[1], Z: f[2], W: f[3]} }

func (v Vector) Floats() simd.Floats { return simd.Set(v.X, v.Y, v.Z, v.W) }

func (v Vector) Add(o Vector) Vector { return VectorFrom(simd.Add(v.Floats(), o.Floats())) }
func (v Vector) Sub(o Vector) Vector { return VectorFrom(simd.Sub(v.Floats(), o.Floats())) }

func (v Vector) Scale(s float32) Vector {
	return VectorFrom(simd.Mul(v.Floats(), simd.Set1(s)))
}

// Div divides every lane by s. s must not be zero.
func (v Vector) Div(s float32) Vector {
	debugAssert(s != 0, "Vector.Div by zero")
	return VectorFrom(simd.Div(v.Floats(), simd.Set1(s)))
}

// Equal compares lane-wise within the kernel tolerance.
func (v Vector) Equal(o Vector) bool { return simd.AllClose(v.Floats(), o.Floats()) }

func (v Vector) Reciprocal() Vector { return VectorFrom(simd.Reciprocal(v.Floats())) }
func (v Vector) Sqrt() Vector       { return VectorFrom(simd.Sqrt(v.Floats())) }

// Dot is the 3-component dot product; W is ignored.
func (v Vector) Dot(o Vector) float32 {
	return simd.GetFirst(simd.HorizonSum(v.Floats(), o.Floats(), 0x71))
}

// Cross is the 3-component cross product. The result has W=0.
func (v Vector) Cross(o Vector) Vector {
	a, b := v.Floats(), o.Floats()
	l := simd.Mul(simd.Swizzle(a, 1, 2, 0, 3), simd.Swizzle(b, 2, 0, 1, 3))
	r := simd.Mul(simd.Swizzle(a, 2, 0, 1, 3), simd.Swizzle(b, 1, 2, 0, 3))
	return VectorFrom(simd.Sub(l, r))
}

// Cross2D is the Z component of the cross product of the XY parts.
func (v Vector) Cross2D(o Vector) float32 { return v.X*o.Y - v.Y*o.X }

func (v Vector) Length() float32 {
	return simd.GetFirst(simd.Sqrt(simd.Set1(v.Dot(v))))
}

// Norm returns v divided by its length. A zero vector yields NaN lanes.
func (v Vector) Norm() Vector {
	return VectorFrom(simd.Div(v.Floats(), simd.Set1(v.Length())))
}

// Lerp blends every lane from v (t=0) to o (t=1).
func (v Vector) Lerp(o Vector, t float32) Vector {
	return v.Add(o.Sub(v).Scale(t))
}
