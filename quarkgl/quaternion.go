package quarkgl

import (
	"math"

	"quark/quarkgl/internal/simd"
)

// Quaternion is a rotation quaternion with scalar part W.
//
// Rotation operations assume unit length; Norm restores it.
type Quaternion struct {
	X, Y, Z, W float32
}

// slerpLinear is the cosine above which Slerp falls back to a linear blend.
const slerpLinear = 0.9995

func IdentityQuaternion() Quaternion { return Quaternion{W: 1} }

// FromAxisAngle returns the rotation of rad radians around axis.
func FromAxisAngle(axis Vector, rad float32) Quaternion {
	s, c := math.Sincos(float64(rad) / 2)
	n := axis.Norm().Scale(float32(s))
	return Quaternion{X: n.X, Y: n.Y, Z: n.Z, W: float32(c)}
}

func quatFrom(f simd.Floats) Quaternion { return Quaternion{X: f[0], Y: f[1], Z: f[2], W: f[3]} }

func (q Quaternion) Floats() simd.Floats { return simd.Set(q.X, q.Y, q.Z, q.W) }

func (q Quaternion) Add(o Quaternion) Quaternion {
	return quatFrom(simd.Add(q.Floats(), o.Floats()))
}

func (q Quaternion) Sub(o Quaternion) Quaternion {
	return quatFrom(simd.Sub(q.Floats(), o.Floats()))
}

func (q Quaternion) Scale(s float32) Quaternion {
	return quatFrom(simd.Mul(q.Floats(), simd.Set1(s)))
}

// Div divides every component by s. s must not be zero.
func (q Quaternion) Div(s float32) Quaternion {
	debugAssert(s != 0, "Quaternion.Div by zero")
	return quatFrom(simd.Div(q.Floats(), simd.Set1(s)))
}

func (q Quaternion) Equal(o Quaternion) bool { return simd.AllClose(q.Floats(), o.Floats()) }

func (q Quaternion) Reciprocal() Quaternion { return quatFrom(simd.Reciprocal(q.Floats())) }
func (q Quaternion) Sqrt() Quaternion       { return quatFrom(simd.Sqrt(q.Floats())) }

// Dot is the 4-component dot product.
func (q Quaternion) Dot(o Quaternion) float32 {
	return simd.GetFirst(simd.HorizonSum(q.Floats(), o.Floats(), 0xF1))
}

func (q Quaternion) Length() float32 {
	return simd.GetFirst(simd.Sqrt(simd.Set1(q.Dot(q))))
}

func (q Quaternion) Norm() Quaternion {
	return quatFrom(simd.Div(q.Floats(), simd.Set1(q.Length())))
}

// Mul is the Hamilton product q*o: rotating by o first, then by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

func (q Quaternion) Conjugate() Quaternion {
	return quatFrom(simd.Mul(q.Floats(), simd.Set(-1, -1, -1, 1)))
}

// Rotate applies the rotation to the XYZ part of v; W is kept.
func (q Quaternion) Rotate(v Vector) Vector {
	p := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vector{X: r.X, Y: r.Y, Z: r.Z, W: v.W}
}

// ToMatrix returns the rotation matrix of a unit quaternion.
func (q Quaternion) ToMatrix() Matrix {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return Matrix{Cols: [4]simd.Floats{
		simd.Set(1-yy-zz, xy+wz, xz-wy, 0),
		simd.Set(xy-wz, 1-xx-zz, yz+wx, 0),
		simd.Set(xz+wy, yz-wx, 1-xx-yy, 0),
		simd.Set(0, 0, 0, 1),
	}}
}

// Slerp interpolates along the shortest arc from q (t=0) to o (t=1).
func (q Quaternion) Slerp(o Quaternion, t float32) Quaternion {
	cos := q.Dot(o)
	if cos < 0 {
		o = o.Scale(-1)
		cos = -cos
	}
	if cos > slerpLinear {
		return q.Add(o.Sub(q).Scale(t))
	}
	theta := math.Acos(float64(cos))
	sin := math.Sin(theta)
	k0 := float32(math.Sin((1-float64(t))*theta) / sin)
	k1 := float32(math.Sin(float64(t)*theta) / sin)
	return quatFrom(simd.Add(simd.Mul(q.Floats(), simd.Set1(k0)), simd.Mul(o.Floats(), simd.Set1(k1))))
}
