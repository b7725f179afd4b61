package quarkgl

import (
	"math"

	"quark/quarkgl/internal/simd"
)

func Radians(deg float32) float32 { return deg * (math.Pi / 180) }
func Degrees(rad float32) float32 { return rad * (180 / math.Pi) }

// MatrixViewport maps NDC x,y in [-1,1] to pixel coordinates of a w*h target,
// with +Y pointing down. Z passes through.
func MatrixViewport(w, h int) Matrix {
	hw, hh := float32(w)/2, float32(h)/2
	m := Identity()
	m.Cols[0][0] = hw
	m.Cols[1][1] = -hh
	m.Cols[3][0] = hw
	m.Cols[3][1] = hh
	return m
}

// MatrixLookAt builds a right-handed view matrix looking from eye at target.
func MatrixLookAt(eye, target, up Vector) Matrix {
	eye = eye.withW(0)
	z := eye.Sub(target.withW(0)).Norm()
	x := up.withW(0).Cross(z).Norm()
	y := z.Cross(x)
	return Matrix{Cols: [4]simd.Floats{
		simd.Set(x.X, y.X, z.X, 0),
		simd.Set(x.Y, y.Y, z.Y, 0),
		simd.Set(x.Z, y.Z, z.Z, 0),
		simd.Set(-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1),
	}}
}

// MatrixPerspective builds a right-handed projection with depth mapped to
// [0,1] between near and far. fovY is in radians.
func MatrixPerspective(fovY, aspect, near, far float32) Matrix {
	f := 1 / float32(math.Tan(float64(fovY)/2))
	var m Matrix
	m.Cols[0][0] = f / aspect
	m.Cols[1][1] = f
	m.Cols[2][2] = far / (near - far)
	m.Cols[2][3] = -1
	m.Cols[3][2] = far * near / (near - far)
	return m
}

func MatrixScale(s Vector) Matrix {
	m := Identity()
	m.Cols[0][0] = s.X
	m.Cols[1][1] = s.Y
	m.Cols[2][2] = s.Z
	return m
}

// MatrixRotation rotates rad radians around axis.
func MatrixRotation(axis Vector, rad float32) Matrix {
	return FromAxisAngle(axis, rad).ToMatrix()
}

func MatrixTranslation(t Vector) Matrix {
	m := Identity()
	m.Cols[3] = simd.Set(t.X, t.Y, t.Z, 1)
	return m
}

func (v Vector) withW(w float32) Vector {
	v.W = w
	return v
}
