package quarkgl

import (
	"golang.org/x/image/math/f32"

	"quark/quarkgl/internal/simd"
)

// Matrix is a column-major 4x4 matrix.
//
// Cols[c][r] is column c, row r, so a translation lives in Cols[3]. The zero
// value is the zero matrix; use Identity for a neutral transform.
type Matrix struct {
	Cols [4]simd.Floats
}

// projectEps is how close W must be to 0 or 1 for Project to skip the divide.
const projectEps = 1e-6

func Identity() Matrix {
	return Matrix{Cols: [4]simd.Floats{
		simd.Set(1, 0, 0, 0),
		simd.Set(0, 1, 0, 0),
		simd.Set(0, 0, 1, 0),
		simd.Set(0, 0, 0, 1),
	}}
}

// Fill returns a matrix whose columns all equal v.
func Fill(v Vector) Matrix {
	f := v.Floats()
	return Matrix{Cols: [4]simd.Floats{f, f, f, f}}
}

// FromColumns builds a matrix from four column vectors.
func FromColumns(c0, c1, c2, c3 Vector) Matrix {
	return Matrix{Cols: [4]simd.Floats{c0.Floats(), c1.Floats(), c2.Floats(), c3.Floats()}}
}

// FromBasis places x, y, z in the first three columns with W forced to 0, and
// (0,0,0,1) in the last.
func FromBasis(x, y, z Vector) Matrix {
	x.W, y.W, z.W = 0, 0, 0
	return FromColumns(x, y, z, Vec(0, 0, 0, 1))
}

func (m Matrix) Column(c int) Vector { return VectorFrom(m.Cols[c]) }

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) float32 { return m.Cols[c][r] }

// Mat4 returns the row-major f32.Mat4 form used by golang.org/x/image.
func (m Matrix) Mat4() f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m.Cols[c][r]
		}
	}
	return out
}

// MatrixFromMat4 converts a row-major f32.Mat4.
func MatrixFromMat4(a f32.Mat4) Matrix {
	var m Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Cols[c][r] = a[r*4+c]
		}
	}
	return m
}

func (m Matrix) each(fn func(simd.Floats) simd.Floats) Matrix {
	for i := range m.Cols {
		m.Cols[i] = fn(m.Cols[i])
	}
	return m
}

func (m Matrix) Add(o Matrix) Matrix {
	for i := range m.Cols {
		m.Cols[i] = simd.Add(m.Cols[i], o.Cols[i])
	}
	return m
}

func (m Matrix) Sub(o Matrix) Matrix {
	for i := range m.Cols {
		m.Cols[i] = simd.Sub(m.Cols[i], o.Cols[i])
	}
	return m
}

func (m Matrix) Scale(s float32) Matrix {
	k := simd.Set1(s)
	return m.each(func(c simd.Floats) simd.Floats { return simd.Mul(c, k) })
}

// Div divides every element by s. s must not be zero.
func (m Matrix) Div(s float32) Matrix {
	debugAssert(s != 0, "Matrix.Div by zero")
	k := simd.Set1(s)
	return m.each(func(c simd.Floats) simd.Floats { return simd.Div(c, k) })
}

func (m Matrix) Reciprocal() Matrix { return m.each(simd.Reciprocal) }
func (m Matrix) Sqrt() Matrix       { return m.each(simd.Sqrt) }

// Equal compares every column within the kernel tolerance.
func (m Matrix) Equal(o Matrix) bool {
	for i := range m.Cols {
		if !simd.AllClose(m.Cols[i], o.Cols[i]) {
			return false
		}
	}
	return true
}

// Mul returns m*o.
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	for i := range o.Cols {
		out.Cols[i] = m.combine(o.Cols[i])
	}
	return out
}

// MulVec returns m*v, using all four lanes of v.
func (m Matrix) MulVec(v Vector) Vector { return VectorFrom(m.combine(v.Floats())) }

// combine sums the columns weighted by the lanes of w.
func (m Matrix) combine(w simd.Floats) simd.Floats {
	acc := simd.Mul(m.Cols[0], simd.Swizzle(w, 0, 0, 0, 0))
	acc = simd.Add(acc, simd.Mul(m.Cols[1], simd.Swizzle(w, 1, 1, 1, 1)))
	acc = simd.Add(acc, simd.Mul(m.Cols[2], simd.Swizzle(w, 2, 2, 2, 2)))
	return simd.Add(acc, simd.Mul(m.Cols[3], simd.Swizzle(w, 3, 3, 3, 3)))
}

// Project transforms v and performs the perspective divide.
//
// The divide is skipped when W is within 1e-6 of 0 or of 1.
func (m Matrix) Project(v Vector) Vector {
	r := m.combine(v.Floats())
	w := r[3]
	if abs32(w) <= projectEps || abs32(w-1) <= projectEps {
		return VectorFrom(r)
	}
	return VectorFrom(simd.Mul(r, simd.Reciprocal(simd.Set1(w))))
}

func (m Matrix) Transpose() Matrix {
	t0 := simd.UnpackLow(m.Cols[0], m.Cols[1])
	t1 := simd.UnpackHigh(m.Cols[0], m.Cols[1])
	t2 := simd.UnpackLow(m.Cols[2], m.Cols[3])
	t3 := simd.UnpackHigh(m.Cols[2], m.Cols[3])
	return Matrix{Cols: [4]simd.Floats{
		simd.PackLow(t0, t2),
		simd.PackHigh(t0, t2),
		simd.PackLow(t1, t3),
		simd.PackHigh(t1, t3),
	}}
}

// Inverse returns the inverse by 2x2 block decomposition.
//
// A singular matrix produces Inf or NaN elements; callers must not rely on the
// result in that case.
func (m Matrix) Inverse() Matrix {
	c0, c1, c2, c3 := m.Cols[0], m.Cols[1], m.Cols[2], m.Cols[3]

	// 2x2 blocks, each stored column-major in one lane group.
	a := simd.PackLow(c0, c1)
	b := simd.PackHigh(c0, c1)
	c := simd.PackLow(c2, c3)
	d := simd.PackHigh(c2, c3)

	// Determinants of a, b, c, d in lanes 0..3.
	det := simd.Sub(
		simd.Mul(simd.Shuffle(c0, c2, 0, 2, 0, 2), simd.Shuffle(c1, c3, 1, 3, 1, 3)),
		simd.Mul(simd.Shuffle(c0, c2, 1, 3, 1, 3), simd.Shuffle(c1, c3, 0, 2, 0, 2)),
	)
	detA := simd.Swizzle(det, 0, 0, 0, 0)
	detB := simd.Swizzle(det, 1, 1, 1, 1)
	detC := simd.Swizzle(det, 2, 2, 2, 2)
	detD := simd.Swizzle(det, 3, 3, 3, 3)

	dc := adjMul2(d, c)
	ab := adjMul2(a, b)

	x := simd.Sub(simd.Mul(detD, a), mul2(b, dc))
	w := simd.Sub(simd.Mul(detA, d), mul2(c, ab))
	y := simd.Sub(simd.Mul(detB, c), mulAdj2(d, ab))
	z := simd.Sub(simd.Mul(detC, b), mulAdj2(a, dc))

	detM := simd.Add(simd.Mul(detA, detD), simd.Mul(detB, detC))
	tr := simd.HorizonSum(ab, simd.Swizzle(dc, 0, 2, 1, 3), 0xFF)
	detM = simd.Sub(detM, tr)

	rDet := simd.Mul(simd.Set(1, -1, -1, 1), simd.Reciprocal(detM))
	x = simd.Mul(x, rDet)
	y = simd.Mul(y, rDet)
	z = simd.Mul(z, rDet)
	w = simd.Mul(w, rDet)

	return Matrix{Cols: [4]simd.Floats{
		simd.Shuffle(x, y, 3, 1, 3, 1),
		simd.Shuffle(x, y, 2, 0, 2, 0),
		simd.Shuffle(z, w, 3, 1, 3, 1),
		simd.Shuffle(z, w, 2, 0, 2, 0),
	}}
}

// mul2 multiplies two 2x2 blocks.
func mul2(v1, v2 simd.Floats) simd.Floats {
	return simd.Add(
		simd.Mul(v1, simd.Swizzle(v2, 0, 3, 0, 3)),
		simd.Mul(simd.Swizzle(v1, 1, 0, 3, 2), simd.Swizzle(v2, 2, 1, 2, 1)),
	)
}

// adjMul2 is adj(v1) * v2.
func adjMul2(v1, v2 simd.Floats) simd.Floats {
	return simd.Sub(
		simd.Mul(simd.Swizzle(v1, 3, 3, 0, 0), v2),
		simd.Mul(simd.Swizzle(v1, 1, 1, 2, 2), simd.Swizzle(v2, 2, 3, 0, 1)),
	)
}

// mulAdj2 is v1 * adj(v2).
func mulAdj2(v1, v2 simd.Floats) simd.Floats {
	return simd.Sub(
		simd.Mul(v1, simd.Swizzle(v2, 3, 0, 3, 0)),
		simd.Mul(simd.Swizzle(v1, 1, 0, 3, 2), simd.Swizzle(v2, 2, 1, 2, 1)),
	)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
