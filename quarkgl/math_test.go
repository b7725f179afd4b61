package quarkgl

import (
	"math"
	"strings"
	"testing"

	"quark/quarkgl/internal/simd"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) <= 1e-4 }

func TestVectorArithmetic(t *testing.T) {
	a := Vec(1, 2, 3, 4)
	b := Vec(4, 3, 2, 1)
	if got := a.Add(b); got != Vec(5, 5, 5, 5) {
		t.Fatalf("Add: %v", got)
	}
	if got := a.Sub(b); got != Vec(-3, -1, 1, 3) {
		t.Fatalf("Sub: %v", got)
	}
	if got := a.Scale(2); got != Vec(2, 4, 6, 8) {
		t.Fatalf("Scale: %v", got)
	}
	if got := a.Div(2); got != Vec(0.5, 1, 1.5, 2) {
		t.Fatalf("Div: %v", got)
	}
	if !a.Equal(Vec(1+1e-6, 2, 3, 4)) || a.Equal(b) {
		t.Fatalf("Equal mismatch")
	}
	if got := Vec(4, 9, 16, 25).Sqrt(); !got.Equal(Vec(2, 3, 4, 5)) {
		t.Fatalf("Sqrt: %v", got)
	}
	if got := Vec(2, 4, 0.5, 1).Reciprocal(); !got.Equal(Vec(0.5, 0.25, 2, 1)) {
		t.Fatalf("Reciprocal: %v", got)
	}
}

func TestVectorDotIgnoresW(t *testing.T) {
	if got := Vec(1, 2, 3, 100).Dot(Vec(4, 5, 6, 100)); got != 32 {
		t.Fatalf("Dot: %v", got)
	}
}

func TestVectorCross(t *testing.T) {
	x := Vec(1, 0, 0, 0)
	y := Vec(0, 1, 0, 0)
	if got := x.Cross(y); got != Vec(0, 0, 1, 0) {
		t.Fatalf("X cross Y = %v", got)
	}
	if got := y.Cross(x); got != Vec(0, 0, -1, 0) {
		t.Fatalf("Y cross X = %v", got)
	}
	a := Vec(2, -1, 3, 7)
	b := Vec(0.5, 4, -2, 9)
	c := a.Cross(b)
	if c.W != 0 {
		t.Fatalf("cross W = %v", c.W)
	}
	if !near(c.Dot(a), 0) || !near(c.Dot(b), 0) {
		t.Fatalf("cross not orthogonal: %v", c)
	}
	if got := Vec(1, 0, 0, 0).Cross2D(Vec(0, 1, 0, 0)); got != 1 {
		t.Fatalf("Cross2D: %v", got)
	}
}

func TestVectorNorm(t *testing.T) {
	v := Vec(3, 4, 0, 0)
	if got := v.Length(); !near(got, 5) {
		t.Fatalf("Length: %v", got)
	}
	n := Vec(3, -7, 2.5, 0).Norm()
	if !near(n.Length(), 1) {
		t.Fatalf("Norm length: %v", n.Length())
	}
	z := Vector{}.Norm()
	if z.X == z.X {
		t.Fatalf("zero Norm should be NaN, got %v", z)
	}
}

func TestMatrixIdentity(t *testing.T) {
	m := Matrix{Cols: [4]simd.Floats{
		simd.Set(1, 2, 3, 4),
		simd.Set(5, 6, 7, 8),
		simd.Set(9, 10, 11, 12),
		simd.Set(13, 14, 15, 16),
	}}
	if !Identity().Mul(m).Equal(m) || !m.Mul(Identity()).Equal(m) {
		t.Fatalf("identity product mismatch")
	}
	v := Vec(1, -2, 3, 1)
	if got := Identity().MulVec(v); got != v {
		t.Fatalf("identity MulVec: %v", got)
	}
}

func naiveMul(a, b Matrix) Matrix {
	var out Matrix
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a.At(r, k) * b.At(k, c)
			}
			out.Cols[c][r] = s
		}
	}
	return out
}

func testMatrices() []Matrix {
	return []Matrix{
		MatrixTranslation(Vec(1, -2, 3, 0)),
		MatrixScale(Vec(2, 3, 4, 1)),
		MatrixRotation(Vec(1, 1, 0, 0), 0.7),
		MatrixLookAt(Point(1, 2, 5), Point(0, 0, 0), Vec(0, 1, 0, 0)),
		MatrixPerspective(Radians(60), 1.5, 0.5, 50),
		{Cols: [4]simd.Floats{
			simd.Set(2, 0, 1, 0),
			simd.Set(1, 3, 0, 1),
			simd.Set(0, 1, 4, 0),
			simd.Set(1, 0, 2, 5),
		}},
	}
}

func TestMatrixMulMatchesReference(t *testing.T) {
	ms := testMatrices()
	for i, a := range ms {
		for j, b := range ms {
			got := a.Mul(b)
			want := naiveMul(a, b)
			if !got.Equal(want) {
				t.Fatalf("Mul %d*%d:\n got %v\nwant %v", i, j, got, want)
			}
		}
	}
	a, b, c := ms[0], ms[2], ms[5]
	if !a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))) {
		t.Fatalf("Mul not associative")
	}
}

func TestMatrixMulVecUsesW(t *testing.T) {
	m := MatrixTranslation(Vec(10, 20, 30, 0))
	if got := m.MulVec(Point(1, 2, 3)); got != Point(11, 22, 33) {
		t.Fatalf("point: %v", got)
	}
	if got := m.MulVec(Vec(1, 2, 3, 0)); got != Vec(1, 2, 3, 0) {
		t.Fatalf("direction: %v", got)
	}
}

func TestMatrixTranspose(t *testing.T) {
	for i, m := range testMatrices() {
		tr := m.Transpose()
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if tr.At(r, c) != m.At(c, r) {
					t.Fatalf("matrix %d: transpose(%d,%d)=%v want %v", i, r, c, tr.At(r, c), m.At(c, r))
				}
			}
		}
		if tr.Transpose() != m {
			t.Fatalf("matrix %d: double transpose mismatch", i)
		}
	}
}

func TestMatrixInverse(t *testing.T) {
	for i, m := range testMatrices() {
		inv := m.Inverse()
		if got := m.Mul(inv); !got.Equal(Identity()) {
			t.Fatalf("matrix %d: m*inv = %v", i, got)
		}
		if got := inv.Mul(m); !got.Equal(Identity()) {
			t.Fatalf("matrix %d: inv*m = %v", i, got)
		}
	}
	if got := Identity().Inverse(); !got.Equal(Identity()) {
		t.Fatalf("identity inverse: %v", got)
	}
}

func TestMatrixInverseSingular(t *testing.T) {
	inv := Fill(Vec(1, 2, 3, 4)).Inverse()
	finite := true
	for _, c := range inv.Cols {
		for _, v := range c {
			if math.IsInf(float64(v), 0) || v != v {
				finite = false
			}
		}
	}
	if finite {
		t.Fatalf("singular inverse unexpectedly finite: %v", inv)
	}
}

func TestMatrixElementwise(t *testing.T) {
	a := Fill(Vec(4, 9, 16, 25))
	if got := a.Sqrt(); !got.Equal(Fill(Vec(2, 3, 4, 5))) {
		t.Fatalf("Sqrt: %v", got)
	}
	if got := a.Add(a).Sub(a); got != a {
		t.Fatalf("Add/Sub: %v", got)
	}
	if got := a.Scale(2).Div(2); got != a {
		t.Fatalf("Scale/Div: %v", got)
	}
	if got := Fill(Vec(2, 4, 5, 8)).Reciprocal(); !got.Equal(Fill(Vec(0.5, 0.25, 0.2, 0.125))) {
		t.Fatalf("Reciprocal: %v", got)
	}
}

func TestMatrixMat4RoundTrip(t *testing.T) {
	m := MatrixTranslation(Vec(1, 2, 3, 0))
	a := m.Mat4()
	// Row-major: the translation is the last element of the first three rows.
	if a[3] != 1 || a[7] != 2 || a[11] != 3 {
		t.Fatalf("Mat4 layout: %v", a)
	}
	if MatrixFromMat4(a) != m {
		t.Fatalf("round trip mismatch")
	}
}

func TestProjectThresholds(t *testing.T) {
	// W ends up 2: divide.
	m := Identity().Scale(2)
	if got := m.Project(Point(1, 2, 3)); !got.Equal(Vec(1, 2, 3, 1)) {
		t.Fatalf("divide: %v", got)
	}
	// W of exactly one: passthrough.
	if got := Identity().Project(Point(1, 2, 3)); got != Point(1, 2, 3) {
		t.Fatalf("w=1: %v", got)
	}
	// W near zero: no divide.
	if got := Identity().Project(Vec(1, 2, 3, 1e-7)); got != Vec(1, 2, 3, 1e-7) {
		t.Fatalf("w~0: %v", got)
	}
}

func TestQuaternionIdentityProduct(t *testing.T) {
	q := FromAxisAngle(Vec(1, 2, 3, 0), 1.1)
	id := IdentityQuaternion()
	if !q.Mul(id).Equal(q) || !id.Mul(q).Equal(q) {
		t.Fatalf("identity product mismatch")
	}
}

func TestQuaternionMulMatchesMatrices(t *testing.T) {
	a := FromAxisAngle(Vec(0, 1, 0, 0), 0.8)
	b := FromAxisAngle(Vec(1, 0, 1, 0), -0.4)
	got := a.Mul(b).ToMatrix()
	want := a.ToMatrix().Mul(b.ToMatrix())
	if !got.Equal(want) {
		t.Fatalf("product matrix:\n got %v\nwant %v", got, want)
	}
}

func TestQuaternionToMatrixRotatesAxis(t *testing.T) {
	m := FromAxisAngle(Vec(0, 0, 1, 0), math.Pi/2).ToMatrix()
	if got := m.MulVec(Vec(1, 0, 0, 0)); !got.Equal(Vec(0, 1, 0, 0)) {
		t.Fatalf("rotate X by 90 about Z: %v", got)
	}
	q := FromAxisAngle(Vec(0, 1, 0, 0), math.Pi/2)
	if got := q.Rotate(Point(0, 0, 1)); !got.Equal(Point(1, 0, 0)) {
		t.Fatalf("Rotate: %v", got)
	}
}

func TestQuaternionToMatrixPreservesLength(t *testing.T) {
	quats := []Quaternion{
		FromAxisAngle(Vec(1, 2, 3, 0).Norm(), 0.7),
		FromAxisAngle(Vec(-0.3, 1, 0.5, 0).Norm(), 2.4),
		FromAxisAngle(Vec(1, -1, 1, 0).Norm(), -1.1),
		FromAxisAngle(Vec(0.2, 0.1, -0.9, 0).Norm(), math.Pi*0.75),
	}
	vecs := []Vector{
		Vec(0.3, -1.2, 2.5, 0),
		Vec(4, 1, -2, 0),
		Vec(-0.01, 0.02, 0.005, 0),
		Vec(7, 7, 7, 0),
	}
	for i, q := range quats {
		m := q.ToMatrix()
		for _, v := range vecs {
			got, want := m.MulVec(v).Length(), v.Length()
			if !near(got/want, 1) {
				t.Fatalf("q%d: |R*%v| = %v want %v", i, v, got, want)
			}
			if r := q.Rotate(v); !near(r.Length()/want, 1) {
				t.Fatalf("q%d: |Rotate(%v)| = %v want %v", i, v, r.Length(), want)
			}
		}
	}
}

func TestQuaternionDotUsesFourLanes(t *testing.T) {
	q := Quaternion{X: 1, Y: 2, Z: 3, W: 4}
	if got := q.Dot(q); got != 30 {
		t.Fatalf("Dot: %v", got)
	}
	if !near(q.Norm().Length(), 1) {
		t.Fatalf("Norm length: %v", q.Norm().Length())
	}
}

func TestQuaternionConjugateInverts(t *testing.T) {
	q := FromAxisAngle(Vec(0.3, -1, 0.2, 0), 2.1)
	if got := q.Mul(q.Conjugate()); !got.Equal(IdentityQuaternion()) {
		t.Fatalf("q*conj(q) = %v", got)
	}
	if got := q.Conjugate(); got.W != q.W || got.X != -q.X {
		t.Fatalf("Conjugate: %v", got)
	}
}

func TestQuaternionElementwise(t *testing.T) {
	q := Quaternion{X: 4, Y: 9, Z: 16, W: 25}
	if got := q.Sqrt(); !got.Equal(Quaternion{X: 2, Y: 3, Z: 4, W: 5}) {
		t.Fatalf("Sqrt: %v", got)
	}
	if got := q.Add(q).Sub(q).Scale(2).Div(2); got != q {
		t.Fatalf("arithmetic: %v", got)
	}
	if got := (Quaternion{X: 2, Y: 4, Z: 5, W: 8}).Reciprocal(); !got.Equal(Quaternion{X: 0.5, Y: 0.25, Z: 0.2, W: 0.125}) {
		t.Fatalf("Reciprocal: %v", got)
	}
}

func TestSlerp(t *testing.T) {
	a := IdentityQuaternion()
	b := FromAxisAngle(Vec(0, 1, 0, 0), math.Pi/2)
	if got := a.Slerp(b, 0); !got.Equal(a) {
		t.Fatalf("t=0: %v", got)
	}
	if got := a.Slerp(b, 1); !got.Equal(b) {
		t.Fatalf("t=1: %v", got)
	}
	mid := a.Slerp(b, 0.5)
	if want := FromAxisAngle(Vec(0, 1, 0, 0), math.Pi/4); !mid.Equal(want) {
		t.Fatalf("t=0.5: got %v want %v", mid, want)
	}
	if !near(mid.Length(), 1) {
		t.Fatalf("midpoint not unit: %v", mid.Length())
	}
	// Opposite sign describes the same rotation; the shorter arc is taken.
	if got := a.Slerp(b.Scale(-1), 0.5); !got.Equal(mid) {
		t.Fatalf("shortest path: got %v want %v", got, mid)
	}
	// Nearly equal inputs use the linear blend.
	c := FromAxisAngle(Vec(0, 1, 0, 0), 0.001)
	lin := a.Slerp(c, 0.5)
	if want := a.Add(c.Sub(a).Scale(0.5)); lin != want {
		t.Fatalf("linear fallback: got %v want %v", lin, want)
	}
}

func TestTransforms(t *testing.T) {
	if !near(Radians(180), math.Pi) || !near(Degrees(math.Pi/2), 90) {
		t.Fatalf("angle conversions")
	}
	vp := MatrixViewport(800, 600)
	if got := vp.MulVec(Point(-1, 1, 0.5)); got != Point(0, 0, 0.5) {
		t.Fatalf("viewport top-left: %v", got)
	}
	if got := vp.MulVec(Point(1, -1, 0.5)); got != Point(800, 600, 0.5) {
		t.Fatalf("viewport bottom-right: %v", got)
	}

	view := MatrixLookAt(Point(0, 0, 5), Point(0, 0, 0), Vec(0, 1, 0, 0))
	if got := view.MulVec(Point(0, 0, 0)); !got.Equal(Point(0, 0, -5)) {
		t.Fatalf("lookAt origin: %v", got)
	}

	proj := MatrixPerspective(Radians(90), 1, 1, 10)
	if got := proj.Project(Point(0, 0, -1)); !near(got.Z, 0) {
		t.Fatalf("near plane depth: %v", got)
	}
	if got := proj.Project(Point(0, 0, -10)); !near(got.Z, 1) {
		t.Fatalf("far plane depth: %v", got)
	}
	if got := proj.Project(Point(1, 1, -1)); !near(got.X, 1) || !near(got.Y, 1) {
		t.Fatalf("frustum corner: %v", got)
	}
}

func TestKernelInfo(t *testing.T) {
	if KernelBackend != "exact" && KernelBackend != "approx" {
		t.Fatalf("KernelBackend=%q", KernelBackend)
	}
	if got := KernelInfo(); !strings.HasPrefix(got, KernelBackend+" (") {
		t.Fatalf("KernelInfo=%q", got)
	}
}
