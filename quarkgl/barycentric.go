package quarkgl

// degenerateArea is the smallest |signed area| Barycentric accepts.
const degenerateArea = 1e-6

// Barycentric returns the weights of p against triangle abc in X, Y, Z, using
// only the XY parts. A degenerate triangle yields (-1, -1, -1), which every
// inside test rejects.
func Barycentric(p, a, b, c Vector) Vector {
	area := b.Sub(a).Cross2D(c.Sub(a))
	if abs32(area) < degenerateArea {
		return Vec(-1, -1, -1, 0)
	}
	wa := b.Sub(p).Cross2D(c.Sub(p)) / area
	wb := c.Sub(p).Cross2D(a.Sub(p)) / area
	return Vec(wa, wb, 1-wa-wb, 0)
}
