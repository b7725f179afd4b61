package app

import (
	"math"
	"sort"

	"quark/quarkgl"
)

// Model is a named mesh the viewer can show.
type Model struct {
	Build func() quarkgl.Mesh

	// Tilt is a fixed rotation about X applied under the spin.
	Tilt float32
}

// Models maps model names to their builders.
var Models = map[string]Model{
	"cube":  {Build: Cube},
	"torus": {Build: func() quarkgl.Mesh { return Torus(1.0, 0.38, 32, 16) }, Tilt: 0.65},
}

// ModelNames returns the registered model names in sorted order.
func ModelNames() []string {
	names := make([]string, 0, len(Models))
	for name := range Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cube is a 2x2x2 cube centered at the origin with one color per corner.
// Faces wind counter-clockwise seen from outside.
func Cube() quarkgl.Mesh {
	corner := func(x, y, z, r, g, b float32) quarkgl.Vertex {
		return quarkgl.Vertex{Pos: quarkgl.Point(x, y, z), Color: quarkgl.Vec(r, g, b, 1)}
	}
	return quarkgl.Mesh{
		Vertices: []quarkgl.Vertex{
			corner(-1, -1, 1, 1, 0, 0),
			corner(1, -1, 1, 0, 1, 0),
			corner(1, 1, 1, 0, 0, 1),
			corner(-1, 1, 1, 1, 1, 0),
			corner(-1, -1, -1, 1, 0, 1),
			corner(1, -1, -1, 0, 1, 1),
			corner(1, 1, -1, 1, 1, 1),
			corner(-1, 1, -1, 0, 0, 0),
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3, // front
			1, 5, 6, 1, 6, 2, // right
			5, 4, 7, 5, 7, 6, // rear
			4, 0, 3, 4, 3, 7, // left
			3, 2, 6, 3, 6, 7, // top
			4, 5, 1, 4, 1, 0, // bottom
		},
	}
}

// Torus lies in the XZ plane with the given ring and tube radii. Vertex
// colors sweep around the ring.
func Torus(major, minor float32, segU, segV int) quarkgl.Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	verts := make([]quarkgl.Vertex, 0, segU*segV)
	indices := make([]uint32, 0, segU*segV*6)

	const twoPi = 2 * math.Pi
	for u := 0; u < segU; u++ {
		theta := twoPi * float64(u) / float64(segU)
		ct, st := float32(math.Cos(theta)), float32(math.Sin(theta))
		for v := 0; v < segV; v++ {
			phi := twoPi * float64(v) / float64(segV)
			cp, sp := float32(math.Cos(phi)), float32(math.Sin(phi))

			r := major + minor*cp
			shade := 0.6 + 0.4*cp
			verts = append(verts, quarkgl.Vertex{
				Pos: quarkgl.Point(r*ct, minor*sp, r*st),
				Color: quarkgl.Vec(
					shade*(0.5+0.5*ct),
					shade*(0.5+0.5*st),
					shade*0.8,
					1,
				),
			})
		}
	}

	idx := func(u, v int) uint32 {
		return uint32((u%segU)*segV + v%segV)
	}
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			i0 := idx(u, v)
			i1 := idx(u+1, v)
			i2 := idx(u+1, v+1)
			i3 := idx(u, v+1)

			indices = append(indices, i0, i2, i1)
			indices = append(indices, i0, i3, i2)
		}
	}

	return quarkgl.Mesh{Vertices: verts, Indices: indices}
}
