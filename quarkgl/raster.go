package quarkgl

import (
	"fmt"
	"math"
)

// Primitive selects how a vertex stream is assembled.
type Primitive uint8

const (
	Triangles Primitive = iota
	Lines
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case Points:
		return "points"
	default:
		return fmt.Sprintf("Primitive(%d)", uint8(p))
	}
}

// ParsePrimitive parses the String form of a Primitive.
func ParsePrimitive(s string) (Primitive, error) {
	for _, p := range []Primitive{Triangles, Lines, Points} {
		if p.String() == s {
			return p, nil
		}
	}
	return Triangles, fmt.Errorf("quarkgl: unknown primitive %q", s)
}

// Next cycles triangles -> lines -> points -> triangles.
func (p Primitive) Next() Primitive { return (p + 1) % 3 }

// Vertex is a position plus a 0..1 color.
type Vertex struct {
	Pos   Vector
	Color Vector
}

// lineEps is the shortest line length that gets interpolated.
const lineEps = 1e-6

// DrawPoint draws a screen-space vertex at its nearest pixel.
func DrawPoint[S Shader](fb *FrameBuffer, s S, v Vertex) {
	x := int(math.Round(float64(v.Pos.X)))
	y := int(math.Round(float64(v.Pos.Y)))
	if fb.IsVisible(x, y, v.Pos.Z) {
		fb.SetPixel(x, y, s.Color(v.Color))
	}
}

// DrawLine draws a screen-space segment with Bresenham's algorithm.
//
// Depth and color are blended by the pixel's straight-line distance from the
// start point over the total length.
func DrawLine[S Shader](fb *FrameBuffer, s S, v0, v1 Vertex) {
	x0 := int(math.Round(float64(v0.Pos.X)))
	y0 := int(math.Round(float64(v0.Pos.Y)))
	x1 := int(math.Round(float64(v1.Pos.X)))
	y1 := int(math.Round(float64(v1.Pos.Y)))

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	total := math.Hypot(float64(dx), float64(dy))

	x, y := x0, y0
	for {
		var t float32
		if total >= lineEps {
			t = float32(math.Hypot(float64(x-x0), float64(y-y0)) / total)
		}
		z := v0.Pos.Z*(1-t) + v1.Pos.Z*t
		if fb.IsVisible(x, y, z) {
			fb.SetPixel(x, y, s.Color(v0.Color.Lerp(v1.Color, t)))
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawTriangle fills a screen-space triangle.
//
// Front faces wind counter-clockwise as seen on screen. Triangles that appear
// clockwise or have zero area (screen-space cross product >= 0) are culled. Pixels are sampled at
// integer coordinates and edges are inclusive. It reports whether the triangle
// survived culling and clipping.
func DrawTriangle[S Shader](fb *FrameBuffer, s S, v0, v1, v2 Vertex) bool {
	if v1.Pos.Sub(v0.Pos).Cross2D(v2.Pos.Sub(v0.Pos)) >= 0 {
		return false
	}
	bb := fb.Bound(v0.Pos, v1.Pos, v2.Pos)
	if !bb.ShouldRender {
		return false
	}

	for y := bb.MinY; y <= bb.MaxY; y++ {
		for x := bb.MinX; x <= bb.MaxX; x++ {
			p := Vec(float32(x), float32(y), 0, 0)
			w := Barycentric(p, v0.Pos, v1.Pos, v2.Pos)
			if w.X < 0 || w.Y < 0 || w.Z < 0 {
				continue
			}
			z := v0.Pos.Z*w.X + v1.Pos.Z*w.Y + v2.Pos.Z*w.Z
			if !fb.IsVisible(x, y, z) {
				continue
			}
			c := v0.Color.Scale(w.X).Add(v1.Color.Scale(w.Y)).Add(v2.Color.Scale(w.Z))
			fb.SetPixel(x, y, s.Color(c))
		}
	}
	return true
}

// Render transforms every vertex once and draws the stream as prim.
//
// A trailing partial primitive is ignored.
func Render[S Shader](fb *FrameBuffer, s S, vertices []Vertex, prim Primitive) {
	var r Renderer[S]
	r.Render(fb, s, vertices, prim)
}

// RenderIndexed is Render with an index list.
//
// Lines are read three indices at a time and drawn as triangle outlines.
// Primitives that reference a missing vertex are skipped.
func RenderIndexed[S Shader](fb *FrameBuffer, s S, vertices []Vertex, indices []uint32, prim Primitive) {
	var r Renderer[S]
	r.RenderIndexed(fb, s, vertices, indices, prim)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
