package quarkgl

import (
	"context"
	"log/slog"
)

// Renderer draws vertex streams with one shader type.
//
// Create it once and reuse it: the screen-space vertex buffer is kept between
// calls. The zero value is ready to use. A Renderer is not safe for concurrent
// use.
type Renderer[S Shader] struct {
	// Logger receives per-call diagnostics at debug level. Nil discards them.
	Logger *slog.Logger

	screen []Vertex
	stats  Stats
}

// Stats counts what the last Render or RenderIndexed call did.
type Stats struct {
	Vertices int
	Drawn    int
	Culled   int
	Skipped  int // primitives with an out-of-range index
}

// Stats returns the counters of the most recent call.
func (r *Renderer[S]) Stats() Stats { return r.stats }

func (r *Renderer[S]) transform(s S, vertices []Vertex) []Vertex {
	if cap(r.screen) < len(vertices) {
		r.screen = make([]Vertex, len(vertices))
	}
	r.screen = r.screen[:len(vertices)]
	for i, v := range vertices {
		r.screen[i] = Vertex{Pos: s.Vertex(v.Pos), Color: v.Color}
	}
	r.stats = Stats{Vertices: len(vertices)}
	return r.screen
}

func (r *Renderer[S]) triangle(fb *FrameBuffer, s S, v0, v1, v2 Vertex) {
	if DrawTriangle(fb, s, v0, v1, v2) {
		r.stats.Drawn++
	} else {
		r.stats.Culled++
	}
}

// Render transforms every vertex once and draws the stream as prim.
func (r *Renderer[S]) Render(fb *FrameBuffer, s S, vertices []Vertex, prim Primitive) {
	sv := r.transform(s, vertices)
	switch prim {
	case Points:
		for _, v := range sv {
			DrawPoint(fb, s, v)
		}
		r.stats.Drawn = len(sv)
	case Lines:
		for i := 0; i+1 < len(sv); i += 2 {
			DrawLine(fb, s, sv[i], sv[i+1])
			r.stats.Drawn++
		}
	default:
		for i := 0; i+2 < len(sv); i += 3 {
			r.triangle(fb, s, sv[i], sv[i+1], sv[i+2])
		}
	}
	r.log(prim)
}

// RenderIndexed draws vertices through an index list.
//
// Lines consume three indices per step and draw the outline of that triangle.
// Any primitive that references a missing vertex is skipped.
func (r *Renderer[S]) RenderIndexed(fb *FrameBuffer, s S, vertices []Vertex, indices []uint32, prim Primitive) {
	sv := r.transform(s, vertices)
	n := uint32(len(sv))
	switch prim {
	case Points:
		for _, i := range indices {
			if i >= n {
				r.stats.Skipped++
				continue
			}
			DrawPoint(fb, s, sv[i])
			r.stats.Drawn++
		}
	case Lines:
		for k := 0; k+2 < len(indices); k += 3 {
			i0, i1, i2 := indices[k], indices[k+1], indices[k+2]
			if i0 >= n || i1 >= n || i2 >= n {
				r.stats.Skipped++
				continue
			}
			DrawLine(fb, s, sv[i0], sv[i1])
			DrawLine(fb, s, sv[i1], sv[i2])
			DrawLine(fb, s, sv[i2], sv[i0])
			r.stats.Drawn++
		}
	default:
		for k := 0; k+2 < len(indices); k += 3 {
			i0, i1, i2 := indices[k], indices[k+1], indices[k+2]
			if i0 >= n || i1 >= n || i2 >= n {
				r.stats.Skipped++
				continue
			}
			r.triangle(fb, s, sv[i0], sv[i1], sv[i2])
		}
	}
	r.log(prim)
}

func (r *Renderer[S]) log(prim Primitive) {
	l := r.Logger
	if l == nil || !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("quarkgl: render",
		"primitive", prim,
		"vertices", r.stats.Vertices,
		"drawn", r.stats.Drawn,
		"culled", r.stats.Culled,
		"skipped", r.stats.Skipped,
	)
}
