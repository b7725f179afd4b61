package quarkgl

// Shader is the programmable part of the pipeline.
//
// Vertex maps a model-space position to screen space: pixel X and Y, with depth
// in Z. Color turns an interpolated color into a packed pixel. The rasterizer
// is generic over Shader, so both calls are resolved statically for concrete
// shader types.
type Shader interface {
	Vertex(pos Vector) Vector
	Color(c Vector) uint32
}

// DefaultShader projects with MVP, then maps NDC to pixels with Viewport.
//
// A zero matrix in either field acts as identity.
type DefaultShader struct {
	MVP      Matrix
	Viewport Matrix
}

// NewDefaultShader returns a shader for a w*h target.
func NewDefaultShader(mvp Matrix, w, h int) DefaultShader {
	return DefaultShader{MVP: mvp, Viewport: MatrixViewport(w, h)}
}

func (s DefaultShader) Vertex(pos Vector) Vector {
	mvp, vp := s.MVP, s.Viewport
	if mvp == (Matrix{}) {
		mvp = Identity()
	}
	if vp == (Matrix{}) {
		vp = Identity()
	}
	p := mvp.Project(pos)
	p.W = 1
	return vp.MulVec(p)
}

func (DefaultShader) Color(c Vector) uint32 { return PackColor(c) }
