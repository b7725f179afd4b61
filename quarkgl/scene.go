package quarkgl

import "log/slog"

// Camera describes the viewing transform.
type Camera struct {
	Eye    Vector
	Target Vector
	Up     Vector

	FOVY float32 // radians
	Near float32
	Far  float32
}

// DefaultCamera looks at the origin from +Z with a 45 degree field of view.
func DefaultCamera() Camera {
	return Camera{
		Eye:    Point(0, 0, 5),
		Target: Point(0, 0, 0),
		Up:     Vec(0, 1, 0, 0),
		FOVY:   Radians(45),
		Near:   0.1,
		Far:    100,
	}
}

// View returns the camera view matrix.
func (c Camera) View() Matrix {
	up := c.Up
	if up.withW(0) == (Vector{}) {
		up = Vec(0, 1, 0, 0)
	}
	return MatrixLookAt(c.Eye, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) Matrix {
	fov := c.FOVY
	if fov == 0 {
		fov = Radians(45)
	}
	if aspect == 0 {
		aspect = 1
	}
	return MatrixPerspective(fov, aspect, c.Near, c.Far)
}

// Mesh is a vertex stream with an object transform.
//
// With no Indices the vertices are drawn in order.
type Mesh struct {
	Enabled bool

	Vertices  []Vertex
	Indices   []uint32
	Primitive Primitive

	Transform Matrix
}

// Scene is a fixed-capacity collection of meshes seen through one camera.
type Scene struct {
	Camera     Camera
	ClearColor Color

	meshes   []Mesh
	alive    []bool
	renderer Renderer[DefaultShader]
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera:     DefaultCamera(),
		ClearColor: RGB(0x33, 0x33, 0x33),
		meshes:     make([]Mesh, maxMeshes),
		alive:      make([]bool, maxMeshes),
	}
}

// SetLogger routes render diagnostics to l.
func (s *Scene) SetLogger(l *slog.Logger) { s.renderer.Logger = l }

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Matrix{}) {
			m.Transform = Identity()
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if !s.valid(id) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m Matrix) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Transform = m
}

// SetMeshPrimitive changes how a mesh is assembled.
func (s *Scene) SetMeshPrimitive(id int, p Primitive) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Primitive = p
}

func (s *Scene) valid(id int) bool {
	return s != nil && id >= 0 && id < len(s.meshes) && s.alive[id]
}

// Render clears fb and draws every enabled mesh into it. The returned Stats
// are summed over all meshes.
func (s *Scene) Render(fb *FrameBuffer) Stats {
	var total Stats
	if s == nil || fb == nil {
		return total
	}
	fb.Clear(s.ClearColor.Packed())

	w, h := fb.Size()
	if w == 0 || h == 0 {
		return total
	}
	viewProj := s.Camera.Projection(float32(w) / float32(h)).Mul(s.Camera.View())
	viewport := MatrixViewport(w, h)

	for i := range s.meshes {
		m := &s.meshes[i]
		if !s.alive[i] || !m.Enabled || len(m.Vertices) == 0 {
			continue
		}
		model := m.Transform
		if model == (Matrix{}) {
			model = Identity()
		}
		sh := DefaultShader{MVP: viewProj.Mul(model), Viewport: viewport}
		if m.Indices == nil {
			s.renderer.Render(fb, sh, m.Vertices, m.Primitive)
		} else {
			s.renderer.RenderIndexed(fb, sh, m.Vertices, m.Indices, m.Primitive)
		}
		st := s.renderer.Stats()
		total.Vertices += st.Vertices
		total.Drawn += st.Drawn
		total.Culled += st.Culled
		total.Skipped += st.Skipped
	}
	return total
}
