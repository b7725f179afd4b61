package quarkgl

// OrbitController orbits a camera around a target point.
//
// Rotations accumulate into a goal orientation; Update eases the current
// orientation toward it with Slerp so input steps do not snap the view. It does
// not depend on any input system.
type OrbitController struct {
	Target Vector
	Radius float32

	MinRadius float32
	MaxRadius float32

	// Smoothing is the Slerp factor applied per Update, 0..1. Zero snaps.
	Smoothing float32

	current Quaternion
	goal    Quaternion
}

// NewOrbitController returns a controller at radius r with no rotation.
func NewOrbitController(target Vector, r float32) *OrbitController {
	return &OrbitController{
		Target:    target,
		Radius:    r,
		Smoothing: 0.25,
		current:   IdentityQuaternion(),
		goal:      IdentityQuaternion(),
	}
}

func (c *OrbitController) init() {
	if c.current == (Quaternion{}) {
		c.current = IdentityQuaternion()
	}
	if c.goal == (Quaternion{}) {
		c.goal = IdentityQuaternion()
	}
}

// Rotate turns the goal by yaw around world Y and pitch around the local X
// axis, both in radians.
func (c *OrbitController) Rotate(yaw, pitch float32) {
	c.init()
	y := FromAxisAngle(Vec(0, 1, 0, 0), yaw)
	p := FromAxisAngle(Vec(1, 0, 0, 0), pitch)
	c.goal = y.Mul(c.goal).Mul(p).Norm()
}

func (c *OrbitController) Zoom(delta float32) {
	c.Radius = c.clampRadius(c.Radius + delta)
}

// Update advances the current orientation one easing step.
func (c *OrbitController) Update() {
	c.init()
	if c.Smoothing <= 0 || c.Smoothing >= 1 {
		c.current = c.goal
		return
	}
	c.current = c.current.Slerp(c.goal, c.Smoothing).Norm()
}

// Orientation returns the current eased orientation.
func (c *OrbitController) Orientation() Quaternion {
	c.init()
	return c.current
}

// Apply positions cam on the orbit and aims it at Target.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	c.init()
	r := c.Radius
	if r == 0 {
		r = 5
	}
	r = c.clampRadius(r)

	offset := c.current.Rotate(Vec(0, 0, r, 0))
	up := c.current.Rotate(Vec(0, 1, 0, 0))
	cam.Eye = c.Target.Add(offset).withW(1)
	cam.Target = c.Target
	cam.Up = up
}

func (c *OrbitController) clampRadius(r float32) float32 {
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}
