// Package camera implements a first-person fly camera driven by keyboard,
// pointer-motion and scroll input.
//
// Orientation is held as yaw/pitch in degrees. The front, right and up vectors
// are always derived from those angles and the world up vector; there is no
// way to set them directly.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a direction the camera can be translated in.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Default camera values
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	// PitchLimit keeps front away from world up so right stays well defined.
	// The bound is inclusive: a clamped pitch may equal ±89 exactly.
	PitchLimit float32 = 89.0
	MinZoom    float32 = 1.0
	MaxZoom    float32 = 45.0
)

// Camera is a movable viewpoint in world space.
type Camera struct {
	Position mgl32.Vec3

	MovementSpeed    float32 // world units per second
	MouseSensitivity float32 // degrees per pointer unit

	worldUp mgl32.Vec3

	// yaw is measured from axisX toward axisZ in the plane normal to worldUp
	axisX mgl32.Vec3
	axisZ mgl32.Vec3

	yaw   float32
	pitch float32
	zoom  float32

	// derived from yaw, pitch and worldUp by updateBasis
	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// Option configures a Camera at construction time.
type Option func(*Camera)

// WithWorldUp sets the fixed reference up vector. It is normalized; a zero
// or non-finite vector is ignored. Yaw and pitch are measured in a frame
// anchored on it, so pitch 90 always points along world up.
func WithWorldUp(up mgl32.Vec3) Option {
	return func(c *Camera) {
		l := up.Len()
		if l > 0 && !math32.IsInf(l, 0) {
			c.worldUp = up.Mul(1 / l)
		}
	}
}

func WithYaw(yaw float32) Option {
	return func(c *Camera) { c.yaw = yaw }
}

// WithPitch sets the initial pitch; it is clamped to ±PitchLimit.
func WithPitch(pitch float32) Option {
	return func(c *Camera) { c.pitch = pitch }
}

func WithSpeed(speed float32) Option {
	return func(c *Camera) { c.MovementSpeed = speed }
}

func WithSensitivity(sensitivity float32) Option {
	return func(c *Camera) { c.MouseSensitivity = sensitivity }
}

// WithZoom sets the initial field of view in degrees; it is clamped to
// [MinZoom, MaxZoom].
func WithZoom(zoom float32) Option {
	return func(c *Camera) { c.zoom = zoom }
}

// New creates a camera at position with default orientation and settings,
// then applies opts. Non-finite values are treated like any other
// non-finite input (see ProcessKeyboard), then pitch and zoom are clamped.
// The basis vectors are derived before New returns.
func New(position mgl32.Vec3, opts ...Option) *Camera {
	c := &Camera{
		Position:         position,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		worldUp:          mgl32.Vec3{0, 1, 0},
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		zoom:             DefaultZoom,
	}
	for _, opt := range opts {
		opt(c)
	}
	for i := range c.Position {
		c.Position[i] = finite("position", c.Position[i])
	}
	c.MovementSpeed = finite("speed", c.MovementSpeed)
	c.MouseSensitivity = finite("sensitivity", c.MouseSensitivity)
	c.yaw = finite("yaw", c.yaw)
	c.pitch = clampPitch(finite("pitch", c.pitch))
	c.zoom = mgl32.Clamp(finite("zoom", c.zoom), MinZoom, MaxZoom)
	c.axisX, c.axisZ = horizontalAxes(c.worldUp)
	c.updateBasis()
	return c
}

// horizontalAxes returns two unit vectors spanning the plane normal to up,
// with x cross up equal to z. For +Y they are +X and +Z.
func horizontalAxes(up mgl32.Vec3) (x, z mgl32.Vec3) {
	ref := mgl32.Vec3{1, 0, 0}
	if math32.Abs(up.Dot(ref)) > 0.9 {
		ref = mgl32.Vec3{0, 0, 1}
	}
	x = ref.Sub(up.Mul(ref.Dot(up))).Normalize()
	z = x.Cross(up).Normalize()
	return x, z
}

func (c *Camera) Yaw() float32        { return c.yaw }
func (c *Camera) Pitch() float32      { return c.pitch }
func (c *Camera) Zoom() float32       { return c.zoom }
func (c *Camera) Front() mgl32.Vec3   { return c.front }
func (c *Camera) Right() mgl32.Vec3   { return c.right }
func (c *Camera) Up() mgl32.Vec3      { return c.up }
func (c *Camera) WorldUp() mgl32.Vec3 { return c.worldUp }

// Basis returns front, right and up in that order.
func (c *Camera) Basis() [3]mgl32.Vec3 { return [3]mgl32.Vec3{c.front, c.right, c.up} }

// Target is the point one unit in front of the camera.
func (c *Camera) Target() mgl32.Vec3 { return c.Position.Add(c.front) }

// ViewMatrix returns the right-handed look-at transform for the current
// position and orientation.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection using the current zoom as
// the vertical field of view.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, near, far)
}

// ProcessKeyboard moves the camera along front, right or world up by
// MovementSpeed*dt. A negative dt does not move the camera.
func (c *Camera) ProcessKeyboard(direction Movement, dt float32) {
	dt = finite("dt", dt)
	if dt <= 0 {
		return
	}
	velocity := c.MovementSpeed * dt
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.worldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.worldUp.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by the pointer offsets scaled by
// MouseSensitivity. With constrainPitch the pitch stays within ±PitchLimit.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset = finite("xoffset", xoffset) * c.MouseSensitivity
	yoffset = finite("yoffset", yoffset) * c.MouseSensitivity

	c.yaw += xoffset
	c.pitch += yoffset
	if constrainPitch {
		c.pitch = clampPitch(c.pitch)
	}
	c.updateBasis()
}

// ProcessMouseScroll narrows (positive offset) or widens the field of view.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.zoom = mgl32.Clamp(c.zoom-finite("yoffset", yoffset), MinZoom, MaxZoom)
}

// SetOrientation sets yaw and pitch directly. Pitch is clamped.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.yaw = finite("yaw", yaw)
	c.pitch = clampPitch(finite("pitch", pitch))
	c.updateBasis()
}

// LookAt points the camera at target without moving it.
func (c *Camera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	pitch := mgl32.RadToDeg(math32.Asin(mgl32.Clamp(dir.Dot(c.worldUp), -1, 1)))
	yaw := mgl32.RadToDeg(math32.Atan2(dir.Dot(c.axisZ), dir.Dot(c.axisX)))
	c.SetOrientation(yaw, pitch)
}

func (c *Camera) updateBasis() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)
	heading := c.axisX.Mul(math32.Cos(yaw)).Add(c.axisZ.Mul(math32.Sin(yaw)))
	front := heading.Mul(math32.Cos(pitch)).Add(c.worldUp.Mul(math32.Sin(pitch)))
	c.front = front.Normalize()

	right := c.front.Cross(c.worldUp)
	if right.Len() < 1e-6 {
		// Looking straight along world up (only reachable unconstrained)
		right = heading.Cross(c.worldUp)
	}
	c.right = right.Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -PitchLimit, PitchLimit)
}
