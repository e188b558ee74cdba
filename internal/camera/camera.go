package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Local-space directions used to derive world-space movement vectors.
var (
	localForward = mgl32.Vec4{0, 0, -1, 0}
	localRight   = mgl32.Vec4{1, 0, 0, 0}
)

// Camera is a first-person camera: a world position plus yaw/pitch, and the
// perspective parameters used to derive the projection matrix.
// It is owned by the frame loop and is not safe for concurrent use.
type Camera struct {
	position mgl32.Vec3
	rotation mgl32.Vec2 // yaw, pitch (radians)

	verticalFov float32 // radians
	aspectRatio float32
	nearPlane   float32
	farPlane    float32
}

// New creates a camera at the origin with zero rotation.
// Callers must ensure near > 0, far > near and 0 < fov < π; no checks are made here.
func New(verticalFov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		verticalFov: verticalFov,
		aspectRatio: aspectRatio,
		nearPlane:   nearPlane,
		farPlane:    farPlane,
	}
}

// MoveTo places the camera at an absolute world position.
func (c *Camera) MoveTo(position mgl32.Vec3) {
	c.position = position
}

// Move offsets the camera by a world-space delta. The caller scales the delta by
// velocity and elapsed time and rotates it into world space.
func (c *Camera) Move(delta mgl32.Vec3) {
	c.position = c.position.Add(delta)
}

// Rotate adds delta to (yaw, pitch) without any constraint.
func (c *Camera) Rotate(delta mgl32.Vec2) {
	c.rotation = c.rotation.Add(delta)
}

// RotateWithConstraint always applies the yaw component of delta. The pitch
// component is applied only when the resulting pitch lies strictly inside
// (lower, upper); otherwise it is dropped for this call, not clipped to the bound.
func (c *Camera) RotateWithConstraint(delta mgl32.Vec2, upper, lower float32) {
	pitch := c.rotation[1] + delta[1]
	if pitch < upper && pitch > lower {
		c.rotation[1] = pitch
	}
	c.rotation[0] += delta[0]
}

// SetAspect replaces the aspect ratio used by ProjectionMatrix.
func (c *Camera) SetAspect(aspectRatio float32) {
	c.aspectRatio = aspectRatio
}

// RotationMatrix returns yaw about +Y composed with pitch about the local X axis.
// There is no roll.
func (c *Camera) RotationMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(c.rotation[0]).Mul4(mgl32.HomogRotate3DX(c.rotation[1]))
}

// WorldToViewMatrix is the inverse of ViewToWorldMatrix.
//
// The camera's world transform is T(p)*R, so its inverse is
// inverse(R)*inverse(T(p)) = transpose(R)*T(-p).
func (c *Camera) WorldToViewMatrix() mgl32.Mat4 {
	p := c.position
	return c.RotationMatrix().Transpose().Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}

// ViewToWorldMatrix returns T(p)*R.
func (c *Camera) ViewToWorldMatrix() mgl32.Mat4 {
	p := c.position
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(c.RotationMatrix())
}

// ProjectionMatrix returns a right-handed perspective projection in the OpenGL
// clip convention: the near plane maps to NDC z = -1 and the far plane to +1.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.verticalFov, c.aspectRatio, c.nearPlane, c.farPlane)
}

// Forward returns the camera's view direction in world space.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.ViewToWorldMatrix().Mul4x1(localForward).Vec3()
}

// Right returns the camera's right vector in world space.
func (c *Camera) Right() mgl32.Vec3 {
	return c.ViewToWorldMatrix().Mul4x1(localRight).Vec3()
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Rotation returns (yaw, pitch) in radians.
func (c *Camera) Rotation() mgl32.Vec2 {
	return c.rotation
}

func (c *Camera) Aspect() float32 {
	return c.aspectRatio
}
