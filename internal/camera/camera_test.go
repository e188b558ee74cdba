package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func newTestCamera() *Camera {
	return New(mgl32.DegToRad(45), 16.0/9.0, 1, 500)
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d: want %v got %v", i, want, got)
	}
}

func TestMoveToPosition(t *testing.T) {
	c := newTestCamera()
	for _, p := range []mgl32.Vec3{{0, 0, 0}, {0, 0, 5}, {-3.25, 1e4, 0.125}} {
		c.MoveTo(p)
		assert.Equal(t, p, c.Position())
	}
}

func TestMoveIsAdditive(t *testing.T) {
	c := newTestCamera()
	p := mgl32.Vec3{1, 2, 3}
	d := mgl32.Vec3{-0.5, 4, 0.25}
	c.MoveTo(p)
	c.Move(d)
	assert.Equal(t, mgl32.Vec3{0.5, 6, 3.25}, c.Position())

	c.Move(mgl32.Vec3{})
	assert.Equal(t, mgl32.Vec3{0.5, 6, 3.25}, c.Position())
}

func TestRotateUnconstrained(t *testing.T) {
	c := newTestCamera()
	c.Rotate(mgl32.Vec2{0.5, 2})
	c.Rotate(mgl32.Vec2{0.5, 2})
	assert.Equal(t, mgl32.Vec2{1, 4}, c.Rotation())
}

func TestRotateWithConstraint(t *testing.T) {
	const hi, lo = float32(math.Pi / 2), float32(-math.Pi / 2)

	tests := []struct {
		name      string
		start     mgl32.Vec2
		delta     mgl32.Vec2
		wantYaw   float32
		wantPitch float32
	}{
		{"inside", mgl32.Vec2{0, 0}, mgl32.Vec2{0.3, 0.5}, 0.3, 0.5},
		{"above upper drops pitch", mgl32.Vec2{0, 1.5}, mgl32.Vec2{0.2, 0.2}, 0.2, 1.5},
		{"below lower drops pitch", mgl32.Vec2{1, -1.5}, mgl32.Vec2{-0.1, -0.2}, 0.9, -1.5},
		{"exactly on bound drops pitch", mgl32.Vec2{0, 1}, mgl32.Vec2{0, hi - 1}, 0, 1},
		{"yaw only", mgl32.Vec2{0, 0.25}, mgl32.Vec2{7, 0}, 7, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera()
			c.Rotate(tt.start)
			c.RotateWithConstraint(tt.delta, hi, lo)
			r := c.Rotation()
			assert.InDelta(t, tt.wantYaw, r[0], eps)
			assert.InDelta(t, tt.wantPitch, r[1], eps)
		})
	}
}

func TestRotationMatrixIsOrthonormal(t *testing.T) {
	c := newTestCamera()
	c.Rotate(mgl32.Vec2{0.7, -0.4})
	r := c.RotationMatrix()
	assert.True(t, r.Mul4(r.Transpose()).ApproxEqualThreshold(mgl32.Ident4(), eps))
	assert.InDelta(t, 1, r.Det(), eps)
}

func TestViewWorldRoundTrip(t *testing.T) {
	poses := []struct {
		pos mgl32.Vec3
		rot mgl32.Vec2
	}{
		{mgl32.Vec3{}, mgl32.Vec2{}},
		{mgl32.Vec3{0, 0, 5}, mgl32.Vec2{0.5, 0.2}},
		{mgl32.Vec3{-12, 3.5, 40}, mgl32.Vec2{-2.9, 1.4}},
	}
	points := []mgl32.Vec4{{0, 0, 0, 1}, {1, 2, 3, 1}, {-7, 0.5, 100, 1}}

	for _, pose := range poses {
		c := newTestCamera()
		c.MoveTo(pose.pos)
		c.Rotate(pose.rot)

		m := c.WorldToViewMatrix().Mul4(c.ViewToWorldMatrix())
		require.True(t, m.ApproxEqualThreshold(mgl32.Ident4(), eps), "pose %+v: %v", pose, m)
		for _, p := range points {
			got := c.WorldToViewMatrix().Mul4x1(c.ViewToWorldMatrix().Mul4x1(p))
			assertVec3(t, p.Vec3(), got.Vec3())
		}
	}
}

func TestWorldToViewOrder(t *testing.T) {
	c := newTestCamera()
	c.MoveTo(mgl32.Vec3{0, 0, 5})
	c.Rotate(mgl32.Vec2{math.Pi / 2, 0})

	// The camera position itself must land on the view-space origin.
	got := c.WorldToViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 5, 1})
	assertVec3(t, mgl32.Vec3{}, got.Vec3())

	// Commuting the factors gives a different matrix once the camera is rotated.
	p := c.Position()
	wrong := mgl32.Translate3D(-p[0], -p[1], -p[2]).Mul4(c.RotationMatrix().Transpose())
	assert.False(t, wrong.ApproxEqualThreshold(c.WorldToViewMatrix(), eps))
}

func TestForwardAndRight(t *testing.T) {
	c := newTestCamera()
	c.MoveTo(mgl32.Vec3{10, 0, 0})
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Forward())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Right())

	// Positive yaw turns the view to the left (counter-clockwise about +Y).
	c.Rotate(mgl32.Vec2{math.Pi / 2, 0})
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, c.Forward())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Right())
}

func TestProjectionNearPlane(t *testing.T) {
	c := newTestCamera()
	clip := c.ProjectionMatrix().Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	require.NotZero(t, clip[3])
	assert.InDelta(t, -1, clip[2]/clip[3], eps)

	clip = c.ProjectionMatrix().Mul4x1(mgl32.Vec4{0, 0, -500, 1})
	assert.InDelta(t, 1, clip[2]/clip[3], eps)
}

func TestSetAspectOnlyTouchesProjection(t *testing.T) {
	c := New(mgl32.DegToRad(45), 800.0/600.0, 1, 500)
	c.MoveTo(mgl32.Vec3{1, 2, 3})
	c.Rotate(mgl32.Vec2{0.3, 0.1})
	view := c.WorldToViewMatrix()
	before := c.ProjectionMatrix()

	c.SetAspect(1920.0 / 1080.0)

	assert.Equal(t, view, c.WorldToViewMatrix())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
	assert.InDelta(t, 1920.0/1080.0, c.Aspect(), eps)
	after := c.ProjectionMatrix()
	assert.NotEqual(t, before.At(0, 0), after.At(0, 0))
	assert.Equal(t, before.At(1, 1), after.At(1, 1))
}

func BenchmarkWorldToViewMatrix(b *testing.B) {
	c := newTestCamera()
	c.MoveTo(mgl32.Vec3{0, 0, 5})
	c.Rotate(mgl32.Vec2{0.5, 0.2})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.WorldToViewMatrix()
	}
}
