package scene

import "github.com/chewxy/math32"

// Clock accumulates the shared scene angle that drives spinning recipes.
//
// The angle grows without bound; periodic functions take care of wrapping.
// Over very long sessions the float32 accumulator loses precision, see Wrap.
type Clock struct {
	Angle           float32 // radians
	AngularVelocity float32 // radians per second
}

func NewClock(angularVelocity float32) *Clock {
	return &Clock{AngularVelocity: angularVelocity}
}

// Advance adds AngularVelocity*dt to the angle. Non-positive dt is a no-op.
func (c *Clock) Advance(dt float32) {
	if dt <= 0 {
		return
	}
	c.Angle += c.AngularVelocity * dt
}

// Wrap reduces the angle into [0, 2π) without changing any rotation it produces.
func (c *Clock) Wrap() {
	c.Angle = math32.Mod(c.Angle, 2*math32.Pi)
	if c.Angle < 0 {
		c.Angle += 2 * math32.Pi
	}
}
