package config

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	ErrInvalidProjection = errors.New("invalid projection")
	ErrInvalidControls   = errors.New("invalid controls")
	ErrInvalidEntity     = errors.New("invalid entity")
	ErrInvalidLoop       = errors.New("invalid loop settings")
)

// Validate checks the invariants the camera and scene graph rely on:
// 0 < fov < 180°, near > 0, far > near, 0 < pitch_limit <= π/2, every entity
// parent declared before its children, and light_entity naming a declared
// entity when set.
func Validate(f File) error {
	c := f.Camera
	if !finite(c.FovDegrees, c.Near, c.Far) || !finite(c.Position[:]...) {
		return fmt.Errorf("%w: non-finite value", ErrInvalidProjection)
	}
	if c.FovDegrees <= 0 || c.FovDegrees >= 180 {
		return fmt.Errorf("%w: fov_degrees %v not in (0, 180)", ErrInvalidProjection, c.FovDegrees)
	}
	if c.Near <= 0 {
		return fmt.Errorf("%w: near %v must be positive", ErrInvalidProjection, c.Near)
	}
	if c.Far <= c.Near {
		return fmt.Errorf("%w: far %v must exceed near %v", ErrInvalidProjection, c.Far, c.Near)
	}

	k := f.Controls
	if !finite(k.Velocity, k.SprintVelocity, k.Sensitivity, k.PitchLimit, k.LightSpeed) {
		return fmt.Errorf("%w: non-finite value", ErrInvalidControls)
	}
	if k.Velocity < 0 || k.SprintVelocity < 0 || k.Sensitivity < 0 || k.LightSpeed < 0 {
		return fmt.Errorf("%w: speeds and sensitivity must not be negative", ErrInvalidControls)
	}
	if k.PitchLimit <= 0 || k.PitchLimit > math32.Pi/2 {
		return fmt.Errorf("%w: pitch_limit %v not in (0, π/2]", ErrInvalidControls, k.PitchLimit)
	}

	if !finite(f.Loop.ReportInterval, f.Scene.AngularVelocity) {
		return fmt.Errorf("%w: report_interval and angular_velocity must be finite", ErrInvalidLoop)
	}
	if f.Loop.FPSLimit < 0 || f.Loop.ReportInterval < 0 {
		return fmt.Errorf("%w: fps_limit and report_interval must not be negative", ErrInvalidLoop)
	}

	seen := make(map[string]bool, len(f.Scene.Entities))
	for i, e := range f.Scene.Entities {
		if e.Name == "" {
			return fmt.Errorf("%w: entity %d has no name", ErrInvalidEntity, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidEntity, e.Name)
		}
		if e.Parent != "" && !seen[e.Parent] {
			return fmt.Errorf("%w: %q references parent %q before it is declared", ErrInvalidEntity, e.Name, e.Parent)
		}
		if !finite(e.Angle, e.Spin) || !finite(e.Translate[:]...) || !finite(e.Axis[:]...) || !finite(e.Scale[:]...) {
			return fmt.Errorf("%w: %q has a non-finite value", ErrInvalidEntity, e.Name)
		}
		seen[e.Name] = true
	}

	if k.LightEntity != "" && !seen[k.LightEntity] {
		return fmt.Errorf("%w: light_entity %q names no entity", ErrInvalidControls, k.LightEntity)
	}
	return nil
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}
