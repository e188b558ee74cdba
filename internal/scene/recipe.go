package scene

import "github.com/go-gl/mathgl/mgl32"

// Recipe describes an entity's parent-relative transform as
// Translate(Translation) * Rotate(Angle + Spin*sceneAngle, Axis) * Scale(Scale).
//
// Scale is applied first, then the rotation about the local origin, then the translation.
type Recipe struct {
	Translation mgl32.Vec3
	Axis        mgl32.Vec3
	// Angle is a fixed rotation offset in radians.
	Angle float32
	// Spin multiplies the shared scene angle; 0 means the entity does not spin.
	Spin  float32
	Scale mgl32.Vec3
}

// Identity returns a recipe with unit scale and no rotation or translation.
func Identity() Recipe {
	return Recipe{Scale: mgl32.Vec3{1, 1, 1}}
}

// Local evaluates the recipe at the given scene angle.
func (r Recipe) Local(sceneAngle float32) mgl32.Mat4 {
	t := mgl32.Translate3D(r.Translation[0], r.Translation[1], r.Translation[2])
	s := mgl32.Scale3D(r.Scale[0], r.Scale[1], r.Scale[2])
	return t.Mul4(r.rotation(sceneAngle)).Mul4(s)
}

func (r Recipe) rotation(sceneAngle float32) mgl32.Mat4 {
	// A zero axis carries no rotation regardless of angle.
	if r.Axis.Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(r.Angle+r.Spin*sceneAngle, r.Axis.Normalize())
}
