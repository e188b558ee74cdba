package game

import (
	"scene-viewer/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// basis holds the world-space axes movement is expressed in for one frame.
type basis struct {
	forward mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
}

// moveBinding maps a held action to a signed direction of the camera basis.
type moveBinding struct {
	action    input.Action
	direction func(b basis) mgl32.Vec3
	sign      float32
}

func forwardOf(b basis) mgl32.Vec3 { return b.forward }
func rightOf(b basis) mgl32.Vec3   { return b.right }
func upOf(b basis) mgl32.Vec3      { return b.up }

var movementBindings = []moveBinding{
	{input.ActionMoveForward, forwardOf, 1},
	{input.ActionMoveBackward, forwardOf, -1},
	{input.ActionMoveRight, rightOf, 1},
	{input.ActionMoveLeft, rightOf, -1},
	{input.ActionMoveUp, upOf, 1},
	{input.ActionMoveDown, upOf, -1},
}

// lightBindings move the light marker in world space.
var lightBindings = []struct {
	action    input.Action
	direction mgl32.Vec3
}{
	{input.ActionLightLeft, mgl32.Vec3{-1, 0, 0}},
	{input.ActionLightRight, mgl32.Vec3{1, 0, 0}},
	{input.ActionLightForward, mgl32.Vec3{0, 0, -1}},
	{input.ActionLightBackward, mgl32.Vec3{0, 0, 1}},
}
