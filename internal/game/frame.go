package game

import (
	"fmt"
	"log"
	"strings"

	"scene-viewer/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Model is one entity's model-to-world matrix for the current frame.
type Model struct {
	Name  string
	Node  scene.Node
	World mgl32.Mat4
}

// Frame is everything a rendering backend needs to draw one frame.
type Frame struct {
	View           mgl32.Mat4 // world-to-view
	Projection     mgl32.Mat4
	CameraPosition mgl32.Vec3
	LightPosition  mgl32.Vec3
	// Preset is the last debug preset (0-9) requested through input.
	Preset int
	Models []Model
}

// Renderer consumes frames produced by a Session.
type Renderer interface {
	Draw(f *Frame)
}

// LogRenderer is a Renderer that only reports frames to a logger, once every Every frames.
type LogRenderer struct {
	Logger *log.Logger
	Every  int

	frames int
}

func NewLogRenderer(logger *log.Logger, every int) *LogRenderer {
	if every < 1 {
		every = 1
	}
	return &LogRenderer{Logger: logger, Every: every}
}

func (r *LogRenderer) Draw(f *Frame) {
	r.frames++
	if r.frames%r.Every != 0 {
		return
	}

	names := make([]string, 0, len(f.Models))
	for _, m := range f.Models {
		origin := m.World.Col(3).Vec3()
		names = append(names, fmt.Sprintf("%s@(%.2f,%.2f,%.2f)", m.Name, origin[0], origin[1], origin[2]))
	}
	p := f.CameraPosition
	r.Logger.Printf("frame %d: camera=(%.2f,%.2f,%.2f) preset=%d %s",
		r.frames, p[0], p[1], p[2], f.Preset, strings.Join(names, " "))
}
