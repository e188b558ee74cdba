package game

import (
	"fmt"
	"log"

	"scene-viewer/internal/camera"
	"scene-viewer/internal/config"
	"scene-viewer/internal/input"
	"scene-viewer/internal/profiling"
	"scene-viewer/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Input is the per-frame input snapshot a Session consumes.
// *input.InputManager satisfies it.
type Input interface {
	IsActive(action input.Action) bool
	JustPressed(action input.Action) bool
	MouseDelta() (dx, dy float64)
}

// Action is what the frame loop should do after an Update.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
)

// Session owns the camera and the scene graph for one viewing session and
// advances them one frame at a time.
type Session struct {
	Camera *camera.Camera
	Graph  *scene.Graph
	Clock  *scene.Clock

	controls  config.ControlSettings
	wrapAngle bool

	light    scene.Node
	lightPos mgl32.Vec3
	preset   int

	reportInterval float32
	reportCooldown float32
}

// NewSession builds the camera and scene graph described by cfg for a
// viewport of width x height pixels.
func NewSession(cfg config.File, width, height int) (*Session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", width, height)
	}

	cam := camera.New(
		mgl32.DegToRad(cfg.Camera.FovDegrees),
		float32(width)/float32(height),
		cfg.Camera.Near,
		cfg.Camera.Far,
	)
	cam.MoveTo(cfg.Camera.Position)

	graph, err := buildGraph(cfg.Scene.Entities)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Camera:         cam,
		Graph:          graph,
		Clock:          scene.NewClock(cfg.Scene.AngularVelocity),
		controls:       cfg.Controls,
		wrapAngle:      cfg.Scene.WrapAngle,
		reportInterval: cfg.Loop.ReportInterval,
	}
	if n, ok := graph.Lookup(cfg.Controls.LightEntity); ok {
		s.light = n
		s.lightPos = graph.Recipe(n).Translation
	}

	graph.Evaluate(s.Clock.Angle)
	return s, nil
}

func buildGraph(entities []config.Entity) (*scene.Graph, error) {
	g := &scene.Graph{}
	for _, e := range entities {
		parent := scene.Nil
		if e.Parent != "" {
			p, ok := g.Lookup(e.Parent)
			if !ok {
				return nil, fmt.Errorf("entity %q: %w: %q", e.Name, scene.ErrUnknownParent, e.Parent)
			}
			parent = p
		}
		if _, err := g.Insert(e.Name, recipeOf(e), parent); err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, err)
		}
	}
	return g, nil
}

func recipeOf(e config.Entity) scene.Recipe {
	scale := mgl32.Vec3(e.Scale)
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return scene.Recipe{
		Translation: e.Translate,
		Axis:        e.Axis,
		Angle:       e.Angle,
		Spin:        e.Spin,
		Scale:       scale,
	}
}

// Update advances the session by dt seconds using the given input snapshot.
// Camera mutation happens before the scene graph is evaluated; the scene is
// evaluated at the current angle and the angle is advanced afterwards.
func (s *Session) Update(dt float64, in Input) Action {
	if in.IsActive(input.ActionQuit) {
		return ActionQuit
	}
	step := float32(dt)

	func() {
		defer profiling.Track("session.Camera")()
		s.updateCamera(step, in)
	}()

	func() {
		defer profiling.Track("session.Controls")()
		s.updateToggles(in)
		s.updateLight(step, in)
	}()

	func() {
		defer profiling.Track("scene.Evaluate")()
		s.Graph.Evaluate(s.Clock.Angle)
	}()
	s.Clock.Advance(step)
	if s.wrapAngle {
		s.Clock.Wrap()
	}

	s.reportFPS(step)
	return ActionNone
}

func (s *Session) updateCamera(dt float32, in Input) {
	velocity := s.controls.Velocity
	if in.IsActive(input.ActionSprint) {
		velocity = s.controls.SprintVelocity
	}

	// Basis is taken once so all movement this frame uses the same orientation.
	b := basis{
		forward: s.Camera.Forward(),
		right:   s.Camera.Right(),
		up:      mgl32.Vec3{0, 1, 0},
	}
	for _, mb := range movementBindings {
		if in.IsActive(mb.action) {
			s.Camera.Move(mb.direction(b).Mul(mb.sign * velocity * dt))
		}
	}

	dx, dy := in.MouseDelta()
	if dx == 0 && dy == 0 {
		return
	}
	scale := s.controls.Sensitivity
	if s.controls.Inverted {
		scale = -scale
	}
	delta := mgl32.Vec2{float32(dx), float32(dy)}.Mul(scale)
	s.Camera.RotateWithConstraint(delta, s.controls.PitchLimit, -s.controls.PitchLimit)
}

func (s *Session) updateToggles(in Input) {
	if in.JustPressed(input.ActionToggleInvert) {
		s.controls.Inverted = !s.controls.Inverted
		config.SetInvertMouse(s.controls.Inverted)
		log.Printf("mouse inversion: %v", s.controls.Inverted)
	}
	for i := 0; i < 10; i++ {
		if in.JustPressed(input.ActionPreset0 + input.Action(i)) {
			s.preset = i
		}
	}
}

func (s *Session) updateLight(dt float32, in Input) {
	moved := false
	for _, lb := range lightBindings {
		if in.IsActive(lb.action) {
			s.lightPos = s.lightPos.Add(lb.direction.Mul(s.controls.LightSpeed * dt))
			moved = true
		}
	}
	if moved && s.light != scene.Nil {
		r := s.Graph.Recipe(s.light)
		r.Translation = s.lightPos
		s.Graph.SetRecipe(s.light, r)
	}
}

func (s *Session) reportFPS(dt float32) {
	if s.reportInterval <= 0 || dt <= 0 {
		return
	}
	s.reportCooldown -= dt
	if s.reportCooldown < 0 {
		log.Printf("fps %d", int(1/dt))
		s.reportCooldown = s.reportInterval
	}
}

// OnResize updates the projection aspect ratio. Degenerate sizes, such as a
// minimized window, are ignored.
func (s *Session) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Camera.SetAspect(float32(width) / float32(height))
}

// LightPosition returns the world position of the movable light.
func (s *Session) LightPosition() mgl32.Vec3 {
	return s.lightPos
}

// Frame collects the matrices computed by the last Update.
func (s *Session) Frame() Frame {
	f := Frame{
		View:           s.Camera.WorldToViewMatrix(),
		Projection:     s.Camera.ProjectionMatrix(),
		CameraPosition: s.Camera.Position(),
		LightPosition:  s.lightPos,
		Preset:         s.preset,
		Models:         make([]Model, 0, s.Graph.Len()),
	}
	s.Graph.ForEach(func(n scene.Node) {
		f.Models = append(f.Models, Model{Name: s.Graph.Name(n), Node: n, World: s.Graph.World(n)})
	})
	return f
}
