package game

import (
	"fmt"
	"log"
	"time"

	"scene-viewer/internal/config"
	"scene-viewer/internal/input"
	"scene-viewer/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame's top tasks are logged.
const slowFrame = 16 * time.Millisecond

// App drives a Session from a glfw window: it polls events, steps the session
// and hands each frame to the renderer.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	session      *Session
	renderer     Renderer

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

func NewApp(window *glfw.Window, im *input.InputManager, session *Session, renderer Renderer) *App {
	a := &App{
		window:       window,
		inputManager: im,
		session:      session,
		renderer:     renderer,
		fpsLimiter:   NewFPSLimiter(config.GetFPSLimit),
		lastTime:     time.Now(),
	}
	a.installCallbacks()
	return a
}

func (a *App) installCallbacks() {
	a.inputManager.SetCallbacks(a.window)

	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.session.OnResize(width, height)
	})

	a.window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			a.inputManager.ResetMouse()
		}
	})
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.session.Update(dt, a.inputManager) == ActionQuit {
		a.window.SetShouldClose(true)
	}

	frame := a.session.Frame()
	func() { defer profiling.Track("renderer.Draw")(); a.renderer.Draw(&frame) }()

	if d := time.Since(start); d > slowFrame {
		log.Print(slowFrameReport(d))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

// slowFrameReport summarizes where a slow frame's time went, splitting the
// session update phases from the rest.
func slowFrameReport(d time.Duration) string {
	return fmt.Sprintf("Slow frame: %v (session %v, scene %v). Top tasks: %s",
		d, profiling.SumWithPrefix("session."), profiling.SumWithPrefix("scene."), profiling.TopN(5))
}
