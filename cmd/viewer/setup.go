package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// setupWindow opens a window without a client API: drawing belongs to the
// rendering backend, the viewer only needs the window for input and resize events.
func setupWindow(width, height int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(width, height, "scene-viewer", nil, nil)
	if err != nil {
		return nil, err
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	return window, nil
}
