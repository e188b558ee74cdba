package config

import "sync"

// Settings holds the process-wide viewer configuration.
type Settings struct {
	mu   sync.RWMutex
	file File
}

var globalSettings = &Settings{
	file: Defaults(),
}

// Current returns a copy of the active configuration.
func Current() File {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()

	f := globalSettings.file
	f.Scene.Entities = append([]Entity(nil), globalSettings.file.Scene.Entities...)
	return f
}

// Apply validates f and makes it the active configuration.
func Apply(f File) error {
	if err := Validate(f); err != nil {
		return err
	}
	f.Scene.Entities = append([]Entity(nil), f.Scene.Entities...)

	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.file = f
	return nil
}

// Reset restores the built-in defaults.
func Reset() {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.file = Defaults()
}

// GetFPSLimit returns the frame cap; 0 means unlimited.
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.file.Loop.FPSLimit
}

// SetFPSLimit sets the frame cap. Values outside [0, 1000] are clamped.
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalSettings.file.Loop.FPSLimit = limit
}

// GetMouseSensitivity returns radians of rotation per unit of mouse movement.
func GetMouseSensitivity() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.file.Controls.Sensitivity
}

// SetMouseSensitivity sets the mouse sensitivity, clamped to [0.0001, 0.1].
func SetMouseSensitivity(s float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if s < 0.0001 {
		s = 0.0001
	}
	if s > 0.1 {
		s = 0.1
	}

	globalSettings.file.Controls.Sensitivity = s
}

func GetInvertMouse() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.file.Controls.Inverted
}

func SetInvertMouse(inverted bool) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.file.Controls.Inverted = inverted
}
