package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionSprint
	ActionQuit
	ActionLightLeft
	ActionLightRight
	ActionLightForward
	ActionLightBackward
	ActionToggleInvert
	ActionPreset0
	ActionPreset1
	ActionPreset2
	ActionPreset3
	ActionPreset4
	ActionPreset5
	ActionPreset6
	ActionPreset7
	ActionPreset8
	ActionPreset9
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and tracks per-frame
// action state plus accumulated cursor movement.
type InputManager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions map[glfw.Key][]Action

	// an action stays active while any of its keys is down
	keysDown  map[glfw.Key]bool
	heldCount [ActionCount]int

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	firstMouse     bool
	lastX, lastY   float64
	deltaX, deltaY float64
}

// NewInputManager creates an InputManager with the default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
		keysDown:     make(map[glfw.Key]bool),
		firstMouse:   true,
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionMoveUp)
	im.BindKey(glfw.KeyLeftControl, ActionMoveDown)
	im.BindKey(glfw.KeyLeftShift, ActionSprint)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyLeft, ActionLightLeft)
	im.BindKey(glfw.KeyRight, ActionLightRight)
	im.BindKey(glfw.KeyUp, ActionLightForward)
	im.BindKey(glfw.KeyDown, ActionLightBackward)
	im.BindKey(glfw.KeyI, ActionToggleInvert)

	// Digit row and keypad both select debug presets
	digits := [10]glfw.Key{glfw.Key0, glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5, glfw.Key6, glfw.Key7, glfw.Key8, glfw.Key9}
	keypad := [10]glfw.Key{glfw.KeyKP0, glfw.KeyKP1, glfw.KeyKP2, glfw.KeyKP3, glfw.KeyKP4, glfw.KeyKP5, glfw.KeyKP6, glfw.KeyKP7, glfw.KeyKP8, glfw.KeyKP9}
	for i := range digits {
		im.BindKey(digits[i], ActionPreset0+Action(i))
		im.BindKey(keypad[i], ActionPreset0+Action(i))
	}

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key. A key that is held down
// stops counting towards its actions.
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.keysDown[key] {
		im.release(key)
	}
	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if _, exists := im.keyToActions[key]; !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	switch {
	case isPressed && !im.keysDown[key]:
		im.keysDown[key] = true
		for _, act := range im.keyToActions[key] {
			im.heldCount[act]++
			if !im.currentState[act] {
				im.currentState[act] = true
				im.justPressed[act] = true
			}
		}
	case !isPressed && im.keysDown[key]:
		im.release(key)
	}
}

// release must be called with mu held.
func (im *InputManager) release(key glfw.Key) {
	delete(im.keysDown, key)
	for _, act := range im.keyToActions[key] {
		if im.heldCount[act] > 0 {
			im.heldCount[act]--
		}
		if im.heldCount[act] == 0 && im.currentState[act] {
			im.currentState[act] = false
			im.justReleased[act] = true
		}
	}
}

// HandleCursorPos accumulates cursor movement since the last PostUpdate.
// The first sample after ResetMouse only establishes the reference position.
func (im *InputManager) HandleCursorPos(xpos, ypos float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.firstMouse {
		im.lastX, im.lastY = xpos, ypos
		im.firstMouse = false
		return
	}

	im.deltaX += xpos - im.lastX
	im.deltaY += ypos - im.lastY
	im.lastX, im.lastY = xpos, ypos
}

// ResetMouse discards the reference cursor position, e.g. after the cursor was recaptured.
func (im *InputManager) ResetMouse() {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.firstMouse = true
	im.deltaX, im.deltaY = 0, 0
}

// SetCallbacks installs key and cursor callbacks on window.
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})
}

// PostUpdate must be called at the end of each frame: it clears edge flags and
// the accumulated mouse delta.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
	im.deltaX, im.deltaY = 0, 0
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

// MouseDelta returns the cursor movement accumulated during the current frame.
func (im *InputManager) MouseDelta() (dx, dy float64) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.deltaX, im.deltaY
}
