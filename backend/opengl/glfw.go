package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/parallax"
)

// GLFWInputAdapter adapts GLFW input to parallax.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *parallax.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  parallax.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update starts a new input frame.
// Call this once per frame before glfw.PollEvents so wheel notches delivered
// by the poll accumulate into the fresh frame.
func (a *GLFWInputAdapter) Update() *parallax.InputState {
	a.input.Reset()

	a.setCursor(a.window.GetCursorPos())

	return a.input
}

// setCursor stores a cursor position in framebuffer pixels, the space the
// scene is laid out in.
func (a *GLFWInputAdapter) setCursor(x, y float64) {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	a.input.SetMousePos(CursorToFramebuffer(x, y, ww, wh, fw, fh))
}

// CursorToFramebuffer converts a cursor position from window coordinates to
// framebuffer pixels. They differ on HiDPI displays. A zero-sized window
// (minimized) leaves the position unscaled.
func CursorToFramebuffer(x, y float64, winW, winH, fbW, fbH int) (float32, float32) {
	sx, sy := 1.0, 1.0
	if winW > 0 && winH > 0 {
		sx = float64(fbW) / float64(winW)
		sy = float64(fbH) / float64(winH)
	}
	return float32(x * sx), float32(y * sy)
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *parallax.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == parallax.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		if k == parallax.KeyEscape {
			w.SetShouldClose(true)
		}
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.AddMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.setCursor(xpos, ypos)
}

// glfwKeyToKey maps GLFW keys to page navigation keys.
func glfwKeyToKey(key glfw.Key) parallax.Key {
	switch key {
	case glfw.KeyUp:
		return parallax.KeyUp
	case glfw.KeyDown:
		return parallax.KeyDown
	case glfw.KeyPageUp:
		return parallax.KeyPageUp
	case glfw.KeyPageDown:
		return parallax.KeyPageDown
	case glfw.KeyHome:
		return parallax.KeyHome
	case glfw.KeyEnd:
		return parallax.KeyEnd
	case glfw.KeySpace:
		return parallax.KeySpace
	case glfw.KeyEscape:
		return parallax.KeyEscape
	default:
		return parallax.KeyNone
	}
}

// glfwMouseButtonToButton maps GLFW mouse buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) parallax.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return parallax.MouseButtonLeft
	case glfw.MouseButtonRight:
		return parallax.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return parallax.MouseButtonMiddle
	default:
		return -1
	}
}
