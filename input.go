package parallax

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key is a page navigation key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyEscape
	KeyCount
)

// Nav is a keyboard navigation intent.
type Nav int

const (
	NavNone  Nav = iota
	NavNext      // Down, PageDown, Space
	NavPrev      // Up, PageUp
	NavFirst     // Home
	NavLast      // End
)

// Target returns the section index the intent points at from current in a
// page of count sections. The result may be out of range; SnapTo ignores it then.
func (n Nav) Target(current, count int) (int, bool) {
	switch n {
	case NavNext:
		return current + 1, true
	case NavPrev:
		return current - 1, true
	case NavFirst:
		return 0, true
	case NavLast:
		return count - 1, true
	}
	return 0, false
}

// buttonState tracks one button or key across frames.
type buttonState struct {
	down     bool
	pressed  bool // went down this frame
	released bool // went up this frame
}

func (b *buttonState) set(down bool) {
	if down && !b.down {
		b.pressed = true
	}
	if !down && b.down {
		b.released = true
	}
	b.down = down
}

// InputState holds input for the current frame. A backend (GLFW, tcell)
// fills it between Reset and the scene's Frame.
type InputState struct {
	MouseX, MouseY float32

	// Mouse wheel, in notches. Negative Y scrolls toward the end of the page.
	MouseWheelX float32
	MouseWheelY float32

	mouse [MouseButtonCount]buttonState
	keys  [KeyCount]buttonState
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame edges and wheel deltas. Held buttons stay held.
func (s *InputState) Reset() {
	for i := range s.mouse {
		s.mouse[i].pressed, s.mouse[i].released = false, false
	}
	for i := range s.keys {
		s.keys[i].pressed, s.keys[i].released = false, false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the mouse position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.mouse[button].set(down)
}

// AddMouseWheel accumulates a wheel delta. Several wheel events may arrive
// between two frames.
func (s *InputState) AddMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

// SetKey sets key state. KeyNone is ignored.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keys[key].set(down)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouse[button].down
}

// MouseClicked returns true if a mouse button went down this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouse[button].pressed
}

// MouseReleased returns true if a mouse button went up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouse[button].released
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	return key > KeyNone && key < KeyCount && s.keys[key].down
}

// KeyPressed returns true if a key went down this frame.
func (s *InputState) KeyPressed(key Key) bool {
	return key > KeyNone && key < KeyCount && s.keys[key].pressed
}

// Navigation returns this frame's navigation intent. When several keys were
// pressed, forward navigation wins.
func (s *InputState) Navigation() Nav {
	switch {
	case s.KeyPressed(KeyPageDown), s.KeyPressed(KeyDown), s.KeyPressed(KeySpace):
		return NavNext
	case s.KeyPressed(KeyPageUp), s.KeyPressed(KeyUp):
		return NavPrev
	case s.KeyPressed(KeyHome):
		return NavFirst
	case s.KeyPressed(KeyEnd):
		return NavLast
	}
	return NavNone
}
