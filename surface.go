package parallax

// Overflow is an element's computed vertical overflow style.
type Overflow int

const (
	OverflowVisible Overflow = iota // Content spills, element does not scroll
	OverflowHidden                  // Content is clipped, element does not scroll
	OverflowAuto                    // Element scrolls when content exceeds it
	OverflowScroll                  // Element always scrolls
)

// Scrolls reports whether the overflow style makes an element a scroll container.
func (o Overflow) Scrolls() bool {
	return o == OverflowAuto || o == OverflowScroll
}

// Element is a node of the host's layout tree.
type Element interface {
	// Parent returns the enclosing element, or nil at the root.
	Parent() Element
	// Overflow returns the element's computed vertical overflow.
	Overflow() Overflow
}

// WheelEvent is a single wheel notification. DeltaY is positive when the
// user scrolls toward the end of the page.
type WheelEvent struct {
	DeltaY float32

	defaultPrevented bool
}

// PreventDefault stops the surface from applying native scrolling for this event.
func (e *WheelEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *WheelEvent) DefaultPrevented() bool { return e.defaultPrevented }

// Surface is the scrolling ancestor the engine listens to and drives.
type Surface interface {
	// ScrollOffset returns the current vertical scroll position.
	ScrollOffset() float32
	// ViewportHeight returns the visible height of the surface.
	ViewportHeight() float32
	// ScrollTo moves to offset, animating when smooth is true.
	ScrollTo(offset float32, smooth bool)
	// OnScroll registers fn for scroll notifications and returns its remover.
	OnScroll(fn func()) (remove func())
	// OnWheel registers fn for wheel notifications and returns its remover.
	OnWheel(fn func(*WheelEvent)) (remove func())
}

// ResolveSurface walks from el up the ancestor chain and returns the first
// element whose overflow style scrolls and which can act as a Surface.
// When none qualifies, window is returned.
func ResolveSurface(el Element, window Surface) Surface {
	for e := el; e != nil; e = e.Parent() {
		if !e.Overflow().Scrolls() {
			continue
		}
		if s, ok := e.(Surface); ok {
			return s
		}
	}
	return window
}

// Box is a plain layout element that never acts as a surface itself.
type Box struct {
	parent   Element
	overflow Overflow
}

// NewBox creates a box under parent with the given overflow style.
func NewBox(parent Element, overflow Overflow) *Box {
	return &Box{parent: parent, overflow: overflow}
}

// Parent implements Element.
func (b *Box) Parent() Element { return b.parent }

// Overflow implements Element.
func (b *Box) Overflow() Overflow { return b.overflow }
