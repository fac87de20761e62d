package parallax

// Smooth scrolling constants.
const (
	smoothSpeed     = 15.0 // Higher = faster convergence
	smoothThreshold = 0.5  // Stop animating when this close
)

type scrollListener struct {
	id uint64
	fn func()
}

type wheelListener struct {
	id uint64
	fn func(*WheelEvent)
}

// ScrollView is an in-process scroll container. It implements Element and
// Surface, so a host can mount a Controller on it directly or nest it in a
// larger element tree.
type ScrollView struct {
	ScrollY       float32 // Vertical scroll position
	TargetScrollY float32 // Target vertical position (for smooth scrolling)
	ContentHeight float32 // Total content height
	Viewport      float32 // Visible height

	parent    Element
	overflow  Overflow
	animating bool

	nextID uint64
	scroll []scrollListener
	wheel  []wheelListener
}

// NewScrollView creates a scroll view with the given viewport and content heights.
func NewScrollView(viewport, content float32) *ScrollView {
	return &ScrollView{
		Viewport:      viewport,
		ContentHeight: content,
		overflow:      OverflowAuto,
	}
}

// Parent implements Element.
func (v *ScrollView) Parent() Element { return v.parent }

// SetParent sets the enclosing element.
func (v *ScrollView) SetParent(p Element) { v.parent = p }

// Overflow implements Element.
func (v *ScrollView) Overflow() Overflow { return v.overflow }

// SetOverflow changes the overflow style.
func (v *ScrollView) SetOverflow(o Overflow) { v.overflow = o }

// ScrollOffset implements Surface.
func (v *ScrollView) ScrollOffset() float32 { return v.ScrollY }

// ViewportHeight implements Surface.
func (v *ScrollView) ViewportHeight() float32 { return v.Viewport }

// MaxScroll returns the largest valid scroll offset.
func (v *ScrollView) MaxScroll() float32 {
	return maxf(0, v.ContentHeight-v.Viewport)
}

// Animating reports whether a smooth scroll is in flight.
func (v *ScrollView) Animating() bool { return v.animating }

// Resize updates the viewport and content heights, keeping the offset valid.
func (v *ScrollView) Resize(viewport, content float32) {
	v.Viewport = viewport
	v.ContentHeight = content
	maxScroll := v.MaxScroll()
	v.TargetScrollY = clampf(v.TargetScrollY, 0, maxScroll)
	if y := clampf(v.ScrollY, 0, maxScroll); y != v.ScrollY {
		v.setScroll(y)
	}
}

// ScrollTo implements Surface.
func (v *ScrollView) ScrollTo(offset float32, smooth bool) {
	offset = clampf(offset, 0, v.MaxScroll())
	v.TargetScrollY = offset
	if smooth {
		v.animating = offset != v.ScrollY
		return
	}
	v.animating = false
	v.setScroll(offset)
}

// Update smoothly interpolates the scroll position toward its target.
// Call this each frame with the frame's delta time.
// Returns true if still animating.
func (v *ScrollView) Update(deltaTime float32) bool {
	if !v.animating {
		return false
	}

	diff := v.TargetScrollY - v.ScrollY
	if absf32(diff) < smoothThreshold {
		v.animating = false
		v.setScroll(v.TargetScrollY)
		return false
	}

	step := diff * minf(1, deltaTime*smoothSpeed)
	v.setScroll(v.ScrollY + step)
	return true
}

// Wheel dispatches a wheel event to listeners. Unless a listener prevents
// it, the view scrolls natively by deltaY, cancelling any smooth scroll.
func (v *ScrollView) Wheel(deltaY float32) *WheelEvent {
	ev := &WheelEvent{DeltaY: deltaY}
	for _, l := range append([]wheelListener(nil), v.wheel...) {
		l.fn(ev)
	}
	if !ev.DefaultPrevented() && deltaY != 0 {
		v.ScrollTo(v.ScrollY+deltaY, false)
	}
	return ev
}

// OnScroll implements Surface.
func (v *ScrollView) OnScroll(fn func()) func() {
	v.nextID++
	id := v.nextID
	v.scroll = append(v.scroll, scrollListener{id: id, fn: fn})
	return func() {
		for i, l := range v.scroll {
			if l.id == id {
				v.scroll = append(v.scroll[:i], v.scroll[i+1:]...)
				return
			}
		}
	}
}

// OnWheel implements Surface.
func (v *ScrollView) OnWheel(fn func(*WheelEvent)) func() {
	v.nextID++
	id := v.nextID
	v.wheel = append(v.wheel, wheelListener{id: id, fn: fn})
	return func() {
		for i, l := range v.wheel {
			if l.id == id {
				v.wheel = append(v.wheel[:i], v.wheel[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of registered scroll and wheel listeners.
func (v *ScrollView) Listeners() (scroll, wheel int) {
	return len(v.scroll), len(v.wheel)
}

func (v *ScrollView) setScroll(y float32) {
	if y == v.ScrollY {
		return
	}
	v.ScrollY = y
	for _, l := range append([]scrollListener(nil), v.scroll...) {
		l.fn()
	}
}
