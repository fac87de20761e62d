package parallax

import (
	"errors"
	"log/slog"
)

// ErrNilScheduler is returned when a controller is created without a scheduler.
var ErrNilScheduler = errors.New("nil scheduler")

// ScrollState is the controller's view of the page. Only the controller
// writes it; callers receive copies.
type ScrollState struct {
	RawOffset       float32 // Last sampled scroll offset
	CurrentSection  int     // Always within [0, section count-1]
	IsSnapping      bool    // A programmatic snap is running
	IsTransitioning bool    // A section transition is running
}

// Busy reports whether wheel decisions are currently suppressed.
func (s ScrollState) Busy() bool { return s.IsSnapping || s.IsTransitioning }

// Controller coordinates scroll sampling, section classification, wheel
// arbitration, snapping and layer projection for one mounted page.
//
// All methods must be called from the scheduler's goroutine.
//
// Usage:
//
//	loop := parallax.NewLoop(parallax.SystemClock{})
//	c, err := parallax.New(sections, loop)
//	c.Mount(container, window, layout)
//	defer c.Unmount()
//
//	// Each frame
//	loop.RunFrame()
//	v := c.Project(heroLayer)
type Controller struct {
	sections Sections
	sched    Scheduler
	opts     options
	logger   *slog.Logger

	state ScrollState

	surface Surface
	layout  Layout
	heights []float32

	sampler   *ScrollSampler
	wheel     *WheelArbiter
	snap      *SnapController
	projector *Projector

	removers []func()
	running  bool
}

// New creates an unmounted controller for sections.
func New(sections Sections, sched Scheduler, opts ...Option) (*Controller, error) {
	if sections.Len() == 0 {
		return nil, ErrNoSections
	}
	if sched == nil {
		return nil, ErrNilScheduler
	}

	o := applyOptions(opts)
	c := &Controller{
		sections:  sections,
		sched:     sched,
		opts:      o,
		logger:    o.logger,
		heights:   make([]float32, 0, sections.Len()),
		wheel:     NewWheelArbiter(sched, o.wheelThreshold, o.wheelDebounce),
		projector: NewProjector(sections, o.fadeWindow),
	}
	c.sampler = newScrollSampler(sched, c.sample)
	c.snap = newSnapController(&c.state, sched, o)
	c.snap.replay = func(index int) { c.SnapTo(index) }
	return c, nil
}

// Mount attaches the controller to container. The scrolling surface is
// resolved once by walking container's ancestors; window is used when none
// of them scrolls. layout supplies measured section heights and may be nil.
// Mounting a mounted controller remounts it. The scroll state starts over
// from the surface's current offset; no section change is reported for it.
func (c *Controller) Mount(container Element, window Surface, layout Layout) {
	if c.running {
		c.Unmount()
	}
	c.state = ScrollState{}

	c.layout = layout
	c.surface = ResolveSurface(container, window)
	c.running = true
	c.sampler.start()

	if c.surface == nil {
		c.logger.Debug("mounted without a scroll surface")
		return
	}

	c.removers = append(c.removers,
		c.surface.OnScroll(c.onScroll),
		c.surface.OnWheel(c.onWheel),
	)
	c.refreshHeights()
	if c.surface.ViewportHeight() > 0 {
		c.state.RawOffset = c.surface.ScrollOffset()
		c.state.CurrentSection = Classify(c.state.RawOffset, c.heights)
	}
	c.sampler.Request()

	c.logger.Debug("mounted", "section", c.state.CurrentSection, "sections", c.sections.Len(), "viewport", c.surface.ViewportHeight())
}

// Unmount detaches listeners, cancels the pending frame and clears timers.
// Events or frames arriving afterwards are ignored.
func (c *Controller) Unmount() {
	if !c.running {
		return
	}
	c.running = false
	for _, remove := range c.removers {
		remove()
	}
	c.removers = c.removers[:0]
	c.sampler.stop()
	c.wheel.Reset()
	c.snap.stop()
	c.surface = nil
	c.layout = nil

	c.logger.Debug("unmounted")
}

func (c *Controller) onScroll() {
	if !c.running {
		return
	}
	c.sampler.Request()
}

func (c *Controller) onWheel(ev *WheelEvent) {
	if !c.running {
		return
	}
	cur := c.state.CurrentSection
	zone := ZoneFor(cur, c.sections.Len())
	switch c.wheel.OnWheel(ev, zone, c.state.Busy()) {
	case WheelAdvance:
		c.SnapTo(cur + 1)
	case WheelRetreat:
		c.SnapTo(cur - 1)
	}
}

// sample runs once per scheduled frame: offset, then classification, then
// the projection inputs.
func (c *Controller) sample() {
	// Not laid out yet: nothing meaningful to classify.
	if c.surface == nil || c.surface.ViewportHeight() <= 0 {
		return
	}
	c.refreshHeights()
	c.state.RawOffset = c.surface.ScrollOffset()

	prev := c.state.CurrentSection
	next := Classify(c.state.RawOffset, c.heights)
	if next != prev {
		c.state.CurrentSection = next
		c.logger.Debug("section changed", "from", prev, "to", next, "offset", c.state.RawOffset)
		if c.opts.onSectionChange != nil {
			c.opts.onSectionChange(prev, next)
		}
	}

	if verbose() {
		c.logger.Debug("sample", "offset", c.state.RawOffset, "section", c.state.CurrentSection, "snapping", c.state.IsSnapping)
	}
	c.snap.observe(c.state.RawOffset)
	if c.opts.onFrame != nil {
		c.opts.onFrame(c.state)
	}
}

func (c *Controller) refreshHeights() {
	vh := c.surface.ViewportHeight()
	c.heights = resolveHeightsInto(c.heights, c.sections, c.layout, vh)
	c.projector.Update(c.heights, vh)
}

// Invalidate schedules a sample on the next frame, e.g. after the host
// changed the layout without scrolling.
func (c *Controller) Invalidate() {
	if !c.running {
		return
	}
	c.sampler.Request()
}

// SnapTo smoothly scrolls to section index. It is a no-op when the controller
// is not attached to a surface, index is out of range, or a snap is already
// running. It reports whether a scroll command was issued.
func (c *Controller) SnapTo(index int) bool {
	if !c.running || c.surface == nil {
		return false
	}
	if !c.sections.Contains(index) {
		c.logger.Debug("snap ignored: index out of range", "target", index)
		return false
	}
	c.refreshHeights()
	return c.snap.snapTo(c.surface, index, c.heights)
}

// Project returns the visual state of layer for the latest sample.
func (c *Controller) Project(layer LayerSpec) LayerVisual {
	return c.projector.Project(layer, c.state.RawOffset, c.state.CurrentSection)
}

// ProjectAll projects every layer into dst, reusing its capacity.
func (c *Controller) ProjectAll(layers []LayerSpec, dst []LayerVisual) []LayerVisual {
	dst = dst[:0]
	for _, l := range layers {
		dst = append(dst, c.Project(l))
	}
	return dst
}

// CurrentSection returns the index of the section currently in view.
func (c *Controller) CurrentSection() int { return c.state.CurrentSection }

// State returns a copy of the scroll state.
func (c *Controller) State() ScrollState { return c.state }

// Sections returns the page's sections.
func (c *Controller) Sections() Sections { return c.sections }

// Heights returns a copy of the most recently resolved section heights.
func (c *Controller) Heights() []float32 {
	out := make([]float32, len(c.heights))
	copy(out, c.heights)
	return out
}

// SectionOffset returns the absolute scroll offset of section index.
func (c *Controller) SectionOffset(index int) float32 {
	return OffsetOf(index, c.heights)
}

// Mounted reports whether the controller is mounted.
func (c *Controller) Mounted() bool { return c.running }

// Surface returns the resolved scroll surface, or nil when unattached.
func (c *Controller) Surface() Surface { return c.surface }

// WheelPhase returns the wheel arbiter's phase.
func (c *Controller) WheelPhase() WheelPhase { return c.wheel.Phase() }

// SnapsIssued returns how many snap scroll commands have been issued.
func (c *Controller) SnapsIssued() uint64 { return c.snap.Issued() }

// Samples returns how many frames have been sampled.
func (c *Controller) Samples() uint64 { return c.sampler.Samples() }
