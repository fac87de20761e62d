/*
Package parallax provides a scroll-synchronized parallax and section-snap
engine for landing pages, plus the frame loop, scroll view and draw
primitives its hosts render with.

# Overview

A landing page is a vertical stack of sections. The hero section scrolls
freely and drives parallax layers; the middle sections snap, turning wheel
gestures into whole-section moves; the footer scrolls freely again. One
Controller coordinates it all from a single scroll signal:

	scroll/wheel events -> ScrollSampler -> Classify -> current section
	                    -> WheelArbiter  -> SnapController -> ScrollTo
	every sampled frame -> Projector     -> per-layer LayerVisual

# Quick Start

	loop := parallax.NewLoop(parallax.SystemClock{})
	sections, _ := parallax.NewSections(
	    parallax.SectionDescriptor{Height: parallax.Viewports(1.5), Parallax: true},
	    parallax.SectionDescriptor{Height: parallax.Viewports(1)},
	    parallax.SectionDescriptor{Height: parallax.Intrinsic()},
	)

	c, err := parallax.New(sections, loop)
	if err != nil {
	    return err
	}
	c.Mount(container, window, layout)
	defer c.Unmount()

	for running {
	    pollEvents()   // surface listeners fire here
	    loop.RunFrame() // timers, then sample -> classify -> project inputs
	    v := c.Project(parallax.LayerSpec{Speed: 0.5})
	    draw(v.TranslateY, v.Scale, v.Opacity)
	}

Scene packages this into a ready landing page drawn into a DrawList; the
backend/opengl and backend/terminal packages host it in a GLFW window or a
terminal.

# Sections

Current section classification uses section midpoints rather than
boundaries, so the reported section stays stable while the viewport sits on
an edge. Once every earlier midpoint has been passed the last section wins,
even when the footer is shorter than the viewport.

Heights come from the host's Layout when measured and fall back to the
declared viewport multiple otherwise. Intrinsic ("auto") sections are
estimated at one viewport until measured.

# Wheel Arbitration

Wheel events in the first and last sections are left alone. In between they
are intercepted and accumulated; a sum of DefaultWheelThreshold advances or
retreats one section. The accumulator resets after DefaultWheelDebounce of
inactivity and immediately after a decision. While a snap is running wheel
decisions are ignored.

# Snapping

SnapTo issues one smooth scroll and raises the snapping flags for
DefaultSnapCooldown. A request made during a running snap is dropped.
WithSettleTolerance and WithQueueLatestSnap change those two behaviors.

# Threading

Everything runs on the goroutine that calls Loop.RunFrame. Surface
listeners must be invoked on that goroutine as well; backends collect
window-system input on the main thread and feed it in before RunFrame.
*/
package parallax
