package parallax

import (
	"cmp"
	"slices"
	"time"
)

// Clock provides the current time to a Loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to.
// Hosts replaying recorded input and tests use it to step time deterministically.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// FrameID identifies a pending animation-frame request. Zero is never issued.
type FrameID uint64

// Timer is a cancellable one-shot callback.
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was stopped.
	Stop() bool
}

// Scheduler paces engine work. Every callback it runs is invoked on the
// host's loop goroutine, never concurrently with another callback.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
	AfterFunc(d time.Duration, fn func()) Timer
}

type frameRequest struct {
	id FrameID
	fn func()
}

type loopTimer struct {
	when    time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

func (t *loopTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Loop is a single-threaded frame scheduler. The host calls RunFrame once per
// display refresh; due timers fire first, then every frame callback requested
// before the call runs in request order.
//
// Usage:
//
//	loop := parallax.NewLoop(parallax.SystemClock{})
//	for !window.ShouldClose() {
//	    glfw.PollEvents()    // listeners may request frames here
//	    loop.RunFrame()      // sample, classify, project
//	    scene.Draw(dl)
//	}
type Loop struct {
	clock      Clock
	nextID     FrameID
	timerSeq   uint64
	frames     []frameRequest
	timers     []*loopTimer
	frameCount uint64
}

// NewLoop creates a loop reading time from clock.
func NewLoop(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		clock:  clock,
		frames: make([]frameRequest, 0, 4),
		timers: make([]*loopTimer, 0, 4),
	}
}

// Now returns the loop's current time.
func (l *Loop) Now() time.Time { return l.clock.Now() }

// RequestFrame schedules fn for the next RunFrame.
func (l *Loop) RequestFrame(fn func()) FrameID {
	l.nextID++
	l.frames = append(l.frames, frameRequest{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelFrame removes a pending frame request. Unknown IDs are ignored.
func (l *Loop) CancelFrame(id FrameID) {
	for i, f := range l.frames {
		if f.id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
}

// AfterFunc schedules fn to run on the first RunFrame at or after d from now.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	l.timerSeq++
	t := &loopTimer{when: l.clock.Now().Add(d), seq: l.timerSeq, fn: fn}
	l.timers = append(l.timers, t)
	return t
}

// PendingFrames returns the number of frame requests waiting to run.
func (l *Loop) PendingFrames() int { return len(l.frames) }

// PendingTimers returns the number of timers that have neither fired nor stopped.
func (l *Loop) PendingTimers() int {
	n := 0
	for _, t := range l.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// FrameCount returns how many frames have run.
func (l *Loop) FrameCount() uint64 { return l.frameCount }

// RunFrame fires due timers and then runs the frame callbacks queued so far.
// Requests made by those callbacks wait for the next RunFrame.
func (l *Loop) RunFrame() {
	l.frameCount++
	l.fireTimers()

	frames := l.frames
	l.frames = make([]frameRequest, 0, cap(frames))
	for _, f := range frames {
		f.fn()
	}
}

func (l *Loop) fireTimers() {
	now := l.clock.Now()
	var due []*loopTimer
	live := l.timers[:0]
	for _, t := range l.timers {
		switch {
		case t.stopped:
		case !t.when.After(now):
			due = append(due, t)
		default:
			live = append(live, t)
		}
	}
	// Drop references past the compacted length.
	clear(l.timers[len(live):])
	l.timers = live

	slices.SortFunc(due, func(a, b *loopTimer) int {
		if c := a.when.Compare(b.when); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	for _, t := range due {
		// An earlier callback in this batch may have stopped it.
		if t.stopped {
			continue
		}
		t.fired = true
		t.fn()
	}
}
