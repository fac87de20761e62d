package parallax

import "time"

// Wheel arbitration defaults.
const (
	DefaultWheelThreshold float32 = 100                    // Accumulated delta that counts as a page gesture
	DefaultWheelDebounce          = 150 * time.Millisecond // Inactivity before the accumulator resets
)

// WheelDecision is the outcome of one wheel event.
type WheelDecision int

const (
	WheelNone    WheelDecision = iota // No section change
	WheelAdvance                      // Move to the next section
	WheelRetreat                      // Move to the previous section
)

// String implements fmt.Stringer.
func (d WheelDecision) String() string {
	switch d {
	case WheelAdvance:
		return "advance"
	case WheelRetreat:
		return "retreat"
	default:
		return "none"
	}
}

// WheelZone says whether wheel input at the current section is intercepted.
type WheelZone int

const (
	ZoneFree WheelZone = iota // Native scrolling (hero and footer)
	ZoneSnap                  // Wheel gestures advance or retreat sections
)

// ZoneFor returns the wheel zone of section index in a page of count sections.
// The first and last sections scroll freely.
func ZoneFor(index, count int) WheelZone {
	if index <= 0 || index >= count-1 {
		return ZoneFree
	}
	return ZoneSnap
}

// WheelPhase is the arbiter's state.
type WheelPhase int

const (
	WheelIdle WheelPhase = iota
	WheelAccumulating
)

type wheelState struct {
	phase WheelPhase
	acc   float32
}

type wheelInputKind int

const (
	wheelDelta wheelInputKind = iota
	wheelDebounceExpired
)

type wheelInput struct {
	kind  wheelInputKind
	delta float32
	zone  WheelZone
	busy  bool // snap or transition in progress
}

type wheelEffects struct {
	intercept      bool
	decision       WheelDecision
	armDebounce    bool
	cancelDebounce bool
}

// stepWheel is the arbiter's transition function.
func stepWheel(s wheelState, in wheelInput, threshold float32) (wheelState, wheelEffects) {
	if in.kind == wheelDebounceExpired {
		return wheelState{phase: WheelIdle}, wheelEffects{}
	}

	switch {
	case in.zone == ZoneFree:
		if s.phase == WheelAccumulating {
			return wheelState{phase: WheelIdle}, wheelEffects{cancelDebounce: true}
		}
		return s, wheelEffects{}
	case in.busy:
		return s, wheelEffects{intercept: true}
	}

	acc := s.acc + in.delta
	if absf32(acc) >= threshold {
		d := WheelAdvance
		if acc < 0 {
			d = WheelRetreat
		}
		return wheelState{phase: WheelIdle}, wheelEffects{intercept: true, decision: d, cancelDebounce: true}
	}
	return wheelState{phase: WheelAccumulating, acc: acc}, wheelEffects{intercept: true, armDebounce: true}
}

// WheelArbiter turns high-frequency wheel deltas into discrete section
// decisions. It is driven from the scheduler's goroutine only.
type WheelArbiter struct {
	state     wheelState
	threshold float32
	debounce  time.Duration
	sched     Scheduler
	timer     Timer
}

// NewWheelArbiter creates an arbiter. Non-positive threshold or debounce
// select the defaults.
func NewWheelArbiter(sched Scheduler, threshold float32, debounce time.Duration) *WheelArbiter {
	if threshold <= 0 {
		threshold = DefaultWheelThreshold
	}
	if debounce <= 0 {
		debounce = DefaultWheelDebounce
	}
	return &WheelArbiter{threshold: threshold, debounce: debounce, sched: sched}
}

// OnWheel feeds one wheel event. busy is true while a snap or transition is
// running; decisions are suppressed then. Intercepted events have their
// default prevented.
func (a *WheelArbiter) OnWheel(ev *WheelEvent, zone WheelZone, busy bool) WheelDecision {
	next, fx := stepWheel(a.state, wheelInput{kind: wheelDelta, delta: ev.DeltaY, zone: zone, busy: busy}, a.threshold)
	a.state = next
	a.apply(fx)
	if fx.intercept {
		ev.PreventDefault()
	}
	return fx.decision
}

func (a *WheelArbiter) apply(fx wheelEffects) {
	if fx.cancelDebounce || fx.armDebounce {
		a.stopTimer()
	}
	if fx.armDebounce {
		a.timer = a.sched.AfterFunc(a.debounce, a.expire)
	}
}

func (a *WheelArbiter) expire() {
	a.timer = nil
	a.state, _ = stepWheel(a.state, wheelInput{kind: wheelDebounceExpired}, a.threshold)
}

func (a *WheelArbiter) stopTimer() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Reset returns to Idle and clears any debounce timer.
func (a *WheelArbiter) Reset() {
	a.stopTimer()
	a.state = wheelState{}
}

// Phase returns the current arbiter phase.
func (a *WheelArbiter) Phase() WheelPhase { return a.state.phase }

// Accumulated returns the running delta sum.
func (a *WheelArbiter) Accumulated() float32 { return a.state.acc }
