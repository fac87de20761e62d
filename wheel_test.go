package parallax

import (
	"testing"
	"time"
)

func newTestArbiter() (*WheelArbiter, *Loop, *ManualClock) {
	clock := NewManualClock(time.Unix(0, 0))
	loop := NewLoop(clock)
	return NewWheelArbiter(loop, 0, 0), loop, clock
}

func TestStepWheelBelowThreshold(t *testing.T) {
	s, fx := stepWheel(wheelState{}, wheelInput{delta: 99, zone: ZoneSnap}, 100)
	if fx.decision != WheelNone {
		t.Errorf("99 should not decide, got %v", fx.decision)
	}
	if !fx.intercept || !fx.armDebounce {
		t.Error("snap zone deltas should be intercepted and arm the debounce")
	}
	if s.phase != WheelAccumulating || s.acc != 99 {
		t.Errorf("expected accumulating at 99, got %+v", s)
	}
}

func TestStepWheelThreshold(t *testing.T) {
	s, fx := stepWheel(wheelState{}, wheelInput{delta: 100, zone: ZoneSnap}, 100)
	if fx.decision != WheelAdvance {
		t.Errorf("100 should advance, got %v", fx.decision)
	}
	if s != (wheelState{}) {
		t.Errorf("accumulator should reset after a decision, got %+v", s)
	}

	_, fx = stepWheel(wheelState{phase: WheelAccumulating, acc: -60}, wheelInput{delta: -40, zone: ZoneSnap}, 100)
	if fx.decision != WheelRetreat {
		t.Errorf("-100 should retreat, got %v", fx.decision)
	}
}

func TestStepWheelFreeZone(t *testing.T) {
	s, fx := stepWheel(wheelState{}, wheelInput{delta: 500, zone: ZoneFree}, 100)
	if fx.intercept || fx.decision != WheelNone {
		t.Errorf("free zone must not intercept, got %+v", fx)
	}
	if s.phase != WheelIdle {
		t.Errorf("expected idle, got %v", s.phase)
	}

	// Leaving the snap zone mid-gesture drops the partial sum.
	s, fx = stepWheel(wheelState{phase: WheelAccumulating, acc: 80}, wheelInput{delta: 10, zone: ZoneFree}, 100)
	if s != (wheelState{}) || !fx.cancelDebounce {
		t.Errorf("expected reset with cancelled debounce, got %+v %+v", s, fx)
	}
}

func TestStepWheelBusy(t *testing.T) {
	in := wheelState{phase: WheelAccumulating, acc: 50}
	s, fx := stepWheel(in, wheelInput{delta: 500, zone: ZoneSnap, busy: true}, 100)
	if !fx.intercept {
		t.Error("busy snap zone should still intercept")
	}
	if fx.decision != WheelNone {
		t.Errorf("busy should suppress decisions, got %v", fx.decision)
	}
	if s != in {
		t.Errorf("busy should leave state alone, got %+v", s)
	}
}

func TestWheelArbiterOneDecisionPerGesture(t *testing.T) {
	a, _, _ := newTestArbiter()

	ev := &WheelEvent{DeltaY: 99}
	if d := a.OnWheel(ev, ZoneSnap, false); d != WheelNone {
		t.Fatalf("expected none, got %v", d)
	}
	if !ev.DefaultPrevented() {
		t.Error("snap zone event should be prevented")
	}
	if d := a.OnWheel(&WheelEvent{DeltaY: 1}, ZoneSnap, false); d != WheelAdvance {
		t.Fatalf("expected advance at 100, got %v", d)
	}
	if a.Phase() != WheelIdle || a.Accumulated() != 0 {
		t.Errorf("expected reset, got %v %v", a.Phase(), a.Accumulated())
	}
	if d := a.OnWheel(&WheelEvent{DeltaY: 99}, ZoneSnap, false); d != WheelNone {
		t.Errorf("a fresh 99 should not decide, got %v", d)
	}
}

func TestWheelArbiterDebounce(t *testing.T) {
	a, loop, clock := newTestArbiter()

	a.OnWheel(&WheelEvent{DeltaY: 60}, ZoneSnap, false)
	clock.Advance(100 * time.Millisecond)
	loop.RunFrame()
	a.OnWheel(&WheelEvent{DeltaY: 30}, ZoneSnap, false)
	if a.Accumulated() != 90 {
		t.Fatalf("events within the debounce window should accumulate, got %v", a.Accumulated())
	}
	if loop.PendingTimers() != 1 {
		t.Errorf("each event should re-arm a single timer, got %d", loop.PendingTimers())
	}

	clock.Advance(149 * time.Millisecond)
	loop.RunFrame()
	if a.Phase() != WheelAccumulating {
		t.Fatal("debounce fired early")
	}

	clock.Advance(time.Millisecond)
	loop.RunFrame()
	if a.Phase() != WheelIdle || a.Accumulated() != 0 {
		t.Errorf("expected idle after 150ms of silence, got %v %v", a.Phase(), a.Accumulated())
	}
	if d := a.OnWheel(&WheelEvent{DeltaY: 60}, ZoneSnap, false); d != WheelNone {
		t.Errorf("expected none after debounce reset, got %v", d)
	}
}

func TestWheelArbiterReset(t *testing.T) {
	a, loop, _ := newTestArbiter()

	a.OnWheel(&WheelEvent{DeltaY: 50}, ZoneSnap, false)
	a.Reset()
	if a.Phase() != WheelIdle || loop.PendingTimers() != 0 {
		t.Errorf("reset should clear state and timer, got %v with %d timers", a.Phase(), loop.PendingTimers())
	}
}

func TestZoneFor(t *testing.T) {
	want := []WheelZone{ZoneFree, ZoneSnap, ZoneSnap, ZoneFree}
	for i, z := range want {
		if got := ZoneFor(i, len(want)); got != z {
			t.Errorf("section %d: expected zone %v, got %v", i, z, got)
		}
	}
	if ZoneFor(0, 1) != ZoneFree {
		t.Error("a single section scrolls freely")
	}
}
