package parallax_test

import (
	"testing"

	"github.com/go-theft-auto/parallax"
)

func TestScrollViewSmoothScroll(t *testing.T) {
	v := parallax.NewScrollView(600, 2000)
	notified := 0
	v.OnScroll(func() { notified++ })

	v.ScrollTo(1000, true)
	if !v.Animating() || v.ScrollY != 0 {
		t.Fatalf("smooth scroll should start animating from 0, got %v", v.ScrollY)
	}

	prev := v.ScrollY
	frames := 0
	for v.Update(0.016) {
		if v.ScrollY <= prev {
			t.Fatalf("scroll should advance toward the target, got %v after %v", v.ScrollY, prev)
		}
		prev = v.ScrollY
		frames++
		if frames > 1000 {
			t.Fatal("smooth scroll never settled")
		}
	}
	if v.ScrollY != 1000 {
		t.Errorf("expected to land exactly on 1000, got %v", v.ScrollY)
	}
	if notified == 0 {
		t.Error("scroll listeners should be notified while animating")
	}
}

func TestScrollViewClamps(t *testing.T) {
	v := parallax.NewScrollView(600, 2000)

	v.ScrollTo(5000, false)
	if v.ScrollY != 1400 {
		t.Errorf("expected max scroll 1400, got %v", v.ScrollY)
	}
	v.ScrollTo(-10, false)
	if v.ScrollY != 0 {
		t.Errorf("expected 0, got %v", v.ScrollY)
	}

	v.ScrollTo(1400, false)
	v.Resize(600, 1000)
	if v.ScrollY != 400 {
		t.Errorf("shrinking content should clamp the offset, got %v", v.ScrollY)
	}
}

func TestScrollViewWheel(t *testing.T) {
	v := parallax.NewScrollView(600, 2000)

	v.Wheel(120)
	if v.ScrollY != 120 {
		t.Fatalf("unhandled wheel should scroll natively, got %v", v.ScrollY)
	}

	remove := v.OnWheel(func(ev *parallax.WheelEvent) { ev.PreventDefault() })
	ev := v.Wheel(120)
	if !ev.DefaultPrevented() || v.ScrollY != 120 {
		t.Errorf("prevented wheel must not scroll, got %v", v.ScrollY)
	}

	remove()
	if _, wheel := v.Listeners(); wheel != 0 {
		t.Errorf("expected listener removed, got %d", wheel)
	}
	v.Wheel(-20)
	if v.ScrollY != 100 {
		t.Errorf("expected 100, got %v", v.ScrollY)
	}
}

func TestScrollViewWheelCancelsSmoothScroll(t *testing.T) {
	v := parallax.NewScrollView(600, 2000)
	v.ScrollTo(1000, true)
	v.Update(0.016)

	v.Wheel(10)
	if v.Animating() {
		t.Error("native wheel scrolling should cancel the animation")
	}
}
