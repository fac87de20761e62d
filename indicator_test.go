package parallax_test

import (
	"testing"

	"github.com/go-theft-auto/parallax"
)

func TestDotIndicatorLayout(t *testing.T) {
	style := parallax.DefaultStyle()
	d := parallax.NewDotIndicator(4, style)

	rects := d.Layout(display)
	if len(rects) != 4 {
		t.Fatalf("expected 4 dots, got %d", len(rects))
	}
	top, bottom := rects[0].Y, rects[3].Y+rects[3].H
	if !approx(top, display.Y-bottom) {
		t.Errorf("dots should be vertically centered: top %v, bottom gap %v", top, display.Y-bottom)
	}
	for i := 1; i < len(rects); i++ {
		if !approx(rects[i].Y-rects[i-1].Y, style.DotSize+style.DotGap) {
			t.Errorf("dot %d has uneven spacing", i)
		}
	}
	if right := rects[0].X + rects[0].W; !approx(right, display.X-style.DotMargin) {
		t.Errorf("expected right edge at %v, got %v", display.X-style.DotMargin, right)
	}
}

func TestDotIndicatorHitTest(t *testing.T) {
	d := parallax.NewDotIndicator(4, parallax.DefaultStyle())
	r := d.Layout(display)[1]

	if i, ok := d.HitTest(parallax.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}, display); !ok || i != 1 {
		t.Errorf("expected dot 1, got %d %v", i, ok)
	}
	// Padding extends the target slightly above the dot.
	if i, ok := d.HitTest(parallax.Vec2{X: r.X + 1, Y: r.Y - 2}, display); !ok || i != 1 {
		t.Errorf("expected padded hit on dot 1, got %d %v", i, ok)
	}
	if _, ok := d.HitTest(parallax.Vec2{X: 10, Y: 10}, display); ok {
		t.Error("expected a miss far from the dots")
	}
}

func TestDotIndicatorUpdate(t *testing.T) {
	d := parallax.NewDotIndicator(4, parallax.DefaultStyle())
	r := d.Layout(display)[2]
	input := parallax.NewInputState()
	input.SetMousePos(r.X+r.W/2, r.Y+r.H/2)

	if _, ok := d.Update(input, display); ok {
		t.Error("hover alone should not navigate")
	}
	if d.Hovered() != 2 {
		t.Errorf("expected dot 2 hovered, got %d", d.Hovered())
	}

	input.SetMouseButton(parallax.MouseButtonLeft, true)
	if i, ok := d.Update(input, display); !ok || i != 2 {
		t.Errorf("expected click on dot 2, got %d %v", i, ok)
	}

	input.Reset()
	input.SetMousePos(0, 0)
	d.Update(input, display)
	if d.Hovered() != -1 {
		t.Errorf("expected no hover, got %d", d.Hovered())
	}
}

func TestDotIndicatorDraw(t *testing.T) {
	d := parallax.NewDotIndicator(3, parallax.DefaultStyle())
	dl := parallax.AcquireDrawList()
	defer parallax.ReleaseDrawList(dl)

	d.Draw(dl, display, 1)
	// Each dot is a fill plus a four-edge outline.
	if got := len(collectQuads(dl)); got != 15 {
		t.Errorf("expected 15 quads, got %d", got)
	}
}
