package parallax_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-theft-auto/parallax"
)

type mockRenderer struct {
	renders int
	quads   int
	err     error
}

func (m *mockRenderer) Render(dl *parallax.DrawList) error {
	m.renders++
	m.quads = len(collectQuads(dl))
	return m.err
}

var display = parallax.Vec2{X: 1000, Y: vh}

// Helper to create a laid-out landing scene on a manual clock.
func setupScene(t *testing.T, opts ...parallax.Option) (*parallax.Scene, *parallax.InputState, *parallax.ManualClock) {
	t.Helper()
	clock := parallax.NewManualClock(time.Unix(0, 0))
	loop := parallax.NewLoop(clock)
	scene, err := parallax.NewScene(parallax.LandingSections(), parallax.LandingLayers(), loop, parallax.DefaultStyle(), opts...)
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	t.Cleanup(scene.Close)
	scene.Resize(display)
	input := parallax.NewInputState()
	scene.Frame(input, 0.016)
	return scene, input, clock
}

// runFrames advances the scene by n frames of 16ms with no new input.
func runFrames(scene *parallax.Scene, input *parallax.InputState, clock *parallax.ManualClock, n int) {
	for i := 0; i < n; i++ {
		input.Reset()
		clock.Advance(16 * time.Millisecond)
		scene.Frame(input, 0.016)
	}
}

func TestSceneLayout(t *testing.T) {
	scene, _, _ := setupScene(t)

	want := []float32{1.5 * vh, vh, vh, 0.6 * vh}
	got := scene.Controller.Heights()
	if len(got) != len(want) {
		t.Fatalf("expected %d heights, got %v", len(want), got)
	}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("section %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if !approx(scene.View.ContentHeight, 4.1*vh) {
		t.Errorf("expected content %v, got %v", 4.1*vh, scene.View.ContentHeight)
	}
	if scene.Display() != display {
		t.Errorf("unexpected display %v", scene.Display())
	}
}

func TestSceneKeyboardSnap(t *testing.T) {
	scene, input, clock := setupScene(t)

	input.SetKey(parallax.KeyPageDown, true)
	scene.Frame(input, 0.016)
	input.SetKey(parallax.KeyPageDown, false)
	if !scene.Controller.State().IsSnapping {
		t.Fatal("page down should start a snap")
	}

	runFrames(scene, input, clock, 90)
	if scene.View.ScrollY != 1.5*vh {
		t.Errorf("expected to land on section 1 at %v, got %v", 1.5*vh, scene.View.ScrollY)
	}
	if st := scene.Controller.State(); st.CurrentSection != 1 || st.IsSnapping {
		t.Errorf("expected settled on section 1, got %+v", st)
	}
}

func TestSceneWheelInHeroScrollsNatively(t *testing.T) {
	scene, input, clock := setupScene(t)

	input.AddMouseWheel(0, -1)
	scene.Frame(input, 0.016)
	runFrames(scene, input, clock, 1)
	if scene.View.ScrollY != parallax.DefaultWheelScale {
		t.Errorf("expected one notch of native scroll, got %v", scene.View.ScrollY)
	}
	if scene.Controller.SnapsIssued() != 0 {
		t.Error("hero wheel must not snap")
	}
}

func TestSceneWheelInContentSnaps(t *testing.T) {
	scene, input, clock := setupScene(t)
	scene.Controller.SnapTo(1)
	runFrames(scene, input, clock, 90)

	input.AddMouseWheel(0, -1)
	scene.Frame(input, 0.016)
	if got := scene.View.TargetScrollY; got != 2.5*vh {
		t.Fatalf("one notch in a content section should snap to section 2, got target %v", got)
	}

	runFrames(scene, input, clock, 90)
	if scene.Controller.CurrentSection() != 2 {
		t.Errorf("expected section 2, got %d", scene.Controller.CurrentSection())
	}
}

func TestSceneIndicatorClick(t *testing.T) {
	scene, input, clock := setupScene(t)

	dot := scene.Indicator.Layout(display)[3]
	input.SetMousePos(dot.X+dot.W/2, dot.Y+dot.H/2)
	input.SetMouseButton(parallax.MouseButtonLeft, true)
	scene.Frame(input, 0.016)
	if scene.Indicator.Hovered() != 3 {
		t.Errorf("expected dot 3 hovered, got %d", scene.Indicator.Hovered())
	}

	runFrames(scene, input, clock, 120)
	// The footer is shorter than the viewport, so the view stops at its max.
	if scene.View.ScrollY != scene.View.MaxScroll() {
		t.Errorf("expected max scroll %v, got %v", scene.View.MaxScroll(), scene.View.ScrollY)
	}
	if scene.Controller.CurrentSection() != 3 {
		t.Errorf("expected footer, got %d", scene.Controller.CurrentSection())
	}
}

func TestSceneRender(t *testing.T) {
	scene, _, _ := setupScene(t)

	r := &mockRenderer{}
	if err := scene.Render(r); err != nil {
		t.Fatalf("render: %v", err)
	}
	if r.renders != 1 || r.quads == 0 {
		t.Errorf("expected one render with quads, got %d/%d", r.renders, r.quads)
	}
	if got := len(scene.Visuals()); got != len(parallax.LandingLayers()) {
		t.Errorf("expected a visual per layer, got %d", got)
	}
	for i, v := range scene.Visuals() {
		if v.Opacity != 1 || v.TranslateY != 0 {
			t.Errorf("layer %d should rest at the top, got %+v", i, v)
		}
	}

	boom := errors.New("boom")
	r.err = boom
	if err := scene.Render(r); !errors.Is(err, boom) {
		t.Errorf("expected wrapped renderer error, got %v", err)
	}
}

func TestSceneCloseUnmounts(t *testing.T) {
	scene, _, _ := setupScene(t)
	scene.Close()
	if scene.Controller.Mounted() {
		t.Error("close should unmount the controller")
	}
	if scroll, wheel := scene.View.Listeners(); scroll != 0 || wheel != 0 {
		t.Errorf("expected no listeners, got %d/%d", scroll, wheel)
	}
}
