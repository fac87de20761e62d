package parallax

import "fmt"

// Scene defaults.
const (
	DefaultWheelScale      float32 = 100 // Wheel delta units per notch
	DefaultIntrinsicHeight float32 = 0.6 // Measured height of intrinsic sections, in viewports
)

// SceneLayer is a hero layer: a projection spec plus its resting shape.
// X, Y, W and H are fractions of the display size; Y becomes the layer's
// InitialOffset on every resize.
type SceneLayer struct {
	Spec       LayerSpec
	X, Y, W, H float32
}

// Scene is the landing page: a scroll view hosting stacked sections, hero
// parallax layers and a dot indicator, driven by one Controller.
//
// Usage:
//
//	scene, err := parallax.NewScene(sections, layers, loop, parallax.DefaultStyle())
//	defer scene.Close()
//
//	for !window.ShouldClose() {
//	    scene.Resize(displaySize)
//	    scene.Frame(input, dt)
//	    dl := parallax.AcquireDrawList()
//	    scene.Draw(dl)
//	    renderer.Render(dl)
//	    parallax.ReleaseDrawList(dl)
//	}
type Scene struct {
	View       *ScrollView
	Controller *Controller
	Indicator  *DotIndicator
	Loop       *Loop
	Style      Style

	// WheelScale converts wheel notches into wheel delta units.
	WheelScale float32
	// IntrinsicHeight is the laid-out height of intrinsic sections, in viewports.
	IntrinsicHeight float32

	layers  []SceneLayer
	specs   []LayerSpec
	visuals []LayerVisual

	display  Vec2
	measured []float32
}

// NewScene builds and mounts a landing page. Controller options are passed through.
func NewScene(sections Sections, layers []SceneLayer, loop *Loop, style Style, opts ...Option) (*Scene, error) {
	c, err := New(sections, loop, opts...)
	if err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	s := &Scene{
		View:            NewScrollView(0, 0),
		Controller:      c,
		Indicator:       NewDotIndicator(sections.Len(), style),
		Loop:            loop,
		Style:           style,
		WheelScale:      DefaultWheelScale,
		IntrinsicHeight: DefaultIntrinsicHeight,
		layers:          append([]SceneLayer(nil), layers...),
		specs:           make([]LayerSpec, len(layers)),
	}
	for i, l := range layers {
		s.specs[i] = l.Spec
	}
	c.Mount(s.View, nil, s)
	return s, nil
}

// SectionHeight implements Layout. Sections are unmeasured until the first Resize.
func (s *Scene) SectionHeight(index int) (float32, bool) {
	if index < 0 || index >= len(s.measured) {
		return 0, false
	}
	return s.measured[index], true
}

// Resize lays the page out for a display size. It is cheap to call every frame.
func (s *Scene) Resize(display Vec2) {
	if display == s.display && s.measured != nil {
		return
	}
	s.display = display

	sections := s.Controller.Sections()
	s.measured = s.measured[:0]
	var content float32
	for i := 0; i < sections.Len(); i++ {
		h := sections.At(i).Height
		var px float32
		if h.IsIntrinsic() {
			px = display.Y * s.IntrinsicHeight
		} else {
			px = h.Estimate(display.Y)
		}
		s.measured = append(s.measured, px)
		content += px
	}
	for i, l := range s.layers {
		s.specs[i].InitialOffset = l.Y * display.Y
	}
	s.View.Resize(display.Y, content)
	s.Controller.Invalidate()
}

// HandleInput routes one frame of input: wheel notches to the scroll view,
// indicator clicks and navigation keys to the controller.
func (s *Scene) HandleInput(input *InputState) {
	if input.MouseWheelY != 0 {
		s.View.Wheel(-input.MouseWheelY * s.WheelScale)
	}

	if i, ok := s.Indicator.Update(input, s.display); ok {
		s.Controller.SnapTo(i)
	}

	if i, ok := input.Navigation().Target(s.Controller.CurrentSection(), s.Controller.Sections().Len()); ok {
		s.Controller.SnapTo(i)
	}
}

// Frame advances the page by one display frame: input, smooth scrolling,
// then the loop's timers and sampling.
func (s *Scene) Frame(input *InputState, deltaTime float32) {
	if input != nil {
		s.HandleInput(input)
	}
	s.View.Update(deltaTime)
	s.Loop.RunFrame()
}

// Draw renders the page into dl.
func (s *Scene) Draw(dl *DrawList) {
	w, h := s.display.X, s.display.Y
	scrollY := s.View.ScrollY

	dl.AddRect(0, 0, w, h, s.Style.BackgroundColor)

	// Sections, skipping those entirely off screen.
	var top float32
	for i, sh := range s.measured {
		y := top - scrollY
		if y < h && y+sh > 0 {
			dl.AddRect(0, y, w, sh, s.Style.SectionColor(i))
		}
		top += sh
	}

	// Hero layers, fixed to the viewport and moved by projection.
	s.visuals = s.Controller.ProjectAll(s.specs, s.visuals)
	dl.PushClipRect(0, 0, w, h)
	for i, v := range s.visuals {
		if !v.Visible() {
			continue
		}
		l := s.layers[i]
		r := Rect{X: l.X * w, Y: v.Y(s.specs[i]), W: l.W * w, H: l.H * h}.Scaled(v.Scale)
		dl.AddRect(r.X, r.Y, r.W, r.H, Fade(s.Style.LayerColor(i), v.Opacity))
	}
	dl.PopClipRect()

	s.drawScrollbar(dl)
	s.Indicator.Draw(dl, s.display, s.Controller.CurrentSection())
}

func (s *Scene) drawScrollbar(dl *DrawList) {
	content := s.View.ContentHeight
	viewport := s.View.Viewport
	if content <= viewport || viewport <= 0 {
		return
	}
	size := s.Style.ScrollbarSize
	x := s.display.X - size
	dl.AddRect(x, 0, size, viewport, s.Style.ScrollbarBgColor)

	grabH := maxf(size*2, viewport*viewport/content)
	grabY := (viewport - grabH) * (s.View.ScrollY / s.View.MaxScroll())
	dl.AddRect(x, grabY, size, grabH, s.Style.ScrollbarGrabColor)
}

// Visuals returns the layer visuals computed by the last Draw.
func (s *Scene) Visuals() []LayerVisual { return s.visuals }

// Display returns the current display size.
func (s *Scene) Display() Vec2 { return s.display }

// Close unmounts the controller.
func (s *Scene) Close() {
	s.Controller.Unmount()
}

// LandingSections returns the canonical landing page: a 1.5 viewport parallax
// hero, two single-viewport content sections and a content-sized footer.
func LandingSections() Sections {
	s, _ := NewSections(
		SectionDescriptor{Height: Viewports(1.5), Parallax: true},
		SectionDescriptor{Height: Viewports(1)},
		SectionDescriptor{Height: Viewports(1)},
		SectionDescriptor{Height: Intrinsic()},
	)
	return s
}

// LandingLayers returns the hero layers of the canonical landing page,
// back to front.
func LandingLayers() []SceneLayer {
	return []SceneLayer{
		{Spec: LayerSpec{Speed: 0.1, Scales: true}, X: 0.62, Y: 0.12, W: 0.14, H: 0.2},
		{Spec: LayerSpec{Speed: 0.3}, X: -0.1, Y: 0.55, W: 1.2, H: 0.3},
		{Spec: LayerSpec{Speed: 0.6, Scales: true, ScaleFactor: 0.2}, X: -0.05, Y: 0.7, W: 0.7, H: 0.3},
		{Spec: LayerSpec{Speed: 1.0}, X: 0, Y: 0.88, W: 1, H: 0.12},
	}
}
