package parallax

// Projection defaults.
const (
	DefaultScaleFactor float32 = 0.1 // Scale gained across a full parallax section
	DefaultFadeWindow  float32 = 0.5 // Fade distance past the section, in viewports

	heroMinOpacity float32 = 0.5 // Floor of the mild in-section decay
	heroDecay      float32 = 0.3 // Mild decay rate per unit progress
	heroFadeStart  float32 = 0.9 // Progress where the aggressive fade starts
	heroFadeRate   float32 = 5   // Aggressive fade rate per unit progress
)

// LayerSpec describes one parallax layer. Speed multiplies the scroll
// distance; InitialOffset is the layer's resting Y position.
type LayerSpec struct {
	Speed         float32
	InitialOffset float32
	Scales        bool
	ScaleFactor   float32 // 0 selects DefaultScaleFactor
}

// LayerVisual is the derived transform and opacity of a layer for one sample.
type LayerVisual struct {
	TranslateY float32
	Scale      float32
	Opacity    float32
}

// Y returns the layer's on-page Y position for this visual.
func (v LayerVisual) Y(layer LayerSpec) float32 {
	return layer.InitialOffset + v.TranslateY
}

// Visible reports whether the layer needs drawing at all.
func (v LayerVisual) Visible() bool { return v.Opacity > 0 }

// Geometry locates the parallax section a layer belongs to.
type Geometry struct {
	SectionStart  float32 // Absolute offset of the parallax section
	SectionHeight float32 // Height of the parallax section
	FadeDistance  float32 // Scroll distance past the section over which layers fade out
}

// ProjectLayer computes a layer's visual state at rawOffset. It is pure.
func ProjectLayer(layer LayerSpec, rawOffset float32, g Geometry) LayerVisual {
	local := rawOffset - g.SectionStart
	v := LayerVisual{TranslateY: -local * layer.Speed, Scale: 1, Opacity: 1}
	if g.SectionHeight <= 0 {
		return v
	}

	progress := clampf(local/g.SectionHeight, 0, 1)
	if layer.Scales {
		factor := layer.ScaleFactor
		if factor == 0 {
			factor = DefaultScaleFactor
		}
		v.Scale = 1 + progress*factor
	}

	if local <= g.SectionHeight {
		v.Opacity = heroOpacity(progress)
		return v
	}

	// Past the section: keep translating, fade by distance alone.
	edge := heroOpacity(1)
	if g.FadeDistance <= 0 {
		v.Opacity = 0
		return v
	}
	past := local - g.SectionHeight
	v.Opacity = maxf(0, edge*(1-past/g.FadeDistance))
	return v
}

// heroOpacity is the in-section opacity curve for progress in [0, 1].
func heroOpacity(progress float32) float32 {
	o := maxf(heroMinOpacity, 1-progress*heroDecay)
	if progress > heroFadeStart {
		o -= (progress - heroFadeStart) * heroFadeRate
	}
	return maxf(0, o)
}

// Projector projects layers against a fixed set of sections and heights.
type Projector struct {
	sections   Sections
	heights    []float32
	fadeWindow float32 // viewports
	viewport   float32
}

// NewProjector creates a projector. fadeWindow is in viewports; 0 selects
// DefaultFadeWindow.
func NewProjector(sections Sections, fadeWindow float32) *Projector {
	if fadeWindow <= 0 {
		fadeWindow = DefaultFadeWindow
	}
	return &Projector{sections: sections, fadeWindow: fadeWindow}
}

// Update sets the resolved section heights and viewport height for later
// projections. heights is retained, not copied.
func (p *Projector) Update(heights []float32, viewportHeight float32) {
	p.heights = heights
	p.viewport = viewportHeight
}

// Geometry returns the geometry of the parallax section governing sectionIndex.
func (p *Projector) Geometry(sectionIndex int) Geometry {
	idx, ok := p.sections.ParallaxFor(sectionIndex)
	if !ok || idx >= len(p.heights) {
		return Geometry{}
	}
	return Geometry{
		SectionStart:  OffsetOf(idx, p.heights),
		SectionHeight: p.heights[idx],
		FadeDistance:  p.fadeWindow * p.viewport,
	}
}

// Project computes a layer's visual state for a sample.
func (p *Projector) Project(layer LayerSpec, rawOffset float32, sectionIndex int) LayerVisual {
	return ProjectLayer(layer, rawOffset, p.Geometry(sectionIndex))
}
