package parallax

// Spacing constants for consistent layout.
const (
	SpaceSM float32 = 4  // Small
	SpaceMD float32 = 8  // Medium
	SpaceLG float32 = 12 // Large
	SpaceXL float32 = 16 // Extra large
)

// Style defines the visual appearance of the landing page.
type Style struct {
	// Page
	BackgroundColor uint32
	SectionColors   []uint32 // Cycled per section

	// Hero layers, back to front; cycled when there are more layers
	LayerColors []uint32

	// Dot indicator
	DotColor        uint32
	DotHoveredColor uint32
	DotActiveColor  uint32
	DotBorderColor  uint32
	DotSize         float32
	DotGap          float32
	DotMargin       float32 // Distance from the right edge

	// Scrollbar
	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32
	ScrollbarSize      float32
}

// DefaultStyle returns a light daytime style.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: RGBA(244, 241, 234, 255),
		SectionColors: []uint32{
			RGBA(135, 190, 230, 255), // Hero sky
			RGBA(250, 248, 242, 255),
			RGBA(236, 244, 232, 255),
			RGBA(52, 58, 64, 255), // Footer
		},
		LayerColors: []uint32{
			RGBA(255, 214, 140, 255), // Sun
			RGBA(120, 160, 120, 255), // Far hills
			RGBA(76, 128, 80, 255),   // Near hills
			RGBA(46, 90, 52, 255),    // Foreground
		},
		DotColor:           RGBA(255, 255, 255, 120),
		DotHoveredColor:    RGBA(255, 255, 255, 200),
		DotActiveColor:     RGBA(255, 255, 255, 255),
		DotBorderColor:     RGBA(0, 0, 0, 90),
		DotSize:            10,
		DotGap:             SpaceLG,
		DotMargin:          SpaceXL + SpaceMD,
		ScrollbarBgColor:   RGBA(0, 0, 0, 30),
		ScrollbarGrabColor: RGBA(0, 0, 0, 110),
		ScrollbarSize:      SpaceSM + 2,
	}
}

// NightStyle returns a dark style.
func NightStyle() Style {
	s := DefaultStyle()
	s.BackgroundColor = RGBA(16, 18, 24, 255)
	s.SectionColors = []uint32{
		RGBA(18, 24, 48, 255),
		RGBA(28, 30, 38, 255),
		RGBA(34, 36, 46, 255),
		RGBA(10, 10, 14, 255),
	}
	s.LayerColors = []uint32{
		RGBA(230, 230, 210, 255), // Moon
		RGBA(40, 52, 80, 255),
		RGBA(30, 40, 62, 255),
		RGBA(20, 26, 40, 255),
	}
	s.ScrollbarBgColor = RGBA(255, 255, 255, 20)
	s.ScrollbarGrabColor = RGBA(255, 255, 255, 90)
	return s
}

// SectionColor returns the background color for section i.
func (s Style) SectionColor(i int) uint32 {
	if len(s.SectionColors) == 0 {
		return s.BackgroundColor
	}
	return s.SectionColors[i%len(s.SectionColors)]
}

// LayerColor returns the color for layer i.
func (s Style) LayerColor(i int) uint32 {
	if len(s.LayerColors) == 0 {
		return ColorGray
	}
	return s.LayerColors[i%len(s.LayerColors)]
}
