package parallax

// Layout reports measured section heights from the host page.
// ok is false while a section has not been laid out yet.
type Layout interface {
	SectionHeight(index int) (h float32, ok bool)
}

// LayoutFunc adapts a function to the Layout interface.
type LayoutFunc func(index int) (float32, bool)

// SectionHeight implements Layout.
func (f LayoutFunc) SectionHeight(index int) (float32, bool) { return f(index) }

// ResolveHeights returns one height per section, preferring measured heights
// and falling back to the declared height times the viewport height.
// layout may be nil.
func ResolveHeights(sections Sections, layout Layout, viewportHeight float32) []float32 {
	return resolveHeightsInto(nil, sections, layout, viewportHeight)
}

// resolveHeightsInto is ResolveHeights reusing dst's capacity.
func resolveHeightsInto(dst []float32, sections Sections, layout Layout, viewportHeight float32) []float32 {
	dst = dst[:0]
	for i := 0; i < sections.Len(); i++ {
		if layout != nil {
			if h, ok := layout.SectionHeight(i); ok && h > 0 {
				dst = append(dst, h)
				continue
			}
		}
		dst = append(dst, sections.At(i).Height.Estimate(viewportHeight))
	}
	return dst
}

// Classify maps a scroll offset to a section index using the midpoint rule:
// the smallest index whose midpoint exceeds rawOffset wins, and once every
// earlier midpoint has been passed the last section wins.
func Classify(rawOffset float32, heights []float32) int {
	if len(heights) == 0 {
		return 0
	}
	var start float32
	for i, h := range heights {
		if start+h/2 > rawOffset {
			return i
		}
		start += h
	}
	return len(heights) - 1
}

// OffsetOf returns the absolute scroll offset of section index: the sum of
// all preceding heights.
func OffsetOf(index int, heights []float32) float32 {
	var off float32
	for i := 0; i < index && i < len(heights); i++ {
		off += heights[i]
	}
	return off
}
