package parallax

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSections is returned when a page is built without any section.
	ErrNoSections = errors.New("no sections")
	// ErrInvalidHeight is returned for a non-positive viewport multiple.
	ErrInvalidHeight = errors.New("invalid section height")
)

// HeightSpec declares how tall a section is before it has been measured.
// The zero value is an intrinsic (content-sized) height.
type HeightSpec struct {
	viewports float32
}

// Viewports returns a height spec of m viewport heights.
func Viewports(m float32) HeightSpec {
	return HeightSpec{viewports: m}
}

// Intrinsic returns a height spec for a section sized by its content ("auto").
func Intrinsic() HeightSpec {
	return HeightSpec{}
}

// IsIntrinsic reports whether the section is content-sized.
func (h HeightSpec) IsIntrinsic() bool {
	return h.viewports == 0
}

// Multiple returns the declared viewport multiple (0 for intrinsic).
func (h HeightSpec) Multiple() float32 {
	return h.viewports
}

// Estimate returns the fallback pixel height for a viewport of the given height.
// Intrinsic sections are estimated at one viewport.
func (h HeightSpec) Estimate(viewportHeight float32) float32 {
	if h.IsIntrinsic() {
		return viewportHeight
	}
	return viewportHeight * h.viewports
}

// String implements fmt.Stringer.
func (h HeightSpec) String() string {
	if h.IsIntrinsic() {
		return "auto"
	}
	return fmt.Sprintf("%gvh", h.viewports*100)
}

// SectionDescriptor describes one vertically stacked region of the page.
type SectionDescriptor struct {
	Index    int
	Height   HeightSpec
	Parallax bool
}

// Sections is an immutable, ordered list of section descriptors.
type Sections struct {
	list []SectionDescriptor
}

// NewSections validates descriptors and assigns their ordinal indexes.
func NewSections(descs ...SectionDescriptor) (Sections, error) {
	if len(descs) == 0 {
		return Sections{}, ErrNoSections
	}
	list := make([]SectionDescriptor, len(descs))
	for i, d := range descs {
		if d.Height.viewports < 0 {
			return Sections{}, fmt.Errorf("section %d: %w: %v", i, ErrInvalidHeight, d.Height.viewports)
		}
		d.Index = i
		list[i] = d
	}
	return Sections{list: list}, nil
}

// Len returns the number of sections.
func (s Sections) Len() int { return len(s.list) }

// At returns the descriptor at index i.
func (s Sections) At(i int) SectionDescriptor { return s.list[i] }

// Last returns the index of the final section.
func (s Sections) Last() int { return len(s.list) - 1 }

// Contains reports whether i is a valid section index.
func (s Sections) Contains(i int) bool { return i >= 0 && i < len(s.list) }

// ParallaxFor returns the parallax section governing index i: the nearest
// parallax-enabled section at or before i, else the first parallax section.
// ok is false when no section has parallax.
func (s Sections) ParallaxFor(i int) (index int, ok bool) {
	if i >= len(s.list) {
		i = len(s.list) - 1
	}
	for j := i; j >= 0; j-- {
		if s.list[j].Parallax {
			return j, true
		}
	}
	for j := range s.list {
		if s.list[j].Parallax {
			return j, true
		}
	}
	return 0, false
}
