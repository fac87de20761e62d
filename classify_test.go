package parallax_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/parallax"
)

const vh = 800

// landingHeights are the fallback heights of the landing page at vh.
var landingHeights = []float32{1.5 * vh, vh, vh, vh}

func TestClassifyMidpointRule(t *testing.T) {
	tests := []struct {
		offset float32
		want   int
	}{
		{0, 0},
		{599, 0},
		{600, 1}, // hero midpoint passed
		{1200, 1},
		{1599, 1},
		{1600, 2},
		{2399, 2},
		{2400, 3},
		{2799, 3},
		{1e6, 3},
		{-50, 0},
	}
	for _, tt := range tests {
		if got := parallax.Classify(tt.offset, landingHeights); got != tt.want {
			t.Errorf("Classify(%v) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	prev := 0
	for off := float32(0); off < 4*vh; off += 7 {
		got := parallax.Classify(off, landingHeights)
		if got < prev {
			t.Fatalf("classification went backwards at %v: %d after %d", off, got, prev)
		}
		prev = got
	}
}

func TestClassifySectionStarts(t *testing.T) {
	for i := range landingHeights {
		off := parallax.OffsetOf(i, landingHeights)
		if got := parallax.Classify(off, landingHeights); got != i {
			t.Errorf("offset of section %d classified as %d", i, got)
		}
	}
}

func TestClassifyEmpty(t *testing.T) {
	if got := parallax.Classify(500, nil); got != 0 {
		t.Errorf("expected 0 for no sections, got %d", got)
	}
}

func TestOffsetOf(t *testing.T) {
	if got := parallax.OffsetOf(3, landingHeights); got != 3.5*vh {
		t.Errorf("expected 2800, got %v", got)
	}
	if got := parallax.OffsetOf(10, landingHeights); got != 4.5*vh {
		t.Errorf("index past the end should sum all heights, got %v", got)
	}
}

func TestResolveHeightsFallback(t *testing.T) {
	sections := parallax.LandingSections()

	got := parallax.ResolveHeights(sections, nil, vh)
	for i, want := range landingHeights {
		if got[i] != want {
			t.Errorf("section %d: expected %v, got %v", i, want, got[i])
		}
	}

	// Measured heights win; unmeasured and zero heights fall back.
	layout := parallax.LayoutFunc(func(i int) (float32, bool) {
		switch i {
		case 1:
			return 950, true
		case 2:
			return 0, true
		}
		return 0, false
	})
	got = parallax.ResolveHeights(sections, layout, vh)
	want := []float32{1.5 * vh, 950, vh, vh}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestNewSections(t *testing.T) {
	s := parallax.LandingSections()
	if s.Len() != 4 || s.Last() != 3 {
		t.Fatalf("expected 4 sections, got %d", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Index != i {
			t.Errorf("section %d has index %d", i, s.At(i).Index)
		}
	}
	if !s.At(3).Height.IsIntrinsic() || s.At(3).Height.String() != "auto" {
		t.Errorf("footer should be intrinsic, got %v", s.At(3).Height)
	}
	if s.At(0).Height.String() != "150vh" {
		t.Errorf("expected 150vh, got %v", s.At(0).Height)
	}

	if _, err := parallax.NewSections(); !errors.Is(err, parallax.ErrNoSections) {
		t.Errorf("expected ErrNoSections, got %v", err)
	}
	_, err := parallax.NewSections(parallax.SectionDescriptor{Height: parallax.Viewports(-1)})
	if !errors.Is(err, parallax.ErrInvalidHeight) {
		t.Errorf("expected ErrInvalidHeight, got %v", err)
	}
}

func TestParallaxFor(t *testing.T) {
	s, err := parallax.NewSections(
		parallax.SectionDescriptor{Height: parallax.Viewports(1)},
		parallax.SectionDescriptor{Height: parallax.Viewports(1), Parallax: true},
		parallax.SectionDescriptor{Height: parallax.Viewports(1)},
	)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct{ in, want int }{{0, 1}, {1, 1}, {2, 1}, {9, 1}}
	for _, tt := range tests {
		got, ok := s.ParallaxFor(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParallaxFor(%d) = %d, %v; want %d", tt.in, got, ok, tt.want)
		}
	}

	plain, _ := parallax.NewSections(parallax.SectionDescriptor{Height: parallax.Viewports(1)})
	if _, ok := plain.ParallaxFor(0); ok {
		t.Error("expected no parallax section")
	}
}
