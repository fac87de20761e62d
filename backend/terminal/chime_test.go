package terminal

import (
	"math"
	"testing"
)

func TestChimeGeneratorDecays(t *testing.T) {
	g := NewChimeGenerator(chimeSampleRate, 440)

	samples := make([][2]float64, chimeSampleRate.N(chimeDuration))
	n, ok := g.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("expected %d samples, got %d (ok=%v)", len(samples), n, ok)
	}
	if g.Err() != nil {
		t.Errorf("unexpected error: %v", g.Err())
	}

	peak := func(from, to int) float64 {
		var p float64
		for _, s := range samples[from:to] {
			p = math.Max(p, math.Abs(s[0]))
			if s[0] != s[1] {
				t.Fatal("chime should be mono")
			}
		}
		return p
	}
	quarter := len(samples) / 4
	head, tail := peak(0, quarter), peak(3*quarter, len(samples))
	if head > chimeAmplitude {
		t.Errorf("peak %v exceeds amplitude", head)
	}
	if tail >= head {
		t.Errorf("chime should decay: head %v, tail %v", head, tail)
	}
}

func TestChimeFrequency(t *testing.T) {
	if f := ChimeFrequency(0); f != chimeBaseFreq {
		t.Errorf("section 0 should ring at base, got %v", f)
	}
	if f := ChimeFrequency(-3); f != chimeBaseFreq {
		t.Errorf("negative section should ring at base, got %v", f)
	}
	for i := 1; i < 10; i++ {
		if ChimeFrequency(i) <= ChimeFrequency(i-1) {
			t.Errorf("section %d should ring higher than %d", i, i-1)
		}
	}
	if f := ChimeFrequency(7); math.Abs(f-2*chimeBaseFreq) > 1e-9 {
		t.Errorf("section 7 should be an octave up, got %v", f)
	}
}

func TestChimeSilentWithoutInit(t *testing.T) {
	c := NewChime()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized chime panicked: %v", r)
		}
	}()
	c.SectionChanged(0, 1)
	c.Close()
}
