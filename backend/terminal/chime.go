package terminal

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(48000)
	chimeDuration   = 220 * time.Millisecond
	chimeBaseFreq   = 440.0
	chimeAmplitude  = 0.2
)

// ChimeGenerator streams a short sine tone with an exponential decay.
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime at freq Hz.
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := chimeAmplitude * math.Exp(-t*12) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// ChimeFrequency returns the tone for a section: a major scale climbing
// from A4, so deeper sections ring higher.
func ChimeFrequency(section int) float64 {
	steps := [...]int{0, 2, 4, 5, 7, 9, 11}
	octave, degree := section/len(steps), section%len(steps)
	if section < 0 {
		octave, degree = 0, 0
	}
	semitones := octave*12 + steps[degree]
	return chimeBaseFreq * math.Pow(2, float64(semitones)/12)
}

// Chime plays a tone whenever the current section changes. A Chime that
// failed to initialize stays silent.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates an uninitialized chime.
func NewChime() *Chime {
	return &Chime{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Audio is optional; callers may ignore the error.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// SectionChanged plays the chime for the section entered. It has the shape
// of parallax.WithSectionChange.
func (c *Chime) SectionChanged(from, to int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || from == to {
		return
	}
	tone := beep.Take(chimeSampleRate.N(chimeDuration), NewChimeGenerator(chimeSampleRate, ChimeFrequency(to)))
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Close silences any playing chime.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
