package parallax

// ScrollSampler coalesces scroll notifications into at most one pending
// animation-frame request and runs the sample callback on that frame.
type ScrollSampler struct {
	sched   Scheduler
	sample  func()
	running bool
	pending bool
	frame   FrameID
	samples uint64
}

func newScrollSampler(sched Scheduler, sample func()) *ScrollSampler {
	return &ScrollSampler{sched: sched, sample: sample}
}

// Request schedules a sample on the next frame unless one is already pending.
func (s *ScrollSampler) Request() {
	if !s.running || s.pending {
		return
	}
	s.pending = true
	s.frame = s.sched.RequestFrame(s.run)
}

func (s *ScrollSampler) run() {
	s.pending = false
	s.frame = 0
	// A frame scheduled before teardown may still be delivered.
	if !s.running {
		return
	}
	s.samples++
	s.sample()
}

func (s *ScrollSampler) start() { s.running = true }

// stop cancels any pending frame request.
func (s *ScrollSampler) stop() {
	s.running = false
	if s.pending {
		s.sched.CancelFrame(s.frame)
		s.pending = false
		s.frame = 0
	}
}

// Pending reports whether a frame request is outstanding.
func (s *ScrollSampler) Pending() bool { return s.pending }

// Samples returns how many frames have been sampled.
func (s *ScrollSampler) Samples() uint64 { return s.samples }
