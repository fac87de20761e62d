package parallax

import (
	"log/slog"
	"time"
)

// DefaultSnapCooldown matches the expected duration of a smooth scroll.
// Snap flags clear after it whether or not the animation has finished.
const DefaultSnapCooldown = 1200 * time.Millisecond

// SnapController issues programmatic smooth scrolls to section offsets and
// guards against overlapping snaps. It writes only the snapping and
// transition flags of its controller's ScrollState.
type SnapController struct {
	state    *ScrollState
	sched    Scheduler
	logger   *slog.Logger
	cooldown time.Duration

	// settleTolerance > 0 releases the flags early once the sampled offset
	// is within this distance of the target.
	settleTolerance float32
	// queueLatest remembers the latest dropped request and replays it on release.
	queueLatest bool
	replay      func(index int)

	target  float32
	pending int // queued target index, -1 when none
	timer   Timer
	issued  uint64
}

func newSnapController(state *ScrollState, sched Scheduler, o options) *SnapController {
	return &SnapController{
		state:           state,
		sched:           sched,
		logger:          o.logger,
		cooldown:        o.snapCooldown,
		settleTolerance: o.settleTolerance,
		queueLatest:     o.queueLatestSnap,
		pending:         -1,
	}
}

// snapTo scrolls surface to the offset of section index. It reports whether a
// scroll command was issued; a request made while a snap is running is
// dropped (or queued when queueLatest is set).
func (s *SnapController) snapTo(surface Surface, index int, heights []float32) bool {
	if s.state.IsSnapping {
		if s.queueLatest {
			s.pending = index
		}
		s.logger.Debug("snap dropped", "target", index, "queued", s.queueLatest)
		return false
	}

	s.target = OffsetOf(index, heights)
	s.state.IsSnapping = true
	s.state.IsTransitioning = true
	s.issued++
	surface.ScrollTo(s.target, true)
	s.timer = s.sched.AfterFunc(s.cooldown, s.release)

	s.logger.Debug("snap issued", "target", index, "offset", s.target, "cooldown", s.cooldown)
	return true
}

// observe is called with every sampled offset while mounted.
func (s *SnapController) observe(offset float32) {
	if !s.state.IsSnapping || s.settleTolerance <= 0 {
		return
	}
	if absf32(offset-s.target) <= s.settleTolerance {
		if s.timer != nil {
			s.timer.Stop()
		}
		s.release()
	}
}

func (s *SnapController) release() {
	s.timer = nil
	s.state.IsSnapping = false
	s.state.IsTransitioning = false
	s.logger.Debug("snap released", "offset", s.target)

	if s.pending >= 0 && s.replay != nil {
		next := s.pending
		s.pending = -1
		s.replay(next)
	}
}

// stop cancels the cool-down and clears the flags without replaying.
func (s *SnapController) stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = -1
	s.state.IsSnapping = false
	s.state.IsTransitioning = false
}

// Issued returns how many scroll commands have been issued.
func (s *SnapController) Issued() uint64 { return s.issued }

// Target returns the offset of the most recent snap.
func (s *SnapController) Target() float32 { return s.target }
