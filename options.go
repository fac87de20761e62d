package parallax

import (
	"log/slog"
	"time"
)

// Option configures a Controller.
type Option func(*options)

// options holds controller configuration.
type options struct {
	wheelThreshold  float32
	wheelDebounce   time.Duration
	snapCooldown    time.Duration
	settleTolerance float32
	queueLatestSnap bool
	fadeWindow      float32
	logger          *slog.Logger
	onSectionChange func(from, to int)
	onFrame         func(ScrollState)
}

func defaultOptions() options {
	return options{
		wheelThreshold: DefaultWheelThreshold,
		wheelDebounce:  DefaultWheelDebounce,
		snapCooldown:   DefaultSnapCooldown,
		fadeWindow:     DefaultFadeWindow,
		logger:         engineLogger,
	}
}

// applyOptions applies all options over the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWheelThreshold sets the accumulated wheel delta that advances a section.
func WithWheelThreshold(t float32) Option {
	return func(o *options) {
		if t > 0 {
			o.wheelThreshold = t
		}
	}
}

// WithWheelDebounce sets the inactivity window after which the wheel
// accumulator resets.
func WithWheelDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.wheelDebounce = d
		}
	}
}

// WithSnapCooldown sets how long snap flags stay raised after a snap.
func WithSnapCooldown(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.snapCooldown = d
		}
	}
}

// WithSettleTolerance releases a snap as soon as the sampled offset is within
// tol of the target instead of waiting for the full cool-down. Zero disables it.
func WithSettleTolerance(tol float32) Option {
	return func(o *options) { o.settleTolerance = tol }
}

// WithQueueLatestSnap makes a snap requested during another snap run once the
// running one is released. Only the latest such request is kept.
func WithQueueLatestSnap(enabled bool) Option {
	return func(o *options) { o.queueLatestSnap = enabled }
}

// WithFadeWindow sets, in viewport heights, how far past a parallax section
// its layers take to fade out.
func WithFadeWindow(viewports float32) Option {
	return func(o *options) {
		if viewports > 0 {
			o.fadeWindow = viewports
		}
	}
}

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSectionChange registers a callback invoked when the current section changes.
func WithSectionChange(fn func(from, to int)) Option {
	return func(o *options) { o.onSectionChange = fn }
}

// WithFrame registers a callback invoked after every sampled frame, once
// classification and projection inputs are up to date.
func WithFrame(fn func(ScrollState)) Option {
	return func(o *options) { o.onFrame = fn }
}
