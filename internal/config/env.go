// Package config loads example host configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/go-theft-auto/parallax"
)

// ErrInvalid is returned when a parsed value is out of range.
var ErrInvalid = errors.New("invalid config")

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Config configures the landing page hosts.
type Config struct {
	Width   int    `env:"PARALLAX_WIDTH" envDefault:"1280"`
	Height  int    `env:"PARALLAX_HEIGHT" envDefault:"800"`
	Title   string `env:"PARALLAX_TITLE" envDefault:"landing"`
	Theme   string `env:"PARALLAX_THEME" envDefault:"day"`
	Verbose bool   `env:"PARALLAX_VERBOSE"`
	Sound   bool   `env:"PARALLAX_SOUND"`

	WheelScale      float32       `env:"PARALLAX_WHEEL_SCALE" envDefault:"100"`
	WheelThreshold  float32       `env:"PARALLAX_WHEEL_THRESHOLD" envDefault:"100"`
	WheelDebounce   time.Duration `env:"PARALLAX_WHEEL_DEBOUNCE" envDefault:"150ms"`
	SnapCooldown    time.Duration `env:"PARALLAX_SNAP_COOLDOWN" envDefault:"1200ms"`
	SettleTolerance float32       `env:"PARALLAX_SETTLE_TOLERANCE" envDefault:"0"`
	QueueLatestSnap bool          `env:"PARALLAX_QUEUE_LATEST_SNAP"`
	FadeWindow      float32       `env:"PARALLAX_FADE_WINDOW" envDefault:"0.5"`
}

// Load parses and validates Config from the environment.
func Load() (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Theme != "day" && c.Theme != "night":
		return fmt.Errorf("%w: theme %q (want day or night)", ErrInvalid, c.Theme)
	case c.WheelScale <= 0:
		return fmt.Errorf("%w: wheel scale %v", ErrInvalid, c.WheelScale)
	case c.SettleTolerance < 0:
		return fmt.Errorf("%w: settle tolerance %v", ErrInvalid, c.SettleTolerance)
	}
	return nil
}

// Options returns the controller options the config selects.
func (c Config) Options() []parallax.Option {
	return []parallax.Option{
		parallax.WithWheelThreshold(c.WheelThreshold),
		parallax.WithWheelDebounce(c.WheelDebounce),
		parallax.WithSnapCooldown(c.SnapCooldown),
		parallax.WithSettleTolerance(c.SettleTolerance),
		parallax.WithQueueLatestSnap(c.QueueLatestSnap),
		parallax.WithFadeWindow(c.FadeWindow),
	}
}

// Style returns the page style for the configured theme.
func (c Config) Style() parallax.Style {
	if c.Theme == "night" {
		return parallax.NightStyle()
	}
	return parallax.DefaultStyle()
}
