package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-theft-auto/parallax"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Width != 1280 || c.Height != 800 {
		t.Errorf("expected 1280x800, got %dx%d", c.Width, c.Height)
	}
	if c.WheelThreshold != 100 {
		t.Errorf("expected wheel threshold 100, got %v", c.WheelThreshold)
	}
	if c.WheelDebounce != 150*time.Millisecond {
		t.Errorf("expected 150ms debounce, got %v", c.WheelDebounce)
	}
	if c.SnapCooldown != 1200*time.Millisecond {
		t.Errorf("expected 1200ms cooldown, got %v", c.SnapCooldown)
	}
	if c.QueueLatestSnap {
		t.Error("queue latest snap should default to false")
	}
	if len(c.Options()) == 0 {
		t.Error("expected controller options")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PARALLAX_THEME", "night")
	t.Setenv("PARALLAX_SNAP_COOLDOWN", "800ms")
	t.Setenv("PARALLAX_QUEUE_LATEST_SNAP", "true")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.SnapCooldown != 800*time.Millisecond {
		t.Errorf("expected 800ms, got %v", c.SnapCooldown)
	}
	if !c.QueueLatestSnap {
		t.Error("expected queue latest snap")
	}
	if got, want := c.Style().BackgroundColor, parallax.NightStyle().BackgroundColor; got != want {
		t.Errorf("expected night background %x, got %x", want, got)
	}
}

func TestLoadInvalidTheme(t *testing.T) {
	t.Setenv("PARALLAX_THEME", "dusk")

	_, err := Load()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("PARALLAX_WIDTH", "wide")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
