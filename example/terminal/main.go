// Terminal shows the landing page in a terminal with mouse support.
//
//	go run ./example/terminal/
//
// Scroll with the wheel, click the dots on the right, or use PgUp/PgDn, j/k
// and g/G. q or Esc quits. PARALLAX_SOUND=true chimes on every section change.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-theft-auto/parallax"
	"github.com/go-theft-auto/parallax/backend/terminal"
	"github.com/go-theft-auto/parallax/internal/config"
)

const frameInterval = time.Second / 30

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	parallax.SetVerbose(cfg.Verbose)

	chime := terminal.NewChime()
	if cfg.Sound {
		if err := chime.Initialize(); err != nil {
			slog.Warn("sound disabled", "err", err)
		}
	}
	defer chime.Close()

	host, err := terminal.NewHost()
	if err != nil {
		return err
	}
	defer host.Close()

	opts := append(cfg.Options(), parallax.WithSectionChange(chime.SectionChanged))
	loop := parallax.NewLoop(parallax.SystemClock{})
	scene, err := parallax.NewScene(parallax.LandingSections(), parallax.LandingLayers(), loop, cfg.Style(), opts...)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	defer scene.Close()
	scene.WheelScale = cfg.WheelScale

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for range ticker.C {
		input := host.Poll()
		if host.ShouldQuit() {
			return nil
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		scene.Resize(host.Display())
		scene.Frame(input, dt)
		if err := scene.Render(host); err != nil {
			return err
		}
	}
	return nil
}
