// Example shows the landing page in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Scroll with the wheel, click the dots on the right, or use PageUp/PageDown,
// Home and End. Configuration is read from PARALLAX_* environment variables;
// PARALLAX_VERBOSE=true logs every sample.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/parallax"
	"github.com/go-theft-auto/parallax/backend/opengl"
	"github.com/go-theft-auto/parallax/internal/config"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

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

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	opts := append(cfg.Options(), parallax.WithSectionChange(func(from, to int) {
		slog.Info("section changed", "from", from, "to", to)
	}))
	loop := parallax.NewLoop(parallax.SystemClock{})
	scene, err := parallax.NewScene(parallax.LandingSections(), parallax.LandingLayers(), loop, cfg.Style(), opts...)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	defer scene.Close()
	scene.WheelScale = cfg.WheelScale

	last := glfw.GetTime()
	for !window.ShouldClose() {
		input := inputAdapter.Update()
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(w, h)

		scene.Resize(parallax.Vec2{X: float32(w), Y: float32(h)})
		scene.Frame(input, dt)
		if err := scene.Render(renderer); err != nil {
			return err
		}

		window.SwapBuffers()
	}
	return nil
}
