// Command gen renders the landing page scrolled to every section, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/parallax"
	"github.com/go-theft-auto/parallax/backend/opengl"
)

const (
	shotWidth  = 640
	shotHeight = 400
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single page screenshot to capture.
type screenshot struct {
	name    string         // filename without extension
	style   parallax.Style // page theme
	section int            // section to scroll to
	offset  float32        // extra scroll past the section start, in viewports
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// The hidden window stays at 800×600, larger than every screenshot.
	renderer, err := opengl.NewRenderer(shotWidth, shotHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Fresh scene per screenshot to avoid state leaking between captures.
	loop := parallax.NewLoop(parallax.SystemClock{})
	scene, err := parallax.NewScene(parallax.LandingSections(), parallax.LandingLayers(), loop, s.style)
	if err != nil {
		return err
	}
	defer scene.Close()

	scene.Resize(parallax.Vec2{X: shotWidth, Y: shotHeight})
	scene.Frame(nil, 0)
	scene.View.ScrollTo(scene.Controller.SectionOffset(s.section)+s.offset*shotHeight, false)

	// Two frames: the first samples the new offset, the second draws it.
	for i := 0; i < 2; i++ {
		gl.Viewport(0, 0, shotWidth, shotHeight)
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		scene.Frame(nil, 1.0/60.0)
		if err := scene.Render(renderer); err != nil {
			return err
		}
	}

	pixels := make([]byte, shotWidth*shotHeight*4)
	gl.ReadPixels(0, 0, shotWidth, shotHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := shotWidth * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < shotHeight/2; y++ {
		top := y * rowLen
		bot := (shotHeight - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	themes := []struct {
		name  string
		style parallax.Style
	}{
		{"day", parallax.DefaultStyle()},
		{"night", parallax.NightStyle()},
	}

	var shots []screenshot
	for _, th := range themes {
		shots = append(shots,
			screenshot{name: th.name + "_hero", style: th.style, section: 0},
			screenshot{name: th.name + "_hero_mid", style: th.style, section: 0, offset: 0.75},
			screenshot{name: th.name + "_hero_fade", style: th.style, section: 0, offset: 1.6},
			screenshot{name: th.name + "_content", style: th.style, section: 1},
			screenshot{name: th.name + "_footer", style: th.style, section: 3},
		)
	}
	return shots
}
