package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/parallax"
)

func TestCursorToFramebuffer(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		winW, winH   int
		fbW, fbH     int
		wantX, wantY float32
	}{
		{"standard", 100, 50, 800, 600, 800, 600, 100, 50},
		{"retina", 100, 50, 800, 600, 1600, 1200, 200, 100},
		{"minimized", 100, 50, 0, 0, 0, 0, 100, 50},
	}
	for _, tt := range tests {
		x, y := CursorToFramebuffer(tt.x, tt.y, tt.winW, tt.winH, tt.fbW, tt.fbH)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%s: expected (%v, %v), got (%v, %v)", tt.name, tt.wantX, tt.wantY, x, y)
		}
	}
}

func TestGLFWKeyToKey(t *testing.T) {
	tests := map[glfw.Key]parallax.Key{
		glfw.KeyPageDown: parallax.KeyPageDown,
		glfw.KeySpace:    parallax.KeySpace,
		glfw.KeyEscape:   parallax.KeyEscape,
		glfw.KeyA:        parallax.KeyNone,
	}
	for in, want := range tests {
		if got := glfwKeyToKey(in); got != want {
			t.Errorf("key %d: expected %d, got %d", in, want, got)
		}
	}
}
