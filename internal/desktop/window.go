package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const title = "Shooter"

// contextHints asks for a fixed-size GL 4.1 core window; the projections
// assume the framebuffer never changes aspect mid-run.
var contextHints = []struct {
	hint  glfw.Hint
	value int
}{
	{glfw.ContextVersionMajor, 4},
	{glfw.ContextVersionMinor, 1},
	{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
	{glfw.OpenGLForwardCompatible, glfw.True},
	{glfw.Resizable, glfw.False},
	{glfw.Decorated, glfw.True},
}

// openWindow creates the game window with a current context. glfw is left
// initialised on success; the caller terminates it.
func openWindow(width, height int) (*glfw.Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("window size %dx%d", width, height)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	for _, h := range contextHints {
		glfw.WindowHint(h.hint, h.value)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create %dx%d GL 4.1 window: %w", width, height, err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return window, nil
}
