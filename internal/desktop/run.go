// Package desktop hosts the game in a glfw window drawn with OpenGL.
package desktop

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"shooter/internal/camera"
	"shooter/internal/game"
	"shooter/internal/logger"
)

// maxFrameMillis clamps dt after a stall so actors do not tunnel.
const maxFrameMillis = 100.0

// Options size the window and cap the frame rate; FPS <= 0 leaves pacing to
// vsync.
type Options struct {
	Width, Height int
	FPS           float64
}

// Run opens the window and drives g until the window closes or Escape is
// pressed. It must be called from the main goroutine.
func Run(g *game.Game, opts Options) error {
	runtime.LockOSThread()

	window, err := openWindow(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	logger.Log.WithFields(logrus.Fields{
		"width":  opts.Width,
		"height": opts.Height,
		"gl":     gl.GoStr(gl.GetString(gl.VERSION)),
	}).Info("desktop host started")

	path := camera.NewPath()
	input := NewInput()

	var budget float64
	if opts.FPS > 0 {
		budget = 1 / opts.FPS
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := (now - last) * 1000
		last = now
		if dt > maxFrameMillis {
			dt = maxFrameMillis
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		input.Poll(window, g)
		g.Update(dt)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		proj, view := path.Matrices(g.View(), fbW, fbH)
		rend.Begin(proj, view, fbW, fbH)
		g.Draw(rend)
		rend.Flush()
		window.SwapBuffers()

		if wait := budget - (glfw.GetTime() - now); wait > 0 {
			time.Sleep(time.Duration(wait * float64(time.Second)))
		}
	}
	return nil
}
