// Package term hosts the game in a terminal through tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"shooter/internal/camera"
	"shooter/internal/game"
	"shooter/internal/logger"
)

const (
	// holdTimeout releases a held command when no autorepeat arrives; it
	// must exceed the terminal's initial repeat delay.
	holdTimeout = 400 * time.Millisecond

	maxFrameMillis = 100.0
	defaultFPS     = 30.0
	maxFPS         = 60.0
)

// Host owns the screen side of a terminal session. Terminals report key
// presses but never releases, so held commands expire after holdTimeout
// without a repeat.
type Host struct {
	screen tcell.Screen
	game   *game.Game
	surf   *Surface
	path   camera.Path

	held map[game.Command]time.Time
	last time.Time
}

func NewHost(screen tcell.Screen, g *game.Game) *Host {
	cols, rows := screen.Size()
	return &Host{
		screen: screen,
		game:   g,
		surf:   NewSurface(cols, rows),
		path:   camera.NewPath(),
		held:   make(map[game.Command]time.Time),
	}
}

func keyCommand(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyRune:
		return game.KeyCommand(ev.Rune())
	case tcell.KeyLeft:
		return game.CmdLeft
	case tcell.KeyRight:
		return game.CmdRight
	case tcell.KeyUp:
		return game.CmdUp
	case tcell.KeyDown:
		return game.CmdDown
	}
	return game.CmdNone
}

// HandleEvent applies one terminal event. It returns false when the session
// should end.
func (h *Host) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		c := keyCommand(ev)
		if c == game.CmdNone {
			return true
		}
		if !c.Held() {
			h.game.Press(c)
			return true
		}
		if _, down := h.held[c]; !down {
			h.game.Press(c)
		}
		h.held[c] = now.Add(holdTimeout)

	case *tcell.EventResize:
		cols, rows := h.screen.Size()
		h.surf.Resize(cols, rows)
		h.screen.Sync()
	}
	return true
}

// release lets go of held commands whose repeat never came.
func (h *Host) release(now time.Time) {
	for c, until := range h.held {
		if now.After(until) {
			h.game.Release(c)
			delete(h.held, c)
		}
	}
}

// Frame advances the game to now and redraws.
func (h *Host) Frame(now time.Time) {
	h.release(now)
	dt := 0.0
	if !h.last.IsZero() {
		dt = min(float64(now.Sub(h.last).Microseconds())/1000, maxFrameMillis)
	}
	h.last = now
	h.game.Update(dt)
	h.draw()
}

func (h *Host) draw() {
	w, ht := h.surf.Size()
	if w == 0 || ht == 0 {
		return
	}
	proj, view := h.path.Matrices(h.game.View(), w, ht)
	h.surf.Begin(proj, view)
	h.game.Draw(h.surf)
	h.surf.Present(h.screen)
	h.status()
	h.screen.Show()
}

// status prints a one-line summary over the top row.
func (h *Host) status() {
	s := h.game.Snapshot()
	mode := "ortho"
	if s.View.Interpolating {
		mode = "switching"
	} else if !s.Ortho {
		mode = "perspective"
	}
	line := fmt.Sprintf(" lives %d  %s  difficulty %.2f  %s ", max(s.Lives, 0), s.World.Biome, s.Difficulty, mode)
	if s.GameOver {
		line += " GAME OVER "
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range line {
		h.screen.SetContent(i, 0, r, nil, style)
	}
}

// Options set the frame rate; it is clamped to what a terminal can redraw.
type Options struct {
	FPS float64
}

func frameInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = defaultFPS
	}
	fps = min(fps, maxFPS)
	return time.Duration(float64(time.Second) / fps)
}

// Run drives g on an initialised screen until Escape, Ctrl-C or ctx ends.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game, opts Options) error {
	h := NewHost(screen, g)
	interval := frameInterval(opts.FPS)

	cols, rows := screen.Size()
	logger.Log.WithFields(logrus.Fields{
		"cols":     cols,
		"rows":     rows,
		"interval": interval,
	}).Info("terminal host started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, screen, events)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			h.Frame(now)
		}
	}
}

// pollEvents forwards screen events until the screen finishes or ctx ends,
// then closes out.
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
