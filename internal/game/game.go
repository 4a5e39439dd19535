package game

import (
	"github.com/sirupsen/logrus"

	"shooter/internal/camera"
	"shooter/internal/draw"
	"shooter/internal/logger"
	"shooter/internal/sim"
	"shooter/internal/vmath"
	"shooter/internal/world"
)

// Options configure a Game.
type Options struct {
	Seed  uint64
	Debug bool
}

// Snapshot is a read-only summary of one frame for HUDs and tests.
type Snapshot struct {
	Frame       uint64
	Lives       int
	Immune      bool
	Respawning  bool
	GameOver    bool
	Collisions  bool
	Difficulty  float64
	ScrollSpeed float64
	Counts      sim.Counts
	World       world.Snapshot
	View        camera.View
	Ortho       bool
	PlayerPos   vmath.Vec3
}

// Game is the host-facing session. It turns commands into held controls and
// state calls, and rebuilds the state when a reset was requested.
type Game struct {
	debug  bool
	seeds  *vmath.Rand
	events *sim.EventBus
	state  *State

	resetPending bool
	frame        uint64
}

func New(opts Options) *Game {
	g := &Game{
		debug:  opts.Debug,
		seeds:  vmath.NewRand(opts.Seed),
		events: sim.NewEventBus(),
	}
	g.state = NewState(g.seeds.NextU64(), g.debug, g.events)
	logger.Log.WithFields(logrus.Fields{
		"seed":  opts.Seed,
		"debug": opts.Debug,
	}).Info("game started")
	return g
}

// Events is the bus sim and game events are published on. Subscriptions
// survive resets.
func (g *Game) Events() *sim.EventBus { return g.events }

func (g *Game) State() *State { return g.state }

// Press handles a key going down.
func (g *Game) Press(c Command) {
	s := g.state
	switch c {
	case CmdLeft:
		s.Controls.Left = true
	case CmdRight:
		s.Controls.Right = true
	case CmdUp:
		s.Controls.Up = true
	case CmdDown:
		s.Controls.Down = true
	case CmdFire:
		s.Controls.Fire = true
	case CmdToggleCamera:
		s.ToggleCamera()
	case CmdToggleCollisions:
		s.ToggleCollisions()
	case CmdCycleBiome:
		s.ForceBiomeChange()
	case CmdKillPlayer:
		s.KillPlayer()
	case CmdReportCounts:
		s.ReportCounts()
	case CmdScrollUp:
		s.ScrollUp()
	case CmdScrollDown:
		s.ScrollDown()
	case CmdReset:
		if g.debug {
			g.resetPending = true
		}
	}
}

// Release handles a key going up. Only held commands react.
func (g *Game) Release(c Command) {
	s := g.state
	switch c {
	case CmdLeft:
		s.Controls.Left = false
	case CmdRight:
		s.Controls.Right = false
	case CmdUp:
		s.Controls.Up = false
	case CmdDown:
		s.Controls.Down = false
	case CmdFire:
		s.Controls.Fire = false
	}
}

// Update runs one frame of dt milliseconds. A pending reset is applied after
// the frame, so the frame that requested it still completes.
func (g *Game) Update(dt float64) {
	g.state.Update(dt)
	g.frame++
	if g.resetPending {
		g.reset()
	}
}

func (g *Game) reset() {
	g.resetPending = false
	held := g.state.Controls
	g.state = NewState(g.seeds.NextU64(), g.debug, g.events)
	// Keys still down keep acting; hosts only report edges.
	g.state.Controls = held
	logger.Log.WithField("frame", g.frame).Info("game reset")
}

func (g *Game) Draw(s draw.Surface) { g.state.Draw(s) }

// View is the camera projection for the frame just updated.
func (g *Game) View() camera.View { return g.state.camera.View() }

func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Frame:       g.frame,
		Lives:       s.lives,
		Immune:      s.immune,
		Respawning:  s.respawning,
		GameOver:    s.gameOver,
		Collisions:  s.collisionsOn,
		Difficulty:  s.tracker.Difficulty(),
		ScrollSpeed: s.scrollSpeed,
		Counts:      s.tracker.Counts(),
		World:       s.world.Snapshot(),
		View:        s.camera.View(),
		Ortho:       s.camera.IsUsingOrtho(),
		PlayerPos:   s.player.Pos,
	}
}
