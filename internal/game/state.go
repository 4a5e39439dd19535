package game

import (
	"math"

	"github.com/sirupsen/logrus"

	"shooter/internal/camera"
	"shooter/internal/draw"
	"shooter/internal/logger"
	"shooter/internal/sim"
	"shooter/internal/vmath"
	"shooter/internal/world"
)

const (
	ScrollSpeed    = 0.00072 // chunk heights per millisecond
	ScrollBump     = ScrollSpeed * 320
	ImmuneMillis   = 2500.0
	FlickerPeriod  = 150.0
	RespawnWait    = 1000.0
	GameOverMillis = 1000.0
	StartingLives  = 3
)

// Lives HUD placement in eye space.
const (
	livesOrthoX       = -1.822
	livesOrthoY       = 1.822
	livesOrthoZ       = -1.0
	livesOrthoSize    = 0.1176
	livesPerspectiveX = -1.55
	livesPerspectiveY = 1.55
	livesPerspectiveZ = -2.215
	livesPerspective  = 0.1
	livesSpacing      = 2.0
)

// State composes the terrain stream, the actor simulation and the camera, and
// owns the lives, respawn, immunity and game-over policy.
type State struct {
	debug  bool
	rng    *vmath.Rand
	events *sim.EventBus

	world   *world.World
	tracker *sim.Tracker
	camera  *camera.Camera
	player  *sim.Actor

	lives        int
	immune       bool
	respawning   bool
	gameOver     bool
	collisionsOn bool

	immuneTimer   float64
	respawnTimer  float64
	gameOverTimer float64
	scrollSpeed   float64

	// Controls are the held inputs, read every Update.
	Controls sim.Controls
}

// NewState starts a game seeded with seed. Debug commands are no-ops unless
// debug is set. bus may be nil.
func NewState(seed uint64, debug bool, bus *sim.EventBus) *State {
	r := vmath.NewRand(seed)
	s := &State{
		debug:        debug,
		rng:          r,
		events:       bus,
		world:        world.New(r),
		tracker:      sim.NewTracker(r, bus),
		camera:       camera.New(),
		lives:        StartingLives,
		collisionsOn: true,
		scrollSpeed:  ScrollSpeed,
	}
	s.player = sim.NewPlayer(r)
	s.tracker.SetPlayer(s.player)
	s.world.OnBiomeChange = func(b world.Biome) {
		logger.Log.WithField("biome", b).Info("biome changed")
		s.events.Emit(sim.Event{Type: sim.EventBiomeChanged, Data: int(b)})
	}
	return s
}

// Update advances the whole game by dt milliseconds.
func (s *State) Update(dt float64) {
	s.tracker.Update(dt, s.Controls, s.collisionsOn, s.gameOver)
	s.world.Scroll(s.scrollSpeed * dt)

	switch {
	case s.gameOver:
		if s.gameOverTimer < GameOverMillis {
			s.scrollSpeed = vmath.Lerp(1-s.gameOverTimer/GameOverMillis, 0, ScrollSpeed)
			s.gameOverTimer += dt
		} else {
			s.scrollSpeed = 0
		}

	case s.respawning:
		if s.respawnTimer += dt; s.respawnTimer >= RespawnWait {
			s.respawnTimer = 0
			s.player = sim.NewPlayer(s.rng)
			s.tracker.SetPlayer(s.player)
			s.respawning = false
			s.immune = true
			s.player.Immune = true
			logger.Log.WithField("lives", s.lives).Debug("player respawned")
			s.events.Emit(sim.Event{Type: sim.EventRespawn, Pos: s.player.Pos, Data: s.lives})
		}

	case s.immune:
		if s.immuneTimer += dt; s.immuneTimer >= ImmuneMillis {
			s.immuneTimer = 0
			s.immune = false
			s.player.Immune = false
			s.player.Invisible = false
		} else {
			s.player.Invisible = math.Mod(s.immuneTimer, FlickerPeriod)/(FlickerPeriod/2) >= 1
		}

	case s.player.Killed:
		s.lives--
		if s.lives >= 0 {
			s.respawning = true
			logger.Log.WithField("lives", s.lives).Info("life lost")
			s.events.Emit(sim.Event{Type: sim.EventLifeLost, Pos: s.player.Pos, Data: s.lives})
		} else {
			s.gameOver = true
			logger.Log.WithFields(logrus.Fields{
				"difficulty": s.tracker.Difficulty(),
				"chunks":     s.world.Snapshot().Generated,
			}).Info("game over")
			s.events.Emit(sim.Event{Type: sim.EventGameOver, Pos: s.player.Pos})
		}
	}

	s.camera.Update(dt)
}

func (s *State) Lives() int { return s.lives }
func (s *State) IsImmune() bool { return s.immune }
func (s *State) IsRespawning() bool { return s.respawning }
func (s *State) IsGameOver() bool { return s.gameOver }
func (s *State) CollisionsOn() bool { return s.collisionsOn }
func (s *State) CurrentScrollSpeed() float64 { return s.scrollSpeed }
func (s *State) Player() *sim.Actor { return s.player }
func (s *State) Tracker() *sim.Tracker { return s.tracker }
func (s *State) World() *world.World { return s.world }
func (s *State) Camera() *camera.Camera { return s.camera }

// ToggleCamera is always available.
func (s *State) ToggleCamera() { s.camera.Toggle() }

// Debug commands below do nothing unless the state was built with debug.

func (s *State) ToggleCollisions() {
	if !s.debug {
		return
	}
	s.collisionsOn = !s.collisionsOn
	logger.Log.WithField("collisions", s.collisionsOn).Debug("collisions toggled")
}

func (s *State) ForceBiomeChange() {
	if s.debug {
		s.world.CycleBiome()
	}
}

func (s *State) KillPlayer() {
	if s.debug {
		s.player.Killed = true
	}
}

// ReportCounts logs the live entity counts.
func (s *State) ReportCounts() {
	if !s.debug {
		return
	}
	c := s.tracker.Counts()
	logger.Log.WithFields(logrus.Fields{
		"players":        c.Players,
		"enemies":        c.Enemies,
		"player_bullets": c.PlayerBullets,
		"enemy_bullets":  c.EnemyBullets,
		"emitters":       c.Emitters,
		"difficulty":     s.tracker.Difficulty(),
	}).Info("entity counts")
}

func (s *State) ScrollUp() {
	if s.debug {
		s.world.Scroll(ScrollBump)
	}
}

func (s *State) ScrollDown() {
	if s.debug {
		s.world.Scroll(-ScrollBump)
	}
}

// Draw renders terrain, actors and effects, then the lives HUD in eye space.
func (s *State) Draw(sf draw.Surface) {
	s.world.Draw(sf)
	s.tracker.Draw(sf)
	s.drawLives(sf)
}

func (s *State) drawLives(sf draw.Surface) {
	sf.Push()
	sf.ResetMatrix()
	if s.camera.IsUsingOrtho() {
		sf.Translate(livesOrthoX, livesOrthoY, livesOrthoZ)
		sf.Scale(livesOrthoSize, livesOrthoSize, 1)
	} else {
		sf.Translate(livesPerspectiveX, livesPerspectiveY, livesPerspectiveZ)
		sf.Scale(livesPerspective, livesPerspective, 1)
	}
	sf.Texture(draw.TexPlayer)
	for i := 0; i < s.lives; i++ {
		sf.Push()
		sf.RotateZ(math.Pi / 2)
		sf.Shape(draw.Strip,
			draw.Vt(-1, 1, 0, 0, 0),
			draw.Vt(-1, -1, 0, 0, 1),
			draw.Vt(1, 1, 0, 1, 0),
			draw.Vt(1, -1, 0, 1, 1),
		)
		sf.Pop()
		sf.Translate(livesSpacing, 0, 0)
	}
	sf.Pop()
}
