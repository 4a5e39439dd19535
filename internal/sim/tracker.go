package sim

import (
	"fmt"

	"shooter/internal/draw"
	"shooter/internal/vmath"
)

type deathEffect uint8

const (
	effectDebrisExplosion deathEffect = iota
	effectSpark
)

// FrameStats summarises one Tracker.Update.
type FrameStats struct {
	EnemiesKilled int
	Spawned       int
}

// Counts is the live population of each collection.
type Counts struct {
	Players       int
	Enemies       int
	PlayerBullets int
	EnemyBullets  int
	Emitters      int
}

// Tracker owns every actor and effect and runs the per-frame pipeline:
// update, cull, collide, dispatch death effects, spawn.
type Tracker struct {
	player        *Actor
	players       []*Actor // the player while alive, empty once killed
	playerBullets []*Actor
	enemies       []*Actor
	enemyBullets  []*Actor
	effects       []*Emitter

	difficulty   float64
	spawnCounter float64
	gen          EnemyGenerator

	rng      *vmath.Rand
	events   *EventBus
	controls Controls
}

// NewTracker returns an empty tracker; bus may be nil.
func NewTracker(r *vmath.Rand, bus *EventBus) *Tracker {
	return &Tracker{
		difficulty: StartDifficulty,
		gen:        NewEnemyGenerator(),
		rng:        r,
		events:     bus,
	}
}

// SetPlayer installs p as the current player.
func (t *Tracker) SetPlayer(p *Actor) {
	t.player = p
	t.players = append(t.players[:0], p)
}

func (t *Tracker) Player() *Actor { return t.player }
func (t *Tracker) Enemies() []*Actor { return t.enemies }
func (t *Tracker) PlayerBullets() []*Actor { return t.playerBullets }
func (t *Tracker) EnemyBullets() []*Actor { return t.enemyBullets }
func (t *Tracker) Effects() []*Emitter { return t.effects }
func (t *Tracker) Difficulty() float64 { return t.difficulty }
func (t *Tracker) SpawnCounter() float64 { return t.spawnCounter }
func (t *Tracker) Generator() *EnemyGenerator { return &t.gen }

// AddEnemy puts an externally built enemy into play.
func (t *Tracker) AddEnemy(a *Actor) { t.enemies = append(t.enemies, a) }

// Update advances every actor and effect by dt milliseconds.
func (t *Tracker) Update(dt float64, c Controls, collisionsOn, gameOver bool) FrameStats {
	t.controls = c
	var st FrameStats

	if t.player != nil {
		t.player.Update(dt, t)
	}
	t.playerBullets = t.updateActors(t.playerBullets, dt)
	t.enemies = t.updateActors(t.enemies, dt)
	t.enemyBullets = t.updateActors(t.enemyBullets, dt)
	t.updateEffects(dt)

	if collisionsOn {
		collide(t.enemyBullets, t.playerBullets)
		collide(t.enemies, t.playerBullets)
		if t.player != nil && !t.player.Immune {
			collide(t.players, t.enemies)
			collide(t.players, t.enemyBullets)
		}
	}

	t.enemies, st.EnemiesKilled = t.handleKilled(t.enemies, effectDebrisExplosion)
	t.enemyBullets, _ = t.handleKilled(t.enemyBullets, effectSpark)
	t.playerBullets, _ = t.handleKilled(t.playerBullets, effectSpark)
	t.players, _ = t.handleKilled(t.players, effectDebrisExplosion)

	if !gameOver {
		t.difficulty += float64(st.EnemiesKilled) * DifficultyPerEnemy
		t.spawnCounter += t.difficulty * dt
		for t.spawnCounter >= 1 {
			if len(t.enemies) < MaxEnemies {
				t.SpawnEnemy()
				st.Spawned++
			}
			t.spawnCounter--
		}
	}
	return st
}

// updateActors updates each actor and drops the ones that went dead.
func (t *Tracker) updateActors(list []*Actor, dt float64) []*Actor {
	kept := list[:0]
	for _, a := range list {
		a.Update(dt, t)
		if !a.Dead {
			kept = append(kept, a)
		}
	}
	clear(list[len(kept):])
	return kept
}

func (t *Tracker) updateEffects(dt float64) {
	kept := t.effects[:0]
	for _, e := range t.effects {
		e.Update(dt)
		if !e.Expired() {
			kept = append(kept, e)
		}
	}
	clear(t.effects[len(kept):])
	t.effects = kept
}

// collide marks both actors of every overlapping pair killed. An a killed
// before the sweep takes no part; one killed during it still takes every b
// it overlaps.
func collide(as, bs []*Actor) {
	for _, a := range as {
		if a.Killed {
			continue
		}
		for _, b := range bs {
			if b.Killed {
				continue
			}
			r := a.Radius + b.Radius
			if a.Pos.PlanarDistSq(b.Pos) <= r*r {
				a.Killed = true
				b.Killed = true
			}
		}
	}
}

// handleKilled spawns the death effect for each killed actor and removes it.
func (t *Tracker) handleKilled(list []*Actor, fx deathEffect) ([]*Actor, int) {
	kept := list[:0]
	n := 0
	for _, a := range list {
		if !a.Killed {
			kept = append(kept, a)
			continue
		}
		n++
		switch fx {
		case effectDebrisExplosion:
			t.effects = append(t.effects,
				NewEmitter(t.rng, ExplosionEffect(), a.Pos),
				NewEmitter(t.rng, DebrisEffect(a.ReportedVel()), a.Pos),
			)
			t.events.Emit(Event{Type: EventExplosion, Pos: a.Pos, Data: int(a.Kind)})
		case effectSpark:
			t.effects = append(t.effects, NewEmitter(t.rng, SparkEffect(), a.Pos))
			t.events.Emit(Event{Type: EventSpark, Pos: a.Pos, Data: int(a.Kind)})
		}
	}
	clear(list[len(kept):])
	return kept, n
}

// SpawnEnemy adds one enemy regardless of the population cap.
func (t *Tracker) SpawnEnemy() *Actor {
	e := t.gen.Generate(t.rng)
	t.enemies = append(t.enemies, e)
	t.events.Emit(Event{Type: EventEnemySpawned, Pos: e.Pos, Data: t.gen.LastQuadrant()})
	return e
}

// PlayerShoot fires one bullet from origin. offset and the bullet's velocity
// are rotated by angle about Z.
func (t *Tracker) PlayerShoot(origin, offset vmath.Vec3, angle float64) {
	pos := origin.Add(offset.RotateZ(angle))
	vel := vmath.Vec3{X: playerBulletSpeed}.RotateZ(angle)
	t.playerBullets = append(t.playerBullets, newPlayerBullet(pos, vel, angle))
}

// EnemyShoot fires an aimed bullet from origin at the player's position plus
// some random spread. Nothing is fired at a killed player.
func (t *Tracker) EnemyShoot(origin vmath.Vec3) {
	if t.player == nil || t.player.Killed {
		return
	}
	target := t.player.Pos.Add(t.rng.BiRandVec(vmath.Vec3{X: enemyAimSpread, Y: enemyAimSpread}))
	vel := target.Sub(origin).Normalize().Scale(EnemyBulletSpeed)
	t.enemyBullets = append(t.enemyBullets, newEnemyBullet(origin, vel))
	t.events.Emit(Event{Type: EventEnemyShot, Pos: origin})
}

// Counts reports collection sizes. Each live player carries one engine
// emitter, which is counted with the effects.
func (t *Tracker) Counts() Counts {
	return Counts{
		Players:       len(t.players),
		Enemies:       len(t.enemies),
		PlayerBullets: len(t.playerBullets),
		EnemyBullets:  len(t.enemyBullets),
		Emitters:      len(t.effects) + len(t.players),
	}
}

func (c Counts) String() string {
	return fmt.Sprintf("players=%d enemies=%d player_bullets=%d enemy_bullets=%d emitters=%d",
		c.Players, c.Enemies, c.PlayerBullets, c.EnemyBullets, c.Emitters)
}

// Draw renders player bullets, enemies, enemy bullets, effects, then the player.
func (t *Tracker) Draw(s draw.Surface) {
	for _, a := range t.playerBullets {
		a.Draw(s)
	}
	for _, a := range t.enemies {
		a.Draw(s)
	}
	for _, a := range t.enemyBullets {
		a.Draw(s)
	}
	for _, e := range t.effects {
		e.Draw(s)
	}
	if t.player != nil {
		t.player.Draw(s)
	}
}
