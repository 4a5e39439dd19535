package sim

import (
	"shooter/internal/draw"
	"shooter/internal/vmath"
)

// Controls is the held state of the player's inputs for one frame.
type Controls struct {
	Left, Right, Up, Down bool
	Fire                  bool
}

// NewPlayer builds a fresh player at the start position with an engine trail.
func NewPlayer(r *vmath.Rand) *Actor {
	a := &Actor{
		Kind:    KindPlayer,
		Body:    newBody(uniform(playerSize), playerRadius),
		Texture: draw.TexPlayer,
		anim:    animation{frames: draw.PlayerShootFrames, length: playerAnimMillis, timer: -1},
		hFlip:   1,
	}
	a.Pos = vmath.Vec3{X: playerStart[0], Y: playerStart[1], Z: playerStart[2]}
	a.Angle.Z = yawCentre
	a.engine = NewEmitter(r, engineEffect(), a.Pos)
	return a
}

// Engine is the player's exhaust emitter.
func (a *Actor) Engine() *Emitter { return a.engine }

func (a *Actor) updatePlayer(dt float64, t *Tracker) {
	if a.Killed {
		return
	}
	a.applyFriction(dt)
	a.steer(dt, t.controls)

	a.Pos.X = vmath.Clamp(a.Pos.X+a.Vel.X, -playerBoundH, playerBoundH)
	a.Pos.Y = vmath.Clamp(a.Pos.Y+a.Vel.Y, playerBoundBottom, playerBoundTop)

	a.engine.Position = a.Pos
	a.engine.ZAngle = a.Angle.Z
	a.updateShooting(dt, t)
	a.engine.Update(dt)

	a.lastMillis = dt
}

// settle moves v toward rest by step, snapping to rest once within step.
func settle(v, rest, step float64) float64 {
	switch {
	case v-rest > step:
		return v - step
	case v-rest < -step:
		return v + step
	}
	return rest
}

func (a *Actor) applyFriction(dt float64) {
	// Within ±minVel the ship stops dead.
	if a.Vel.X > playerMinVel*dt {
		a.Vel.X -= playerFriction * dt
	} else if a.Vel.X < -playerMinVel*dt {
		a.Vel.X += playerFriction * dt
	} else {
		a.Vel.X = 0
	}
	if a.Vel.Y > playerMinVel*dt {
		a.Vel.Y -= playerFriction * dt
	} else if a.Vel.Y < -playerMinVel*dt {
		a.Vel.Y += playerFriction * dt
	} else {
		a.Vel.Y = 0
	}
	a.Angle.Z = settle(a.Angle.Z, yawCentre, yawRest*dt)
	a.Angle.Y = settle(a.Angle.Y, 0, pitchRest*dt)
}

func (a *Actor) steer(dt float64, c Controls) {
	if c.Left {
		a.Vel.X -= playerAccel * dt
		a.Angle.Z += yawTurn * dt
	}
	if c.Right {
		a.Vel.X += playerAccel * dt
		a.Angle.Z -= yawTurn * dt
	}
	if c.Up {
		a.Vel.Y += playerAccel * dt
		a.Angle.Y += pitchTurn * dt
	}
	if c.Down {
		a.Vel.Y -= playerAccel * dt
		a.Angle.Y -= pitchTurn * dt
	}
	maxV := playerMaxVel * dt
	a.Vel.X = vmath.Clamp(a.Vel.X, -maxV, maxV)
	a.Vel.Y = vmath.Clamp(a.Vel.Y, -maxV, maxV)
	a.Angle.Z = vmath.Clamp(a.Angle.Z, yawMin, yawMax)
	a.Angle.Y = vmath.Clamp(a.Angle.Y, -pitchMax, pitchMax)
}

// updateShooting runs the firing cycle: a volley on the cycle's first frame,
// then the animation plays out and the muzzle side flips for the next volley.
func (a *Actor) updateShooting(dt float64, t *Tracker) {
	an := &a.anim
	if !t.controls.Fire && an.timer < 0 {
		return
	}
	if an.timer >= an.length {
		an.timer = -1
		a.hFlip = -a.hFlip
		return
	}
	if an.timer < 0 {
		for i := 0; i < bulletsPerShot; i++ {
			angle := (a.Angle.Z-yawCentre)*bulletAngleExtra + yawCentre
			angle = vmath.Clamp(angle, yawMin, yawMax) + t.rng.BiRand(bulletAngleSpread)
			off := vmath.Vec3{X: bulletOffsetX, Y: bulletOffsetY * a.hFlip}
			t.PlayerShoot(a.Pos, off, angle)
		}
		t.events.Emit(Event{Type: EventPlayerShot, Pos: a.Pos, Data: bulletsPerShot})
	}
	an.timer += dt
}

func (a *Actor) drawPlayer(s draw.Surface) {
	if a.Killed || a.Invisible {
		return
	}
	a.engine.Draw(s)

	s.Push()
	s.Translate(a.Pos.X, a.Pos.Y, a.Pos.Z)
	s.Scale(a.Size.X, a.Size.Y, a.Size.Z)
	s.RotateZ(a.Angle.Z)
	s.RotateY(a.Angle.Y)
	s.Texture(a.currentTexture())
	s.Shape(draw.Strip,
		draw.Vt(1, 1, 0, 1, 0),
		draw.Vt(-1, 1, 0, 0, 0),
		draw.Vt(1, -1, 0, 1, a.hFlip),
		draw.Vt(-1, -1, 0, 0, a.hFlip),
	)
	s.Pop()
}
