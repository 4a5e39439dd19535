package sim

import (
	"fmt"
	"math"

	"shooter/internal/draw"
	"shooter/internal/vmath"
)

type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlayerBullet
	KindEnemyBullet
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlayerBullet:
		return "player_bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Actor is anything that takes part in collisions. Killed marks a logical
// death that is cleaned up (with an effect) this frame; Dead marks an actor
// that left play and is dropped silently.
type Actor struct {
	Kind Kind
	Body

	Killed    bool
	Dead      bool
	Invisible bool

	Texture draw.TextureID
	anim    animation

	// Enemy attack state.
	attackTimer float64
	attackTime  float64
	shotsTaken  int

	// Player state.
	Immune bool
	hFlip  float64
	engine *Emitter
}

// animation picks a texture frame from a timer; a negative timer shows the
// actor's static texture.
type animation struct {
	frames []draw.TextureID
	length float64
	timer  float64
}

func (a *Actor) currentTexture() draw.TextureID {
	an := &a.anim
	if an.timer < 0 || len(an.frames) == 0 {
		return a.Texture
	}
	n := len(an.frames)
	i := int(an.timer * float64(n) / an.length)
	return an.frames[min(i, n-1)]
}

// Update advances the actor one frame. t receives any shots fired.
func (a *Actor) Update(dt float64, t *Tracker) {
	switch a.Kind {
	case KindPlayer:
		a.updatePlayer(dt, t)
	case KindEnemy:
		a.updateEnemy(dt, t)
	case KindPlayerBullet, KindEnemyBullet:
		a.updateBullet(dt)
	default:
		panic(fmt.Sprintf("sim: unknown actor kind %d", int(a.Kind)))
	}
}

func (a *Actor) Draw(s draw.Surface) {
	switch a.Kind {
	case KindPlayer:
		a.drawPlayer(s)
	case KindEnemy:
		a.drawEnemy(s)
	case KindPlayerBullet, KindEnemyBullet:
		a.drawBullet(s)
	default:
		panic(fmt.Sprintf("sim: unknown actor kind %d", int(a.Kind)))
	}
}

func outOfBounds(p vmath.Vec3) bool {
	return p.X < boundLeft || p.X > boundRight || p.Y > boundTop || p.Y < boundBottom
}

func newPlayerBullet(pos, vel vmath.Vec3, angle float64) *Actor {
	a := &Actor{
		Kind: KindPlayerBullet,
		Body: newBody(vmath.Vec3{X: playerBulletW, Y: playerBulletH}, bulletRadius),
		anim: animation{frames: []draw.TextureID{draw.TexPlayerBullet}, length: playerBulletAnim},
	}
	a.Pos, a.Vel, a.Angle.Z = pos, vel, angle
	return a
}

func newEnemyBullet(pos, vel vmath.Vec3) *Actor {
	a := &Actor{
		Kind: KindEnemyBullet,
		Body: newBody(vmath.Vec3{X: enemyBulletSize, Y: enemyBulletSize}, bulletRadius),
		anim: animation{frames: draw.EnemyBulletFrames, length: enemyBulletAnim},
	}
	a.Pos, a.Vel = pos, vel
	return a
}

func (a *Actor) updateBullet(dt float64) {
	a.anim.timer = math.Mod(a.anim.timer+dt, a.anim.length)
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))
	if outOfBounds(a.Pos) {
		a.Dead = true
	}
	a.lastMillis = dt
}

var bulletQuad = []draw.Vertex{
	draw.Vt(1, 1, 0, 1, 0),
	draw.Vt(1, -1, 0, 1, 1),
	draw.Vt(-1, 1, 0, 0, 0),
	draw.Vt(-1, -1, 0, 0, 1),
}

func (a *Actor) drawBullet(s draw.Surface) {
	s.Push()
	s.Translate(a.Pos.X, a.Pos.Y, a.Pos.Z)
	s.RotateZ(a.Angle.Z)
	s.Scale(a.Size.X, a.Size.Y, a.Size.Z)
	s.Texture(a.currentTexture())
	s.Shape(draw.Strip, bulletQuad...)
	s.Pop()
}
