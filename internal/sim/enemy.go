package sim

import (
	"fmt"
	"math"

	"shooter/internal/draw"
	"shooter/internal/vmath"
)

// quadrant is a spawn entry: enemies enter from one of the four corners of
// the play-field and curve across it.
type quadrant struct {
	pos   vmath.Vec3
	angle float64
	vel   vmath.Vec3
	turn  float64
}

var quadrants = [4]quadrant{
	// lower left, curving clockwise
	{vmath.Vec3{X: enemyLeftX, Y: enemyBottomY, Z: enemyZ}, math.Pi / 2, vmath.Vec3{Y: enemySpeed}, -enemyTurn},
	// lower right, counter-clockwise
	{vmath.Vec3{X: enemyRightX, Y: enemyBottomY, Z: enemyZ}, math.Pi / 2, vmath.Vec3{Y: enemySpeed}, enemyTurn},
	// upper left, counter-clockwise
	{vmath.Vec3{X: enemyLeftX, Y: enemyTopY, Z: enemyZ}, -math.Pi / 2, vmath.Vec3{Y: -enemySpeed}, enemyTurn},
	// upper right, clockwise
	{vmath.Vec3{X: enemyRightX, Y: enemyTopY, Z: enemyZ}, -math.Pi / 2, vmath.Vec3{Y: -enemySpeed}, -enemyTurn},
}

// EnemyGenerator picks spawn quadrants, avoiding repeats where it can.
type EnemyGenerator struct {
	lastQuad int
}

func NewEnemyGenerator() EnemyGenerator {
	return EnemyGenerator{lastQuad: -1}
}

// LastQuadrant is the quadrant of the most recent spawn, -1 before any.
func (g *EnemyGenerator) LastQuadrant() int { return g.lastQuad }

// Next draws a quadrant, retrying a bounded number of times to differ from
// the previous one.
func (g *EnemyGenerator) Next(r *vmath.Rand) int {
	q := g.lastQuad
	for tries := 0; q == g.lastQuad && tries < quadrantRetries; tries++ {
		q = r.Intn(len(quadrants))
	}
	g.lastQuad = q
	return q
}

// Generate builds an enemy entering from a freshly drawn quadrant.
func (g *EnemyGenerator) Generate(r *vmath.Rand) *Actor {
	return NewEnemy(r, g.Next(r))
}

// NewEnemy builds an enemy for quadrant q. A quadrant outside [0,4) is a
// programming error.
func NewEnemy(r *vmath.Rand, q int) *Actor {
	if q < 0 || q >= len(quadrants) {
		panic(fmt.Sprintf("sim: unexpected spawn quadrant %d", q))
	}
	start := quadrants[q]
	a := &Actor{
		Kind:    KindEnemy,
		Body:    newBody(uniform(enemySize), enemyRadius),
		Texture: draw.TexEnemy1,
	}
	a.Pos = start.pos
	a.Angle.Z = start.angle
	a.Vel = start.vel
	a.Rotation.Z = start.turn
	a.attackTime = r.RangeF(attackWaitMin, attackWaitMax)
	return a
}

func (a *Actor) updateEnemy(dt float64, t *Tracker) {
	a.Vel = a.Vel.RotateZ(a.Rotation.Z * dt)
	a.Angle = a.Angle.Add(a.Rotation.Scale(dt))
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))

	if a.shotsTaken < maxAttacks {
		a.attackTimer += dt
		if a.attackTimer >= a.attackTime {
			a.shotsTaken++
			t.EnemyShoot(a.Pos)
			a.attackTimer = 0
			a.attackTime = t.rng.RangeF(attackWaitMin, attackWaitMax)
		}
	}

	if outOfBounds(a.Pos) {
		a.Dead = true
	}
	a.lastMillis = dt
}

// Ship outline in local space, nose along +X.
var enemyShip = func() []draw.Vertex {
	const (
		cockpitX    = 1.0
		wingsFrontX = -2.0 / 16
		wingsFrontY = 5.0 / 16
		wingsBackX  = -12.0 / 16
		wingsBackY  = 1.0
		backX       = -1.0
		backY       = 1.0
	)
	return []draw.Vertex{
		vtx(cockpitX, 0),
		vtx(wingsFrontX, wingsFrontY),
		vtx(wingsFrontX, -wingsFrontY),
		vtx(wingsBackX, wingsBackY),
		vtx(wingsBackX, -wingsBackY),
		vtx(backX, backY),
		vtx(backX, -backY),
	}
}()

func (a *Actor) drawEnemy(s draw.Surface) {
	s.Push()
	s.Translate(a.Pos.X, a.Pos.Y, a.Pos.Z)
	s.Scale(a.Size.X, a.Size.Y, a.Size.Z)
	s.RotateZ(a.Angle.Z)
	s.RotateY(a.Angle.Y)
	s.Texture(a.Texture)
	s.Shape(draw.Strip, enemyShip...)
	s.Pop()
}
