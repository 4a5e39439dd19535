package sim

import (
	"math"
	"testing"

	"shooter/internal/vmath"
)

func newTestTracker(seed uint64) *Tracker {
	r := vmath.NewRand(seed)
	t := NewTracker(r, nil)
	t.SetPlayer(NewPlayer(r))
	return t
}

func TestEnemyAndBulletAtSamePosition(t *testing.T) {
	tr := newTestTracker(1)
	pos := vmath.Vec3{X: 0.5, Y: 1.0, Z: 0.8}
	e := NewEnemy(tr.rng, 0)
	e.Pos, e.Vel, e.Rotation = pos, vmath.Vec3{}, vmath.Vec3{}
	e.attackTime = 1e9
	tr.AddEnemy(e)
	b := newPlayerBullet(pos, vmath.Vec3{}, 0)
	tr.playerBullets = append(tr.playerBullets, b)

	st := tr.Update(16, Controls{}, true, false)

	if !e.Killed || !b.Killed {
		t.Fatalf("killed enemy=%v bullet=%v", e.Killed, b.Killed)
	}
	for _, a := range tr.Enemies() {
		if a == e {
			t.Fatal("killed enemy still tracked")
		}
	}
	if len(tr.PlayerBullets()) != 0 {
		t.Fatalf("player bullets = %d", len(tr.PlayerBullets()))
	}
	if st.EnemiesKilled != 1 {
		t.Errorf("EnemiesKilled = %d", st.EnemiesKilled)
	}
	if got := len(tr.Effects()); got != 3 {
		t.Fatalf("effects = %d, want explosion+debris+spark", got)
	}
	if math.Abs(tr.Difficulty()-(StartDifficulty+DifficultyPerEnemy)) > 1e-15 {
		t.Errorf("difficulty = %v", tr.Difficulty())
	}
}

func TestCollisionSymmetryAndMiss(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		hit  bool
	}{
		{"overlap", 0.1, true},
		{"touching", bulletRadius + enemyRadius, true},
		{"miss", bulletRadius + enemyRadius + 0.01, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Actor{Kind: KindEnemy, Body: newBody(uniform(1), enemyRadius)}
			b := &Actor{Kind: KindPlayerBullet, Body: newBody(uniform(1), bulletRadius)}
			b.Pos.X = tt.dist
			b.Pos.Z = 5 // depth is ignored
			collide([]*Actor{a}, []*Actor{b})
			if a.Killed != tt.hit || b.Killed != tt.hit {
				t.Errorf("a=%v b=%v, want both %v", a.Killed, b.Killed, tt.hit)
			}
		})
	}
}

func TestKilledActorsSkipped(t *testing.T) {
	a := &Actor{Kind: KindEnemy, Body: newBody(uniform(1), enemyRadius)}
	a.Killed = true
	b := &Actor{Kind: KindPlayerBullet, Body: newBody(uniform(1), bulletRadius)}
	collide([]*Actor{a}, []*Actor{b})
	if b.Killed {
		t.Error("an enemy killed before the sweep took a bullet")
	}

	e := &Actor{Kind: KindEnemy, Body: newBody(uniform(1), enemyRadius)}
	spent := &Actor{Kind: KindPlayerBullet, Body: newBody(uniform(1), bulletRadius)}
	spent.Killed = true
	tr := newTestTracker(9)
	tr.playerBullets = []*Actor{spent}
	collide([]*Actor{e}, tr.playerBullets)
	if e.Killed {
		t.Error("a killed bullet still hit")
	}
	tr.playerBullets, _ = tr.handleKilled(tr.playerBullets, effectSpark)
	if got := len(tr.Effects()); got != 1 {
		t.Errorf("effects = %d, want one spark", got)
	}
}

func TestEnemyOverlapsTwoBullets(t *testing.T) {
	tr := newTestTracker(10)
	pos := vmath.Vec3{X: 0.5, Y: 1.0, Z: 0.8}
	e := NewEnemy(tr.rng, 0)
	e.Pos, e.Vel, e.Rotation = pos, vmath.Vec3{}, vmath.Vec3{}
	e.attackTime = 1e9
	tr.AddEnemy(e)
	b1 := newPlayerBullet(pos, vmath.Vec3{}, 0)
	b2 := newPlayerBullet(pos, vmath.Vec3{}, 0)
	tr.playerBullets = append(tr.playerBullets, b1, b2)

	tr.Update(16, Controls{}, true, false)

	if !e.Killed || !b1.Killed || !b2.Killed {
		t.Fatalf("killed enemy=%v b1=%v b2=%v", e.Killed, b1.Killed, b2.Killed)
	}
	if n := len(tr.PlayerBullets()); n != 0 {
		t.Errorf("player bullets left = %d", n)
	}
	if got := len(tr.Effects()); got != 4 {
		t.Errorf("effects = %d, want explosion+debris+2 sparks", got)
	}
}

func TestImmunePlayerIgnoresHits(t *testing.T) {
	tr := newTestTracker(2)
	p := tr.Player()
	p.Immune = true
	e := NewEnemy(tr.rng, 0)
	e.Pos, e.Vel, e.Rotation = p.Pos, vmath.Vec3{}, vmath.Vec3{}
	tr.AddEnemy(e)
	tr.Update(1, Controls{}, true, false)
	if p.Killed || e.Killed {
		t.Fatalf("immune collision: player=%v enemy=%v", p.Killed, e.Killed)
	}

	p.Immune = false
	tr.Update(1, Controls{}, true, false)
	if !p.Killed || !e.Killed {
		t.Fatalf("player=%v enemy=%v", p.Killed, e.Killed)
	}
	if c := tr.Counts(); c.Players != 0 {
		t.Errorf("killed player still counted: %+v", c)
	}
	if tr.Player() != p {
		t.Error("player reference dropped")
	}
}

func TestCollisionsDisabled(t *testing.T) {
	tr := newTestTracker(3)
	e := NewEnemy(tr.rng, 0)
	e.Pos = tr.Player().Pos
	tr.AddEnemy(e)
	tr.Update(1, Controls{}, false, false)
	if e.Killed || tr.Player().Killed {
		t.Fatal("collision with collisions off")
	}
}

func TestSpawnCapAndCarry(t *testing.T) {
	tr := newTestTracker(4)
	tr.difficulty = 1 // one enemy per millisecond
	st := tr.Update(10, Controls{}, false, false)
	if len(tr.Enemies()) != MaxEnemies {
		t.Fatalf("enemies = %d, want cap %d", len(tr.Enemies()), MaxEnemies)
	}
	if st.Spawned != MaxEnemies {
		t.Errorf("spawned = %d", st.Spawned)
	}
	if c := tr.SpawnCounter(); c < 0 || c >= 1 {
		t.Errorf("spawn counter = %v, want remainder in [0,1)", c)
	}

	tr2 := newTestTracker(5)
	tr2.spawnCounter = 0.75
	tr2.difficulty = 0.25
	tr2.Update(1, Controls{}, false, false) // 0.75 + 0.25 = 1
	if len(tr2.Enemies()) != 1 {
		t.Errorf("carried credit did not spawn: %d enemies", len(tr2.Enemies()))
	}
}

func TestNoSpawnOrDifficultyWhenGameOver(t *testing.T) {
	tr := newTestTracker(6)
	tr.difficulty = 1
	tr.Update(100, Controls{}, true, true)
	if len(tr.Enemies()) != 0 || tr.SpawnCounter() != 0 {
		t.Errorf("spawned during game over: %d enemies counter %v", len(tr.Enemies()), tr.SpawnCounter())
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	tr := newTestTracker(7)
	prev := tr.Difficulty()
	for i := 0; i < 2000; i++ {
		tr.Update(16, Controls{Fire: true, Left: i%200 < 100}, true, false)
		if d := tr.Difficulty(); d < prev {
			t.Fatalf("difficulty fell from %v to %v at frame %d", prev, d, i)
		} else {
			prev = d
		}
		if tr.Player().Killed {
			tr.SetPlayer(NewPlayer(tr.rng))
		}
		if len(tr.Enemies()) > MaxEnemies {
			t.Fatalf("enemies = %d", len(tr.Enemies()))
		}
	}
}

func TestQuadrantRetries(t *testing.T) {
	g := NewEnemyGenerator()
	r := vmath.NewRand(8)
	repeats := 0
	last := g.LastQuadrant()
	for i := 0; i < 1000; i++ {
		q := g.Next(r)
		if q < 0 || q > 3 {
			t.Fatalf("quadrant %d", q)
		}
		if q == last {
			repeats++
		}
		last = q
	}
	// a repeat needs four unlucky draws in a row: (1/4)^4 per spawn
	if repeats > 20 {
		t.Errorf("%d repeats in 1000 spawns", repeats)
	}
}

func TestQuadrantTable(t *testing.T) {
	r := vmath.NewRand(9)
	for q := 0; q < 4; q++ {
		e := NewEnemy(r, q)
		if e.Pos.Z != enemyZ || e.Radius != enemyRadius {
			t.Errorf("q%d: %+v", q, e.Body)
		}
		up := q < 2
		if (e.Vel.Y > 0) != up {
			t.Errorf("q%d: vel %+v", q, e.Vel)
		}
		if e.attackTime < attackWaitMin || e.attackTime >= attackWaitMax {
			t.Errorf("q%d: attack time %v", q, e.attackTime)
		}
	}
	defer func() {
		if recover() == nil {
			t.Error("quadrant 4 did not panic")
		}
	}()
	NewEnemy(r, 4)
}

func TestEnemyAttacksTwiceThenStops(t *testing.T) {
	tr := newTestTracker(10)
	e := NewEnemy(tr.rng, 0)
	e.Pos, e.Vel, e.Rotation = vmath.Vec3{Y: 1}, vmath.Vec3{}, vmath.Vec3{}
	tr.AddEnemy(e)
	for i := 0; i < 500; i++ {
		tr.Update(16, Controls{}, false, true)
	}
	if e.shotsTaken != maxAttacks {
		t.Errorf("shots = %d", e.shotsTaken)
	}
}

func TestEnemyHoldsFireAtKilledPlayer(t *testing.T) {
	tr := newTestTracker(11)
	tr.Player().Killed = true
	tr.EnemyShoot(vmath.Vec3{Y: 1})
	if len(tr.EnemyBullets()) != 0 {
		t.Fatal("fired at a killed player")
	}
	tr.Player().Killed = false
	tr.EnemyShoot(vmath.Vec3{Y: 1})
	b := tr.EnemyBullets()[0]
	if math.Abs(b.Vel.Len()-EnemyBulletSpeed) > 1e-12 {
		t.Errorf("bullet speed = %v", b.Vel.Len())
	}
}

func TestPlayerVolley(t *testing.T) {
	tr := newTestTracker(12)
	tr.Update(16, Controls{Fire: true}, false, true)
	if got := len(tr.PlayerBullets()); got != bulletsPerShot {
		t.Fatalf("first frame fired %d bullets", got)
	}
	// the rest of the cycle fires nothing
	for i := 0; i < 25; i++ {
		tr.Update(16, Controls{}, false, true)
	}
	if got := len(tr.PlayerBullets()); got != bulletsPerShot {
		t.Errorf("bullets after cycle = %d", got)
	}
	if tr.Player().hFlip != -1 {
		t.Errorf("muzzle did not flip: %v", tr.Player().hFlip)
	}
	for _, b := range tr.PlayerBullets() {
		if b.Angle.Z < yawMin-bulletAngleSpread || b.Angle.Z > yawMax+bulletAngleSpread {
			t.Errorf("bullet angle %v", b.Angle.Z)
		}
	}
}

func TestPlayerMovementBounds(t *testing.T) {
	tr := newTestTracker(13)
	for i := 0; i < 500; i++ {
		tr.Update(16, Controls{Right: true, Up: true}, false, true)
	}
	p := tr.Player()
	if p.Pos.X != playerBoundH || p.Pos.Y != playerBoundTop {
		t.Errorf("pos = %+v", p.Pos)
	}
	if p.Angle.Z != yawMin || p.Angle.Y != pitchMax {
		t.Errorf("angle = %+v", p.Angle)
	}
	for i := 0; i < 500; i++ {
		tr.Update(16, Controls{}, false, true)
	}
	if p.Vel.X != 0 || p.Vel.Y != 0 || p.Angle.Z != yawCentre || p.Angle.Y != 0 {
		t.Errorf("did not settle: vel %+v angle %+v", p.Vel, p.Angle)
	}
}

func TestCountsIncludeEngine(t *testing.T) {
	tr := newTestTracker(14)
	c := tr.Counts()
	if c.Players != 1 || c.Emitters != 1 {
		t.Errorf("counts = %+v", c)
	}
}

func TestEventsEmitted(t *testing.T) {
	r := vmath.NewRand(15)
	bus := NewEventBus()
	got := map[EventType]int{}
	for _, et := range []EventType{EventExplosion, EventSpark, EventPlayerShot, EventEnemySpawned} {
		bus.Subscribe(et, func(e Event) { got[e.Type]++ })
	}
	tr := NewTracker(r, bus)
	tr.SetPlayer(NewPlayer(r))
	tr.SpawnEnemy()
	tr.Update(16, Controls{Fire: true}, false, false)
	tr.Player().Killed = true
	tr.Update(16, Controls{}, false, false)

	if got[EventEnemySpawned] != 1 || got[EventPlayerShot] != 1 || got[EventExplosion] != 1 {
		t.Errorf("events = %v", got)
	}
}
