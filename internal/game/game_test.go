package game

import (
	"testing"

	"shooter/internal/sim"
	"shooter/internal/world"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  rune
		want Command
	}{
		{'a', CmdLeft},
		{'D', CmdRight},
		{'w', CmdUp},
		{'S', CmdDown},
		{' ', CmdFire},
		{'R', CmdToggleCamera},
		{'c', CmdToggleCollisions},
		{'g', CmdCycleBiome},
		{'K', CmdKillPlayer},
		{'p', CmdReportCounts},
		{']', CmdScrollUp},
		{'[', CmdScrollDown},
		{';', CmdReset},
		{'x', CmdNone},
		{'1', CmdNone},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := KeyCommand(tt.key); got != tt.want {
				t.Errorf("KeyCommand(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestCommandHeld(t *testing.T) {
	for _, c := range []Command{CmdLeft, CmdRight, CmdUp, CmdDown, CmdFire} {
		if !c.Held() {
			t.Errorf("%v not held", c)
		}
	}
	for _, c := range []Command{CmdNone, CmdToggleCamera, CmdReset} {
		if c.Held() {
			t.Errorf("%v held", c)
		}
	}
}

func TestPressRelease(t *testing.T) {
	g := New(Options{Seed: 1})
	for _, c := range []Command{CmdLeft, CmdUp, CmdFire} {
		g.Press(c)
	}
	want := sim.Controls{Left: true, Up: true, Fire: true}
	if g.State().Controls != want {
		t.Fatalf("controls = %+v", g.State().Controls)
	}
	g.Release(CmdUp)
	g.Release(CmdToggleCamera)
	want.Up = false
	if g.State().Controls != want {
		t.Errorf("after release: %+v", g.State().Controls)
	}
}

func TestFireHeldShoots(t *testing.T) {
	g := New(Options{Seed: 2})
	g.Press(CmdFire)
	g.Update(16)
	if n := g.Snapshot().Counts.PlayerBullets; n == 0 {
		t.Error("no bullets while fire held")
	}
}

func TestResetNeedsDebug(t *testing.T) {
	g := New(Options{Seed: 3})
	before := g.State()
	g.Press(CmdReset)
	g.Update(16)
	if g.State() != before {
		t.Fatal("reset without debug")
	}

	g = New(Options{Seed: 3, Debug: true})
	before = g.State()
	g.Press(CmdKillPlayer)
	g.Press(CmdReset)
	if g.State() != before {
		t.Fatal("reset applied before the frame ran")
	}
	g.Update(16)
	if g.State() == before {
		t.Fatal("reset not applied after the frame")
	}
	if !before.IsRespawning() {
		t.Error("the requesting frame did not complete")
	}
	snap := g.Snapshot()
	if snap.Lives != StartingLives || snap.Respawning || snap.Frame != 1 {
		t.Errorf("snapshot after reset = %+v", snap)
	}
}

func TestHeldControlsSurviveReset(t *testing.T) {
	g := New(Options{Seed: 6, Debug: true})
	g.Press(CmdFire)
	g.Press(CmdLeft)
	g.Press(CmdReset)
	g.Update(16)
	if c := g.State().Controls; !c.Fire || !c.Left {
		t.Errorf("controls after reset = %+v", c)
	}
}

func TestEventsSurviveReset(t *testing.T) {
	g := New(Options{Seed: 4, Debug: true})
	biomes := 0
	g.Events().Subscribe(sim.EventBiomeChanged, func(sim.Event) { biomes++ })
	g.Press(CmdReset)
	g.Update(16)
	g.Press(CmdCycleBiome)
	if biomes != 1 {
		t.Errorf("biome events after reset = %d", biomes)
	}
	if g.Snapshot().World.Biome != world.Desert {
		t.Errorf("biome = %v", g.Snapshot().World.Biome)
	}
}

func TestSnapshotCamera(t *testing.T) {
	g := New(Options{Seed: 5})
	g.Update(16)
	if s := g.Snapshot(); !s.Ortho || s.View.Interpolating {
		t.Errorf("snapshot = %+v", s)
	}
	g.Press(CmdToggleCamera)
	g.Update(16)
	if v := g.View(); !v.Interpolating || v.T != 0 {
		t.Errorf("view = %+v", v)
	}
}
