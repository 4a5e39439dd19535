package desktop

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"shooter/internal/draw"
	"shooter/internal/game"
	"shooter/internal/vmath"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want game.Command
	}{
		{glfw.KeyA, game.CmdLeft},
		{glfw.KeyD, game.CmdRight},
		{glfw.KeyLeft, game.CmdLeft},
		{glfw.KeyDown, game.CmdDown},
		{glfw.KeySpace, game.CmdFire},
		{glfw.KeyR, game.CmdToggleCamera},
		{glfw.KeySemicolon, game.CmdReset},
		{glfw.KeyRightBracket, game.CmdScrollUp},
		{glfw.KeyX, game.CmdNone},
		{glfw.KeyF1, game.CmdNone},
	}
	for _, tt := range tests {
		if got := keyCommand(tt.key); got != tt.want {
			t.Errorf("keyCommand(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestBoundKeysMapped(t *testing.T) {
	seen := map[game.Command]bool{}
	for _, k := range boundKeys {
		c := keyCommand(k)
		if c == game.CmdNone {
			t.Errorf("key %d bound to nothing", k)
		}
		seen[c] = true
	}
	for c := game.CmdLeft; c <= game.CmdReset; c++ {
		if !seen[c] {
			t.Errorf("%v has no key", c)
		}
	}
}

func TestInputEdges(t *testing.T) {
	in := NewInput()
	steps := []struct {
		down              bool
		pressed, released bool
	}{
		{true, true, false},
		{true, false, false},
		{false, false, true},
		{false, false, false},
	}
	for i, s := range steps {
		p, r := in.edge(glfw.KeySpace, s.down)
		if p != s.pressed || r != s.released {
			t.Errorf("step %d: pressed %v released %v", i, p, r)
		}
	}
}

func TestBatchPacksEyeSpace(t *testing.T) {
	b := newBatch()
	b.begin(vmath.Translate(0, 0, -1))
	b.Fill(draw.Hex(0xff0000))
	b.Shape(draw.Triangles, draw.Vt(0, 0, 0, 0, 0), draw.Vt(1, 0, 0, 0, 0), draw.Vt(0, 1, 0, 0, 0))
	buf := b.floats()
	if b.vertexCount() != 3 || len(buf) != 3*floatsPerVertex {
		t.Fatalf("%d vertices, %d floats", b.vertexCount(), len(buf))
	}
	want := []float32{0, 0, -1, 1, 0, 0}
	for i, w := range want {
		if buf[i] != w {
			t.Fatalf("first vertex %v, want %v", buf[:floatsPerVertex], want)
		}
	}

	b.begin(vmath.Identity())
	if b.vertexCount() != 0 || b.Depth() != 0 {
		t.Error("begin kept the last frame")
	}
}

func TestOpenWindowRejectsEmptySize(t *testing.T) {
	for _, size := range [][2]int{{0, 600}, {800, -1}} {
		if _, err := openWindow(size[0], size[1]); err == nil {
			t.Errorf("openWindow(%d, %d) succeeded", size[0], size[1])
		}
	}
}
