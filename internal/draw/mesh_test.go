package draw

import (
	"math"
	"testing"

	"shooter/internal/vmath"
)

func TestTessellateAppliesView(t *testing.T) {
	quad := []Vertex{Vt(0, 0, 0, 0, 0), Vt(0, 1, 0, 0, 0), Vt(1, 0, 0, 0, 0), Vt(1, 1, 0, 0, 0)}
	view := vmath.Translate(0, 0, -2)

	s := NewStack()
	s.Translate(1, 0, 0)
	s.Texture(TexPlayer)
	got := Tessellate(nil, s.Current(), view, Strip, quad)
	if len(got) != 6 {
		t.Fatalf("got %d vertices", len(got))
	}
	if p := got[0].Pos; p != vmath.V(1, 0, -2) {
		t.Errorf("first corner at %+v", p)
	}
	if got[0].Col != TexPlayer.Fallback() {
		t.Errorf("colour %+v", got[0].Col)
	}

	s.ResetMatrix()
	got = Tessellate(got[:0], s.Current(), view, Strip, quad)
	if p := got[0].Pos; p != vmath.V(0, 0, 0) {
		t.Errorf("eye-space corner moved by the view: %+v", p)
	}
}

func TestProject(t *testing.T) {
	proj := vmath.Perspective(math.Pi/2, 1, 0.1, 10)
	tests := []struct {
		name string
		in   vmath.Vec3
		ok   bool
		x    float64
	}{
		{"centre", vmath.V(0, 0, -1), true, 0},
		{"right edge", vmath.V(1, 0, -1), true, 1},
		{"behind", vmath.V(0, 0, 1), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ndc, ok := Project(proj, tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v", ok)
			}
			if ok && math.Abs(ndc.X-tt.x) > 1e-9 {
				t.Errorf("x = %v, want %v", ndc.X, tt.x)
			}
		})
	}
}
