package draw

import "testing"

func TestTriangulate(t *testing.T) {
	quad := []Vertex{Vt(0, 0, 0, 0, 0), Vt(0, 1, 0, 0, 1), Vt(1, 0, 0, 1, 0), Vt(1, 1, 0, 1, 1)}
	tests := []struct {
		name string
		prim Primitive
		in   []Vertex
		want int
	}{
		{"strip quad", Strip, quad, 6},
		{"fan quad", Fan, quad, 6},
		{"triangles trims remainder", Triangles, quad, 3},
		{"degenerate strip", Strip, quad[:2], 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Triangulate(tt.prim, tt.in)); got != tt.want {
				t.Errorf("got %d vertices, want %d", got, tt.want)
			}
		})
	}
}

func TestStripWinding(t *testing.T) {
	v := []Vertex{Vt(0, 0, 0, 0, 0), Vt(0, 1, 0, 0, 0), Vt(1, 0, 0, 0, 0), Vt(1, 1, 0, 0, 0)}
	tri := Triangulate(Strip, v)
	if tri[3] != v[2] || tri[4] != v[1] || tri[5] != v[3] {
		t.Errorf("odd strip triangle not flipped: %+v", tri[3:])
	}
}

func TestStackPushPop(t *testing.T) {
	r := NewRecorder()
	r.Push()
	r.Translate(1, 2, 3)
	r.Texture(TexSpark)
	r.Tint(Hex(0x808080))
	r.Shape(Triangles, Vt(0, 0, 0, 0, 0), Vt(1, 0, 0, 0, 0), Vt(0, 1, 0, 0, 0))
	r.Pop()
	r.Shape(Triangles, Vt(0, 0, 0, 0, 0), Vt(1, 0, 0, 0, 0), Vt(0, 1, 0, 0, 0))

	if len(r.Calls) != 2 {
		t.Fatalf("calls = %d", len(r.Calls))
	}
	p := r.Calls[0].World()[0]
	if p.X != 1 || p.Y != 2 || p.Z != 3 {
		t.Errorf("translated origin = %+v", p)
	}
	if r.Calls[1].State.Texture != TexNone || r.Calls[1].State.Tinted {
		t.Errorf("pop did not restore state: %+v", r.Calls[1].State)
	}
	if r.CountTexture(TexSpark) != 1 {
		t.Errorf("CountTexture = %d", r.CountTexture(TexSpark))
	}
	r.Pop() // extra pops are ignored
	if r.Depth() != 0 {
		t.Errorf("depth = %d", r.Depth())
	}
}

func TestResetMatrixScopedToPush(t *testing.T) {
	r := NewRecorder()
	r.Translate(5, 0, 0)
	r.Push()
	r.ResetMatrix()
	r.Translate(0, 1, 0)
	r.Shape(Triangles, Vt(0, 0, 0, 0, 0), Vt(1, 0, 0, 0, 0), Vt(0, 1, 0, 0, 0))
	r.Pop()
	r.Shape(Triangles, Vt(0, 0, 0, 0, 0), Vt(1, 0, 0, 0, 0), Vt(0, 1, 0, 0, 0))

	if p := r.Calls[0].World()[0]; p.X != 0 || p.Y != 1 || !r.Calls[0].State.Eye {
		t.Errorf("eye-space call: origin %+v state %+v", p, r.Calls[0].State)
	}
	if p := r.Calls[1].World()[0]; p.X != 5 || r.Calls[1].State.Eye {
		t.Errorf("after pop: origin %+v eye=%v", p, r.Calls[1].State.Eye)
	}
}

func TestColourAddClamps(t *testing.T) {
	c := Hex(0xF01005).Add(0x40, -0x20, 3)
	if c != (RGB{R: 255, G: 0, B: 8}) {
		t.Errorf("Add = %+v", c)
	}
}

func TestTextureNames(t *testing.T) {
	seen := map[string]bool{}
	for _, tex := range Textures() {
		n := tex.Name()
		if n == "" || seen[n] {
			t.Errorf("texture %d has bad or duplicate name %q", tex, n)
		}
		seen[n] = true
	}
	if TexNone.Name() != "" || TextureID(999).Name() != "" {
		t.Error("unexpected name for none/unknown")
	}
}
