package draw

import "shooter/internal/vmath"

// Call is one recorded Shape invocation with the state it was drawn under.
type Call struct {
	Prim  Primitive
	State State
	Verts []Vertex
}

// World returns the call's vertices transformed by its model matrix.
func (c Call) World() []vmath.Vec3 {
	out := make([]vmath.Vec3, len(c.Verts))
	for i, v := range c.Verts {
		p, _ := c.State.Model.MulPoint(v.Pos())
		out[i] = p
	}
	return out
}

// Recorder is a Surface that keeps every Shape call.
type Recorder struct {
	Stack
	Calls []Call
}

func NewRecorder() *Recorder {
	return &Recorder{Stack: NewStack()}
}

func (r *Recorder) Shape(p Primitive, verts ...Vertex) {
	cp := make([]Vertex, len(verts))
	copy(cp, verts)
	r.Calls = append(r.Calls, Call{Prim: p, State: r.Current(), Verts: cp})
}

// CountTexture reports how many calls used texture t.
func (r *Recorder) CountTexture(t TextureID) int {
	n := 0
	for _, c := range r.Calls {
		if c.State.Texture == t {
			n++
		}
	}
	return n
}

func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.Reset()
}
