package draw

import "shooter/internal/vmath"

// State is the per-draw state a Surface implementation tracks.
type State struct {
	Model   vmath.Mat4
	Texture TextureID
	Fill    RGB
	Tint    RGB
	Tinted  bool
	Eye     bool // Model maps straight to eye space
}

// Stack implements the transform and state half of Surface. Hosts embed it
// and provide Shape.
type Stack struct {
	cur   State
	saved []State
}

func NewStack() Stack {
	return Stack{cur: State{Model: vmath.Identity(), Fill: White, Tint: White}}
}

// Reset clears the stack at the start of a frame.
func (s *Stack) Reset() {
	s.cur = State{Model: vmath.Identity(), Fill: White, Tint: White}
	s.saved = s.saved[:0]
}

func (s *Stack) Current() State { return s.cur }

func (s *Stack) Depth() int { return len(s.saved) }

func (s *Stack) Push() { s.saved = append(s.saved, s.cur) }

func (s *Stack) Pop() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Stack) ResetMatrix() {
	s.cur.Model = vmath.Identity()
	s.cur.Eye = true
}

func (s *Stack) apply(m vmath.Mat4) { s.cur.Model = s.cur.Model.Mul(m) }

func (s *Stack) Translate(x, y, z float64) { s.apply(vmath.Translate(x, y, z)) }
func (s *Stack) Scale(x, y, z float64) { s.apply(vmath.Scale(x, y, z)) }
func (s *Stack) RotateX(a float64) { s.apply(vmath.RotateX(a)) }
func (s *Stack) RotateY(a float64) { s.apply(vmath.RotateY(a)) }
func (s *Stack) RotateZ(a float64) { s.apply(vmath.RotateZ(a)) }

func (s *Stack) Texture(t TextureID) { s.cur.Texture = t }
func (s *Stack) Fill(c RGB) { s.cur.Fill = c }
func (s *Stack) Tint(c RGB) { s.cur.Tint, s.cur.Tinted = c, true }
func (s *Stack) NoTint() { s.cur.Tint, s.cur.Tinted = White, false }

// Colour is the flat colour a host without texture images should use for
// the current state: the texture fallback (or fill when untextured),
// modulated by the tint.
func (st State) Colour() RGB {
	base := st.Fill
	if st.Texture != TexNone {
		base = st.Texture.Fallback()
	}
	if st.Tinted {
		base = base.Modulate(st.Tint)
	}
	return base
}
