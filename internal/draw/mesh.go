package draw

import "shooter/internal/vmath"

// EyeVertex is a triangle corner in eye space with the flat colour it was
// drawn under.
type EyeVertex struct {
	Pos vmath.Vec3
	Col RGB
}

// Tessellate triangulates verts and appends them to dst in eye space. The
// model matrix of st is composed with view unless st was reset to eye space.
func Tessellate(dst []EyeVertex, st State, view vmath.Mat4, p Primitive, verts []Vertex) []EyeVertex {
	m := st.Model
	if !st.Eye {
		m = view.Mul(m)
	}
	col := st.Colour()
	for _, v := range Triangulate(p, verts) {
		pos, w := m.MulPoint(v.Pos())
		if w != 0 && w != 1 {
			pos = pos.Scale(1 / w)
		}
		dst = append(dst, EyeVertex{Pos: pos, Col: col})
	}
	return dst
}

// Project maps an eye-space point through proj and returns normalized device
// coordinates. ok is false behind the eye.
func Project(proj vmath.Mat4, p vmath.Vec3) (ndc vmath.Vec3, ok bool) {
	clip, w := proj.MulPoint(p)
	if w <= 0 {
		return vmath.Vec3{}, false
	}
	return clip.Scale(1 / w), true
}
