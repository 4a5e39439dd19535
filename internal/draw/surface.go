package draw

import (
	"fmt"

	"shooter/internal/vmath"
)

// Primitive is how a vertex list is assembled into triangles.
type Primitive int

const (
	Triangles Primitive = iota
	Strip
	Fan
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Strip:
		return "strip"
	case Fan:
		return "fan"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// Vertex is a model-space position with a texture coordinate.
type Vertex struct {
	X, Y, Z float64
	U, V    float64
}

func Vt(x, y, z, u, v float64) Vertex { return Vertex{X: x, Y: y, Z: z, U: u, V: v} }

func (v Vertex) Pos() vmath.Vec3 { return vmath.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// Surface is the write-only drawing target the game draws onto. Transform
// calls compose onto the current matrix; Push/Pop save and restore it along
// with the texture and colour state. ResetMatrix drops to the identity in eye
// space, so later shapes ignore the camera until the matching Pop.
type Surface interface {
	Push()
	Pop()
	ResetMatrix()
	Translate(x, y, z float64)
	Scale(x, y, z float64)
	RotateX(a float64)
	RotateY(a float64)
	RotateZ(a float64)

	Texture(t TextureID)
	Fill(c RGB)
	Tint(c RGB)
	NoTint()

	Shape(p Primitive, verts ...Vertex)
}

// Triangulate expands a primitive into an independent triangle list.
func Triangulate(p Primitive, verts []Vertex) []Vertex {
	switch p {
	case Triangles:
		n := len(verts) / 3 * 3
		return verts[:n]
	case Strip:
		if len(verts) < 3 {
			return nil
		}
		out := make([]Vertex, 0, (len(verts)-2)*3)
		for i := 2; i < len(verts); i++ {
			if i%2 == 0 {
				out = append(out, verts[i-2], verts[i-1], verts[i])
			} else {
				out = append(out, verts[i-1], verts[i-2], verts[i])
			}
		}
		return out
	case Fan:
		if len(verts) < 3 {
			return nil
		}
		out := make([]Vertex, 0, (len(verts)-2)*3)
		for i := 2; i < len(verts); i++ {
			out = append(out, verts[0], verts[i-1], verts[i])
		}
		return out
	}
	panic(fmt.Sprintf("draw: unknown primitive %d", int(p)))
}
