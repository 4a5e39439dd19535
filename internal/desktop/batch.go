package desktop

import (
	"shooter/internal/draw"
	"shooter/internal/vmath"
)

// floatsPerVertex is the [x y z r g b] layout of the mesh VBO.
const floatsPerVertex = 6

// batch is the CPU half of the renderer: it tracks the transform stack and
// accumulates one frame's triangles in eye space.
type batch struct {
	draw.Stack
	view vmath.Mat4
	tris []draw.EyeVertex
	buf  []float32
}

func newBatch() batch {
	return batch{Stack: draw.NewStack(), view: vmath.Identity()}
}

func (b *batch) begin(view vmath.Mat4) {
	b.Reset()
	b.view = view
	b.tris = b.tris[:0]
}

func (b *batch) Shape(p draw.Primitive, verts ...draw.Vertex) {
	b.tris = draw.Tessellate(b.tris, b.Current(), b.view, p, verts)
}

// floats packs the accumulated triangles for upload.
func (b *batch) floats() []float32 {
	b.buf = b.buf[:0]
	for _, v := range b.tris {
		r, g, bl := v.Col.Floats()
		b.buf = append(b.buf, float32(v.Pos.X), float32(v.Pos.Y), float32(v.Pos.Z), r, g, bl)
	}
	return b.buf
}

func (b *batch) vertexCount() int { return len(b.tris) }
