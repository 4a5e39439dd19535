package desktop

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"shooter/internal/vmath"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer is a draw.Surface backed by one streaming triangle buffer.
type Renderer struct {
	batch

	prog  uint32
	vao   uint32
	vbo   uint32
	uProj int32

	proj vmath.Mat4
}

func NewRenderer() (*Renderer, error) {
	prog, err := buildProgram("mesh", meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, err
	}
	r := &Renderer{batch: newBatch(), prog: prog, proj: vmath.Identity()}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(floatsPerVertex * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Begin clears the framebuffer and starts collecting a frame drawn through
// view and shown through proj.
func (r *Renderer) Begin(proj, view vmath.Mat4, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.proj = proj
	r.begin(view)
}

// Flush uploads and draws everything collected since Begin.
func (r *Renderer) Flush() {
	n := r.vertexCount()
	if n == 0 {
		return
	}
	buf := r.floats()

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	m := r.proj.Float32()
	gl.UniformMatrix4fv(r.uProj, 1, false, &m[0])

	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(n))

	gl.BindVertexArray(0)
}
