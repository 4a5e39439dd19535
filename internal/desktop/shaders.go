package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertices arrive already in eye space; only the projection runs on the GPU.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;

uniform mat4 uProj;

out vec3 vColor;

void main() {
    gl_Position = uProj * vec4(aPos, 1.0);
    vColor = aColor;
}
` + "\x00"

const meshFragSrc = `#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(vColor, 1.0);
}
` + "\x00"

// glLog reads an info log of length n through read, trimmed of its terminator.
func glLog(n int32, read func(n int32, buf *uint8)) string {
	if n <= 0 {
		return "no log"
	}
	buf := strings.Repeat("\x00", int(n+1))
	read(n, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

// compileStage compiles one stage of a program; name labels it in errors.
func compileStage(name string, stage uint32, src string) (uint32, error) {
	id := gl.CreateShader(stage)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var ok, n int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok != gl.FALSE {
		return id, nil
	}
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
	msg := glLog(n, func(n int32, buf *uint8) { gl.GetShaderInfoLog(id, n, nil, buf) })
	gl.DeleteShader(id)
	return 0, fmt.Errorf("%s shader: %s", name, msg)
}

// buildProgram compiles and links a vertex/fragment pair. The stage objects
// are released whether or not linking succeeds.
func buildProgram(name, vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileStage(name+" vertex", gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileStage(name+" fragment", gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)

	var ok, n int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok != gl.FALSE {
		return prog, nil
	}
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
	msg := glLog(n, func(n int32, buf *uint8) { gl.GetProgramInfoLog(prog, n, nil, buf) })
	gl.DeleteProgram(prog)
	return 0, fmt.Errorf("link %s program: %s", name, msg)
}
