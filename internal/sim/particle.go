package sim

import (
	"fmt"
	"math"

	"shooter/internal/draw"
)

type Shape uint8

const (
	Diamond Shape = iota
	Triangle
)

// Particle is a short-lived effect sprite that dies after a fixed lifespan.
type Particle struct {
	Body
	Shape    Shape
	Lifespan float64
	Age      float64
	Texture  draw.TextureID
	Tint     draw.RGB
	Dead     bool
}

func (p *Particle) Update(dt float64) {
	p.Vel = p.Vel.Add(p.Accel.Scale(dt))
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Angle = p.Angle.Add(p.Rotation.Scale(dt))
	p.Age += dt
	if p.Age >= p.Lifespan {
		p.Dead = true
	}
	p.lastMillis = dt
}

var (
	diamondTips = []draw.Vertex{
		vtx(0, 1), vtx(-0.5, 0), vtx(0.5, 0), vtx(0, -1),
	}
	diamondSides = []draw.Vertex{
		vtx(-1, 0), vtx(0, -0.5), vtx(0, 0.5), vtx(1, 0),
	}
	triangleH     = math.Sin(math.Pi / 3)
	triangleVerts = []draw.Vertex{
		vtx(0, triangleH/2), vtx(-1, -triangleH/2), vtx(1, -triangleH/2),
	}
)

// vtx places a vertex in [-1,1] local space with matching texture coordinates.
func vtx(x, y float64) draw.Vertex {
	return draw.Vertex{X: x, Y: y, U: draw.XToTex(x), V: draw.YToTex(y)}
}

// Draw renders the particle. Diamonds are drawn with a triangle over them.
func (p *Particle) Draw(s draw.Surface) {
	s.Push()
	s.Translate(p.Pos.X, p.Pos.Y, p.Pos.Z)
	s.Scale(p.Size.X, p.Size.Y, p.Size.Z)
	s.RotateZ(p.Angle.Z)
	s.RotateY(p.Angle.Y)
	s.RotateX(p.Angle.X)
	s.Tint(p.Tint)
	s.Fill(p.Tint)
	s.Texture(p.Texture)

	switch p.Shape {
	case Diamond:
		s.Shape(draw.Strip, diamondTips...)
		s.Shape(draw.Strip, diamondSides...)
		s.Shape(draw.Triangles, triangleVerts...)
	case Triangle:
		s.Shape(draw.Triangles, triangleVerts...)
	default:
		panic(fmt.Sprintf("sim: unknown particle shape %d", p.Shape))
	}

	s.NoTint()
	s.Pop()
}
