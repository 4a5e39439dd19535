package world

import (
	"fmt"
	"math"

	"shooter/internal/draw"
	"shooter/internal/vmath"
)

type DecorationKind int

const (
	Pillar DecorationKind = iota
	Pyramid
	Snowman
)

func (k DecorationKind) String() string {
	switch k {
	case Pillar:
		return "pillar"
	case Pyramid:
		return "pyramid"
	case Snowman:
		return "snowman"
	}
	return fmt.Sprintf("DecorationKind(%d)", int(k))
}

const (
	pillarRange  = (ChunkH - 6) / 2.0
	pillarTopMin = 1.5
	pillarTopMax = 3.0
	pillarScale  = 0.5

	pyramidRange  = (ChunkH - 4) / 2.0
	pyramidTopMin = 2.0
	pyramidTopMax = 4.0

	snowmanRange = (ChunkH - 6) / 2.0
	snowmanScale = 0.5
)

var (
	snowmanBody = draw.RGB{R: 214, G: 239, B: 237}
	snowmanHat  = draw.Hex(0x101010)
)

// Decoration is a piece of scenery placed relative to the chunk centre, in
// tile units.
type Decoration struct {
	Kind  DecorationKind
	X, Y  float64
	Angle float64
	BaseZ float64
	TopZ  float64
}

func newPillar(r *vmath.Rand) Decoration {
	return Decoration{
		Kind:  Pillar,
		X:     r.BiRand(pillarRange),
		Y:     r.BiRand(pillarRange),
		Angle: r.Float64() * 2 * math.Pi,
		TopZ:  r.RangeF(pillarTopMin, pillarTopMax),
	}
}

func newPyramid(r *vmath.Rand) Decoration {
	return Decoration{
		Kind:  Pyramid,
		X:     r.BiRand(pyramidRange),
		Y:     r.BiRand(pyramidRange),
		Angle: r.Float64() * 2 * math.Pi,
		TopZ:  r.RangeF(pyramidTopMin, pyramidTopMax),
	}
}

// newSnowman stands on whatever tile lies under its position.
func newSnowman(r *vmath.Rand, tiles []Tile) Decoration {
	d := Decoration{
		Kind:  Snowman,
		X:     r.BiRand(snowmanRange),
		Y:     r.BiRand(snowmanRange),
		Angle: r.Float64() * 2 * math.Pi,
	}
	tx := int(ChunkW/2.0 + d.X)
	ty := int(ChunkH/2.0 + d.Y)
	d.BaseZ = tiles[tx+ty*ChunkW].Height()
	return d
}

func (d *Decoration) Draw(s draw.Surface) {
	switch d.Kind {
	case Pillar:
		d.drawPillar(s)
	case Pyramid:
		d.drawPyramid(s)
	case Snowman:
		d.drawSnowman(s)
	default:
		panic(fmt.Sprintf("world: unknown decoration kind %d", int(d.Kind)))
	}
}

func (d *Decoration) drawPillar(s draw.Surface) {
	top, h := d.TopZ, d.TopZ-d.BaseZ
	s.Push()
	s.Translate(d.X, d.Y, 0)
	s.Scale(pillarScale, pillarScale, 1)
	s.RotateZ(d.Angle)

	s.Texture(draw.TexDesertTile)
	s.Shape(draw.Strip,
		draw.Vt(-1, 1, top, 0, 0),
		draw.Vt(-1, -1, top, 0, 1),
		draw.Vt(1, 1, top, 1, 0),
		draw.Vt(1, -1, top, 1, 1),
	)

	s.Texture(draw.TexGlyphs)
	s.Shape(draw.Strip,
		draw.Vt(-1, 1, top, 0, 0),
		draw.Vt(-1, 1, d.BaseZ, 0, h),
		draw.Vt(-1, -1, top, 1, 0),
		draw.Vt(-1, -1, d.BaseZ, 1, h),
		draw.Vt(1, -1, top, 0, 0),
		draw.Vt(1, -1, d.BaseZ, 0, h),
		draw.Vt(1, 1, top, 1, 0),
		draw.Vt(1, 1, d.BaseZ, 1, h),
		draw.Vt(-1, 1, top, 0, 0),
		draw.Vt(-1, 1, d.BaseZ, 0, h),
	)
	s.Pop()
}

func (d *Decoration) drawPyramid(s draw.Surface) {
	h := d.TopZ - d.BaseZ
	side := h * math.Sqrt2
	b := d.BaseZ
	s.Push()
	s.Translate(d.X, d.Y, 0)
	s.RotateZ(d.Angle)
	s.Texture(draw.TexPyramid)
	s.Shape(draw.Fan,
		draw.Vt(0, 0, d.TopZ, h, 0),
		draw.Vt(-h, h, b, 0, side),
		draw.Vt(-h, -h, b, 2*h, side),
		draw.Vt(h, -h, b, 0, side),
		draw.Vt(h, h, b, 2*h, side),
		draw.Vt(-h, h, b, 0, side),
	)
	s.Pop()
}

func (d *Decoration) drawSnowman(s draw.Surface) {
	s.Push()
	s.Translate(d.X, d.Y, d.BaseZ)
	s.Scale(snowmanScale, snowmanScale, snowmanScale)
	s.RotateZ(d.Angle)
	s.Texture(draw.TexNone)

	stack := []struct {
		z, k float64
		hat  bool
	}{
		{0.5, 0.5, false},
		{4.0 / 3, 1.0 / 3, false},
		{11.0 / 6, 1.0 / 6, true},
	}
	for _, part := range stack {
		s.Push()
		s.Translate(0, 0, part.z)
		s.Scale(part.k, part.k, part.k)
		if part.hat {
			drawHat(s)
		} else {
			drawSnowball(s)
		}
		s.Pop()
	}
	s.Pop()
}

func drawSnowball(s draw.Surface) {
	s.Fill(snowmanBody)
	s.Shape(draw.Strip,
		draw.Vt(-0.5, 0.5, 1, 0, 0),
		draw.Vt(-0.5, -0.5, 1, 0, 1),
		draw.Vt(0.5, 0.5, 1, 1, 0),
		draw.Vt(0.5, -0.5, 1, 1, 1),
	)
	diagonalStrip(s, 1)
	verticalStrip(s, 0.5)
	diagonalStrip(s, -1)
	s.Shape(draw.Strip,
		draw.Vt(-0.5, 0.5, -1, 0, 0),
		draw.Vt(-0.5, -0.5, -1, 0, 1),
		draw.Vt(0.5, 0.5, -1, 1, 0),
		draw.Vt(0.5, -0.5, -1, 1, 1),
	)
}

func drawHat(s draw.Surface) {
	s.Fill(snowmanHat)
	verticalStrip(s, 1)
	s.Shape(draw.Fan,
		draw.Vt(0, 0, 1, 0, 0),
		draw.Vt(-1, 0.5, 1, 0, 0),
		draw.Vt(-1, -0.5, 1, 0, 0),
		draw.Vt(-0.5, -1, 1, 0, 0),
		draw.Vt(0.5, -1, 1, 0, 0),
		draw.Vt(1, -0.5, 1, 0, 0),
		draw.Vt(1, 0.5, 1, 0, 0),
		draw.Vt(0.5, 1, 1, 0, 0),
		draw.Vt(-0.5, 1, 1, 0, 0),
	)
}

// diagonalStrip is the bevelled ring between a ball's flat cap and its
// octagonal middle; dir is +1 for the upper ring and -1 for the lower.
func diagonalStrip(s draw.Surface, dir float64) {
	lo, hi := 0.5*dir, dir
	s.Shape(draw.Strip,
		draw.Vt(-1, 0.5, lo, 0, 0),
		draw.Vt(-0.5, 0.5, hi, 0, 0),
		draw.Vt(-1, -0.5, lo, 0, 0),
		draw.Vt(-0.5, -0.5, hi, 0, 0),
		draw.Vt(-0.5, -1, lo, 0, 0),
		draw.Vt(0.5, -0.5, hi, 0, 0),
		draw.Vt(0.5, -1, lo, 0, 0),
		draw.Vt(1, -0.5, lo, 0, 0),
		draw.Vt(0.5, -0.5, hi, 0, 0),
		draw.Vt(1, 0.5, lo, 0, 0),
		draw.Vt(0.5, 0.5, hi, 0, 0),
		draw.Vt(0.5, 1, lo, 0, 0),
		draw.Vt(-0.5, 0.5, hi, 0, 0),
		draw.Vt(-0.5, 1, lo, 0, 0),
		draw.Vt(-1, 0.5, lo, 0, 0),
	)
}

// verticalStrip is an octagonal band from z down to -z.
func verticalStrip(s draw.Surface, z float64) {
	ring := [8][3]float64{
		{-1, 0.5, 0}, {-1, -0.5, 1},
		{-0.5, -1, 0}, {0.5, -1, 1},
		{1, -0.5, 0}, {1, 0.5, 1},
		{0.5, 1, 0}, {-0.5, 1, 1},
	}
	verts := make([]draw.Vertex, 0, 17)
	for _, p := range ring {
		verts = append(verts,
			draw.Vt(p[0], p[1], z, p[2], 0),
			draw.Vt(p[0], p[1], -z, p[2], 1),
		)
	}
	verts = append(verts, draw.Vt(-1, 0.5, z, 0, 0))
	s.Shape(draw.Strip, verts...)
}
