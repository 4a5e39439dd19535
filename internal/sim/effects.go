package sim

import (
	"math"

	"shooter/internal/draw"
	"shooter/internal/vmath"
)

func uniform(v float64) vmath.Vec3 { return vmath.Vec3{X: v, Y: v, Z: v} }

// ExplosionEffect is a burst of red, orange and yellow sparks.
func ExplosionEffect() Template {
	return Template{
		Type:         Burst,
		Shape:        Diamond,
		ParticleLife: 400,
		EmitterLife:  400,
		VelRange:     uniform(0.0036),
		AngleRange:   uniform(math.Pi),
		Size:         uniform(0.02),
		SizeRange:    uniform(0.01),
		Texture:      draw.TexSpark,
		Colour:       draw.Hex(0xE0A000),
		ColourRange:  draw.Hex(0x1F5F00),
		Rate:         150,
	}
}

// DebrisEffect is a cluster of grey tumbling triangles that fall under
// gravity, starting from the velocity of whatever they replace.
func DebrisEffect(vel vmath.Vec3) Template {
	return Template{
		Type:         Burst,
		Shape:        Triangle,
		ParticleLife: 3000,
		EmitterLife:  3000,
		PosRange:     uniform(0.1),
		Vel:          vel,
		VelRange:     uniform(0.0018),
		Accel:        vmath.Vec3{Z: -0.00001},
		AngleRange:   uniform(math.Pi),
		RotRange:     uniform(0.006),
		Size:         uniform(0.025),
		SizeRange:    uniform(0.01),
		Colour:       draw.Hex(0x808080),
		ColourRange:  draw.Hex(0x202020),
		Rate:         200,
	}
}

// SparkEffect is the small cyan burst left by a destroyed bullet.
func SparkEffect() Template {
	return Template{
		Type:         Burst,
		Shape:        Triangle,
		ParticleLife: 350,
		EmitterLife:  350,
		VelRange:     uniform(0.0018),
		AngleRange:   uniform(math.Pi),
		Size:         uniform(0.015),
		Texture:      draw.TexSpark,
		Colour:       draw.Hex(0x20C0C0),
		ColourRange:  draw.Hex(0x203F3F),
		Rate:         25,
	}
}

// engineEffect trails behind the player's ship for as long as it lives.
func engineEffect() Template {
	return Template{
		Type:         Sustained,
		Shape:        Diamond,
		ParticleLife: 500,
		EmitterLife:  -1,
		Vel:          vmath.Vec3{X: -0.003, Z: -0.00006},
		VelRange:     vmath.Vec3{X: 0.0012, Y: 0.0006},
		AngleRange:   vmath.Vec3{Z: math.Pi},
		RotRange:     vmath.Vec3{Z: math.Pi / 4 * 0.015},
		Offset:       vmath.Vec3{X: -0.1},
		Size:         vmath.Vec3{X: 0.03, Y: 0.03},
		Texture:      draw.TexSpark,
		Colour:       draw.Hex(0x80EEEE),
		ColourRange:  draw.Hex(0x401111),
		Rate:         120,
	}
}
