package sim

import (
	"shooter/internal/draw"
	"shooter/internal/vmath"
)

type EmitterType uint8

const (
	// Burst emits Rate particles on its first update, then switches off.
	Burst EmitterType = iota
	// Sustained emits Rate particles per second until its lifespan elapses.
	Sustained
)

// Template parameterises an emitter. Every *Range field is a symmetric
// random spread around its base value.
type Template struct {
	Type         EmitterType
	Shape        Shape
	ParticleLife float64
	EmitterLife  float64 // < 0 never expires on its own

	PosRange   vmath.Vec3
	Vel        vmath.Vec3
	VelRange   vmath.Vec3
	Accel      vmath.Vec3
	AccelRange vmath.Vec3
	Angle      vmath.Vec3
	AngleRange vmath.Vec3
	Rotation   vmath.Vec3
	RotRange   vmath.Vec3
	Size       vmath.Vec3
	SizeRange  vmath.Vec3
	Offset     vmath.Vec3

	Texture     draw.TextureID
	Colour      draw.RGB
	ColourRange draw.RGB
	Rate        float64
}

type Emitter struct {
	Template
	Position  vmath.Vec3
	ZAngle    float64
	Particles []Particle

	rng     *vmath.Rand
	counter float64
	age     float64
	on      bool
}

func NewEmitter(r *vmath.Rand, tpl Template, pos vmath.Vec3) *Emitter {
	return &Emitter{
		Template: tpl,
		Position: pos,
		rng:      r,
		on:       true,
	}
}

// SwitchedOn reports whether the emitter may still spawn.
func (e *Emitter) SwitchedOn() bool { return e.on }

func (e *Emitter) SwitchOff() { e.on = false }

// Expired reports whether the emitter is off and all its particles are gone.
func (e *Emitter) Expired() bool { return !e.on && len(e.Particles) == 0 }

// Update spawns due particles, then advances and culls the existing ones.
func (e *Emitter) Update(dt float64) {
	if e.on {
		switch e.Type {
		case Burst:
			e.counter += e.Rate
		case Sustained:
			e.counter += e.Rate * dt / 1000
		}
		for e.counter >= 1 {
			e.spawn()
			e.counter--
		}
		if e.Type == Burst {
			e.on = false
		} else if e.EmitterLife >= 0 {
			e.age += dt
			if e.age >= e.EmitterLife {
				e.on = false
			}
		}
	}

	kept := e.Particles[:0]
	for i := range e.Particles {
		p := &e.Particles[i]
		p.Update(dt)
		if !p.Dead {
			kept = append(kept, *p)
		}
	}
	e.Particles = kept
}

func (e *Emitter) spawn() {
	r := e.rng
	off := e.Offset.RotateZ(e.ZAngle)
	p := Particle{
		Body: Body{
			Pos:        e.Position.Add(r.BiRandVec(e.PosRange)).Add(off),
			Vel:        e.Vel.Add(r.BiRandVec(e.VelRange)).RotateZ(e.ZAngle),
			Accel:      e.Accel.Add(r.BiRandVec(e.AccelRange)),
			Angle:      e.Angle.Add(r.BiRandVec(e.AngleRange)),
			Rotation:   e.Rotation.Add(r.BiRandVec(e.RotRange)),
			Size:       e.Size.Add(r.BiRandVec(e.SizeRange)),
			lastMillis: 1,
		},
		Shape:    e.Shape,
		Lifespan: e.ParticleLife,
		Texture:  e.Texture,
		Tint: e.Colour.Add(
			r.BiRandInt(int(e.ColourRange.R)),
			r.BiRandInt(int(e.ColourRange.G)),
			r.BiRandInt(int(e.ColourRange.B)),
		),
	}
	e.Particles = append(e.Particles, p)
}

func (e *Emitter) Draw(s draw.Surface) {
	for i := range e.Particles {
		e.Particles[i].Draw(s)
	}
}
