package sim

import "shooter/internal/vmath"

// Body is the kinematic state shared by actors and particles.
type Body struct {
	Pos      vmath.Vec3
	Vel      vmath.Vec3
	Accel    vmath.Vec3
	Angle    vmath.Vec3
	Rotation vmath.Vec3
	Size     vmath.Vec3
	Radius   float64

	// lastMillis is the elapsed time of the most recent update.
	lastMillis float64
}

func newBody(size vmath.Vec3, radius float64) Body {
	return Body{Size: size, Radius: radius, lastMillis: 1}
}

// ReportedVel is the velocity divided by the last frame's elapsed time. Debris
// spawned where an actor died inherits it.
func (b *Body) ReportedVel() vmath.Vec3 {
	if b.lastMillis <= 0 {
		return b.Vel
	}
	return b.Vel.Scale(1 / b.lastMillis)
}
