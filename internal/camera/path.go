package camera

import (
	"math"

	"shooter/internal/vmath"
	"shooter/internal/world"
)

const (
	orthoScreenTiles = 20
	OrthoWidth       = orthoScreenTiles * world.TileSize

	Near = 0.01
	Far  = 5.0

	// HFov is the horizontal field of view of the perspective projection.
	HFov = 75 * math.Pi / 180

	eyeYEnd = -1.35
	eyeZEnd = 2.4
)

// Pose is a camera placement looking at the origin. DepthScale squashes
// world Z and is applied after the view transform.
type Pose struct {
	Eye        vmath.Vec3
	Up         vmath.Vec3
	DepthScale float64
}

// Path holds the derived constants of the ortho to perspective camera path.
type Path struct {
	ZStart float64    // eye distance that frames OrthoWidth at HFov
	UpEnd  vmath.Vec3 // up vector square to the final line of sight
}

// NewPath derives the path constants.
func NewPath() Path {
	lookAt := vmath.Vec3{Y: -eyeYEnd, Z: -eyeZEnd}
	side := lookAt.Cross(vmath.Vec3{Y: 1})
	return Path{
		ZStart: OrthoWidth / (2 * math.Tan(HFov/2)),
		UpEnd:  side.Cross(lookAt),
	}
}

// Start is the stable ortho pose.
func (p Path) Start() Pose {
	return Pose{Eye: vmath.Vec3{Z: p.ZStart}, Up: vmath.Vec3{Y: 1}, DepthScale: 1}
}

// End is the stable perspective pose.
func (p Path) End() Pose {
	return Pose{Eye: vmath.Vec3{Y: eyeYEnd, Z: eyeZEnd}, Up: p.UpEnd, DepthScale: 1}
}

// Pose eases along the path; t=0 imitates the ortho camera, t=1 is the
// perspective camera.
func (p Path) Pose(t float64) Pose {
	return Pose{
		Eye: vmath.Vec3{
			Y: vmath.ExpInterp(t, 0, eyeYEnd),
			Z: vmath.ExpInterp(1-t, eyeZEnd, p.ZStart),
		},
		Up: vmath.Vec3{
			X: vmath.Lerp(t, 0, p.UpEnd.X),
			Y: vmath.ExpInterp(t, 1, p.UpEnd.Y),
			Z: vmath.ExpInterp(1-t, p.UpEnd.Z, 0),
		},
		DepthScale: t * t,
	}
}

// OrthoProjection is y-up and OrthoWidth wide.
func OrthoProjection(width, height int) vmath.Mat4 {
	halfW := OrthoWidth / 2
	halfH := halfW * float64(height) / float64(width)
	return vmath.Ortho(-halfW, halfW, -halfH, halfH, Near, Far)
}

// PerspectiveProjection keeps HFov horizontally for any aspect.
func PerspectiveProjection(width, height int) vmath.Mat4 {
	w, h := float64(width), float64(height)
	vFov := 2 * math.Atan((0.5*h)/(0.5*w/math.Tan(HFov/2)))
	return vmath.Perspective(vFov, w/h, Near, Far)
}

// Matrices returns the projection and view matrices for v on a
// width×height viewport.
func (p Path) Matrices(v View, width, height int) (proj, view vmath.Mat4) {
	var pose Pose
	switch {
	case v.Interpolating:
		pose = p.Pose(v.T)
		proj = PerspectiveProjection(width, height)
	case v.Ortho:
		pose = p.Start()
		proj = OrthoProjection(width, height)
	default:
		pose = p.End()
		proj = PerspectiveProjection(width, height)
	}
	view = vmath.LookAt(pose.Eye, vmath.Vec3{}, pose.Up).Mul(vmath.Scale(1, 1, pose.DepthScale))
	return proj, view
}
