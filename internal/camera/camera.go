// Package camera drives the switch between the flat orthographic view and the
// tilted perspective view.
package camera

// SwitchLength is how long a projection switch takes, in milliseconds.
const SwitchLength = 1000.0

// idle marks a timer with no projection applied yet.
const idle = -1.0

// View is what a host needs to set up its projection for the frame.
type View struct {
	// Interpolating is true while a switch is in progress; T is then the
	// position along the path, 0 at ortho and 1 at perspective.
	Interpolating bool
	T             float64
	// Ortho selects the stable projection when not interpolating.
	Ortho bool
}

// Camera is the projection state machine. Exactly one of stable,
// switching to frustum and switching to ortho holds at a time.
type Camera struct {
	ortho     bool
	toFrustum bool
	toOrtho   bool
	timer     float64

	view View
}

// New returns a camera in stable ortho mode awaiting its first Update.
func New() *Camera {
	return &Camera{ortho: true, timer: idle, view: View{Ortho: true}}
}

// IsUsingOrtho reports whether the camera is settled in ortho mode.
func (c *Camera) IsUsingOrtho() bool {
	return c.ortho && !c.toOrtho && !c.toFrustum && c.timer >= 0
}

// Switching reports whether a transition is in progress.
func (c *Camera) Switching() bool { return c.toOrtho || c.toFrustum }

func (c *Camera) Timer() float64 { return c.timer }

// View is the projection chosen by the most recent Update. It stays put
// between updates, as a host's projection would.
func (c *Camera) View() View { return c.view }

// Update advances a switch in progress by dt milliseconds. The fraction is
// sampled before the timer moves, so the last interpolated frame is just
// short of the end of the path; the stable projection lands on the frame
// after.
func (c *Camera) Update(dt float64) {
	switch {
	case c.toFrustum:
		c.view = View{Interpolating: true, T: c.timer / SwitchLength}
		if c.timer += dt; c.timer >= SwitchLength {
			c.timer = idle
			c.toFrustum = false
			c.ortho = false
		}
	case c.toOrtho:
		c.view = View{Interpolating: true, T: 1 - c.timer/SwitchLength}
		if c.timer += dt; c.timer >= SwitchLength {
			c.timer = idle
			c.toOrtho = false
			c.ortho = true
		}
	case c.timer < 0:
		c.timer = 0
		c.view = View{Ortho: c.ortho}
	}
}

// Toggle starts a switch to the other projection. It does nothing while a
// switch is already running.
func (c *Camera) Toggle() {
	if c.Switching() {
		return
	}
	c.ortho = !c.ortho
	c.timer = 0
	if c.ortho {
		c.toOrtho = true
	} else {
		c.toFrustum = true
	}
}
