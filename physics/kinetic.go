package physics

import "github.com/fxi/framepusher/frame"

// Integrate performs one damped semi-implicit Euler step: v = v*damping; p = p + v
// Time step is one tick; there is no delta-time scaling
func Integrate(f *frame.Frame, damping float64) {
	f.VX *= damping
	f.VY *= damping
	f.X += f.VX
	f.Y += f.VY
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(f *frame.Frame, vx, vy float64) {
	f.VX += vx
	f.VY += vy
}

// StopAllMovement zeroes every frame's velocity
// Called when a drag begins so residual settling motion does not fight the drag
func StopAllMovement(frames []frame.Frame) {
	for i := range frames {
		frames[i].VX = 0
		frames[i].VY = 0
	}
}
