package physics

import (
	"github.com/fxi/framepusher/constants"
	"github.com/fxi/framepusher/frame"
)

// Settling is the spring-mode engine that relaxes a released chain back
// inside the canvas and inside each parent's border
type Settling struct {
	Offset         float64
	Damping        float64
	SpringStrength float64
}

// Apply advances every frame by one tick
//
// All frames integrate first. Boundary springs are then evaluated innermost
// first: a violating frame is pushed back by overlap*SpringStrength and its
// parent receives half that impulse in the opposite direction. The outermost
// frame springs against the static canvas, which takes no reaction.
func (s *Settling) Apply(frames []frame.Frame, canvasWidth, canvasHeight float64) {
	for i := range frames {
		Integrate(&frames[i], s.Damping)
	}

	canvas := frame.Frame{Width: canvasWidth, Height: canvasHeight}
	k := s.SpringStrength

	for i := len(frames) - 1; i >= 0; i-- {
		f := &frames[i]
		parent, offset, hasParent := parentOf(frames, i, &canvas, s.Offset)

		o := InteriorBounds(parent, f, offset).Overlap(f)
		ApplyImpulse(f, (o.Left+o.Right)*k, (o.Top+o.Bottom)*k)
		if hasParent {
			r := k * constants.SettleReactionFactor
			ApplyImpulse(parent, -(o.Left+o.Right)*r, -(o.Top+o.Bottom)*r)
		}
	}
}
