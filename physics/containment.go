package physics

import "github.com/fxi/framepusher/frame"

// Containment is the drag-mode engine: parents are clamped so no child
// protrudes past its parent's border
type Containment struct {
	// Offset is the frame thickness each parent reserves inside itself
	Offset float64

	// OnPush, if set, is called once per parent moved during Apply with its displacement
	OnPush func(index int, dx, dy float64)
}

// Apply corrects every parent against its child, handle's parent first
// Only X and Y of non-handle frames change
//
// One pass per tick carries the handle's motion all the way out: each parent
// is compared against a child already corrected earlier in the same pass.
// There is no iterative relaxation; a tick displacement larger than the chain
// can absorb is resolved over subsequent ticks.
func (c *Containment) Apply(frames []frame.Frame) {
	for i := len(frames) - 2; i >= 0; i-- {
		parent := &frames[i]
		child := &frames[i+1]

		ox, oy := parent.X, parent.Y
		clampParent(parent, child, c.Offset)

		if c.OnPush != nil && (parent.X != ox || parent.Y != oy) {
			c.OnPush(i, parent.X-ox, parent.Y-oy)
		}
	}
}

// ApplyContainment runs a Containment pass with the given offset
func ApplyContainment(frames []frame.Frame, offset float64) {
	c := Containment{Offset: offset}
	c.Apply(frames)
}

// clampParent applies the four edge rules literally, including when child is
// larger than parent's interior
func clampParent(parent, child *frame.Frame, offset float64) {
	if left := child.X - offset; parent.X > left {
		parent.X = left
	}
	if right := child.X + child.Width - parent.Width + offset; parent.X < right {
		parent.X = right
	}
	if top := child.Y - offset; parent.Y > top {
		parent.Y = top
	}
	if bottom := child.Y + child.Height - parent.Height + offset; parent.Y < bottom {
		parent.Y = bottom
	}
}
