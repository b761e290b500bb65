package physics

import "github.com/fxi/framepusher/frame"

// Bounds is the allowed range of a child frame's top-left corner inside its parent
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// InteriorBounds returns where child's top-left may sit so it stays inside
// parent's border of width offset
// For a child larger than the parent's interior Max < Min; callers apply the
// bounds literally
func InteriorBounds(parent, child *frame.Frame, offset float64) Bounds {
	return Bounds{
		MinX: parent.X + offset,
		MaxX: parent.X + parent.Width - offset - child.Width,
		MinY: parent.Y + offset,
		MaxY: parent.Y + parent.Height - offset - child.Height,
	}
}

// Overlap is the signed boundary violation per side
// Low-side values are positive when violated, high-side values negative
// Adding a violated component to the position restores that side
type Overlap struct {
	Left, Right float64
	Top, Bottom float64
}

// Overlap returns the per-side overlap of child against b
// Non-violated sides are zero
func (b Bounds) Overlap(child *frame.Frame) Overlap {
	var o Overlap
	if d := b.MinX - child.X; d > 0 {
		o.Left = d
	}
	if d := b.MaxX - child.X; d < 0 {
		o.Right = d
	}
	if d := b.MinY - child.Y; d > 0 {
		o.Top = d
	}
	if d := b.MaxY - child.Y; d < 0 {
		o.Bottom = d
	}
	return o
}

// Magnitude returns the sum of absolute overlaps
func (o Overlap) Magnitude() float64 {
	return o.Left - o.Right + o.Top - o.Bottom
}

// parentOf returns the boundary frame for index i and the inner offset to use
// Index 0 is bounded by the static canvas with no border
func parentOf(frames []frame.Frame, i int, canvas *frame.Frame, offset float64) (*frame.Frame, float64, bool) {
	if i == 0 {
		return canvas, 0, false
	}
	return &frames[i-1], offset, true
}
