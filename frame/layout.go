package frame

// Layout holds the shape parameters the chain is derived from
// Any change to a Layout requires a full store rebuild
type Layout struct {
	CanvasWidth  float64
	CanvasHeight float64
	Thickness    float64
	Gap          float64
	HandleSize   float64
}

// Canvas returns the canvas rectangle anchored at the origin
func (l Layout) Canvas() Rect {
	return Rect{Width: l.CanvasWidth, Height: l.CanvasHeight}
}

// Build derives the frame chain, outermost first and handle last
// Nested frames shrink by Thickness+Gap per side while they can still hold the
// handle inside their border; the handle is centred in the canvas
func (l Layout) Build() []Frame {
	step := l.Thickness + l.Gap
	minSize := l.HandleSize + 2*l.Thickness

	frames := make([]Frame, 0, l.capacityHint(step))
	for i := 0; ; i++ {
		inset := float64(i) * step
		w := l.CanvasWidth - 2*inset
		h := l.CanvasHeight - 2*inset
		if w <= minSize || h <= minSize {
			break
		}
		frames = append(frames, Frame{X: inset, Y: inset, Width: w, Height: h})
		// Non-positive step never shrinks; one outer frame is all it can produce
		if step <= 0 {
			break
		}
	}

	frames = append(frames, Frame{
		X:      (l.CanvasWidth - l.HandleSize) / 2,
		Y:      (l.CanvasHeight - l.HandleSize) / 2,
		Width:  l.HandleSize,
		Height: l.HandleSize,
	})
	return frames
}

func (l Layout) capacityHint(step float64) int {
	if step <= 0 {
		return 2
	}
	side := l.CanvasWidth
	if l.CanvasHeight < side {
		side = l.CanvasHeight
	}
	n := int(side/(2*step)) + 2
	if n < 2 {
		n = 2
	}
	return n
}
