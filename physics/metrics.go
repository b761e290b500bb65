package physics

import "github.com/fxi/framepusher/frame"

// TotalOverlap sums absolute boundary violations over the chain using the
// same parent rule as Settling
func TotalOverlap(frames []frame.Frame, canvasWidth, canvasHeight, offset float64) float64 {
	canvas := frame.Frame{Width: canvasWidth, Height: canvasHeight}
	total := 0.0
	for i := range frames {
		parent, off, _ := parentOf(frames, i, &canvas, offset)
		total += InteriorBounds(parent, &frames[i], off).Overlap(&frames[i]).Magnitude()
	}
	return total
}

// KineticEnergy returns sum(vx^2 + vy^2)/2 with unit mass per frame
func KineticEnergy(frames []frame.Frame) float64 {
	e := 0.0
	for i := range frames {
		e += frames[i].VX*frames[i].VX + frames[i].VY*frames[i].VY
	}
	return e / 2
}
