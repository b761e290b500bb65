package physics

import (
	"math"
	"testing"

	"github.com/fxi/framepusher/frame"
)

const epsilon = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestSettling_CanvasSpring(t *testing.T) {
	frames := []frame.Frame{{X: -10, Y: 20, Width: 50, Height: 50}}
	s := Settling{Offset: 2, Damping: 0.9, SpringStrength: 0.1}

	s.Apply(frames, 100, 100)

	// Canvas bound has no inner offset: overlap is 0-(-10) = 10
	if !approx(frames[0].VX, 1) {
		t.Errorf("Expected VX=1, got %v", frames[0].VX)
	}
	if frames[0].VY != 0 {
		t.Errorf("Expected VY=0 for in-bounds axis, got %v", frames[0].VY)
	}
	// Position integrates before the spring, so it is unchanged on the first tick
	if frames[0].X != -10 {
		t.Errorf("Expected X=-10 after first tick, got %v", frames[0].X)
	}
}

func TestSettling_ParentReaction(t *testing.T) {
	frames := []frame.Frame{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: -5, Y: 10, Width: 20, Height: 20},
	}
	s := Settling{Offset: 2, Damping: 0.9, SpringStrength: 0.1}

	s.Apply(frames, 100, 100)

	// child minX = 0+2, overlap 7
	if !approx(frames[1].VX, 0.7) {
		t.Errorf("Expected child VX=0.7, got %v", frames[1].VX)
	}
	if !approx(frames[0].VX, -0.35) {
		t.Errorf("Expected parent VX=-0.35, got %v", frames[0].VX)
	}
	if frames[0].VY != 0 || frames[1].VY != 0 {
		t.Errorf("Expected no vertical impulse, got parent %v child %v", frames[0].VY, frames[1].VY)
	}
}

func TestSettling_HighSideViolation(t *testing.T) {
	frames := []frame.Frame{{X: 60, Y: 70, Width: 50, Height: 50}}
	s := Settling{Damping: 0.9, SpringStrength: 0.1}

	s.Apply(frames, 100, 100)

	// maxX = 50, overlap -10; maxY = 50, overlap -20
	if !approx(frames[0].VX, -1) || !approx(frames[0].VY, -2) {
		t.Errorf("Expected velocity (-1, -2), got (%v, %v)", frames[0].VX, frames[0].VY)
	}
}

func TestSettling_Integration(t *testing.T) {
	frames := []frame.Frame{{X: 10, Y: 10, Width: 10, Height: 10, VX: 2, VY: -1}}
	s := Settling{Damping: 0.5, SpringStrength: 0.1}

	s.Apply(frames, 100, 100)

	if !approx(frames[0].VX, 1) || !approx(frames[0].VY, -0.5) {
		t.Errorf("Expected damped velocity (1, -0.5), got (%v, %v)", frames[0].VX, frames[0].VY)
	}
	if !approx(frames[0].X, 11) || !approx(frames[0].Y, 9.5) {
		t.Errorf("Expected position (11, 9.5), got (%v, %v)", frames[0].X, frames[0].Y)
	}
}

func TestSettling_Converges(t *testing.T) {
	l := frame.Layout{CanvasWidth: 60, CanvasHeight: 30, Thickness: 2, Gap: 1, HandleSize: 4}
	frames := l.Build()

	// Simulate the end of a drag: handle pinned to the canvas corner and the
	// chain pushed out of the canvas by containment
	h := &frames[len(frames)-1]
	h.X, h.Y = l.CanvasWidth-h.Width, l.CanvasHeight-h.Height
	ApplyContainment(frames, l.Thickness)

	start := TotalOverlap(frames, l.CanvasWidth, l.CanvasHeight, l.Thickness)
	if start <= 0 {
		t.Fatalf("Expected initial canvas violation, got overlap %v", start)
	}

	s := Settling{Offset: l.Thickness, Damping: 0.9, SpringStrength: 0.1}
	for range 3000 {
		s.Apply(frames, l.CanvasWidth, l.CanvasHeight)
	}

	if end := TotalOverlap(frames, l.CanvasWidth, l.CanvasHeight, l.Thickness); end > 1e-6 {
		t.Errorf("Expected overlap to converge to 0, got %v (start %v)", end, start)
	}
	if ke := KineticEnergy(frames); ke > 1e-9 {
		t.Errorf("Expected velocities to decay, kinetic energy %v", ke)
	}
}

func TestSettling_OverlapShrinks(t *testing.T) {
	frames := []frame.Frame{
		{X: 15, Y: 0, Width: 40, Height: 20},
		{X: 25, Y: 5, Width: 20, Height: 10},
	}
	s := Settling{Offset: 2, Damping: 0.9, SpringStrength: 0.1}

	// Per-window peak overlap must not grow; individual ticks may oscillate
	const window = 100
	prevPeak := TotalOverlap(frames, 40, 20, 2)
	for w := 0; w < 5; w++ {
		peak := 0.0
		for range window {
			s.Apply(frames, 40, 20)
			peak = math.Max(peak, TotalOverlap(frames, 40, 20, 2))
		}
		if peak > prevPeak+epsilon {
			t.Errorf("Peak overlap grew in window %d: %v -> %v", w, prevPeak, peak)
		}
		prevPeak = peak
	}
	if prevPeak > 1e-3 {
		t.Errorf("Expected near-zero overlap in last window, got %v", prevPeak)
	}
}

func TestSettling_SizesUnchanged(t *testing.T) {
	frames := threeFrameChain()
	frames[2].X = 500
	s := Settling{Offset: 20, Damping: 0.9, SpringStrength: 0.3}
	for range 50 {
		s.Apply(frames, 300, 300)
	}

	orig := threeFrameChain()
	for i := range frames {
		if frames[i].Width != orig[i].Width || frames[i].Height != orig[i].Height {
			t.Errorf("frame %d size changed: %+v", i, frames[i])
		}
	}
}

func TestStopAllMovement(t *testing.T) {
	frames := []frame.Frame{
		{VX: 3, VY: -2},
		{VX: -0.5, VY: 7},
		{VX: 0, VY: 0},
	}
	StopAllMovement(frames)
	for i, f := range frames {
		if f.VX != 0 || f.VY != 0 {
			t.Errorf("frame %d: expected zero velocity, got (%v, %v)", i, f.VX, f.VY)
		}
	}
}

func TestTotalOverlap(t *testing.T) {
	frames := []frame.Frame{
		{X: -5, Y: 0, Width: 100, Height: 100},
		{X: 0, Y: 90, Width: 20, Height: 20},
	}
	// outer: left 5 against canvas
	// inner: minX = -5+2 = -3 ok; maxY = 0+100-2-20 = 78, overlap 12
	got := TotalOverlap(frames, 100, 100, 2)
	if !approx(got, 17) {
		t.Errorf("Expected total overlap 17, got %v", got)
	}
}

func TestKineticEnergy(t *testing.T) {
	frames := []frame.Frame{{VX: 3, VY: 4}, {VX: 1}}
	if got := KineticEnergy(frames); !approx(got, 13) {
		t.Errorf("Expected 13, got %v", got)
	}
}
