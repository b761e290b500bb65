package render

import (
	"strings"

	"github.com/charmbracelet/harmonica"
)

// Gauge is a bar whose fill follows its target through a critically damped spring
type Gauge struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	ref    float64
}

// NewGauge creates a gauge updated fps times a second
// ref is the reading that fills half the bar
func NewGauge(fps int, freq, damping, ref float64) *Gauge {
	if ref <= 0 {
		ref = 1
	}
	return &Gauge{
		spring: harmonica.NewSpring(harmonica.FPS(fps), freq, damping),
		ref:    ref,
	}
}

// Fraction maps a non-negative reading to [0, 1)
func (g *Gauge) Fraction(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return v / (v + g.ref)
}

// Update advances the spring toward the reading and returns the smoothed fill
func (g *Gauge) Update(v float64) float64 {
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, g.Fraction(v))
	return g.Level()
}

// Level returns the current fill clamped to [0, 1]
func (g *Gauge) Level() float64 {
	return min(max(g.pos, 0), 1)
}

// Bar renders the current fill as width cells
func (g *Gauge) Bar(width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(g.Level()*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
