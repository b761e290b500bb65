package render

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/guptarohit/asciigraph"

	"github.com/fxi/framepusher/config"
	"github.com/fxi/framepusher/constants"
	"github.com/fxi/framepusher/status"
)

// Counter is one integer metric listed in the panel
type Counter struct {
	Key   string
	Value int64
}

// PanelStats is one sample of the registry for the debug panel
type PanelStats struct {
	State      string
	Audio      string
	Frames     int64
	StateTicks int64
	PointerX   float64
	PointerY   float64
	Energy     float64
	Overlap    float64
	Metrics    int
	Counters   []Counter
	History    []float64
}

// ReadStats samples reg, reusing dst's slices
func ReadStats(reg *status.Registry, dst PanelStats) PanelStats {
	dst.State = reg.Strings.Get(status.KeyState).Load()
	dst.Audio = reg.Strings.Get(status.KeyAudioState).Load()
	dst.Frames = reg.Ints.Get(status.KeyFrames).Load()
	dst.StateTicks = reg.Ints.Get(status.KeyStateTicks).Load()
	dst.PointerX = reg.Floats.Get(status.KeyPointerX).Get()
	dst.PointerY = reg.Floats.Get(status.KeyPointerY).Get()
	dst.Energy = reg.Floats.Get(status.KeyEnergy).Get()
	dst.Overlap = reg.Floats.Get(status.KeyOverlap).Get()

	dst.Metrics = reg.TotalCount()
	dst.Counters = dst.Counters[:0]
	reg.Ints.Range(func(key string, v *atomic.Int64) {
		dst.Counters = append(dst.Counters, Counter{Key: key, Value: v.Load()})
	})

	// A single sample cannot be plotted
	if reg.Energy.Len() > 1 {
		dst.History = reg.Energy.Values(dst.History)
	} else {
		dst.History = dst.History[:0]
	}
	return dst
}

// overlapLine is the index of the overlap gauge in Lines
const overlapLine = 4

// Panel is the debug overlay docked to the right edge
type Panel struct {
	reg     *status.Registry
	cfg     *config.Config
	visible bool
	width   int

	energy  *Gauge
	overlap *Gauge
	stats   PanelStats
}

// NewPanel creates the debug panel reading from reg
func NewPanel(reg *status.Registry, cfg *config.Config) *Panel {
	fps := cfg.Render.FPS
	return &Panel{
		reg:     reg,
		cfg:     cfg,
		visible: cfg.Render.DebugPanel,
		width:   constants.PanelWidth,
		energy:  NewGauge(fps, constants.GaugeSpringFreq, constants.GaugeSpringDamp, constants.GaugeEnergyRef),
		overlap: NewGauge(fps, constants.GaugeSpringFreq, constants.GaugeSpringDamp, constants.GaugeOverlapRef),
	}
}

// IsVisible implements VisibilityToggle
func (p *Panel) IsVisible() bool { return p.visible }

// Toggle flips visibility and returns the new value
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Lines advances the gauges and formats the panel body
func (p *Panel) Lines(st PanelStats) []string {
	p.energy.Update(st.Energy)
	p.overlap.Update(st.Overlap)

	settle := "off"
	if p.cfg.Physics.SettleOnRelease {
		settle = "on"
	}
	audioState := st.Audio
	if audioState == "" {
		audioState = "-"
	}

	lines := []string{
		fmt.Sprintf("state    %s (%d ticks)", st.State, st.StateTicks),
		fmt.Sprintf("frames   %d", st.Frames),
		fmt.Sprintf("pointer  %.1f, %.1f", st.PointerX, st.PointerY),
		fmt.Sprintf("energy   %s %.4f", p.energy.Bar(constants.GaugeWidth), st.Energy),
		fmt.Sprintf("overlap  %s %.3f", p.overlap.Bar(constants.GaugeWidth), st.Overlap),
		fmt.Sprintf("thick %.0f  gap %.0f  handle %.0f",
			p.cfg.Physics.Thickness, p.cfg.Physics.Gap, p.cfg.Physics.HandleSize),
		fmt.Sprintf("damp %.2f  spring %.2f  settle %s",
			p.cfg.Physics.Damping, p.cfg.Physics.SpringStrength, settle),
		fmt.Sprintf("audio    %s", audioState),
		fmt.Sprintf("metrics  %d", st.Metrics),
	}
	for _, c := range st.Counters {
		lines = append(lines, fmt.Sprintf("  %-20s %d", c.Key, c.Value))
	}

	// asciigraph needs at least two points to draw a line
	if len(st.History) > 1 {
		plot := asciigraph.Plot(st.History,
			asciigraph.Height(constants.PlotHeight),
			asciigraph.Width(p.width-12),
			asciigraph.Caption("kinetic energy"),
		)
		lines = append(lines, "")
		lines = append(lines, strings.Split(plot, "\n")...)
	}
	return lines
}

// Render implements Layer
func (p *Panel) Render(ctx Context, screen tcell.Screen) {
	p.stats = ReadStats(p.reg, p.stats)
	lines := p.Lines(p.stats)

	x0 := max(ctx.View.Cols-p.width, 0)
	box := ctx.View.Clip(CellRect{X0: x0, Y0: 0, X1: ctx.View.Cols, Y1: len(lines) + 2})
	bg := tcell.StyleDefault.Background(RGBToTcell(RgbPanelBg))
	fillRect(screen, box, ' ', bg)

	title := bg.Foreground(RGBToTcell(RgbGaugeFill)).Bold(true)
	text := bg.Foreground(RGBToTcell(RgbPanelText))
	dim := bg.Foreground(RGBToTcell(RgbPanelDim))
	warn := bg.Foreground(RGBToTcell(RgbGaugeWarn))

	drawText(screen, x0+1, 0, box.X1, "framepusher", title)
	for i, line := range lines {
		y := i + 1
		if y >= box.Y1 {
			break
		}
		style := text
		switch {
		case i == overlapLine && p.stats.Overlap > p.cfg.Physics.RestOverlap:
			style = warn
		case i > overlapLine:
			style = dim
		}
		drawText(screen, x0+1, y, box.X1, line, style)
	}
}
