package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fxi/framepusher/audio"
	"github.com/fxi/framepusher/config"
	"github.com/fxi/framepusher/constants"
	"github.com/fxi/framepusher/engine"
	"github.com/fxi/framepusher/engine/fsm"
	"github.com/fxi/framepusher/input"
	"github.com/fxi/framepusher/render"
	"github.com/fxi/framepusher/status"
)

// app wires the simulation to the terminal, audio and debug panel
// Everything except the event pump runs on the Run goroutine
type app struct {
	cfg    *config.Config
	screen tcell.Screen
	sim    *engine.Simulation
	sound  *audio.SoundManager

	drag  *input.DragController
	mouse *input.MouseAdapter

	statPointerX *status.AtomicFloat
	statPointerY *status.AtomicFloat

	orchestrator *render.Orchestrator
	backdrop     *render.Backdrop
	panel        *render.Panel
	view         render.Viewport
	frame        render.Context
}

func newApp(cfg *config.Config, screen tcell.Screen, sound *audio.SoundManager, reg *status.Registry) (*app, error) {
	cols, rows := screen.Size()
	view := render.NewViewport(cols, rows, cfg.Render.CellAspect)
	w, h := view.CanvasSize()

	sim, err := engine.NewSimulation(cfg, w, h, reg)
	if err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}

	a := &app{
		cfg:          cfg,
		screen:       screen,
		sim:          sim,
		sound:        sound,
		drag:         input.NewDragController(),
		orchestrator: render.NewOrchestrator(screen),
		backdrop:     render.NewBackdrop(cfg.Render.Background),
		panel:        render.NewPanel(reg, cfg),
		view:         view,
		statPointerX: reg.Floats.Get(status.KeyPointerX),
		statPointerY: reg.Floats.Get(status.KeyPointerY),
	}

	a.drag.OnDragStart = sim.DragStart
	a.drag.OnDragEnd = sim.DragEnd
	a.mouse = input.NewMouseAdapter(a.drag.Bind(sim.Store()), cfg.Render.CellAspect)

	sim.OnPush = a.onPush
	sim.OnStateChange = a.onStateChange

	a.orchestrator.Register(a.backdrop, render.PriorityBackground)
	a.orchestrator.Register(render.NewFrameLayer(), render.PriorityFrames)
	a.orchestrator.Register(a.panel, render.PriorityDebug)

	log.Printf("canvas %.1fx%.1f, %d frames", w, h, sim.Store().Len())
	return a, nil
}

// run pumps terminal events into the simulation loop until quit or ctx ends
func (a *app) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		for {
			ev := a.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	drain := func() {
		for {
			select {
			case ev := <-events:
				if !a.handleEvent(ev) {
					cancel()
					return
				}
			default:
				return
			}
		}
	}

	a.draw()
	interval := time.Second / time.Duration(a.cfg.Render.FPS)
	err := a.sim.Run(ctx, interval, drain, a.draw)
	if err == context.Canceled {
		return nil
	}
	return err
}

// handleEvent applies one terminal event; returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.applyIntent(input.KeyIntent(ev))
	case *tcell.EventMouse:
		a.mouse.Handle(ev)
		x, y := a.drag.Pointer()
		a.statPointerX.Set(x)
		a.statPointerY.Set(y)
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *app) applyIntent(intent input.IntentType) bool {
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentToggleDebug:
		a.panel.Toggle()
	case input.IntentToggleBackdrop:
		a.backdrop.Toggle()
	case input.IntentToggleSettle:
		a.sim.SetSettleOnRelease(!a.cfg.Physics.SettleOnRelease)
		log.Printf("settle on release: %v", a.cfg.Physics.SettleOnRelease)
	case input.IntentToggleMute:
		log.Printf("muted: %v", a.sound.ToggleMute())
	case input.IntentThicker:
		a.stepThickness(1)
	case input.IntentThinner:
		a.stepThickness(-1)
	case input.IntentReset:
		a.dropDrag()
		a.sim.Reset()
	}
	return true
}

// stepThickness moves thickness by delta within the key range
// A configured value outside the range only moves back toward it
func (a *app) stepThickness(delta float64) {
	cur := a.cfg.Physics.Thickness
	var t float64
	switch {
	case delta > 0 && cur < constants.MaxThickness:
		t = min(cur+delta, constants.MaxThickness)
	case delta < 0 && cur > constants.MinThickness:
		t = max(cur+delta, constants.MinThickness)
	default:
		return
	}
	a.dropDrag()
	a.sim.SetThickness(t)
	log.Printf("thickness %.0f, %d frames", t, a.sim.Store().Len())
}

func (a *app) resize() {
	cols, rows := a.screen.Size()
	a.view = render.NewViewport(cols, rows, a.cfg.Render.CellAspect)
	a.dropDrag()
	a.sim.Resize(a.view.CanvasSize())
	log.Printf("resize %dx%d cells, %d frames", cols, rows, a.sim.Store().Len())
}

// dropDrag abandons any drag before the store is rebuilt
func (a *app) dropDrag() {
	a.drag.Cancel()
	a.mouse.Reset()
}

func (a *app) draw() {
	a.frame = render.Capture(a.sim, a.cfg.Physics.Thickness, a.view, a.frame)
	a.orchestrator.RenderFrame(a.frame)
}

func (a *app) onPush(index int, dx, dy float64) {
	a.sound.Play(audio.SoundBump, index)
}

func (a *app) onStateChange(from, to fsm.StateID) {
	if st, ok := transitionSound(from, to); ok {
		a.sound.Play(st, 0)
	}
	log.Printf("state -> %s", a.sim.StateName())
}

// transitionSound picks the cue for a state change, if any
func transitionSound(from, to fsm.StateID) (audio.SoundType, bool) {
	switch {
	case from == engine.StateDragging && to == engine.StateSettling:
		return audio.SoundWhoosh, true
	case from == engine.StateSettling && to == engine.StateRest:
		return audio.SoundChime, true
	}
	return 0, false
}
