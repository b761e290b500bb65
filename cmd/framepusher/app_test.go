package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fxi/framepusher/audio"
	"github.com/fxi/framepusher/config"
	"github.com/fxi/framepusher/engine"
	"github.com/fxi/framepusher/engine/fsm"
	"github.com/fxi/framepusher/status"
)

// newTestAppWith builds an app like newTestApp after mutate adjusts the defaults
func newTestAppWith(t *testing.T, mutate func(*config.Config)) (*app, *status.Registry) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Audio.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}
	reg := status.NewRegistry(16)

	a, err := newApp(cfg, screen, audio.NewSoundManager(cfg.Audio, reg), reg)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	return a, reg
}

// newTestApp builds an app on a 40x20 simulation screen: a 20x20 canvas at
// the default aspect, holding two rings and a handle at cells 16..24 x 8..12
func newTestApp(t *testing.T) *app {
	t.Helper()
	a, _ := newTestAppWith(t, nil)
	return a
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestAppInitialLayout(t *testing.T) {
	a := newTestApp(t)
	if n := a.sim.Store().Len(); n != 3 {
		t.Fatalf("got %d frames, want 3", n)
	}
	if a.sim.State() != engine.StateRest {
		t.Errorf("initial state %s, want Rest", a.sim.StateName())
	}
}

func TestAppMouseDrag(t *testing.T) {
	a := newTestApp(t)

	a.handleEvent(tcell.NewEventMouse(18, 9, tcell.Button1, tcell.ModNone))
	if a.sim.State() != engine.StateDragging {
		t.Fatalf("press on handle: state %s, want Dragging", a.sim.StateName())
	}

	a.handleEvent(tcell.NewEventMouse(30, 9, tcell.Button1, tcell.ModNone))
	a.sim.Tick()
	if h := a.sim.Store().Handle(); h.X != 14 || h.Y != 8 {
		t.Errorf("handle at (%v, %v), want (14, 8)", h.X, h.Y)
	}

	a.handleEvent(tcell.NewEventMouse(30, 9, tcell.ButtonNone, tcell.ModNone))
	if a.sim.State() != engine.StateSettling {
		t.Errorf("release: state %s, want Settling", a.sim.StateName())
	}
}

func TestAppPressOffHandle(t *testing.T) {
	a := newTestApp(t)
	a.handleEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	if a.sim.State() != engine.StateRest {
		t.Errorf("press off handle: state %s, want Rest", a.sim.StateName())
	}
}

func TestAppKeys(t *testing.T) {
	a := newTestApp(t)

	if a.handleEvent(key('+')); a.cfg.Physics.Thickness != 3 {
		t.Errorf("thickness after '+' = %v, want 3", a.cfg.Physics.Thickness)
	}
	for range 10 {
		a.handleEvent(key('-'))
	}
	if a.cfg.Physics.Thickness != 1 {
		t.Errorf("thickness floor = %v, want 1", a.cfg.Physics.Thickness)
	}

	settle := a.cfg.Physics.SettleOnRelease
	a.handleEvent(key('s'))
	if a.cfg.Physics.SettleOnRelease == settle {
		t.Error("'s' did not toggle settle on release")
	}

	panel := a.panel.IsVisible()
	a.handleEvent(key('d'))
	if a.panel.IsVisible() == panel {
		t.Error("'d' did not toggle the panel")
	}

	backdrop := a.backdrop.IsVisible()
	a.handleEvent(key('b'))
	if a.backdrop.IsVisible() == backdrop {
		t.Error("'b' did not toggle the backdrop")
	}

	if !a.handleEvent(key('m')) || !a.sound.Muted() {
		t.Error("'m' should mute and keep running")
	}

	if a.handleEvent(key('q')) {
		t.Error("'q' should quit")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}

func TestAppResetCancelsDrag(t *testing.T) {
	a := newTestApp(t)
	a.handleEvent(tcell.NewEventMouse(18, 9, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(30, 9, tcell.Button1, tcell.ModNone))
	a.sim.Tick()

	a.handleEvent(key('r'))
	if a.drag.Dragging() || a.sim.State() != engine.StateRest {
		t.Errorf("reset left drag active: dragging=%v state=%s", a.drag.Dragging(), a.sim.StateName())
	}
	if h := a.sim.Store().Handle(); h.X != 8 {
		t.Errorf("handle X after reset = %v, want 8", h.X)
	}
}

func TestAppResize(t *testing.T) {
	a := newTestApp(t)
	a.screen.SetSize(60, 30)
	a.handleEvent(tcell.NewEventResize(60, 30))

	c := a.sim.Store().Canvas()
	if c.Width != 30 || c.Height != 30 {
		t.Errorf("canvas after resize = %vx%v, want 30x30", c.Width, c.Height)
	}
}

func TestAppDraw(t *testing.T) {
	a := newTestApp(t)
	a.draw()

	_, _, style, _ := a.screen.GetContent(18, 9)
	if _, bg, _ := style.Decompose(); bg == tcell.ColorDefault {
		t.Error("handle cell not painted")
	}
}

func TestAppRunStopsOnCancel(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.run(ctx) }()

	select {
	case err := <-done:
		if err != context.DeadlineExceeded {
			t.Errorf("run returned %v, want deadline exceeded", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancellation")
	}
}

func TestAppThicknessOutsideKeyRange(t *testing.T) {
	a, _ := newTestAppWith(t, func(c *config.Config) { c.Physics.Thickness = 8 })

	a.handleEvent(key('+'))
	if a.cfg.Physics.Thickness != 8 {
		t.Errorf("'+' above the key range changed thickness to %v", a.cfg.Physics.Thickness)
	}
	a.handleEvent(key('-'))
	if a.cfg.Physics.Thickness != 7 {
		t.Errorf("'-' from 8 = %v, want 7", a.cfg.Physics.Thickness)
	}

	b, _ := newTestAppWith(t, func(c *config.Config) { c.Physics.Thickness = 0.5 })
	b.handleEvent(key('-'))
	if b.cfg.Physics.Thickness != 0.5 {
		t.Errorf("'-' below the key range changed thickness to %v", b.cfg.Physics.Thickness)
	}
	b.handleEvent(key('+'))
	if b.cfg.Physics.Thickness != 1.5 {
		t.Errorf("'+' from 0.5 = %v, want 1.5", b.cfg.Physics.Thickness)
	}
}

func TestAppPublishesPointer(t *testing.T) {
	a, reg := newTestAppWith(t, nil)
	a.handleEvent(tcell.NewEventMouse(9, 4, tcell.ButtonNone, tcell.ModNone))

	// Column 9 at aspect 2 is canvas x 4.75; row 4 is y 4.5
	x := reg.Floats.Get(status.KeyPointerX).Get()
	y := reg.Floats.Get(status.KeyPointerY).Get()
	if x != 4.75 || y != 4.5 {
		t.Errorf("published pointer (%v, %v), want (4.75, 4.5)", x, y)
	}
}

func TestTransitionSound(t *testing.T) {
	tests := []struct {
		name     string
		from, to fsm.StateID
		want     audio.SoundType
		ok       bool
	}{
		{"release into settling", engine.StateDragging, engine.StateSettling, audio.SoundWhoosh, true},
		{"settled", engine.StateSettling, engine.StateRest, audio.SoundChime, true},
		{"release without settling", engine.StateDragging, engine.StateRest, 0, false},
		{"grab", engine.StateRest, engine.StateDragging, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := transitionSound(tt.from, tt.to)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("transitionSound = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
