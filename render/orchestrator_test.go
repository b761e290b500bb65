package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type recordLayer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordLayer) Render(ctx Context, screen tcell.Screen) { *r.log = append(*r.log, r.name) }
func (r *recordLayer) IsVisible() bool                         { return r.visible }

func newTestScreen(t *testing.T, cols, rows int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	var log []string
	o := NewOrchestrator(screen)

	o.Register(&recordLayer{name: "panel", log: &log, visible: true}, PriorityDebug)
	o.Register(&recordLayer{name: "frames", log: &log, visible: true}, PriorityFrames)
	o.Register(&recordLayer{name: "backdrop", log: &log, visible: true}, PriorityBackground)
	o.Register(&recordLayer{name: "frames2", log: &log, visible: true}, PriorityFrames)

	o.RenderFrame(Context{})

	want := []string{"backdrop", "frames", "frames2", "panel"}
	if len(log) != len(want) {
		t.Fatalf("rendered %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, log[i], want[i])
		}
	}
}

func TestOrchestratorSkipsHidden(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	var log []string
	o := NewOrchestrator(screen)

	hidden := &recordLayer{name: "hidden", log: &log}
	o.Register(hidden, PriorityBackground)
	o.Register(&recordLayer{name: "shown", log: &log, visible: true}, PriorityFrames)

	o.RenderFrame(Context{})
	if len(log) != 1 || log[0] != "shown" {
		t.Fatalf("rendered %v, want [shown]", log)
	}

	hidden.visible = true
	log = log[:0]
	o.RenderFrame(Context{})
	if len(log) != 2 {
		t.Fatalf("rendered %v after unhiding", log)
	}
}
