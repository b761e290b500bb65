package render

import "github.com/gdamore/tcell/v2"

type layerEntry struct {
	layer    Layer
	priority RenderPriority
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen tcell.Screen
	layers []layerEntry
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		layers: make([]layerEntry, 0, 4),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
// Equal priorities render in registration order
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{layer: l, priority: priority}

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render visible layers, show
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.screen.Clear()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, o.screen)
	}

	o.screen.Show()
}
