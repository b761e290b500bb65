package status

import "sync/atomic"

// Metric keys published by the simulation and the audio collaborator
const (
	KeyState      = "engine.state"
	KeyTicks      = "engine.ticks"
	KeyStateTicks = "engine.state_ticks"
	KeyFrames     = "frames.count"
	KeyEnergy     = "physics.energy"
	KeyOverlap    = "physics.overlap"
	KeyPushes     = "physics.pushes"
	KeyBumps      = "audio.bumps"
	KeyAudioState = "audio.state"
	KeyPointerX   = "input.pointer_x"
	KeyPointerY   = "input.pointer_y"
)

// Registry is the central metrics facade
// The simulation writes from the tick goroutine; the debug panel reads
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]

	// Energy keeps recent kinetic energy samples for plotting
	Energy *History
}

// NewRegistry creates an initialized Registry
func NewRegistry(historyLen int) *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
		Energy:  NewHistory(historyLen),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
