package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fxi/framepusher/config"
	"github.com/fxi/framepusher/engine/fsm"
	"github.com/fxi/framepusher/frame"
	"github.com/fxi/framepusher/physics"
	"github.com/fxi/framepusher/status"
)

// Simulation is the tick driver: it owns the frame store and selects the
// physics engine for each tick from the drag state
// Not safe for concurrent use; input, Tick and rendering run on one goroutine
type Simulation struct {
	cfg   *config.Config
	store *frame.Store

	containment physics.Containment
	settling    physics.Settling
	machine     *fsm.Machine[*Simulation]

	ticks  int64
	pushes int64

	// OnPush, if set, observes every parent displaced by containment
	OnPush func(index int, dx, dy float64)
	// OnStateChange, if set, observes every state transition
	OnStateChange func(from, to fsm.StateID)

	// Cached metric pointers
	statusReg   *status.Registry
	statTicks   *atomic.Int64
	statInState *atomic.Int64
	statPushes  *atomic.Int64
	statFrames  *atomic.Int64
	statEnergy  *status.AtomicFloat
	statOverlap *status.AtomicFloat
	statState   *status.AtomicString
}

// NewSimulation builds the store for the canvas and enters Rest
// reg may be nil when metrics are not needed
func NewSimulation(cfg *config.Config, canvasWidth, canvasHeight float64, reg *status.Registry) (*Simulation, error) {
	if reg == nil {
		reg = status.NewRegistry(1)
	}

	s := &Simulation{
		cfg:         cfg,
		store:       frame.NewStore(cfg.Layout(canvasWidth, canvasHeight)),
		machine:     buildMachine(),
		statusReg:   reg,
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statInState: reg.Ints.Get(status.KeyStateTicks),
		statPushes:  reg.Ints.Get(status.KeyPushes),
		statFrames:  reg.Ints.Get(status.KeyFrames),
		statEnergy:  reg.Floats.Get(status.KeyEnergy),
		statOverlap: reg.Floats.Get(status.KeyOverlap),
		statState:   reg.Strings.Get(status.KeyState),
	}
	s.applyPhysicsConfig()
	s.containment.OnPush = s.handlePush
	s.machine.OnTransition = s.handleTransition

	if err := s.machine.Init(s, StateRest); err != nil {
		return nil, fmt.Errorf("init state machine: %w", err)
	}
	s.publish()
	return s, nil
}

func (s *Simulation) applyPhysicsConfig() {
	p := s.cfg.Physics
	s.containment.Offset = p.Thickness
	s.settling = physics.Settling{
		Offset:         p.Thickness,
		Damping:        p.Damping,
		SpringStrength: p.SpringStrength,
	}
}

// Store returns the frame store; callers must stay on the simulation goroutine
func (s *Simulation) Store() *frame.Store { return s.store }

// Config returns the live configuration
func (s *Simulation) Config() *config.Config { return s.cfg }

// State returns the active state
func (s *Simulation) State() fsm.StateID { return s.machine.Active() }

// StateName returns the active state's name
func (s *Simulation) StateName() string { return s.machine.ActiveName() }

// Dragging reports whether the handle is currently being dragged
func (s *Simulation) Dragging() bool { return s.machine.Active() == StateDragging }

// Ticks returns the number of Tick calls since construction
func (s *Simulation) Ticks() int64 { return s.ticks }

// TicksInState returns ticks since the last state change
func (s *Simulation) TicksInState() int { return s.machine.TicksInState() }

// DragStart notifies the simulation that a drag began
func (s *Simulation) DragStart() { s.machine.HandleEvent(s, EventDragStart) }

// DragEnd notifies the simulation that a drag ended
func (s *Simulation) DragEnd() { s.machine.HandleEvent(s, EventDragEnd) }

// Tick advances exactly one physics step
// Dragging runs containment, Settling runs the spring engine, Rest is idle
func (s *Simulation) Tick() {
	frames := s.store.Frames()
	canvas := s.store.Canvas()

	switch s.machine.Active() {
	case StateDragging:
		s.containment.Apply(frames)
	case StateSettling:
		s.settling.Apply(frames, canvas.Width, canvas.Height)
	}

	s.ticks++
	s.machine.Update(s)
	s.publish()
}

// Resize rebuilds the store for a new canvas and returns to Rest
func (s *Simulation) Resize(canvasWidth, canvasHeight float64) {
	s.rebuild(s.cfg.Layout(canvasWidth, canvasHeight))
}

// SetThickness changes frame thickness, rebuilding the store
func (s *Simulation) SetThickness(thickness float64) {
	s.cfg.Physics.Thickness = thickness
	s.applyPhysicsConfig()
	c := s.store.Canvas()
	s.rebuild(s.cfg.Layout(c.Width, c.Height))
}

// Reset rebuilds the store with the current layout
func (s *Simulation) Reset() {
	s.rebuild(s.store.Layout())
}

// SetSettleOnRelease toggles whether a drag release settles or stops dead
func (s *Simulation) SetSettleOnRelease(on bool) {
	s.cfg.Physics.SettleOnRelease = on
}

func (s *Simulation) rebuild(l frame.Layout) {
	s.store.Rebuild(l)
	s.statusReg.Energy.Reset()
	if s.machine.Active() != StateRest {
		// Force cannot fail for a registered state
		_ = s.machine.Force(s, StateRest)
	}
	s.publish()
}

// Run calls before, Tick and after once per interval until ctx is cancelled
// before applies queued input, after renders; either may be nil
// State is left as-is on cancellation
func (s *Simulation) Run(ctx context.Context, interval time.Duration, before, after func()) error {
	if interval <= 0 {
		return fmt.Errorf("tick interval %v must be positive", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Both channels may be ready; cancellation wins
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if before != nil {
				before()
			}
			// before may cancel (quit key); skip the rest of the frame
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.Tick()
			if after != nil {
				after()
			}
		}
	}
}

// --- state machine actions and guards ---

func (s *Simulation) stopAll() {
	physics.StopAllMovement(s.store.Frames())
}

func (s *Simulation) settleOnRelease() bool {
	return s.cfg.Physics.SettleOnRelease
}

func (s *Simulation) settled() bool {
	frames := s.store.Frames()
	c := s.store.Canvas()
	return physics.KineticEnergy(frames) < s.cfg.Physics.RestEnergy &&
		physics.TotalOverlap(frames, c.Width, c.Height, s.cfg.Physics.Thickness) < s.cfg.Physics.RestOverlap
}

func (s *Simulation) handlePush(index int, dx, dy float64) {
	s.pushes++
	if s.OnPush != nil {
		s.OnPush(index, dx, dy)
	}
}

func (s *Simulation) handleTransition(from, to fsm.StateID) {
	s.statState.Store(s.machine.ActiveName())
	if s.OnStateChange != nil {
		s.OnStateChange(from, to)
	}
}

func (s *Simulation) publish() {
	frames := s.store.Frames()
	c := s.store.Canvas()
	energy := physics.KineticEnergy(frames)

	s.statTicks.Store(s.ticks)
	s.statInState.Store(int64(s.TicksInState()))
	s.statPushes.Store(s.pushes)
	s.statFrames.Store(int64(len(frames)))
	s.statEnergy.Set(energy)
	s.statOverlap.Set(physics.TotalOverlap(frames, c.Width, c.Height, s.cfg.Physics.Thickness))
	s.statState.Store(s.machine.ActiveName())
	s.statusReg.Energy.Push(energy)
}
