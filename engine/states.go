package engine

import "github.com/fxi/framepusher/engine/fsm"

// Simulation states
const (
	StateRest fsm.StateID = iota + 1
	StateDragging
	StateSettling
)

// Simulation events raised by the drag controller
const (
	EventDragStart fsm.Event = iota + 1
	EventDragEnd
)

// buildMachine wires Rest -> Dragging -> (Settling ->) Rest
func buildMachine() *fsm.Machine[*Simulation] {
	m := fsm.NewMachine[*Simulation]()

	rest := m.AddState(StateRest, "Rest")
	rest.OnEnter = append(rest.OnEnter, (*Simulation).stopAll)

	dragging := m.AddState(StateDragging, "Dragging")
	dragging.OnEnter = append(dragging.OnEnter, (*Simulation).stopAll)

	m.AddState(StateSettling, "Settling")

	m.On(StateRest, EventDragStart, StateDragging)
	m.On(StateSettling, EventDragStart, StateDragging)

	m.AddTransition(StateDragging, fsm.Transition[*Simulation]{
		TargetID: StateSettling,
		Event:    EventDragEnd,
		Guard:    (*Simulation).settleOnRelease,
	})
	m.On(StateDragging, EventDragEnd, StateRest)

	m.When(StateSettling, (*Simulation).settled, StateRest)

	return m
}
