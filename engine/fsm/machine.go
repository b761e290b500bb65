package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	for id, n := range m.nodes {
		for _, t := range n.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("state %d references missing target %d", id, t.TargetID)
			}
		}
	}

	m.activeStateID = initialID
	m.ticksInState = 0
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Update runs OnUpdate actions of the active state, then evaluates tick transitions
func (m *Machine[T]) Update(ctx T) {
	if m.activeStateID == StateNone {
		return
	}

	m.ticksInState++

	node := m.nodes[m.activeStateID]
	for _, action := range node.OnUpdate {
		action(ctx)
	}

	m.fire(ctx, node, EventTick)
}

// HandleEvent routes an external event to the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, ev Event) bool {
	if m.activeStateID == StateNone || ev == EventTick {
		return false
	}
	return m.fire(ctx, m.nodes[m.activeStateID], ev)
}

// fire takes the first matching transition whose guard passes
func (m *Machine[T]) fire(ctx T, node *Node[T], ev Event) bool {
	for _, trans := range node.Transitions {
		if trans.Event != ev {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// transition performs state change; self-transitions re-run exit and enter
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	from := m.activeStateID

	for _, action := range m.nodes[from].OnExit {
		action(ctx)
	}

	m.activeStateID = targetID
	m.ticksInState = 0

	for _, action := range m.nodes[targetID].OnEnter {
		action(ctx)
	}

	if m.OnTransition != nil {
		m.OnTransition(from, targetID)
	}
}

// Force jumps to a state regardless of transitions, running exit and enter actions
func (m *Machine[T]) Force(ctx T, targetID StateID) error {
	if _, ok := m.nodes[targetID]; !ok {
		return fmt.Errorf("unknown state ID %d", targetID)
	}
	if m.activeStateID == StateNone {
		return m.Init(ctx, targetID)
	}
	m.transition(ctx, targetID)
	return nil
}

// Active returns the active StateID
func (m *Machine[T]) Active() StateID { return m.activeStateID }

// ActiveName returns the active state's name, empty before Init
func (m *Machine[T]) ActiveName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TicksInState returns Update calls since the last transition
func (m *Machine[T]) TicksInState() int { return m.ticksInState }
