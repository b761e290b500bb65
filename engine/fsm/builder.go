package fsm

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
// Transitions from unknown sources are ignored
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// On is shorthand for an unguarded event transition
func (m *Machine[T]) On(sourceID StateID, ev Event, targetID StateID) {
	m.AddTransition(sourceID, Transition[T]{TargetID: targetID, Event: ev})
}

// When is shorthand for a guarded tick transition
func (m *Machine[T]) When(sourceID StateID, guard GuardFunc[T], targetID StateID) {
	m.AddTransition(sourceID, Transition[T]{TargetID: targetID, Event: EventTick, Guard: guard})
}
