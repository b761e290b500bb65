package fsm

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Event identifies an external trigger; EventTick is reserved for guarded
// auto-transitions evaluated on Update
type Event int

const EventTick Event = 0

// Machine is a flat finite state machine runtime
// T is the context type passed to actions and guards
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes map[StateID]*Node[T]

	// Runtime state
	activeStateID StateID
	ticksInState  int

	// OnTransition, if set, observes every state change after enter actions ran
	OnTransition func(from, to StateID)
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    Event        // EventTick = evaluated every Update
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
