package stately

import "fmt"

// Machine is a finite state machine driven by triggers. States and
// triggers are opaque comparable values; the legal state set is whatever
// the configuration mentions.
//
// A Machine is single-threaded and synchronous: Fire, CanFire, Configure
// and Info run to completion without suspension points. It is not safe for
// concurrent use; callers needing concurrency must serialize access
// externally. Firing a trigger from within an entry or exit action of the
// same machine is rejected with ReentrantFireError.
type Machine[TState, TTrigger comparable] struct {
	// accessor and mutator give the machine a view of externally owned
	// current-state storage. The machine holds no state of its own beyond
	// this pair.
	accessor func() TState
	mutator  func(TState)

	// nodes is the transition table, one node per configured state.
	// stateOrder preserves configuration order for Info.
	nodes      map[TState]*stateNode[TState, TTrigger]
	stateOrder []TState

	// onTransitioned handlers run after each committed transition, before
	// the destination's entry actions.
	onTransitioned []func(Transition[TState, TTrigger])

	// initialState is the state observed at construction time.
	initialState TState

	activated bool
	firing    bool
}

// NewMachine creates a machine that stores its current state in an
// internal variable seeded with initialState.
func NewMachine[TState, TTrigger comparable](initialState TState) *Machine[TState, TTrigger] {
	state := initialState
	return NewMachineWithExternalState[TState, TTrigger](
		func() TState { return state },
		func(s TState) { state = s },
	)
}

// NewMachineWithExternalState creates a machine whose current state lives
// in caller-owned storage, read through accessor and written through
// mutator. The state observed at construction becomes the machine's
// initial state.
func NewMachineWithExternalState[TState, TTrigger comparable](
	accessor func() TState,
	mutator func(TState),
) *Machine[TState, TTrigger] {
	return &Machine[TState, TTrigger]{
		accessor:     accessor,
		mutator:      mutator,
		nodes:        make(map[TState]*stateNode[TState, TTrigger]),
		initialState: accessor(),
	}
}

// State returns the current state, read through the accessor.
func (m *Machine[TState, TTrigger]) State() TState {
	return m.accessor()
}

// Configure begins or resumes configuration of a state.
func (m *Machine[TState, TTrigger]) Configure(state TState) *StateConfig[TState, TTrigger] {
	return &StateConfig[TState, TTrigger]{
		node:   m.node(state),
		lookup: m.node,
	}
}

// Activate marks the machine as running and dispatches the entry actions
// of the initial current state, so a machine that has never fired still
// notifies for its starting state. Activating an already active machine is
// a no-op. Fire returns NotActivatedError until Activate has been called.
func (m *Machine[TState, TTrigger]) Activate() error {
	if m.activated {
		return nil
	}

	state := m.accessor()
	node, ok := m.nodes[state]
	if !ok {
		return &UnconfiguredStateError{State: state}
	}

	m.activated = true
	m.firing = true
	defer func() { m.firing = false }()
	return node.runEntryActions(newActivationTransition[TState, TTrigger](state))
}

// Fire fires a trigger. It selects the first rule registered for the
// (current state, trigger) pair whose guard passes, runs the source
// state's exit actions, commits the destination through the mutator, then
// runs the destination's entry actions.
//
// Exit action failures abort the fire before the state is committed. Entry
// action failures propagate to the caller but the transition is not rolled
// back: the state has already been committed when entry actions run.
func (m *Machine[TState, TTrigger]) Fire(trigger TTrigger) error {
	if !m.activated {
		return &NotActivatedError{Trigger: trigger}
	}

	source := m.accessor()
	if m.firing {
		return &ReentrantFireError{State: source, Trigger: trigger}
	}

	node, ok := m.nodes[source]
	if !ok {
		return &UnconfiguredStateError{State: source}
	}

	rule, unmet := node.selectRule(trigger)
	if rule == nil {
		return &IllegalTriggerError{State: source, Trigger: trigger, UnmetGuards: unmet}
	}

	m.firing = true
	defer func() { m.firing = false }()

	transition := newTransition(source, rule.destination, trigger)

	if err := node.runExitActions(transition); err != nil {
		return err
	}

	m.mutator(rule.destination)

	for _, handler := range m.onTransitioned {
		handler(transition)
	}

	// Permit registers destination nodes, so this lookup cannot miss.
	return m.nodes[rule.destination].runEntryActions(transition)
}

// CanFire returns true if firing the trigger from the current state would
// select a rule under current guard values. It evaluates guards but has no
// other side effects and does not require activation.
func (m *Machine[TState, TTrigger]) CanFire(trigger TTrigger) bool {
	node, ok := m.nodes[m.accessor()]
	if !ok {
		return false
	}
	rule, _ := node.selectRule(trigger)
	return rule != nil
}

// PermittedTriggers returns the triggers that can currently be fired from
// the current state, in configuration order.
func (m *Machine[TState, TTrigger]) PermittedTriggers() []TTrigger {
	node, ok := m.nodes[m.accessor()]
	if !ok {
		return nil
	}
	return node.permittedTriggers()
}

// OnTransitioned registers a handler invoked after every committed
// transition, before the destination state's entry actions run.
func (m *Machine[TState, TTrigger]) OnTransitioned(handler func(Transition[TState, TTrigger])) {
	m.onTransitioned = append(m.onTransitioned, handler)
}

// node gets or creates the configuration node for a state, preserving
// first-mention order.
func (m *Machine[TState, TTrigger]) node(state TState) *stateNode[TState, TTrigger] {
	if n, ok := m.nodes[state]; ok {
		return n
	}
	n := newStateNode[TState, TTrigger](state)
	m.nodes[state] = n
	m.stateOrder = append(m.stateOrder, state)
	return n
}

// String returns a string representation of the current state.
func (m *Machine[TState, TTrigger]) String() string {
	return fmt.Sprintf("Machine { State = %v }", m.State())
}
