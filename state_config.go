package stately

import "fmt"

// StateConfig provides a fluent interface for configuring the behaviour of
// a single state. Obtain one from Machine.Configure; calling Configure
// again for the same state returns a builder over the same configuration.
type StateConfig[TState, TTrigger comparable] struct {
	node   *stateNode[TState, TTrigger]
	lookup func(TState) *stateNode[TState, TTrigger]
}

// State returns the state being configured.
func (sc *StateConfig[TState, TTrigger]) State() TState {
	return sc.node.state
}

// Permit configures an unconditional transition to the destination state
// when the trigger is fired.
func (sc *StateConfig[TState, TTrigger]) Permit(trigger TTrigger, destination TState) *StateConfig[TState, TTrigger] {
	sc.enforceNotIdentityTransition(destination)
	sc.lookup(destination)
	sc.node.addRule(transitionRule[TState, TTrigger]{
		trigger:     trigger,
		destination: destination,
		guard:       unconditionalGuard,
	})
	return sc
}

// PermitIf configures a guarded transition to the destination state. When
// several rules are registered for the same trigger they are evaluated in
// registration order at fire time and the first passing guard wins.
func (sc *StateConfig[TState, TTrigger]) PermitIf(
	trigger TTrigger,
	destination TState,
	guard func() bool,
	description string,
) *StateConfig[TState, TTrigger] {
	sc.enforceNotIdentityTransition(destination)
	sc.lookup(destination)
	sc.node.addRule(transitionRule[TState, TTrigger]{
		trigger:     trigger,
		destination: destination,
		guard:       NewGuard(guard, description),
	})
	return sc
}

// PermitReentry configures the state to transition to itself when the
// trigger is fired. Exit and entry actions run again on each reentry.
func (sc *StateConfig[TState, TTrigger]) PermitReentry(trigger TTrigger) *StateConfig[TState, TTrigger] {
	sc.node.addRule(transitionRule[TState, TTrigger]{
		trigger:     trigger,
		destination: sc.node.state,
		guard:       unconditionalGuard,
		reentry:     true,
	})
	return sc
}

// PermitReentryIf configures a guarded reentry: the state transitions to
// itself when the trigger is fired and the guard passes.
func (sc *StateConfig[TState, TTrigger]) PermitReentryIf(
	trigger TTrigger,
	guard func() bool,
	description string,
) *StateConfig[TState, TTrigger] {
	sc.node.addRule(transitionRule[TState, TTrigger]{
		trigger:     trigger,
		destination: sc.node.state,
		guard:       NewGuard(guard, description),
		reentry:     true,
	})
	return sc
}

// OnEntry registers an action to run each time the machine enters this
// state, including via reentry and on activation. Actions run after the
// new state has been committed, in registration order.
func (sc *StateConfig[TState, TTrigger]) OnEntry(action func(Transition[TState, TTrigger]) error) *StateConfig[TState, TTrigger] {
	return sc.OnEntryNamed("", action)
}

// OnEntryNamed registers an entry action with a debug name. The name is
// used only for diagnostics and graph export.
func (sc *StateConfig[TState, TTrigger]) OnEntryNamed(name string, action func(Transition[TState, TTrigger]) error) *StateConfig[TState, TTrigger] {
	sc.node.addEntryAction(name, action)
	return sc
}

// OnExit registers an action to run each time the machine leaves this
// state, including via reentry. Exit actions run before the new state is
// committed; a failure aborts the fire with the state unchanged.
func (sc *StateConfig[TState, TTrigger]) OnExit(action func(Transition[TState, TTrigger]) error) *StateConfig[TState, TTrigger] {
	return sc.OnExitNamed("", action)
}

// OnExitNamed registers an exit action with a debug name.
func (sc *StateConfig[TState, TTrigger]) OnExitNamed(name string, action func(Transition[TState, TTrigger]) error) *StateConfig[TState, TTrigger] {
	sc.node.addExitAction(name, action)
	return sc
}

// enforceNotIdentityTransition rejects Permit/PermitIf to the source state;
// self-transitions must be configured explicitly with PermitReentry or
// PermitReentryIf.
func (sc *StateConfig[TState, TTrigger]) enforceNotIdentityTransition(destination TState) {
	if sc.node.state == destination {
		panic(fmt.Sprintf(
			"Permit() requires a destination different from the source state '%v'; use PermitReentry() for self-transitions",
			destination))
	}
}
