package stately

// Transition describes a single state transition. One value is built per
// successful fire and passed to entry and exit actions; the machine does
// not retain it afterwards.
type Transition[TState, TTrigger comparable] struct {
	// Source is the state transitioned from.
	Source TState

	// Destination is the state transitioned to.
	Destination TState

	// Trigger is the trigger that caused the transition. For activation
	// transitions this is the zero value of TTrigger.
	Trigger TTrigger

	// activation marks the synthetic transition delivered to the initial
	// state's entry actions by Activate.
	activation bool
}

func newTransition[TState, TTrigger comparable](source, destination TState, trigger TTrigger) Transition[TState, TTrigger] {
	return Transition[TState, TTrigger]{
		Source:      source,
		Destination: destination,
		Trigger:     trigger,
	}
}

func newActivationTransition[TState, TTrigger comparable](state TState) Transition[TState, TTrigger] {
	var zero TTrigger
	return Transition[TState, TTrigger]{
		Source:      state,
		Destination: state,
		Trigger:     zero,
		activation:  true,
	}
}

// IsReentry returns true if the transition leaves and re-enters the same
// state via a reentry rule.
func (t Transition[TState, TTrigger]) IsReentry() bool {
	return t.Source == t.Destination && !t.activation
}

// IsActivation returns true if this is the synthetic transition delivered
// when the machine is activated in its initial state.
func (t Transition[TState, TTrigger]) IsActivation() bool {
	return t.activation
}
