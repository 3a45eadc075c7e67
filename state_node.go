package stately

// transitionRule is a single entry of the transition table: a destination
// for a (state, trigger) pair, optionally guarded, optionally reentrant.
type transitionRule[TState, TTrigger comparable] struct {
	trigger     TTrigger
	destination TState
	guard       Guard
	reentry     bool
}

// namedAction is an entry or exit callback with an optional debug name.
// The name is used only for diagnostics and graph export, never for
// dispatch.
type namedAction[TState, TTrigger comparable] struct {
	name string
	fn   func(Transition[TState, TTrigger]) error
}

// stateNode holds the configuration of a single state: its outgoing rules
// in registration order and its entry/exit actions.
type stateNode[TState, TTrigger comparable] struct {
	state TState

	// triggerOrder preserves the order in which triggers were first
	// configured, for deterministic introspection.
	triggerOrder []TTrigger

	// rules maps each trigger to its candidate rules in registration order.
	rules map[TTrigger][]transitionRule[TState, TTrigger]

	entryActions []namedAction[TState, TTrigger]
	exitActions  []namedAction[TState, TTrigger]
}

func newStateNode[TState, TTrigger comparable](state TState) *stateNode[TState, TTrigger] {
	return &stateNode[TState, TTrigger]{
		state: state,
		rules: make(map[TTrigger][]transitionRule[TState, TTrigger]),
	}
}

func (n *stateNode[TState, TTrigger]) addRule(rule transitionRule[TState, TTrigger]) {
	if _, seen := n.rules[rule.trigger]; !seen {
		n.triggerOrder = append(n.triggerOrder, rule.trigger)
	}
	n.rules[rule.trigger] = append(n.rules[rule.trigger], rule)
}

func (n *stateNode[TState, TTrigger]) addEntryAction(name string, fn func(Transition[TState, TTrigger]) error) {
	n.entryActions = append(n.entryActions, namedAction[TState, TTrigger]{name: name, fn: fn})
}

func (n *stateNode[TState, TTrigger]) addExitAction(name string, fn func(Transition[TState, TTrigger]) error) {
	n.exitActions = append(n.exitActions, namedAction[TState, TTrigger]{name: name, fn: fn})
}

// selectRule evaluates the candidate rules for a trigger in registration
// order and returns the first whose guard passes. Unconditional rules
// always pass. If no rule matches it returns nil together with the
// descriptions of the guards that were evaluated and failed.
func (n *stateNode[TState, TTrigger]) selectRule(trigger TTrigger) (*transitionRule[TState, TTrigger], []string) {
	candidates, ok := n.rules[trigger]
	if !ok {
		return nil, nil
	}

	var unmet []string
	for i := range candidates {
		rule := &candidates[i]
		if rule.guard.Met() {
			return rule, nil
		}
		if desc := rule.guard.Description(); desc != "" {
			unmet = append(unmet, desc)
		}
	}
	return nil, unmet
}

// permittedTriggers returns the triggers with at least one passing rule,
// in configuration order.
func (n *stateNode[TState, TTrigger]) permittedTriggers() []TTrigger {
	var result []TTrigger
	for _, trigger := range n.triggerOrder {
		if rule, _ := n.selectRule(trigger); rule != nil {
			result = append(result, trigger)
		}
	}
	return result
}

// runEntryActions dispatches the state's entry actions in registration
// order. The first failure stops dispatch and is wrapped in an ActionError.
func (n *stateNode[TState, TTrigger]) runEntryActions(transition Transition[TState, TTrigger]) error {
	return runActions(n.state, n.entryActions, transition)
}

// runExitActions dispatches the state's exit actions in registration order.
func (n *stateNode[TState, TTrigger]) runExitActions(transition Transition[TState, TTrigger]) error {
	return runActions(n.state, n.exitActions, transition)
}

func runActions[TState, TTrigger comparable](
	state TState,
	actions []namedAction[TState, TTrigger],
	transition Transition[TState, TTrigger],
) error {
	for _, action := range actions {
		if err := action.fn(transition); err != nil {
			return &ActionError{State: state, Action: action.name, Err: err}
		}
	}
	return nil
}
