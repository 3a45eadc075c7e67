package stately

import "fmt"

// MachineInfo is a read-only snapshot of a machine's static transition
// table, with states and triggers rendered as strings. It reflects only
// configuration, never the current state, so it can be taken at any point
// in the machine's lifecycle, including before Activate.
type MachineInfo struct {
	// InitialState is the state the machine was constructed in.
	InitialState string

	// States lists every configured state in configuration order,
	// including states mentioned only as destinations.
	States []StateInfo
}

// StateInfo describes a single configured state.
type StateInfo struct {
	Name string

	// EntryActions and ExitActions carry the debug names of named actions;
	// unnamed actions are omitted.
	EntryActions []string
	ExitActions  []string

	// Transitions lists the state's outgoing rules in registration order.
	Transitions []TransitionInfo
}

// TransitionInfo describes a single transition rule.
type TransitionInfo struct {
	Trigger     string
	Destination string

	// Guard is the guard description, empty for unconditional rules.
	Guard string

	Reentry bool
}

// Info returns a snapshot of the machine's transition table.
func (m *Machine[TState, TTrigger]) Info() *MachineInfo {
	info := &MachineInfo{
		InitialState: fmt.Sprintf("%v", m.initialState),
	}

	for _, state := range m.stateOrder {
		node := m.nodes[state]
		stateInfo := StateInfo{
			Name:         fmt.Sprintf("%v", state),
			EntryActions: actionNames(node.entryActions),
			ExitActions:  actionNames(node.exitActions),
		}
		for _, trigger := range node.triggerOrder {
			for _, rule := range node.rules[trigger] {
				stateInfo.Transitions = append(stateInfo.Transitions, TransitionInfo{
					Trigger:     fmt.Sprintf("%v", trigger),
					Destination: fmt.Sprintf("%v", rule.destination),
					Guard:       rule.guard.Description(),
					Reentry:     rule.reentry,
				})
			}
		}
		info.States = append(info.States, stateInfo)
	}

	return info
}

func actionNames[TState, TTrigger comparable](actions []namedAction[TState, TTrigger]) []string {
	var names []string
	for _, action := range actions {
		if action.name != "" {
			names = append(names, action.name)
		}
	}
	return names
}
