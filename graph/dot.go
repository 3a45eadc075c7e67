// Package graph renders a state machine's transition table as a DOT
// digraph for external visualization tooling. Output is a pure function of
// the static configuration snapshot and never reflects current state.
package graph

import (
	"fmt"
	"strings"

	"github.com/tkovalev/stately"
)

// Dot renders the machine info as a DOT digraph. Each configured state
// becomes one node and each transition rule one edge; edge labels carry
// the trigger name, the guard description in brackets when present, and a
// reentrant marker for reentry rules.
func Dot(info *stately.MachineInfo) string {
	var sb strings.Builder

	sb.WriteString("digraph {\n")
	sb.WriteString("compound=true;\n")
	sb.WriteString("node [shape=Mrecord]\n")
	sb.WriteString("rankdir=\"LR\"\n")

	for _, state := range info.States {
		sb.WriteString(formatOneState(state))
	}

	for _, state := range info.States {
		for _, transition := range state.Transitions {
			sb.WriteString(formatOneTransition(state.Name, transition))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(" init [label=\"\", shape=point];\n")
	sb.WriteString(fmt.Sprintf(" init -> \"%s\"[style = \"solid\"]\n", escapeLabel(info.InitialState)))
	sb.WriteString("}")

	return sb.String()
}

// formatOneState renders a node, listing named entry and exit actions in
// a record compartment when any exist.
func formatOneState(state stately.StateInfo) string {
	escapedName := escapeLabel(state.Name)

	if len(state.EntryActions) == 0 && len(state.ExitActions) == 0 {
		return fmt.Sprintf("\"%s\" [label=\"%s\"];\n", escapedName, escapedName)
	}

	var actions []string
	for _, name := range state.EntryActions {
		actions = append(actions, "entry / "+escapeLabel(name))
	}
	for _, name := range state.ExitActions {
		actions = append(actions, "exit / "+escapeLabel(name))
	}

	return fmt.Sprintf("\"%s\" [label=\"%s|%s\"];\n", escapedName, escapedName, strings.Join(actions, "\\n"))
}

func formatOneTransition(source string, transition stately.TransitionInfo) string {
	var label strings.Builder

	label.WriteString(transition.Trigger)
	if transition.Guard != "" {
		label.WriteString(" [")
		label.WriteString(transition.Guard)
		label.WriteString("]")
	}
	if transition.Reentry {
		label.WriteString(" (reentrant)")
	}

	return fmt.Sprintf("\"%s\" -> \"%s\" [style=\"solid\", label=\"%s\"];\n",
		escapeLabel(source), escapeLabel(transition.Destination), escapeLabel(label.String()))
}

// escapeLabel escapes characters that would break DOT string literals.
func escapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}
