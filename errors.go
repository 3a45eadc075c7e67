package stately

import (
	"fmt"
	"strings"
)

// NotActivatedError is returned by Fire when the machine has not been
// activated. State is left unchanged.
type NotActivatedError struct {
	Trigger any
}

func (e *NotActivatedError) Error() string {
	return fmt.Sprintf("cannot fire trigger '%v': machine has not been activated", e.Trigger)
}

// IllegalTriggerError is returned by Fire when no rule matches the
// (state, trigger) pair under current guard values. UnmetGuards carries
// the descriptions of any guards that were evaluated and failed.
type IllegalTriggerError struct {
	State       any
	Trigger     any
	UnmetGuards []string
}

func (e *IllegalTriggerError) Error() string {
	if len(e.UnmetGuards) > 0 {
		return fmt.Sprintf(
			"trigger '%v' is configured for state '%v' but no guard condition is met: %s",
			e.Trigger, e.State, strings.Join(e.UnmetGuards, ", "))
	}
	return fmt.Sprintf("trigger '%v' is not permitted in state '%v'", e.Trigger, e.State)
}

// ReentrantFireError is returned when Fire is invoked from within an entry
// or exit action of an in-progress fire on the same machine. The nested
// call fails before any mutation; the outer fire is unaffected.
type ReentrantFireError struct {
	State   any
	Trigger any
}

func (e *ReentrantFireError) Error() string {
	return fmt.Sprintf(
		"cannot fire trigger '%v' from within an action of an in-progress fire (state '%v')",
		e.Trigger, e.State)
}

// UnconfiguredStateError indicates that Fire or Activate found the current
// state to have no configuration at all. This is a configuration bug: every
// reachable state must appear in the transition table, either via Configure
// or as the destination of a permitted transition.
type UnconfiguredStateError struct {
	State any
}

func (e *UnconfiguredStateError) Error() string {
	return fmt.Sprintf("state '%v' has no configuration", e.State)
}

// ActionError wraps a failure from an entry or exit action. For entry
// actions the transition has already been committed when the action runs,
// so the error propagates without rolling the state back.
type ActionError struct {
	State  any
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("action '%s' on state '%v' failed: %v", e.Action, e.State, e.Err)
	}
	return fmt.Sprintf("action on state '%v' failed: %v", e.State, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
