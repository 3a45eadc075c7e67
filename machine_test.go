package stately_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkovalev/stately"
)

type State int

const (
	StateA State = iota
	StateB
	StateC
)

func (s State) String() string {
	switch s {
	case StateA:
		return "A"
	case StateB:
		return "B"
	case StateC:
		return "C"
	default:
		return "Unknown"
	}
}

type Trigger int

const (
	TriggerX Trigger = iota
	TriggerY
	TriggerZ
)

func (t Trigger) String() string {
	switch t {
	case TriggerX:
		return "X"
	case TriggerY:
		return "Y"
	case TriggerZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// activated returns a machine that has been activated, failing the test on
// activation errors.
func activated(t *testing.T, m *stately.Machine[State, Trigger]) *stately.Machine[State, Trigger] {
	t.Helper()
	require.NoError(t, m.Activate())
	return m
}

func TestPermitTransitionsState(t *testing.T) {
	m := stately.NewMachine[State, Trigger](StateA)
	m.Configure(StateA).Permit(TriggerX, StateB)
	activated(t, m)

	require.NoError(t, m.Fire(TriggerX))
	assert.Equal(t, StateB, m.State())
}

func TestExternalStateStorage(t *testing.T) {
	state := StateA
	m := stately.NewMachineWithExternalState[State, Trigger](
		func() State { return state },
		func(s State) { state = s },
	)
	m.Configure(StateA).Permit(TriggerX, StateB)
	activated(t, m)

	require.NoError(t, m.Fire(TriggerX))
	assert.Equal(t, StateB, state, "mutator must write the external field")
	assert.Equal(t, StateB, m.State(), "accessor must read the external field")
}

func TestConfigureResumesSameState(t *testing.T) {
	m := stately.NewMachine[State, Trigger](StateA)
	m.Configure(StateA).Permit(TriggerX, StateB)
	m.Configure(StateA).Permit(TriggerY, StateC)
	activated(t, m)

	assert.True(t, m.CanFire(TriggerX))
	assert.True(t, m.CanFire(TriggerY))
}

func TestCanFireMatchesFire(t *testing.T) {
	flag := false
	m := stately.NewMachine[State, Trigger](StateA)
	m.Configure(StateA).
		PermitIf(TriggerX, StateB, func() bool { return flag }, "flag set").
		Permit(TriggerY, StateC)
	activated(t, m)

	// CanFire and Fire must agree under the same external state snapshot.
	assert.False(t, m.CanFire(TriggerX))
	var illegal *stately.IllegalTriggerError
	require.ErrorAs(t, m.Fire(TriggerX), &illegal)
	assert.Equal(t, StateA, m.State())

	flag = true
	assert.True(t, m.CanFire(TriggerX))
	require.NoError(t, m.Fire(TriggerX))
	assert.Equal(t, StateB, m.State())
}

func TestCanFireHasNoSideEffects(t *testing.T) {
	m := stately.NewMachine[State, Trigger](StateA)
	m.Configure(StateA).Permit(TriggerX, StateB)
	activated(t, m)

	assert.True(t, m.CanFire(TriggerX))
	assert.Equal(t, StateA, m.State())
}

func TestPermittedTriggers(t *testing.T) {
	flag := false
	m := stately.NewMachine[State, Trigger](StateA)
	m.Configure(StateA).
		Permit(TriggerX, StateB).
		PermitIf(TriggerY, StateC, func() bool { return flag }, "flag set")
	activated(t, m)

	assert.Equal(t, []Trigger{TriggerX}, m.PermittedTriggers())

	flag = true
	assert.Equal(t, []Trigger{TriggerX, TriggerY}, m.PermittedTriggers())
}

func TestPermittedTriggersTerminalState(t *testing.T) {
	m := stately.NewMachine[State, Trigger](StateA)
	m.Configure(StateA).Permit(TriggerX, StateB)
	activated(t, m)
	require.NoError(t, m.Fire(TriggerX))

	// StateB was configured only as a destination: no outgoing rules.
	assert.Empty(t, m.PermittedTriggers())
	assert.False(t, m.CanFire(TriggerX))
}

func TestPermitToSelfPanics(t *testing.T) {
	m := stately.NewMachine[State, Trigger](StateA)
	assert.Panics(t, func() {
		m.Configure(StateA).Permit(TriggerX, StateA)
	})
	assert.Panics(t, func() {
		m.Configure(StateA).PermitIf(TriggerX, StateA, func() bool { return true }, "")
	})
}

func TestFireOnUnconfiguredState(t *testing.T) {
	state := StateC
	m := stately.NewMachineWithExternalState[State, Trigger](
		func() State { return state },
		func(s State) { state = s },
	)
	m.Configure(StateA).Permit(TriggerX, StateB)
	// Current state StateC was never configured nor referenced.
	var unconfigured *stately.UnconfiguredStateError
	require.ErrorAs(t, m.Activate(), &unconfigured)
}

func TestString(t *testing.T) {
	m := stately.NewMachine[State, Trigger](StateA)
	assert.Equal(t, "Machine { State = A }", m.String())
}
