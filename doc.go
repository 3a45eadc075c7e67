// Package stately provides a small, generic, guarded state machine for Go.
//
// A Machine is configured once with a static transition table and then
// driven by firing triggers. Transitions may be unconditional, guarded by
// boolean predicates evaluated at fire time, or reentrant (the state
// transitions to itself and runs its entry actions again). The machine
// never owns the state it drives: current state lives in an external
// accessor/mutator pair, typically a field of the caller's business
// entity.
//
// # Basic Usage
//
// Create a machine over an externally owned state field:
//
//	m := stately.NewMachineWithExternalState[State, Trigger](
//	    func() State { return doc.State },
//	    func(s State) { doc.State = s },
//	)
//
// Configure states with transitions:
//
//	m.Configure(Draft).
//	    Permit(CompleteDraft, PendingApproval)
//
//	m.Configure(PendingApproval).
//	    PermitIf(Approve, Completed, func() bool { return doc.Pending() == 0 }, "all approvers signed").
//	    PermitReentryIf(Approve, func() bool { return doc.Pending() > 0 }, "approvals outstanding").
//	    OnEntryNamed("notifyApprovers", notifyApprovers)
//
// Activate and fire:
//
//	if err := m.Activate(); err != nil { ... }
//	if err := m.Fire(Approve); err != nil { ... }
//
// # Guards
//
// When several guarded rules share a (state, trigger) pair they are
// evaluated in registration order and the first passing guard wins.
// Guards are zero-argument predicates over external state; they are
// re-evaluated on every fire and never cached.
//
// # Graph Export
//
// The static transition table can be rendered as a DOT digraph:
//
//	import "github.com/tkovalev/stately/graph"
//	dot := graph.Dot(m.Info())
package stately
