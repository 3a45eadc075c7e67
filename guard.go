package stately

// Guard conditions a transition rule on external state. The predicate is a
// zero-argument closure over the caller's business entity, bound at
// configuration time and evaluated fresh on every fire; results are never
// cached. The description is used only for diagnostics and graph export.
//
// Guards are expected to be pure reads. A predicate that mutates state is
// a user error: the machine makes no attempt to detect or undo its side
// effects, and may invoke it once per candidate rule per fire.
type Guard struct {
	predicate   func() bool
	description string
}

// NewGuard creates a guard from a predicate and a human-readable
// description.
func NewGuard(predicate func() bool, description string) Guard {
	return Guard{predicate: predicate, description: description}
}

// unconditionalGuard always passes. Used for Permit and PermitReentry.
var unconditionalGuard = Guard{}

// Met evaluates the predicate. A guard with no predicate always passes.
func (g Guard) Met() bool {
	if g.predicate == nil {
		return true
	}
	return g.predicate()
}

// Description returns the guard's diagnostic description.
func (g Guard) Description() string {
	return g.description
}
