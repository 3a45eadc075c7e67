package docapproval

import (
	"fmt"

	"github.com/tkovalev/stately"
)

// NewWorkflow builds the approval state machine for a document. The
// machine reads and writes doc.State through an accessor pair; guards and
// entry actions close over the document and the notifier.
//
// Approve is guarded in both approval states: while approvals are
// outstanding the trigger re-enters the state (notifying the remaining
// approvers again); once the last approver has signed it advances. From
// PendingExternalApproval the forward destination depends on whether an
// invoice number is already on file.
func NewWorkflow(doc *Document, notifier Notifier) *stately.Machine[State, Trigger] {
	m := stately.NewMachineWithExternalState[State, Trigger](
		func() State { return doc.State },
		func(s State) { doc.State = s },
	)

	m.Configure(Draft).
		Permit(CompleteDraft, PendingInternalApproval).
		OnEntryNamed("notifyAuthorDrafting", func(t stately.Transition[State, Trigger]) error {
			notifier.Notify(doc.Author, fmt.Sprintf("document %q is in draft", doc.Title))
			return nil
		})

	m.Configure(PendingInternalApproval).
		PermitIf(Approve, PendingExternalApproval,
			func() bool { return doc.PendingInternal() == 0 },
			"all internal approvers signed").
		PermitReentryIf(Approve,
			func() bool { return doc.PendingInternal() > 0 },
			"internal approvals outstanding").
		Permit(Reject, Rejected).
		OnEntryNamed("notifyInternalApprovers", func(t stately.Transition[State, Trigger]) error {
			notifyPending(notifier, doc, doc.InternalApprovers)
			return nil
		})

	m.Configure(PendingExternalApproval).
		PermitIf(Approve, Completed,
			func() bool { return doc.PendingExternal() == 0 && doc.HasInvoiceNumber() },
			"all external approvers signed, invoice on file").
		PermitIf(Approve, PendingInvoiceNumber,
			func() bool { return doc.PendingExternal() == 0 },
			"all external approvers signed").
		PermitReentryIf(Approve,
			func() bool { return doc.PendingExternal() > 0 },
			"external approvals outstanding").
		Permit(Reject, Rejected).
		OnEntryNamed("notifyExternalApprovers", func(t stately.Transition[State, Trigger]) error {
			notifyPending(notifier, doc, doc.ExternalApprovers)
			return nil
		})

	m.Configure(PendingInvoiceNumber).
		PermitIf(ProvideInvoiceNumber, Completed,
			func() bool { return doc.HasInvoiceNumber() },
			"invoice number on file").
		Permit(Reject, Rejected).
		OnEntryNamed("notifyAuthorInvoiceNeeded", func(t stately.Transition[State, Trigger]) error {
			notifier.Notify(doc.Author, fmt.Sprintf("document %q needs an invoice number", doc.Title))
			return nil
		})

	m.Configure(Completed).
		OnEntryNamed("notifyAuthorCompleted", func(t stately.Transition[State, Trigger]) error {
			notifier.Notify(doc.Author, fmt.Sprintf("document %q is fully approved", doc.Title))
			return nil
		})

	m.Configure(Rejected).
		OnEntryNamed("notifyAuthorRejected", func(t stately.Transition[State, Trigger]) error {
			notifier.Notify(doc.Author, fmt.Sprintf("document %q was rejected", doc.Title))
			return nil
		})

	return m
}

// notifyPending notifies every approver in the list who has not yet
// signed. On reentry this re-notifies the remaining approvers.
func notifyPending(notifier Notifier, doc *Document, approvers []*Approver) {
	for _, a := range approvers {
		if !a.Approved {
			notifier.Notify(a.Name, fmt.Sprintf("document %q awaits your approval", doc.Title))
		}
	}
}
