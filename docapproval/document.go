// Package docapproval drives a document through a gated approval workflow
// built on the stately engine: draft completion, internal and external
// approval rounds, invoice assignment, and completion or rejection.
package docapproval

// State is a document's position in the approval workflow.
type State int

const (
	Draft State = iota
	PendingInternalApproval
	PendingExternalApproval
	PendingInvoiceNumber
	Completed
	Rejected
)

func (s State) String() string {
	switch s {
	case Draft:
		return "Draft"
	case PendingInternalApproval:
		return "PendingInternalApproval"
	case PendingExternalApproval:
		return "PendingExternalApproval"
	case PendingInvoiceNumber:
		return "PendingInvoiceNumber"
	case Completed:
		return "Completed"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Trigger is an external event that may advance the workflow.
type Trigger int

const (
	CompleteDraft Trigger = iota
	Approve
	Reject
	ProvideInvoiceNumber
)

func (t Trigger) String() string {
	switch t {
	case CompleteDraft:
		return "CompleteDraft"
	case Approve:
		return "Approve"
	case Reject:
		return "Reject"
	case ProvideInvoiceNumber:
		return "ProvideInvoiceNumber"
	default:
		return "Unknown"
	}
}

// Approver is a single signatory on a document.
type Approver struct {
	Name     string
	Approved bool
}

// Document is the business entity the workflow drives. The workflow engine
// only ever sees the State field, through the accessor pair wired up in
// NewWorkflow; everything else is read by guards and entry actions.
type Document struct {
	Title  string
	Author string
	State  State

	InternalApprovers []*Approver
	ExternalApprovers []*Approver

	InvoiceNumber string
}

// NewDocument creates a draft document with the given approvers, all
// initially unapproved.
func NewDocument(title, author string, internal, external []string) *Document {
	return &Document{
		Title:             title,
		Author:            author,
		State:             Draft,
		InternalApprovers: makeApprovers(internal),
		ExternalApprovers: makeApprovers(external),
	}
}

func makeApprovers(names []string) []*Approver {
	approvers := make([]*Approver, len(names))
	for i, name := range names {
		approvers[i] = &Approver{Name: name}
	}
	return approvers
}

// PendingInternal returns the number of internal approvers yet to sign.
func (d *Document) PendingInternal() int {
	return countPending(d.InternalApprovers)
}

// PendingExternal returns the number of external approvers yet to sign.
func (d *Document) PendingExternal() int {
	return countPending(d.ExternalApprovers)
}

func countPending(approvers []*Approver) int {
	pending := 0
	for _, a := range approvers {
		if !a.Approved {
			pending++
		}
	}
	return pending
}

// ApproveNextInternal marks the first unapproved internal approver as
// approved and returns it, or nil if none remain.
func (d *Document) ApproveNextInternal() *Approver {
	return approveNext(d.InternalApprovers)
}

// ApproveNextExternal marks the first unapproved external approver as
// approved and returns it, or nil if none remain.
func (d *Document) ApproveNextExternal() *Approver {
	return approveNext(d.ExternalApprovers)
}

func approveNext(approvers []*Approver) *Approver {
	for _, a := range approvers {
		if !a.Approved {
			a.Approved = true
			return a
		}
	}
	return nil
}

// SetInvoiceNumber records the invoice number for the document.
func (d *Document) SetInvoiceNumber(number string) {
	d.InvoiceNumber = number
}

// HasInvoiceNumber returns true once an invoice number has been recorded.
func (d *Document) HasInvoiceNumber() bool {
	return d.InvoiceNumber != ""
}
