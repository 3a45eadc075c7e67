package docapproval_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkovalev/stately"
	"github.com/tkovalev/stately/docapproval"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	sent []string
}

func (n *recordingNotifier) Notify(recipient, message string) {
	n.sent = append(n.sent, fmt.Sprintf("%s: %s", recipient, message))
}

func newTestDocument() *docapproval.Document {
	return docapproval.NewDocument(
		"Q3 budget proposal", "alex",
		[]string{"ines", "ivan", "irene"},
		[]string{"edgar", "elena", "emil"},
	)
}

func TestEndToEndApproval(t *testing.T) {
	doc := newTestDocument()
	notifier := &recordingNotifier{}
	m := docapproval.NewWorkflow(doc, notifier)

	require.NoError(t, m.Activate())
	assert.Equal(t, docapproval.Draft, doc.State)

	require.NoError(t, m.Fire(docapproval.CompleteDraft))
	assert.Equal(t, docapproval.PendingInternalApproval, doc.State)

	// First two internal approvals re-enter the state.
	for i := 0; i < 2; i++ {
		doc.ApproveNextInternal()
		require.NoError(t, m.Fire(docapproval.Approve))
		assert.Equal(t, docapproval.PendingInternalApproval, doc.State)
	}

	// Third internal approval advances to external review.
	doc.ApproveNextInternal()
	require.NoError(t, m.Fire(docapproval.Approve))
	assert.Equal(t, docapproval.PendingExternalApproval, doc.State)

	for i := 0; i < 2; i++ {
		doc.ApproveNextExternal()
		require.NoError(t, m.Fire(docapproval.Approve))
		assert.Equal(t, docapproval.PendingExternalApproval, doc.State)
	}

	// Invoice number is not yet set, so the last external approval lands
	// in PendingInvoiceNumber rather than Completed.
	doc.ApproveNextExternal()
	require.NoError(t, m.Fire(docapproval.Approve))
	assert.Equal(t, docapproval.PendingInvoiceNumber, doc.State)

	doc.SetInvoiceNumber("INV-0001")
	require.NoError(t, m.Fire(docapproval.ProvideInvoiceNumber))
	assert.Equal(t, docapproval.Completed, doc.State)

	assert.Contains(t, notifier.sent, `alex: document "Q3 budget proposal" is fully approved`)
}

func TestExternalApprovalSkipsInvoiceStateWhenInvoiceOnFile(t *testing.T) {
	doc := newTestDocument()
	m := docapproval.NewWorkflow(doc, &recordingNotifier{})
	require.NoError(t, m.Activate())
	require.NoError(t, m.Fire(docapproval.CompleteDraft))

	for doc.PendingInternal() > 0 {
		doc.ApproveNextInternal()
		require.NoError(t, m.Fire(docapproval.Approve))
	}

	doc.SetInvoiceNumber("INV-0042")
	for doc.PendingExternal() > 0 {
		doc.ApproveNextExternal()
		require.NoError(t, m.Fire(docapproval.Approve))
	}

	assert.Equal(t, docapproval.Completed, doc.State)
}

func TestReentryRenotifiesRemainingApprovers(t *testing.T) {
	doc := newTestDocument()
	notifier := &recordingNotifier{}
	m := docapproval.NewWorkflow(doc, notifier)
	require.NoError(t, m.Activate())
	require.NoError(t, m.Fire(docapproval.CompleteDraft))

	notifier.sent = nil
	doc.ApproveNextInternal() // ines signs
	require.NoError(t, m.Fire(docapproval.Approve))

	assert.Contains(t, notifier.sent, `ivan: document "Q3 budget proposal" awaits your approval`)
	assert.Contains(t, notifier.sent, `irene: document "Q3 budget proposal" awaits your approval`)
	assert.NotContains(t, notifier.sent, `ines: document "Q3 budget proposal" awaits your approval`)
}

func TestRejectionIsTerminal(t *testing.T) {
	doc := newTestDocument()
	notifier := &recordingNotifier{}
	m := docapproval.NewWorkflow(doc, notifier)
	require.NoError(t, m.Activate())
	require.NoError(t, m.Fire(docapproval.CompleteDraft))

	require.NoError(t, m.Fire(docapproval.Reject))
	assert.Equal(t, docapproval.Rejected, doc.State)
	assert.Contains(t, notifier.sent, `alex: document "Q3 budget proposal" was rejected`)

	for _, trigger := range []docapproval.Trigger{
		docapproval.CompleteDraft,
		docapproval.Approve,
		docapproval.Reject,
		docapproval.ProvideInvoiceNumber,
	} {
		assert.False(t, m.CanFire(trigger), "no trigger may fire from Rejected")
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	doc := newTestDocument()
	m := docapproval.NewWorkflow(doc, &recordingNotifier{})
	require.NoError(t, m.Activate())
	require.NoError(t, m.Fire(docapproval.CompleteDraft))

	doc.SetInvoiceNumber("INV-7")
	for doc.PendingInternal() > 0 {
		doc.ApproveNextInternal()
		require.NoError(t, m.Fire(docapproval.Approve))
	}
	for doc.PendingExternal() > 0 {
		doc.ApproveNextExternal()
		require.NoError(t, m.Fire(docapproval.Approve))
	}
	require.Equal(t, docapproval.Completed, doc.State)

	assert.Empty(t, m.PermittedTriggers())
}

func TestApproveWithoutSignatureReenters(t *testing.T) {
	doc := newTestDocument()
	m := docapproval.NewWorkflow(doc, &recordingNotifier{})
	require.NoError(t, m.Activate())
	require.NoError(t, m.Fire(docapproval.CompleteDraft))

	// Firing Approve without recording a signature is legal but re-enters.
	require.NoError(t, m.Fire(docapproval.Approve))
	assert.Equal(t, docapproval.PendingInternalApproval, doc.State)
}

func TestActivationNotifiesAuthor(t *testing.T) {
	doc := newTestDocument()
	notifier := &recordingNotifier{}
	m := docapproval.NewWorkflow(doc, notifier)

	require.NoError(t, m.Activate())
	assert.Contains(t, notifier.sent, `alex: document "Q3 budget proposal" is in draft`)
}

func TestFireBeforeActivate(t *testing.T) {
	doc := newTestDocument()
	m := docapproval.NewWorkflow(doc, &recordingNotifier{})

	var notActivated *stately.NotActivatedError
	require.ErrorAs(t, m.Fire(docapproval.CompleteDraft), &notActivated)
	assert.Equal(t, docapproval.Draft, doc.State)
}

func TestWorkflowGraphShape(t *testing.T) {
	doc := newTestDocument()
	info := docapproval.NewWorkflow(doc, &recordingNotifier{}).Info()

	assert.Len(t, info.States, 6)

	rules := 0
	for _, state := range info.States {
		rules += len(state.Transitions)
	}
	// Draft 1, internal 3, external 4, invoice 2, terminals 0.
	assert.Equal(t, 10, rules)
	assert.Equal(t, "Draft", info.InitialState)
}
