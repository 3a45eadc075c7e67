package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tkovalev/stately"
	"github.com/tkovalev/stately/docapproval"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the approval sequence end to end",
	RunE:  runScenario,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}

	logger := log.WithPrefix("workflow")
	doc := cfg.Document()
	m := docapproval.NewWorkflow(doc, docapproval.NewLogNotifier())

	m.OnTransitioned(func(t stately.Transition[docapproval.State, docapproval.Trigger]) {
		logger.Debug("transitioned", "from", t.Source, "to", t.Destination, "trigger", t.Trigger)
	})

	if err := m.Activate(); err != nil {
		return err
	}

	if err := m.Fire(docapproval.CompleteDraft); err != nil {
		return err
	}

	for doc.PendingInternal() > 0 {
		approver := doc.ApproveNextInternal()
		logger.Info("internal approval recorded", "approver", approver.Name)
		if err := m.Fire(docapproval.Approve); err != nil {
			return err
		}
	}

	for doc.PendingExternal() > 0 {
		approver := doc.ApproveNextExternal()
		logger.Info("external approval recorded", "approver", approver.Name)
		if err := m.Fire(docapproval.Approve); err != nil {
			return err
		}
	}

	if doc.State == docapproval.PendingInvoiceNumber {
		doc.SetInvoiceNumber(cfg.InvoiceNumber)
		logger.Info("invoice number assigned", "invoice", doc.InvoiceNumber)
		if err := m.Fire(docapproval.ProvideInvoiceNumber); err != nil {
			return err
		}
	}

	logger.Info("workflow finished", "document", doc.Title, "state", doc.State)
	return nil
}

func loadScenario() (*docapproval.Config, error) {
	if flagConfig == "" {
		return docapproval.DefaultConfig(), nil
	}
	return docapproval.LoadConfig(flagConfig)
}
