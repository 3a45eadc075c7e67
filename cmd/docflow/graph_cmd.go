package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkovalev/stately/docapproval"
	"github.com/tkovalev/stately/graph"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the workflow transition graph in DOT format",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadScenario()
		if err != nil {
			return err
		}

		// The graph depends only on the static configuration, so the
		// machine is never activated or fired here.
		m := docapproval.NewWorkflow(cfg.Document(), docapproval.NewLogNotifier())
		fmt.Println(graph.Dot(m.Info()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
