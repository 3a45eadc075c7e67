// Command docflow is a thin driver for the document-approval workflow: it
// builds the transition table from a scenario config, fires the approval
// sequence, and can print the transition graph. Logs go to stderr; stdout
// is reserved for graph output.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "docflow",
	Short: "Drive a document through its approval workflow",
	Long: `docflow runs a gated document-approval workflow: draft completion,
internal and external approval rounds, invoice assignment, and completion
or rejection. The scenario (document title, approvers, invoice number) is
read from a TOML file, or a stock scenario is used when none is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if flagVerbose {
			level = log.DebugLevel
		}
		if flagQuiet {
			level = log.ErrorLevel
		}
		log.SetLevel(level)
		log.SetOutput(os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to scenario TOML file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress all output except errors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
