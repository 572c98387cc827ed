// Package cmd contains the ledger client commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var baseURL string

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseURL, "url", "u", "http://localhost:8080", "Url of the node.")
}

var rootCmd = &cobra.Command{
	Use:           "ledger",
	Short:         "Client for the proof of work ledger node",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command selected on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(renderError(err))
		os.Exit(1)
	}
}
