package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Verify the hashes and links of the chain.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rpt report
		if err := get("/v1/chain/validate", &rpt); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderReport(rpt))

		if !rpt.Valid {
			return errors.New("chain is invalid")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
