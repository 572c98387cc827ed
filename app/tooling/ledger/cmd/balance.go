package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Print the balance of an address or of every address.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/v1/balances/list"
		if len(args) == 1 {
			path += "/" + url.PathEscape(args[0])
		}

		var bals balances
		if err := get(path, &bals); err != nil {
			return err
		}

		out, err := renderBalances(bals)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
