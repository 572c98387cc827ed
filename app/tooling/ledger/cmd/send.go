package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	from   string
	to     string
	amount int64
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a transaction to the pending transactions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tx := struct {
			From   string `json:"from"`
			To     string `json:"to"`
			Amount int64  `json:"amount"`
		}{
			From:   from,
			To:     to,
			Amount: amount,
		}

		var resp struct {
			Pending int `json:"pending"`
		}
		if err := post("/v1/tx/submit", tx, &resp); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("%s -> %s %d submitted, %d pending", from, to, amount, resp.Pending))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&from, "from", "f", "", "Address sending the amount.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Address receiving the amount.")
	sendCmd.Flags().Int64VarP(&amount, "amount", "a", 0, "Amount to send.")
}
