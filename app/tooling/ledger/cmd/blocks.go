package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pending bool

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Print the blocks of the chain or the pending transactions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pending {
			var trans []tx
			if err := get("/v1/tx/pending/list", &trans); err != nil {
				return err
			}

			out, err := renderTrans(trans)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}

		var blocks []block
		if err := get("/v1/blocks/list", &blocks); err != nil {
			return err
		}

		out, err := renderBlocks(blocks)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(blocksCmd)
	blocksCmd.Flags().BoolVarP(&pending, "pending", "p", false, "Print the pending transactions instead.")
}
