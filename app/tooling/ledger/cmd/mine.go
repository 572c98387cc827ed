package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reward     string
	background bool
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the pending transactions into a new block.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if background {
			if err := post("/v1/mining/signal", struct{}{}, nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "mining signaled")
			return nil
		}

		body := struct {
			Reward string `json:"reward"`
		}{
			Reward: reward,
		}

		var blk block
		if err := post("/v1/mining/mine", body, &blk); err != nil {
			return err
		}

		out, err := renderBlocks([]block{blk})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mineCmd)
	mineCmd.Flags().StringVarP(&reward, "reward", "r", "", "Address paid the mining reward.")
	mineCmd.Flags().BoolVarP(&background, "background", "b", false, "Signal the node's miner instead of waiting for the block.")
}
