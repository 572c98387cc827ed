package cmd

import (
	"strconv"
	"time"

	"github.com/pterm/pterm"
)

func renderError(err error) string {
	return pterm.Error.Sprint(err)
}

func renderBlocks(blocks []block) (string, error) {
	data := pterm.TableData{
		{"Index", "Time", "Nonce", "Trans", "Hash", "Prev Hash"},
	}

	for _, blk := range blocks {
		data = append(data, []string{
			strconv.Itoa(blk.Index),
			time.UnixMilli(int64(blk.TimeStamp)).UTC().Format(time.RFC3339),
			strconv.FormatUint(blk.Nonce, 10),
			strconv.Itoa(len(blk.Trans)),
			shorten(blk.Hash),
			shorten(blk.PrevBlockHash),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func renderTrans(trans []tx) (string, error) {
	data := pterm.TableData{
		{"From", "To", "Amount"},
	}

	for _, tx := range trans {
		from := tx.From
		if tx.Reward {
			from = pterm.LightYellow("reward")
		}
		data = append(data, []string{from, tx.To, strconv.FormatInt(tx.Amount, 10)})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func renderBalances(bals balances) (string, error) {
	data := pterm.TableData{
		{"Address", "Balance"},
	}

	for _, bal := range bals.Balances {
		amount := strconv.FormatInt(bal.Balance, 10)
		if bal.Balance < 0 {
			amount = pterm.LightRed(amount)
		}
		data = append(data, []string{bal.Address, amount})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}

	return table + pterm.Sprintfln("latest block %s, %d pending", shorten(bals.LatestBlock), bals.Pending), nil
}

func renderReport(rpt report) string {
	if rpt.Valid {
		return pterm.Success.Sprint("chain is valid")
	}
	return pterm.Error.Sprintf("chain is invalid at block %d: %s\n%s", rpt.Index, rpt.Reason, rpt.Detail)
}

// shorten trims a hash for display.
func shorten(hash string) string {
	const size = 18
	if len(hash) <= size {
		return hash
	}
	return hash[:size] + ".."
}
