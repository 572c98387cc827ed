package public

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

type tx struct {
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
	Reward bool   `json:"reward"`
}

func toTx(dbTx database.Tx) tx {
	return tx{
		From:   dbTx.From,
		To:     dbTx.To,
		Amount: dbTx.Amount,
		Reward: dbTx.IsReward(),
	}
}

func toTxs(dbTxs []database.Tx) []tx {
	trans := make([]tx, len(dbTxs))
	for i, dbTx := range dbTxs {
		trans[i] = toTx(dbTx)
	}
	return trans
}

type block struct {
	Index         int    `json:"index"`
	TimeStamp     uint64 `json:"timestamp"`
	PrevBlockHash string `json:"prev_block_hash"`
	Hash          string `json:"hash"`
	Nonce         uint64 `json:"nonce"`
	Trans         []tx   `json:"trans"`
}

func toBlock(index int, dbBlock database.Block) block {
	return block{
		Index:         index,
		TimeStamp:     dbBlock.TimeStamp,
		PrevBlockHash: dbBlock.PrevBlockHash,
		Hash:          dbBlock.Hash,
		Nonce:         dbBlock.Nonce,
		Trans:         toTxs(dbBlock.Trans),
	}
}

type balance struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Pending     int       `json:"pending"`
	Balances    []balance `json:"balances"`
}

// =============================================================================

type submitTx struct {
	From   string `json:"from" validate:"required"`
	To     string `json:"to" validate:"required"`
	Amount int64  `json:"amount"`
}

type mineRequest struct {
	Reward string `json:"reward" validate:"required"`
}
