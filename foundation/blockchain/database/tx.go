package database

import "fmt"

// Tx is the value transfer information between two parties. A transaction
// without a from address is a mining reward.
type Tx struct {
	From   string `json:"from,omitempty"` // Account sending the value, empty for a reward.
	To     string `json:"to"`             // Account receiving the value.
	Amount int64  `json:"amount"`         // Value being transferred.
}

// NewTx constructs a new transaction.
func NewTx(from string, to string, amount int64) Tx {
	return Tx{
		From:   from,
		To:     to,
		Amount: amount,
	}
}

// NewRewardTx constructs a transaction that pays the mining reward to the
// specified account.
func NewRewardTx(to string, amount int64) Tx {
	return Tx{
		To:     to,
		Amount: amount,
	}
}

// IsReward reports whether the transaction has no sender.
func (tx Tx) IsReward() bool {
	return tx.From == ""
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	from := tx.From
	if tx.IsReward() {
		from = "reward"
	}

	return fmt.Sprintf("%s->%s:%d", from, tx.To, tx.Amount)
}
