package ledger

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// RetrieveGenesis returns a copy of the genesis information.
func (l *Ledger) RetrieveGenesis() genesis.Genesis {
	return l.genesis
}

// RetrieveDifficulty returns the number of leading zeros required of a
// mined block hash.
func (l *Ledger) RetrieveDifficulty() uint {
	return l.difficulty
}

// RetrieveMiningReward returns the amount paid for mining a block.
func (l *Ledger) RetrieveMiningReward() int64 {
	return l.miningReward
}

// RetrieveLatestBlock returns a copy of the current latest block.
func (l *Ledger) RetrieveLatestBlock() database.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.chain[len(l.chain)-1].Clone()
}

// QueryLatestBlock returns the position and a copy of the current latest
// block, read together.
func (l *Ledger) QueryLatestBlock() (int, database.Block) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	index := len(l.chain) - 1
	return index, l.chain[index].Clone()
}

// RetrievePending returns a copy of the pending transactions in the order
// they will be included.
func (l *Ledger) RetrievePending() []database.Tx {
	l.mu.RLock()
	defer l.mu.RUnlock()

	trans := make([]database.Tx, len(l.pending))
	copy(trans, l.pending)
	return trans
}

// RetrieveBlocks returns a copy of the chain starting with the genesis block.
func (l *Ledger) RetrieveBlocks() []database.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	blocks := make([]database.Block, len(l.chain))
	for i, block := range l.chain {
		blocks[i] = block.Clone()
	}
	return blocks
}

// QueryLength returns the number of blocks in the chain, genesis included.
func (l *Ledger) QueryLength() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.chain)
}

// QueryBlock returns a copy of the block at the specified index.
func (l *Ledger) QueryBlock(index int) (database.Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.chain) {
		return database.Block{}, ErrNotFound
	}

	return l.chain[index].Clone(), nil
}

// QueryBalance calculates the balance for the specified account by
// replaying every transaction in the chain. Pending transactions are not
// part of the balance.
func (l *Ledger) QueryBalance(account string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var balance int64
	for _, block := range l.chain {
		for _, tx := range block.Trans {
			if !tx.IsReward() && tx.From == account {
				balance -= tx.Amount
			}

			if tx.To == account {
				balance += tx.Amount
			}
		}
	}

	return balance
}

// QueryBalances calculates the balance for every account that is part of a
// transaction in the chain.
func (l *Ledger) QueryBalances() map[string]int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	balances := make(map[string]int64)
	for _, block := range l.chain {
		for _, tx := range block.Trans {
			if !tx.IsReward() {
				balances[tx.From] -= tx.Amount
			}
			balances[tx.To] += tx.Amount
		}
	}

	return balances
}
