package ledger

import (
	"context"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// MinePendingTransactions creates a block from the pending transactions,
// solves the POW puzzle for it, and appends it to the chain. The pending
// transactions are then replaced by a single transaction paying the mining
// reward to the specified account, so the reward is included by the next
// block that is mined. If the context is cancelled, the chain and the
// pending transactions are left as they were.
func (l *Ledger) MinePendingTransactions(ctx context.Context, rewardAccount string) (database.Block, error) {
	_, block, err := l.MineBlock(ctx, rewardAccount)
	return block, err
}

// MineBlock performs the same work as MinePendingTransactions and also
// returns the position of the new block in the chain.
func (l *Ledger) MineBlock(ctx context.Context, rewardAccount string) (int, database.Block, error) {
	l.evHandler("ledger: MineBlock: MINING: started: reward[%s]", rewardAccount)
	defer l.evHandler("ledger: MineBlock: MINING: completed")

	// Only one mining operation can run at a time.
	select {
	case l.mining <- struct{}{}:
	case <-ctx.Done():
		return 0, database.Block{}, ctx.Err()
	}
	defer func() { <-l.mining }()

	// Capture the current pending batch and the tail of the chain.
	var trans []database.Tx
	var latest database.Block
	l.mu.RLock()
	{
		trans = make([]database.Tx, len(l.pending))
		copy(trans, l.pending)
		latest = l.chain[len(l.chain)-1]
	}
	l.mu.RUnlock()

	// Block timestamps never go backwards, even if the clock does.
	timeStamp := uint64(l.now().UTC().UnixMilli())
	if timeStamp < latest.TimeStamp {
		timeStamp = latest.TimeStamp
	}

	block := database.NewBlock(l.hashFn, timeStamp, trans, latest.Hash)

	// Perform the proof of work mining operation. This can be cancelled.
	if err := database.POW(ctx, l.hashFn, l.difficulty, &block, l.evHandler); err != nil {
		return 0, database.Block{}, err
	}

	l.evHandler("ledger: MineBlock: MINING: append block[%s] trans[%d]", block.Hash, len(block.Trans))

	l.mu.Lock()
	defer l.mu.Unlock()

	l.chain = append(l.chain, block)
	index := len(l.chain) - 1

	// Transactions created while mining was in progress stay pending behind
	// the reward for this block.
	late := l.pending[len(trans):]
	pending := make([]database.Tx, 0, len(late)+1)
	pending = append(pending, database.NewRewardTx(rewardAccount, l.miningReward))
	l.pending = append(pending, late...)

	return index, block.Clone(), nil
}
