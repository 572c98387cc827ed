package worker

import (
	"context"
	"time"
)

// miningOperations handles mining.
func (w *Worker) miningOperations() {
	w.evHandler("worker: miningOperations: G started")
	defer w.evHandler("worker: miningOperations: G completed")

	for {
		select {
		case <-w.startMining:
			if !w.isShutdown() {
				w.runMiningOperation()
			}
		case <-w.shut:
			w.evHandler("worker: miningOperations: received shut signal")
			return
		}
	}
}

// runMiningOperation mines the pending transactions of the ledger into a
// new block paying the reward to the worker's miner account.
func (w *Worker) runMiningOperation() {
	w.evHandler("worker: runMiningOperation: MINING: started")
	defer w.evHandler("worker: runMiningOperation: MINING: completed")

	// Drain the cancel mining channel before starting.
	select {
	case <-w.cancelMining:
		w.evHandler("worker: runMiningOperation: MINING: drained cancel channel")
	default:
	}

	// Create a context so mining can be cancelled.
	var ctx context.Context
	var cancel context.CancelFunc
	switch {
	case w.miningTimeout > 0:
		ctx, cancel = context.WithTimeout(context.Background(), w.miningTimeout)
	default:
		ctx, cancel = context.WithCancel(context.Background())
	}
	defer cancel()

	// This G exists to cancel the mining operation.
	done := make(chan struct{})
	go func() {
		defer close(done)

		select {
		case <-w.cancelMining:
			w.evHandler("worker: runMiningOperation: MINING: CANCEL: requested")
			cancel()
		case <-w.shut:
			cancel()
		case <-ctx.Done():
		}
	}()

	t := time.Now()
	block, err := w.ledger.MinePendingTransactions(ctx, w.minerAccount)
	duration := time.Since(t)

	// Release the cancel G and wait for it to terminate.
	cancel()
	<-done

	w.evHandler("worker: runMiningOperation: MINING: mining duration[%v]", duration)

	if err != nil {
		switch {
		case ctx.Err() != nil:
			w.evHandler("worker: runMiningOperation: MINING: CANCEL: complete: %s", ctx.Err())
		default:
			w.evHandler("worker: runMiningOperation: MINING: ERROR: %s", err)
		}
		return
	}

	w.evHandler("worker: runMiningOperation: MINING: block[%s] trans[%d]", block.Hash, len(block.Trans))
}
