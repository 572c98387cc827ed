// Package worker implements background mining for the ledger.
package worker

import (
	"sync"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/ledger"
)

// Config represents the configuration required to run a worker.
type Config struct {
	Ledger        *ledger.Ledger
	MinerAccount  string
	MiningTimeout time.Duration
	EvHandler     ledger.EventHandler
}

// Worker manages the POW workflows for the ledger.
type Worker struct {
	ledger        *ledger.Ledger
	minerAccount  string
	miningTimeout time.Duration
	wg            sync.WaitGroup
	shut          chan struct{}
	startMining   chan bool
	cancelMining  chan bool
	evHandler     ledger.EventHandler
}

// Run creates a worker and starts up the mining goroutine. The worker is
// returned so the application can signal mining operations.
func Run(cfg Config) *Worker {
	ev := cfg.EvHandler
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	w := Worker{
		ledger:        cfg.Ledger,
		minerAccount:  cfg.MinerAccount,
		miningTimeout: cfg.MiningTimeout,
		shut:          make(chan struct{}),
		startMining:   make(chan bool, 1),
		cancelMining:  make(chan bool, 1),
		evHandler:     ev,
	}

	w.wg.Add(1)

	// We don't want to return until we know the G is up and running.
	hasStarted := make(chan bool)

	go func() {
		defer w.wg.Done()
		hasStarted <- true
		w.miningOperations()
	}()

	<-hasStarted

	return &w
}

// Shutdown terminates the goroutine performing work.
func (w *Worker) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	w.evHandler("worker: shutdown: signal cancel mining")
	w.SignalCancelMining()

	w.evHandler("worker: shutdown: terminate goroutines")
	close(w.shut)
	w.wg.Wait()
}

// SignalStartMining starts a mining operation. If there is already a signal
// pending in the channel, just return since a mining operation will start.
func (w *Worker) SignalStartMining() {
	select {
	case w.startMining <- true:
	default:
	}
	w.evHandler("worker: SignalStartMining: mining signaled")
}

// SignalCancelMining signals the G executing the runMiningOperation function
// to stop immediately.
func (w *Worker) SignalCancelMining() {
	select {
	case w.cancelMining <- true:
	default:
	}
	w.evHandler("worker: SignalCancelMining: MINING: CANCEL: signaled")
}

// =============================================================================

// isShutdown is used to test if a shutdown has been signaled.
func (w *Worker) isShutdown() bool {
	select {
	case <-w.shut:
		return true
	default:
		return false
	}
}
