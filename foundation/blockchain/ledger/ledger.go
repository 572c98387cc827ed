// Package ledger is the core API for the blockchain. It owns the chain of
// blocks and the pending transactions and implements the mining, balance,
// and validation rules.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// Set of error variables for the ledger.
var (
	ErrNotFound   = errors.New("block not found")
	ErrDifficulty = errors.New("difficulty can never be solved")
)

// EventHandler defines a function that is called when events
// occur in the processing of the ledger.
type EventHandler func(v string, args ...any)

// =============================================================================

// Config represents the configuration required to construct a ledger.
type Config struct {
	Genesis   genesis.Genesis
	EvHandler EventHandler
	Now       func() time.Time
}

// Ledger manages the chain of blocks and the pending transactions. All
// methods are safe for concurrent use.
type Ledger struct {
	genesis      genesis.Genesis
	hashFn       digest.Func
	difficulty   uint
	miningReward int64
	evHandler    EventHandler
	now          func() time.Time

	// mining is a semaphore that allows one mining operation at a time.
	mining chan struct{}

	mu      sync.RWMutex
	chain   []database.Block
	pending []database.Tx
}

// New constructs a ledger holding only the genesis block.
func New(cfg Config) (*Ledger, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	hashFn, err := digest.Retrieve(cfg.Genesis.HashStrategy)
	if err != nil {
		return nil, err
	}

	// A difficulty longer than the hex digest would leave POW searching forever.
	if limit := digest.MaxDifficulty(hashFn); uint(cfg.Genesis.Difficulty) > limit {
		return nil, fmt.Errorf("%w: difficulty[%d] exceeds the %d hex characters of a %s digest", ErrDifficulty, cfg.Genesis.Difficulty, limit, cfg.Genesis.HashStrategy)
	}

	ldg := Ledger{
		genesis:      cfg.Genesis,
		hashFn:       hashFn,
		difficulty:   uint(cfg.Genesis.Difficulty),
		miningReward: cfg.Genesis.MiningReward,
		evHandler:    ev,
		now:          now,
		mining:       make(chan struct{}, 1),
		chain:        []database.Block{cfg.Genesis.Block(hashFn)},
	}

	ev("ledger: New: genesis[%s] difficulty[%d] reward[%d]", ldg.chain[0].Hash, ldg.difficulty, ldg.miningReward)

	return &ldg, nil
}

// CreateTransaction adds the transaction to the end of the pending
// transactions and returns the number of pending transactions. No balance
// checks are performed.
func (l *Ledger) CreateTransaction(tx database.Tx) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, tx)
	l.evHandler("ledger: CreateTransaction: tx[%s] pending[%d]", tx, len(l.pending))

	return len(l.pending)
}

// Tamper gives the specified function direct access to a stored block. It
// exists to demonstrate that changes to the chain are detected by Verify.
func (l *Ledger) Tamper(index int, fn func(b *database.Block)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.chain) {
		return ErrNotFound
	}

	l.evHandler("ledger: Tamper: WARNING: block[%d] modified", index)
	fn(&l.chain[index])

	return nil
}
