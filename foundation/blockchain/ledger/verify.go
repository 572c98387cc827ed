package ledger

import (
	"errors"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// Set of reasons a chain can fail verification.
const (
	ReasonHashMismatch = "hash-mismatch"
	ReasonBrokenLink   = "broken-link"
)

// Report describes the result of verifying the chain. When the chain is
// invalid, Index identifies the first block that failed.
type Report struct {
	Valid  bool   `json:"valid"`
	Index  int    `json:"index,omitempty"`
	Reason string `json:"reason,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// IsChainValid reports whether every block after genesis still matches its
// hash and links to the block before it.
func (l *Ledger) IsChainValid() bool {
	return l.Verify().Valid
}

// Verify walks the chain from the first block after genesis and reports the
// first block whose hash does not match its content or whose previous hash
// does not match the hash of the block before it. The genesis block is not
// checked.
func (l *Ledger) Verify() Report {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := 1; i < len(l.chain); i++ {
		err := l.chain[i].ValidateBlock(l.hashFn, l.chain[i-1])
		if err == nil {
			continue
		}

		rpt := Report{
			Index:  i,
			Detail: err.Error(),
		}

		switch {
		case errors.Is(err, database.ErrHashMismatch):
			rpt.Reason = ReasonHashMismatch
		case errors.Is(err, database.ErrBrokenLink):
			rpt.Reason = ReasonBrokenLink
		}

		l.evHandler("ledger: Verify: INVALID: block[%d]: %s", i, err)
		return rpt
	}

	return Report{Valid: true}
}
