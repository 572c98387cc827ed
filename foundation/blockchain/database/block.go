package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
)

// Set of error variables for block validation.
var (
	ErrHashMismatch = errors.New("block hash does not match block content")
	ErrBrokenLink   = errors.New("block is not linked to its parent")
)

// =============================================================================

// Block represents a group of transactions batched together.
type Block struct {
	TimeStamp     uint64 `json:"timestamp"`       // Bitcoin: Time the block was mined, unix milliseconds.
	Trans         []Tx   `json:"trans"`           // Transactions in the order they were included.
	PrevBlockHash string `json:"prev_block_hash"` // Bitcoin: Hash of the previous block in the chain.
	Hash          string `json:"hash"`            // Hash of this block's content.
	Nonce         uint64 `json:"nonce"`           // Bitcoin: Value identified to solve the hash solution.
}

// NewBlock constructs a block for the specified transactions with a zero
// nonce and the hash of its current content. The transactions are copied
// so the block owns them.
func NewBlock(fn digest.Func, timeStamp uint64, trans []Tx, prevBlockHash string) Block {
	b := Block{
		TimeStamp:     timeStamp,
		Trans:         copyTrans(trans),
		PrevBlockHash: prevBlockHash,
	}
	b.Hash = b.CalculateHash(fn)

	return b
}

// CalculateHash returns the hash of the block's current content.
func (b Block) CalculateHash(fn digest.Func) string {
	data, err := b.encode()
	if err != nil {
		return digest.ZeroHash
	}

	return digest.Hash(fn, data)
}

// Clone returns a copy of the block that shares no memory with the original.
func (b Block) Clone() Block {
	b.Trans = copyTrans(b.Trans)
	return b
}

// POW performs the work of mining to find a nonce that solves the
// cryptographic POW puzzle for the specified difficulty. Pointer semantics
// are being used since a nonce is being discovered. The search starts from
// the block's current nonce and is cancelled through the context.
func POW(ctx context.Context, fn digest.Func, difficulty uint, b *Block, ev func(v string, args ...any)) error {
	ev("database: POW: MINING: started: difficulty[%d] trans[%d]", difficulty, len(b.Trans))
	defer ev("database: POW: MINING: completed")

	// Log the transactions that are a part of this potential block.
	for _, tx := range b.Trans {
		ev("database: POW: MINING: tx[%s]", tx)
	}

	// The content may have changed since the block was constructed.
	b.Hash = b.CalculateHash(fn)

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("database: POW: MINING: attempts[%d]", attempts)
		}

		// Did we timeout trying to solve the problem.
		if ctx.Err() != nil {
			ev("database: POW: MINING: CANCELLED")
			return ctx.Err()
		}

		if digest.IsSolved(difficulty, b.Hash) {
			ev("database: POW: MINING: SOLVED: prevBlk[%s]: newBlk[%s]: nonce[%d]", b.PrevBlockHash, b.Hash, b.Nonce)
			ev("database: POW: MINING: attempts[%d]", attempts)
			return nil
		}

		b.Nonce++
		b.Hash = b.CalculateHash(fn)
	}
}

// ValidateBlock checks the block's hash against its content and its link to
// the previous block in the chain.
func (b Block) ValidateBlock(fn digest.Func, previousBlock Block) error {
	if hash := b.CalculateHash(fn); b.Hash != hash {
		return fmt.Errorf("%w: got %s, exp %s", ErrHashMismatch, b.Hash, hash)
	}

	if b.PrevBlockHash != previousBlock.Hash {
		return fmt.Errorf("%w: got %s, exp %s", ErrBrokenLink, b.PrevBlockHash, previousBlock.Hash)
	}

	return nil
}

// =============================================================================

// copyTrans makes a copy of the transactions. A nil or empty set of
// transactions produces an empty, non-nil slice.
func copyTrans(trans []Tx) []Tx {
	cpy := make([]Tx, len(trans))
	copy(cpy, trans)
	return cpy
}
