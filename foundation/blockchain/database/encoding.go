package database

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// encodingVersion is written as the first field of every encoded block so
// the layout can change without producing colliding digests.
const encodingVersion uint = 1

// blockRLP is the canonical form of a block that is hashed. RLP length
// prefixes every field so no two different blocks share an encoding.
type blockRLP struct {
	Version       uint
	TimeStamp     uint64
	Trans         []txRLP
	PrevBlockHash string
	Nonce         uint64
}

// txRLP is the canonical form of a transaction inside a block. RLP has no
// signed integers so the amount is carried in two's complement.
type txRLP struct {
	HasFrom bool
	From    string
	To      string
	Amount  uint64
}

// encode produces the canonical bytes for the block content, the block's
// own hash is not part of it.
func (b Block) encode() ([]byte, error) {
	trans := make([]txRLP, len(b.Trans))
	for i, tx := range b.Trans {
		trans[i] = txRLP{
			HasFrom: !tx.IsReward(),
			From:    tx.From,
			To:      tx.To,
			Amount:  uint64(tx.Amount),
		}
	}

	v := blockRLP{
		Version:       encodingVersion,
		TimeStamp:     b.TimeStamp,
		Trans:         trans,
		PrevBlockHash: b.PrevBlockHash,
		Nonce:         b.Nonce,
	}

	return rlp.EncodeToBytes(v)
}
