// Package genesis maintains access to the genesis settings.
package genesis

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
)

// Genesis represents the genesis settings.
type Genesis struct {
	Date         time.Time `json:"date"`          // The fixed timestamp of the genesis block.
	Difficulty   uint16    `json:"difficulty"`    // How difficult it needs to be to solve the work problem.
	MiningReward int64     `json:"mining_reward"` // Reward for mining a block.
	HashStrategy string    `json:"hash_strategy"` // Name of the hash function used for blocks.
}

// Default returns the genesis settings used when no file is provided.
func Default() Genesis {
	return Genesis{
		Date:         time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC),
		Difficulty:   4,
		MiningReward: 100,
		HashStrategy: digest.StrategySHA256,
	}
}

// =============================================================================

// Load opens and consumes the genesis file. Fields missing from the file
// keep their default values.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	genesis := Default()
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, fmt.Errorf("decoding genesis file %q: %w", path, err)
	}

	return genesis, nil
}

// Block constructs the fixed first block of the chain. It holds no
// transactions, points at the zero hash, and is never mined.
func (g Genesis) Block(fn digest.Func) database.Block {
	return database.NewBlock(fn, uint64(g.Date.UnixMilli()), nil, digest.ZeroHash)
}
