// Package digest provides the hashing support for the blockchain. Different
// hash strategies can be selected by name and every digest is represented as
// a 0x prefixed hex string.
package digest

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ZeroHash represents a hash code of zeros. It is used as the previous
// hash of the genesis block.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// List of different hash strategies.
const (
	StrategySHA256    = "sha256"
	StrategyKeccak256 = "keccak256"
)

// Map of different hash strategies with functions.
var strategies = map[string]Func{
	StrategySHA256:    sha256Sum,
	StrategyKeccak256: keccak256Sum,
}

// Func defines a function that produces a fixed size digest for the
// specified data. All functions MUST be deterministic.
type Func func(data []byte) []byte

// Retrieve returns the specified hash strategy function.
func Retrieve(strategy string) (Func, error) {
	fn, exists := strategies[strings.ToLower(strategy)]
	if !exists {
		return nil, fmt.Errorf("strategy %q does not exist", strategy)
	}
	return fn, nil
}

// Hash returns the hex encoded digest of the data using the specified
// hash strategy.
func Hash(fn Func, data []byte) string {
	return hexutil.Encode(fn(data))
}

// MaxDifficulty returns the largest difficulty a digest produced by the
// specified function can satisfy: the number of hex characters it encodes to.
func MaxDifficulty(fn Func) uint {
	return uint(len(fn(nil)) * 2)
}

// IsSolved checks the hash to make sure it complies with the POW rules.
// We need to match a difficulty number of leading 0's in the hex
// representation of the hash, not counting the 0x prefix.
func IsSolved(difficulty uint, hash string) bool {
	hash = strings.TrimPrefix(hash, "0x")

	if difficulty > uint(len(hash)) {
		return false
	}

	return hash[:difficulty] == strings.Repeat("0", int(difficulty))
}

// =============================================================================

func sha256Sum(data []byte) []byte {
	hash := sha256.Sum256(data)
	return hash[:]
}

func keccak256Sum(data []byte) []byte {
	return crypto.Keccak256(data)
}
