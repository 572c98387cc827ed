package database_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/digest"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func noop(v string, args ...any) {}

func hashFunc(t *testing.T) digest.Func {
	fn, err := digest.Retrieve(digest.StrategySHA256)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to retrieve the hash strategy: %v", failed, err)
	}
	return fn
}

// =============================================================================

func TestNewBlock(t *testing.T) {
	fn := hashFunc(t)

	t.Log("Given the need to construct a new block.")
	{
		trans := []database.Tx{
			database.NewTx("alice", "bob", 100),
			database.NewTx("bob", "alice", 50),
		}

		b := database.NewBlock(fn, 1523577600000, trans, digest.ZeroHash)

		if b.Nonce != 0 {
			t.Fatalf("\t%s\tShould start with a zero nonce, got %d.", failed, b.Nonce)
		}
		t.Logf("\t%s\tShould start with a zero nonce.", success)

		if b.Hash != b.CalculateHash(fn) {
			t.Fatalf("\t%s\tShould have the hash of its content.", failed)
		}
		t.Logf("\t%s\tShould have the hash of its content.", success)

		trans[0].Amount = 1_000
		if b.Trans[0].Amount != 100 {
			t.Fatalf("\t%s\tShould own a copy of the transactions.", failed)
		}
		t.Logf("\t%s\tShould own a copy of the transactions.", success)

		empty := database.NewBlock(fn, 1523577600000, nil, digest.ZeroHash)
		if empty.Trans == nil || len(empty.Trans) != 0 {
			t.Fatalf("\t%s\tShould allow a block with no transactions.", failed)
		}
		t.Logf("\t%s\tShould allow a block with no transactions.", success)
	}
}

func TestHashCoversContent(t *testing.T) {
	fn := hashFunc(t)

	base := database.NewBlock(fn, 1000, []database.Tx{database.NewTx("ab", "c", 1)}, digest.ZeroHash)

	type table struct {
		name  string
		block database.Block
	}

	tt := []table{
		{"field-boundary", database.NewBlock(fn, 1000, []database.Tx{database.NewTx("a", "bc", 1)}, digest.ZeroHash)},
		{"timestamp", database.NewBlock(fn, 1001, base.Trans, digest.ZeroHash)},
		{"amount", database.NewBlock(fn, 1000, []database.Tx{database.NewTx("ab", "c", 2)}, digest.ZeroHash)},
		{"negative-amount", database.NewBlock(fn, 1000, []database.Tx{database.NewTx("ab", "c", -1)}, digest.ZeroHash)},
		{"reward", database.NewBlock(fn, 1000, []database.Tx{database.NewRewardTx("c", 1)}, digest.ZeroHash)},
		{"prev-hash", database.NewBlock(fn, 1000, base.Trans, "0x01")},
		{"order", database.NewBlock(fn, 1000, append(base.Trans, database.NewTx("x", "y", 1)), digest.ZeroHash)},
	}

	t.Log("Given the need for the hash to cover every field of the block.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				if tst.block.Hash == base.Hash {
					t.Fatalf("\t%s\tTest %d:\tShould get a different hash when the %s changes.", failed, testID, tst.name)
				}
				t.Logf("\t%s\tTest %d:\tShould get a different hash when the %s changes.", success, testID, tst.name)
			}

			t.Run(tst.name, f)
		}

		nonce := base.Clone()
		nonce.Nonce++
		if nonce.CalculateHash(fn) == base.Hash {
			t.Fatalf("\t%s\tShould get a different hash when the nonce changes.", failed)
		}
		t.Logf("\t%s\tShould get a different hash when the nonce changes.", success)
	}
}

func TestPOW(t *testing.T) {
	fn := hashFunc(t)

	type table struct {
		name       string
		difficulty uint
	}

	tt := []table{
		{"difficulty-0", 0},
		{"difficulty-1", 1},
		{"difficulty-2", 2},
	}

	t.Log("Given the need to mine blocks.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				b := database.NewBlock(fn, 1523577600000, []database.Tx{database.NewTx("alice", "bob", 10)}, digest.ZeroHash)

				if err := database.POW(context.Background(), fn, tst.difficulty, &b, noop); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to mine the block: %v", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould be able to mine the block.", success, testID)

				prefix := "0x" + strings.Repeat("0", int(tst.difficulty))
				if !strings.HasPrefix(b.Hash, prefix) {
					t.Fatalf("\t%s\tTest %d:\tShould have a hash starting with %s, got %s.", failed, testID, prefix, b.Hash)
				}
				t.Logf("\t%s\tTest %d:\tShould have a hash starting with %s.", success, testID, prefix)

				if b.Hash != b.CalculateHash(fn) {
					t.Fatalf("\t%s\tTest %d:\tShould have the hash of its content.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould have the hash of its content.", success, testID)

				if tst.difficulty == 0 && b.Nonce != 0 {
					t.Fatalf("\t%s\tTest %d:\tShould not change the nonce with no difficulty, got %d.", failed, testID, b.Nonce)
				}
			}

			t.Run(tst.name, f)
		}
	}
}

func TestPOWCancel(t *testing.T) {
	fn := hashFunc(t)

	t.Log("Given the need to cancel a mining operation.")
	{
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		b := database.NewBlock(fn, 1523577600000, nil, digest.ZeroHash)

		err := database.POW(ctx, fn, 64, &b, noop)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("\t%s\tShould get a cancelled error, got %v.", failed, err)
		}
		t.Logf("\t%s\tShould get a cancelled error.", success)
	}
}

func TestValidateBlock(t *testing.T) {
	fn := hashFunc(t)

	t.Log("Given the need to validate a block against its parent.")
	{
		parent := database.NewBlock(fn, 1000, nil, digest.ZeroHash)

		b := database.NewBlock(fn, 2000, []database.Tx{database.NewTx("alice", "bob", 100)}, parent.Hash)
		if err := database.POW(context.Background(), fn, 1, &b, noop); err != nil {
			t.Fatalf("\t%s\tShould be able to mine the block: %v", failed, err)
		}

		if err := b.ValidateBlock(fn, parent); err != nil {
			t.Fatalf("\t%s\tShould validate an untouched block: %v", failed, err)
		}
		t.Logf("\t%s\tShould validate an untouched block.", success)

		tampered := b.Clone()
		tampered.Trans[0].Amount = 1_000
		if err := tampered.ValidateBlock(fn, parent); !errors.Is(err, database.ErrHashMismatch) {
			t.Fatalf("\t%s\tShould detect a changed amount, got %v.", failed, err)
		}
		t.Logf("\t%s\tShould detect a changed amount.", success)

		if b.Trans[0].Amount != 100 {
			t.Fatalf("\t%s\tShould not change the original through a clone.", failed)
		}
		t.Logf("\t%s\tShould not change the original through a clone.", success)

		orphan := database.NewBlock(fn, 2000, nil, digest.ZeroHash)
		if err := orphan.ValidateBlock(fn, parent); !errors.Is(err, database.ErrBrokenLink) {
			t.Fatalf("\t%s\tShould detect a broken link, got %v.", failed, err)
		}
		t.Logf("\t%s\tShould detect a broken link.", success)
	}
}
