package cmd

import (
	"bytes"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/app/services/node/handlers"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/ledger"
	"github.com/ardanlabs/ledger/foundation/blockchain/worker"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func startNode(t *testing.T) string {
	gen := genesis.Default()
	gen.Difficulty = 1

	ldg, err := ledger.New(ledger.Config{Genesis: gen})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct a ledger: %v", failed, err)
	}

	w := worker.Run(worker.Config{Ledger: ldg, MinerAccount: "miner1"})
	t.Cleanup(w.Shutdown)

	srv := httptest.NewServer(handlers.PublicMux(handlers.MuxConfig{
		Shutdown: make(chan os.Signal, 1),
		Log:      zap.NewNop().Sugar(),
		Ledger:   ldg,
		Worker:   w,
		Evts:     events.New(),
	}))
	t.Cleanup(srv.Close)

	return srv.URL
}

func execute(nodeURL string, args ...string) (string, error) {

	// Flags keep their values between executions of the same command.
	from, to, amount = "", "", 0
	reward, background, pending = "", false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--url", nodeURL))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	pterm.DisableColor()

	t.Log("Given the need to drive a node from the command line.")
	{
		nodeURL := startNode(t)

		t.Logf("\tTest 0:\tWhen sending a transaction and mining twice.")
		{
			out, err := execute(nodeURL, "send", "--from", "A", "--to", "B", "--amount", "50")
			if err != nil {
				t.Fatalf("\t%s\tShould be able to send a transaction: %v", failed, err)
			}
			if !strings.Contains(out, "1 pending") {
				t.Fatalf("\t%s\tShould report one pending transaction: %q", failed, out)
			}
			t.Logf("\t%s\tShould be able to send a transaction.", success)

			for i := 0; i < 2; i++ {
				if _, err := execute(nodeURL, "mine", "--reward", "M"); err != nil {
					t.Fatalf("\t%s\tShould be able to mine a block: %v", failed, err)
				}
			}
			t.Logf("\t%s\tShould be able to mine two blocks.", success)

			out, err = execute(nodeURL, "balance", "M")
			if err != nil {
				t.Fatalf("\t%s\tShould be able to get a balance: %v", failed, err)
			}
			if !strings.Contains(out, "100") {
				t.Fatalf("\t%s\tShould show the mining reward for M: %q", failed, out)
			}
			t.Logf("\t%s\tShould show the mining reward for M.", success)

			out, err = execute(nodeURL, "blocks")
			if err != nil {
				t.Fatalf("\t%s\tShould be able to list the blocks: %v", failed, err)
			}
			if hashes := strings.Count(out, ".."); hashes != 6 {
				t.Fatalf("\t%s\tShould list three blocks with two hashes each: got %d\n%s", failed, hashes, out)
			}
			t.Logf("\t%s\tShould list three blocks with two hashes each.", success)

			out, err = execute(nodeURL, "blocks", "--pending")
			if err != nil {
				t.Fatalf("\t%s\tShould be able to list the pending transactions: %v", failed, err)
			}
			if !strings.Contains(out, "reward") {
				t.Fatalf("\t%s\tShould list the pending reward: %q", failed, out)
			}
			t.Logf("\t%s\tShould list the pending reward.", success)

			out, err = execute(nodeURL, "validate")
			if err != nil {
				t.Fatalf("\t%s\tShould report a valid chain: %v", failed, err)
			}
			if !strings.Contains(out, "chain is valid") {
				t.Fatalf("\t%s\tShould report a valid chain: %q", failed, out)
			}
			t.Logf("\t%s\tShould report a valid chain.", success)
		}

		t.Logf("\tTest 1:\tWhen an address holds characters that are special in a URL.")
		{
			const address = "x/y?z#w"

			if _, err := execute(nodeURL, "send", "--from", "A", "--to", address, "--amount", "7"); err != nil {
				t.Fatalf("\t%s\tShould be able to send a transaction: %v", failed, err)
			}
			if _, err := execute(nodeURL, "mine", "--reward", "M"); err != nil {
				t.Fatalf("\t%s\tShould be able to mine a block: %v", failed, err)
			}

			out, err := execute(nodeURL, "balance", address)
			if err != nil {
				t.Fatalf("\t%s\tShould be able to get the balance: %v", failed, err)
			}
			if !strings.Contains(out, address) || !strings.Contains(out, " 7") {
				t.Fatalf("\t%s\tShould show the balance of %q: %q", failed, address, out)
			}
			t.Logf("\t%s\tShould show the balance of the exact address.", success)
		}

		t.Logf("\tTest 2:\tWhen the node rejects the request.")
		{
			_, err := execute(nodeURL, "send", "--from", "A", "--amount", "50")
			if err == nil {
				t.Fatalf("\t%s\tShould fail without a recipient.", failed)
			}
			if !strings.Contains(err.Error(), "400") {
				t.Fatalf("\t%s\tShould carry the node status: %v", failed, err)
			}
			t.Logf("\t%s\tShould fail without a recipient.", success)
		}
	}
}
