// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/ledger"
	"github.com/ardanlabs/ledger/foundation/blockchain/worker"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/validate"
	"github.com/ardanlabs/ledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log           *zap.SugaredLogger
	Ledger        *ledger.Ledger
	Worker        *worker.Worker
	Evts          *events.Events
	WS            websocket.Upgrader
	MiningTimeout time.Duration
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch, err := h.Evts.Acquire(v.TraceID)
	if err != nil {
		return nil
	}
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.Ledger.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Blocks returns every block in the chain starting with genesis.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	dbBlocks := h.Ledger.RetrieveBlocks()

	blocks := make([]block, len(dbBlocks))
	for i, dbBlock := range dbBlocks {
		blocks[i] = toBlock(i, dbBlock)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// LatestBlock returns the block at the tail of the chain.
func (h Handlers) LatestBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	index, dbBlock := h.Ledger.QueryLatestBlock()

	return web.Respond(ctx, w, toBlock(index, dbBlock), http.StatusOK)
}

// BlockByIndex returns the block at the specified position in the chain.
func (h Handlers) BlockByIndex(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	index, err := strconv.Atoi(web.Param(r, "index"))
	if err != nil {
		return errs.NewTrusted(fmt.Errorf("invalid block index: %w", err), http.StatusBadRequest)
	}

	dbBlock, err := h.Ledger.QueryBlock(index)
	if err != nil {
		return fmt.Errorf("query block[%d]: %w", index, err)
	}

	return web.Respond(ctx, w, toBlock(index, dbBlock), http.StatusOK)
}

// Pending returns the set of transactions waiting to be mined.
func (h Handlers) Pending(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	trans := toTxs(h.Ledger.RetrievePending())
	return web.Respond(ctx, w, trans, http.StatusOK)
}

// SubmitTransaction adds a new transaction to the pending transactions.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var stx submitTx
	if err := web.Decode(r, &stx); err != nil {
		return decodeError(err)
	}

	h.Log.Infow("submit tran", "traceid", v.TraceID, "from", stx.From, "to", stx.To, "amount", stx.Amount)

	pending := h.Ledger.CreateTransaction(database.NewTx(stx.From, stx.To, stx.Amount))

	resp := struct {
		Status  string `json:"status"`
		Pending int    `json:"pending"`
	}{
		Status:  "transaction added to pending",
		Pending: pending,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mine mines the pending transactions into a new block and waits for the
// block to be appended to the chain.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req mineRequest
	if err := web.Decode(r, &req); err != nil {
		return decodeError(err)
	}

	if h.MiningTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.MiningTimeout)
		defer cancel()
	}

	h.Log.Infow("mine", "traceid", v.TraceID, "reward", req.Reward)

	index, dbBlock, err := h.Ledger.MineBlock(ctx, req.Reward)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return errs.NewTrusted(fmt.Errorf("mining cancelled: %w", err), http.StatusServiceUnavailable)
		}
		return fmt.Errorf("mine: %w", err)
	}

	return web.Respond(ctx, w, toBlock(index, dbBlock), http.StatusOK)
}

// SignalMining asks the background worker to mine the pending transactions.
func (h Handlers) SignalMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Worker.SignalStartMining()

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining signaled",
	}

	return web.Respond(ctx, w, resp, http.StatusAccepted)
}

// Balances returns the balance for the specified address or for every
// address that is part of the chain.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	address := web.Param(r, "address")

	bals := []balance{}
	switch address {
	case "":
		for address, amount := range h.Ledger.QueryBalances() {
			bals = append(bals, balance{Address: address, Balance: amount})
		}
		sort.Slice(bals, func(i, j int) bool {
			return bals[i].Address < bals[j].Address
		})

	default:
		bals = []balance{{Address: address, Balance: h.Ledger.QueryBalance(address)}}
	}

	resp := balances{
		LatestBlock: h.Ledger.RetrieveLatestBlock().Hash,
		Pending:     len(h.Ledger.RetrievePending()),
		Balances:    bals,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Validate verifies the chain and returns the report.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Ledger.Verify(), http.StatusOK)
}

// =============================================================================

// decodeError converts a failure to decode a request body into an error
// the client can act on. Field errors pass through so their details reach
// the response.
func decodeError(err error) error {
	if validate.IsFieldErrors(err) {
		return err
	}
	return errs.NewTrusted(fmt.Errorf("unable to decode payload: %w", err), http.StatusBadRequest)
}
