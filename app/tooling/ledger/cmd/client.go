package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ardanlabs/ledger/business/web/errs"
)

var client = http.Client{
	Timeout: 2 * time.Minute,
}

// get performs a GET against the node and decodes the response into v.
func get(path string, v any) error {
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(resp, v)
}

// post sends the body as JSON to the node and decodes the response into v.
func post(path string, body any, v any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(resp, v)
}

func decode(resp *http.Response, v any) error {
	if resp.StatusCode >= http.StatusBadRequest {
		var er errs.Response
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
			return fmt.Errorf("node responded %s", resp.Status)
		}
		return &nodeError{status: resp.StatusCode, resp: er}
	}

	if v == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// nodeError represents an error response returned by the node.
type nodeError struct {
	status int
	resp   errs.Response
}

func (ne *nodeError) Error() string {
	if len(ne.resp.Fields) == 0 {
		return fmt.Sprintf("node responded %d: %s", ne.status, ne.resp.Error)
	}
	return fmt.Sprintf("node responded %d: %s %v", ne.status, ne.resp.Error, ne.resp.Fields)
}

// =============================================================================

type tx struct {
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
	Reward bool   `json:"reward"`
}

type block struct {
	Index         int    `json:"index"`
	TimeStamp     uint64 `json:"timestamp"`
	PrevBlockHash string `json:"prev_block_hash"`
	Hash          string `json:"hash"`
	Nonce         uint64 `json:"nonce"`
	Trans         []tx   `json:"trans"`
}

type balance struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Pending     int       `json:"pending"`
	Balances    []balance `json:"balances"`
}

type report struct {
	Valid  bool   `json:"valid"`
	Index  int    `json:"index"`
	Reason string `json:"reason"`
	Detail string `json:"detail"`
}
