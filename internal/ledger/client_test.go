package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/medchain/docanchor/internal/common"
)

func newTestLedger(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	contract := mustAddr(t, "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB")
	uploader := mustAddr(t, "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb")
	return NewClient(srv.URL, contract, uploader, 5*time.Millisecond, nil)
}

func decodeRPC(t *testing.T, r *http.Request) rpcRequest {
	t.Helper()
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Errorf("decode rpc request: %v", err)
	}
	return req
}

func writeResult(w http.ResponseWriter, result any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": 1, "result": result})
}

func TestHasPermission(t *testing.T) {
	granted := true
	c := newTestLedger(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRPC(t, r)
		if req.Method != "eth_call" {
			t.Errorf("method = %q, want eth_call", req.Method)
		}
		if granted {
			writeResult(w, "0x0000000000000000000000000000000000000000000000000000000000000001")
		} else {
			writeResult(w, "0x0000000000000000000000000000000000000000000000000000000000000000")
		}
	})

	ok, err := c.HasPermission(context.Background(), c.Uploader())
	if err != nil || !ok {
		t.Fatalf("HasPermission = %v, %v; want true", ok, err)
	}
	granted = false
	ok, err = c.HasPermission(context.Background(), c.Uploader())
	if err != nil || ok {
		t.Fatalf("HasPermission = %v, %v; want false", ok, err)
	}
}

func TestAnchor_ConfirmsAfterPolling(t *testing.T) {
	var polls atomic.Int32
	c := newTestLedger(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRPC(t, r)
		switch req.Method {
		case "eth_sendTransaction":
			writeResult(w, "0xtxhash01")
		case "eth_getTransactionReceipt":
			if polls.Add(1) < 3 {
				writeResult(w, nil)
				return
			}
			writeResult(w, map[string]string{
				"transactionHash": "0xtxhash01",
				"blockNumber":     "0x2a",
				"status":          "0x1",
			})
		default:
			t.Errorf("unexpected method %q", req.Method)
		}
	})

	subject := mustAddr(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	res, err := c.Anchor(context.Background(), subject, [32]byte{1}, []byte{0x01, 0x55})
	if err != nil {
		t.Fatalf("Anchor: %v", err)
	}
	if res.TxHash != "0xtxhash01" || res.BlockNumber != 42 {
		t.Fatalf("unexpected result %+v", res)
	}
	if polls.Load() < 3 {
		t.Fatalf("expected at least 3 receipt polls, got %d", polls.Load())
	}
}

func TestAnchor_Reverted(t *testing.T) {
	c := newTestLedger(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRPC(t, r)
		switch req.Method {
		case "eth_sendTransaction":
			writeResult(w, "0xtxhash02")
		case "eth_getTransactionReceipt":
			writeResult(w, map[string]string{
				"transactionHash": "0xtxhash02",
				"blockNumber":     "0x2b",
				"status":          "0x0",
			})
		}
	})

	subject := mustAddr(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	_, err := c.Anchor(context.Background(), subject, [32]byte{1}, []byte{0x01})
	if !errors.Is(err, common.ErrLedger) {
		t.Fatalf("expected LedgerError for reverted tx, got %v", err)
	}
}

func TestAnchor_RPCError(t *testing.T) {
	c := newTestLedger(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0", "id": 1,
			"error": map[string]any{"code": -32000, "message": "nonce too low"},
		})
	})

	subject := mustAddr(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	_, err := c.Anchor(context.Background(), subject, [32]byte{1}, []byte{0x01})
	if !errors.Is(err, common.ErrLedger) {
		t.Fatalf("expected LedgerError, got %v", err)
	}
}
