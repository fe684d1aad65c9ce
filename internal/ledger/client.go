// Package ledger wraps the permissioned ledger's JSON-RPC interface. Anchor
// is a single atomic on-ledger state transition: the (fingerprint, CID) entry
// is either fully visible once the receipt confirms, or fully reverted.
// Anchor failures are never retried here; resumption policy belongs to the
// orchestrator.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/medchain/docanchor/internal/common"
)

// AnchorResult references the confirmed ledger entry.
type AnchorResult struct {
	TxHash      string
	BlockNumber uint64
}

// Client talks JSON-RPC to one ledger node. The uploader account is held by
// the node; this process only submits from it.
type Client struct {
	rpcURL          string
	contract        Address
	uploader        Address
	http            *http.Client
	receiptInterval time.Duration
	logger          *slog.Logger
	reqID           atomic.Int64
}

// NewClient builds a ledger client. contract and uploader must already be
// validated addresses.
func NewClient(rpcURL string, contract, uploader Address, receiptInterval time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if receiptInterval <= 0 {
		receiptInterval = 2 * time.Second
	}
	return &Client{
		rpcURL:          rpcURL,
		contract:        contract,
		uploader:        uploader,
		http:            &http.Client{},
		receiptInterval: receiptInterval,
		logger:          logger,
	}
}

// Uploader returns the signing principal transactions are submitted from.
func (c *Client) Uploader() Address { return c.uploader }

// WithHTTPClient overrides the HTTP client (used by tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// HasPermission reports whether the principal holds the uploader role. This
// is a read-only eth_call; the contract's own enforcement on uploadReport
// remains the authoritative check.
func (c *Client) HasPermission(ctx context.Context, principal Address) (bool, error) {
	call := map[string]string{
		"to":   c.contract.Hex(),
		"data": hexData(packHasRole(UploaderRole, principal)),
	}
	raw, err := c.call(ctx, "eth_call", call, "latest")
	if err != nil {
		return false, common.NewAppError(common.ErrLedger, "LEDGER_ROLE_QUERY_FAILED",
			"role query failed; check the ledger RPC endpoint", err)
	}
	var result string
	if err := json.Unmarshal(raw, &result); err != nil {
		return false, common.NewAppError(common.ErrLedger, "LEDGER_BAD_RESPONSE", "malformed eth_call result", err)
	}
	return decodeBool(result), nil
}

// Anchor submits uploadReport(subject, fingerprint, cid) and waits for the
// receipt. A reverted receipt or RPC failure is a LedgerError; the caller
// keeps the stored CID so the ingestion can be resumed without re-storing.
func (c *Client) Anchor(ctx context.Context, subject Address, contentHash [32]byte, cidBytes []byte) (AnchorResult, error) {
	tx := map[string]string{
		"from": c.uploader.Hex(),
		"to":   c.contract.Hex(),
		"data": hexData(packUploadReport(subject, contentHash, cidBytes)),
	}
	raw, err := c.call(ctx, "eth_sendTransaction", tx)
	if err != nil {
		return AnchorResult{}, common.NewAppError(common.ErrLedger, "LEDGER_SUBMIT_FAILED",
			"transaction submission failed", err)
	}
	var txHash string
	if err := json.Unmarshal(raw, &txHash); err != nil || txHash == "" {
		return AnchorResult{}, common.NewAppError(common.ErrLedger, "LEDGER_BAD_RESPONSE",
			"node returned no transaction hash", err)
	}

	c.logger.Info("ledger.anchor submitted", "tx", txHash, "subject", subject.Hex())
	res, err := c.waitReceipt(ctx, txHash)
	if err != nil {
		return AnchorResult{}, err
	}
	c.logger.Info("ledger.anchor confirmed", "tx", res.TxHash, "block", res.BlockNumber)
	return res, nil
}

type receipt struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     string `json:"blockNumber"`
	Status          string `json:"status"`
}

func (c *Client) waitReceipt(ctx context.Context, txHash string) (AnchorResult, error) {
	ticker := time.NewTicker(c.receiptInterval)
	defer ticker.Stop()
	for {
		raw, err := c.call(ctx, "eth_getTransactionReceipt", txHash)
		if err != nil {
			return AnchorResult{}, common.NewAppError(common.ErrLedger, "LEDGER_RECEIPT_FAILED",
				fmt.Sprintf("receipt poll failed for %s", txHash), err)
		}
		if !bytes.Equal(raw, []byte("null")) {
			var r receipt
			if err := json.Unmarshal(raw, &r); err != nil {
				return AnchorResult{}, common.NewAppError(common.ErrLedger, "LEDGER_BAD_RESPONSE", "malformed receipt", err)
			}
			if r.Status == "0x0" {
				return AnchorResult{}, common.NewAppError(common.ErrLedger, "LEDGER_REVERTED",
					fmt.Sprintf("transaction %s reverted; likely missing UPLOADER_ROLE or contract rejection", txHash), nil)
			}
			block, err := parseHexUint(r.BlockNumber)
			if err != nil {
				return AnchorResult{}, common.NewAppError(common.ErrLedger, "LEDGER_BAD_RESPONSE", "malformed block number", err)
			}
			return AnchorResult{TxHash: r.TransactionHash, BlockNumber: block}, nil
		}
		select {
		case <-ctx.Done():
			return AnchorResult{}, common.NewAppError(common.ErrLedger, "LEDGER_RECEIPT_TIMEOUT",
				fmt.Sprintf("gave up waiting for receipt of %s; the transaction may still confirm", txHash), ctx.Err())
		case <-ticker.C:
		}
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.reqID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%s: status %d", method, resp.StatusCode)
	}
	var rr rpcResponse
	if err := json.Unmarshal(raw, &rr); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", method, err)
	}
	if rr.Error != nil {
		return nil, rr.Error
	}
	return rr.Result, nil
}

// decodeBool interprets an ABI-encoded bool return value.
func decodeBool(result string) bool {
	s := strings.TrimPrefix(result, "0x")
	s = strings.TrimLeft(s, "0")
	return s == "1"
}

func parseHexUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
}
