// Package storage wraps the content-addressed store's HTTP API (an IPFS
// node) behind Put/Get with bounded retry. The store is append-only from this
// system's perspective: there is no update or delete.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/medchain/docanchor/internal/common"
)

// Client talks to one IPFS HTTP API endpoint. Safe for concurrent use.
type Client struct {
	apiURL      string
	http        *http.Client
	maxAttempts int
	backoffBase time.Duration
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRetry overrides the retry budget (attempts, base delay).
func WithRetry(attempts int, base time.Duration) Option {
	return func(c *Client) {
		c.maxAttempts = attempts
		c.backoffBase = base
	}
}

// NewClient creates a store client for the given API endpoint, e.g.
// "http://127.0.0.1:5001".
func NewClient(apiURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		apiURL:      strings.TrimRight(apiURL, "/"),
		http:        &http.Client{},
		maxAttempts: 3,
		backoffBase: 200 * time.Millisecond,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// Put stores a blob and returns its CID. The CID is a deterministic function
// of the stored bytes; callers must not treat it as a content identity of the
// plaintext, since what we store here is a randomized ciphertext envelope.
// Transient failures are retried with exponential backoff and jitter before
// surfacing StorageUnavailable.
func (c *Client) Put(ctx context.Context, data []byte) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, attempt-1); err != nil {
				return "", err
			}
		}
		cidStr, err := c.add(ctx, data)
		if err == nil {
			c.logger.Info("store.put", "cid", cidStr, "bytes", len(data), "attempt", attempt)
			return cidStr, nil
		}
		lastErr = err
		c.logger.Warn("store.put failed", "attempt", attempt, "error", err)
		if ctx.Err() != nil {
			break
		}
	}
	return "", common.NewAppError(common.ErrStorageUnavailable, "STORE_PUT_FAILED",
		fmt.Sprintf("content store unreachable after %d attempts; check the IPFS API endpoint", c.maxAttempts), lastErr)
}

// Get fetches a blob by CID. Unknown CIDs return NotFound without burning the
// retry budget; transient failures retry like Put.
func (c *Client) Get(ctx context.Context, cidStr string) ([]byte, error) {
	if _, err := ParseCID(cidStr); err != nil {
		return nil, common.NewAppError(common.ErrInput, "STORE_BAD_CID", "malformed CID", err)
	}
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, attempt-1); err != nil {
				return nil, err
			}
		}
		data, err := c.cat(ctx, cidStr)
		if err == nil {
			return data, nil
		}
		if errIsNotFound(err) {
			return nil, common.NewAppError(common.ErrNotFound, "STORE_NOT_FOUND",
				fmt.Sprintf("no blob for CID %s", cidStr), err)
		}
		lastErr = err
		c.logger.Warn("store.get failed", "cid", cidStr, "attempt", attempt, "error", err)
		if ctx.Err() != nil {
			break
		}
	}
	return nil, common.NewAppError(common.ErrStorageUnavailable, "STORE_GET_FAILED",
		fmt.Sprintf("content store unreachable after %d attempts", c.maxAttempts), lastErr)
}

func (c *Client) add(ctx context.Context, data []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "blob")
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	// cid-version=1 with raw leaves so the returned CID is the modern, stable
	// form the ledger contract records.
	u := c.apiURL + "/api/v0/add?" + url.Values{
		"cid-version": {"1"},
		"raw-leaves":  {"true"},
		"pin":         {"true"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("add: status %d: %s", resp.StatusCode, truncate(string(raw), 256))
	}

	var ar addResponse
	if err := json.Unmarshal(raw, &ar); err != nil {
		return "", fmt.Errorf("add: decode response: %w", err)
	}
	if ar.Hash == "" {
		return "", fmt.Errorf("add: response missing CID")
	}
	if _, err := ParseCID(ar.Hash); err != nil {
		return "", fmt.Errorf("add: store returned malformed CID %q: %w", ar.Hash, err)
	}
	// Single-block blobs have a locally recomputable CID; verify it so a
	// misbehaving store cannot hand us an identifier for different bytes.
	if len(data) <= rawLeafLimit {
		if want := CIDv1RawSHA256(data); ar.Hash != want {
			return "", fmt.Errorf("add: CID mismatch: store %s, computed %s", ar.Hash, want)
		}
	}
	return ar.Hash, nil
}

func (c *Client) cat(ctx context.Context, cidStr string) ([]byte, error) {
	u := c.apiURL + "/api/v0/cat?" + url.Values{"arg": {cidStr}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return nil, err
	}
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
		return nil, fmt.Errorf("cat: status %d: %s", resp.StatusCode, truncate(string(raw), 256))
	}
	return raw, nil
}

func (c *Client) sleep(ctx context.Context, exhausted int) error {
	// base * 2^(n-1) plus up to 50% jitter.
	backoff := c.backoffBase << (exhausted - 1)
	backoff += time.Duration(rand.Int63n(int64(backoff)/2 + 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(backoff):
		return nil
	}
}

func errIsNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "no link named")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
