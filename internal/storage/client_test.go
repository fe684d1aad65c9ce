package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/medchain/docanchor/internal/common"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, nil, WithRetry(3, time.Millisecond))
	return c, srv
}

func addHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		data, _ := io.ReadAll(f)
		_ = json.NewEncoder(w).Encode(map[string]string{"Hash": CIDv1RawSHA256(data)})
	}
}

func TestPut_ReturnsCID(t *testing.T) {
	c, _ := newTestClient(t, addHandler(t))

	data := []byte(`{"alg":"AES-256-GCM"}`)
	got, err := c.Put(context.Background(), data)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if want := CIDv1RawSHA256(data); got != want {
		t.Fatalf("Put CID = %s, want %s", got, want)
	}
}

func TestPut_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	inner := addHandler(t)
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			http.Error(w, "temporarily overloaded", http.StatusInternalServerError)
			return
		}
		inner(w, r)
	}))

	if _, err := c.Put(context.Background(), []byte("payload")); err != nil {
		t.Fatalf("Put should succeed on third attempt: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestPut_ExhaustsRetryBudget(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))

	_, err := c.Put(context.Background(), []byte("payload"))
	if !errors.Is(err, common.ErrStorageUnavailable) {
		t.Fatalf("expected StorageUnavailable, got %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestPut_RejectsMismatchedCID(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A syntactically valid CID for different bytes.
		_ = json.NewEncoder(w).Encode(map[string]string{"Hash": CIDv1RawSHA256([]byte("other"))})
	}))

	if _, err := c.Put(context.Background(), []byte("payload")); err == nil {
		t.Fatal("expected error for CID that does not match stored bytes")
	}
}

func TestGet_RoundTrip(t *testing.T) {
	blob := []byte(`{"alg":"AES-256-GCM","data":""}`)
	cidStr := CIDv1RawSHA256(blob)
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("arg"); got != cidStr {
			t.Fatalf("cat arg = %q, want %q", got, cidStr)
		}
		_, _ = w.Write(blob)
	}))

	got, err := c.Get(context.Background(), cidStr)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("Get returned %q, want %q", got, blob)
	}
}

func TestGet_NotFound(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "ipld: could not find node: not found", http.StatusInternalServerError)
	}))

	_, err := c.Get(context.Background(), CIDv1RawSHA256([]byte("missing")))
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("not-found should not retry, got %d calls", got)
	}
}

func TestGet_MalformedCID(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for malformed CID")
	}))
	_, err := c.Get(context.Background(), "definitely-not-a-cid")
	if !errors.Is(err, common.ErrInput) {
		t.Fatalf("expected InputError, got %v", err)
	}
}

func TestCIDBytes_V1Binary(t *testing.T) {
	data := []byte("stable bytes")
	cidStr := CIDv1RawSHA256(data)
	b, err := CIDBytes(cidStr)
	if err != nil {
		t.Fatalf("CIDBytes: %v", err)
	}
	// CIDv1 + raw codec + sha2-256 multihash of 32 bytes = 36 bytes.
	if len(b) != 36 {
		t.Fatalf("CIDv1 binary length = %d, want 36", len(b))
	}
	if b[0] != 0x01 || b[1] != 0x55 {
		t.Fatalf("unexpected CID prefix % x", b[:2])
	}
}
