package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medchain/docanchor/internal/cipher"
	"github.com/medchain/docanchor/internal/common"
)

func TestVerify_Succeeds(t *testing.T) {
	env := newTestEnv(t)
	rec, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "Glucose 110 mg/dl")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	res, err := env.orch.Verify(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.RecomputedFingerprint != rec.Fingerprint {
		t.Fatalf("recomputed %s, recorded %s", res.RecomputedFingerprint, rec.Fingerprint)
	}
}

func TestVerify_UsesReadTimeout(t *testing.T) {
	env := newTestEnv(t)
	rec, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "content")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	// Reads get their own budget, not the Put one.
	orch := NewOrchestrator(env.store, env.ledger, env.records, testSecret,
		Timeouts{Store: time.Millisecond, Get: time.Hour}, nil)
	if _, err := orch.Verify(context.Background(), rec.ID); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if env.store.getDeadline.IsZero() {
		t.Fatal("Get ran without a deadline")
	}
	if remaining := time.Until(env.store.getDeadline); remaining < 30*time.Minute {
		t.Fatalf("Get deadline %v away; it was bounded by the wrong budget", remaining)
	}
}

func TestVerify_TamperedBlob(t *testing.T) {
	env := newTestEnv(t)
	rec, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "original content")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	// Corrupt the stored envelope in place; the CID lookup still resolves.
	blob := env.store.blobs[rec.CID]
	blob[len(blob)/2] ^= 0xff

	if _, err := env.orch.Verify(context.Background(), rec.ID); !errors.Is(err, common.ErrIntegrity) {
		t.Fatalf("expected IntegrityError for tampered blob, got %v", err)
	}
}

func TestVerify_SubstitutedContent(t *testing.T) {
	env := newTestEnv(t)
	rec, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "original content")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	// A well-formed envelope for different plaintext under the same secret:
	// decryption succeeds, but the fingerprint comparison must catch it.
	other, err := cipher.Encrypt("forged content", testSecret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	forged, _ := other.Marshal()
	env.store.blobs[rec.CID] = forged

	if _, err := env.orch.Verify(context.Background(), rec.ID); !errors.Is(err, common.ErrIntegrity) {
		t.Fatalf("expected IntegrityError for substituted content, got %v", err)
	}
}

func TestVerify_MissingBlob(t *testing.T) {
	env := newTestEnv(t)
	rec, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "content")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	delete(env.store.blobs, rec.CID)

	if _, err := env.orch.Verify(context.Background(), rec.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected NotFound for missing blob, got %v", err)
	}
}
