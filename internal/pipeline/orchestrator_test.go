package pipeline

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"

	"github.com/medchain/docanchor/constants"
	"github.com/medchain/docanchor/internal/common"
	"github.com/medchain/docanchor/internal/ledger"
)

var (
	testSecret     = []byte("pipeline-test-secret")
	fingerprintHex = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
)

type testEnv struct {
	store   *fakeStore
	ledger  *fakeLedger
	records *fakeRecords
	orch    *Orchestrator
	subject ledger.Address
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	uploader, err := ledger.ParseAddress("0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	subject, err := ledger.ParseAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	if err != nil {
		t.Fatalf("ParseAddress: %v", err)
	}
	env := &testEnv{
		store:   newFakeStore(),
		ledger:  &fakeLedger{uploader: uploader, permitted: true},
		records: newFakeRecords(),
		subject: subject,
	}
	env.orch = NewOrchestrator(env.store, env.ledger, env.records, testSecret, Timeouts{}, nil)
	return env
}

func TestIngest_Anchored(t *testing.T) {
	env := newTestEnv(t)

	rec, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "Glucose: 110 mg per dl\n\nNormal.")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if rec.Status != constants.StatusAnchored {
		t.Fatalf("status = %s, want ANCHORED", rec.Status)
	}
	if !fingerprintHex.MatchString(rec.Fingerprint) {
		t.Fatalf("malformed fingerprint %q", rec.Fingerprint)
	}
	if rec.CID == "" || rec.TxHash == "" || rec.BlockNumber == 0 {
		t.Fatalf("missing provenance refs: %+v", rec)
	}

	stored, err := env.records.GetByID(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("record not persisted: %v", err)
	}
	if stored.Status != constants.StatusAnchored || stored.CID != rec.CID {
		t.Fatalf("persisted record diverges: %+v", stored)
	}
}

func TestIngest_CanonicalizationUnifiesFingerprints(t *testing.T) {
	env := newTestEnv(t)

	r1, err := env.orch.Ingest(context.Background(), env.subject, "a.pdf", "Glucose  110 MG PER DL")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	r2, err := env.orch.Ingest(context.Background(), env.subject, "b.pdf", "glucose 110 mg/dl")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if r1.Fingerprint != r2.Fingerprint {
		t.Fatalf("equivalent content got different fingerprints: %s vs %s", r1.Fingerprint, r2.Fingerprint)
	}
}

func TestIngest_DuplicateContentNotDeduplicated(t *testing.T) {
	env := newTestEnv(t)
	const text = "identical lab report"

	r1, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", text)
	if err != nil {
		t.Fatalf("first Ingest: %v", err)
	}
	r2, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", text)
	if err != nil {
		t.Fatalf("second Ingest: %v", err)
	}

	if r1.Fingerprint != r2.Fingerprint {
		t.Fatal("fingerprints must match for identical content")
	}
	if r1.CID == r2.CID {
		t.Fatal("randomized encryption must produce distinct CIDs")
	}
	if r1.TxHash == r2.TxHash {
		t.Fatal("each upload must get its own ledger entry")
	}
	if env.store.putCalls != 2 || env.ledger.anchorCalls != 2 {
		t.Fatalf("expected 2 puts and 2 anchors, got %d/%d", env.store.putCalls, env.ledger.anchorCalls)
	}
}

func TestIngest_PermissionDenied_NeverAnchors(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.permitted = false

	_, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "content")
	if !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	if env.ledger.anchorCalls != 0 {
		t.Fatalf("Anchor called %d times despite missing role", env.ledger.anchorCalls)
	}

	// The partial record is retained for audit: stored but not anchored.
	recs, err := env.records.ListBySubject(context.Background(), env.subject.Hex())
	if err != nil || len(recs) != 1 {
		t.Fatalf("want one audit record, got %d (%v)", len(recs), err)
	}
	if recs[0].Status != constants.StatusFailed || recs[0].CID == "" {
		t.Fatalf("audit record should be FAILED with CID, got %+v", recs[0])
	}
}

func TestIngest_StorageUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.store.putErr = common.NewAppError(common.ErrStorageUnavailable, "STORE_PUT_FAILED", "store down", nil)

	_, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "content")
	if !errors.Is(err, common.ErrStorageUnavailable) {
		t.Fatalf("expected StorageUnavailable, got %v", err)
	}
	if env.ledger.permCalls != 0 || env.ledger.anchorCalls != 0 {
		t.Fatal("no ledger traffic expected when storage fails")
	}

	recs, _ := env.records.ListBySubject(context.Background(), env.subject.Hex())
	if len(recs) != 1 || recs[0].Status != constants.StatusFailed || recs[0].CID != "" {
		t.Fatalf("expected FAILED record without CID, got %+v", recs)
	}
}

func TestIngest_LedgerFailureThenResume(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.anchorErr = common.NewAppError(common.ErrLedger, "LEDGER_REVERTED", "reverted", nil)

	_, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "content to resume")
	if !errors.Is(err, common.ErrLedger) {
		t.Fatalf("expected LedgerError, got %v", err)
	}

	recs, _ := env.records.ListBySubject(context.Background(), env.subject.Hex())
	if len(recs) != 1 {
		t.Fatalf("want one record, got %d", len(recs))
	}
	failed := recs[0]
	if failed.Status != constants.StatusFailed || failed.CID == "" {
		t.Fatalf("expected FAILED with CID checkpoint, got %+v", failed)
	}

	// Ledger recovers; resume must re-anchor without a second store write.
	env.ledger.anchorErr = nil
	putsBefore := env.store.putCalls

	rec, err := env.orch.Resume(context.Background(), failed.ID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if rec.Status != constants.StatusAnchored || rec.TxHash == "" {
		t.Fatalf("resume did not anchor: %+v", rec)
	}
	if rec.CID != failed.CID {
		t.Fatalf("resume changed the CID: %s -> %s", failed.CID, rec.CID)
	}
	if env.store.putCalls != putsBefore {
		t.Fatal("resume must not store a second blob")
	}

	stored, _ := env.records.GetByID(context.Background(), failed.ID)
	if stored.Status != constants.StatusAnchored || stored.FailureHint != "" {
		t.Fatalf("persisted record not updated: %+v", stored)
	}
}

func TestResume_AlreadyAnchoredIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	rec, err := env.orch.Ingest(context.Background(), env.subject, "report.pdf", "content")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	anchorsBefore := env.ledger.anchorCalls

	again, err := env.orch.Resume(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if again.TxHash != rec.TxHash || env.ledger.anchorCalls != anchorsBefore {
		t.Fatal("resume of an anchored record must be a no-op")
	}
}

func TestResume_NotResumableWithoutCID(t *testing.T) {
	env := newTestEnv(t)
	env.store.putErr = common.NewAppError(common.ErrStorageUnavailable, "STORE_PUT_FAILED", "down", nil)
	_, _ = env.orch.Ingest(context.Background(), env.subject, "report.pdf", "content")

	recs, _ := env.records.ListBySubject(context.Background(), env.subject.Hex())
	if len(recs) != 1 {
		t.Fatalf("want one record, got %d", len(recs))
	}
	_, err := env.orch.Resume(context.Background(), recs[0].ID)
	if !errors.Is(err, common.ErrInput) {
		t.Fatalf("expected InputError for unresumable record, got %v", err)
	}
}

func TestResume_LostRaceReturnsWinner(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.anchorErr = common.NewAppError(common.ErrLedger, "LEDGER_REVERTED", "reverted", nil)
	_, _ = env.orch.Ingest(context.Background(), env.subject, "report.pdf", "content")
	env.ledger.anchorErr = nil

	recs, _ := env.records.ListBySubject(context.Background(), env.subject.Hex())
	lost := false
	env.records.markAnchoredOK = &lost

	rec, err := env.orch.Resume(context.Background(), recs[0].ID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	// The guard said another process already transitioned the row; we must
	// hand back whatever is persisted rather than our own result.
	stored, _ := env.records.GetByID(context.Background(), recs[0].ID)
	if rec.Status != stored.Status {
		t.Fatalf("race loser returned %s, persisted row says %s", rec.Status, stored.Status)
	}
}

func TestResume_UnknownID(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.orch.Resume(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestIngest_CancelledBeforeAnchor(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	// Cancel while the blob is being stored: the pipeline must abandon the
	// ingestion as FAILED without ever submitting a ledger transaction.
	env.store.onPut = cancel

	_, err := env.orch.Ingest(ctx, env.subject, "report.pdf", "content")
	if err == nil {
		t.Fatal("expected cancellation to fail the ingestion")
	}
	// The cause chain must keep context.Canceled so the transport layer can
	// report Canceled rather than Internal.
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancellation cause lost from %v", err)
	}
	if env.ledger.anchorCalls != 0 {
		t.Fatal("cancelled ingestion must not reach Anchor")
	}

	// Audit row survives the cancelled request context.
	recs, _ := env.records.ListBySubject(context.Background(), env.subject.Hex())
	if len(recs) != 1 || recs[0].Status != constants.StatusFailed {
		t.Fatalf("expected a FAILED audit record, got %+v", recs)
	}
}
