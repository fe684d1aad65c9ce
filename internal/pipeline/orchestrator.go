// Package pipeline sequences one ingestion end to end: canonicalize, hash,
// encrypt, store, permission check, anchor, persist. It owns the
// failure-compensation policy; every other component is a pure transform or a
// thin client.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medchain/docanchor/constants"
	"github.com/medchain/docanchor/internal/canonical"
	"github.com/medchain/docanchor/internal/cipher"
	"github.com/medchain/docanchor/internal/common"
	"github.com/medchain/docanchor/internal/entity"
	"github.com/medchain/docanchor/internal/fingerprint"
	"github.com/medchain/docanchor/internal/ledger"
	"github.com/medchain/docanchor/internal/repository"
	"github.com/medchain/docanchor/internal/storage"
)

// ContentStore is the append-only content-addressed store boundary.
type ContentStore interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, cid string) ([]byte, error)
}

// Ledger is the permissioned ledger boundary.
type Ledger interface {
	Uploader() ledger.Address
	HasPermission(ctx context.Context, principal ledger.Address) (bool, error)
	Anchor(ctx context.Context, subject ledger.Address, contentHash [32]byte, cidBytes []byte) (ledger.AnchorResult, error)
}

// Timeouts bounds each external call independently. The permission check is
// a fast read and gets a tighter budget than store and anchor.
type Timeouts struct {
	Store      time.Duration
	Get        time.Duration
	Permission time.Duration
	Anchor     time.Duration
}

func (t *Timeouts) normalize() {
	if t.Store <= 0 {
		t.Store = 30 * time.Second
	}
	if t.Get <= 0 {
		t.Get = 30 * time.Second
	}
	if t.Permission <= 0 {
		t.Permission = 5 * time.Second
	}
	if t.Anchor <= 0 {
		t.Anchor = 90 * time.Second
	}
}

// Orchestrator runs ingestions. It holds no shared mutable state; concurrent
// ingestions only meet in the external store, ledger, and metadata service.
type Orchestrator struct {
	store    ContentStore
	ledger   Ledger
	records  repository.IngestionRepository
	secret   []byte
	timeouts Timeouts
	logger   *slog.Logger
}

func NewOrchestrator(store ContentStore, lgr Ledger, records repository.IngestionRepository, secret []byte, timeouts Timeouts, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	timeouts.normalize()
	return &Orchestrator{
		store:    store,
		ledger:   lgr,
		records:  records,
		secret:   secret,
		timeouts: timeouts,
		logger:   logger,
	}
}

// Ingest runs the full pipeline for already-extracted raw text. The record
// advances PENDING -> STORED -> ANCHORED; any failure terminates it at FAILED
// with whatever progress (fingerprint, CID) it had, so audit and resume keep
// working. Identical content is deliberately not deduplicated: every call
// produces a fresh envelope, CID, and ledger entry.
func (o *Orchestrator) Ingest(ctx context.Context, subject ledger.Address, filename, rawText string) (*entity.IngestionRecord, error) {
	rec := &entity.IngestionRecord{
		ID:       uuid.New(),
		Subject:  subject.Hex(),
		Filename: filename,
		Status:   constants.StatusPending,
	}
	log := o.logger.With("ingestion_id", rec.ID, "subject", rec.Subject)

	// Pure local steps; cannot partially fail.
	canon := canonical.Canonicalize(rawText)
	rec.Fingerprint = fingerprint.Hash(canon).String()

	env, err := cipher.Encrypt(canon, o.secret)
	if err != nil {
		return nil, o.fail(ctx, rec, err)
	}
	blob, err := env.Marshal()
	if err != nil {
		return nil, o.fail(ctx, rec, err)
	}

	putCtx, cancel := context.WithTimeout(ctx, o.timeouts.Store)
	cid, err := o.store.Put(putCtx, blob)
	cancel()
	if err != nil {
		return nil, o.fail(ctx, rec, err)
	}
	rec.CID = cid
	rec.Status = constants.StatusStored
	log.Info("pipeline.stored", "cid", cid, "fingerprint", rec.Fingerprint)

	if err := o.anchor(ctx, rec, subject); err != nil {
		return nil, o.fail(ctx, rec, err)
	}
	rec.Status = constants.StatusAnchored
	log.Info("pipeline.anchored", "tx", rec.TxHash, "block", rec.BlockNumber)

	if err := o.records.Create(ctx, rec); err != nil {
		// The ledger entry exists; losing the metadata row is an internal
		// fault the caller must hear about, not a pipeline rollback.
		return rec, common.NewAppError(common.ErrLedger, "RECORD_PERSIST_FAILED",
			fmt.Sprintf("anchored as %s but metadata persistence failed", rec.TxHash), err)
	}
	return rec, nil
}

// anchor gates on the uploader role, honors cancellation up to submission,
// and then waits out the ledger regardless of caller cancellation, since a
// submitted transaction cannot be withdrawn.
func (o *Orchestrator) anchor(ctx context.Context, rec *entity.IngestionRecord, subject ledger.Address) error {
	permCtx, cancel := context.WithTimeout(ctx, o.timeouts.Permission)
	ok, err := o.ledger.HasPermission(permCtx, o.ledger.Uploader())
	cancel()
	if err != nil {
		return err
	}
	if !ok {
		return common.NewAppError(common.ErrPermissionDenied, "UPLOADER_ROLE_MISSING",
			fmt.Sprintf("account %s lacks UPLOADER_ROLE; grant it on the contract before uploading", o.ledger.Uploader().Hex()), nil)
	}

	if err := ctx.Err(); err != nil {
		return common.NewAppError(common.ErrLedger, "INGEST_CANCELLED", "ingestion cancelled before anchoring", err)
	}

	digest, err := fingerprint.Fingerprint(rec.Fingerprint).Bytes32()
	if err != nil {
		return err
	}
	cidBytes, err := storage.CIDBytes(rec.CID)
	if err != nil {
		return common.NewAppError(common.ErrLedger, "BAD_STORED_CID", "stored CID cannot be anchored", err)
	}

	anchorCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.timeouts.Anchor)
	defer cancel()
	res, err := o.ledger.Anchor(anchorCtx, subject, digest, cidBytes)
	if err != nil {
		return err
	}
	rec.TxHash = res.TxHash
	rec.BlockNumber = res.BlockNumber
	return nil
}

// Resume re-anchors a failed ingestion from its stored-CID checkpoint. No
// second store write happens. The failed->anchored transition is guarded in
// the metadata store so two resumers cannot both claim it.
func (o *Orchestrator) Resume(ctx context.Context, id uuid.UUID) (*entity.IngestionRecord, error) {
	rec, err := o.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status == constants.StatusAnchored {
		return rec, nil
	}
	if !rec.Resumable() {
		return nil, common.NewAppError(common.ErrInput, "NOT_RESUMABLE",
			fmt.Sprintf("ingestion %s is %s without a stored CID; re-upload the document instead", id, rec.Status), nil)
	}

	subject, err := ledger.ParseAddress(rec.Subject)
	if err != nil {
		return nil, err
	}
	if err := o.anchor(ctx, rec, subject); err != nil {
		return nil, err
	}

	won, err := o.records.MarkAnchored(ctx, id, rec.TxHash, rec.BlockNumber)
	if err != nil {
		return nil, err
	}
	if !won {
		// Another resumer got there first; its ledger entry stands.
		o.logger.Warn("pipeline.resume lost status race", "ingestion_id", id)
		return o.records.GetByID(ctx, id)
	}
	rec.Status = constants.StatusAnchored
	o.logger.Info("pipeline.resumed", "ingestion_id", id, "tx", rec.TxHash, "block", rec.BlockNumber)
	return rec, nil
}

// fail persists the partial record for audit and returns the original error.
// Persistence uses a detached context so a cancelled request still leaves its
// audit row behind.
func (o *Orchestrator) fail(ctx context.Context, rec *entity.IngestionRecord, cause error) error {
	rec.Status = constants.StatusFailed
	rec.FailureHint = failureHint(cause)

	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := o.records.Create(persistCtx, rec); err != nil {
		o.logger.Error("pipeline.failed record not persisted", "ingestion_id", rec.ID, "error", err)
	}
	o.logger.Error("pipeline.failed", "ingestion_id", rec.ID, "status_at_failure", statusBefore(rec), "error", cause)
	return cause
}

func failureHint(err error) string {
	var app *common.AppError
	if errors.As(err, &app) {
		return app.Code + ": " + app.Message
	}
	return err.Error()
}

func statusBefore(rec *entity.IngestionRecord) string {
	if rec.CID != "" {
		return "content stored, not yet anchored"
	}
	return "nothing stored"
}
