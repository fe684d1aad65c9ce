package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medchain/docanchor/constants"
	"github.com/medchain/docanchor/gen/ent"
	entingestion "github.com/medchain/docanchor/gen/ent/ingestion"
	"github.com/medchain/docanchor/internal/common"
	"github.com/medchain/docanchor/internal/entity"
)

// IngestionRepository persists IngestionRecords for query and audit. Records
// are written once with their terminal-so-far status; the only in-place
// transition is the optimistic failed->anchored resume.
type IngestionRepository interface {
	Create(ctx context.Context, rec *entity.IngestionRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestionRecord, error)
	ListBySubject(ctx context.Context, subject string) ([]*entity.IngestionRecord, error)
	ListByFingerprint(ctx context.Context, fp string) ([]*entity.IngestionRecord, error)
	// MarkAnchored transitions a record from FAILED to ANCHORED only if it is
	// still FAILED, so two processes racing to resume the same record cannot
	// both win. Returns false when the guard did not match.
	MarkAnchored(ctx context.Context, id uuid.UUID, txHash string, blockNumber uint64) (bool, error)
}

type ingestionRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewIngestionRepository(entc *ent.Client, logger *slog.Logger) IngestionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ingestionRepo{ent: entc, logger: logger}
}

func (r *ingestionRepo) Create(ctx context.Context, rec *entity.IngestionRecord) error {
	create := r.ent.Ingestion.Create().
		SetID(rec.ID).
		SetSubject(rec.Subject).
		SetFilename(rec.Filename).
		SetFingerprint(rec.Fingerprint).
		SetStatus(string(rec.Status))
	if rec.CID != "" {
		create = create.SetCid(rec.CID)
	}
	if rec.TxHash != "" {
		create = create.SetTxHash(rec.TxHash).SetBlockNumber(rec.BlockNumber)
	}
	if rec.FailureHint != "" {
		create = create.SetFailureHint(rec.FailureHint)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create ingestion record", "id", rec.ID, "subject", rec.Subject, "error", err)
		return err
	}
	rec.CreatedAt = row.CreatedAt
	rec.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ingestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestionRecord, error) {
	row, err := r.ent.Ingestion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError(common.ErrNotFound, "INGESTION_NOT_FOUND", "no ingestion record for id "+id.String(), err)
		}
		r.logger.Error("failed to get ingestion record", "id", id, "error", err)
		return nil, err
	}
	return toEntity(row), nil
}

func (r *ingestionRepo) ListBySubject(ctx context.Context, subject string) ([]*entity.IngestionRecord, error) {
	rows, err := r.ent.Ingestion.Query().
		Where(entingestion.Subject(subject)).
		Order(ent.Desc(entingestion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list ingestions by subject", "subject", subject, "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *ingestionRepo) ListByFingerprint(ctx context.Context, fp string) ([]*entity.IngestionRecord, error) {
	rows, err := r.ent.Ingestion.Query().
		Where(entingestion.Fingerprint(fp)).
		Order(ent.Desc(entingestion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list ingestions by fingerprint", "fingerprint", fp, "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *ingestionRepo) MarkAnchored(ctx context.Context, id uuid.UUID, txHash string, blockNumber uint64) (bool, error) {
	n, err := r.ent.Ingestion.Update().
		Where(
			entingestion.ID(id),
			entingestion.Status(string(constants.StatusFailed)),
		).
		SetStatus(string(constants.StatusAnchored)).
		SetTxHash(txHash).
		SetBlockNumber(blockNumber).
		ClearFailureHint().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark ingestion anchored", "id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func toEntity(row *ent.Ingestion) *entity.IngestionRecord {
	return &entity.IngestionRecord{
		ID:          row.ID,
		Subject:     row.Subject,
		Filename:    row.Filename,
		Fingerprint: row.Fingerprint,
		CID:         row.Cid,
		TxHash:      row.TxHash,
		BlockNumber: row.BlockNumber,
		Status:      constants.IngestionStatus(row.Status),
		FailureHint: row.FailureHint,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toEntities(rows []*ent.Ingestion) []*entity.IngestionRecord {
	out := make([]*entity.IngestionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntity(row))
	}
	return out
}
