// Package server exposes the ingestion pipeline over gRPC. It owns request
// validation and error-to-status mapping; business logic lives in the
// pipeline and export packages.
package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	docanchorv1 "github.com/medchain/docanchor/gen/proto/docanchor/v1"
	"github.com/medchain/docanchor/internal/common"
	"github.com/medchain/docanchor/internal/entity"
	"github.com/medchain/docanchor/internal/export"
	"github.com/medchain/docanchor/internal/extract"
	"github.com/medchain/docanchor/internal/fingerprint"
	"github.com/medchain/docanchor/internal/ledger"
	"github.com/medchain/docanchor/internal/pipeline"
	"github.com/medchain/docanchor/internal/repository"
)

// DocAnchorService implements docanchorv1.DocAnchorServiceServer.
type DocAnchorService struct {
	docanchorv1.UnimplementedDocAnchorServiceServer

	extractor    *extract.Extractor
	orchestrator *pipeline.Orchestrator
	records      repository.IngestionRepository
	exporter     *export.Service
	logger       *slog.Logger
}

func NewDocAnchorService(ex *extract.Extractor, orch *pipeline.Orchestrator, records repository.IngestionRepository, exporter *export.Service, logger *slog.Logger) *DocAnchorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocAnchorService{
		extractor:    ex,
		orchestrator: orch,
		records:      records,
		exporter:     exporter,
		logger:       logger,
	}
}

// UploadDocument runs the full pipeline for one uploaded file. Validation
// failures are rejected here, before extraction, so they never leave a
// metadata row behind.
func (s *DocAnchorService) UploadDocument(ctx context.Context, req *docanchorv1.UploadDocumentRequest) (*docanchorv1.UploadDocumentResponse, error) {
	subject, err := ledger.ParseAddress(strings.TrimSpace(req.GetSubject()))
	if err != nil {
		s.logger.Error("upload rejected: bad subject", "subject", req.GetSubject(), "error", err)
		return nil, common.GRPCStatus(err)
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.GRPCStatus(common.NewAppError(common.ErrInput, "FILENAME_REQUIRED", "filename is required", nil))
	}

	res, err := s.extractor.Extract(ctx, req.GetContent(), extract.ExtFromFilename(filename))
	if err != nil {
		s.logger.Error("upload rejected at extraction", "filename", filename, "error", err)
		return nil, common.GRPCStatus(err)
	}
	s.logger.Info("document extracted", "filename", filename, "pages", res.Pages, "method", res.Method)

	rec, err := s.orchestrator.Ingest(ctx, subject, filename, res.Text)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &docanchorv1.UploadDocumentResponse{Record: toProto(rec)}, nil
}

func (s *DocAnchorService) GetIngestion(ctx context.Context, req *docanchorv1.GetIngestionRequest) (*docanchorv1.GetIngestionResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &docanchorv1.GetIngestionResponse{Record: toProto(rec)}, nil
}

// ListIngestions queries by subject or by fingerprint, exactly one of which
// must be set. Fingerprint queries exist because duplicate content is not
// deduplicated: one fingerprint can map to many records.
func (s *DocAnchorService) ListIngestions(ctx context.Context, req *docanchorv1.ListIngestionsRequest) (*docanchorv1.ListIngestionsResponse, error) {
	subject := strings.TrimSpace(req.GetSubject())
	fp := strings.TrimSpace(req.GetFingerprint())

	var (
		recs []*entity.IngestionRecord
		err  error
	)
	switch {
	case subject != "" && fp != "":
		return nil, common.GRPCStatus(common.NewAppError(common.ErrInput, "AMBIGUOUS_QUERY",
			"set either subject or fingerprint, not both", nil))
	case subject != "":
		addr, perr := ledger.ParseAddress(subject)
		if perr != nil {
			return nil, common.GRPCStatus(perr)
		}
		recs, err = s.records.ListBySubject(ctx, addr.Hex())
	case fp != "":
		parsed, perr := fingerprint.Parse(fp)
		if perr != nil {
			return nil, common.GRPCStatus(common.NewAppError(common.ErrInput, "BAD_FINGERPRINT", perr.Error(), perr))
		}
		recs, err = s.records.ListByFingerprint(ctx, parsed.String())
	default:
		return nil, common.GRPCStatus(common.NewAppError(common.ErrInput, "EMPTY_QUERY",
			"either subject or fingerprint is required", nil))
	}
	if err != nil {
		return nil, common.GRPCStatus(err)
	}

	out := make([]*docanchorv1.IngestionRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toProto(rec))
	}
	return &docanchorv1.ListIngestionsResponse{Records: out}, nil
}

func (s *DocAnchorService) ResumeIngestion(ctx context.Context, req *docanchorv1.ResumeIngestionRequest) (*docanchorv1.ResumeIngestionResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	rec, err := s.orchestrator.Resume(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &docanchorv1.ResumeIngestionResponse{Record: toProto(rec)}, nil
}

func (s *DocAnchorService) VerifyIngestion(ctx context.Context, req *docanchorv1.VerifyIngestionRequest) (*docanchorv1.VerifyIngestionResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	res, err := s.orchestrator.Verify(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &docanchorv1.VerifyIngestionResponse{
		Record:                toProto(res.Record),
		Verified:              true,
		RecomputedFingerprint: res.RecomputedFingerprint,
	}, nil
}

func (s *DocAnchorService) ExportHistory(ctx context.Context, req *docanchorv1.ExportHistoryRequest) (*docanchorv1.ExportHistoryResponse, error) {
	addr, err := ledger.ParseAddress(strings.TrimSpace(req.GetSubject()))
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	xlsx, err := s.exporter.ExportHistoryXLSX(ctx, addr.Hex())
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &docanchorv1.ExportHistoryResponse{Xlsx: xlsx}, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.NewAppError(common.ErrInput, "BAD_INGESTION_ID", "id must be a UUID", err)
	}
	return id, nil
}

func toProto(rec *entity.IngestionRecord) *docanchorv1.IngestionRecord {
	if rec == nil {
		return nil
	}
	out := &docanchorv1.IngestionRecord{
		Id:          rec.ID.String(),
		Subject:     rec.Subject,
		Filename:    rec.Filename,
		Fingerprint: rec.Fingerprint,
		Cid:         rec.CID,
		TxHash:      rec.TxHash,
		BlockNumber: rec.BlockNumber,
		Status:      string(rec.Status),
		FailureHint: rec.FailureHint,
	}
	if !rec.CreatedAt.IsZero() {
		out.CreatedAt = rec.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !rec.UpdatedAt.IsZero() {
		out.UpdatedAt = rec.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return out
}
