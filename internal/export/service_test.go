package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/medchain/docanchor/constants"
	"github.com/medchain/docanchor/internal/entity"
)

type stubRecords struct {
	recs []*entity.IngestionRecord
}

func (s *stubRecords) Create(ctx context.Context, rec *entity.IngestionRecord) error { return nil }
func (s *stubRecords) GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestionRecord, error) {
	return nil, nil
}
func (s *stubRecords) ListBySubject(ctx context.Context, subject string) ([]*entity.IngestionRecord, error) {
	return s.recs, nil
}
func (s *stubRecords) ListByFingerprint(ctx context.Context, fp string) ([]*entity.IngestionRecord, error) {
	return s.recs, nil
}
func (s *stubRecords) MarkAnchored(ctx context.Context, id uuid.UUID, txHash string, blockNumber uint64) (bool, error) {
	return false, nil
}

func TestExportHistoryXLSX(t *testing.T) {
	recs := []*entity.IngestionRecord{
		{
			ID:          uuid.New(),
			Subject:     "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			Filename:    "report.pdf",
			Fingerprint: "0xabc123",
			CID:         "bafytest",
			TxHash:      "0xtx01",
			BlockNumber: 42,
			Status:      constants.StatusAnchored,
			CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.New(),
			Subject:     "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			Filename:    "scan.docx",
			Fingerprint: "0xdef456",
			Status:      constants.StatusFailed,
			FailureHint: "LEDGER_REVERTED: transaction reverted",
			CreatedAt:   time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		},
	}

	svc := NewService(&stubRecords{recs: recs}, nil)
	out, err := svc.ExportHistoryXLSX(context.Background(), recs[0].Subject)
	if err != nil {
		t.Fatalf("ExportHistoryXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	const sheet = "Ingestions"
	if got, _ := f.GetCellValue(sheet, "A1"); got != "Ingested At" {
		t.Fatalf("A1 = %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "B2"); got != "report.pdf" {
		t.Fatalf("B2 = %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "C2"); got != "ANCHORED" {
		t.Fatalf("C2 = %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "F2"); got != "0xtx01" {
		t.Fatalf("F2 = %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "H3"); got != "LEDGER_REVERTED: transaction reverted" {
		t.Fatalf("H3 = %q", got)
	}
}
