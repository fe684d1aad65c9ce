package common

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"input", NewAppError(ErrInput, "FILE_TOO_LARGE", "too big", nil), codes.InvalidArgument},
		{"extraction", NewAppError(ErrExtraction, "PDF_PARSE_FAILED", "broken xref", nil), codes.InvalidArgument},
		{"not found", NewAppError(ErrNotFound, "INGESTION_NOT_FOUND", "no record", nil), codes.NotFound},
		{"permission", NewAppError(ErrPermissionDenied, "UPLOADER_ROLE_MISSING", "no role", nil), codes.PermissionDenied},
		{"storage", NewAppError(ErrStorageUnavailable, "STORE_PUT_FAILED", "store down", nil), codes.Unavailable},
		{"ledger", NewAppError(ErrLedger, "LEDGER_REVERTED", "reverted", nil), codes.Internal},
		{"integrity", NewAppError(ErrIntegrity, "FINGERPRINT_MISMATCH", "hash differs", nil), codes.Internal},
		{"bare", errors.New("plain failure"), codes.Internal},
		// A client-side cancel stays Canceled even after the pipeline wraps it.
		{"cancelled", NewAppError(ErrLedger, "INGEST_CANCELLED", "cancelled before anchoring", context.Canceled), codes.Canceled},
		{"bare cancel", context.Canceled, codes.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(GRPCStatus(tt.err)); got != tt.want {
				t.Fatalf("GRPCStatus(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
