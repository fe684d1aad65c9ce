package common

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error categories. Every failure surfaced by the pipeline wraps exactly one
// of these so callers can branch on category with errors.Is.
var (
	// ErrInput covers bad file type/size and missing or malformed subject
	// addresses. Rejected synchronously, before any side effect.
	ErrInput = errors.New("invalid input")
	// ErrExtraction covers corrupt or unparseable documents.
	ErrExtraction = errors.New("extraction failed")
	// ErrStorageUnavailable is surfaced after the content store retry budget
	// is exhausted.
	ErrStorageUnavailable = errors.New("content store unavailable")
	// ErrPermissionDenied means the signing principal lacks the uploader role.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrLedger covers reverted transactions and ledger RPC failures. Never
	// auto-retried; the ingestion record keeps the stored CID for resume.
	ErrLedger = errors.New("ledger error")
	// ErrIntegrity is raised on decrypt/verify paths only and is always fatal.
	ErrIntegrity = errors.New("integrity check failed")
	// ErrNotFound covers missing records and unknown CIDs.
	ErrNotFound = errors.New("resource not found")
)

// AppError carries a category, a machine-readable code, and a human-readable
// message that includes a remediation hint where one exists.
type AppError struct {
	Category error
	Code     string
	Message  string
	Cause    error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, category) work for the category sentinels above.
func (e *AppError) Is(target error) bool { return target == e.Category }

func NewAppError(category error, code, message string, cause error) *AppError {
	return &AppError{Category: category, Code: code, Message: message, Cause: cause}
}

// GRPCStatus maps an error to the wire code the upload endpoint promises:
// input problems -> InvalidArgument, missing role -> PermissionDenied,
// everything infrastructural -> Internal/Unavailable. Caller-initiated
// cancellation wins over any category it was wrapped in.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	var app *AppError
	msg := err.Error()
	if errors.As(err, &app) {
		msg = fmt.Sprintf("%s: %s", app.Code, app.Message)
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, msg)
	case errors.Is(err, ErrInput):
		return status.Error(codes.InvalidArgument, msg)
	case errors.Is(err, ErrExtraction):
		return status.Error(codes.InvalidArgument, msg)
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, msg)
	case errors.Is(err, ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, msg)
	case errors.Is(err, ErrStorageUnavailable):
		return status.Error(codes.Unavailable, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}
