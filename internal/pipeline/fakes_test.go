package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medchain/docanchor/internal/common"
	"github.com/medchain/docanchor/internal/entity"
	"github.com/medchain/docanchor/internal/ledger"
	"github.com/medchain/docanchor/internal/storage"
)

// fakeStore is an in-memory content-addressed store. CIDs are the same
// raw sha2-256 CIDv1 the real store returns for single-block blobs.
type fakeStore struct {
	mu          sync.Mutex
	blobs       map[string][]byte
	putCalls    int
	getCalls    int
	putErr      error
	getDeadline time.Time
	// onPut runs before each Put, letting tests cancel contexts mid-flight.
	onPut func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{blobs: make(map[string][]byte)}
}

func (s *fakeStore) Put(ctx context.Context, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putCalls++
	if s.onPut != nil {
		s.onPut()
	}
	if s.putErr != nil {
		return "", s.putErr
	}
	cid := storage.CIDv1RawSHA256(data)
	s.blobs[cid] = append([]byte(nil), data...)
	return cid, nil
}

func (s *fakeStore) Get(ctx context.Context, cid string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	s.getDeadline, _ = ctx.Deadline()
	blob, ok := s.blobs[cid]
	if !ok {
		return nil, common.NewAppError(common.ErrNotFound, "STORE_NOT_FOUND", "no blob for "+cid, nil)
	}
	return append([]byte(nil), blob...), nil
}

type fakeLedger struct {
	mu          sync.Mutex
	uploader    ledger.Address
	permitted   bool
	permErr     error
	anchorErr   error
	permCalls   int
	anchorCalls int
}

func (l *fakeLedger) Uploader() ledger.Address { return l.uploader }

func (l *fakeLedger) HasPermission(ctx context.Context, principal ledger.Address) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.permCalls++
	if l.permErr != nil {
		return false, l.permErr
	}
	return l.permitted, nil
}

func (l *fakeLedger) Anchor(ctx context.Context, subject ledger.Address, contentHash [32]byte, cidBytes []byte) (ledger.AnchorResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.anchorCalls++
	if l.anchorErr != nil {
		return ledger.AnchorResult{}, l.anchorErr
	}
	return ledger.AnchorResult{
		TxHash:      fmt.Sprintf("0xtx%04d", l.anchorCalls),
		BlockNumber: uint64(100 + l.anchorCalls),
	}, nil
}

// fakeRecords is an in-memory IngestionRepository with the same optimistic
// status guard as the real one.
type fakeRecords struct {
	mu             sync.Mutex
	rows           map[uuid.UUID]*entity.IngestionRecord
	markAnchoredOK *bool // forces the guard result when set
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{rows: make(map[uuid.UUID]*entity.IngestionRecord)}
}

func (r *fakeRecords) Create(ctx context.Context, rec *entity.IngestionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.rows[rec.ID] = &cp
	return nil
}

func (r *fakeRecords) GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[id]
	if !ok {
		return nil, common.NewAppError(common.ErrNotFound, "INGESTION_NOT_FOUND", "no record", nil)
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeRecords) ListBySubject(ctx context.Context, subject string) ([]*entity.IngestionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.IngestionRecord
	for _, rec := range r.rows {
		if rec.Subject == subject {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRecords) ListByFingerprint(ctx context.Context, fp string) ([]*entity.IngestionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.IngestionRecord
	for _, rec := range r.rows {
		if rec.Fingerprint == fp {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRecords) MarkAnchored(ctx context.Context, id uuid.UUID, txHash string, blockNumber uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.markAnchoredOK != nil {
		return *r.markAnchoredOK, nil
	}
	rec, ok := r.rows[id]
	if !ok || rec.Status != "FAILED" {
		return false, nil
	}
	rec.Status = "ANCHORED"
	rec.TxHash = txHash
	rec.BlockNumber = blockNumber
	rec.FailureHint = ""
	return true, nil
}
