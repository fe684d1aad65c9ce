package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/medchain/docanchor/constants"
)

// IngestionRecord is the audit trail of one ingestion attempt, transferred
// between layers. It references exactly one fingerprint, at most one CID, and
// at most one ledger transaction. The same fingerprint may appear on many
// records: duplicate content is deliberately not deduplicated.
type IngestionRecord struct {
	ID          uuid.UUID                 `json:"id"`
	Subject     string                    `json:"subject"`
	Filename    string                    `json:"filename"`
	Fingerprint string                    `json:"fingerprint"`
	CID         string                    `json:"cid,omitempty"`
	TxHash      string                    `json:"tx_hash,omitempty"`
	BlockNumber uint64                    `json:"block_number,omitempty"`
	Status      constants.IngestionStatus `json:"status"`
	FailureHint string                    `json:"failure_hint,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// Resumable reports whether a failed record checkpointed after storage and
// can be re-anchored without a second store write.
func (r *IngestionRecord) Resumable() bool {
	return r.Status == constants.StatusFailed && r.CID != ""
}
