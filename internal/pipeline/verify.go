package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medchain/docanchor/internal/cipher"
	"github.com/medchain/docanchor/internal/common"
	"github.com/medchain/docanchor/internal/entity"
	"github.com/medchain/docanchor/internal/fingerprint"
)

// VerifyResult reports a successful integrity verification.
type VerifyResult struct {
	Record *entity.IngestionRecord
	// RecomputedFingerprint equals Record.Fingerprint when verification
	// succeeds; it is reported so auditors can log both sides.
	RecomputedFingerprint string
}

// Verify is the read path: fetch the envelope by CID, authenticate and
// decrypt it, re-hash the plaintext, and compare against the recorded
// fingerprint. Any failure past the fetch is an IntegrityError and is fatal;
// a tampered blob never yields a plausible-looking success.
func (o *Orchestrator) Verify(ctx context.Context, id uuid.UUID) (*VerifyResult, error) {
	rec, err := o.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.CID == "" {
		return nil, common.NewAppError(common.ErrInput, "NOTHING_STORED",
			fmt.Sprintf("ingestion %s has no stored content to verify", id), nil)
	}

	getCtx, cancel := context.WithTimeout(ctx, o.timeouts.Get)
	blob, err := o.store.Get(getCtx, rec.CID)
	cancel()
	if err != nil {
		return nil, err
	}

	env, err := cipher.UnmarshalEnvelope(blob)
	if err != nil {
		return nil, err
	}
	plain, err := cipher.Decrypt(env, o.secret)
	if err != nil {
		return nil, err
	}

	recomputed := fingerprint.Hash(plain).String()
	if recomputed != rec.Fingerprint {
		return nil, common.NewAppError(common.ErrIntegrity, "FINGERPRINT_MISMATCH",
			fmt.Sprintf("stored content hashes to %s but the ledger-anchored fingerprint is %s", recomputed, rec.Fingerprint), nil)
	}

	o.logger.Info("pipeline.verified", "ingestion_id", id, "fingerprint", recomputed)
	return &VerifyResult{Record: rec, RecomputedFingerprint: recomputed}, nil
}
