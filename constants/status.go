package constants

// IngestionStatus is the canonical status for rows in ingestions.
type IngestionStatus string

// Stable values (store these exact strings in DB). An ingestion only moves
// forward: PENDING -> STORED -> ANCHORED, or terminates at FAILED.
const (
	StatusPending  IngestionStatus = "PENDING"  // record created, nothing durable yet
	StatusStored   IngestionStatus = "STORED"   // ciphertext in the content store
	StatusAnchored IngestionStatus = "ANCHORED" // fingerprint/CID pair on the ledger
	StatusFailed   IngestionStatus = "FAILED"   // terminal failure, partial record retained
)

// IngestionStatuses holds every valid status value for schema validation.
var IngestionStatuses = []string{
	string(StatusPending),
	string(StatusStored),
	string(StatusAnchored),
	string(StatusFailed),
}
