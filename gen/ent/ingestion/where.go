// Code generated by ent, DO NOT EDIT.

package ingestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medchain/docanchor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldID, id))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldSubject, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldFilename, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldFingerprint, v))
}

// Cid applies equality check predicate on the "cid" field. It's identical to CidEQ.
func Cid(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldCid, v))
}

// TxHash applies equality check predicate on the "tx_hash" field. It's identical to TxHashEQ.
func TxHash(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldTxHash, v))
}

// BlockNumber applies equality check predicate on the "block_number" field. It's identical to BlockNumberEQ.
func BlockNumber(v uint64) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldBlockNumber, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldStatus, v))
}

// FailureHint applies equality check predicate on the "failure_hint" field. It's identical to FailureHintEQ.
func FailureHint(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldFailureHint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContainsFold(FieldSubject, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContainsFold(FieldFilename, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContainsFold(FieldFingerprint, v))
}

// CidEQ applies the EQ predicate on the "cid" field.
func CidEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldCid, v))
}

// CidNEQ applies the NEQ predicate on the "cid" field.
func CidNEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldCid, v))
}

// CidIn applies the In predicate on the "cid" field.
func CidIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldCid, vs...))
}

// CidNotIn applies the NotIn predicate on the "cid" field.
func CidNotIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldCid, vs...))
}

// CidGT applies the GT predicate on the "cid" field.
func CidGT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldCid, v))
}

// CidGTE applies the GTE predicate on the "cid" field.
func CidGTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldCid, v))
}

// CidLT applies the LT predicate on the "cid" field.
func CidLT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldCid, v))
}

// CidLTE applies the LTE predicate on the "cid" field.
func CidLTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldCid, v))
}

// CidContains applies the Contains predicate on the "cid" field.
func CidContains(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContains(FieldCid, v))
}

// CidHasPrefix applies the HasPrefix predicate on the "cid" field.
func CidHasPrefix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasPrefix(FieldCid, v))
}

// CidHasSuffix applies the HasSuffix predicate on the "cid" field.
func CidHasSuffix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasSuffix(FieldCid, v))
}

// CidIsNil applies the IsNil predicate on the "cid" field.
func CidIsNil() predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIsNull(FieldCid))
}

// CidNotNil applies the NotNil predicate on the "cid" field.
func CidNotNil() predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotNull(FieldCid))
}

// CidEqualFold applies the EqualFold predicate on the "cid" field.
func CidEqualFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEqualFold(FieldCid, v))
}

// CidContainsFold applies the ContainsFold predicate on the "cid" field.
func CidContainsFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContainsFold(FieldCid, v))
}

// TxHashEQ applies the EQ predicate on the "tx_hash" field.
func TxHashEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldTxHash, v))
}

// TxHashNEQ applies the NEQ predicate on the "tx_hash" field.
func TxHashNEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldTxHash, v))
}

// TxHashIn applies the In predicate on the "tx_hash" field.
func TxHashIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldTxHash, vs...))
}

// TxHashNotIn applies the NotIn predicate on the "tx_hash" field.
func TxHashNotIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldTxHash, vs...))
}

// TxHashGT applies the GT predicate on the "tx_hash" field.
func TxHashGT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldTxHash, v))
}

// TxHashGTE applies the GTE predicate on the "tx_hash" field.
func TxHashGTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldTxHash, v))
}

// TxHashLT applies the LT predicate on the "tx_hash" field.
func TxHashLT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldTxHash, v))
}

// TxHashLTE applies the LTE predicate on the "tx_hash" field.
func TxHashLTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldTxHash, v))
}

// TxHashContains applies the Contains predicate on the "tx_hash" field.
func TxHashContains(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContains(FieldTxHash, v))
}

// TxHashHasPrefix applies the HasPrefix predicate on the "tx_hash" field.
func TxHashHasPrefix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasPrefix(FieldTxHash, v))
}

// TxHashHasSuffix applies the HasSuffix predicate on the "tx_hash" field.
func TxHashHasSuffix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasSuffix(FieldTxHash, v))
}

// TxHashIsNil applies the IsNil predicate on the "tx_hash" field.
func TxHashIsNil() predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIsNull(FieldTxHash))
}

// TxHashNotNil applies the NotNil predicate on the "tx_hash" field.
func TxHashNotNil() predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotNull(FieldTxHash))
}

// TxHashEqualFold applies the EqualFold predicate on the "tx_hash" field.
func TxHashEqualFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEqualFold(FieldTxHash, v))
}

// TxHashContainsFold applies the ContainsFold predicate on the "tx_hash" field.
func TxHashContainsFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContainsFold(FieldTxHash, v))
}

// BlockNumberEQ applies the EQ predicate on the "block_number" field.
func BlockNumberEQ(v uint64) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldBlockNumber, v))
}

// BlockNumberNEQ applies the NEQ predicate on the "block_number" field.
func BlockNumberNEQ(v uint64) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldBlockNumber, v))
}

// BlockNumberIn applies the In predicate on the "block_number" field.
func BlockNumberIn(vs ...uint64) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldBlockNumber, vs...))
}

// BlockNumberNotIn applies the NotIn predicate on the "block_number" field.
func BlockNumberNotIn(vs ...uint64) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldBlockNumber, vs...))
}

// BlockNumberGT applies the GT predicate on the "block_number" field.
func BlockNumberGT(v uint64) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldBlockNumber, v))
}

// BlockNumberGTE applies the GTE predicate on the "block_number" field.
func BlockNumberGTE(v uint64) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldBlockNumber, v))
}

// BlockNumberLT applies the LT predicate on the "block_number" field.
func BlockNumberLT(v uint64) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldBlockNumber, v))
}

// BlockNumberLTE applies the LTE predicate on the "block_number" field.
func BlockNumberLTE(v uint64) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldBlockNumber, v))
}

// BlockNumberIsNil applies the IsNil predicate on the "block_number" field.
func BlockNumberIsNil() predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIsNull(FieldBlockNumber))
}

// BlockNumberNotNil applies the NotNil predicate on the "block_number" field.
func BlockNumberNotNil() predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotNull(FieldBlockNumber))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContainsFold(FieldStatus, v))
}

// FailureHintEQ applies the EQ predicate on the "failure_hint" field.
func FailureHintEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldFailureHint, v))
}

// FailureHintNEQ applies the NEQ predicate on the "failure_hint" field.
func FailureHintNEQ(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldFailureHint, v))
}

// FailureHintIn applies the In predicate on the "failure_hint" field.
func FailureHintIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldFailureHint, vs...))
}

// FailureHintNotIn applies the NotIn predicate on the "failure_hint" field.
func FailureHintNotIn(vs ...string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldFailureHint, vs...))
}

// FailureHintGT applies the GT predicate on the "failure_hint" field.
func FailureHintGT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldFailureHint, v))
}

// FailureHintGTE applies the GTE predicate on the "failure_hint" field.
func FailureHintGTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldFailureHint, v))
}

// FailureHintLT applies the LT predicate on the "failure_hint" field.
func FailureHintLT(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldFailureHint, v))
}

// FailureHintLTE applies the LTE predicate on the "failure_hint" field.
func FailureHintLTE(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldFailureHint, v))
}

// FailureHintContains applies the Contains predicate on the "failure_hint" field.
func FailureHintContains(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContains(FieldFailureHint, v))
}

// FailureHintHasPrefix applies the HasPrefix predicate on the "failure_hint" field.
func FailureHintHasPrefix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasPrefix(FieldFailureHint, v))
}

// FailureHintHasSuffix applies the HasSuffix predicate on the "failure_hint" field.
func FailureHintHasSuffix(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldHasSuffix(FieldFailureHint, v))
}

// FailureHintIsNil applies the IsNil predicate on the "failure_hint" field.
func FailureHintIsNil() predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIsNull(FieldFailureHint))
}

// FailureHintNotNil applies the NotNil predicate on the "failure_hint" field.
func FailureHintNotNil() predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotNull(FieldFailureHint))
}

// FailureHintEqualFold applies the EqualFold predicate on the "failure_hint" field.
func FailureHintEqualFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEqualFold(FieldFailureHint, v))
}

// FailureHintContainsFold applies the ContainsFold predicate on the "failure_hint" field.
func FailureHintContainsFold(v string) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldContainsFold(FieldFailureHint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Ingestion {
	return predicate.Ingestion(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ingestion) predicate.Ingestion {
	return predicate.Ingestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ingestion) predicate.Ingestion {
	return predicate.Ingestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ingestion) predicate.Ingestion {
	return predicate.Ingestion(sql.NotPredicates(p))
}
