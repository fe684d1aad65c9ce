// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/medchain/docanchor/db/ent/schema"
	"github.com/medchain/docanchor/gen/ent/ingestion"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	ingestionFields := schema.Ingestion{}.Fields()
	_ = ingestionFields
	// ingestionDescSubject is the schema descriptor for subject field.
	ingestionDescSubject := ingestionFields[1].Descriptor()
	// ingestion.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	ingestion.SubjectValidator = ingestionDescSubject.Validators[0].(func(string) error)
	// ingestionDescFilename is the schema descriptor for filename field.
	ingestionDescFilename := ingestionFields[2].Descriptor()
	// ingestion.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	ingestion.FilenameValidator = ingestionDescFilename.Validators[0].(func(string) error)
	// ingestionDescFingerprint is the schema descriptor for fingerprint field.
	ingestionDescFingerprint := ingestionFields[3].Descriptor()
	// ingestion.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	ingestion.FingerprintValidator = ingestionDescFingerprint.Validators[0].(func(string) error)
	// ingestionDescStatus is the schema descriptor for status field.
	ingestionDescStatus := ingestionFields[7].Descriptor()
	// ingestion.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ingestion.StatusValidator = ingestionDescStatus.Validators[0].(func(string) error)
	// ingestionDescCreatedAt is the schema descriptor for created_at field.
	ingestionDescCreatedAt := ingestionFields[9].Descriptor()
	// ingestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	ingestion.DefaultCreatedAt = ingestionDescCreatedAt.Default.(func() time.Time)
	// ingestionDescUpdatedAt is the schema descriptor for updated_at field.
	ingestionDescUpdatedAt := ingestionFields[10].Descriptor()
	// ingestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ingestion.DefaultUpdatedAt = ingestionDescUpdatedAt.Default.(func() time.Time)
	// ingestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ingestion.UpdateDefaultUpdatedAt = ingestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ingestionDescID is the schema descriptor for id field.
	ingestionDescID := ingestionFields[0].Descriptor()
	// ingestion.DefaultID holds the default value on creation for the id field.
	ingestion.DefaultID = ingestionDescID.Default.(func() uuid.UUID)
}
