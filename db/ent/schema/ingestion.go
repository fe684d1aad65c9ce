package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/medchain/docanchor/constants"
	"github.com/medchain/docanchor/db/ent/schema/utils"
)

type Ingestion struct {
	ent.Schema
}

func (Ingestion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingestions"},
	}
}

func (Ingestion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// subject principal, stored in EIP-55 checksummed form
		field.String("subject").NotEmpty(),
		field.String("filename").NotEmpty(),
		// 0x-prefixed hex sha-256 of the canonical text
		field.String("fingerprint").NotEmpty(),
		// CID of the ciphertext envelope; empty until the store write succeeds
		field.String("cid").Optional(),
		field.String("tx_hash").Optional(),
		field.Uint64("block_number").Optional(),
		field.String("status").
			Validate(utils.EnumValidator(constants.IngestionStatuses...)),
		field.String("failure_hint").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Ingestion) Indexes() []ent.Index {
	return []ent.Index{
		// audit/history views query by subject and by fingerprint;
		// fingerprints are deliberately non-unique (duplicate uploads each
		// get their own row)
		index.Fields("subject", "created_at"),
		index.Fields("fingerprint"),
		index.Fields("status"),
	}
}
