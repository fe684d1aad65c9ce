// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IngestionsColumns holds the columns for the "ingestions" table.
	IngestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "subject", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "cid", Type: field.TypeString, Nullable: true},
		{Name: "tx_hash", Type: field.TypeString, Nullable: true},
		{Name: "block_number", Type: field.TypeUint64, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "failure_hint", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IngestionsTable holds the schema information for the "ingestions" table.
	IngestionsTable = &schema.Table{
		Name:       "ingestions",
		Columns:    IngestionsColumns,
		PrimaryKey: []*schema.Column{IngestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestion_subject_created_at",
				Unique:  false,
				Columns: []*schema.Column{IngestionsColumns[1], IngestionsColumns[9]},
			},
			{
				Name:    "ingestion_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{IngestionsColumns[3]},
			},
			{
				Name:    "ingestion_status",
				Unique:  false,
				Columns: []*schema.Column{IngestionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IngestionsTable,
	}
)

func init() {
	IngestionsTable.Annotation = &entsql.Annotation{
		Table: "ingestions",
	}
}
