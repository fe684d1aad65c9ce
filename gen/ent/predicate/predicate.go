// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Ingestion is the predicate function for ingestion builders.
type Ingestion func(*sql.Selector)
