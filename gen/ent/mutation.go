// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medchain/docanchor/gen/ent/ingestion"
	"github.com/medchain/docanchor/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIngestion = "Ingestion"
)

// IngestionMutation represents an operation that mutates the Ingestion nodes in the graph.
type IngestionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	subject         *string
	filename        *string
	fingerprint     *string
	cid             *string
	tx_hash         *string
	block_number    *uint64
	addblock_number *int64
	status          *string
	failure_hint    *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Ingestion, error)
	predicates      []predicate.Ingestion
}

var _ ent.Mutation = (*IngestionMutation)(nil)

// ingestionOption allows management of the mutation configuration using functional options.
type ingestionOption func(*IngestionMutation)

// newIngestionMutation creates new mutation for the Ingestion entity.
func newIngestionMutation(c config, op Op, opts ...ingestionOption) *IngestionMutation {
	m := &IngestionMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestionID sets the ID field of the mutation.
func withIngestionID(id uuid.UUID) ingestionOption {
	return func(m *IngestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Ingestion
		)
		m.oldValue = func(ctx context.Context) (*Ingestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ingestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestion sets the old Ingestion of the mutation.
func withIngestion(node *Ingestion) ingestionOption {
	return func(m *IngestionMutation) {
		m.oldValue = func(context.Context) (*Ingestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ingestion entities.
func (m *IngestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ingestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubject sets the "subject" field.
func (m *IngestionMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *IngestionMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *IngestionMutation) ResetSubject() {
	m.subject = nil
}

// SetFilename sets the "filename" field.
func (m *IngestionMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *IngestionMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *IngestionMutation) ResetFilename() {
	m.filename = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *IngestionMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *IngestionMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *IngestionMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetCid sets the "cid" field.
func (m *IngestionMutation) SetCid(s string) {
	m.cid = &s
}

// Cid returns the value of the "cid" field in the mutation.
func (m *IngestionMutation) Cid() (r string, exists bool) {
	v := m.cid
	if v == nil {
		return
	}
	return *v, true
}

// OldCid returns the old "cid" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldCid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCid: %w", err)
	}
	return oldValue.Cid, nil
}

// ClearCid clears the value of the "cid" field.
func (m *IngestionMutation) ClearCid() {
	m.cid = nil
	m.clearedFields[ingestion.FieldCid] = struct{}{}
}

// CidCleared returns if the "cid" field was cleared in this mutation.
func (m *IngestionMutation) CidCleared() bool {
	_, ok := m.clearedFields[ingestion.FieldCid]
	return ok
}

// ResetCid resets all changes to the "cid" field.
func (m *IngestionMutation) ResetCid() {
	m.cid = nil
	delete(m.clearedFields, ingestion.FieldCid)
}

// SetTxHash sets the "tx_hash" field.
func (m *IngestionMutation) SetTxHash(s string) {
	m.tx_hash = &s
}

// TxHash returns the value of the "tx_hash" field in the mutation.
func (m *IngestionMutation) TxHash() (r string, exists bool) {
	v := m.tx_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTxHash returns the old "tx_hash" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldTxHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTxHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTxHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTxHash: %w", err)
	}
	return oldValue.TxHash, nil
}

// ClearTxHash clears the value of the "tx_hash" field.
func (m *IngestionMutation) ClearTxHash() {
	m.tx_hash = nil
	m.clearedFields[ingestion.FieldTxHash] = struct{}{}
}

// TxHashCleared returns if the "tx_hash" field was cleared in this mutation.
func (m *IngestionMutation) TxHashCleared() bool {
	_, ok := m.clearedFields[ingestion.FieldTxHash]
	return ok
}

// ResetTxHash resets all changes to the "tx_hash" field.
func (m *IngestionMutation) ResetTxHash() {
	m.tx_hash = nil
	delete(m.clearedFields, ingestion.FieldTxHash)
}

// SetBlockNumber sets the "block_number" field.
func (m *IngestionMutation) SetBlockNumber(u uint64) {
	m.block_number = &u
	m.addblock_number = nil
}

// BlockNumber returns the value of the "block_number" field in the mutation.
func (m *IngestionMutation) BlockNumber() (r uint64, exists bool) {
	v := m.block_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockNumber returns the old "block_number" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldBlockNumber(ctx context.Context) (v uint64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockNumber: %w", err)
	}
	return oldValue.BlockNumber, nil
}

// AddBlockNumber adds u to the "block_number" field.
func (m *IngestionMutation) AddBlockNumber(u int64) {
	if m.addblock_number != nil {
		*m.addblock_number += u
	} else {
		m.addblock_number = &u
	}
}

// AddedBlockNumber returns the value that was added to the "block_number" field in this mutation.
func (m *IngestionMutation) AddedBlockNumber() (r int64, exists bool) {
	v := m.addblock_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearBlockNumber clears the value of the "block_number" field.
func (m *IngestionMutation) ClearBlockNumber() {
	m.block_number = nil
	m.addblock_number = nil
	m.clearedFields[ingestion.FieldBlockNumber] = struct{}{}
}

// BlockNumberCleared returns if the "block_number" field was cleared in this mutation.
func (m *IngestionMutation) BlockNumberCleared() bool {
	_, ok := m.clearedFields[ingestion.FieldBlockNumber]
	return ok
}

// ResetBlockNumber resets all changes to the "block_number" field.
func (m *IngestionMutation) ResetBlockNumber() {
	m.block_number = nil
	m.addblock_number = nil
	delete(m.clearedFields, ingestion.FieldBlockNumber)
}

// SetStatus sets the "status" field.
func (m *IngestionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *IngestionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IngestionMutation) ResetStatus() {
	m.status = nil
}

// SetFailureHint sets the "failure_hint" field.
func (m *IngestionMutation) SetFailureHint(s string) {
	m.failure_hint = &s
}

// FailureHint returns the value of the "failure_hint" field in the mutation.
func (m *IngestionMutation) FailureHint() (r string, exists bool) {
	v := m.failure_hint
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureHint returns the old "failure_hint" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldFailureHint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureHint: %w", err)
	}
	return oldValue.FailureHint, nil
}

// ClearFailureHint clears the value of the "failure_hint" field.
func (m *IngestionMutation) ClearFailureHint() {
	m.failure_hint = nil
	m.clearedFields[ingestion.FieldFailureHint] = struct{}{}
}

// FailureHintCleared returns if the "failure_hint" field was cleared in this mutation.
func (m *IngestionMutation) FailureHintCleared() bool {
	_, ok := m.clearedFields[ingestion.FieldFailureHint]
	return ok
}

// ResetFailureHint resets all changes to the "failure_hint" field.
func (m *IngestionMutation) ResetFailureHint() {
	m.failure_hint = nil
	delete(m.clearedFields, ingestion.FieldFailureHint)
}

// SetCreatedAt sets the "created_at" field.
func (m *IngestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IngestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IngestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IngestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IngestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ingestion entity.
// If the Ingestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IngestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IngestionMutation builder.
func (m *IngestionMutation) Where(ps ...predicate.Ingestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ingestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ingestion).
func (m *IngestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.subject != nil {
		fields = append(fields, ingestion.FieldSubject)
	}
	if m.filename != nil {
		fields = append(fields, ingestion.FieldFilename)
	}
	if m.fingerprint != nil {
		fields = append(fields, ingestion.FieldFingerprint)
	}
	if m.cid != nil {
		fields = append(fields, ingestion.FieldCid)
	}
	if m.tx_hash != nil {
		fields = append(fields, ingestion.FieldTxHash)
	}
	if m.block_number != nil {
		fields = append(fields, ingestion.FieldBlockNumber)
	}
	if m.status != nil {
		fields = append(fields, ingestion.FieldStatus)
	}
	if m.failure_hint != nil {
		fields = append(fields, ingestion.FieldFailureHint)
	}
	if m.created_at != nil {
		fields = append(fields, ingestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ingestion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestion.FieldSubject:
		return m.Subject()
	case ingestion.FieldFilename:
		return m.Filename()
	case ingestion.FieldFingerprint:
		return m.Fingerprint()
	case ingestion.FieldCid:
		return m.Cid()
	case ingestion.FieldTxHash:
		return m.TxHash()
	case ingestion.FieldBlockNumber:
		return m.BlockNumber()
	case ingestion.FieldStatus:
		return m.Status()
	case ingestion.FieldFailureHint:
		return m.FailureHint()
	case ingestion.FieldCreatedAt:
		return m.CreatedAt()
	case ingestion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestion.FieldSubject:
		return m.OldSubject(ctx)
	case ingestion.FieldFilename:
		return m.OldFilename(ctx)
	case ingestion.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case ingestion.FieldCid:
		return m.OldCid(ctx)
	case ingestion.FieldTxHash:
		return m.OldTxHash(ctx)
	case ingestion.FieldBlockNumber:
		return m.OldBlockNumber(ctx)
	case ingestion.FieldStatus:
		return m.OldStatus(ctx)
	case ingestion.FieldFailureHint:
		return m.OldFailureHint(ctx)
	case ingestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ingestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ingestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestion.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case ingestion.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case ingestion.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case ingestion.FieldCid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCid(v)
		return nil
	case ingestion.FieldTxHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTxHash(v)
		return nil
	case ingestion.FieldBlockNumber:
		v, ok := value.(uint64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockNumber(v)
		return nil
	case ingestion.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ingestion.FieldFailureHint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureHint(v)
		return nil
	case ingestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ingestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ingestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestionMutation) AddedFields() []string {
	var fields []string
	if m.addblock_number != nil {
		fields = append(fields, ingestion.FieldBlockNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingestion.FieldBlockNumber:
		return m.AddedBlockNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingestion.FieldBlockNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlockNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Ingestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestion.FieldCid) {
		fields = append(fields, ingestion.FieldCid)
	}
	if m.FieldCleared(ingestion.FieldTxHash) {
		fields = append(fields, ingestion.FieldTxHash)
	}
	if m.FieldCleared(ingestion.FieldBlockNumber) {
		fields = append(fields, ingestion.FieldBlockNumber)
	}
	if m.FieldCleared(ingestion.FieldFailureHint) {
		fields = append(fields, ingestion.FieldFailureHint)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestionMutation) ClearField(name string) error {
	switch name {
	case ingestion.FieldCid:
		m.ClearCid()
		return nil
	case ingestion.FieldTxHash:
		m.ClearTxHash()
		return nil
	case ingestion.FieldBlockNumber:
		m.ClearBlockNumber()
		return nil
	case ingestion.FieldFailureHint:
		m.ClearFailureHint()
		return nil
	}
	return fmt.Errorf("unknown Ingestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestionMutation) ResetField(name string) error {
	switch name {
	case ingestion.FieldSubject:
		m.ResetSubject()
		return nil
	case ingestion.FieldFilename:
		m.ResetFilename()
		return nil
	case ingestion.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case ingestion.FieldCid:
		m.ResetCid()
		return nil
	case ingestion.FieldTxHash:
		m.ResetTxHash()
		return nil
	case ingestion.FieldBlockNumber:
		m.ResetBlockNumber()
		return nil
	case ingestion.FieldStatus:
		m.ResetStatus()
		return nil
	case ingestion.FieldFailureHint:
		m.ResetFailureHint()
		return nil
	case ingestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ingestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ingestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Ingestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Ingestion edge %s", name)
}
