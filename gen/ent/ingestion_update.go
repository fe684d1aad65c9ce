// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medchain/docanchor/gen/ent/ingestion"
	"github.com/medchain/docanchor/gen/ent/predicate"
)

// IngestionUpdate is the builder for updating Ingestion entities.
type IngestionUpdate struct {
	config
	hooks    []Hook
	mutation *IngestionMutation
}

// Where appends a list predicates to the IngestionUpdate builder.
func (_u *IngestionUpdate) Where(ps ...predicate.Ingestion) *IngestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *IngestionUpdate) SetSubject(v string) *IngestionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *IngestionUpdate) SetNillableSubject(v *string) *IngestionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *IngestionUpdate) SetFilename(v string) *IngestionUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *IngestionUpdate) SetNillableFilename(v *string) *IngestionUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *IngestionUpdate) SetFingerprint(v string) *IngestionUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *IngestionUpdate) SetNillableFingerprint(v *string) *IngestionUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetCid sets the "cid" field.
func (_u *IngestionUpdate) SetCid(v string) *IngestionUpdate {
	_u.mutation.SetCid(v)
	return _u
}

// SetNillableCid sets the "cid" field if the given value is not nil.
func (_u *IngestionUpdate) SetNillableCid(v *string) *IngestionUpdate {
	if v != nil {
		_u.SetCid(*v)
	}
	return _u
}

// ClearCid clears the value of the "cid" field.
func (_u *IngestionUpdate) ClearCid() *IngestionUpdate {
	_u.mutation.ClearCid()
	return _u
}

// SetTxHash sets the "tx_hash" field.
func (_u *IngestionUpdate) SetTxHash(v string) *IngestionUpdate {
	_u.mutation.SetTxHash(v)
	return _u
}

// SetNillableTxHash sets the "tx_hash" field if the given value is not nil.
func (_u *IngestionUpdate) SetNillableTxHash(v *string) *IngestionUpdate {
	if v != nil {
		_u.SetTxHash(*v)
	}
	return _u
}

// ClearTxHash clears the value of the "tx_hash" field.
func (_u *IngestionUpdate) ClearTxHash() *IngestionUpdate {
	_u.mutation.ClearTxHash()
	return _u
}

// SetBlockNumber sets the "block_number" field.
func (_u *IngestionUpdate) SetBlockNumber(v uint64) *IngestionUpdate {
	_u.mutation.ResetBlockNumber()
	_u.mutation.SetBlockNumber(v)
	return _u
}

// SetNillableBlockNumber sets the "block_number" field if the given value is not nil.
func (_u *IngestionUpdate) SetNillableBlockNumber(v *uint64) *IngestionUpdate {
	if v != nil {
		_u.SetBlockNumber(*v)
	}
	return _u
}

// AddBlockNumber adds value to the "block_number" field.
func (_u *IngestionUpdate) AddBlockNumber(v int64) *IngestionUpdate {
	_u.mutation.AddBlockNumber(v)
	return _u
}

// ClearBlockNumber clears the value of the "block_number" field.
func (_u *IngestionUpdate) ClearBlockNumber() *IngestionUpdate {
	_u.mutation.ClearBlockNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestionUpdate) SetStatus(v string) *IngestionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestionUpdate) SetNillableStatus(v *string) *IngestionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureHint sets the "failure_hint" field.
func (_u *IngestionUpdate) SetFailureHint(v string) *IngestionUpdate {
	_u.mutation.SetFailureHint(v)
	return _u
}

// SetNillableFailureHint sets the "failure_hint" field if the given value is not nil.
func (_u *IngestionUpdate) SetNillableFailureHint(v *string) *IngestionUpdate {
	if v != nil {
		_u.SetFailureHint(*v)
	}
	return _u
}

// ClearFailureHint clears the value of the "failure_hint" field.
func (_u *IngestionUpdate) ClearFailureHint() *IngestionUpdate {
	_u.mutation.ClearFailureHint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IngestionUpdate) SetUpdatedAt(v time.Time) *IngestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IngestionMutation object of the builder.
func (_u *IngestionUpdate) Mutation() *IngestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IngestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ingestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestionUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := ingestion.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Ingestion.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := ingestion.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Ingestion.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := ingestion.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Ingestion.fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ingestion.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestion.Table, ingestion.Columns, sqlgraph.NewFieldSpec(ingestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(ingestion.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(ingestion.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(ingestion.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cid(); ok {
		_spec.SetField(ingestion.FieldCid, field.TypeString, value)
	}
	if _u.mutation.CidCleared() {
		_spec.ClearField(ingestion.FieldCid, field.TypeString)
	}
	if value, ok := _u.mutation.TxHash(); ok {
		_spec.SetField(ingestion.FieldTxHash, field.TypeString, value)
	}
	if _u.mutation.TxHashCleared() {
		_spec.ClearField(ingestion.FieldTxHash, field.TypeString)
	}
	if value, ok := _u.mutation.BlockNumber(); ok {
		_spec.SetField(ingestion.FieldBlockNumber, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedBlockNumber(); ok {
		_spec.AddField(ingestion.FieldBlockNumber, field.TypeUint64, value)
	}
	if _u.mutation.BlockNumberCleared() {
		_spec.ClearField(ingestion.FieldBlockNumber, field.TypeUint64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestion.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureHint(); ok {
		_spec.SetField(ingestion.FieldFailureHint, field.TypeString, value)
	}
	if _u.mutation.FailureHintCleared() {
		_spec.ClearField(ingestion.FieldFailureHint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestionUpdateOne is the builder for updating a single Ingestion entity.
type IngestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestionMutation
}

// SetSubject sets the "subject" field.
func (_u *IngestionUpdateOne) SetSubject(v string) *IngestionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *IngestionUpdateOne) SetNillableSubject(v *string) *IngestionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *IngestionUpdateOne) SetFilename(v string) *IngestionUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *IngestionUpdateOne) SetNillableFilename(v *string) *IngestionUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *IngestionUpdateOne) SetFingerprint(v string) *IngestionUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *IngestionUpdateOne) SetNillableFingerprint(v *string) *IngestionUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetCid sets the "cid" field.
func (_u *IngestionUpdateOne) SetCid(v string) *IngestionUpdateOne {
	_u.mutation.SetCid(v)
	return _u
}

// SetNillableCid sets the "cid" field if the given value is not nil.
func (_u *IngestionUpdateOne) SetNillableCid(v *string) *IngestionUpdateOne {
	if v != nil {
		_u.SetCid(*v)
	}
	return _u
}

// ClearCid clears the value of the "cid" field.
func (_u *IngestionUpdateOne) ClearCid() *IngestionUpdateOne {
	_u.mutation.ClearCid()
	return _u
}

// SetTxHash sets the "tx_hash" field.
func (_u *IngestionUpdateOne) SetTxHash(v string) *IngestionUpdateOne {
	_u.mutation.SetTxHash(v)
	return _u
}

// SetNillableTxHash sets the "tx_hash" field if the given value is not nil.
func (_u *IngestionUpdateOne) SetNillableTxHash(v *string) *IngestionUpdateOne {
	if v != nil {
		_u.SetTxHash(*v)
	}
	return _u
}

// ClearTxHash clears the value of the "tx_hash" field.
func (_u *IngestionUpdateOne) ClearTxHash() *IngestionUpdateOne {
	_u.mutation.ClearTxHash()
	return _u
}

// SetBlockNumber sets the "block_number" field.
func (_u *IngestionUpdateOne) SetBlockNumber(v uint64) *IngestionUpdateOne {
	_u.mutation.ResetBlockNumber()
	_u.mutation.SetBlockNumber(v)
	return _u
}

// SetNillableBlockNumber sets the "block_number" field if the given value is not nil.
func (_u *IngestionUpdateOne) SetNillableBlockNumber(v *uint64) *IngestionUpdateOne {
	if v != nil {
		_u.SetBlockNumber(*v)
	}
	return _u
}

// AddBlockNumber adds value to the "block_number" field.
func (_u *IngestionUpdateOne) AddBlockNumber(v int64) *IngestionUpdateOne {
	_u.mutation.AddBlockNumber(v)
	return _u
}

// ClearBlockNumber clears the value of the "block_number" field.
func (_u *IngestionUpdateOne) ClearBlockNumber() *IngestionUpdateOne {
	_u.mutation.ClearBlockNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestionUpdateOne) SetStatus(v string) *IngestionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestionUpdateOne) SetNillableStatus(v *string) *IngestionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureHint sets the "failure_hint" field.
func (_u *IngestionUpdateOne) SetFailureHint(v string) *IngestionUpdateOne {
	_u.mutation.SetFailureHint(v)
	return _u
}

// SetNillableFailureHint sets the "failure_hint" field if the given value is not nil.
func (_u *IngestionUpdateOne) SetNillableFailureHint(v *string) *IngestionUpdateOne {
	if v != nil {
		_u.SetFailureHint(*v)
	}
	return _u
}

// ClearFailureHint clears the value of the "failure_hint" field.
func (_u *IngestionUpdateOne) ClearFailureHint() *IngestionUpdateOne {
	_u.mutation.ClearFailureHint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IngestionUpdateOne) SetUpdatedAt(v time.Time) *IngestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IngestionMutation object of the builder.
func (_u *IngestionUpdateOne) Mutation() *IngestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestionUpdate builder.
func (_u *IngestionUpdateOne) Where(ps ...predicate.Ingestion) *IngestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestionUpdateOne) Select(field string, fields ...string) *IngestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ingestion entity.
func (_u *IngestionUpdateOne) Save(ctx context.Context) (*Ingestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestionUpdateOne) SaveX(ctx context.Context) *Ingestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IngestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ingestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestionUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := ingestion.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Ingestion.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := ingestion.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Ingestion.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := ingestion.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Ingestion.fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ingestion.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestionUpdateOne) sqlSave(ctx context.Context) (_node *Ingestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestion.Table, ingestion.Columns, sqlgraph.NewFieldSpec(ingestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ingestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestion.FieldID)
		for _, f := range fields {
			if !ingestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(ingestion.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(ingestion.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(ingestion.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cid(); ok {
		_spec.SetField(ingestion.FieldCid, field.TypeString, value)
	}
	if _u.mutation.CidCleared() {
		_spec.ClearField(ingestion.FieldCid, field.TypeString)
	}
	if value, ok := _u.mutation.TxHash(); ok {
		_spec.SetField(ingestion.FieldTxHash, field.TypeString, value)
	}
	if _u.mutation.TxHashCleared() {
		_spec.ClearField(ingestion.FieldTxHash, field.TypeString)
	}
	if value, ok := _u.mutation.BlockNumber(); ok {
		_spec.SetField(ingestion.FieldBlockNumber, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedBlockNumber(); ok {
		_spec.AddField(ingestion.FieldBlockNumber, field.TypeUint64, value)
	}
	if _u.mutation.BlockNumberCleared() {
		_spec.ClearField(ingestion.FieldBlockNumber, field.TypeUint64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestion.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureHint(); ok {
		_spec.SetField(ingestion.FieldFailureHint, field.TypeString, value)
	}
	if _u.mutation.FailureHintCleared() {
		_spec.ClearField(ingestion.FieldFailureHint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestion.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Ingestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
