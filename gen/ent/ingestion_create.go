// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medchain/docanchor/gen/ent/ingestion"
)

// IngestionCreate is the builder for creating a Ingestion entity.
type IngestionCreate struct {
	config
	mutation *IngestionMutation
	hooks    []Hook
}

// SetSubject sets the "subject" field.
func (_c *IngestionCreate) SetSubject(v string) *IngestionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *IngestionCreate) SetFilename(v string) *IngestionCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *IngestionCreate) SetFingerprint(v string) *IngestionCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetCid sets the "cid" field.
func (_c *IngestionCreate) SetCid(v string) *IngestionCreate {
	_c.mutation.SetCid(v)
	return _c
}

// SetNillableCid sets the "cid" field if the given value is not nil.
func (_c *IngestionCreate) SetNillableCid(v *string) *IngestionCreate {
	if v != nil {
		_c.SetCid(*v)
	}
	return _c
}

// SetTxHash sets the "tx_hash" field.
func (_c *IngestionCreate) SetTxHash(v string) *IngestionCreate {
	_c.mutation.SetTxHash(v)
	return _c
}

// SetNillableTxHash sets the "tx_hash" field if the given value is not nil.
func (_c *IngestionCreate) SetNillableTxHash(v *string) *IngestionCreate {
	if v != nil {
		_c.SetTxHash(*v)
	}
	return _c
}

// SetBlockNumber sets the "block_number" field.
func (_c *IngestionCreate) SetBlockNumber(v uint64) *IngestionCreate {
	_c.mutation.SetBlockNumber(v)
	return _c
}

// SetNillableBlockNumber sets the "block_number" field if the given value is not nil.
func (_c *IngestionCreate) SetNillableBlockNumber(v *uint64) *IngestionCreate {
	if v != nil {
		_c.SetBlockNumber(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngestionCreate) SetStatus(v string) *IngestionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetFailureHint sets the "failure_hint" field.
func (_c *IngestionCreate) SetFailureHint(v string) *IngestionCreate {
	_c.mutation.SetFailureHint(v)
	return _c
}

// SetNillableFailureHint sets the "failure_hint" field if the given value is not nil.
func (_c *IngestionCreate) SetNillableFailureHint(v *string) *IngestionCreate {
	if v != nil {
		_c.SetFailureHint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IngestionCreate) SetCreatedAt(v time.Time) *IngestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IngestionCreate) SetNillableCreatedAt(v *time.Time) *IngestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IngestionCreate) SetUpdatedAt(v time.Time) *IngestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IngestionCreate) SetNillableUpdatedAt(v *time.Time) *IngestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestionCreate) SetID(v uuid.UUID) *IngestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngestionCreate) SetNillableID(v *uuid.UUID) *IngestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the IngestionMutation object of the builder.
func (_c *IngestionCreate) Mutation() *IngestionMutation {
	return _c.mutation
}

// Save creates the Ingestion in the database.
func (_c *IngestionCreate) Save(ctx context.Context) (*Ingestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestionCreate) SaveX(ctx context.Context) *Ingestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ingestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ingestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ingestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestionCreate) check() error {
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Ingestion.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := ingestion.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Ingestion.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Ingestion.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := ingestion.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Ingestion.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Ingestion.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := ingestion.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Ingestion.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Ingestion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ingestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ingestion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Ingestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ingestion.updated_at"`)}
	}
	return nil
}

func (_c *IngestionCreate) sqlSave(ctx context.Context) (*Ingestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IngestionCreate) createSpec() (*Ingestion, *sqlgraph.CreateSpec) {
	var (
		_node = &Ingestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestion.Table, sqlgraph.NewFieldSpec(ingestion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(ingestion.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(ingestion.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(ingestion.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.Cid(); ok {
		_spec.SetField(ingestion.FieldCid, field.TypeString, value)
		_node.Cid = value
	}
	if value, ok := _c.mutation.TxHash(); ok {
		_spec.SetField(ingestion.FieldTxHash, field.TypeString, value)
		_node.TxHash = value
	}
	if value, ok := _c.mutation.BlockNumber(); ok {
		_spec.SetField(ingestion.FieldBlockNumber, field.TypeUint64, value)
		_node.BlockNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestion.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailureHint(); ok {
		_spec.SetField(ingestion.FieldFailureHint, field.TypeString, value)
		_node.FailureHint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ingestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// IngestionCreateBulk is the builder for creating many Ingestion entities in bulk.
type IngestionCreateBulk struct {
	config
	err      error
	builders []*IngestionCreate
}

// Save creates the Ingestion entities in the database.
func (_c *IngestionCreateBulk) Save(ctx context.Context) ([]*Ingestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ingestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *IngestionCreateBulk) SaveX(ctx context.Context) []*Ingestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
