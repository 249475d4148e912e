// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bookworm/ent/speechevent"
)

// SpeechEventCreate is the builder for creating a SpeechEvent entity.
type SpeechEventCreate struct {
	config
	mutation *SpeechEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SpeechEventCreate) SetSequence(v int64) *SpeechEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SpeechEventCreate) SetTimestamp(v time.Time) *SpeechEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SpeechEventCreate) SetNillableTimestamp(v *time.Time) *SpeechEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBackend sets the "backend" field.
func (_c *SpeechEventCreate) SetBackend(v string) *SpeechEventCreate {
	_c.mutation.SetBackend(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *SpeechEventCreate) SetLatencyMs(v int64) *SpeechEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *SpeechEventCreate) SetSuccess(v bool) *SpeechEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *SpeechEventCreate) SetFallback(v bool) *SpeechEventCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *SpeechEventCreate) SetNillableFallback(v *bool) *SpeechEventCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// Mutation returns the SpeechEventMutation object of the builder.
func (_c *SpeechEventCreate) Mutation() *SpeechEventMutation {
	return _c.mutation
}

// Save creates the SpeechEvent in the database.
func (_c *SpeechEventCreate) Save(ctx context.Context) (*SpeechEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpeechEventCreate) SaveX(ctx context.Context) *SpeechEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpeechEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpeechEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpeechEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := speechevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := speechevent.DefaultFallback
		_c.mutation.SetFallback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpeechEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SpeechEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SpeechEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Backend(); !ok {
		return &ValidationError{Name: "backend", err: errors.New(`ent: missing required field "SpeechEvent.backend"`)}
	}
	if v, ok := _c.mutation.Backend(); ok {
		if err := speechevent.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "SpeechEvent.backend": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "SpeechEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "SpeechEvent.success"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "SpeechEvent.fallback"`)}
	}
	return nil
}

func (_c *SpeechEventCreate) sqlSave(ctx context.Context) (*SpeechEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpeechEventCreate) createSpec() (*SpeechEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SpeechEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(speechevent.Table, sqlgraph.NewFieldSpec(speechevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(speechevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(speechevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Backend(); ok {
		_spec.SetField(speechevent.FieldBackend, field.TypeString, value)
		_node.Backend = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(speechevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(speechevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(speechevent.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	return _node, _spec
}

// SpeechEventCreateBulk is the builder for creating many SpeechEvent entities in bulk.
type SpeechEventCreateBulk struct {
	config
	err      error
	builders []*SpeechEventCreate
}

// Save creates the SpeechEvent entities in the database.
func (_c *SpeechEventCreateBulk) Save(ctx context.Context) ([]*SpeechEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpeechEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpeechEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SpeechEventCreateBulk) SaveX(ctx context.Context) []*SpeechEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpeechEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpeechEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
