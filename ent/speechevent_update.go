// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/bookworm/ent/predicate"
	"github.com/abhisek/bookworm/ent/speechevent"
)

// SpeechEventUpdate is the builder for updating SpeechEvent entities.
type SpeechEventUpdate struct {
	config
	hooks    []Hook
	mutation *SpeechEventMutation
}

// Where appends a list predicates to the SpeechEventUpdate builder.
func (_u *SpeechEventUpdate) Where(ps ...predicate.SpeechEvent) *SpeechEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBackend sets the "backend" field.
func (_u *SpeechEventUpdate) SetBackend(v string) *SpeechEventUpdate {
	_u.mutation.SetBackend(v)
	return _u
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (_u *SpeechEventUpdate) SetNillableBackend(v *string) *SpeechEventUpdate {
	if v != nil {
		_u.SetBackend(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SpeechEventUpdate) SetLatencyMs(v int64) *SpeechEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SpeechEventUpdate) SetNillableLatencyMs(v *int64) *SpeechEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SpeechEventUpdate) AddLatencyMs(v int64) *SpeechEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *SpeechEventUpdate) SetSuccess(v bool) *SpeechEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *SpeechEventUpdate) SetNillableSuccess(v *bool) *SpeechEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *SpeechEventUpdate) SetFallback(v bool) *SpeechEventUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *SpeechEventUpdate) SetNillableFallback(v *bool) *SpeechEventUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the SpeechEventMutation object of the builder.
func (_u *SpeechEventUpdate) Mutation() *SpeechEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpeechEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpeechEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpeechEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpeechEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpeechEventUpdate) check() error {
	if v, ok := _u.mutation.Backend(); ok {
		if err := speechevent.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "SpeechEvent.backend": %w`, err)}
		}
	}
	return nil
}

func (_u *SpeechEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(speechevent.Table, speechevent.Columns, sqlgraph.NewFieldSpec(speechevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Backend(); ok {
		_spec.SetField(speechevent.FieldBackend, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(speechevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(speechevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(speechevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(speechevent.FieldFallback, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{speechevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpeechEventUpdateOne is the builder for updating a single SpeechEvent entity.
type SpeechEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpeechEventMutation
}

// SetBackend sets the "backend" field.
func (_u *SpeechEventUpdateOne) SetBackend(v string) *SpeechEventUpdateOne {
	_u.mutation.SetBackend(v)
	return _u
}

// SetNillableBackend sets the "backend" field if the given value is not nil.
func (_u *SpeechEventUpdateOne) SetNillableBackend(v *string) *SpeechEventUpdateOne {
	if v != nil {
		_u.SetBackend(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *SpeechEventUpdateOne) SetLatencyMs(v int64) *SpeechEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *SpeechEventUpdateOne) SetNillableLatencyMs(v *int64) *SpeechEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *SpeechEventUpdateOne) AddLatencyMs(v int64) *SpeechEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *SpeechEventUpdateOne) SetSuccess(v bool) *SpeechEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *SpeechEventUpdateOne) SetNillableSuccess(v *bool) *SpeechEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *SpeechEventUpdateOne) SetFallback(v bool) *SpeechEventUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *SpeechEventUpdateOne) SetNillableFallback(v *bool) *SpeechEventUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// Mutation returns the SpeechEventMutation object of the builder.
func (_u *SpeechEventUpdateOne) Mutation() *SpeechEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpeechEventUpdate builder.
func (_u *SpeechEventUpdateOne) Where(ps ...predicate.SpeechEvent) *SpeechEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpeechEventUpdateOne) Select(field string, fields ...string) *SpeechEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpeechEvent entity.
func (_u *SpeechEventUpdateOne) Save(ctx context.Context) (*SpeechEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpeechEventUpdateOne) SaveX(ctx context.Context) *SpeechEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpeechEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpeechEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpeechEventUpdateOne) check() error {
	if v, ok := _u.mutation.Backend(); ok {
		if err := speechevent.BackendValidator(v); err != nil {
			return &ValidationError{Name: "backend", err: fmt.Errorf(`ent: validator failed for field "SpeechEvent.backend": %w`, err)}
		}
	}
	return nil
}

func (_u *SpeechEventUpdateOne) sqlSave(ctx context.Context) (_node *SpeechEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(speechevent.Table, speechevent.Columns, sqlgraph.NewFieldSpec(speechevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpeechEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, speechevent.FieldID)
		for _, f := range fields {
			if !speechevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != speechevent.FieldID {
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
	if value, ok := _u.mutation.Backend(); ok {
		_spec.SetField(speechevent.FieldBackend, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(speechevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(speechevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(speechevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(speechevent.FieldFallback, field.TypeBool, value)
	}
	_node = &SpeechEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{speechevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
