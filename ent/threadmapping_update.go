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
	"github.com/relay-agents/relay/ent/predicate"
	"github.com/relay-agents/relay/ent/threadmapping"
)

// ThreadMappingUpdate is the builder for updating ThreadMapping entities.
type ThreadMappingUpdate struct {
	config
	hooks    []Hook
	mutation *ThreadMappingMutation
}

// Where appends a list predicates to the ThreadMappingUpdate builder.
func (_u *ThreadMappingUpdate) Where(ps ...predicate.ThreadMapping) *ThreadMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadKey sets the "thread_key" field.
func (_u *ThreadMappingUpdate) SetThreadKey(v string) *ThreadMappingUpdate {
	_u.mutation.SetThreadKey(v)
	return _u
}

// SetNillableThreadKey sets the "thread_key" field if the given value is not nil.
func (_u *ThreadMappingUpdate) SetNillableThreadKey(v *string) *ThreadMappingUpdate {
	if v != nil {
		_u.SetThreadKey(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ThreadMappingUpdate) SetSessionID(v string) *ThreadMappingUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ThreadMappingUpdate) SetNillableSessionID(v *string) *ThreadMappingUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ThreadMappingUpdate) SetContext(v map[string]interface{}) *ThreadMappingUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ThreadMappingUpdate) ClearContext() *ThreadMappingUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ThreadMappingUpdate) SetCreatedAt(v time.Time) *ThreadMappingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ThreadMappingUpdate) SetNillableCreatedAt(v *time.Time) *ThreadMappingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ThreadMappingUpdate) SetUpdatedAt(v time.Time) *ThreadMappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ThreadMappingMutation object of the builder.
func (_u *ThreadMappingUpdate) Mutation() *ThreadMappingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThreadMappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThreadMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ThreadMappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := threadmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ThreadMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(threadmapping.Table, threadmapping.Columns, sqlgraph.NewFieldSpec(threadmapping.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadKey(); ok {
		_spec.SetField(threadmapping.FieldThreadKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(threadmapping.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(threadmapping.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(threadmapping.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(threadmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(threadmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{threadmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThreadMappingUpdateOne is the builder for updating a single ThreadMapping entity.
type ThreadMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThreadMappingMutation
}

// SetThreadKey sets the "thread_key" field.
func (_u *ThreadMappingUpdateOne) SetThreadKey(v string) *ThreadMappingUpdateOne {
	_u.mutation.SetThreadKey(v)
	return _u
}

// SetNillableThreadKey sets the "thread_key" field if the given value is not nil.
func (_u *ThreadMappingUpdateOne) SetNillableThreadKey(v *string) *ThreadMappingUpdateOne {
	if v != nil {
		_u.SetThreadKey(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ThreadMappingUpdateOne) SetSessionID(v string) *ThreadMappingUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ThreadMappingUpdateOne) SetNillableSessionID(v *string) *ThreadMappingUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ThreadMappingUpdateOne) SetContext(v map[string]interface{}) *ThreadMappingUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ThreadMappingUpdateOne) ClearContext() *ThreadMappingUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ThreadMappingUpdateOne) SetCreatedAt(v time.Time) *ThreadMappingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ThreadMappingUpdateOne) SetNillableCreatedAt(v *time.Time) *ThreadMappingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ThreadMappingUpdateOne) SetUpdatedAt(v time.Time) *ThreadMappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ThreadMappingMutation object of the builder.
func (_u *ThreadMappingUpdateOne) Mutation() *ThreadMappingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ThreadMappingUpdate builder.
func (_u *ThreadMappingUpdateOne) Where(ps ...predicate.ThreadMapping) *ThreadMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThreadMappingUpdateOne) Select(field string, fields ...string) *ThreadMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThreadMapping entity.
func (_u *ThreadMappingUpdateOne) Save(ctx context.Context) (*ThreadMapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadMappingUpdateOne) SaveX(ctx context.Context) *ThreadMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThreadMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ThreadMappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := threadmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ThreadMappingUpdateOne) sqlSave(ctx context.Context) (_node *ThreadMapping, err error) {
	_spec := sqlgraph.NewUpdateSpec(threadmapping.Table, threadmapping.Columns, sqlgraph.NewFieldSpec(threadmapping.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThreadMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, threadmapping.FieldID)
		for _, f := range fields {
			if !threadmapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != threadmapping.FieldID {
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
	if value, ok := _u.mutation.ThreadKey(); ok {
		_spec.SetField(threadmapping.FieldThreadKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(threadmapping.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(threadmapping.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(threadmapping.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(threadmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(threadmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ThreadMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{threadmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
