// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/relay-agents/relay/ent/threadmapping"
)

// ThreadMappingCreate is the builder for creating a ThreadMapping entity.
type ThreadMappingCreate struct {
	config
	mutation *ThreadMappingMutation
	hooks    []Hook
}

// SetThreadKey sets the "thread_key" field.
func (_c *ThreadMappingCreate) SetThreadKey(v string) *ThreadMappingCreate {
	_c.mutation.SetThreadKey(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ThreadMappingCreate) SetSessionID(v string) *ThreadMappingCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *ThreadMappingCreate) SetContext(v map[string]interface{}) *ThreadMappingCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThreadMappingCreate) SetCreatedAt(v time.Time) *ThreadMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThreadMappingCreate) SetNillableCreatedAt(v *time.Time) *ThreadMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ThreadMappingCreate) SetUpdatedAt(v time.Time) *ThreadMappingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ThreadMappingCreate) SetNillableUpdatedAt(v *time.Time) *ThreadMappingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ThreadMappingMutation object of the builder.
func (_c *ThreadMappingCreate) Mutation() *ThreadMappingMutation {
	return _c.mutation
}

// Save creates the ThreadMapping in the database.
func (_c *ThreadMappingCreate) Save(ctx context.Context) (*ThreadMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThreadMappingCreate) SaveX(ctx context.Context) *ThreadMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThreadMappingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := threadmapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := threadmapping.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThreadMappingCreate) check() error {
	if _, ok := _c.mutation.ThreadKey(); !ok {
		return &ValidationError{Name: "thread_key", err: errors.New(`ent: missing required field "ThreadMapping.thread_key"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ThreadMapping.session_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ThreadMapping.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ThreadMapping.updated_at"`)}
	}
	return nil
}

func (_c *ThreadMappingCreate) sqlSave(ctx context.Context) (*ThreadMapping, error) {
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

func (_c *ThreadMappingCreate) createSpec() (*ThreadMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &ThreadMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(threadmapping.Table, sqlgraph.NewFieldSpec(threadmapping.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ThreadKey(); ok {
		_spec.SetField(threadmapping.FieldThreadKey, field.TypeString, value)
		_node.ThreadKey = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(threadmapping.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(threadmapping.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(threadmapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(threadmapping.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ThreadMappingCreateBulk is the builder for creating many ThreadMapping entities in bulk.
type ThreadMappingCreateBulk struct {
	config
	err      error
	builders []*ThreadMappingCreate
}

// Save creates the ThreadMapping entities in the database.
func (_c *ThreadMappingCreateBulk) Save(ctx context.Context) ([]*ThreadMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThreadMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThreadMappingMutation)
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
func (_c *ThreadMappingCreateBulk) SaveX(ctx context.Context) []*ThreadMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
