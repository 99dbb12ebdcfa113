// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/relay-agents/relay/ent/chatsession"
	"github.com/relay-agents/relay/ent/event"
	"github.com/relay-agents/relay/ent/mount"
	"github.com/relay-agents/relay/ent/predicate"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInitialMessage sets the "initial_message" field.
func (_u *ChatSessionUpdate) SetInitialMessage(v string) *ChatSessionUpdate {
	_u.mutation.SetInitialMessage(v)
	return _u
}

// SetNillableInitialMessage sets the "initial_message" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableInitialMessage(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetInitialMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatSessionUpdate) SetStatus(v chatsession.Status) *ChatSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableStatus(v *chatsession.Status) *ChatSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *ChatSessionUpdate) SetResponse(v json.RawMessage) *ChatSessionUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// AppendResponse appends value to the "response" field.
func (_u *ChatSessionUpdate) AppendResponse(v json.RawMessage) *ChatSessionUpdate {
	_u.mutation.AppendResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *ChatSessionUpdate) ClearResponse() *ChatSessionUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetUsage sets the "usage" field.
func (_u *ChatSessionUpdate) SetUsage(v map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *ChatSessionUpdate) ClearUsage() *ChatSessionUpdate {
	_u.mutation.ClearUsage()
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *ChatSessionUpdate) SetEventCount(v int) *ChatSessionUpdate {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableEventCount(v *int) *ChatSessionUpdate {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *ChatSessionUpdate) AddEventCount(v int) *ChatSessionUpdate {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ChatSessionUpdate) SetErrorMessage(v string) *ChatSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableErrorMessage(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ChatSessionUpdate) ClearErrorMessage() *ChatSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChatSessionUpdate) SetCreatedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableCreatedAt(v *time.Time) *ChatSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ChatSessionUpdate) SetCompletedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableCompletedAt(v *time.Time) *ChatSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ChatSessionUpdate) ClearCompletedAt() *ChatSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ChatSessionUpdate) SetLastInteractionAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableLastInteractionAt(v *time.Time) *ChatSessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ChatSessionUpdate) ClearLastInteractionAt() *ChatSessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ChatSessionUpdate) AddEventIDs(ids ...int) *ChatSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ChatSessionUpdate) AddEvents(v ...*Event) *ChatSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddMountIDs adds the "mounts" edge to the Mount entity by IDs.
func (_u *ChatSessionUpdate) AddMountIDs(ids ...int) *ChatSessionUpdate {
	_u.mutation.AddMountIDs(ids...)
	return _u
}

// AddMounts adds the "mounts" edges to the Mount entity.
func (_u *ChatSessionUpdate) AddMounts(v ...*Mount) *ChatSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMountIDs(ids...)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ChatSessionUpdate) ClearEvents() *ChatSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ChatSessionUpdate) RemoveEventIDs(ids ...int) *ChatSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ChatSessionUpdate) RemoveEvents(v ...*Event) *ChatSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearMounts clears all "mounts" edges to the Mount entity.
func (_u *ChatSessionUpdate) ClearMounts() *ChatSessionUpdate {
	_u.mutation.ClearMounts()
	return _u
}

// RemoveMountIDs removes the "mounts" edge to Mount entities by IDs.
func (_u *ChatSessionUpdate) RemoveMountIDs(ids ...int) *ChatSessionUpdate {
	_u.mutation.RemoveMountIDs(ids...)
	return _u
}

// RemoveMounts removes "mounts" edges to Mount entities.
func (_u *ChatSessionUpdate) RemoveMounts(v ...*Mount) *ChatSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMountIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InitialMessage(); ok {
		_spec.SetField(chatsession.FieldInitialMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(chatsession.FieldResponse, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponse(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldResponse, value)
		})
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(chatsession.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(chatsession.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(chatsession.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(chatsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(chatsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(chatsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(chatsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(chatsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(chatsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(chatsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(chatsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(chatsession.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.EventsTable,
			Columns: []string{chatsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.EventsTable,
			Columns: []string{chatsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.EventsTable,
			Columns: []string{chatsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MountsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MountsTable,
			Columns: []string{chatsession.MountsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mount.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMountsIDs(); len(nodes) > 0 && !_u.mutation.MountsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MountsTable,
			Columns: []string{chatsession.MountsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mount.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MountsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MountsTable,
			Columns: []string{chatsession.MountsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mount.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetInitialMessage sets the "initial_message" field.
func (_u *ChatSessionUpdateOne) SetInitialMessage(v string) *ChatSessionUpdateOne {
	_u.mutation.SetInitialMessage(v)
	return _u
}

// SetNillableInitialMessage sets the "initial_message" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableInitialMessage(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetInitialMessage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatSessionUpdateOne) SetStatus(v chatsession.Status) *ChatSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableStatus(v *chatsession.Status) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *ChatSessionUpdateOne) SetResponse(v json.RawMessage) *ChatSessionUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// AppendResponse appends value to the "response" field.
func (_u *ChatSessionUpdateOne) AppendResponse(v json.RawMessage) *ChatSessionUpdateOne {
	_u.mutation.AppendResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *ChatSessionUpdateOne) ClearResponse() *ChatSessionUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetUsage sets the "usage" field.
func (_u *ChatSessionUpdateOne) SetUsage(v map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *ChatSessionUpdateOne) ClearUsage() *ChatSessionUpdateOne {
	_u.mutation.ClearUsage()
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *ChatSessionUpdateOne) SetEventCount(v int) *ChatSessionUpdateOne {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableEventCount(v *int) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *ChatSessionUpdateOne) AddEventCount(v int) *ChatSessionUpdateOne {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ChatSessionUpdateOne) SetErrorMessage(v string) *ChatSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableErrorMessage(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ChatSessionUpdateOne) ClearErrorMessage() *ChatSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChatSessionUpdateOne) SetCreatedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ChatSessionUpdateOne) SetCompletedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ChatSessionUpdateOne) ClearCompletedAt() *ChatSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ChatSessionUpdateOne) SetLastInteractionAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ChatSessionUpdateOne) ClearLastInteractionAt() *ChatSessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ChatSessionUpdateOne) AddEventIDs(ids ...int) *ChatSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ChatSessionUpdateOne) AddEvents(v ...*Event) *ChatSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddMountIDs adds the "mounts" edge to the Mount entity by IDs.
func (_u *ChatSessionUpdateOne) AddMountIDs(ids ...int) *ChatSessionUpdateOne {
	_u.mutation.AddMountIDs(ids...)
	return _u
}

// AddMounts adds the "mounts" edges to the Mount entity.
func (_u *ChatSessionUpdateOne) AddMounts(v ...*Mount) *ChatSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMountIDs(ids...)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ChatSessionUpdateOne) ClearEvents() *ChatSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ChatSessionUpdateOne) RemoveEventIDs(ids ...int) *ChatSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ChatSessionUpdateOne) RemoveEvents(v ...*Event) *ChatSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearMounts clears all "mounts" edges to the Mount entity.
func (_u *ChatSessionUpdateOne) ClearMounts() *ChatSessionUpdateOne {
	_u.mutation.ClearMounts()
	return _u
}

// RemoveMountIDs removes the "mounts" edge to Mount entities by IDs.
func (_u *ChatSessionUpdateOne) RemoveMountIDs(ids ...int) *ChatSessionUpdateOne {
	_u.mutation.RemoveMountIDs(ids...)
	return _u
}

// RemoveMounts removes "mounts" edges to Mount entities.
func (_u *ChatSessionUpdateOne) RemoveMounts(v ...*Mount) *ChatSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMountIDs(ids...)
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
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
	if value, ok := _u.mutation.InitialMessage(); ok {
		_spec.SetField(chatsession.FieldInitialMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(chatsession.FieldResponse, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponse(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldResponse, value)
		})
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(chatsession.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(chatsession.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(chatsession.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(chatsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(chatsession.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(chatsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(chatsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(chatsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(chatsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(chatsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(chatsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(chatsession.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.EventsTable,
			Columns: []string{chatsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.EventsTable,
			Columns: []string{chatsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.EventsTable,
			Columns: []string{chatsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MountsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MountsTable,
			Columns: []string{chatsession.MountsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mount.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMountsIDs(); len(nodes) > 0 && !_u.mutation.MountsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MountsTable,
			Columns: []string{chatsession.MountsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mount.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MountsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MountsTable,
			Columns: []string{chatsession.MountsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mount.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
