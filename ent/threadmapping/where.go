// Code generated by ent, DO NOT EDIT.

package threadmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/relay-agents/relay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLTE(FieldID, id))
}

// ThreadKey applies equality check predicate on the "thread_key" field. It's identical to ThreadKeyEQ.
func ThreadKey(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldThreadKey, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldSessionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// ThreadKeyEQ applies the EQ predicate on the "thread_key" field.
func ThreadKeyEQ(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldThreadKey, v))
}

// ThreadKeyNEQ applies the NEQ predicate on the "thread_key" field.
func ThreadKeyNEQ(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNEQ(FieldThreadKey, v))
}

// ThreadKeyIn applies the In predicate on the "thread_key" field.
func ThreadKeyIn(vs ...string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldIn(FieldThreadKey, vs...))
}

// ThreadKeyNotIn applies the NotIn predicate on the "thread_key" field.
func ThreadKeyNotIn(vs ...string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNotIn(FieldThreadKey, vs...))
}

// ThreadKeyGT applies the GT predicate on the "thread_key" field.
func ThreadKeyGT(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGT(FieldThreadKey, v))
}

// ThreadKeyGTE applies the GTE predicate on the "thread_key" field.
func ThreadKeyGTE(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGTE(FieldThreadKey, v))
}

// ThreadKeyLT applies the LT predicate on the "thread_key" field.
func ThreadKeyLT(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLT(FieldThreadKey, v))
}

// ThreadKeyLTE applies the LTE predicate on the "thread_key" field.
func ThreadKeyLTE(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLTE(FieldThreadKey, v))
}

// ThreadKeyContains applies the Contains predicate on the "thread_key" field.
func ThreadKeyContains(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldContains(FieldThreadKey, v))
}

// ThreadKeyHasPrefix applies the HasPrefix predicate on the "thread_key" field.
func ThreadKeyHasPrefix(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldHasPrefix(FieldThreadKey, v))
}

// ThreadKeyHasSuffix applies the HasSuffix predicate on the "thread_key" field.
func ThreadKeyHasSuffix(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldHasSuffix(FieldThreadKey, v))
}

// ThreadKeyEqualFold applies the EqualFold predicate on the "thread_key" field.
func ThreadKeyEqualFold(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEqualFold(FieldThreadKey, v))
}

// ThreadKeyContainsFold applies the ContainsFold predicate on the "thread_key" field.
func ThreadKeyContainsFold(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldContainsFold(FieldThreadKey, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldContainsFold(FieldSessionID, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNotNull(FieldContext))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ThreadMapping) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ThreadMapping) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ThreadMapping) predicate.ThreadMapping {
	return predicate.ThreadMapping(sql.NotPredicates(p))
}
