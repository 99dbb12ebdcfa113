// Code generated by ent, DO NOT EDIT.

package mount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/relay-agents/relay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Mount {
	return predicate.Mount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Mount {
	return predicate.Mount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Mount {
	return predicate.Mount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Mount {
	return predicate.Mount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Mount {
	return predicate.Mount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Mount {
	return predicate.Mount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Mount {
	return predicate.Mount(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldSessionID, v))
}

// MountPath applies equality check predicate on the "mount_path" field. It's identical to MountPathEQ.
func MountPath(v string) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldMountPath, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Mount {
	return predicate.Mount(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Mount {
	return predicate.Mount(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Mount {
	return predicate.Mount(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Mount {
	return predicate.Mount(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Mount {
	return predicate.Mount(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Mount {
	return predicate.Mount(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Mount {
	return predicate.Mount(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Mount {
	return predicate.Mount(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Mount {
	return predicate.Mount(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Mount {
	return predicate.Mount(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Mount {
	return predicate.Mount(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Mount {
	return predicate.Mount(sql.FieldContainsFold(FieldSessionID, v))
}

// MountPathEQ applies the EQ predicate on the "mount_path" field.
func MountPathEQ(v string) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldMountPath, v))
}

// MountPathNEQ applies the NEQ predicate on the "mount_path" field.
func MountPathNEQ(v string) predicate.Mount {
	return predicate.Mount(sql.FieldNEQ(FieldMountPath, v))
}

// MountPathIn applies the In predicate on the "mount_path" field.
func MountPathIn(vs ...string) predicate.Mount {
	return predicate.Mount(sql.FieldIn(FieldMountPath, vs...))
}

// MountPathNotIn applies the NotIn predicate on the "mount_path" field.
func MountPathNotIn(vs ...string) predicate.Mount {
	return predicate.Mount(sql.FieldNotIn(FieldMountPath, vs...))
}

// MountPathGT applies the GT predicate on the "mount_path" field.
func MountPathGT(v string) predicate.Mount {
	return predicate.Mount(sql.FieldGT(FieldMountPath, v))
}

// MountPathGTE applies the GTE predicate on the "mount_path" field.
func MountPathGTE(v string) predicate.Mount {
	return predicate.Mount(sql.FieldGTE(FieldMountPath, v))
}

// MountPathLT applies the LT predicate on the "mount_path" field.
func MountPathLT(v string) predicate.Mount {
	return predicate.Mount(sql.FieldLT(FieldMountPath, v))
}

// MountPathLTE applies the LTE predicate on the "mount_path" field.
func MountPathLTE(v string) predicate.Mount {
	return predicate.Mount(sql.FieldLTE(FieldMountPath, v))
}

// MountPathContains applies the Contains predicate on the "mount_path" field.
func MountPathContains(v string) predicate.Mount {
	return predicate.Mount(sql.FieldContains(FieldMountPath, v))
}

// MountPathHasPrefix applies the HasPrefix predicate on the "mount_path" field.
func MountPathHasPrefix(v string) predicate.Mount {
	return predicate.Mount(sql.FieldHasPrefix(FieldMountPath, v))
}

// MountPathHasSuffix applies the HasSuffix predicate on the "mount_path" field.
func MountPathHasSuffix(v string) predicate.Mount {
	return predicate.Mount(sql.FieldHasSuffix(FieldMountPath, v))
}

// MountPathEqualFold applies the EqualFold predicate on the "mount_path" field.
func MountPathEqualFold(v string) predicate.Mount {
	return predicate.Mount(sql.FieldEqualFold(FieldMountPath, v))
}

// MountPathContainsFold applies the ContainsFold predicate on the "mount_path" field.
func MountPathContainsFold(v string) predicate.Mount {
	return predicate.Mount(sql.FieldContainsFold(FieldMountPath, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Mount {
	return predicate.Mount(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Mount {
	return predicate.Mount(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Mount {
	return predicate.Mount(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Mount {
	return predicate.Mount(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Mount {
	return predicate.Mount(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Mount {
	return predicate.Mount(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Mount {
	return predicate.Mount(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Mount {
	return predicate.Mount(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Mount {
	return predicate.Mount(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Mount {
	return predicate.Mount(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Mount {
	return predicate.Mount(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Mount {
	return predicate.Mount(sql.FieldContainsFold(FieldType, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.Mount {
	return predicate.Mount(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.Mount {
	return predicate.Mount(sql.FieldNotNull(FieldConfig))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mount {
	return predicate.Mount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mount {
	return predicate.Mount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mount {
	return predicate.Mount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mount {
	return predicate.Mount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mount {
	return predicate.Mount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mount {
	return predicate.Mount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mount {
	return predicate.Mount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mount {
	return predicate.Mount(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Mount {
	return predicate.Mount(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ChatSession) predicate.Mount {
	return predicate.Mount(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mount) predicate.Mount {
	return predicate.Mount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mount) predicate.Mount {
	return predicate.Mount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mount) predicate.Mount {
	return predicate.Mount(sql.NotPredicates(p))
}
