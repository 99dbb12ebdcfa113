package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Events are the session's append-only log. The auto-increment primary
// key doubles as the reader cursor: ids are strictly increasing in
// append order, and the single-writer queue guarantees append order
// matches emission order.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.String("type").
			Comment("Event type tag; readers tolerate unknown types"),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Comment("Structured payload, opaque to the store"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "created_at"),
	}
}
