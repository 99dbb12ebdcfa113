package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession holds the schema definition for the ChatSession entity.
// A session is a durable conversation: one row per chat, an append-only
// event log hanging off it, and a lifecycle status that is the single
// cross-process coordination point (abort, stale detection, continuation).
type ChatSession struct {
	ent.Schema
}

// Fields of the ChatSession.
func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Text("initial_message").
			Comment("First user message of the session"),
		field.Enum("status").
			Values("running", "completed", "error").
			Default("running"),
		field.JSON("response", json.RawMessage{}).
			Optional().
			Comment("Serialized final message history, for continuation"),
		field.JSON("usage", map[string]interface{}{}).
			Optional().
			Comment("Aggregate token counters, summed over turns"),
		field.Int("event_count").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Worker heartbeat, for stale-session detection"),
	}
}

// Edges of the ChatSession.
func (ChatSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mounts", Mount.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ChatSession.
func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
