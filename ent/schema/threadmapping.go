package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThreadMapping holds the schema definition for the ThreadMapping entity.
// Chat-platform front-ends map an external thread key to a session so a
// reply in the same thread continues the same conversation.
type ThreadMapping struct {
	ent.Schema
}

// Fields of the ThreadMapping.
func (ThreadMapping) Fields() []ent.Field {
	return []ent.Field{
		field.String("thread_key").
			Unique(),
		field.String("session_id"),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Comment("Front-end specific context (channel, workspace, ...)"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ThreadMapping.
func (ThreadMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
