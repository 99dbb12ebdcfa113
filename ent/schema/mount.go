package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mount holds the schema definition for the Mount entity.
// Mount records are written by the workspace tool and restored by the
// orchestrator when a session is reactivated, so tool state survives
// across turns and processes.
type Mount struct {
	ent.Schema
}

// Fields of the Mount.
func (Mount) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.String("mount_path"),
		field.String("type"),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Opaque tool-specific configuration"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Mount.
func (Mount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("mounts").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the Mount.
func (Mount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "mount_path").
			Unique(),
	}
}
