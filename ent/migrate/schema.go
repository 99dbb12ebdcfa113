// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "initial_message", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "error"}, Default: "running"},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "usage", Type: field.TypeJSON, Nullable: true},
		{Name: "event_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_status",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[2]},
			},
			{
				Name:    "chatsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[7]},
			},
			{
				Name:    "chatsession_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[2], ChatSessionsColumns[9]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_chat_sessions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[3]},
			},
		},
	}
	// MountsColumns holds the columns for the "mounts" table.
	MountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "mount_path", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// MountsTable holds the schema information for the "mounts" table.
	MountsTable = &schema.Table{
		Name:       "mounts",
		Columns:    MountsColumns,
		PrimaryKey: []*schema.Column{MountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mounts_chat_sessions_mounts",
				Columns:    []*schema.Column{MountsColumns[5]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mount_session_id_mount_path",
				Unique:  true,
				Columns: []*schema.Column{MountsColumns[5], MountsColumns[1]},
			},
		},
	}
	// ThreadMappingsColumns holds the columns for the "thread_mappings" table.
	ThreadMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "thread_key", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ThreadMappingsTable holds the schema information for the "thread_mappings" table.
	ThreadMappingsTable = &schema.Table{
		Name:       "thread_mappings",
		Columns:    ThreadMappingsColumns,
		PrimaryKey: []*schema.Column{ThreadMappingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "threadmapping_session_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadMappingsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatSessionsTable,
		EventsTable,
		MountsTable,
		ThreadMappingsTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = ChatSessionsTable
	MountsTable.ForeignKeys[0].RefTable = ChatSessionsTable
}
