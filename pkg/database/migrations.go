package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These are custom SQL that Ent's schema DSL cannot express.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for initial_message full-text search in the session list.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_sessions_initial_message_gin
		ON chat_sessions USING gin(to_tsvector('english', initial_message))`)
	if err != nil {
		return fmt.Errorf("failed to create initial_message GIN index: %w", err)
	}

	return nil
}
