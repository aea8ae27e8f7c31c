package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on session topics and
// turn content.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_debate_sessions_topic_gin
		ON debate_sessions USING gin(to_tsvector('english', topic))`)
	if err != nil {
		return fmt.Errorf("failed to create topic GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_debate_turns_content_gin
		ON debate_turns USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create turn content GIN index: %w", err)
	}

	return nil
}
