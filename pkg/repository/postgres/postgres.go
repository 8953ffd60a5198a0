package postgres

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/interfaces"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS memory_entries (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_memory_entries_user ON memory_entries (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS chat_messages (
	seq        BIGSERIAL PRIMARY KEY,
	session_id TEXT NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages (session_id, seq);
`

// New creates a PostgreSQL-based memory repository and ensures the schema
// exists.
func New(ctx context.Context, dsn string) (interfaces.MemoryRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres connection")
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to ping postgres")
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, goerr.Wrap(err, "failed to create schema")
	}

	return &memoryRepository{db: db}, nil
}
