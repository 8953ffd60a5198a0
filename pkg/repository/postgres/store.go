package postgres

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/repository"
	"github.com/secmon-lab/trendchat/pkg/utils/safe"
)

type memoryRepository struct {
	db *sql.DB
}

// Memory operations

func (r *memoryRepository) PutMemory(ctx context.Context, entry *model.MemoryEntry) error {
	if err := entry.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid memory entry", goerr.V("entry", entry))
	}

	const query = `
		INSERT INTO memory_entries (id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content
	`
	if _, err := r.db.ExecContext(ctx, query, string(entry.ID), string(entry.UserID), entry.Content, entry.CreatedAt); err != nil {
		return goerr.Wrap(err, "failed to put memory entry", goerr.V("memoryID", entry.ID))
	}
	return nil
}

func (r *memoryRepository) ListMemories(ctx context.Context, userID types.UserID, limit int) ([]*model.MemoryEntry, error) {
	const query = `
		SELECT id, user_id, content, created_at FROM memory_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, string(userID), nullableLimit(limit))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list memory entries", goerr.V("userID", userID))
	}
	return scanEntries(rows)
}

func (r *memoryRepository) SearchMemories(ctx context.Context, userID types.UserID, keyword string, limit int) ([]*model.MemoryEntry, error) {
	const query = `
		SELECT id, user_id, content, created_at FROM memory_entries
		WHERE user_id = $1 AND content ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, string(userID), keyword, nullableLimit(limit))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search memory entries",
			goerr.V("userID", userID),
			goerr.V("keyword", keyword),
		)
	}
	return scanEntries(rows)
}

func (r *memoryRepository) DeleteMemory(ctx context.Context, userID types.UserID, memoryID types.MemoryID) error {
	const query = `DELETE FROM memory_entries WHERE user_id = $1 AND id = $2`
	result, err := r.db.ExecContext(ctx, query, string(userID), string(memoryID))
	if err != nil {
		return goerr.Wrap(err, "failed to delete memory entry", goerr.V("memoryID", memoryID))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return goerr.Wrap(repository.ErrNotFound, "memory not found",
			goerr.V("userID", userID),
			goerr.V("memoryID", memoryID),
		)
	}
	return nil
}

// History operations

func (r *memoryRepository) AppendHistory(ctx context.Context, sessionID types.SessionID, messages []*model.ChatMessage) error {
	if sessionID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "session ID is empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx)

	const query = `
		INSERT INTO chat_messages (session_id, role, content, created_at)
		VALUES ($1, $2, $3, $4)
	`
	for _, msg := range messages {
		if _, err := tx.ExecContext(ctx, query, string(sessionID), string(msg.Role), msg.Content, msg.CreatedAt); err != nil {
			return goerr.Wrap(err, "failed to insert history message", goerr.V("sessionID", sessionID))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit history append", goerr.V("sessionID", sessionID))
	}
	return nil
}

func (r *memoryRepository) GetHistory(ctx context.Context, sessionID types.SessionID, limit int) ([]*model.ChatMessage, error) {
	// The newest N rows, restored to chronological order by the outer query.
	const query = `
		SELECT role, content, created_at FROM (
			SELECT seq, role, content, created_at FROM chat_messages
			WHERE session_id = $1
			ORDER BY seq DESC
			LIMIT $2
		) AS latest
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, string(sessionID), nullableLimit(limit))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get history", goerr.V("sessionID", sessionID))
	}
	defer safe.Close(rows)

	var messages []*model.ChatMessage
	for rows.Next() {
		var msg model.ChatMessage
		if err := rows.Scan(&msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan history message")
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate history rows")
	}
	return messages, nil
}

func nullableLimit(limit int) any {
	if limit <= 0 {
		return nil // LIMIT NULL means no limit in PostgreSQL
	}
	return limit
}

func scanEntries(rows *sql.Rows) ([]*model.MemoryEntry, error) {
	defer safe.Close(rows)

	var entries []*model.MemoryEntry
	for rows.Next() {
		var entry model.MemoryEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Content, &entry.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan memory entry")
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate memory rows")
	}
	return entries, nil
}
