package firestore

import (
	"context"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionUser    = "user"
	collectionMemory  = "memory"
	collectionSession = "session"
	collectionMessage = "message"
)

type memoryRepository struct {
	client *firestore.Client
}

func (r *memoryRepository) memoryDoc(userID types.UserID, memoryID types.MemoryID) *firestore.DocumentRef {
	return r.client.Collection(collectionUser).Doc(string(userID)).
		Collection(collectionMemory).Doc(string(memoryID))
}

// Memory operations

func (r *memoryRepository) PutMemory(ctx context.Context, entry *model.MemoryEntry) error {
	if err := entry.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid memory entry", goerr.V("entry", entry))
	}

	if _, err := r.memoryDoc(entry.UserID, entry.ID).Set(ctx, entry); err != nil {
		return goerr.Wrap(err, "failed to put memory entry",
			goerr.V("userID", entry.UserID),
			goerr.V("memoryID", entry.ID),
		)
	}
	return nil
}

func (r *memoryRepository) ListMemories(ctx context.Context, userID types.UserID, limit int) ([]*model.MemoryEntry, error) {
	query := r.client.Collection(collectionUser).Doc(string(userID)).
		Collection(collectionMemory).
		OrderBy("created_at", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return collectEntries(query.Documents(ctx), userID)
}

// SearchMemories filters entries by keyword in the application. Firestore has
// no substring query, and per-user entry counts stay small enough that a full
// read of the user's sub-collection is acceptable.
func (r *memoryRepository) SearchMemories(ctx context.Context, userID types.UserID, keyword string, limit int) ([]*model.MemoryEntry, error) {
	all, err := r.ListMemories(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	var matched []*model.MemoryEntry
	for _, entry := range all {
		if strings.Contains(strings.ToLower(entry.Content), needle) {
			matched = append(matched, entry)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *memoryRepository) DeleteMemory(ctx context.Context, userID types.UserID, memoryID types.MemoryID) error {
	doc := r.memoryDoc(userID, memoryID)

	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "memory not found",
				goerr.V("userID", userID),
				goerr.V("memoryID", memoryID),
			)
		}
		return goerr.Wrap(err, "failed to get memory entry", goerr.V("memoryID", memoryID))
	}

	if _, err := doc.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete memory entry",
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

	col := r.client.Collection(collectionSession).Doc(string(sessionID)).Collection(collectionMessage)
	for _, msg := range messages {
		if _, _, err := col.Add(ctx, msg); err != nil {
			return goerr.Wrap(err, "failed to append history message",
				goerr.V("sessionID", sessionID),
			)
		}
	}
	return nil
}

func (r *memoryRepository) GetHistory(ctx context.Context, sessionID types.SessionID, limit int) ([]*model.ChatMessage, error) {
	// Fetch the newest messages, then restore chronological order.
	query := r.client.Collection(collectionSession).Doc(string(sessionID)).
		Collection(collectionMessage).
		OrderBy("created_at", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var messages []*model.ChatMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate history", goerr.V("sessionID", sessionID))
		}

		var msg model.ChatMessage
		if err := doc.DataTo(&msg); err != nil {
			return nil, goerr.Wrap(err, "failed to decode history message", goerr.V("sessionID", sessionID))
		}
		messages = append(messages, &msg)
	}

	// Reverse into chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func collectEntries(iter *firestore.DocumentIterator, userID types.UserID) ([]*model.MemoryEntry, error) {
	defer iter.Stop()

	var entries []*model.MemoryEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate memory entries", goerr.V("userID", userID))
		}

		var entry model.MemoryEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, goerr.Wrap(err, "failed to decode memory entry", goerr.V("userID", userID))
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}
