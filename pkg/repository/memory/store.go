package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trendchat/pkg/domain/model"
	"github.com/secmon-lab/trendchat/pkg/domain/types"
	"github.com/secmon-lab/trendchat/pkg/repository"
)

type entryData struct {
	entry *model.MemoryEntry
}

type historyData struct {
	message *model.ChatMessage
}

type memoryRepository struct {
	mu       sync.RWMutex
	users    map[string][]*entryData
	sessions map[string][]*historyData
}

// Memory operations

func (r *memoryRepository) PutMemory(ctx context.Context, entry *model.MemoryEntry) error {
	if err := entry.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid memory entry", goerr.V("entry", entry))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := string(entry.UserID)
	for i, data := range r.users[key] {
		if data.entry.ID == entry.ID {
			r.users[key][i] = &entryData{entry: copyEntry(entry)}
			return nil
		}
	}

	r.users[key] = append(r.users[key], &entryData{entry: copyEntry(entry)})
	return nil
}

func (r *memoryRepository) ListMemories(ctx context.Context, userID types.UserID, limit int) ([]*model.MemoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*model.MemoryEntry
	for _, data := range r.users[string(userID)] {
		entries = append(entries, copyEntry(data.entry))
	}

	sortNewestFirst(entries)
	return truncate(entries, limit), nil
}

func (r *memoryRepository) SearchMemories(ctx context.Context, userID types.UserID, keyword string, limit int) ([]*model.MemoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(keyword)

	var entries []*model.MemoryEntry
	for _, data := range r.users[string(userID)] {
		if strings.Contains(strings.ToLower(data.entry.Content), needle) {
			entries = append(entries, copyEntry(data.entry))
		}
	}

	sortNewestFirst(entries)
	return truncate(entries, limit), nil
}

func (r *memoryRepository) DeleteMemory(ctx context.Context, userID types.UserID, memoryID types.MemoryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := string(userID)
	for i, data := range r.users[key] {
		if data.entry.ID == memoryID {
			r.users[key] = append(r.users[key][:i], r.users[key][i+1:]...)
			return nil
		}
	}

	return goerr.Wrap(repository.ErrNotFound, "memory not found",
		goerr.V("userID", userID),
		goerr.V("memoryID", memoryID),
	)
}

// History operations

func (r *memoryRepository) AppendHistory(ctx context.Context, sessionID types.SessionID, messages []*model.ChatMessage) error {
	if sessionID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "session ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := string(sessionID)
	for _, msg := range messages {
		copied := *msg
		r.sessions[key] = append(r.sessions[key], &historyData{message: &copied})
	}
	return nil
}

func (r *memoryRepository) GetHistory(ctx context.Context, sessionID types.SessionID, limit int) ([]*model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sessions[string(sessionID)]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}

	messages := make([]*model.ChatMessage, 0, len(all))
	for _, data := range all {
		copied := *data.message
		messages = append(messages, &copied)
	}
	return messages, nil
}

func copyEntry(entry *model.MemoryEntry) *model.MemoryEntry {
	copied := *entry
	return &copied
}

func sortNewestFirst(entries []*model.MemoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

func truncate(entries []*model.MemoryEntry, limit int) []*model.MemoryEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
